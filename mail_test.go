/*
Copyright 2025 Pawprint Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pawprint

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pawprint-hq/pawprint/database/mocks"
	"github.com/pawprint-hq/pawprint/internal/apierror"
	"github.com/pawprint-hq/pawprint/model"
)

type fakeTransport struct {
	err   error
	calls int

	lastTo      string
	lastSubject string
	lastBody    string
}

func (t *fakeTransport) Send(_ context.Context, to, subject, body string) (string, error) {
	t.calls++
	t.lastTo = to
	t.lastSubject = subject
	t.lastBody = body
	if t.err != nil {
		return "", t.err
	}
	return "msg_test", nil
}

func TestSendMail_SuccessRecordsSent(t *testing.T) {
	mockDS := new(mocks.MockDataSource)
	transport := &fakeTransport{}
	p := &Pawprint{datasource: mockDS, transport: transport}

	var recorded *model.Mail
	mockDS.On("RecordMail", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { recorded = args.Get(1).(*model.Mail) }).
		Return(&model.Mail{ID: 1, Status: model.MailStatusSent}, nil)

	mail, err := p.SendMail(context.Background(), model.MailAttempt{
		UserID: "12",
		To:     "jane@example.com",
		Title:  "Adoption confirmed",
		Body:   "Bella is coming home.",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.MailStatusSent, mail.Status)
	assert.Equal(t, model.MailStatusSent, recorded.Status)
	assert.Empty(t, recorded.ErrorMessage)
	assert.Equal(t, int64(12), recorded.UserID)
	assert.Equal(t, "jane@example.com", transport.lastTo)
	assert.Equal(t, "Adoption confirmed", transport.lastSubject)
	mockDS.AssertExpectations(t)
}

func TestSendMail_TransportFailureRecordsFailedAndRaises(t *testing.T) {
	mockDS := new(mocks.MockDataSource)
	transport := &fakeTransport{err: errors.New("dial tcp: connection refused")}
	p := &Pawprint{datasource: mockDS, transport: transport}

	var recorded *model.Mail
	mockDS.On("RecordMail", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { recorded = args.Get(1).(*model.Mail) }).
		Return(&model.Mail{ID: 1, Status: model.MailStatusFailed, ErrorMessage: "dial tcp: connection refused"}, nil).
		Once()

	mail, err := p.SendMail(context.Background(), model.MailAttempt{
		UserID: "12",
		To:     "jane@example.com",
		Title:  "Adoption confirmed",
		Body:   "Bella is coming home.",
	})

	// the record is written before the error is re-raised, and both are
	// handed back to the caller
	assert.Error(t, err)
	assert.True(t, apierror.IsCode(err, apierror.ErrTransport))
	assert.NotNil(t, mail)
	assert.Equal(t, model.MailStatusFailed, mail.Status)

	assert.Equal(t, model.MailStatusFailed, recorded.Status)
	assert.Equal(t, "dial tcp: connection refused", recorded.ErrorMessage)
	mockDS.AssertExpectations(t)
}

func TestSendMail_NonNumericUserStillRecords(t *testing.T) {
	mockDS := new(mocks.MockDataSource)
	p := &Pawprint{datasource: mockDS, transport: &fakeTransport{}}

	var recorded *model.Mail
	mockDS.On("RecordMail", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { recorded = args.Get(1).(*model.Mail) }).
		Return(&model.Mail{ID: 1}, nil)

	_, err := p.SendMail(context.Background(), model.MailAttempt{
		UserID: "not-a-number",
		To:     "jane@example.com",
		Title:  "Hello",
		Body:   "world",
	})

	assert.NoError(t, err)
	assert.Zero(t, recorded.UserID)
}

func TestSendMail_RecordFailureAfterSuccessfulSend(t *testing.T) {
	mockDS := new(mocks.MockDataSource)
	p := &Pawprint{datasource: mockDS, transport: &fakeTransport{}}

	mockDS.On("RecordMail", mock.Anything, mock.Anything).
		Return(nil, apierror.NewAPIError(apierror.ErrInternalServer, "db down", nil))

	mail, err := p.SendMail(context.Background(), model.MailAttempt{
		UserID: "12",
		To:     "jane@example.com",
		Title:  "Hello",
		Body:   "world",
	})

	assert.Error(t, err)
	assert.Nil(t, mail)
	assert.True(t, apierror.IsCode(err, apierror.ErrInternalServer))
}

func TestSMTPTransport_RejectsEmptyRecipient(t *testing.T) {
	transport := &SMTPTransport{from: "no-reply@pawprint.dev"}

	_, err := transport.Send(context.Background(), "", "subject", "body")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "recipient address is required")
}

func TestSMTPTransport_RejectsEmptyBody(t *testing.T) {
	transport := &SMTPTransport{from: "no-reply@pawprint.dev"}

	_, err := transport.Send(context.Background(), "jane@example.com", "subject", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "message body is required")
}
