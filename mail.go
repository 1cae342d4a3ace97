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
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pawprint-hq/pawprint/internal/apierror"
	"github.com/pawprint-hq/pawprint/internal/notification"
	"github.com/pawprint-hq/pawprint/model"
)

// SendMail attempts one transport delivery and records the outcome.
//
// Unlike payments, there is no pre-flight rejection: failure is only
// discoverable by invoking the transport, so a Mail record is written on
// EVERY attempt — SENT on success, FAILED with the transport's error
// message otherwise. On failure the record is returned alongside the
// re-raised error so the caller still holds the audit row.
func (p *Pawprint) SendMail(ctx context.Context, attempt model.MailAttempt) (*model.Mail, error) {
	// No pre-flight rejection path: a non-numeric user reference still
	// produces a record (with user id 0) rather than a rejection.
	userID, _ := strconv.ParseInt(attempt.UserID, 10, 64)

	mail := &model.Mail{
		UserID: userID,
		Title:  attempt.Title,
		Body:   attempt.Body,
		SentAt: time.Now(),
	}

	_, sendErr := p.transport.Send(ctx, attempt.To, attempt.Title, attempt.Body)
	if sendErr != nil {
		mail.Status = model.MailStatusFailed
		mail.ErrorMessage = sendErr.Error()
	} else {
		mail.Status = model.MailStatusSent
	}

	recorded, recordErr := p.datasource.RecordMail(ctx, mail)
	if recordErr != nil {
		notification.NotifyError(recordErr)
		logrus.WithError(recordErr).Error("failed to record mail outcome")
		if sendErr == nil {
			return nil, recordErr
		}
	}

	if sendErr != nil {
		notification.NotifyError(sendErr)
		return recorded, apierror.NewAPIError(apierror.ErrTransport, sendErr.Error(), sendErr)
	}
	return recorded, nil
}

// GetAllMails retrieves all mail records.
func (p *Pawprint) GetAllMails(ctx context.Context) ([]model.Mail, error) {
	return p.datasource.GetAllMails(ctx)
}
