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

	gomail "gopkg.in/gomail.v2"

	"github.com/pawprint-hq/pawprint/config"
	"github.com/pawprint-hq/pawprint/model"
)

// MailTransport delivers a message envelope. One attempt per call; the
// transport either returns ids for the accepted message or the delivery
// error. Malformed envelopes (empty recipient or body) are the
// transport's to reject — the dispatcher performs no pre-flight checks.
type MailTransport interface {
	Send(ctx context.Context, to, subject, body string) (string, error)
}

// SMTPTransport delivers mail over SMTP. The dialer is configured once
// at startup and reused; each Send opens one connection.
type SMTPTransport struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPTransport(cfg config.SMTPConfig) *SMTPTransport {
	return &SMTPTransport{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (t *SMTPTransport) Send(_ context.Context, to, subject, body string) (string, error) {
	if to == "" {
		return "", errors.New("recipient address is required")
	}
	if body == "" {
		return "", errors.New("message body is required")
	}

	messageID := model.GenerateUUIDWithPrefix("msg")

	m := gomail.NewMessage()
	m.SetHeader("From", t.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetHeader("Message-ID", "<"+messageID+"@pawprint>")
	m.SetBody("text/plain", body)

	if err := t.dialer.DialAndSend(m); err != nil {
		return "", err
	}
	return messageID, nil
}
