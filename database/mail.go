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

package database

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/pawprint-hq/pawprint/internal/apierror"
	"github.com/pawprint-hq/pawprint/model"
)

// RecordMail appends a mail outcome record. Append-only, like payments.
func (d Datasource) RecordMail(ctx context.Context, mail *model.Mail) (*model.Mail, error) {
	mail.CreatedAt = time.Now()

	err := d.Conn.QueryRowContext(ctx, `
		INSERT INTO mails (user_id, title, body, sent_at, status, error_message, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
		RETURNING id
	`, mail.UserID, mail.Title, mail.Body, mail.SentAt, mail.Status, mail.ErrorMessage, mail.CreatedAt).Scan(&mail.ID)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "failed to record mail", errors.Wrap(err, "inserting mail"))
	}

	return mail, nil
}

// GetAllMails retrieves all mail records, newest first.
func (d Datasource) GetAllMails(ctx context.Context) ([]model.Mail, error) {
	rows, err := d.Conn.QueryContext(ctx, `
		SELECT id, user_id, title, body, sent_at, status, COALESCE(error_message, ''), created_at
		FROM mails
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "failed to retrieve mails", errors.Wrap(err, "querying mails"))
	}
	defer rows.Close()

	var mails []model.Mail
	for rows.Next() {
		mail := model.Mail{}
		if err := rows.Scan(&mail.ID, &mail.UserID, &mail.Title, &mail.Body, &mail.SentAt,
			&mail.Status, &mail.ErrorMessage, &mail.CreatedAt); err != nil {
			return nil, apierror.NewAPIError(apierror.ErrInternalServer, "failed to scan mail", err)
		}
		mails = append(mails, mail)
	}

	return mails, rows.Err()
}
