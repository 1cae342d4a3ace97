package model

import "github.com/pawprint-hq/pawprint/model"

// SendMail carries a delivery request. It is deliberately unvalidated:
// a malformed envelope must still reach the transport so the attempt is
// recorded with the transport's own error.
type SendMail struct {
	UserID string `json:"user_id"`
	To     string `json:"to"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func (m *SendMail) ToMailAttempt() model.MailAttempt {
	return model.MailAttempt{
		UserID: m.UserID,
		To:     m.To,
		Title:  m.Title,
		Body:   m.Body,
	}
}
