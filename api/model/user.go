package model

import "github.com/pawprint-hq/pawprint/model"

type CreateUser struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

func (u *CreateUser) ToUser() model.User {
	return model.User{
		Name:  u.Name,
		Email: u.Email,
	}
}
