package model

import "github.com/pawprint-hq/pawprint/model"

type CreateOrganization struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	PostCode string `json:"post_code,omitempty"`
	Country  string `json:"country,omitempty"`
	Website  string `json:"website,omitempty"`
	Hours    string `json:"hours,omitempty"`
}

func (o *CreateOrganization) ToOrganization() model.Organization {
	return model.Organization{
		Name:     o.Name,
		Email:    o.Email,
		Phone:    o.Phone,
		Address:  o.Address,
		City:     o.City,
		State:    o.State,
		PostCode: o.PostCode,
		Country:  o.Country,
		Website:  o.Website,
		Hours:    o.Hours,
	}
}
