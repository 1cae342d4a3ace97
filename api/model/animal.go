package model

import "github.com/pawprint-hq/pawprint/model"

type CreateAnimal struct {
	OrganizationID   int64  `json:"organization_id"`
	Name             string `json:"name,omitempty"`
	Type             string `json:"type"`
	Breed            string `json:"breed,omitempty"`
	Size             string `json:"size,omitempty"`
	Gender           string `json:"gender,omitempty"`
	Age              string `json:"age,omitempty"`
	Description      string `json:"description,omitempty"`
	Status           string `json:"status,omitempty"`
	Color            string `json:"color,omitempty"`
	Coat             string `json:"coat,omitempty"`
	GoodWithChildren bool   `json:"good_with_children"`
	GoodWithDogs     bool   `json:"good_with_dogs"`
	GoodWithCats     bool   `json:"good_with_cats"`
	HouseTrained     bool   `json:"house_trained"`
	SpecialNeeds     string `json:"special_needs,omitempty"`
}

func (a *CreateAnimal) ToAnimal() model.Animal {
	animal := model.Animal{
		OrganizationID:   a.OrganizationID,
		Name:             a.Name,
		Type:             a.Type,
		Breed:            a.Breed,
		Size:             a.Size,
		Gender:           a.Gender,
		Age:              a.Age,
		Description:      a.Description,
		Status:           a.Status,
		Color:            a.Color,
		Coat:             a.Coat,
		GoodWithChildren: a.GoodWithChildren,
		GoodWithDogs:     a.GoodWithDogs,
		GoodWithCats:     a.GoodWithCats,
		HouseTrained:     a.HouseTrained,
		SpecialNeeds:     a.SpecialNeeds,
	}
	if animal.Status == "" {
		animal.Status = "adoptable"
	}
	return animal
}
