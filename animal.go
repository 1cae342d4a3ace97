package pawprint

import (
	"context"

	"github.com/pawprint-hq/pawprint/model"
)

// CreateAnimal creates a new animal listing in the database.
func (p *Pawprint) CreateAnimal(animal model.Animal) (model.Animal, error) {
	return p.datasource.CreateAnimal(animal)
}

// GetAnimal retrieves an animal by ID.
func (p *Pawprint) GetAnimal(ctx context.Context, id int64) (*model.Animal, error) {
	return p.datasource.GetAnimalByID(ctx, id)
}

// GetAllAnimals retrieves all animal listings.
func (p *Pawprint) GetAllAnimals() ([]model.Animal, error) {
	return p.datasource.GetAllAnimals()
}

// SearchAnimals proxies an adoptable-animal search to the Petfinder
// upstream, keeping the client secret server-side.
func (p *Pawprint) SearchAnimals(ctx context.Context, query AnimalSearchQuery) (*AnimalSearchResult, error) {
	return p.petfinder.Search(ctx, query)
}
