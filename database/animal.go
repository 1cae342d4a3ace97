package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/pawprint-hq/pawprint/internal/apierror"
	"github.com/pawprint-hq/pawprint/model"
)

const animalColumns = `id, organization_id, COALESCE(name, ''), type, COALESCE(breed, ''), size, gender, age,
	description, status, COALESCE(color, ''), COALESCE(coat, ''), COALESCE(good_with_children, false),
	COALESCE(good_with_dogs, false), COALESCE(good_with_cats, false), COALESCE(house_trained, false),
	COALESCE(special_needs, ''), created_at`

func scanAnimal(row interface{ Scan(...interface{}) error }, a *model.Animal) error {
	return row.Scan(&a.ID, &a.OrganizationID, &a.Name, &a.Type, &a.Breed, &a.Size, &a.Gender, &a.Age,
		&a.Description, &a.Status, &a.Color, &a.Coat, &a.GoodWithChildren,
		&a.GoodWithDogs, &a.GoodWithCats, &a.HouseTrained, &a.SpecialNeeds, &a.CreatedAt)
}

// CreateAnimal inserts a new animal into the database.
func (d Datasource) CreateAnimal(animal model.Animal) (model.Animal, error) {
	animal.CreatedAt = time.Now()

	err := d.Conn.QueryRow(`
		INSERT INTO animals (organization_id, name, type, breed, size, gender, age, description, status,
			color, coat, good_with_children, good_with_dogs, good_with_cats, house_trained, special_needs, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`, animal.OrganizationID, animal.Name, animal.Type, animal.Breed, animal.Size, animal.Gender, animal.Age,
		animal.Description, animal.Status, animal.Color, animal.Coat, animal.GoodWithChildren,
		animal.GoodWithDogs, animal.GoodWithCats, animal.HouseTrained, animal.SpecialNeeds, animal.CreatedAt).Scan(&animal.ID)
	if err != nil {
		return animal, apierror.NewAPIError(apierror.ErrInternalServer, "failed to create animal", errors.Wrap(err, "inserting animal"))
	}

	return animal, nil
}

// GetAnimalByID retrieves an animal from the database by ID.
func (d Datasource) GetAnimalByID(ctx context.Context, id int64) (*model.Animal, error) {
	row := d.Conn.QueryRowContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE id = $1
	`, id)

	animal := &model.Animal{}
	err := scanAnimal(row, animal)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("animal with id %d not found", id), err)
		}
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "failed to retrieve animal", errors.Wrap(err, "scanning animal"))
	}

	return animal, nil
}

// GetAllAnimals retrieves all animals from the database.
func (d Datasource) GetAllAnimals() ([]model.Animal, error) {
	rows, err := d.Conn.Query(`
		SELECT ` + animalColumns + `
		FROM animals
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "failed to retrieve animals", errors.Wrap(err, "querying animals"))
	}
	defer rows.Close()

	var animals []model.Animal
	for rows.Next() {
		animal := model.Animal{}
		if err := scanAnimal(rows, &animal); err != nil {
			return nil, apierror.NewAPIError(apierror.ErrInternalServer, "failed to scan animal", err)
		}
		animals = append(animals, animal)
	}

	return animals, rows.Err()
}
