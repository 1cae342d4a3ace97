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

// CreateOrganization inserts a new organization into the database.
func (d Datasource) CreateOrganization(org model.Organization) (model.Organization, error) {
	org.CreatedAt = time.Now()

	err := d.Conn.QueryRow(`
		INSERT INTO organizations (name, email, phone, address, city, state, post_code, country, website, hours, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, org.Name, org.Email, org.Phone, org.Address, org.City, org.State, org.PostCode, org.Country, org.Website, org.Hours, org.CreatedAt).Scan(&org.ID)
	if err != nil {
		return org, apierror.NewAPIError(apierror.ErrInternalServer, "failed to create organization", errors.Wrap(err, "inserting organization"))
	}

	return org, nil
}

// GetOrganizationByID retrieves an organization from the database by ID.
func (d Datasource) GetOrganizationByID(ctx context.Context, id int64) (*model.Organization, error) {
	row := d.Conn.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(address, ''), COALESCE(city, ''),
			COALESCE(state, ''), COALESCE(post_code, ''), COALESCE(country, ''), COALESCE(website, ''), COALESCE(hours, ''), created_at
		FROM organizations
		WHERE id = $1
	`, id)

	org := &model.Organization{}
	err := row.Scan(&org.ID, &org.Name, &org.Email, &org.Phone, &org.Address, &org.City,
		&org.State, &org.PostCode, &org.Country, &org.Website, &org.Hours, &org.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("organization with id %d not found", id), err)
		}
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "failed to retrieve organization", errors.Wrap(err, "scanning organization"))
	}

	return org, nil
}

// GetAllOrganizations retrieves all organizations from the database.
func (d Datasource) GetAllOrganizations() ([]model.Organization, error) {
	rows, err := d.Conn.Query(`
		SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(address, ''), COALESCE(city, ''),
			COALESCE(state, ''), COALESCE(post_code, ''), COALESCE(country, ''), COALESCE(website, ''), COALESCE(hours, ''), created_at
		FROM organizations
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "failed to retrieve organizations", errors.Wrap(err, "querying organizations"))
	}
	defer rows.Close()

	var orgs []model.Organization
	for rows.Next() {
		org := model.Organization{}
		if err := rows.Scan(&org.ID, &org.Name, &org.Email, &org.Phone, &org.Address, &org.City,
			&org.State, &org.PostCode, &org.Country, &org.Website, &org.Hours, &org.CreatedAt); err != nil {
			return nil, apierror.NewAPIError(apierror.ErrInternalServer, "failed to scan organization", err)
		}
		orgs = append(orgs, org)
	}

	return orgs, rows.Err()
}
