package pawprint

import (
	"context"

	"github.com/pawprint-hq/pawprint/model"
)

// CreateOrganization creates a new organization in the database.
func (p *Pawprint) CreateOrganization(org model.Organization) (model.Organization, error) {
	return p.datasource.CreateOrganization(org)
}

// GetOrganization retrieves an organization by ID.
func (p *Pawprint) GetOrganization(ctx context.Context, id int64) (*model.Organization, error) {
	return p.datasource.GetOrganizationByID(ctx, id)
}

// GetAllOrganizations retrieves all organizations.
func (p *Pawprint) GetAllOrganizations() ([]model.Organization, error) {
	return p.datasource.GetAllOrganizations()
}
