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
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	model2 "github.com/pawprint-hq/pawprint/api/model"
	"github.com/pawprint-hq/pawprint/internal/apierror"
)

// CreateOrganization registers a new shelter or rescue.
//
// Responses:
// - 400 Bad Request: Binding or validation error.
// - 201 Created: The organization was created.
func (a Api) CreateOrganization(c *gin.Context) {
	var newOrg model2.CreateOrganization
	if err := c.ShouldBindJSON(&newOrg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := newOrg.ValidateCreateOrganization(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := a.pawprint.CreateOrganization(newOrg.ToOrganization())
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetOrganization retrieves an organization by its ID.
//
// Responses:
// - 400 Bad Request: The ID is not numeric.
// - 404 Not Found: No organization with that ID.
// - 200 OK: The organization record.
func (a Api) GetOrganization(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a number. pass id in the route /:id"})
		return
	}

	resp, err := a.pawprint.GetOrganization(c.Request.Context(), id)
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAllOrganizations retrieves all organizations.
func (a Api) GetAllOrganizations(c *gin.Context) {
	orgs, err := a.pawprint.GetAllOrganizations()
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orgs)
}
