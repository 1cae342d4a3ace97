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

	"github.com/pawprint-hq/pawprint"
	model2 "github.com/pawprint-hq/pawprint/api/model"
	"github.com/pawprint-hq/pawprint/internal/apierror"
)

// CreateAnimal lists a new animal for adoption.
//
// Responses:
// - 400 Bad Request: Binding or validation error.
// - 201 Created: The animal was listed.
func (a Api) CreateAnimal(c *gin.Context) {
	var newAnimal model2.CreateAnimal
	if err := c.ShouldBindJSON(&newAnimal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := newAnimal.ValidateCreateAnimal(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := a.pawprint.CreateAnimal(newAnimal.ToAnimal())
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetAnimal retrieves an animal by its ID.
//
// Responses:
// - 400 Bad Request: The ID is not numeric.
// - 404 Not Found: No animal with that ID.
// - 200 OK: The animal record.
func (a Api) GetAnimal(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a number. pass id in the route /:id"})
		return
	}

	resp, err := a.pawprint.GetAnimal(c.Request.Context(), id)
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAllAnimals retrieves all locally listed animals.
func (a Api) GetAllAnimals(c *gin.Context) {
	animals, err := a.pawprint.GetAllAnimals()
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, animals)
}

// SearchAnimals proxies a search to the upstream animal index. Query
// parameters are bound straight onto the upstream filter set.
//
// Responses:
// - 400 Bad Request: Unbindable query parameters.
// - 502 Bad Gateway: The upstream index errored or is unreachable.
// - 200 OK: The upstream search result.
func (a Api) SearchAnimals(c *gin.Context) {
	var query pawprint.AnimalSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := a.pawprint.SearchAnimals(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
