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

// CreateUser creates a new adopter account.
//
// Responses:
// - 400 Bad Request: Binding or validation error.
// - 201 Created: The user was created.
func (a Api) CreateUser(c *gin.Context) {
	var newUser model2.CreateUser
	if err := c.ShouldBindJSON(&newUser); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := newUser.ValidateCreateUser(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := a.pawprint.CreateUser(newUser.ToUser())
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetUser retrieves a user by their ID.
//
// Responses:
// - 400 Bad Request: The ID is not numeric.
// - 404 Not Found: No user with that ID.
// - 200 OK: The user record.
func (a Api) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a number. pass id in the route /:id"})
		return
	}

	resp, err := a.pawprint.GetUser(c.Request.Context(), id)
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAllUsers retrieves all users.
func (a Api) GetAllUsers(c *gin.Context) {
	users, err := a.pawprint.GetAllUsers()
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}
