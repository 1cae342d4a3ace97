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

// CreatePayment handles a new payment attempt. It binds the incoming
// JSON request, validates it, and hands it to the processor. Rejections
// come back as 400/404 with no record written; gateway failures as 402
// after the FAILED record is written.
//
// Responses:
// - 400 Bad Request: Binding, validation, or card rejection.
// - 404 Not Found: Unresolvable user or organization reference.
// - 402 Payment Required: The gateway declined or errored.
// - 201 Created: The payment was charged and recorded.
func (a Api) CreatePayment(c *gin.Context) {
	var newPayment model2.CreatePayment
	if err := c.ShouldBindJSON(&newPayment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := newPayment.ValidateCreatePayment(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := a.pawprint.CreatePayment(c.Request.Context(), newPayment.ToPaymentAttempt())
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetPayment retrieves a payment record by its ID.
//
// Responses:
// - 400 Bad Request: The ID is not numeric.
// - 404 Not Found: No payment with that ID.
// - 200 OK: The payment record.
func (a Api) GetPayment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a number. pass id in the route /:id"})
		return
	}

	resp, err := a.pawprint.GetPayment(c.Request.Context(), id)
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAllPayments retrieves all payment records.
func (a Api) GetAllPayments(c *gin.Context) {
	payments, err := a.pawprint.GetAllPayments(c.Request.Context())
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// GetPaymentsByUser retrieves all payment records for a user.
func (a Api) GetPaymentsByUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a number. pass id in the route /:id"})
		return
	}

	payments, err := a.pawprint.GetPaymentsByUser(c.Request.Context(), id)
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}
