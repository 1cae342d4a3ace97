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

	"github.com/gin-gonic/gin"

	model2 "github.com/pawprint-hq/pawprint/api/model"
	"github.com/pawprint-hq/pawprint/internal/apierror"
)

// SendMail handles a mail delivery request. There is no pre-flight
// validation past JSON binding: the dispatcher records every attempt,
// so even a malformed envelope produces a FAILED record. On transport
// failure the response carries that record alongside the error.
//
// Responses:
// - 400 Bad Request: The payload is not valid JSON.
// - 502 Bad Gateway: The transport refused or failed delivery.
// - 201 Created: The mail was sent and recorded.
func (a Api) SendMail(c *gin.Context) {
	var newMail model2.SendMail
	if err := c.ShouldBindJSON(&newMail); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := a.pawprint.SendMail(c.Request.Context(), newMail.ToMailAttempt())
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error(), "mail": resp})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetAllMails retrieves all mail records.
func (a Api) GetAllMails(c *gin.Context) {
	mails, err := a.pawprint.GetAllMails(c.Request.Context())
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, mails)
}
