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
	"github.com/gin-gonic/gin"

	"github.com/pawprint-hq/pawprint"
)

type Api struct {
	pawprint *pawprint.Pawprint
	router   *gin.Engine
}

func (a Api) Router() *gin.Engine {
	router := a.router
	router.POST("/users", a.CreateUser)
	router.GET("/users/:id", a.GetUser)
	router.GET("/users", a.GetAllUsers)
	router.GET("/users/:id/payments", a.GetPaymentsByUser)

	router.POST("/organizations", a.CreateOrganization)
	router.GET("/organizations/:id", a.GetOrganization)
	router.GET("/organizations", a.GetAllOrganizations)

	router.POST("/animals", a.CreateAnimal)
	router.GET("/animals/search", a.SearchAnimals)
	router.GET("/animals/:id", a.GetAnimal)
	router.GET("/animals", a.GetAllAnimals)

	router.POST("/payments", a.CreatePayment)
	router.GET("/payments/:id", a.GetPayment)
	router.GET("/payments", a.GetAllPayments)

	router.POST("/mails", a.SendMail)
	router.GET("/mails", a.GetAllMails)
	return a.router
}

func NewAPI(p *pawprint.Pawprint) *Api {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, "server running...")
	})

	return &Api{pawprint: p, router: r}
}
