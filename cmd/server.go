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

package main

import (
	"context"
	"log"
	"net/http"

	"github.com/caddyserver/certmagic"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pawprint-hq/pawprint/api"
	"github.com/pawprint-hq/pawprint/config"
)

// serveTLS starts an HTTPS server with certificates managed by CertMagic.
// If no domain is specified, the server defaults to localhost.
func serveTLS(r *gin.Engine, conf config.ServerConfig) error {
	certmagic.DefaultACME.Agreed = true
	certmagic.DefaultACME.Email = conf.Email
	cfg := certmagic.NewDefault()
	cfg.Storage = &certmagic.FileStorage{Path: "path/to/certmagic/storage"}

	domains := []string{conf.Domain}
	if conf.Domain == "" {
		log.Println("No domain specified, defaulting to localhost")
		domains = []string{"localhost"}
	}

	if err := cfg.ManageSync(context.Background(), domains); err != nil {
		return err
	}

	server := &http.Server{
		Addr:      ":" + conf.Port,
		Handler:   r,
		TLSConfig: cfg.TLSConfig(),
	}

	log.Printf("Starting HTTPS server on %s\n", conf.Port)
	if err := server.ListenAndServeTLS("", ""); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start HTTPS server: %v", err)
	}

	return nil
}

func initializeRouter(p *pawprintInstance) *gin.Engine {
	return api.NewAPI(p.pawprint).Router()
}

func startServer(router *gin.Engine, cfg config.ServerConfig) error {
	if cfg.SSL {
		return serveTLS(router, cfg)
	}
	log.Printf("Starting server on http://localhost:%s", cfg.Port)
	return router.Run(":" + cfg.Port)
}

// serverCommands returns the Cobra command responsible for starting the
// Pawprint server.
func serverCommands(p *pawprintInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "start pawprint server",
		Run: func(cmd *cobra.Command, args []string) {
			router := initializeRouter(p)

			cfg, err := config.Fetch()
			if err != nil {
				log.Fatal(err)
			}

			if err := startServer(router, cfg.Server); err != nil {
				log.Fatal(err)
			}
		},
	}

	return cmd
}
