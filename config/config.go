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

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"

	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_PORT = "3005"
)

var ConfigStore atomic.Value

type ServerConfig struct {
	SSL    bool   `json:"ssl" envconfig:"PAWPRINT_SERVER_SSL"`
	Domain string `json:"domain" envconfig:"PAWPRINT_SERVER_SSL_DOMAIN"`
	Email  string `json:"ssl_email" envconfig:"PAWPRINT_SERVER_SSL_EMAIL"`
	Port   string `json:"port" envconfig:"PAWPRINT_SERVER_PORT"`
}

type DataSourceConfig struct {
	Dns string `json:"dns" envconfig:"PAWPRINT_DATA_SOURCE_DNS"`
}

// StripeConfig configures the payment gateway. TestMode is the single
// mode switch of the payment core: when set, the live gateway is never
// called and charges are satisfied by the stub.
type StripeConfig struct {
	SecretKey string `json:"secret_key" envconfig:"PAWPRINT_STRIPE_SECRET_KEY"`
	TestMode  bool   `json:"test_mode" envconfig:"PAWPRINT_STRIPE_TEST_MODE"`
}

type SMTPConfig struct {
	Host     string `json:"host" envconfig:"PAWPRINT_SMTP_HOST"`
	Port     int    `json:"port" envconfig:"PAWPRINT_SMTP_PORT"`
	Username string `json:"username" envconfig:"PAWPRINT_SMTP_USERNAME"`
	Password string `json:"password" envconfig:"PAWPRINT_SMTP_PASSWORD"`
	From     string `json:"from" envconfig:"PAWPRINT_SMTP_FROM"`
}

type PetfinderConfig struct {
	ClientID     string `json:"client_id" envconfig:"PAWPRINT_PETFINDER_CLIENT_ID"`
	ClientSecret string `json:"client_secret" envconfig:"PAWPRINT_PETFINDER_CLIENT_SECRET"`
	BaseURL      string `json:"base_url" envconfig:"PAWPRINT_PETFINDER_BASE_URL"`
}

type SlackWebhook struct {
	WebhookUrl string `json:"webhook_url"`
}

type Notification struct {
	Slack SlackWebhook `json:"slack"`
}

type Configuration struct {
	ProjectName  string           `json:"project_name" envconfig:"PAWPRINT_PROJECT_NAME"`
	Server       ServerConfig     `json:"server"`
	DataSource   DataSourceConfig `json:"data_source"`
	Stripe       StripeConfig     `json:"stripe"`
	SMTP         SMTPConfig       `json:"smtp"`
	Petfinder    PetfinderConfig  `json:"petfinder"`
	Notification Notification     `json:"notification"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}

	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("pawprint", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return err
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded from file. Create a json file called pawprint.json with your config ❌")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	if cnf.ProjectName == "" {
		log.Println("Warning: Project name is empty. Setting a default name.")
		cnf.ProjectName = "Pawprint Server"
	}

	if cnf.DataSource.Dns == "" {
		log.Println("Error: Data source DNS is empty. It's a required field.")
		return errors.New("data source DNS is required")
	}

	if !cnf.Stripe.TestMode && cnf.Stripe.SecretKey == "" {
		log.Println("Error: Stripe secret key is empty and test mode is off.")
		return errors.New("stripe secret key is required outside test mode")
	}

	if cnf.Petfinder.BaseURL == "" {
		cnf.Petfinder.BaseURL = "https://api.petfinder.com/v2"
	}

	if cnf.SMTP.From == "" {
		cnf.SMTP.From = "no-reply@pawprint.dev"
	}

	// Trim white spaces from fields
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.Server.Port = strings.TrimSpace(cnf.Server.Port)
	cnf.DataSource.Dns = strings.TrimSpace(cnf.DataSource.Dns)
	cnf.Stripe.SecretKey = strings.TrimSpace(cnf.Stripe.SecretKey)

	// Set default value for Port if it's empty
	if cnf.Server.Port == "" {
		cnf.Server.Port = DEFAULT_PORT
		log.Printf("Warning: Port not specified in config. Setting default port: %s", DEFAULT_PORT)
	}

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
