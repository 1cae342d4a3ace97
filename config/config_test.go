package config

import (
	"encoding/json"
	"os"
	"testing"
)

func TestValidateAndAddDefaults(t *testing.T) {
	// Empty DataSource DNS is rejected
	cnf := Configuration{
		ProjectName: "",
		DataSource: DataSourceConfig{
			Dns: "",
		},
		Stripe: StripeConfig{
			TestMode: true,
		},
	}

	err := cnf.validateAndAddDefaults()
	if err == nil || err.Error() != "data source DNS is required" {
		t.Errorf("Expected data source DNS required error, got %v", err)
	}

	// Missing secret key outside test mode is rejected
	cnf = Configuration{
		DataSource: DataSourceConfig{
			Dns: "postgres://localhost:5432",
		},
		Stripe: StripeConfig{
			TestMode:  false,
			SecretKey: "",
		},
	}

	err = cnf.validateAndAddDefaults()
	if err == nil || err.Error() != "stripe secret key is required outside test mode" {
		t.Errorf("Expected stripe secret key required error, got %v", err)
	}

	// All required fields filled, expect no error and defaults applied
	cnf = Configuration{
		ProjectName: "Test Project",
		DataSource: DataSourceConfig{
			Dns: "some-dns",
		},
		Stripe: StripeConfig{
			SecretKey: "sk_test_123",
		},
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if cnf.Petfinder.BaseURL != "https://api.petfinder.com/v2" {
		t.Errorf("Expected default petfinder base url, got %s", cnf.Petfinder.BaseURL)
	}

	// Test default port setting
	cnf.Server.Port = ""
	err = cnf.validateAndAddDefaults()
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if cnf.Server.Port != DEFAULT_PORT {
		t.Errorf("Expected default port %s, got %s", DEFAULT_PORT, cnf.Server.Port)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	// Create a temporary file
	tmpFile, err := os.CreateTemp("", "pawprint.json")
	if err != nil {
		t.Fatalf("Unable to create temporary file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	sampleConfig := Configuration{
		ProjectName: "Temp Project",
		DataSource: DataSourceConfig{
			Dns: "temp-dns",
		},
		Stripe: StripeConfig{
			TestMode: true,
		},
	}

	if err := json.NewEncoder(tmpFile).Encode(&sampleConfig); err != nil {
		t.Fatalf("Unable to write sample config: %v", err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatalf("Unable to close temporary file: %v", err)
	}

	if err := loadConfigFromFile(tmpFile.Name()); err != nil {
		t.Fatalf("loadConfigFromFile returned error: %v", err)
	}

	loaded, err := Fetch()
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if loaded.ProjectName != "Temp Project" {
		t.Errorf("Expected project name to survive the round trip, got %s", loaded.ProjectName)
	}
	if loaded.Server.Port != DEFAULT_PORT {
		t.Errorf("Expected default port %s, got %s", DEFAULT_PORT, loaded.Server.Port)
	}
}
