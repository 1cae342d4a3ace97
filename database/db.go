package database

import (
	"database/sql"
	"log"
	"sync"

	_ "github.com/lib/pq"

	"github.com/pawprint-hq/pawprint/config"
)

// Declare a package-level variable to hold the singleton instance.
// Ensure the instance is not accessible outside the package.
var instance *Datasource
var once sync.Once

type Datasource struct {
	Conn *sql.DB
}

func NewDataSource(configuration *config.Configuration) (IDataSource, error) {
	con, err := GetDBConnection(configuration)
	if err != nil {
		return nil, err
	}
	return con, nil
}

// GetDBConnection provides a global access point to the instance and initializes it if it's not already.
func GetDBConnection(configuration *config.Configuration) (*Datasource, error) {
	var err error
	once.Do(func() {
		con, errConn := ConnectDB(configuration.DataSource.Dns)
		if errConn != nil {
			err = errConn
			return
		}
		instance = &Datasource{Conn: con}
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

func ConnectDB(dns string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dns)
	if err != nil {
		return nil, err
	}
	err = db.Ping()
	if err != nil {
		log.Printf("database Connection error ❌: %v", err)
		return nil, err
	}
	err = CreateTables(db)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// CreateTables bootstraps the schema. Safe to run repeatedly.
func CreateTables(db *sql.DB) error {
	if err := createUserTable(db); err != nil {
		return err
	}
	if err := createOrganizationTable(db); err != nil {
		return err
	}
	if err := createAnimalTable(db); err != nil {
		return err
	}
	if err := createPaymentTable(db); err != nil {
		return err
	}
	return createMailTable(db)
}

func createUserTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		log.Printf("Error creating users table: %v", err)
	}
	return err
}

func createOrganizationTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS organizations (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT,
			phone TEXT,
			address TEXT,
			city TEXT,
			state TEXT,
			post_code TEXT,
			country TEXT,
			website TEXT,
			hours TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		log.Printf("Error creating organizations table: %v", err)
	}
	return err
}

func createAnimalTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS animals (
			id BIGSERIAL PRIMARY KEY,
			organization_id BIGINT NOT NULL REFERENCES organizations(id),
			name TEXT,
			type TEXT NOT NULL,
			breed TEXT,
			size TEXT NOT NULL,
			gender TEXT NOT NULL,
			age TEXT NOT NULL,
			description TEXT NOT NULL,
			status TEXT NOT NULL,
			color TEXT,
			coat TEXT,
			good_with_children BOOLEAN,
			good_with_dogs BOOLEAN,
			good_with_cats BOOLEAN,
			house_trained BOOLEAN,
			special_needs TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		log.Printf("Error creating animals table: %v", err)
	}
	return err
}

// Outcome tables carry no foreign keys: party references are resolved in
// the service layer before any charge, and failure rows must remain
// writable even if the referenced party has since been deleted.
func createPaymentTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS payments (
			id BIGSERIAL PRIMARY KEY,
			organization_id BIGINT NOT NULL,
			user_id BIGINT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			currency TEXT NOT NULL,
			payment_method TEXT NOT NULL,
			status TEXT NOT NULL,
			provider_ref TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		log.Printf("Error creating payments table: %v", err)
	}
	return err
}

func createMailTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS mails (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			title TEXT NOT NULL,
			body TEXT NOT NULL,
			sent_at TIMESTAMP NOT NULL,
			status TEXT NOT NULL,
			error_message TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		log.Printf("Error creating mails table: %v", err)
	}
	return err
}
