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
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pawprint-hq/pawprint"
	"github.com/pawprint-hq/pawprint/config"
	"github.com/pawprint-hq/pawprint/database"
	"github.com/pawprint-hq/pawprint/internal/notification"
)

// Pawprint represents the CLI application, encapsulating the root Cobra command.
type Pawprint struct {
	cmd *cobra.Command
}

// pawprintInstance holds the service instance and its configuration for
// use across subcommands.
type pawprintInstance struct {
	pawprint *pawprint.Pawprint
	cnf      *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration and initializes the service instance
// before running any command.
func preRun(app *pawprintInstance) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig("pawprint.json")
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		newPawprint, err := setupPawprint(cnf)
		if err != nil {
			notification.NotifyError(err)
			log.Fatal(err)
		}

		app.pawprint = newPawprint
		app.cnf = cnf

		return nil
	}
}

// setupPawprint creates a service instance wired to the configured data source.
func setupPawprint(cfg *config.Configuration) (*pawprint.Pawprint, error) {
	db, err := database.NewDataSource(cfg)
	if err != nil {
		return nil, fmt.Errorf("error getting datasource: %v", err)
	}

	newPawprint, err := pawprint.NewPawprint(db)
	if err != nil {
		return nil, fmt.Errorf("error creating pawprint: %v", err)
	}
	return newPawprint, nil
}

// NewCLI creates the command-line interface for the Pawprint application.
func NewCLI() *Pawprint {
	var configFile string
	p := &pawprintInstance{}

	var rootCmd = &cobra.Command{
		Use:   "pawprint",
		Short: "Pet adoption backend",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./pawprint.json", "Configuration file for pawprint")

	rootCmd.PersistentPreRunE = preRun(p)

	rootCmd.AddCommand(serverCommands(p))
	rootCmd.AddCommand(migrateCommands(p))

	return &Pawprint{cmd: rootCmd}
}

func (w Pawprint) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
