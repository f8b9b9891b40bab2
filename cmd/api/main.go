package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// @title BloodLink API
// @version 1.0
// @description Blood donor matching, emergency requests, inventory and donation records.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := &cli.App{
		Name:  "bloodlink",
		Usage: "Blood donation coordination API",
		Commands: []*cli.Command{
			serveCommand,
			migrateCommand,
			certNumberCommand,
		},
		DefaultCommand: serveCommand.Name,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
