package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	u "github.com/araddon/gou"

	"github.com/benjiec/gbif-visuals-summary/backends/bigquery"
	"github.com/benjiec/gbif-visuals-summary/export"
	"github.com/benjiec/gbif-visuals-summary/models"
	"github.com/benjiec/gbif-visuals-summary/reports"
)

var (
	configFile *string = flag.String("config", "", "optional exporter config file")
	keyFile    *string = flag.String("key-file", "", "path to service account key file")
	projectID  *string = flag.String("project-id", "", "google cloud project id")
	logLevel   *string = flag.String("loglevel", "info", "log level [debug|info|warn|error]")
)

func main() {

	flag.Parse()

	conf := &models.Config{}
	if *configFile != "" {
		c, err := models.LoadConfigFromFile(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
			os.Exit(1)
		}
		conf = c
	}

	// flags override config
	if *keyFile != "" {
		conf.KeyFile = *keyFile
	}
	if *projectID != "" {
		conf.Project = *projectID
	}
	if conf.LogLevel == "" {
		conf.LogLevel = *logLevel
	}

	u.SetupLogging(conf.LogLevel)
	u.SetColorIfTerminal()

	if err := run(conf); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	u.Infof("all files generated successfully")
}

func run(conf *models.Config) error {

	ctx := context.Background()

	src, err := bigquery.NewSource(ctx, conf.KeyFile, conf.Project)
	if err != nil {
		return err
	}
	defer src.Close()

	store, err := export.NewStore(conf.Output)
	if err != nil {
		return err
	}

	runner := reports.NewRunner(reports.NewCatalog(conf.Table), src, export.NewCSV(store))
	return runner.Run(ctx)
}
