package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/mortgage-compare/internal/config"
	"github.com/iwvelando/mortgage-compare/internal/recommend"
	"github.com/iwvelando/mortgage-compare/internal/sweep"
	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/output"
	"github.com/iwvelando/mortgage-compare/pkg/validation"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load .env before the config so AutomaticEnv sees its variables
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load .env file\", \"error\": \"%v\"}\n", err)
		return
	}

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := config.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Run the term sweep to get the comparison.
	comparison, err := sweep.RunSweep(logger, *conf)
	if err != nil {
		logger.Fatal("failed to compute term comparison",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Pick a term when the config carries a monthly budget.
	var recommendation *recommend.Summary
	if conf.Budget != nil {
		recommendation, err = recommend.Pick(comparison.Terms, conf.Budget.MaxMonthlyPayment)
		if err != nil {
			logger.Warn("no term recommendation",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(comparison)
		output.PrettyRecommendation(recommendation)
	case constants.OutputFormatCSV:
		output.CsvFormat(comparison)
	}

}
