// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/loans"
	"github.com/iwvelando/mortgage-compare/pkg/validation"
	"github.com/spf13/viper"
)

// ErrInvalidInput indicates the configuration fails fail-fast validation.
var ErrInvalidInput = errors.New("invalid configuration")

// Configuration holds all configuration for mortgage-compare.
type Configuration struct {
	Loan            LoanConfig       `yaml:"loan"`
	Investment      InvestmentConfig `yaml:"investment"`
	Inflation       InflationConfig  `yaml:"inflation"`
	ReferenceSalary float64          `yaml:"referenceSalary"`
	Budget          *BudgetConfig    `yaml:"budget,omitempty"`
	Logging         LoggingConfig    `yaml:"logging,omitempty"`
	Output          OutputConfig     `yaml:"output,omitempty"`
}

// LoanConfig holds the mortgage being compared. Rates are decimal fractions
// (0.08 means 8%) and terms are whole years.
type LoanConfig struct {
	Principal          float64 `yaml:"principal"`
	AnnualInterestRate float64 `yaml:"annualInterestRate"`
	MinTermYears       int     `yaml:"minTermYears,omitempty"`
	MaxTermYears       int     `yaml:"maxTermYears,omitempty"`
}

// InvestmentConfig holds the assumed return for the opportunity projections.
type InvestmentConfig struct {
	AnnualReturnRate float64 `yaml:"annualReturnRate"`
}

// InflationConfig holds the discount rate for present-value projections.
type InflationConfig struct {
	AnnualRate float64 `yaml:"annualRate"`
}

// BudgetConfig enables the term recommendation when present.
type BudgetConfig struct {
	MaxMonthlyPayment float64 `yaml:"maxMonthlyPayment"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory source, e.g. an HTTP upload.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

// applyDefaults fills in the sweep range when the config omits it.
func (conf *Configuration) applyDefaults() {
	if conf.Loan.MinTermYears == 0 {
		conf.Loan.MinTermYears = constants.DefaultMinTermYears
	}
	if conf.Loan.MaxTermYears == 0 {
		conf.Loan.MaxTermYears = constants.DefaultMaxTermYears
	}
}

// Validate fails fast on inputs the sweep cannot compute with. All errors
// wrap ErrInvalidInput.
func (conf *Configuration) Validate() error {
	if conf.Loan.Principal <= 0 {
		return fmt.Errorf("%w: loan.principal must be positive, got %.2f", ErrInvalidInput, conf.Loan.Principal)
	}
	if conf.Loan.AnnualInterestRate < 0 {
		return fmt.Errorf("%w: loan.annualInterestRate must not be negative, got %v", ErrInvalidInput, conf.Loan.AnnualInterestRate)
	}
	if conf.Loan.MinTermYears < 1 {
		return fmt.Errorf("%w: loan.minTermYears must be at least 1, got %d", ErrInvalidInput, conf.Loan.MinTermYears)
	}
	if conf.Loan.MaxTermYears < conf.Loan.MinTermYears {
		return fmt.Errorf("%w: loan.maxTermYears (%d) must not be below loan.minTermYears (%d)",
			ErrInvalidInput, conf.Loan.MaxTermYears, conf.Loan.MinTermYears)
	}
	if conf.Investment.AnnualReturnRate < 0 {
		return fmt.Errorf("%w: investment.annualReturnRate must not be negative, got %v", ErrInvalidInput, conf.Investment.AnnualReturnRate)
	}
	if conf.Inflation.AnnualRate <= -1 {
		return fmt.Errorf("%w: inflation.annualRate must exceed -1, got %v", ErrInvalidInput, conf.Inflation.AnnualRate)
	}
	if conf.ReferenceSalary < 0 {
		return fmt.Errorf("%w: referenceSalary must not be negative, got %.2f", ErrInvalidInput, conf.ReferenceSalary)
	}
	if conf.Budget != nil && conf.Budget.MaxMonthlyPayment <= 0 {
		return fmt.Errorf("%w: budget.maxMonthlyPayment must be positive, got %.2f", ErrInvalidInput, conf.Budget.MaxMonthlyPayment)
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	rateChecks := []struct {
		name string
		rate float64
	}{
		{"loan.annualInterestRate", conf.Loan.AnnualInterestRate},
		{"investment.annualReturnRate", conf.Investment.AnnualReturnRate},
		{"inflation.annualRate", conf.Inflation.AnnualRate},
	}
	for _, check := range rateChecks {
		if warning := validation.ValidateRateScale(check.name, check.rate); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	warnings = append(warnings, validation.ValidateInvestmentAssumptions(conf.Investment.AnnualReturnRate, conf.Inflation.AnnualRate)...)

	// The baseline payment is the smallest of the sweep; a salary below it
	// leaves nothing to invest at any term.
	baselinePayment, err := loans.CalculateMonthlyPayment(conf.Loan.Principal, conf.Loan.AnnualInterestRate, conf.Loan.MaxTermYears)
	if err == nil {
		if warning := validation.ValidateSalaryCoverage(conf.ReferenceSalary, baselinePayment); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	return warnings
}
