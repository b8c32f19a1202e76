// Package config loads and validates the YAML ward configuration consumed
// by the CLI commands.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/ward-roster/pkg/core/roster"
)

// NurseEntry is one staff record as written in YAML. ReqOff and FixedWork
// stay free text here; they're parsed into structured fields by
// roster.Normalize at the point the config is turned into a roster.Input.
type NurseEntry struct {
	Name        string `yaml:"name" validate:"required"`
	Role        string `yaml:"role" validate:"required,oneof=HN RN AN"`
	ReqOff      string `yaml:"reqOff,omitempty"`
	FixedWork   string `yaml:"fixedWork,omitempty"`
	AnnualLeave int    `yaml:"annualLeave,omitempty" validate:"gte=0"`
}

// RecurringHoliday expands an rrule over the target month into individual
// holiday days. Kept at the config boundary (§9 Design Notes): the core
// roster package only ever sees a resolved day set.
type RecurringHoliday struct {
	RRule string `yaml:"rrule" validate:"required"`
}

// Config is the top-level ward configuration.
type Config struct {
	Ward              string             `yaml:"ward" validate:"required"`
	Year              int                `yaml:"year" validate:"required,gte=1970"`
	Month             int                `yaml:"month" validate:"required,gte=1,lte=12"`
	Staff             []NurseEntry       `yaml:"staff" validate:"required,dive"`
	Holidays          []int              `yaml:"holidays,omitempty" validate:"dive,gte=1,lte=31"`
	RecurringHolidays []RecurringHoliday `yaml:"recurringHolidays,omitempty" validate:"dive"`
	MaxAttempts       int                `yaml:"maxAttempts,omitempty" validate:"omitempty,gte=1"`
	Seed              int64              `yaml:"seed,omitempty"`
	AuditDSN          string             `yaml:"auditDSN,omitempty"`
	ExportPath        string             `yaml:"exportPath,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates the configuration with an environment
// suffix. For example, env="test" looks for "ward_roster_config.test.yaml".
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}
	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax for
// every recurring holiday entry.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, rh := range cfg.RecurringHolidays {
		if _, err := rrule.StrToRRule(rh.RRule); err != nil {
			return fmt.Errorf("invalid rrule in recurringHolidays[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for the config file in the current directory and
// home directory. If env is provided, it's added as an extension (e.g.
// "ward_roster_config.test.yaml").
func findConfigFile(env string) (string, error) {
	configFileName := "ward_roster_config.yaml"
	if env != "" {
		configFileName = "ward_roster_config." + env + ".yaml"
	}

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}

// ResolvedHolidays expands every RecurringHoliday's rrule across the target
// month and unions the result with the explicit Holidays list, producing the
// plain roster.DaySet the core package expects.
func (c *Config) ResolvedHolidays() (roster.DaySet, error) {
	out := make(roster.DaySet, len(c.Holidays))
	for _, d := range c.Holidays {
		out[d] = true
	}

	if len(c.RecurringHolidays) == 0 {
		return out, nil
	}

	lastDay := daysInMonth(c.Year, c.Month)
	monthStart := dateUTC(c.Year, c.Month, 1)
	monthEnd := dateUTC(c.Year, c.Month, lastDay)

	for i, rh := range c.RecurringHolidays {
		opt, err := rrule.StrToROption(rh.RRule)
		if err != nil {
			return nil, fmt.Errorf("recurringHolidays[%d]: %w", i, err)
		}
		// Anchor the rule at the month start so unbounded frequencies
		// (weekly/monthly with no DTSTART of their own) don't have to
		// iterate from a zero-value start date.
		opt.Dtstart = monthStart

		r, err := rrule.NewRRule(*opt)
		if err != nil {
			return nil, fmt.Errorf("recurringHolidays[%d]: %w", i, err)
		}
		for _, occ := range r.Between(monthStart, monthEnd, true) {
			out[occ.Day()] = true
		}
	}

	return out, nil
}

// ToInput converts the loaded config into the structured roster.Input the
// core package consumes, parsing each staff entry's free-text fields via
// roster.Normalize.
func (c *Config) ToInput() (roster.Input, error) {
	lastDay := daysInMonth(c.Year, c.Month)

	holidays, err := c.ResolvedHolidays()
	if err != nil {
		return roster.Input{}, err
	}

	staff := make([]roster.Nurse, 0, len(c.Staff))
	for _, entry := range c.Staff {
		staff = append(staff, roster.Normalize(
			entry.Name,
			roster.Role(entry.Role),
			entry.ReqOff,
			entry.FixedWork,
			entry.AnnualLeave,
			lastDay,
		))
	}

	return roster.Input{
		Year:     c.Year,
		Month:    c.Month,
		Staff:    staff,
		Holidays: holidays,
	}, nil
}
