package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/midbel/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/daviddao/timeperiod/pkg/period"
)

const (
	defaultDir    = ".timeperiod"
	defaultDB     = defaultDir + "/timeperiod.db"
	defaultConfig = defaultDir + "/config.toml"
)

// settings is the content of the TOML settings file.
type settings struct {
	DB        string `toml:"db" validate:"required"`
	Precision string `toml:"precision" validate:"required"`
	Location  string `toml:"location" validate:"required"`
	LogLevel  string `toml:"log_level" validate:"required,oneof=debug info warn error"`
}

var validate = newValidator()

// newValidator reports fields by their TOML key.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("toml")
	})
	return v
}

// validateSettings checks settings against their validation tags.
func validateSettings(s settings) error {
	err := validate.Struct(s)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", e.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
}

func defaultSettings() settings {
	return settings{
		DB:        defaultDB,
		Precision: period.Day.String(),
		Location:  "UTC",
		LogLevel:  "warn",
	}
}

// loadSettings reads the settings file, then applies environment
// overrides. A missing default file is not an error; a missing file named
// by TIMEPERIOD_CONFIG is.
func loadSettings() (settings, error) {
	s := defaultSettings()
	path := envOr("TIMEPERIOD_CONFIG", defaultConfig)
	switch _, err := os.Stat(path); {
	case err == nil:
		if err := toml.DecodeFile(path, &s); err != nil {
			return s, fmt.Errorf("read config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && path == defaultConfig:
	default:
		return s, fmt.Errorf("read config %s: %w", path, err)
	}
	s.DB = envOr("TIMEPERIOD_DB", s.DB)
	s.Precision = envOr("TIMEPERIOD_PRECISION", s.Precision)
	return s, nil
}

// resolved turns settings into the values commands work with.
func (s settings) resolved() (period.Precision, *time.Location, error) {
	if err := validateSettings(s); err != nil {
		return 0, nil, err
	}
	prec, err := period.ParsePrecision(s.Precision)
	if err != nil {
		return 0, nil, fmt.Errorf("config precision: %w", err)
	}
	loc, err := time.LoadLocation(s.Location)
	if err != nil {
		return 0, nil, fmt.Errorf("config location: %w", err)
	}
	return prec, loc, nil
}

// newLogger builds a development logger on stderr at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("config log_level: %w", err)
	}
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	return config.Build()
}

// ensureDir creates the parent directory of the default database.
func ensureDir(dbPath string) error {
	if dbPath != defaultDB {
		return nil
	}
	if err := os.MkdirAll(defaultDir, 0755); err != nil {
		return fmt.Errorf("cannot create %s: %w", defaultDir, err)
	}
	return nil
}
