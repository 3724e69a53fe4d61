// Package config provides runtime settings for the walkthrough, read from the
// environment with defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BryanSetuke/BRASET497-BCL2401-A-Bryan-Setuke-DJS06/aggregate"
)

// ErrInvalidOption is returned by [Config.Validate] for an out-of-range setting.
var ErrInvalidOption = errors.New("config: invalid option value")

// Config holds the knobs read from the environment.
type Config struct {
	Format       string
	MaxNameLen   int
	ExtremesMode aggregate.ExtremesMode
	LogMode      string

	// rawMaxNameLen is DJS06_MAX_NAME_LEN as read, kept so Validate can
	// report a value atoienv could not parse.
	rawMaxNameLen string
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Load collects configuration from the environment with defaults. Values are
// not checked; call Validate.
func Load() Config {
	return Config{
		Format:       strings.ToLower(getenv("DJS06_FORMAT", "text")),
		MaxNameLen:   atoienv("DJS06_MAX_NAME_LEN", 5),
		ExtremesMode: aggregate.ExtremesMode(strings.ToLower(getenv("DJS06_EXTREMES_MODE", string(aggregate.ExtremesFiltered)))),
		LogMode:      strings.ToLower(getenv("DJS06_LOG_MODE", "dev")),

		rawMaxNameLen: getenv("DJS06_MAX_NAME_LEN", ""),
	}
}

// Validate checks every field and joins all problems into one error.
func (c Config) Validate() error {
	var errs []error
	switch c.Format {
	case "text", "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("%w: format %q must be text, json or yaml", ErrInvalidOption, c.Format))
	}
	if c.rawMaxNameLen != "" {
		if _, err := strconv.Atoi(c.rawMaxNameLen); err != nil {
			errs = append(errs, fmt.Errorf("%w: max name length %q is not an integer", ErrInvalidOption, c.rawMaxNameLen))
		}
	}
	if c.MaxNameLen < 0 {
		errs = append(errs, fmt.Errorf("%w: max name length %d must not be negative", ErrInvalidOption, c.MaxNameLen))
	}
	if _, err := aggregate.ParseExtremesMode(string(c.ExtremesMode)); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidOption, err))
	}
	switch c.LogMode {
	case "dev", "development", "prod", "production", "nop":
	default:
		errs = append(errs, fmt.Errorf("%w: log mode %q must be dev, prod or nop", ErrInvalidOption, c.LogMode))
	}
	return errors.Join(errs...)
}
