package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/BryanSetuke/BRASET497-BCL2401-A-Bryan-Setuke-DJS06/aggregate"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DJS06_FORMAT", "")
	t.Setenv("DJS06_MAX_NAME_LEN", "")
	t.Setenv("DJS06_EXTREMES_MODE", "")
	t.Setenv("DJS06_LOG_MODE", "")
	c := Load()
	if c.Format != "text" {
		t.Fatalf("Format default")
	}
	if c.MaxNameLen != 5 {
		t.Fatalf("MaxNameLen default")
	}
	if c.ExtremesMode != aggregate.ExtremesFiltered {
		t.Fatalf("ExtremesMode default")
	}
	if c.LogMode != "dev" {
		t.Fatalf("LogMode default")
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DJS06_FORMAT", "YAML")
	t.Setenv("DJS06_MAX_NAME_LEN", "6")
	t.Setenv("DJS06_EXTREMES_MODE", "permissive")
	t.Setenv("DJS06_LOG_MODE", "nop")
	c := Load()
	if c.Format != "yaml" {
		t.Fatalf("Format env")
	}
	if c.MaxNameLen != 6 {
		t.Fatalf("MaxNameLen env")
	}
	if c.ExtremesMode != aggregate.ExtremesPermissive {
		t.Fatalf("ExtremesMode env")
	}
	if c.LogMode != "nop" {
		t.Fatalf("LogMode env")
	}
}

func TestValidateRejectsNonIntegerLength(t *testing.T) {
	for _, v := range []string{"abc", "five", "5.5"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("DJS06_FORMAT", "")
			t.Setenv("DJS06_EXTREMES_MODE", "")
			t.Setenv("DJS06_LOG_MODE", "")
			t.Setenv("DJS06_MAX_NAME_LEN", v)
			err := Load().Validate()
			if !errors.Is(err, ErrInvalidOption) {
				t.Fatalf("Validate = %v; want ErrInvalidOption", err)
			}
			if !strings.Contains(err.Error(), v) {
				t.Fatalf("error %q does not name the bad value", err)
			}
		})
	}
}

func TestValidateAcceptsIntegerLength(t *testing.T) {
	t.Setenv("DJS06_FORMAT", "")
	t.Setenv("DJS06_EXTREMES_MODE", "")
	t.Setenv("DJS06_LOG_MODE", "")
	t.Setenv("DJS06_MAX_NAME_LEN", " 0 ")
	c := Load()
	if c.MaxNameLen != 0 {
		t.Fatalf("MaxNameLen = %d; want 0", c.MaxNameLen)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate = %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]Config{
		"format":   {Format: "xml", MaxNameLen: 5, ExtremesMode: aggregate.ExtremesFiltered, LogMode: "dev"},
		"length":   {Format: "text", MaxNameLen: -1, ExtremesMode: aggregate.ExtremesFiltered, LogMode: "dev"},
		"extremes": {Format: "text", MaxNameLen: 5, ExtremesMode: "loose", LogMode: "dev"},
		"log mode": {Format: "text", MaxNameLen: 5, ExtremesMode: aggregate.ExtremesFiltered, LogMode: "loud"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if err := c.Validate(); !errors.Is(err, ErrInvalidOption) {
				t.Fatalf("Validate = %v; want ErrInvalidOption", err)
			}
		})
	}
}

func TestValidateWrapsModeError(t *testing.T) {
	c := Config{Format: "text", ExtremesMode: "loose", LogMode: "dev"}
	if err := c.Validate(); !errors.Is(err, aggregate.ErrUnknownMode) {
		t.Fatalf("Validate = %v; want ErrUnknownMode in chain", err)
	}
}
