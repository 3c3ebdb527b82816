// SAMKit
// Copyright (c) 2026 The SAMKit Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of SAMKit.
//
// SAMKit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SAMKit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SAMKit.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/samkit-project/samkit/pkg/helpers/syncutil"
)

const (
	SchemaVersion = 1
	CfgEnv        = "SAMKIT_CFG"
	CfgFile       = "config.toml"
	AuthFile      = "auth.toml"
)

var ErrSchemaMismatch = errors.New("schema version mismatch")

type Values struct {
	Catalog      Catalog `toml:"catalog"`
	HTTP         HTTP    `toml:"http"`
	Filter       Filter  `toml:"filter"`
	Files        Files   `toml:"files"`
	Steam        Steam   `toml:"steam,omitempty"`
	ConfigSchema int     `toml:"config_schema"`
	DebugLogging bool    `toml:"debug_logging"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Catalog: Catalog{
		AppListURL:     DefaultAppListURL,
		AppDetailsURL:  DefaultAppDetailsURL,
		DetailsFilters: DefaultDetailsFilters,
	},
	HTTP: HTTP{
		Timeout: "30s",
	},
	Filter: Filter{
		RateLimitCooldown:     "2m",
		GatewayBackoff:        "500ms",
		EntryDelay:            "100ms",
		TransportRetryInitial: "250ms",
		TransportRetryMax:     "30s",
	},
	Files: Files{
		AppList:  "./app_list_all.json",
		Filtered: "./app_list_game_w_achievements.json",
	},
	Steam: Steam{
		CheckFlatpak: true,
	},
}

type Instance struct {
	cfgPath  string
	authPath string
	auth     map[string]CredentialEntry
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

// NewConfig loads the config file from configDir, or from the path in
// SAMKIT_CFG when set. A missing file is created from defaults.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	return NewConfigAt(cfgPath, defaults)
}

// NewConfigAt loads the config file at an explicit path.
//
//nolint:gocritic // config struct copied for immutability
func NewConfigAt(cfgPath string, defaults Values) (*Instance, error) {
	cfg := Instance{
		cfgPath:  cfgPath,
		authPath: filepath.Join(filepath.Dir(cfgPath), AuthFile),
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Str("path", cfgPath).Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults so fields missing from the file keep their values.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return ErrSchemaMismatch
	}

	if err := Validate(&newVals); err != nil {
		return err
	}

	c.vals = newVals

	c.auth = nil
	if _, err := os.Stat(c.authPath); err == nil {
		log.Info().Msg("loading auth file")
		authData, err := os.ReadFile(c.authPath)
		if err != nil {
			return fmt.Errorf("failed to read auth file: %w", err)
		}
		c.auth = LoadAuthFromData(authData)
		log.Info().Msgf("loaded %d auth entries", len(c.auth))
	}

	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfgPath
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

// LookupAuth returns the credentials configured for reqURL, if any.
func (c *Instance) LookupAuth(reqURL string) *CredentialEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return LookupAuth(c.auth, reqURL)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("duration", validateDuration)
	return v
}

// validateDuration accepts an empty string or anything time.ParseDuration
// understands.
func validateDuration(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	_, err := time.ParseDuration(val)
	return err == nil
}

// Validate checks config values against their struct tags.
func Validate(vals *Values) error {
	if err := validate.Struct(vals); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// parseDuration parses a validated duration string, falling back to def for
// an empty value.
func parseDuration(val string, def time.Duration) time.Duration {
	if val == "" {
		return def
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		log.Warn().Err(err).Str("value", val).Msg("invalid duration in config, using default")
		return def
	}
	return d
}
