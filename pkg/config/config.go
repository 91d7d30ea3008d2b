// Zaparoo Clock
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Clock.
//
// Zaparoo Clock is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Clock is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Clock.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZaparooProject/zaparoo-clock/pkg/helpers/syncutil"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	SchemaVersion = 1
	CfgEnv        = "ZAPAROO_CLOCK_CFG"
	// recordSize mirrors persist.RecordSize; config must not import the
	// storage layers.
	recordSize = 8
)

var ErrInvalid = errors.New("invalid config")

type Values struct {
	Storage      Storage `toml:"storage"`
	RTC          RTC     `toml:"rtc"`
	Input        Input   `toml:"input,omitempty"`
	Display      Display `toml:"display"`
	Sensor       Sensor  `toml:"sensor,omitempty"`
	ConfigSchema int     `toml:"config_schema"`
	DebugLogging bool    `toml:"debug_logging"`
}

type Storage struct {
	// Backend is one of "file", "bolt" or "memory".
	Backend string `toml:"backend" validate:"oneof=file bolt memory"`
	// Path of the EEPROM image; relative paths resolve against the data
	// directory. Empty uses the backend's default file name.
	Path    string `toml:"path,omitempty"`
	Size    int    `toml:"size" validate:"gte=8,lte=1048576"`
	Address int    `toml:"address" validate:"gte=0"`
}

type RTC struct {
	TickPeriod string `toml:"tick_period" validate:"oneof=2hz 4hz 8hz 1s 2s"`
}

type Display struct {
	Theme string `toml:"theme" validate:"oneof=blue green"`
	Cols  int    `toml:"cols" validate:"gte=8,lte=40"`
	Rows  int    `toml:"rows" validate:"gte=1,lte=4"`
}

type Input struct {
	SerialPort string `toml:"serial_port,omitempty"`
	Baud       int    `toml:"baud,omitempty" validate:"omitempty,gte=300"`
}

type Sensor struct {
	// LightPath is a file holding a raw 0..1023 light sample, typically an
	// ADC sysfs node. Empty disables the sensor.
	LightPath      string `toml:"light_path,omitempty"`
	LightThreshold int    `toml:"light_threshold" validate:"gte=0,lte=100"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Storage: Storage{
		Backend: "file",
		Size:    1024,
		Address: 0,
	},
	RTC: RTC{
		TickPeriod: "4hz",
	},
	Display: Display{
		Theme: "blue",
		Cols:  16,
		Rows:  2,
	},
	Input: Input{
		Baud: DefaultBaud,
	},
	Sensor: Sensor{
		LightThreshold: 50,
	},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges and that the saved record fits in storage.
//
//nolint:gocritic // config struct copied for immutability
func Validate(v Values) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if v.Storage.Address+recordSize > v.Storage.Size {
		return fmt.Errorf(
			"%w: storage address %d leaves no room for the record in %d bytes",
			ErrInvalid, v.Storage.Address, v.Storage.Size,
		)
	}
	return nil
}

type Instance struct {
	fs       afero.Fs
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

// NewConfig loads the config file from configDir, or from the path in the
// ZAPAROO_CLOCK_CFG environment variable, writing defaults first if the
// file does not exist.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(fs afero.Fs, configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		fs:       fs,
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := fs.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := fs.MkdirAll(filepath.Dir(cfgPath), 0o750)
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

	data, err := afero.ReadFile(c.fs, c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
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
		return errors.New("schema version mismatch")
	}

	if err := Validate(newVals); err != nil {
		return err
	}

	c.vals = newVals
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

	if err := afero.WriteFile(c.fs, c.cfgPath, data, 0o600); err != nil {
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

func (c *Instance) StorageBackend() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Storage.Backend
}

// StoragePath returns the EEPROM image path for the configured backend,
// resolving relative and empty paths against dataDir.
func (c *Instance) StoragePath(dataDir string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.vals.Storage.Path
	if path == "" {
		if c.vals.Storage.Backend == "bolt" {
			path = BoltFile
		} else {
			path = EEPROMFile
		}
	}

	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dataDir, path)
}

func (c *Instance) StorageSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Storage.Size
}

func (c *Instance) StorageAddress() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Storage.Address
}

func (c *Instance) TickPeriod() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.RTC.TickPeriod
}

func (c *Instance) DisplaySize() (cols, rows int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Display.Cols, c.vals.Display.Rows
}

func (c *Instance) DisplayTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Display.Theme
}

func (c *Instance) SerialPort() (path string, baud int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	baud = c.vals.Input.Baud
	if baud == 0 {
		baud = DefaultBaud
	}
	return c.vals.Input.SerialPort, baud
}

func (c *Instance) LightSensorPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Sensor.LightPath
}

func (c *Instance) LightThreshold() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Sensor.LightThreshold
}
