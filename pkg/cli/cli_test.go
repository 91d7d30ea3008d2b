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

package cli

import (
	"bytes"
	"errors"
	"flag"
	"path/filepath"
	"testing"

	"github.com/ZaparooProject/zaparoo-clock/pkg/config"
	"github.com/ZaparooProject/zaparoo-clock/pkg/platforms"
	"github.com/ZaparooProject/zaparoo-clock/pkg/testing/mocks"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	f := newFlags(flag.NewFlagSet("test", flag.ContinueOnError))
	require.NoError(t, f.set.Parse(args))
	return f
}

func noPorts() ([]string, error) {
	return nil, nil
}

func TestPreVersion(t *testing.T) {
	t.Parallel()

	f := parseFlags(t, "-version")
	var out bytes.Buffer
	assert.True(t, f.pre(&out, mocks.NewMockPlatform(), noPorts))
	assert.Equal(t, "Zaparoo Clock v"+config.AppVersion+" ("+platforms.PlatformIDTest+")\n", out.String())
}

func TestPreListPorts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		list func() ([]string, error)
		name string
		want string
	}{
		{
			name: "ports",
			list: func() ([]string, error) { return []string{"/dev/ttyUSB0", "/dev/ttyACM0"}, nil },
			want: "/dev/ttyUSB0\n/dev/ttyACM0\n",
		},
		{
			name: "none",
			list: noPorts,
			want: "No serial ports found.\n",
		},
		{
			name: "error",
			list: func() ([]string, error) { return nil, errors.New("no sysfs") },
			want: "Error listing serial ports: no sysfs\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := parseFlags(t, "-list-ports")
			var out bytes.Buffer
			assert.True(t, f.pre(&out, mocks.NewMockPlatform(), tt.list))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestPreNoImmediateFlags(t *testing.T) {
	t.Parallel()

	f := parseFlags(t, "-reset")
	var out bytes.Buffer
	assert.False(t, f.pre(&out, mocks.NewMockPlatform(), noPorts))
	assert.Empty(t, out.String())
	assert.True(t, *f.Reset)
}

func TestParseRejectsUnknownFlag(t *testing.T) {
	t.Parallel()

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.SetOutput(&bytes.Buffer{})
	f := newFlags(set)
	require.Error(t, f.set.Parse([]string{"-write", "x"}))
}

//nolint:paralleltest // modifies the global logger
func TestSetup(t *testing.T) {
	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	t.Setenv(config.CfgEnv, "")

	root := t.TempDir()
	pl := mocks.NewMockPlatform()
	pl.On("Settings").Return(platforms.Settings{
		DataDir:   filepath.Join(root, "data"),
		ConfigDir: filepath.Join(root, "config"),
		TempDir:   filepath.Join(root, "tmp"),
	})

	cfg, err := Setup(pl, config.BaseDefaults, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "config", config.CfgFile), cfg.Path())
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.DirExists(t, filepath.Join(root, "data"))
}

//nolint:paralleltest // modifies the global log level
func TestPostDebugFlag(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prevLevel) })
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	t.Setenv(config.CfgEnv, "")

	cfg, err := config.NewConfig(afero.NewMemMapFs(), "/cfg", config.BaseDefaults)
	require.NoError(t, err)

	f := parseFlags(t)
	f.applyDebug(cfg)
	assert.False(t, cfg.DebugLogging())
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	f = parseFlags(t, "-debug")
	f.Post(cfg, mocks.NewMockPlatform())
	assert.True(t, cfg.DebugLogging())
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}
