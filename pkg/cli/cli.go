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

// Package cli parses the samkit command line and runs its subcommands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samkit-project/samkit/pkg/config"
	"github.com/samkit-project/samkit/pkg/helpers"
)

// ErrUsage is returned for a command line that does not name a command or
// has bad flags.
var ErrUsage = errors.New("invalid usage")

type command func(a *App, ctx context.Context, args []string) error

var commands = map[string]command{
	"applist download-full": (*App).DownloadFull,
	"applist filter":        (*App).Filter,
	"owned":                 (*App).Owned,
}

const usageText = `Usage: samkit [-config path] [-debug] <command> [flags]

Commands:
  applist download-full [-o file]            download the full Steam app list
  applist filter [-i file] [-o file] [-limit n]
                                             keep games that have achievements
  owned [-i file] [-o file] [-steam-dir dir] list apps owned by the Steam user

Global flags:
`

// Flags are the global flags shared by every command.
type Flags struct {
	Config  *string
	Debug   *bool
	Version *bool
}

// SetupFlags defines the global flags on fs.
func SetupFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		Config: fs.String(
			"config",
			"",
			"path to config.toml (default: user config dir)",
		),
		Debug: fs.Bool(
			"debug",
			false,
			"log debug output to stderr",
		),
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
	}
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

// lookupCommand resolves the longest command name at the head of args.
func lookupCommand(args []string) (command, []string, error) {
	if len(args) == 0 {
		return nil, nil, fmt.Errorf("%w: no command given", ErrUsage)
	}
	if len(args) >= 2 {
		if cmd, ok := commands[args[0]+" "+args[1]]; ok {
			return cmd, args[2:], nil
		}
	}
	if cmd, ok := commands[args[0]]; ok {
		return cmd, args[1:], nil
	}
	return nil, nil, fmt.Errorf("%w: unknown command %q", ErrUsage, strings.Join(args[:min(2, len(args))], " "))
}

// Setup initializes logging and loads the config. An empty cfgPath uses
// the user config dir, or SAMKIT_CFG when set.
func Setup(cfgPath string, debug bool, writers []io.Writer) (*config.Instance, error) {
	err := helpers.InitLogging(helpers.LogDir(), debug, writers...)
	if err != nil {
		return nil, fmt.Errorf("error initializing logging: %w", err)
	}

	var cfg *config.Instance
	if cfgPath != "" {
		cfg, err = config.NewConfigAt(cfgPath, config.BaseDefaults)
	} else {
		cfg, err = config.NewConfig(helpers.ConfigDir(), config.BaseDefaults)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if debug || cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return cfg, nil
}

// Main parses args (without the program name), sets up the environment
// and runs the selected command.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet(config.AppName, stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}
	flags := SetupFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if *flags.Version {
		_, _ = fmt.Fprintf(stdout, "samkit v%s\n", config.AppVersion)
		return nil
	}

	cmd, rest, err := lookupCommand(fs.Args())
	if err != nil {
		fs.Usage()
		return err
	}

	var writers []io.Writer
	if *flags.Debug {
		writers = append(writers, helpers.ConsoleWriter())
	}

	cfg, err := Setup(*flags.Config, *flags.Debug, writers)
	if err != nil {
		return err
	}

	log.Info().Str("version", config.AppVersion).Strs("args", fs.Args()).Msg("samkit starting")
	return cmd(NewApp(cfg, stdout, stderr), ctx, rest)
}
