/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the generator settings. Environment variables provide the
// defaults; command-line flags override them.
type Config struct {
	// Input datasets.
	SubdivisionsPath string `env:"SUBDIVISIONS" envDefault:"data/data_iso_3166-2.json"`
	CountriesPath    string `env:"COUNTRIES"    envDefault:"data/data_iso_3166-1.json"`

	// TemplatePath replaces the embedded template when set.
	TemplatePath string `env:"TEMPLATE"`

	// Output file; "-" writes to stdout.
	OutPath string `env:"OUT"     envDefault:"table_gen.go"`
	Package string `env:"PACKAGE" envDefault:"subdivision"`

	DatasetVersion string `env:"DATASET_VERSION"`

	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// envPrefix namespaces every variable Config reads.
const envPrefix = "DXISO_GEN_"

// loadConfig reads the DXISO_GEN_* environment from environ and then applies
// the flags in args on top of it.
func loadConfig(args []string, environ map[string]string, stderr io.Writer) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix, Environment: environ}); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	fs := flag.NewFlagSet("dxiso-gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.SubdivisionsPath, "subdivisions", cfg.SubdivisionsPath, "ISO 3166-2 dataset (JSON or YAML)")
	fs.StringVar(&cfg.CountriesPath, "countries", cfg.CountriesPath, "ISO 3166-1 dataset (JSON or YAML)")
	fs.StringVar(&cfg.TemplatePath, "template", cfg.TemplatePath, "template file replacing the embedded one")
	fs.StringVar(&cfg.OutPath, "out", cfg.OutPath, `output file, "-" for stdout`)
	fs.StringVar(&cfg.Package, "package", cfg.Package, "package clause of the generated file")
	fs.StringVar(&cfg.DatasetVersion, "dataset-version", cfg.DatasetVersion, "semantic version of the dataset release")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "text or json")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("config: unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if cfg.SubdivisionsPath == "" || cfg.CountriesPath == "" || cfg.OutPath == "" {
		return nil, fmt.Errorf("config: -subdivisions, -countries and -out must not be empty")
	}
	return cfg, nil
}

// NewLogger creates the logger described by the configuration. Logs go to w
// so that "-out -" keeps stdout clean.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(c.LogFormat) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
