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

// Command dxiso-gen renders the ISO 3166-2 subdivision table of
// dxcore/model/iso3166/subdivision from the iso-codes datasets.
//
// It is meant to run from go:generate:
//
//	//go:generate go run dirpx.dev/dxiso/cmd/dxiso-gen -out table_gen.go
//
// Every setting can also come from a DXISO_GEN_* environment variable; see
// Config. The output file is replaced atomically and only when generation
// succeeds.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"dirpx.dev/dxiso/dxcore/gen/iso3166"
	"github.com/caarlos0/env/v11"
)

func main() {
	// Startup errors before the configured logger exists are still
	// structured.
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := loadConfig(os.Args[1:], env.ToMap(os.Environ()), os.Stderr)
	must(log, err, "load configuration")

	log = cfg.NewLogger(os.Stderr).With(slog.String("app", iso3166.GeneratorName))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	must(log, run(ctx, cfg, log, os.Stdout), "generate subdivision table")
}

// run generates the table and writes it to cfg.OutPath, or to stdout when
// the path is "-".
func run(ctx context.Context, cfg *Config, log *slog.Logger, stdout io.Writer) error {
	src, err := iso3166.Generate(ctx, iso3166.Options{
		SubdivisionsPath: cfg.SubdivisionsPath,
		CountriesPath:    cfg.CountriesPath,
		TemplatePath:     cfg.TemplatePath,
		Package:          cfg.Package,
		DatasetVersion:   cfg.DatasetVersion,
		Logger:           log,
	})
	if err != nil {
		return err
	}

	if cfg.OutPath == "-" {
		_, err := stdout.Write(src)
		return err
	}
	if err := writeFile(cfg.OutPath, src); err != nil {
		return err
	}
	log.Info("output written", slog.String("path", cfg.OutPath), slog.Int("bytes", len(src)))
	return nil
}

// writeFile replaces path with data through a temporary file in the same
// directory, so readers never observe a partial table.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("dxiso-gen failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
