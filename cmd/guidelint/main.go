// Package main provides the entry point for the guidelint tool.
package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/thebtf/gormguide/internal/cli"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := cli.Execute(); err != nil {
		if errors.Is(err, cli.ErrViolationsFound) {
			log.Error().Err(err).Msg("Guide is not clean")
			os.Exit(1)
		}
		log.Error().Err(err).Msg("guidelint failed")
		os.Exit(2)
	}
}
