package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	configureLogging()
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("weakget failed")
		os.Exit(1)
	}
}
