package main

import (
	"os"

	"github.com/rs/zerolog"

	innovation "github.com/innovation-engine/innovation"
	"github.com/innovation-engine/innovation/cards"
	"github.com/innovation-engine/innovation/server"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	set := cards.BaseSet()
	if cfg.CardsPath != "" {
		f, err := os.Open(cfg.CardsPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.CardsPath).Msg("could not open card table")
		}
		set, err = cards.LoadJSON(f)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.CardsPath).Msg("could not load card table")
		}
	}

	engine, err := innovation.NewEngine(set, innovation.BaseRegistry())
	if err != nil {
		log.Fatal().Err(err).Msg("could not build engine")
	}

	s := server.NewServer(engine, innovation.NewInMemoryGameStore(), cfg, log)
	log.Info().Str("addr", cfg.Addr).Msg("listening")
	if err := s.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
