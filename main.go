package main

import (
	"flag"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"forestlab/contract"
	"forestlab/sdk"
	"forestlab/store"
)

// Thin wiring entry: opens the durable store, builds an engine from production
// collaborators and dumps the current ledger summary. Host integrations embed
// the contract package directly; this binary exists for inspection.
func main() {
	dataDir := flag.String("data", "data", "storage directory")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	st, err := store.Open(*dataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}
	defer st.Close()

	engine := contract.New(
		st,
		sdk.NewJournalLedger(os.Stdout),
		sdk.NewLogSink(os.Stdout),
		clock.New(),
		log,
	)

	platform, err := engine.GetPlatform()
	if err != nil {
		log.Fatal().Err(err).Msg("read platform")
	}
	if platform == nil {
		log.Info().Msg("platform not initialized")
		return
	}
	ids, err := engine.ListProjectIDs()
	if err != nil {
		log.Fatal().Err(err).Msg("read project index")
	}
	log.Info().
		Str("authority", platform.Authority.String()).
		Bool("active", platform.IsActive).
		Uint64("total_projects", platform.TotalProjects).
		Uint64("total_staked", platform.TotalStaked).
		Int("indexed_projects", len(ids)).
		Msg("ledger summary")
}
