package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/sirupsen/logrus"
	"room-summary/internal/adapters/output/persistence"
	"room-summary/internal/domain/service"
)

func main() {
	snapshotPath := flag.String("snapshot", envOr("ROOM_SNAPSHOT", "snapshot.json"), "path to the state/registry snapshot (JSON)")
	configPath := flag.String("config", envOr("ROOM_CONFIG", "card.yaml"), "path to the card configuration (YAML)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx := context.Background()

	// Card config
	cfg, err := persistence.NewYAMLCardConfigRepository(*configPath).Get(ctx)
	if err != nil {
		logger.WithError(err).Fatal("could not load card config")
	}
	if cfg == nil {
		logger.WithField("path", *configPath).Warn("no card config found")
	}

	// Snapshot
	source := persistence.NewJSONSnapshotSource(*snapshotPath, logger)
	roomService := service.NewRoomService(source, logger)

	summary, err := roomService.Summarize(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("could not summarize room")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		logger.WithError(err).Fatal("could not write summary")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
