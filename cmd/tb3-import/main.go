package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/tb3/internal/config"
	"github.com/claude/tb3/internal/models"
	"github.com/claude/tb3/internal/storage"
	"github.com/claude/tb3/internal/validate"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	backupPath := flag.String("file", "", "path to TB3 backup file (required)")
	commit := flag.Bool("commit", false, "write the backup into the database instead of previewing")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *backupPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: tb3-import -config config.yaml -file backup.json [-commit]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	raw, err := os.ReadFile(*backupPath)
	if err != nil {
		log.Error("failed to read backup file", "path", *backupPath, "error", err)
		os.Exit(1)
	}

	result, err := validate.Import(raw)
	if err != nil {
		log.Error("backup rejected", "reason", err)
		os.Exit(1)
	}
	log.Info("backup validated",
		"sessions", result.Preview.Sessions,
		"maxTests", result.Preview.MaxTests,
		"lifts", result.Preview.Lifts,
	)

	if !*commit {
		log.Info("preview only — re-run with -commit to write the backup")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := storage.RunMigrations(cfg.Database.Path, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := storage.New(ctx, cfg.Database.Path)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	encoded, err := json.Marshal(result.Data)
	if err != nil {
		log.Error("encoding backup", "error", err)
		os.Exit(1)
	}
	var data models.AppData
	if err := json.Unmarshal(encoded, &data); err != nil {
		log.Error("decoding backup", "error", err)
		os.Exit(1)
	}

	if err := db.SaveAppData(ctx, &data); err != nil {
		log.Error("writing backup", "error", err)
		os.Exit(1)
	}
	log.Info("backup committed", "path", cfg.Database.Path)
}
