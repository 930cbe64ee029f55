package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"billsense/internal/config"
	"billsense/internal/logger"
)

const usage = "Usage: migrate [up|down|steps N|version|force V]"

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(&cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer lg.Sync() //nolint:errcheck

	m, err := migrate.New("file://db/migrations", cfg.DB.DSN())
	if err != nil {
		lg.Fatal("failed to create migrate instance", zap.Error(err))
	}
	defer m.Close()

	switch cmd := os.Args[1]; cmd {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			lg.Fatal("migration up failed", zap.Error(err))
		}
		lg.Info("migrations applied")

	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			lg.Fatal("migration down failed", zap.Error(err))
		}
		lg.Info("migrations reverted")

	case "steps":
		n := intArg("steps")
		if err := m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			lg.Fatal("migration steps failed", zap.Error(err))
		}
		lg.Info("migration steps applied", zap.Int("steps", n))

	case "force":
		v := intArg("force")
		if err := m.Force(v); err != nil {
			lg.Fatal("force version failed", zap.Error(err))
		}
		lg.Info("forced version", zap.Int("version", v))

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			lg.Fatal("failed to get version", zap.Error(err))
		}
		fmt.Printf("version: %d, dirty: %v\n", version, dirty)

	default:
		fmt.Printf("unknown command: %s\n", cmd)
		fmt.Println(usage)
		os.Exit(1)
	}
}

func intArg(cmd string) int {
	if len(os.Args) < 3 {
		log.Fatalf("%s requires a number argument", cmd)
	}
	n, err := strconv.Atoi(os.Args[2])
	if err != nil {
		log.Fatalf("invalid %s argument: %v", cmd, err)
	}
	return n
}
