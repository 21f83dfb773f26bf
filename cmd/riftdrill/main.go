// Package main implements the riftdrill command line tool, a spaced
// repetition trainer for Riftbound card recognition. It schedules card
// reviews with an SM-2 recall engine and keeps its catalog and progress
// in local files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/riftbound-tools/riftdrill/internal/config"
	"github.com/riftbound-tools/riftdrill/internal/domain/srs"
	"github.com/riftbound-tools/riftdrill/internal/platform/jsonfile"
	"github.com/riftbound-tools/riftdrill/internal/platform/logger"
	"github.com/riftbound-tools/riftdrill/internal/platform/sqlite"
	"github.com/riftbound-tools/riftdrill/internal/service"
	"github.com/riftbound-tools/riftdrill/internal/session"
)

const version = "0.1.0"

// app bundles the initialized components the command handlers need.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	catalog *sqlite.CatalogStore
	svc     *service.StudyService
}

func main() {
	command := "study"
	args := os.Args[1:]
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "study":
		withApp(func(a *app) { a.handleStudy(args) })
	case "cap":
		withApp(func(a *app) { a.handleCap(args) })
	case "stats":
		withApp(func(a *app) { a.handleStats() })
	case "reset":
		withApp(func(a *app) { a.handleReset() })
	case "import":
		withApp(func(a *app) { a.handleImport(args) })
	case "version", "--version", "-v":
		fmt.Printf("riftdrill version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// withApp initializes the application, runs fn, and closes what needs
// closing. Initialization failure is fatal.
func withApp(fn func(*app)) {
	a, err := initializeApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := a.catalog.Close(); err != nil {
			a.logger.Warn("failed to close catalog", "error", err)
		}
	}()
	fn(a)
}

// initializeApp loads configuration and sets up application components.
func initializeApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Debug("configuration loaded",
		"data_dir", cfg.Data.Dir,
		"log_level", cfg.Logging.Level,
		"session_size", cfg.Study.SessionSize,
		"default_new_cap", cfg.Study.DefaultNewCap)

	catalog, err := sqlite.OpenCatalog(cfg.Data.CatalogPath(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	reviews, err := jsonfile.NewReviewFileStore(cfg.Data.ReviewPath(), log)
	if err != nil {
		catalog.Close()
		return nil, fmt.Errorf("failed to open review store: %w", err)
	}

	daily, err := jsonfile.NewDailyFileStore(cfg.Data.DailyPath(), cfg.Study.DefaultNewCap, log)
	if err != nil {
		catalog.Close()
		return nil, fmt.Errorf("failed to open daily quota store: %w", err)
	}

	builder := session.NewBuilder(reviews, daily, nil, log)
	svc := service.NewStudyService(
		catalog, reviews, daily,
		srs.NewDefaultService(), builder,
		cfg.Study.DefaultNewCap, nil, log)

	return &app{cfg: cfg, logger: log, catalog: catalog, svc: svc}, nil
}

func printUsage() {
	fmt.Print(`riftdrill - Riftbound card recognition trainer

USAGE:
    riftdrill                  # Start a study session (default)
    riftdrill <command> [options]

COMMANDS:
    study [--size N]    Start a study session (N items, default from config)
    stats               Show due/new counts and today's quota
    cap show            Show today's new-card cap
    cap add N           Raise today's new-card cap by N
    cap unlimited       Remove today's new-card cap
    import FILE         Import cards from a catalog JSON export
    reset               Erase all review progress (requires confirmation)
    version             Show version information
    help                Show this help message

SESSION:
    Each item shows a card's type line, set, and rarity. Type the card
    name you think it is, then rate your recall from 0 (blank) to
    5 (instant). Failed cards come back later in the same session.

CONFIGURATION:
    Settings load from ~/.riftdrill/config.yaml and RIFTDRILL_* environment
    variables, e.g. RIFTDRILL_STUDY_DEFAULT_NEW_CAP=25.
`)
}
