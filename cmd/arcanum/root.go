package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"arcanum.games/engine/internal/config"
	"arcanum.games/engine/internal/content"
	"arcanum.games/engine/internal/domain"
	"arcanum.games/engine/internal/generator"
	"arcanum.games/engine/internal/hint"
	"arcanum.games/engine/internal/infrastructure/storage"
	"arcanum.games/engine/internal/ports"
	"arcanum.games/engine/internal/solver"
	"arcanum.games/engine/internal/usecase"
	"arcanum.games/engine/internal/validator"
)

var (
	cfgPath string

	logger zerolog.Logger
	svc    *usecase.Service
	closer io.Closer
)

var rootCmd = &cobra.Command{
	Use:               "arcanum",
	Short:             "Generate, play and inspect scenario logic puzzles",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closer != nil {
			return closer.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "arcanum.yaml", "path to the YAML config file")
}

// setup builds the full engine stack once per invocation: config, logger,
// content packs, solver, assembler and the configured save store.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	pools, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content packs: %w", err)
	}

	eng := solver.New(solver.Limits{MaxNodes: cfg.Solver.MaxNodes, MaxDuration: cfg.Solver.MaxDuration})
	asm := generator.New(eng, pools)
	asm.Attempts = cfg.Generator.Attempts

	var puzzles ports.PuzzleStore
	var sessions ports.SessionStore
	switch cfg.Storage.Backend {
	case "badger":
		db, err := storage.OpenBadger(storage.DefaultConfig(filepath.Join(cfg.Storage.DataDir, "badger")))
		if err != nil {
			return fmt.Errorf("open badger store: %w", err)
		}
		closer = db
		puzzles, sessions = db, db
	case "fs":
		fs := storage.NewFS(cfg.Storage.DataDir)
		puzzles, sessions = fs, fs
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	svc = usecase.NewService(asm, eng, validator.New(), hint.New(eng), puzzles, sessions)
	svc.Themes = pools.Themes
	svc.HintBudget = cfg.Hints.Budget
	svc.Log = logger
	return nil
}

func printPuzzle(p *domain.Puzzle) {
	fmt.Printf("%s  %s/%s  seed %d\n", p.ID, p.Type, p.Difficulty, p.Seed)
	if p.Title != "" {
		fmt.Println()
		fmt.Println(p.Title)
	}
	if p.Narrative != "" {
		fmt.Println(p.Narrative)
	}
	fmt.Println()
	fmt.Printf("%s: %s\n", p.Scheme.Primary.Name, strings.Join(p.Scheme.Primary.Elements, ", "))
	for i := range p.Scheme.Columns {
		cat := &p.Scheme.Columns[i].Category
		fmt.Printf("%s: %s\n", cat.Name, strings.Join(cat.Elements, ", "))
	}
	fmt.Println()
	for i, text := range p.CluesForDisplay() {
		fmt.Printf("%3d. %s\n", i+1, text)
	}
}

func printAssignment(p *domain.Puzzle, a domain.Assignment) {
	for idx, v := range a {
		if v == domain.Unassigned {
			continue
		}
		ref := p.Scheme.CellAt(idx)
		fmt.Printf("%s = %s\n", p.CellName(ref), p.ValueName(ref, v))
	}
}
