package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/shkomig/Engineered-prompt/internal/classify"
	"github.com/shkomig/Engineered-prompt/internal/cli"
	"github.com/shkomig/Engineered-prompt/internal/db"
	"github.com/shkomig/Engineered-prompt/internal/domain"
	"github.com/shkomig/Engineered-prompt/internal/extract"
	"github.com/shkomig/Engineered-prompt/internal/lexicon"
	"github.com/shkomig/Engineered-prompt/internal/repository"
	"github.com/shkomig/Engineered-prompt/internal/synthesis"
	"github.com/shkomig/Engineered-prompt/internal/template"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.engprompt/prompts.db
	dbPath := os.Getenv("ENGPROMPT_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".engprompt", "prompts.db")
	}

	// Lexicon tables: built-in Hebrew set unless a locale file is given.
	categories := lexicon.DefaultCategories()
	style := lexicon.DefaultStyle()
	if path := os.Getenv("ENGPROMPT_LEXICON"); path != "" {
		var err error
		categories, style, err = lexicon.Load(path)
		if err != nil {
			return fmt.Errorf("loading lexicon: %w", err)
		}
	}

	// Template source: directory when configured, built-ins otherwise.
	var source template.Source = template.BuiltinSource{}
	if dir := os.Getenv("ENGPROMPT_TEMPLATES"); dir != "" {
		source = template.DirSource{Dir: dir}
	} else if stat, err := os.Stat("./templates"); err == nil && stat.IsDir() {
		source = template.DirSource{Dir: "./templates"}
	}

	templates, err := source.LoadAll()
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}
	set, err := template.NewSet(templates)
	if err != nil {
		return fmt.Errorf("indexing templates: %w", err)
	}

	// Wire the synthesis pipeline. Style detection is meaningful for
	// textual requests only, matching the template slots it feeds.
	classifier := classify.New(categories, classify.NewStyleDetector(style, domain.CategoryTextual))
	synth, err := synthesis.NewService(classifier, extract.DefaultRegistry(), set, domain.CategoryFallback)
	if err != nil {
		return fmt.Errorf("wiring synthesis: %w", err)
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	app := &cli.App{
		Synth:   synth,
		Records: repository.NewSQLitePromptRepo(database),
	}

	// Detect interactive terminal for form and shell entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
