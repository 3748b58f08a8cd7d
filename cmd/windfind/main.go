package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sailhq/windfind"
	"github.com/sailhq/windfind/fs"
	"github.com/sailhq/windfind/gemini"
	"github.com/sailhq/windfind/goquery"
	windhttp "github.com/sailhq/windfind/http"
	"github.com/sailhq/windfind/pipeline"
	windslog "github.com/sailhq/windfind/slog"
	"github.com/sailhq/windfind/sqlite"
	"github.com/sailhq/windfind/tavily"
	"github.com/sailhq/windfind/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration read from the environment. Set before calling Run().
	Config *Config

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RunService windfind.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if m.Config == nil {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		m.Config = cfg
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("windfind"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'windfind --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.Config.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WINDFIND_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.Config.DBPath, err)
	}
	defer m.Close()

	m.RunService = sqlite.NewRunService(m.DB)
	deps.Runs = m.RunService

	if cmd == "find" {
		if err := m.Config.ValidateCredentials(); err != nil {
			return err
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  m.Config.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		concurrency := cli.Find.Concurrency
		if concurrency <= 0 {
			concurrency = m.Config.Concurrency
		}

		deps.Pipeline = m.buildPipeline(client, deps.Logger, concurrency)
	}

	return kongCtx.Run(deps)
}

// buildPipeline wires the four stages with their providers, cache, and
// logging decorators.
func (m *Main) buildPipeline(client *genai.Client, logger *slog.Logger, concurrency int) *pipeline.Pipeline {
	cache := fs.NewCacheStore(m.Config.CacheDir)
	search := windslog.NewLoggingSearchService(tavily.NewClient(m.Config.TavilyAPIKey), logger)
	classifier := windslog.NewLoggingClassifier(gemini.NewClassifier(client, defaultModel), logger)
	extractor := windslog.NewLoggingExtractor(gemini.NewExtractor(client, defaultModel), logger)

	return &pipeline.Pipeline{
		Discoverer: &pipeline.Discoverer{
			Search: search,
			Cache:  cache,
			Logger: logger,
		},
		Domains: &pipeline.DomainClassifier{
			Classifier: classifier,
			Cache:      cache,
			Logger:     logger,
		},
		Subpages: &pipeline.SubpageCategorizer{
			Search:      search,
			Classifier:  classifier,
			Cache:       cache,
			Logger:      logger,
			Concurrency: concurrency,
		},
		Aggregator: &pipeline.Aggregator{
			Fetcher:     windhttp.NewFetcher(),
			Converter:   trafilatura.NewConverter(),
			Fallback:    goquery.NewConverter(),
			Extractor:   extractor,
			Cache:       cache,
			Limiter:     pipeline.NewDomainLimiter(fetchRatePerDomain),
			Logger:      logger,
			Concurrency: concurrency,
		},
		Logger: logger,
	}
}

const defaultModel = gemini.DefaultModel

// fetchRatePerDomain spaces page fetches within one domain to one per
// second.
const fetchRatePerDomain = 1.0
