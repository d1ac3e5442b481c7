package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/noorsetia/News-Dashboard-backend/internal/article"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		rawURL       string
		rawText      string
		fetchOnly    bool
		userAgent    string
		fetchTimeout time.Duration
		articleBytes int64
		summaryBytes int64
		damping      float64
		iterations   int
		configPath   string
		envFile      string
		verbose      bool
	)

	flag.StringVar(&rawURL, "url", "", "Article URL to fetch and summarize (env SUMMARIZE_URL)")
	flag.StringVar(&rawText, "text", "", "Raw text to summarize; '-' reads stdin")
	flag.BoolVar(&fetchOnly, "fetch-only", false, "Print the extracted article text instead of a summary")
	flag.StringVar(&userAgent, "ua", "", "Custom User-Agent for outbound requests (env SUMMARIZE_UA)")
	flag.DurationVar(&fetchTimeout, "timeout", 0, "Wall-clock deadline per fetch (default 8s)")
	flag.Int64Var(&articleBytes, "max.articleBytes", 0, "Byte ceiling for article fetches (default 200 KiB)")
	flag.Int64Var(&summaryBytes, "max.summaryBytes", 0, "Byte ceiling for summarization input (default 300 KiB)")
	flag.Float64Var(&damping, "rank.damping", 0, "TextRank damping factor (default 0.85)")
	flag.IntVar(&iterations, "rank.iterations", 0, "TextRank iteration count (default 30)")
	flag.StringVar(&configPath, "config", "", "Optional YAML/JSON config file (env SUMMARIZE_CONFIG)")
	flag.StringVar(&envFile, "env-file", "", "Optional dotenv file loaded before env fallbacks are read")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	// Env files must land in the environment before any SUMMARIZE_* fallback
	// is consulted; explicit flags still win.
	if err := article.LoadEnvFiles(envFile, ".env"); err != nil {
		log.Fatal().Err(err).Msg("load env files")
	}
	applyEnvFallbacks(&rawURL, &userAgent, &configPath)

	cfg := article.Config{
		UserAgent:       userAgent,
		FetchTimeout:    fetchTimeout,
		ArticleMaxBytes: articleBytes,
		SummaryMaxBytes: summaryBytes,
		Damping:         damping,
		Iterations:      iterations,
	}
	if configPath != "" {
		fc, err := article.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("load config file")
		}
		article.ApplyFileConfig(&cfg, fc)
		if fc.Verbose {
			verbose = true
		}
	}

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if rawText == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("read stdin")
		}
		rawText = string(b)
	}
	if rawURL == "" && rawText == "" {
		fmt.Fprintln(os.Stderr, "usage: summarize -url https://example.com/article  (or -text '-' < article.txt)")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := article.New(cfg)

	var out string
	var err error
	if fetchOnly {
		out, err = svc.FetchText(ctx, rawURL)
	} else {
		req := article.SummarizeRequest{}
		if rawURL != "" {
			req.URL = &rawURL
		}
		if rawText != "" {
			req.Text = &rawText
		}
		out, err = svc.Summarize(ctx, req)
	}
	if err != nil {
		log.Error().
			Str("reason", article.Describe(err)).
			Int("status", article.StatusHint(err)).
			Msg("request failed")
		os.Exit(1)
	}
	fmt.Println(out)
}

// applyEnvFallbacks fills flag values still unset from their SUMMARIZE_*
// environment variables. Called after flag parsing and after dotenv files
// have been loaded, so an -env-file value is visible here.
func applyEnvFallbacks(rawURL, userAgent, configPath *string) {
	if *rawURL == "" {
		*rawURL = os.Getenv("SUMMARIZE_URL")
	}
	if *userAgent == "" {
		*userAgent = os.Getenv("SUMMARIZE_UA")
	}
	if *configPath == "" {
		*configPath = os.Getenv("SUMMARIZE_CONFIG")
	}
}
