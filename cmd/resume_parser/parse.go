package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/document"
	"github.com/jonathan/resume-parser/internal/fetch"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/logger"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/pipeline"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file> [jobDescription]",
	Short: "Parse a resume into a structured candidate profile",
	Long: "Parse a resume document (PDF or plain text) into a structured JSON profile " +
		"with identity fields, scored skills, experience duration, education, and projects, " +
		"optionally scored against a job description.",
	Args: cobra.RangeArgs(1, 2),
	RunE: runParse,
}

var (
	parseJobURL     string
	parseConfigFile string
	parseAPIKey     string
	parseModel      string
	parseTimeout    int
	parseJSONLogs   bool
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVar(&parseJobURL, "job-url", "", "URL to fetch the job description from")
	parseCmd.Flags().StringVarP(&parseConfigFile, "config", "c", "", "Path to JSON config file")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseCmd.Flags().StringVar(&parseModel, "model", "", "Gemini model for the extraction fallback")
	parseCmd.Flags().IntVar(&parseTimeout, "timeout", 0, "Fallback call timeout in seconds")
	parseCmd.Flags().BoolVar(&parseJSONLogs, "json-logs", false, "Emit structured JSON log lines")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	file := args[0]
	jobText := cfg.Job
	if len(args) > 1 {
		jobText = args[1]
	}
	if jobText != "" && cfg.JobURL != "" {
		return fmt.Errorf("cannot combine an inline job description with --job-url")
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	extractor, closeClient, err := buildExtractor(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeClient()

	runner := pipeline.NewRunner(nil, extractor, log)

	// The document read and the job posting fetch are independent, so they
	// run concurrently. A fetch failure degrades to scoring without a job
	// description; a document failure is fatal.
	var text string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		text, err = document.ForFile(file).Extract(gctx, file)
		return err
	})
	if cfg.JobURL != "" {
		g.Go(func() error {
			fetched, err := fetch.JobDescription(gctx, cfg.JobURL, nil)
			if err != nil {
				log.Warn("job description fetch failed", zap.String("url", cfg.JobURL), zap.Error(err))
				return nil
			}
			jobText = fetched
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	record := runner.Run(ctx, text, jobText)
	record.File = file

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile(record)
		printer.PrintSkillRanking(record.Skills)
		if jobText != "" {
			printer.PrintJobMatch(record)
		}
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))

	return nil
}

// resolveConfig layers the configuration sources: config file values act as
// defaults, explicitly set flags override them, and the API key falls back to
// the environment.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if parseConfigFile != "" {
		loaded, err := config.LoadConfig(parseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("job-url") {
		cfg.JobURL = parseJobURL
	}
	if flags.Changed("api-key") {
		cfg.APIKey = parseAPIKey
	}
	if flags.Changed("model") {
		cfg.Model = parseModel
	}
	if flags.Changed("timeout") {
		cfg.TimeoutSeconds = parseTimeout
	}
	if flags.Changed("json-logs") {
		cfg.JSONLogs = parseJSONLogs
	}
	if flags.Changed("verbose") {
		cfg.Verbose = parseVerbose
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildExtractor creates the LLM fallback extractor when an API key is
// available. Without a key the pipeline runs rule-based only.
func buildExtractor(ctx context.Context, cfg *config.Config, log *zap.Logger) (pipeline.StructuredExtractor, func(), error) {
	if cfg.APIKey == "" {
		log.Debug("no API key configured, structured extraction fallback disabled")
		return nil, func() {}, nil
	}

	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg.Model = cfg.Model
	}
	if cfg.TimeoutSeconds > 0 {
		llmCfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	client, err := llm.NewClient(ctx, llmCfg, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	closeClient := func() { _ = client.Close() }
	return llm.NewResumeExtractor(client, llmCfg), closeClient, nil
}
