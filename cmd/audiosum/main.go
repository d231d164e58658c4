package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/nguyentantai21042004/audio-summarizer/internal/config"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/pipeline"
	"github.com/nguyentantai21042004/audio-summarizer/internal/summarizer"
)

type CLI struct {
	Config       string `help:"Path to the YAML config file." default:"config.yaml" type:"path"`
	Save         bool   `help:"Save a copy of each input audio file."`
	SaveDir      string `help:"Directory for saved copies (defaults to persistence.dir)." type:"path"`
	SystemPrompt string `help:"System prompt sent with the audio."`
	UserPrompt   string `help:"User prompt sent with the audio."`

	Serve     ServeCmd     `cmd:"" help:"Start the web UI and JSON API."`
	Summarize SummarizeCmd `cmd:"" help:"Summarize one local audio file."`
	URL       URLCmd       `cmd:"" name:"url" help:"Download an audio file and summarize it."`
	Batch     BatchCmd     `cmd:"" help:"Summarize several local audio files in order."`
	Watch     WatchCmd     `cmd:"" help:"Summarize every new file dropped into the inbox."`
}

// app is what every command runs against.
type app struct {
	cfg        *config.Config
	logger     logger.Logger
	summarizer summarizer.Summarizer
	pipeline   pipeline.Pipeline
	opts       pipeline.Options
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("audiosum"),
		kong.Description("Summarize audio recordings with a hosted LLM."),
		kong.UsageOnError(),
	)

	a, err := setup(&cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	kctx.FatalIfErrorf(kctx.Run(a))
}

func setup(cli *CLI) (*app, error) {
	ctx := context.Background()

	if err := config.LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// Load configuration, falling back to defaults without a file
	cfg, err := config.Load(cli.Config)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = config.Default()
	}
	if err != nil {
		return nil, err
	}

	log := logger.NewWithWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	sum, err := summarizer.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create summarizer: %w", err)
	}

	opts := pipeline.Options{
		SaveDir:      cfg.SaveDir(cli.Save || cfg.Persistence.Enabled, cli.SaveDir),
		SystemPrompt: cli.SystemPrompt,
		UserPrompt:   cli.UserPrompt,
	}
	if opts.SaveDir != "" {
		if err := os.MkdirAll(opts.SaveDir, 0755); err != nil {
			return nil, fmt.Errorf("create save dir: %w", err)
		}
	}

	log.Debug(ctx, "Config loaded: format=%s summarizer=%s", cfg.Format.Accepted, sum.Name())

	return &app{
		cfg:        cfg,
		logger:     log,
		summarizer: sum,
		pipeline:   pipeline.New(cfg, sum, log),
		opts:       opts,
	}, nil
}
