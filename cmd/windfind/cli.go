package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/sailhq/windfind"
	"github.com/sailhq/windfind/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Pipeline *pipeline.Pipeline
	Runs     windfind.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Find FindCmd `cmd:"" help:"Find windsurfing businesses in an area"`
	Runs RunsCmd `cmd:"" help:"List stored runs"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	Area        string `arg:"" help:"Area to search, e.g. \"Lanzarote\""`
	Concurrency int    `short:"c" default:"0" help:"Concurrent provider call limit (default from WINDFIND_CONCURRENCY)"`
	Quiet       bool   `short:"q" help:"Suppress progress output"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Area string `short:"a" help:"Only show runs for this area"`
	ID   string `help:"Show a single run with its records"`
}
