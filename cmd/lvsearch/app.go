package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/report"
)

// globalFlags are the persistent flags of the root command.
type globalFlags struct {
	logLevel   string
	logFormat  string
	format     string
	color      string
	metricsOut string
	trace      string
}

// app is the per-invocation state built by the root command before any
// subcommand runs.
type app struct {
	flags     globalFlags
	logger    *slog.Logger
	registry  *prometheus.Registry
	collector *metrics.Collector
	printer   *report.Printer
	shutdown  func(context.Context) error
}

func (a *app) setup(cmd *cobra.Command) error {
	logger, err := newLogger(cmd.ErrOrStderr(), a.flags.logLevel, a.flags.logFormat)
	if err != nil {
		return err
	}
	a.logger = logger

	format, err := report.ParseFormat(a.flags.format)
	if err != nil {
		return err
	}
	color, err := useColor(cmd.OutOrStdout(), a.flags.color)
	if err != nil {
		return err
	}
	a.printer = report.New(cmd.OutOrStdout(), format, report.WithColor(color))

	a.registry = prometheus.NewRegistry()
	a.collector = metrics.NewCollector(a.registry)

	a.shutdown, err = setupTracing(cmd.ErrOrStderr(), a.flags.trace)
	return err
}

func (a *app) teardown(cmd *cobra.Command) error {
	if a.shutdown != nil {
		if err := a.shutdown(cmd.Context()); err != nil {
			return fmt.Errorf("shutdown tracing: %w", err)
		}
	}
	if a.flags.metricsOut != "" {
		if err := prometheus.WriteToTextfile(a.flags.metricsOut, a.registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.logger.Debug("metrics written", slog.String("path", a.flags.metricsOut))
	}

	return nil
}

// newLogger builds a text or JSON slog handler at the given level.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want text or json", format)
	}
}

// useColor resolves --color: auto colours only when w is a terminal.
func useColor(w io.Writer, mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "", "auto":
		f, ok := w.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid --color %q: want auto, always or never", mode)
	}
}

// setupTracing installs a global tracer provider for --trace stdout that
// writes every span to w. "none" keeps the no-op provider.
func setupTracing(w io.Writer, kind string) (func(context.Context) error, error) {
	switch kind {
	case "", "none":
		return nil, nil
	case "stdout":
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exp),
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
		)
		prev := otel.GetTracerProvider()
		otel.SetTracerProvider(tp)
		return func(ctx context.Context) error {
			otel.SetTracerProvider(prev)
			return tp.Shutdown(ctx)
		}, nil
	default:
		return nil, fmt.Errorf("invalid --trace %q: want none or stdout", kind)
	}
}
