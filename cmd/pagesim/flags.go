package main

import (
	"fmt"
	"os"
	"pagesim/config"
	"pagesim/frame"
	"pagesim/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	configFlag = cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "YAML file with simulator settings, flags take precedence",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "minimum log level (debug, info, warn, error)",
	}
	logFormatFlag = cli.StringFlag{
		Name:  "log-format",
		Usage: "log format (console or json)",
	}
	metricsFileFlag = cli.StringFlag{
		Name:  "metrics-file",
		Usage: "write Prometheus counters to this file after the run, disabled if empty",
	}
	framesFlag = cli.IntFlag{
		Name:    "frames",
		Aliases: []string{"m"},
		Usage:   "number of memory frames",
	}
	traceFileFlag = cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "file holding the whitespace separated page references",
	}
	maxReferencesFlag = cli.IntFlag{
		Name:  "max-references",
		Usage: "largest accepted reference sequence",
	}
	jsonFlag = cli.BoolFlag{
		Name:  "json",
		Usage: "print results as JSON",
	}
)

// loadConfig combines the config file, if any, with the flags that were set explicitly. Command specific
// overrides are applied before validation.
func loadConfig(context *cli.Context, overrides ...func(*config.Config)) (*config.Config, error) {
	cfg := config.Default()
	if path := context.String(configFlag.Name); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if context.IsSet(framesFlag.Name) {
		cfg.Frames = context.Int(framesFlag.Name)
	}
	if context.IsSet(traceFileFlag.Name) {
		cfg.TraceFile = context.String(traceFileFlag.Name)
	}
	if context.IsSet(maxReferencesFlag.Name) {
		cfg.MaxReferences = context.Int(maxReferencesFlag.Name)
	}
	if context.IsSet(metricsFileFlag.Name) {
		cfg.MetricsFile = context.String(metricsFileFlag.Name)
	}
	if context.IsSet(logLevelFlag.Name) {
		cfg.Log.Level = context.String(logLevelFlag.Name)
	}
	if context.IsSet(logFormatFlag.Name) {
		cfg.Log.Format = context.String(logFormatFlag.Name)
	}
	for _, override := range overrides {
		override(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.TraceFile == "" {
		return nil, fmt.Errorf("missing reference file, use --%s", traceFileFlag.Name)
	}
	return cfg, nil
}

// session bundles the logger and metrics shared by the commands. It must be closed to release the log
// output.
type session struct {
	logger   *zap.Logger
	closeLog log.CloseFunc
	registry *prometheus.Registry
	metrics  *frame.Metrics
	cfg      *config.Config
}

func newSession(cfg *config.Config) (*session, error) {
	logger, closeLog, err := log.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	rt := &session{logger: logger, closeLog: closeLog, cfg: cfg}
	if cfg.MetricsFile != "" {
		rt.registry = prometheus.NewRegistry()
		rt.metrics = frame.NewMetrics(rt.registry)
	}
	return rt, nil
}

func (rt *session) options() []frame.Option {
	return []frame.Option{frame.WithLogger(rt.logger), frame.WithMetrics(rt.metrics)}
}

// writeMetrics writes the metrics file, if one is configured.
func (rt *session) writeMetrics() error {
	if rt.registry == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(rt.cfg.MetricsFile, rt.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}

// close flushes the logger and closes its output file.
func (rt *session) close() {
	if err := rt.closeLog(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
