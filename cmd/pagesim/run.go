package main

import (
	"encoding/json"
	"fmt"
	"io"
	"pagesim/config"
	"pagesim/frame"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var RunCmd = cli.Command{
	Action: run,
	Name:   "run",
	Usage:  "counts the page faults of one replacement policy",
	Flags: []cli.Flag{
		&framesFlag,
		&policyFlag,
		&traceFileFlag,
		&maxReferencesFlag,
		&jsonFlag,
		&stepsFlag,
	},
}

var (
	policyFlag = cli.StringFlag{
		Name:    "algorithm",
		Aliases: []string{"a", "policy"},
		Usage:   "replacement policy (FIFO, LRU, OPTIMAL, CLOCK)",
	}
	stepsFlag = cli.BoolFlag{
		Name:  "steps",
		Usage: "print how every reference was handled",
	}
)

func run(context *cli.Context) error {
	cfg, err := loadConfig(context, func(cfg *config.Config) {
		if context.IsSet(policyFlag.Name) {
			cfg.Policy = context.String(policyFlag.Name)
		}
	})
	if err != nil {
		return err
	}
	policy := cfg.ParsedPolicy()

	rt, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer rt.close()

	out := context.App.Writer
	opts := rt.options()
	if context.Bool(stepsFlag.Name) {
		opts = append(opts, frame.WithObserver(func(s frame.Step) { printStep(out, s) }))
	}

	manager, err := frame.NewManager(cfg.Frames, policy, opts...)
	if err != nil {
		return err
	}
	result, err := manager.Run(cfg.Source())
	if err != nil {
		rt.logger.Error("simulation failed", zap.Stringer("policy", policy), zap.Error(err))
		return err
	}
	if err := rt.writeMetrics(); err != nil {
		return err
	}

	if context.Bool(jsonFlag.Name) {
		return json.NewEncoder(out).Encode(result)
	}
	_, err = fmt.Fprintf(out, "%s - page faults: %d\n", result.Policy, result.Faults)
	return err
}

func printStep(out io.Writer, s frame.Step) {
	switch {
	case !s.Fault:
		fmt.Fprintf(out, "%4d: page %-4d hit   slot %d\n", s.Position, int(s.Page), s.Slot)
	case s.Evicted:
		fmt.Fprintf(out, "%4d: page %-4d fault slot %d, evicted page %d (faults %d)\n", s.Position, int(s.Page), s.Slot, int(*s.Victim), s.Faults)
	default:
		fmt.Fprintf(out, "%4d: page %-4d fault slot %d (faults %d)\n", s.Position, int(s.Page), s.Slot, s.Faults)
	}
}
