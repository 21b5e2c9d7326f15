package main

import (
	"encoding/json"
	"fmt"
	"pagesim/frame"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var CompareCmd = cli.Command{
	Action: compare,
	Name:   "compare",
	Usage:  "runs several replacement policies over the same references",
	Flags: []cli.Flag{
		&framesFlag,
		&policiesFlag,
		&traceFileFlag,
		&maxReferencesFlag,
		&jsonFlag,
	},
}

var policiesFlag = cli.StringSliceFlag{
	Name:    "algorithm",
	Aliases: []string{"a", "policy"},
	Usage:   "policies to compare, all of them if omitted",
}

func compare(context *cli.Context) error {
	cfg, err := loadConfig(context)
	if err != nil {
		return err
	}

	var policies []frame.Policy
	for _, name := range context.StringSlice(policiesFlag.Name) {
		policy, err := frame.ParsePolicy(name)
		if err != nil {
			return err
		}
		policies = append(policies, policy)
	}

	rt, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer rt.close()

	results, err := frame.Compare(cfg.Frames, cfg.Source(), policies, rt.options()...)
	if err != nil {
		rt.logger.Error("comparison failed", zap.Error(err))
		return err
	}
	if err := rt.writeMetrics(); err != nil {
		return err
	}

	out := context.App.Writer
	if context.Bool(jsonFlag.Name) {
		return json.NewEncoder(out).Encode(results)
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(out, "%-8s %4d faults %6.2f%%\n", r.Policy, r.Faults, 100*r.FaultRate()); err != nil {
			return err
		}
	}
	return nil
}
