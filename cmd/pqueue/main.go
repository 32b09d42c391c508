// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command pqueue exercises the binary, binomial and Fibonacci heaps.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/pqueue"
	"cloudeng.io/pqueue/internal/render"
	"cloudeng.io/pqueue/internal/workload"
)

const commands = `name: pqueue
summary: exercise the binary, binomial and fibonacci priority queues
commands:
  - name: drain
    summary: insert keys into a heap and print them in the order they are extracted
    arguments:
      - <key>
      - ...
  - name: run
    summary: run the workloads defined in one or more YAML configuration files
    arguments:
      - <config>
      - ...
  - name: kinds
    summary: list the supported heap kinds
`

// GlobalFlags are available to all commands.
type GlobalFlags struct {
	cmdutil.LoggingFlags
}

type drainFlags struct {
	Kind     string `subcmd:"kind,binary,'heap kind: binary, binomial or fibonacci'"`
	Validate bool   `subcmd:"validate,false,validate the heap after every operation"`
}

type runFlags struct {
	Format string `subcmd:"format,table,'output format: table, yaml or json'"`
}

type kindsFlags struct{}

var (
	globalFlags GlobalFlags
	cmdSet      = subcmd.MustFromYAML(commands)
)

func init() {
	cmdSet.Set("drain").MustRunnerAndFlags(
		func(ctx context.Context, values any, args []string) error {
			return drain(ctx, os.Stdout, values.(*drainFlags), args)
		},
		subcmd.MustRegisteredFlagSet(&drainFlags{}))
	cmdSet.Set("run").MustRunnerAndFlags(
		func(ctx context.Context, values any, args []string) error {
			return run(ctx, os.Stdout, values.(*runFlags), args)
		},
		subcmd.MustRegisteredFlagSet(&runFlags{}))
	cmdSet.Set("kinds").MustRunnerAndFlags(
		func(_ context.Context, _ any, _ []string) error {
			return kinds(os.Stdout)
		},
		subcmd.MustRegisteredFlagSet(&kindsFlags{}))

	gfs := subcmd.GlobalFlagSet().MustRegisterFlagStruct(&globalFlags, nil, nil)
	cmdSet.WithGlobalFlags(gfs)
	cmdSet.WithMain(withLogger)
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}

// withLogger creates the logger requested by the global flags and makes it
// available to the command via its context.
func withLogger(ctx context.Context, cmdRunner func(ctx context.Context) error) error {
	logger, err := globalFlags.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	return cmdRunner(ctxlog.WithLogger(ctx, logger.Logger))
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	errs := errors.M{}
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			errs.Append(fmt.Errorf("invalid key %q: %w", a, err))
			continue
		}
		keys = append(keys, k)
	}
	return keys, errs.Err()
}

func drain(ctx context.Context, out io.Writer, fv *drainFlags, args []string) error {
	keys, err := parseKeys(args)
	if err != nil {
		return err
	}
	q, err := workload.New(fv.Kind)
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx).With("kind", fv.Kind)
	check := func(op string) error {
		if !fv.Validate {
			return nil
		}
		if err := q.Validate(); err != nil {
			return fmt.Errorf("%v heap is invalid after %v: %w", fv.Kind, op, err)
		}
		logger.Debug("validated", "op", op, "len", q.Len())
		return nil
	}
	for _, k := range keys {
		q.Insert(k)
		if err := check("insert"); err != nil {
			return err
		}
	}
	logger.Info("inserted", "keys", len(keys))
	extracted := make([]string, 0, len(keys))
	for !q.IsEmpty() {
		k, err := q.ExtractMin()
		if err != nil {
			return err
		}
		extracted = append(extracted, strconv.Itoa(k))
		if err := check("extract"); err != nil {
			return err
		}
	}
	if _, err := q.ExtractMin(); !errors.Is(err, pqueue.ErrEmptyHeap) {
		return fmt.Errorf("%v heap: unexpected error from an empty heap: %v", fv.Kind, err)
	}
	_, err = fmt.Fprintln(out, strings.Join(extracted, " "))
	return err
}

func run(ctx context.Context, out io.Writer, fv *runFlags, args []string) error {
	var cfg workload.Config
	for _, file := range args {
		c, err := workload.ParseConfigFile(file)
		if err != nil {
			return err
		}
		cfg.Workloads = append(cfg.Workloads, c.Workloads...)
	}
	report, err := workload.Run(ctx, cfg)
	if rerr := render.New(out).Report(fv.Format, report); rerr != nil {
		return errors.NewM(err, rerr)
	}
	return err
}

func kinds(out io.Writer) error {
	for _, k := range workload.Kinds() {
		if _, err := fmt.Fprintln(out, k); err != nil {
			return err
		}
	}
	return nil
}
