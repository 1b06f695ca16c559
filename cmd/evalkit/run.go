//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"trpc.group/trpc-go/evalkit"
	"trpc.group/trpc-go/evalkit/dataset"
	"trpc.group/trpc-go/evalkit/metric"
	"trpc.group/trpc-go/evalkit/metric/judge"
	"trpc.group/trpc-go/evalkit/metric/registry"
	"trpc.group/trpc-go/evalkit/reporter"
	"trpc.group/trpc-go/evalkit/result"
	"trpc.group/trpc-go/evalkit/result/local"
)

var runFlags struct {
	metrics     string
	name        string
	model       string
	judge       string
	report      string
	output      string
	saveDir     string
	verbose     bool
	concurrency int
}

var runCmd = &cobra.Command{
	Use:   "run <dataset>",
	Short: "Run an evaluation suite on a dataset",
	Args:  cobra.ExactArgs(1),
	RunE:  runEval,
}

func init() {
	runCmd.Flags().StringVarP(&runFlags.metrics, "metrics", "m", "ExactMatch",
		"comma-separated metric names, see 'evalkit metrics'")
	runCmd.Flags().StringVarP(&runFlags.name, "name", "n", "",
		"suite name, defaults to the dataset file name")
	runCmd.Flags().StringVar(&runFlags.model, "model", "static",
		"model spec: static, openai:<name>, anthropic:<name> or ollama:<name>")
	runCmd.Flags().StringVar(&runFlags.judge, "judge", "",
		"judge model spec for judge metrics")
	runCmd.Flags().StringVarP(&runFlags.report, "report", "r", "console",
		"report format: console or json")
	runCmd.Flags().StringVarP(&runFlags.output, "output", "o", "",
		"output file for the json report")
	runCmd.Flags().StringVar(&runFlags.saveDir, "save-dir", "",
		"directory to persist the result document in")
	runCmd.Flags().BoolVarP(&runFlags.verbose, "verbose", "v", false,
		"show per-case details")
	runCmd.Flags().IntVarP(&runFlags.concurrency, "concurrency", "c", 1,
		"concurrent model calls")
	rootCmd.AddCommand(runCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cases, err := dataset.LoadCases(args[0])
	if err != nil {
		return err
	}
	metrics, err := buildMetrics(runFlags.metrics, cfg)
	if err != nil {
		return err
	}
	modelFn, modelName, err := buildModel(runFlags.model, cfg)
	if err != nil {
		return err
	}

	suiteName := runFlags.name
	if suiteName == "" {
		suiteName = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}
	suite := evalkit.NewSuite(suiteName).AddCases(cases...).AddMetrics(metrics...)

	runner, err := evalkit.NewRunner(evalkit.WithConcurrency(runFlags.concurrency))
	if err != nil {
		return err
	}
	defer runner.Close()

	suiteResult, err := runner.Run(cmd.Context(), suite, modelFn, modelName)
	if err != nil {
		return err
	}
	if runFlags.saveDir != "" {
		manager := local.NewManager(local.WithBaseDir(runFlags.saveDir))
		if err := manager.Save(cmd.Context(), result.NewDocument(suiteResult)); err != nil {
			return fmt.Errorf("save result: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Result %s saved to %s\n", suiteResult.RunID, runFlags.saveDir)
	}
	return report(cmd, suiteResult)
}

func report(cmd *cobra.Command, suiteResult *result.SuiteResult) error {
	switch runFlags.report {
	case "console":
		console := reporter.NewConsole(reporter.WithVerbose(runFlags.verbose))
		fmt.Fprint(cmd.OutOrStdout(), console.Report(suiteResult))
		return nil
	case "json":
		jsonReporter := reporter.NewJSON()
		if runFlags.output != "" {
			if err := jsonReporter.Save(suiteResult, runFlags.output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report saved to %s\n", runFlags.output)
			return nil
		}
		raw, err := jsonReporter.Render(suiteResult)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		return nil
	default:
		return fmt.Errorf("unknown report format %q, use console or json", runFlags.report)
	}
}

// judgeFactories maps metric names to judge metric constructors. These
// need a judge model, so they live outside the default registry.
var judgeFactories = map[string]func(judge.Func) metric.Metric{
	"Faithfulness":    func(fn judge.Func) metric.Metric { return judge.NewFaithfulness(fn) },
	"AnswerRelevance": func(fn judge.Func) metric.Metric { return judge.NewAnswerRelevance(fn) },
	"Hallucination":   func(fn judge.Func) metric.Metric { return judge.NewHallucination(fn) },
	"Coherence":       func(fn judge.Func) metric.Metric { return judge.NewCoherence(fn) },
	"Toxicity":        func(fn judge.Func) metric.Metric { return judge.NewToxicity(fn) },
	"Correctness":     func(fn judge.Func) metric.Metric { return judge.NewCorrectness(fn) },
}

func buildMetrics(spec string, cfg *config) ([]metric.Metric, error) {
	reg := registry.New()
	var judgeFn judge.Func
	if runFlags.judge != "" {
		judgeModel, _, err := buildModel(runFlags.judge, cfg)
		if err != nil {
			return nil, fmt.Errorf("build judge model: %w", err)
		}
		judgeFn = judge.FromModel(judgeModel)
	}

	var metrics []metric.Metric
	for _, name := range strings.Split(spec, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if factory, ok := judgeFactories[name]; ok {
			if judgeFn == nil {
				return nil, fmt.Errorf("metric %s needs a judge model, pass --judge", name)
			}
			metrics = append(metrics, factory(judgeFn))
			continue
		}
		f, err := reg.Get(name)
		if err != nil {
			return nil, fmt.Errorf("unknown metric %q, see 'evalkit metrics'", name)
		}
		metrics = append(metrics, f())
	}
	if len(metrics) == 0 {
		return nil, fmt.Errorf("no metrics selected")
	}
	return metrics, nil
}
