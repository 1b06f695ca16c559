//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package reporter renders evaluation results for people and machines.
package reporter

import (
	"fmt"
	"sort"
	"strings"

	"trpc.group/trpc-go/evalkit/result"
	"trpc.group/trpc-go/evalkit/verdict"
)

// Console renders results as formatted terminal text.
type Console struct {
	verbose bool
}

// ConsoleOption configures a Console reporter.
type ConsoleOption func(*Console)

// WithVerbose enables per-case detail lines.
func WithVerbose(verbose bool) ConsoleOption {
	return func(c *Console) {
		c.verbose = verbose
	}
}

// NewConsole creates a console reporter.
func NewConsole(opt ...ConsoleOption) *Console {
	c := &Console{}
	for _, o := range opt {
		o(c)
	}
	return c
}

// Report renders a suite result as a formatted report string.
func (c *Console) Report(r *result.SuiteResult) string {
	var b strings.Builder
	rule := strings.Repeat("=", 70)
	b.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&b, "  EvalKit Report: %s\n", r.SuiteName)
	fmt.Fprintf(&b, "  Model: %s | Run: %s\n", r.Model, r.RunID)
	b.WriteString(rule + "\n\n")

	fmt.Fprintf(&b, "  Pass Rate: %d/%d (%.0f%%)\n",
		r.PassedCases(), r.TotalCases(), r.PassRate()*100)
	fmt.Fprintf(&b, "  Avg Score: %.2f\n", r.AvgScore())
	fmt.Fprintf(&b, "  Avg Latency: %.0fms\n", r.AvgLatencyMS())
	if r.TotalCostUSD() > 0 {
		fmt.Fprintf(&b, "  Total Cost: $%.4f\n", r.TotalCostUSD())
	}
	b.WriteString("\n")

	if summary := r.MetricSummary(); len(summary) > 0 {
		b.WriteString("  Metrics:\n")
		b.WriteString("  " + strings.Repeat("-", 50) + "\n")
		names := make([]string, 0, len(summary))
		for name := range summary {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			stats := summary[name]
			fmt.Fprintf(&b, "  %-25s %s %.2f  (min=%.2f, max=%.2f)\n",
				name, scoreBar(stats.Avg), stats.Avg, stats.Min, stats.Max)
		}
		b.WriteString("\n")
	}

	if c.verbose {
		b.WriteString("  Case Details:\n")
		b.WriteString("  " + strings.Repeat("-", 50) + "\n")
		for i, cr := range r.CaseResults {
			status := "FAIL"
			if cr.Passed() {
				status = "PASS"
			}
			fmt.Fprintf(&b, "  [%s] Case %d: %s\n", status, i+1, preview(cr.Case.Input, 60))
			for _, mr := range cr.MetricResults {
				fmt.Fprintf(&b, "     %s %s: %.2f  %s\n",
					verdictMark(mr.Verdict), mr.MetricName, mr.Score, preview(mr.Reason, 80))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(rule + "\n")
	return b.String()
}

// ReportComparison renders per-model results as a comparison table,
// strongest model first.
func (c *Console) ReportComparison(results map[string]*result.SuiteResult) string {
	var b strings.Builder
	rule := strings.Repeat("=", 70)
	b.WriteString("\n" + rule + "\n")
	b.WriteString("  Model Comparison\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "  %-20s %10s %10s %10s %10s\n",
		"Model", "Pass Rate", "Avg Score", "Latency", "Cost")
	b.WriteString("  " + strings.Repeat("-", 62) + "\n")
	for _, name := range result.RankModels(results) {
		r := results[name]
		fmt.Fprintf(&b, "  %-20s %9.0f%% %10.2f %8.0fms $%8.4f\n",
			name, r.PassRate()*100, r.AvgScore(), r.AvgLatencyMS(), r.TotalCostUSD())
	}
	b.WriteString("\n" + rule + "\n")
	return b.String()
}

func scoreBar(score float64) string {
	const width = 10
	filled := int(score * width)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func verdictMark(v verdict.Verdict) string {
	switch v {
	case verdict.Pass:
		return "+"
	case verdict.Fail:
		return "x"
	default:
		return "!"
	}
}

func preview(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > n {
		return s[:n]
	}
	return s
}
