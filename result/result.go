//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package result holds per-case and per-suite evaluation results with
// their aggregate statistics.
package result

import (
	"time"

	"trpc.group/trpc-go/evalkit/evalcase"
	"trpc.group/trpc-go/evalkit/metric"
	"trpc.group/trpc-go/evalkit/model"
	"trpc.group/trpc-go/evalkit/verdict"
)

// CaseResult is the outcome of evaluating one case across all metrics.
type CaseResult struct {
	Case          *evalcase.Case   `json:"case"`
	Response      *model.Response  `json:"response"`
	MetricResults []*metric.Result `json:"metricResults"`
}

// Passed reports whether every non-skipped metric passed. A case with
// no scored metrics passes vacuously.
func (r *CaseResult) Passed() bool {
	for _, mr := range r.MetricResults {
		if mr.Verdict == verdict.Skip {
			continue
		}
		if mr.Verdict != verdict.Pass {
			return false
		}
	}
	return true
}

// AvgScore returns the mean score over non-skipped metric results, or
// 0.0 when none were scored.
func (r *CaseResult) AvgScore() float64 {
	sum, count := 0.0, 0
	for _, mr := range r.MetricResults {
		if mr.Verdict == verdict.Skip {
			continue
		}
		sum += mr.Score
		count++
	}
	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}

// SuiteResult is the outcome of one full suite run against one model.
type SuiteResult struct {
	SuiteName   string
	Model       string
	RunID       string
	StartedAt   time.Time
	FinishedAt  time.Time
	CaseResults []*CaseResult
	Metadata    map[string]any
}

// TotalCases returns the number of evaluated cases.
func (r *SuiteResult) TotalCases() int {
	return len(r.CaseResults)
}

// PassedCases returns the number of cases whose metrics all passed.
func (r *SuiteResult) PassedCases() int {
	passed := 0
	for _, cr := range r.CaseResults {
		if cr.Passed() {
			passed++
		}
	}
	return passed
}

// FailedCases returns the number of cases with at least one failing
// metric.
func (r *SuiteResult) FailedCases() int {
	return r.TotalCases() - r.PassedCases()
}

// PassRate returns the fraction of passed cases, or 0.0 for an empty
// run.
func (r *SuiteResult) PassRate() float64 {
	if r.TotalCases() == 0 {
		return 0.0
	}
	return float64(r.PassedCases()) / float64(r.TotalCases())
}

// AvgScore returns the mean of per-case average scores.
func (r *SuiteResult) AvgScore() float64 {
	if len(r.CaseResults) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, cr := range r.CaseResults {
		sum += cr.AvgScore()
	}
	return sum / float64(len(r.CaseResults))
}

// AvgLatencyMS returns the mean response latency in milliseconds.
func (r *SuiteResult) AvgLatencyMS() float64 {
	if len(r.CaseResults) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, cr := range r.CaseResults {
		sum += cr.Response.LatencyMS
	}
	return sum / float64(len(r.CaseResults))
}

// TotalCostUSD returns the summed response cost.
func (r *SuiteResult) TotalCostUSD() float64 {
	sum := 0.0
	for _, cr := range r.CaseResults {
		sum += cr.Response.CostUSD
	}
	return sum
}

// Summary aggregates the scores one metric produced across a run.
type Summary struct {
	Avg   float64 `json:"avg"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// MetricSummary aggregates non-skipped scores by metric name.
func (r *SuiteResult) MetricSummary() map[string]Summary {
	scores := make(map[string][]float64)
	for _, cr := range r.CaseResults {
		for _, mr := range cr.MetricResults {
			if mr.Verdict == verdict.Skip {
				continue
			}
			scores[mr.MetricName] = append(scores[mr.MetricName], mr.Score)
		}
	}
	summary := make(map[string]Summary, len(scores))
	for name, list := range scores {
		s := Summary{Min: list[0], Max: list[0], Count: len(list)}
		sum := 0.0
		for _, score := range list {
			sum += score
			if score < s.Min {
				s.Min = score
			}
			if score > s.Max {
				s.Max = score
			}
		}
		s.Avg = sum / float64(len(list))
		summary[name] = s
	}
	return summary
}
