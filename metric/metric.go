//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package metric defines the scoring contract shared by all evaluation
// metrics. A metric inspects a case and the model response for it and
// produces a bounded score with a verdict.
package metric

import (
	"context"
	"fmt"

	"trpc.group/trpc-go/evalkit/evalcase"
	"trpc.group/trpc-go/evalkit/model"
	"trpc.group/trpc-go/evalkit/verdict"
)

// Result is the outcome of scoring one case with one metric.
type Result struct {
	MetricName string          `json:"metricName"`
	Score      float64         `json:"score"`
	Verdict    verdict.Verdict `json:"verdict"`
	Reason     string          `json:"reason,omitempty"`
	Threshold  float64         `json:"threshold"`
	Metadata   map[string]any  `json:"metadata,omitempty"`
}

// Metric evaluates a model response against a case. Score returns a
// result with a score in [0, 1]; implementations should reserve the
// error return for faults that make scoring impossible.
type Metric interface {
	Name() string
	Threshold() float64
	Score(ctx context.Context, c *evalcase.Case, rsp *model.Response) (*Result, error)
}

// DefaultThreshold is the pass threshold used when none is given.
const DefaultThreshold = 0.5

// Base carries the name and threshold shared by metric implementations
// and provides result constructors with the standard verdict rules.
type Base struct {
	name      string
	threshold float64
}

// NewBase creates a Base with the given name and threshold.
func NewBase(name string, threshold float64) Base {
	return Base{name: name, threshold: threshold}
}

// Name returns the metric name.
func (b Base) Name() string {
	return b.name
}

// Threshold returns the pass threshold.
func (b Base) Threshold() float64 {
	return b.threshold
}

// MakeResult builds a result whose verdict is pass when score reaches
// the threshold and fail otherwise.
func (b Base) MakeResult(score float64, reason string, metadata map[string]any) *Result {
	v := verdict.Fail
	if score >= b.threshold {
		v = verdict.Pass
	}
	return &Result{
		MetricName: b.name,
		Score:      score,
		Verdict:    v,
		Reason:     reason,
		Threshold:  b.threshold,
		Metadata:   metadata,
	}
}

// ErrorResult builds a zero-score result with an error verdict.
func (b Base) ErrorResult(err error) *Result {
	return &Result{
		MetricName: b.name,
		Score:      0,
		Verdict:    verdict.Error,
		Reason:     fmt.Sprintf("Error: %v", err),
		Threshold:  b.threshold,
	}
}

// SkipResult builds a zero-score result with a skip verdict. Skipped
// results are excluded from aggregate statistics.
func (b Base) SkipResult(reason string) *Result {
	return &Result{
		MetricName: b.name,
		Score:      0,
		Verdict:    verdict.Skip,
		Reason:     reason,
		Threshold:  b.threshold,
	}
}
