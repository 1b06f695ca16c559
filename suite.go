//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package evalkit evaluates model outputs against suites of test cases
// with pluggable metrics. A suite defines what to evaluate and how to
// score it; the runner executes it against model collaborators and
// aggregates the results.
package evalkit

import (
	"trpc.group/trpc-go/evalkit/evalcase"
	"trpc.group/trpc-go/evalkit/metric"
)

// Suite is a named collection of evaluation cases and metrics.
type Suite struct {
	Name        string
	Description string
	Cases       []*evalcase.Case
	Metrics     []metric.Metric
	Metadata    map[string]any
}

// NewSuite creates an empty suite.
func NewSuite(name string) *Suite {
	return &Suite{Name: name}
}

// AddCase appends a case and returns the suite for chaining.
func (s *Suite) AddCase(c *evalcase.Case) *Suite {
	s.Cases = append(s.Cases, c)
	return s
}

// AddCases appends multiple cases and returns the suite for chaining.
func (s *Suite) AddCases(cases ...*evalcase.Case) *Suite {
	s.Cases = append(s.Cases, cases...)
	return s
}

// AddMetric appends a metric and returns the suite for chaining.
func (s *Suite) AddMetric(m metric.Metric) *Suite {
	s.Metrics = append(s.Metrics, m)
	return s
}

// AddMetrics appends multiple metrics and returns the suite for
// chaining.
func (s *Suite) AddMetrics(metrics ...metric.Metric) *Suite {
	s.Metrics = append(s.Metrics, metrics...)
	return s
}

// Len returns the number of cases.
func (s *Suite) Len() int {
	return len(s.Cases)
}
