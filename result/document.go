//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package result

import (
	"trpc.group/trpc-go/evalkit/epochtime"
)

// Document is the persisted form of a suite run. The aggregate fields
// are derived from the case results at build time so a saved document
// can be read without recomputation.
type Document struct {
	RunID         string               `json:"runId"`
	SuiteName     string               `json:"suiteName"`
	Model         string               `json:"model"`
	TotalCases    int                  `json:"totalCases"`
	PassedCases   int                  `json:"passedCases"`
	FailedCases   int                  `json:"failedCases"`
	PassRate      float64              `json:"passRate"`
	AvgScore      float64              `json:"avgScore"`
	AvgLatencyMS  float64              `json:"avgLatencyMS"`
	TotalCostUSD  float64              `json:"totalCostUSD"`
	MetricSummary map[string]Summary   `json:"metricSummary"`
	StartedAt     *epochtime.EpochTime `json:"startedAt,omitempty"`
	FinishedAt    *epochtime.EpochTime `json:"finishedAt,omitempty"`
	Metadata      map[string]any       `json:"metadata,omitempty"`
	CaseResults   []*CaseResult        `json:"caseResults"`
}

// NewDocument builds a document from a suite result.
func NewDocument(r *SuiteResult) *Document {
	doc := &Document{
		RunID:         r.RunID,
		SuiteName:     r.SuiteName,
		Model:         r.Model,
		TotalCases:    r.TotalCases(),
		PassedCases:   r.PassedCases(),
		FailedCases:   r.FailedCases(),
		PassRate:      r.PassRate(),
		AvgScore:      r.AvgScore(),
		AvgLatencyMS:  r.AvgLatencyMS(),
		TotalCostUSD:  r.TotalCostUSD(),
		MetricSummary: r.MetricSummary(),
		Metadata:      r.Metadata,
		CaseResults:   r.CaseResults,
	}
	if !r.StartedAt.IsZero() {
		doc.StartedAt = &epochtime.EpochTime{Time: r.StartedAt}
	}
	if !r.FinishedAt.IsZero() {
		doc.FinishedAt = &epochtime.EpochTime{Time: r.FinishedAt}
	}
	return doc
}

// SuiteResult reconstructs the suite result a document was built from.
// Aggregates are recomputed from the case results on access.
func (d *Document) SuiteResult() *SuiteResult {
	r := &SuiteResult{
		SuiteName:   d.SuiteName,
		Model:       d.Model,
		RunID:       d.RunID,
		CaseResults: d.CaseResults,
		Metadata:    d.Metadata,
	}
	if d.StartedAt != nil {
		r.StartedAt = d.StartedAt.Time
	}
	if d.FinishedAt != nil {
		r.FinishedAt = d.FinishedAt.Time
	}
	return r
}
