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
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/evalkit/evalcase"
	"trpc.group/trpc-go/evalkit/metric"
	"trpc.group/trpc-go/evalkit/model"
	"trpc.group/trpc-go/evalkit/verdict"
)

func metricResult(name string, score float64, v verdict.Verdict) *metric.Result {
	return &metric.Result{MetricName: name, Score: score, Verdict: v, Threshold: 0.5}
}

func caseResult(rsp *model.Response, results ...*metric.Result) *CaseResult {
	return &CaseResult{
		Case:          evalcase.NewCase("q"),
		Response:      rsp,
		MetricResults: results,
	}
}

func TestCaseResult_Passed(t *testing.T) {
	tests := map[string]struct {
		results []*metric.Result
		want    bool
	}{
		"all pass": {
			results: []*metric.Result{
				metricResult("a", 1, verdict.Pass),
				metricResult("b", 0.8, verdict.Pass),
			},
			want: true,
		},
		"one fail": {
			results: []*metric.Result{
				metricResult("a", 1, verdict.Pass),
				metricResult("b", 0.2, verdict.Fail),
			},
			want: false,
		},
		"error counts as not passed": {
			results: []*metric.Result{metricResult("a", 0, verdict.Error)},
			want:    false,
		},
		"skip is ignored": {
			results: []*metric.Result{
				metricResult("a", 1, verdict.Pass),
				metricResult("b", 0, verdict.Skip),
			},
			want: true,
		},
		"no metrics passes vacuously": {want: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cr := caseResult(&model.Response{}, tt.results...)
			assert.Equal(t, tt.want, cr.Passed())
		})
	}
}

func TestCaseResult_AvgScoreExcludesSkips(t *testing.T) {
	cr := caseResult(&model.Response{},
		metricResult("a", 1.0, verdict.Pass),
		metricResult("b", 0.5, verdict.Fail),
		metricResult("c", 0.0, verdict.Skip),
	)
	assert.InDelta(t, 0.75, cr.AvgScore(), 1e-9)
}

func TestCaseResult_AvgScoreEmpty(t *testing.T) {
	cr := caseResult(&model.Response{})
	assert.Zero(t, cr.AvgScore())
}

func newSuiteResult() *SuiteResult {
	return &SuiteResult{
		SuiteName: "qa-basics",
		Model:     "static",
		RunID:     "run12345",
		CaseResults: []*CaseResult{
			caseResult(&model.Response{LatencyMS: 100, CostUSD: 0.01},
				metricResult("ExactMatch", 1.0, verdict.Pass)),
			caseResult(&model.Response{LatencyMS: 300, CostUSD: 0.02},
				metricResult("ExactMatch", 0.0, verdict.Fail)),
		},
	}
}

func TestSuiteResult_Aggregates(t *testing.T) {
	r := newSuiteResult()
	assert.Equal(t, 2, r.TotalCases())
	assert.Equal(t, 1, r.PassedCases())
	assert.Equal(t, 1, r.FailedCases())
	assert.InDelta(t, 0.5, r.PassRate(), 1e-9)
	assert.InDelta(t, 0.5, r.AvgScore(), 1e-9)
	assert.InDelta(t, 200, r.AvgLatencyMS(), 1e-9)
	assert.InDelta(t, 0.03, r.TotalCostUSD(), 1e-9)
}

func TestSuiteResult_EmptyRun(t *testing.T) {
	r := &SuiteResult{SuiteName: "empty", Model: "static"}
	assert.Zero(t, r.PassRate())
	assert.Zero(t, r.AvgScore())
	assert.Zero(t, r.AvgLatencyMS())
	assert.Empty(t, r.MetricSummary())
}

func TestSuiteResult_MetricSummary(t *testing.T) {
	r := &SuiteResult{
		CaseResults: []*CaseResult{
			caseResult(&model.Response{},
				metricResult("BLEUScore", 0.2, verdict.Fail),
				metricResult("Latency", 1.0, verdict.Pass)),
			caseResult(&model.Response{},
				metricResult("BLEUScore", 0.8, verdict.Pass),
				metricResult("Latency", 0.0, verdict.Skip)),
		},
	}
	summary := r.MetricSummary()
	require.Len(t, summary, 2)
	bleu := summary["BLEUScore"]
	assert.InDelta(t, 0.5, bleu.Avg, 1e-9)
	assert.InDelta(t, 0.2, bleu.Min, 1e-9)
	assert.InDelta(t, 0.8, bleu.Max, 1e-9)
	assert.Equal(t, 2, bleu.Count)
	// Skipped latency result is excluded.
	assert.Equal(t, 1, summary["Latency"].Count)
	assert.InDelta(t, 1.0, summary["Latency"].Avg, 1e-9)
}

func TestDocument_RoundTrip(t *testing.T) {
	r := newSuiteResult()
	r.StartedAt = time.Unix(1700000000, 0)
	r.FinishedAt = time.Unix(1700000060, 0)
	r.Metadata = map[string]any{"env": "ci"}

	doc := NewDocument(r)
	assert.Equal(t, 2, doc.TotalCases)
	assert.Equal(t, 1, doc.PassedCases)
	assert.InDelta(t, 0.5, doc.PassRate, 1e-9)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	var decoded Document
	require.NoError(t, json.Unmarshal(raw, &decoded))

	restored := decoded.SuiteResult()
	assert.Equal(t, r.SuiteName, restored.SuiteName)
	assert.Equal(t, r.Model, restored.Model)
	assert.Equal(t, r.RunID, restored.RunID)
	assert.Equal(t, r.TotalCases(), restored.TotalCases())
	assert.Equal(t, r.PassedCases(), restored.PassedCases())
	assert.InDelta(t, r.AvgScore(), restored.AvgScore(), 1e-9)
	assert.True(t, restored.StartedAt.Equal(r.StartedAt))
	assert.True(t, restored.FinishedAt.Equal(r.FinishedAt))
}

func TestRankModels(t *testing.T) {
	results := map[string]*SuiteResult{
		"weak": {CaseResults: []*CaseResult{
			caseResult(&model.Response{}, metricResult("m", 0.2, verdict.Fail)),
		}},
		"strong": {CaseResults: []*CaseResult{
			caseResult(&model.Response{}, metricResult("m", 0.9, verdict.Pass)),
		}},
		"middle": {CaseResults: []*CaseResult{
			caseResult(&model.Response{}, metricResult("m", 0.5, verdict.Pass)),
		}},
	}
	assert.Equal(t, []string{"strong", "middle", "weak"}, RankModels(results))
}

func TestRankModels_TiesAreDeterministic(t *testing.T) {
	tied := func() *SuiteResult {
		return &SuiteResult{CaseResults: []*CaseResult{
			caseResult(&model.Response{}, metricResult("m", 0.5, verdict.Pass)),
		}}
	}
	results := map[string]*SuiteResult{"b": tied(), "a": tied(), "c": tied()}
	assert.Equal(t, []string{"a", "b", "c"}, RankModels(results))
}
