//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package statistical

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/evalkit/evalcase"
	"trpc.group/trpc-go/evalkit/model"
	"trpc.group/trpc-go/evalkit/verdict"
)

func respond(text string) *model.Response {
	return &model.Response{Text: text, Model: "static"}
}

func TestBLEU_IdenticalText(t *testing.T) {
	m := NewBLEU()
	c := evalcase.NewCase("q", evalcase.WithExpectedOutput("the cat sat on the mat"))
	got, err := m.Score(context.Background(), c, respond("the cat sat on the mat"))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got.Score, 1e-9)
	assert.Equal(t, verdict.Pass, got.Verdict)
}

func TestBLEU_PartialOverlap(t *testing.T) {
	m := NewBLEU()
	c := evalcase.NewCase("q", evalcase.WithExpectedOutput("the cat sat"))
	got, err := m.Score(context.Background(), c, respond("the cat"))
	require.NoError(t, err)
	// p1 = p2 = 1, brevity penalty exp(1 - 3/2).
	assert.InDelta(t, math.Exp(-0.5), got.Score, 1e-9)
}

func TestBLEU_NoOverlapStaysLow(t *testing.T) {
	m := NewBLEU()
	c := evalcase.NewCase("q", evalcase.WithExpectedOutput("alpha beta gamma"))
	got, err := m.Score(context.Background(), c, respond("delta epsilon zeta"))
	require.NoError(t, err)
	assert.Less(t, got.Score, 0.3)
	assert.Equal(t, verdict.Fail, got.Verdict)
}

func TestBLEU_EmptyResponse(t *testing.T) {
	m := NewBLEU()
	c := evalcase.NewCase("q", evalcase.WithExpectedOutput("something"))
	got, err := m.Score(context.Background(), c, respond(""))
	require.NoError(t, err)
	assert.Zero(t, got.Score)
	assert.Equal(t, "Empty response", got.Reason)
}

func TestBLEU_NoExpectedOutput(t *testing.T) {
	m := NewBLEU()
	got, err := m.Score(context.Background(), evalcase.NewCase("q"), respond("x"))
	require.NoError(t, err)
	assert.Equal(t, verdict.Error, got.Verdict)
}

func TestRouge_IdenticalText(t *testing.T) {
	m := NewRouge()
	c := evalcase.NewCase("q", evalcase.WithExpectedOutput("The quick brown fox."))
	got, err := m.Score(context.Background(), c, respond("The quick brown fox."))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got.Score, 1e-9)
	assert.InDelta(t, 1.0, got.Metadata["precision"].(float64), 1e-9)
	assert.InDelta(t, 1.0, got.Metadata["recall"].(float64), 1e-9)
}

func TestRouge_StemmedOverlap(t *testing.T) {
	m := NewRouge(WithRougeType("rouge1"))
	c := evalcase.NewCase("q", evalcase.WithExpectedOutput("running fast"))
	got, err := m.Score(context.Background(), c, respond("run fast"))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got.Score, 1e-9)
}

func TestRouge_NoExpectedOutput(t *testing.T) {
	m := NewRouge()
	got, err := m.Score(context.Background(), evalcase.NewCase("q"), respond("x"))
	require.NoError(t, err)
	assert.Equal(t, verdict.Error, got.Verdict)
}

func TestSemanticSimilarity_Jaccard(t *testing.T) {
	tests := map[string]struct {
		expected string
		text     string
		want     float64
	}{
		"identical":    {expected: "the cat sat", text: "the cat sat", want: 1.0},
		"half overlap": {expected: "a b c d", text: "a b e f", want: 2.0 / 6.0},
		"disjoint":     {expected: "a b", text: "c d", want: 0.0},
		"both empty":   {expected: " ", text: "", want: 1.0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := NewSemanticSimilarity()
			c := evalcase.NewCase("q", evalcase.WithExpectedOutput(tt.expected))
			got, err := m.Score(context.Background(), c, respond(tt.text))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.Score, 1e-9)
		})
	}
}

func TestLatency_Score(t *testing.T) {
	tests := map[string]struct {
		latency float64
		want    float64
	}{
		"under target": {latency: 500, want: 1.0},
		"at target":    {latency: 1000, want: 1.0},
		"midway":       {latency: 3000, want: 0.5},
		"at max":       {latency: 5000, want: 0.0},
		"over max":     {latency: 9000, want: 0.0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := NewLatency(1000, 5000)
			got, err := m.Score(context.Background(), evalcase.NewCase("q"),
				&model.Response{Text: "x", LatencyMS: tt.latency})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.Score, 1e-9)
			assert.Equal(t, tt.latency, got.Metadata["latencyMS"])
		})
	}
}

func TestCost_Score(t *testing.T) {
	tests := map[string]struct {
		cost float64
		want float64
	}{
		"under budget": {cost: 0.005, want: 1.0},
		"midway":       {cost: 0.055, want: 0.5},
		"at max":       {cost: 0.10, want: 0.0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := NewCost(0.01, 0.10)
			got, err := m.Score(context.Background(), evalcase.NewCase("q"),
				&model.Response{Text: "x", CostUSD: tt.cost})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.Score, 1e-9)
		})
	}
}
