//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package rouge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_Rouge1(t *testing.T) {
	scores, err := Compute(context.Background(), "the cat sat", "the cat",
		WithRougeTypes("rouge1"))
	require.NoError(t, err)
	got := scores["rouge1"]
	assert.InDelta(t, 1.0, got.Precision, 1e-9)
	assert.InDelta(t, 2.0/3.0, got.Recall, 1e-9)
	assert.InDelta(t, 0.8, got.FMeasure, 1e-9)
}

func TestCompute_Rouge2(t *testing.T) {
	scores, err := Compute(context.Background(), "the cat sat on the mat", "the cat sat",
		WithRougeTypes("rouge2"))
	require.NoError(t, err)
	got := scores["rouge2"]
	assert.InDelta(t, 1.0, got.Precision, 1e-9)
	assert.InDelta(t, 0.4, got.Recall, 1e-9)
	assert.InDelta(t, 2*0.4/1.4, got.FMeasure, 1e-9)
}

func TestCompute_RougeL(t *testing.T) {
	scores, err := Compute(context.Background(), "the cat sat", "cat the sat",
		WithRougeTypes("rougeL"))
	require.NoError(t, err)
	got := scores["rougeL"]
	assert.InDelta(t, 2.0/3.0, got.Precision, 1e-9)
	assert.InDelta(t, 2.0/3.0, got.Recall, 1e-9)
	assert.InDelta(t, 2.0/3.0, got.FMeasure, 1e-9)
}

func TestCompute_Identical(t *testing.T) {
	scores, err := Compute(context.Background(), "Testing one two three.", "Testing one two three.",
		WithRougeTypes("rouge1", "rouge2", "rougeL"))
	require.NoError(t, err)
	for rougeType, score := range scores {
		assert.InDelta(t, 1.0, score.FMeasure, 1e-9, rougeType)
	}
}

func TestCompute_NoOverlap(t *testing.T) {
	scores, err := Compute(context.Background(), "alpha beta", "gamma delta",
		WithRougeTypes("rouge1", "rougeL"))
	require.NoError(t, err)
	assert.Zero(t, scores["rouge1"].FMeasure)
	assert.Zero(t, scores["rougeL"].FMeasure)
}

func TestCompute_EmptyInputs(t *testing.T) {
	scores, err := Compute(context.Background(), "", "anything",
		WithRougeTypes("rouge1", "rougeL"))
	require.NoError(t, err)
	assert.Equal(t, Score{}, scores["rouge1"])
	assert.Equal(t, Score{}, scores["rougeL"])
}

func TestCompute_Stemmer(t *testing.T) {
	scores, err := Compute(context.Background(), "running fast", "run fast",
		WithRougeTypes("rouge1"), WithStemmer(true))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores["rouge1"].FMeasure, 1e-9)
}

func TestCompute_RougeLsumNewlineSplit(t *testing.T) {
	scores, err := Compute(context.Background(), "the cat sat\nthe dog ran", "the cat sat",
		WithRougeTypes("rougeLsum"))
	require.NoError(t, err)
	got := scores["rougeLsum"]
	assert.InDelta(t, 1.0, got.Precision, 1e-9)
	assert.InDelta(t, 0.5, got.Recall, 1e-9)
}

func TestCompute_RougeLsumSplitSummaries(t *testing.T) {
	scores, err := Compute(context.Background(),
		"The cat sat. The dog ran.", "The cat sat.",
		WithRougeTypes("rougeLsum"), WithSplitSummaries(true))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores["rougeLsum"].Precision, 1e-9)
}

func TestCompute_InvalidType(t *testing.T) {
	_, err := Compute(context.Background(), "a", "b", WithRougeTypes("rougeX"))
	assert.Error(t, err)
}

func TestCompute_NoTypes(t *testing.T) {
	scores, err := Compute(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestPorterStem(t *testing.T) {
	tests := map[string]string{
		"running":    "run",
		"caresses":   "caress",
		"ponies":     "poni",
		"relational": "relat",
		"dying":      "die",
		"skies":      "sky",
		"feed":       "feed",
		"agreed":     "agre",
	}
	for word, want := range tests {
		assert.Equal(t, want, porterStem(word), word)
	}
}

func TestWordTokenizer(t *testing.T) {
	tok := newWordTokenizer(false)
	assert.Equal(t, []string{"hello", "world", "42"}, tok.tokenize("Hello, World! 42"))
	assert.Empty(t, tok.tokenize("!!! ???"))
}
