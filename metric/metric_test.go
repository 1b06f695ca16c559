//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package metric

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"trpc.group/trpc-go/evalkit/verdict"
)

func TestBase_MakeResult(t *testing.T) {
	b := NewBase("exact_match", 0.5)
	tests := map[string]struct {
		score float64
		want  verdict.Verdict
	}{
		"above threshold": {score: 0.9, want: verdict.Pass},
		"at threshold":    {score: 0.5, want: verdict.Pass},
		"below threshold": {score: 0.49, want: verdict.Fail},
		"zero":            {score: 0, want: verdict.Fail},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := b.MakeResult(tt.score, "", nil)
			assert.Equal(t, tt.want, got.Verdict)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, "exact_match", got.MetricName)
			assert.Equal(t, 0.5, got.Threshold)
		})
	}
}

func TestBase_ErrorResult(t *testing.T) {
	b := NewBase("judge", 0.7)
	got := b.ErrorResult(errors.New("judge unavailable"))
	assert.Equal(t, verdict.Error, got.Verdict)
	assert.Zero(t, got.Score)
	assert.Equal(t, "Error: judge unavailable", got.Reason)
	assert.Equal(t, 0.7, got.Threshold)
}

func TestBase_SkipResult(t *testing.T) {
	b := NewBase("faithfulness", 0.5)
	got := b.SkipResult("no context provided")
	assert.Equal(t, verdict.Skip, got.Verdict)
	assert.Zero(t, got.Score)
	assert.Equal(t, "no context provided", got.Reason)
}
