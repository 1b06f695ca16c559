//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package judge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/evalkit/evalcase"
	"trpc.group/trpc-go/evalkit/model"
	"trpc.group/trpc-go/evalkit/model/static"
	"trpc.group/trpc-go/evalkit/verdict"
)

func respond(text string) *model.Response {
	return &model.Response{Text: text, Model: "static"}
}

func fixedJudge(reply string) Func {
	return func(ctx context.Context, prompt string) (string, error) {
		return reply, nil
	}
}

func TestMetric_ScoreParsesReply(t *testing.T) {
	m := NewCorrectness(fixedJudge(`{"score": 0.9, "verdict": "pass", "reason": "accurate"}`))
	c := evalcase.NewCase("What is 2+2?", evalcase.WithExpectedOutput("4"))
	got, err := m.Score(context.Background(), c, respond("4"))
	require.NoError(t, err)
	assert.Equal(t, 0.9, got.Score)
	assert.Equal(t, verdict.Pass, got.Verdict)
	assert.Equal(t, "accurate", got.Reason)
}

func TestMetric_ScoreClamped(t *testing.T) {
	tests := map[string]struct {
		reply string
		want  float64
	}{
		"above one":  {reply: `{"score": 1.5}`, want: 1.0},
		"below zero": {reply: `{"score": -0.5}`, want: 0.0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := NewCoherence(fixedJudge(tt.reply))
			got, err := m.Score(context.Background(), evalcase.NewCase("q"), respond("x"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Score)
		})
	}
}

func TestMetric_FencedReply(t *testing.T) {
	m := NewAnswerRelevance(fixedJudge("```json\n{\"score\": 0.8, \"reason\": \"on topic\"}\n```"))
	got, err := m.Score(context.Background(), evalcase.NewCase("q"), respond("x"))
	require.NoError(t, err)
	assert.Equal(t, 0.8, got.Score)
}

func TestMetric_ExtraKeysBecomeMetadata(t *testing.T) {
	m := NewHallucination(fixedJudge(`{"score": 0.4, "reason": "made up dates", "hallucinations": ["founded in 1800"]}`))
	got, err := m.Score(context.Background(), evalcase.NewCase("q"), respond("x"))
	require.NoError(t, err)
	assert.Equal(t, []any{"founded in 1800"}, got.Metadata["hallucinations"])
	assert.NotContains(t, got.Metadata, "score")
	assert.NotContains(t, got.Metadata, "reason")
}

func TestMetric_JudgeErrorProducesErrorVerdict(t *testing.T) {
	m := NewToxicity(func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("judge unavailable")
	})
	got, err := m.Score(context.Background(), evalcase.NewCase("q"), respond("x"))
	require.NoError(t, err)
	assert.Equal(t, verdict.Error, got.Verdict)
	assert.Zero(t, got.Score)
}

func TestMetric_UnparseableReply(t *testing.T) {
	m := NewCorrectness(fixedJudge("I think it is fine."))
	got, err := m.Score(context.Background(), evalcase.NewCase("q"), respond("x"))
	require.NoError(t, err)
	assert.Equal(t, verdict.Error, got.Verdict)
}

func TestMetric_PromptSubstitution(t *testing.T) {
	var captured string
	judge := func(ctx context.Context, prompt string) (string, error) {
		captured = prompt
		return `{"score": 1.0}`, nil
	}
	m := NewHallucination(judge)
	c := evalcase.NewCase("What year?",
		evalcase.WithExpectedOutput("1889"),
		evalcase.WithContext("The tower was built in 1889."))
	_, err := m.Score(context.Background(), c, respond("It was 1889."))
	require.NoError(t, err)
	assert.Contains(t, captured, "What year?")
	assert.Contains(t, captured, "1889")
	assert.Contains(t, captured, "The tower was built in 1889.")
	assert.Contains(t, captured, "It was 1889.")
	assert.False(t, strings.Contains(captured, "{input}"))
}

func TestFaithfulness_NoContext(t *testing.T) {
	m := NewFaithfulness(fixedJudge(`{"score": 1.0}`))
	got, err := m.Score(context.Background(), evalcase.NewCase("q"), respond("x"))
	require.NoError(t, err)
	assert.Zero(t, got.Score)
	assert.Equal(t, verdict.Error, got.Verdict)
	assert.Contains(t, got.Reason, "no context provided")
}

func TestFaithfulness_WithContext(t *testing.T) {
	m := NewFaithfulness(fixedJudge(`{"score": 0.9, "reason": "grounded"}`))
	c := evalcase.NewCase("q", evalcase.WithContext("some context"))
	got, err := m.Score(context.Background(), c, respond("x"))
	require.NoError(t, err)
	assert.Equal(t, 0.9, got.Score)
	assert.Equal(t, verdict.Pass, got.Verdict)
}

func TestFromModel(t *testing.T) {
	fn := static.New(map[string]string{}, static.WithDefaultReply(`{"score": 1.0}`))
	judge := FromModel(fn)
	reply, err := judge(context.Background(), "any prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"score": 1.0}`, reply)
}
