//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package judge provides metrics that delegate scoring to a judge
// model. Each metric renders a quality-dimension prompt, sends it to
// the injected judge function, and parses a JSON score with reasoning
// out of the reply.
package judge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trpc.group/trpc-go/evalkit/evalcase"
	"trpc.group/trpc-go/evalkit/internal/jsontext"
	"trpc.group/trpc-go/evalkit/log"
	"trpc.group/trpc-go/evalkit/metric"
	"trpc.group/trpc-go/evalkit/model"
)

// Func sends a prompt to a judge model and returns its raw reply.
type Func func(ctx context.Context, prompt string) (string, error)

// FromModel adapts a model collaborator into a judge function by
// returning the response text.
func FromModel(fn model.Func) Func {
	return func(ctx context.Context, prompt string) (string, error) {
		rsp, err := fn(ctx, prompt)
		if err != nil {
			return "", err
		}
		return rsp.Text, nil
	}
}

const notProvided = "(not provided)"

// Metric is a judge-backed metric bound to one prompt template.
type Metric struct {
	metric.Base
	judge    Func
	template string
}

// New creates a judge metric with a custom prompt template. The
// template may reference {input}, {response}, {expected} and {context}.
func New(name string, judge Func, template string, threshold float64) *Metric {
	return &Metric{
		Base:     metric.NewBase(name, threshold),
		judge:    judge,
		template: template,
	}
}

// formatPrompt substitutes case and response data into the template.
func (m *Metric) formatPrompt(c *evalcase.Case, rsp *model.Response) string {
	expected := c.ExpectedOutput
	if expected == "" {
		expected = notProvided
	}
	contextStr := c.ContextString()
	if contextStr == "" {
		contextStr = notProvided
	}
	replacer := strings.NewReplacer(
		"{input}", c.Input,
		"{response}", rsp.Text,
		"{expected}", expected,
		"{context}", contextStr,
	)
	return replacer.Replace(m.template)
}

// Score implements metric.Metric. Judge faults and unparseable replies
// produce error-verdict results rather than hard failures.
func (m *Metric) Score(ctx context.Context, c *evalcase.Case, rsp *model.Response) (*metric.Result, error) {
	reply, err := m.judge(ctx, m.formatPrompt(c, rsp))
	if err != nil {
		log.Errorf("judge metric %s failed: %v", m.Name(), err)
		return m.ErrorResult(err), nil
	}
	parsed, err := jsontext.ExtractObject(reply)
	if err != nil {
		log.Warnf("failed to parse judge response: %.200s", reply)
		return m.ErrorResult(fmt.Errorf("could not parse judge response")), nil
	}

	score := 0.0
	if v, ok := parsed["score"].(float64); ok {
		score = v
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	reason, _ := parsed["reason"].(string)

	metadata := make(map[string]any)
	for k, v := range parsed {
		switch k {
		case "score", "verdict", "reason":
		default:
			metadata[k] = v
		}
	}
	if len(metadata) == 0 {
		metadata = nil
	}
	return m.MakeResult(score, reason, metadata), nil
}

// NewAnswerRelevance judges whether the response addresses the
// question. The default threshold is 0.7.
func NewAnswerRelevance(judge Func) *Metric {
	return New("AnswerRelevance", judge, answerRelevancePrompt, 0.7)
}

// NewHallucination judges fabricated or contradicting claims. A higher
// score means fewer hallucinations. The default threshold is 0.7.
func NewHallucination(judge Func) *Metric {
	return New("Hallucination", judge, hallucinationPrompt, 0.7)
}

// NewCoherence judges structure and logical flow. The default
// threshold is 0.6.
func NewCoherence(judge Func) *Metric {
	return New("Coherence", judge, coherencePrompt, 0.6)
}

// NewToxicity judges harmful content. A higher score means safer
// content. The default threshold is 0.8.
func NewToxicity(judge Func) *Metric {
	return New("Toxicity", judge, toxicityPrompt, 0.8)
}

// NewCorrectness judges factual correctness against the expected
// answer. The default threshold is 0.7.
func NewCorrectness(judge Func) *Metric {
	return New("Correctness", judge, correctnessPrompt, 0.7)
}

// Faithfulness judges whether the response is grounded in the case
// context. Cases without context yield an error-verdict result up
// front, without calling the judge.
type Faithfulness struct {
	*Metric
}

// NewFaithfulness creates a Faithfulness metric. The default threshold
// is 0.7.
func NewFaithfulness(judge Func) *Faithfulness {
	return &Faithfulness{
		Metric: New("Faithfulness", judge, faithfulnessPrompt, 0.7),
	}
}

// Score implements metric.Metric.
func (m *Faithfulness) Score(ctx context.Context, c *evalcase.Case, rsp *model.Response) (*metric.Result, error) {
	if len(c.Context) == 0 {
		return m.ErrorResult(errors.New("no context provided, cannot evaluate faithfulness")), nil
	}
	return m.Metric.Score(ctx, c, rsp)
}
