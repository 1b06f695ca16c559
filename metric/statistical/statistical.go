//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package statistical provides reference-based NLP metrics and
// response-profile metrics. No model calls are needed.
package statistical

import (
	"context"
	"fmt"
	"math"
	"strings"

	"trpc.group/trpc-go/evalkit/evalcase"
	"trpc.group/trpc-go/evalkit/internal/rouge"
	"trpc.group/trpc-go/evalkit/metric"
	"trpc.group/trpc-go/evalkit/model"
)

// BLEU scores bigram n-gram overlap between the response and the
// expected output, with epsilon smoothing for zero counts.
type BLEU struct {
	metric.Base
}

// BLEUOption configures a BLEU metric.
type BLEUOption func(*BLEU)

// WithBLEUThreshold overrides the pass threshold.
func WithBLEUThreshold(threshold float64) BLEUOption {
	return func(m *BLEU) {
		m.Base = metric.NewBase(m.Name(), threshold)
	}
}

// NewBLEU creates a BLEU metric. The default threshold is 0.3.
func NewBLEU(opt ...BLEUOption) *BLEU {
	m := &BLEU{Base: metric.NewBase("BLEUScore", 0.3)}
	for _, o := range opt {
		o(m)
	}
	return m
}

// Score implements metric.Metric.
func (m *BLEU) Score(ctx context.Context, c *evalcase.Case, rsp *model.Response) (*metric.Result, error) {
	if c.ExpectedOutput == "" {
		return m.ErrorResult(fmt.Errorf("no expected output for BLEU calculation")), nil
	}
	reference := strings.Fields(strings.ToLower(c.ExpectedOutput))
	hypothesis := strings.Fields(strings.ToLower(rsp.Text))
	if len(hypothesis) == 0 {
		return m.MakeResult(0.0, "Empty response", nil), nil
	}
	bleu := sentenceBLEU(reference, hypothesis)
	return m.MakeResult(bleu, fmt.Sprintf("BLEU score: %.4f", bleu), nil), nil
}

// sentenceBLEU computes bigram BLEU with equal weights and epsilon
// smoothing of zero precisions, as in NLTK smoothing method 1.
func sentenceBLEU(reference, hypothesis []string) float64 {
	const epsilon = 0.1
	logSum := 0.0
	for n := 1; n <= 2; n++ {
		num, den := modifiedPrecision(reference, hypothesis, n)
		if den == 0 {
			den = 1
		}
		p := float64(num) / float64(den)
		if num == 0 {
			p = epsilon / float64(den)
		}
		logSum += 0.5 * math.Log(p)
	}
	bp := 1.0
	if len(hypothesis) < len(reference) {
		bp = math.Exp(1 - float64(len(reference))/float64(len(hypothesis)))
	}
	return bp * math.Exp(logSum)
}

// modifiedPrecision returns clipped n-gram matches and the total
// hypothesis n-gram count.
func modifiedPrecision(reference, hypothesis []string, n int) (matched, total int) {
	refCounts := ngramCounts(reference, n)
	hypCounts := ngramCounts(hypothesis, n)
	for key, cnt := range hypCounts {
		total += cnt
		if refCnt := refCounts[key]; refCnt < cnt {
			matched += refCnt
		} else {
			matched += cnt
		}
	}
	return matched, total
}

func ngramCounts(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], "\x00")]++
	}
	return counts
}

// Rouge scores n-gram or subsequence overlap between the response and
// the expected output. The default type is rougeL with stemming, good
// for summarization evaluation.
type Rouge struct {
	metric.Base
	rougeType  string
	useStemmer bool
}

// RougeOption configures a Rouge metric.
type RougeOption func(*Rouge)

// WithRougeType selects the ROUGE type, for example rouge1 or rougeL.
func WithRougeType(rougeType string) RougeOption {
	return func(m *Rouge) {
		m.rougeType = rougeType
	}
}

// WithRougeStemmer toggles Porter stemming.
func WithRougeStemmer(useStemmer bool) RougeOption {
	return func(m *Rouge) {
		m.useStemmer = useStemmer
	}
}

// WithRougeThreshold overrides the pass threshold.
func WithRougeThreshold(threshold float64) RougeOption {
	return func(m *Rouge) {
		m.Base = metric.NewBase(m.Name(), threshold)
	}
}

// NewRouge creates a Rouge metric. The default threshold is 0.3.
func NewRouge(opt ...RougeOption) *Rouge {
	m := &Rouge{
		Base:       metric.NewBase("ROUGEScore", 0.3),
		rougeType:  "rougeL",
		useStemmer: true,
	}
	for _, o := range opt {
		o(m)
	}
	return m
}

// Score implements metric.Metric.
func (m *Rouge) Score(ctx context.Context, c *evalcase.Case, rsp *model.Response) (*metric.Result, error) {
	if c.ExpectedOutput == "" {
		return m.ErrorResult(fmt.Errorf("no expected output for ROUGE calculation")), nil
	}
	scores, err := rouge.Compute(ctx, c.ExpectedOutput, rsp.Text,
		rouge.WithRougeTypes(m.rougeType),
		rouge.WithStemmer(m.useStemmer),
		rouge.WithSplitSummaries(true))
	if err != nil {
		return m.ErrorResult(fmt.Errorf("ROUGE calculation failed: %w", err)), nil
	}
	score := scores[m.rougeType]
	return m.MakeResult(score.FMeasure,
		fmt.Sprintf("%s F1: %.4f", m.rougeType, score.FMeasure),
		map[string]any{
			"precision": score.Precision,
			"recall":    score.Recall,
		}), nil
}

// SemanticSimilarity scores word-level Jaccard overlap between the
// response and the expected output.
type SemanticSimilarity struct {
	metric.Base
}

// SemanticSimilarityOption configures a SemanticSimilarity metric.
type SemanticSimilarityOption func(*SemanticSimilarity)

// WithSimilarityThreshold overrides the pass threshold.
func WithSimilarityThreshold(threshold float64) SemanticSimilarityOption {
	return func(m *SemanticSimilarity) {
		m.Base = metric.NewBase(m.Name(), threshold)
	}
}

// NewSemanticSimilarity creates a SemanticSimilarity metric. The
// default threshold is 0.7.
func NewSemanticSimilarity(opt ...SemanticSimilarityOption) *SemanticSimilarity {
	m := &SemanticSimilarity{Base: metric.NewBase("SemanticSimilarity", 0.7)}
	for _, o := range opt {
		o(m)
	}
	return m
}

// Score implements metric.Metric.
func (m *SemanticSimilarity) Score(ctx context.Context, c *evalcase.Case, rsp *model.Response) (*metric.Result, error) {
	if c.ExpectedOutput == "" {
		return m.ErrorResult(fmt.Errorf("no expected output for similarity calculation")), nil
	}
	similarity := jaccardSimilarity(c.ExpectedOutput, rsp.Text)
	return m.MakeResult(similarity,
		fmt.Sprintf("Word overlap similarity: %.4f", similarity),
		map[string]any{"method": "jaccard"}), nil
}

func jaccardSimilarity(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 && len(wordsB) == 0 {
		return 1.0
	}
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0.0
	}
	intersection := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set[w] = struct{}{}
	}
	return set
}

// Latency scores response latency. The score is 1.0 at or under the
// target and degrades linearly to 0.0 at the maximum.
type Latency struct {
	metric.Base
	targetMS float64
	maxMS    float64
}

// LatencyOption configures a Latency metric.
type LatencyOption func(*Latency)

// WithLatencyThreshold overrides the pass threshold.
func WithLatencyThreshold(threshold float64) LatencyOption {
	return func(m *Latency) {
		m.Base = metric.NewBase(m.Name(), threshold)
	}
}

// NewLatency creates a Latency metric grading against targetMS with a
// hard ceiling at maxMS.
func NewLatency(targetMS, maxMS float64, opt ...LatencyOption) *Latency {
	m := &Latency{
		Base:     metric.NewBase("Latency", metric.DefaultThreshold),
		targetMS: targetMS,
		maxMS:    maxMS,
	}
	for _, o := range opt {
		o(m)
	}
	return m
}

// Score implements metric.Metric.
func (m *Latency) Score(ctx context.Context, c *evalcase.Case, rsp *model.Response) (*metric.Result, error) {
	latency := rsp.LatencyMS
	score := linearScale(latency, m.targetMS, m.maxMS)
	return m.MakeResult(score,
		fmt.Sprintf("Latency: %.0fms (target: %.0fms)", latency, m.targetMS),
		map[string]any{"latencyMS": latency}), nil
}

// Cost scores response cost. The score is 1.0 at or under budget and
// degrades linearly to 0.0 at the maximum.
type Cost struct {
	metric.Base
	budgetUSD float64
	maxUSD    float64
}

// CostOption configures a Cost metric.
type CostOption func(*Cost)

// WithCostThreshold overrides the pass threshold.
func WithCostThreshold(threshold float64) CostOption {
	return func(m *Cost) {
		m.Base = metric.NewBase(m.Name(), threshold)
	}
}

// NewCost creates a Cost metric grading against budgetUSD with a hard
// ceiling at maxUSD.
func NewCost(budgetUSD, maxUSD float64, opt ...CostOption) *Cost {
	m := &Cost{
		Base:      metric.NewBase("Cost", metric.DefaultThreshold),
		budgetUSD: budgetUSD,
		maxUSD:    maxUSD,
	}
	for _, o := range opt {
		o(m)
	}
	return m
}

// Score implements metric.Metric.
func (m *Cost) Score(ctx context.Context, c *evalcase.Case, rsp *model.Response) (*metric.Result, error) {
	cost := rsp.CostUSD
	score := linearScale(cost, m.budgetUSD, m.maxUSD)
	return m.MakeResult(score,
		fmt.Sprintf("Cost: $%.4f (budget: $%.4f)", cost, m.budgetUSD),
		map[string]any{"costUSD": cost}), nil
}

func linearScale(value, target, max float64) float64 {
	switch {
	case value <= target:
		return 1.0
	case value >= max:
		return 0.0
	default:
		return 1.0 - (value-target)/(max-target)
	}
}
