//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package rouge implements ROUGE scoring for reference-based text
// evaluation. Supported types are rougeN (for example rouge1, rouge2),
// rougeL and rougeLsum, matching google-research/rouge semantics.
package rouge

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Score holds ROUGE precision, recall and F-measure, each in [0, 1].
type Score struct {
	Precision float64
	Recall    float64
	FMeasure  float64
}

// options holds scoring configuration.
type options struct {
	rougeTypes     []string
	useStemmer     bool
	splitSummaries bool
}

// Option configures ROUGE scoring.
type Option func(*options)

// WithRougeTypes sets the ROUGE types to compute.
func WithRougeTypes(rougeTypes ...string) Option {
	return func(o *options) {
		o.rougeTypes = append([]string(nil), rougeTypes...)
	}
}

// WithStemmer enables Porter stemming during word tokenization.
func WithStemmer(useStemmer bool) Option {
	return func(o *options) {
		o.useStemmer = useStemmer
	}
}

// WithSplitSummaries enables Punkt sentence splitting for rougeLsum.
// Without it, rougeLsum splits on newlines.
func WithSplitSummaries(splitSummaries bool) Option {
	return func(o *options) {
		o.splitSummaries = splitSummaries
	}
}

// Compute returns ROUGE scores for a reference and prediction pair,
// keyed by ROUGE type. An empty map is returned when no types are
// configured.
func Compute(ctx context.Context, reference, prediction string, opt ...Option) (map[string]Score, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts := &options{}
	for _, o := range opt {
		o(opts)
	}
	if len(opts.rougeTypes) == 0 {
		return map[string]Score{}, nil
	}

	tok := newWordTokenizer(opts.useStemmer)
	var refTokens, predTokens []string
	tokenized := false
	result := make(map[string]Score, len(opts.rougeTypes))
	for _, rougeType := range opts.rougeTypes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if rougeType == "rougeLsum" {
			score, err := scoreSummaryLCS(reference, prediction, tok, opts.splitSummaries)
			if err != nil {
				return nil, err
			}
			result[rougeType] = score
			continue
		}
		if !tokenized {
			refTokens = tok.tokenize(reference)
			predTokens = tok.tokenize(prediction)
			tokenized = true
		}
		if rougeType == "rougeL" {
			result[rougeType] = scoreLCS(refTokens, predTokens)
			continue
		}
		n, err := parseRougeN(rougeType)
		if err != nil {
			return nil, err
		}
		result[rougeType] = scoreNGrams(refTokens, predTokens, n)
	}
	return result, nil
}

// parseRougeN extracts N from a rougeN type string.
func parseRougeN(rougeType string) (int, error) {
	nStr, ok := strings.CutPrefix(rougeType, "rouge")
	if !ok || nStr == "" {
		return 0, fmt.Errorf("invalid rouge type: %s", rougeType)
	}
	n, err := strconv.Atoi(nStr)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid rouge type: %s", rougeType)
	}
	return n, nil
}

func fMeasure(precision, recall float64) float64 {
	if precision+recall > 0 {
		return 2 * precision * recall / (precision + recall)
	}
	return 0
}

// scoreNGrams computes ROUGE-N over n-gram multiset overlap.
func scoreNGrams(refTokens, predTokens []string, n int) Score {
	if len(refTokens) == 0 || len(predTokens) == 0 {
		return Score{}
	}
	refNGrams := countNGrams(refTokens, n)
	predNGrams := countNGrams(predTokens, n)

	overlap, refTotal := 0, 0
	for key, cnt := range refNGrams {
		refTotal += cnt
		if predCnt := predNGrams[key]; predCnt < cnt {
			overlap += predCnt
		} else {
			overlap += cnt
		}
	}
	predTotal := 0
	for _, cnt := range predNGrams {
		predTotal += cnt
	}
	if refTotal == 0 {
		refTotal = 1
	}
	if predTotal == 0 {
		predTotal = 1
	}
	precision := float64(overlap) / float64(predTotal)
	recall := float64(overlap) / float64(refTotal)
	return Score{Precision: precision, Recall: recall, FMeasure: fMeasure(precision, recall)}
}

// countNGrams builds an n-gram multiset keyed by joined token sequences.
func countNGrams(tokens []string, n int) map[string]int {
	if n <= 0 || len(tokens) < n {
		return map[string]int{}
	}
	ngrams := make(map[string]int, len(tokens)-n+1)
	for i := 0; i <= len(tokens)-n; i++ {
		ngrams[strings.Join(tokens[i:i+n], "\x00")]++
	}
	return ngrams
}

// scoreLCS computes ROUGE-L from the longest common subsequence.
func scoreLCS(refTokens, predTokens []string) Score {
	if len(refTokens) == 0 || len(predTokens) == 0 {
		return Score{}
	}
	lcsLen := lcsLength(refTokens, predTokens)
	precision := float64(lcsLen) / float64(len(predTokens))
	recall := float64(lcsLen) / float64(len(refTokens))
	return Score{Precision: precision, Recall: recall, FMeasure: fMeasure(precision, recall)}
}

// lcsLength computes the LCS length with two rolling rows.
func lcsLength(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		curr[0] = 0
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// scoreSummaryLCS computes rougeLsum with sentence-level LCS union.
func scoreSummaryLCS(reference, prediction string, tok *wordTokenizer, splitSummaries bool) (Score, error) {
	refSents, err := splitSentences(reference, splitSummaries)
	if err != nil {
		return Score{}, err
	}
	predSents, err := splitSentences(prediction, splitSummaries)
	if err != nil {
		return Score{}, err
	}
	refTokenized := make([][]string, 0, len(refSents))
	for _, s := range refSents {
		refTokenized = append(refTokenized, tok.tokenize(s))
	}
	predTokenized := make([][]string, 0, len(predSents))
	for _, s := range predSents {
		predTokenized = append(predTokenized, tok.tokenize(s))
	}
	return summaryLevelLCS(refTokenized, predTokenized), nil
}

// splitSentences returns non-empty sentences by Punkt tokenization or
// newline splitting.
func splitSentences(text string, splitSummaries bool) ([]string, error) {
	var sents []string
	if splitSummaries {
		list, err := sentTokenizeEnglish(text)
		if err != nil {
			return nil, err
		}
		sents = list
	} else {
		sents = strings.Split(text, "\n")
	}
	out := make([]string, 0, len(sents))
	for _, sent := range sents {
		if sent != "" {
			out = append(out, sent)
		}
	}
	return out, nil
}

// summaryLevelLCS aggregates per-sentence LCS matches while decrementing
// token budgets so no token is counted twice.
func summaryLevelLCS(refSents, predSents [][]string) Score {
	if len(refSents) == 0 || len(predSents) == 0 {
		return Score{}
	}
	m, n := 0, 0
	refBudget := make(map[string]int)
	predBudget := make(map[string]int)
	for _, s := range refSents {
		m += len(s)
		for _, tok := range s {
			refBudget[tok]++
		}
	}
	for _, s := range predSents {
		n += len(s)
		for _, tok := range s {
			predBudget[tok]++
		}
	}
	if m == 0 || n == 0 {
		return Score{}
	}

	hits := 0
	for _, ref := range refSents {
		for _, tok := range unionLCS(ref, predSents) {
			if refBudget[tok] <= 0 || predBudget[tok] <= 0 {
				continue
			}
			hits++
			refBudget[tok]--
			predBudget[tok]--
		}
	}
	recall := float64(hits) / float64(m)
	precision := float64(hits) / float64(n)
	return Score{Precision: precision, Recall: recall, FMeasure: fMeasure(precision, recall)}
}

// unionLCS returns the reference tokens covered by LCS matches against
// any prediction sentence.
func unionLCS(ref []string, predSents [][]string) []string {
	seen := make(map[int]struct{})
	for _, pred := range predSents {
		for _, idx := range lcsIndices(ref, pred) {
			seen[idx] = struct{}{}
		}
	}
	union := make([]int, 0, len(seen))
	for idx := range seen {
		union = append(union, idx)
	}
	sort.Ints(union)
	out := make([]string, 0, len(union))
	for _, idx := range union {
		out = append(out, ref[idx])
	}
	return out
}

// lcsIndices returns the reference indices of one LCS between ref and pred.
func lcsIndices(ref, pred []string) []int {
	rows, cols := len(ref), len(pred)
	table := make([][]int, rows+1)
	for i := range table {
		table[i] = make([]int, cols+1)
	}
	for i := 1; i <= rows; i++ {
		for j := 1; j <= cols; j++ {
			switch {
			case ref[i-1] == pred[j-1]:
				table[i][j] = table[i-1][j-1] + 1
			case table[i-1][j] >= table[i][j-1]:
				table[i][j] = table[i-1][j]
			default:
				table[i][j] = table[i][j-1]
			}
		}
	}

	indices := make([]int, 0, table[rows][cols])
	i, j := rows, cols
	for i > 0 && j > 0 {
		switch {
		case ref[i-1] == pred[j-1]:
			indices = append(indices, i-1)
			i--
			j--
		case table[i][j-1] > table[i-1][j]:
			j--
		default:
			i--
		}
	}
	for l, r := 0, len(indices)-1; l < r; l, r = l+1, r-1 {
		indices[l], indices[r] = indices[r], indices[l]
	}
	return indices
}
