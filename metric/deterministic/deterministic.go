//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package deterministic provides scoring metrics that need no model
// call. They are fast and predictable; use judge metrics for nuanced
// evaluation.
package deterministic

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"trpc.group/trpc-go/evalkit/evalcase"
	"trpc.group/trpc-go/evalkit/metric"
	"trpc.group/trpc-go/evalkit/model"
)

// truncate shortens s to at most n bytes, cutting on a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// ExactMatch scores 1.0 when the response text equals the expected
// output and 0.0 otherwise.
type ExactMatch struct {
	metric.Base
	caseSensitive bool
	strip         bool
}

// ExactMatchOption configures an ExactMatch metric.
type ExactMatchOption func(*ExactMatch)

// WithExactCaseSensitive toggles case-sensitive comparison.
func WithExactCaseSensitive(sensitive bool) ExactMatchOption {
	return func(m *ExactMatch) {
		m.caseSensitive = sensitive
	}
}

// WithExactStrip toggles whitespace trimming before comparison.
func WithExactStrip(strip bool) ExactMatchOption {
	return func(m *ExactMatch) {
		m.strip = strip
	}
}

// WithExactThreshold overrides the pass threshold.
func WithExactThreshold(threshold float64) ExactMatchOption {
	return func(m *ExactMatch) {
		m.Base = metric.NewBase(m.Name(), threshold)
	}
}

// NewExactMatch creates an ExactMatch metric. Comparison is
// case-insensitive with trimmed whitespace unless configured otherwise.
func NewExactMatch(opt ...ExactMatchOption) *ExactMatch {
	m := &ExactMatch{
		Base:  metric.NewBase("ExactMatch", 1.0),
		strip: true,
	}
	for _, o := range opt {
		o(m)
	}
	return m
}

// Score implements metric.Metric.
func (m *ExactMatch) Score(ctx context.Context, c *evalcase.Case, rsp *model.Response) (*metric.Result, error) {
	if c.ExpectedOutput == "" {
		return m.ErrorResult(fmt.Errorf("no expected output provided")), nil
	}
	actual, expected := rsp.Text, c.ExpectedOutput
	if m.strip {
		actual = strings.TrimSpace(actual)
		expected = strings.TrimSpace(expected)
	}
	if !m.caseSensitive {
		actual = strings.ToLower(actual)
		expected = strings.ToLower(expected)
	}
	if actual == expected {
		return m.MakeResult(1.0, "Exact match", nil), nil
	}
	reason := fmt.Sprintf("Expected: '%s', Got: '%s'", truncate(expected, 100), truncate(actual, 100))
	return m.MakeResult(0.0, reason, nil), nil
}

// ContainsAny scores the proportion of keywords found in the response.
// With no keywords configured, the expected output serves as the single
// keyword.
type ContainsAny struct {
	metric.Base
	keywords      []string
	caseSensitive bool
}

// ContainsAnyOption configures a ContainsAny metric.
type ContainsAnyOption func(*ContainsAny)

// WithAnyCaseSensitive toggles case-sensitive keyword search.
func WithAnyCaseSensitive(sensitive bool) ContainsAnyOption {
	return func(m *ContainsAny) {
		m.caseSensitive = sensitive
	}
}

// WithAnyThreshold overrides the pass threshold.
func WithAnyThreshold(threshold float64) ContainsAnyOption {
	return func(m *ContainsAny) {
		m.Base = metric.NewBase(m.Name(), threshold)
	}
}

// NewContainsAny creates a ContainsAny metric over the given keywords.
func NewContainsAny(keywords []string, opt ...ContainsAnyOption) *ContainsAny {
	m := &ContainsAny{
		Base:     metric.NewBase("ContainsAny", metric.DefaultThreshold),
		keywords: keywords,
	}
	for _, o := range opt {
		o(m)
	}
	return m
}

// Score implements metric.Metric.
func (m *ContainsAny) Score(ctx context.Context, c *evalcase.Case, rsp *model.Response) (*metric.Result, error) {
	keywords := m.keywords
	if len(keywords) == 0 && c.ExpectedOutput != "" {
		keywords = []string{c.ExpectedOutput}
	}
	if len(keywords) == 0 {
		return m.ErrorResult(fmt.Errorf("no keywords provided")), nil
	}
	found, missing := searchKeywords(rsp.Text, keywords, m.caseSensitive)
	score := float64(len(found)) / float64(len(keywords))
	reason := fmt.Sprintf("None of %v found in response", keywords)
	if len(found) > 0 {
		reason = fmt.Sprintf("Found %d/%d: %v", len(found), len(keywords), found)
	}
	return m.MakeResult(score, reason, map[string]any{
		"found":   found,
		"missing": missing,
	}), nil
}

// ContainsAll requires every keyword to appear; the score is the
// proportion found.
type ContainsAll struct {
	metric.Base
	keywords      []string
	caseSensitive bool
}

// ContainsAllOption configures a ContainsAll metric.
type ContainsAllOption func(*ContainsAll)

// WithAllCaseSensitive toggles case-sensitive keyword search.
func WithAllCaseSensitive(sensitive bool) ContainsAllOption {
	return func(m *ContainsAll) {
		m.caseSensitive = sensitive
	}
}

// WithAllThreshold overrides the pass threshold.
func WithAllThreshold(threshold float64) ContainsAllOption {
	return func(m *ContainsAll) {
		m.Base = metric.NewBase(m.Name(), threshold)
	}
}

// NewContainsAll creates a ContainsAll metric over the given keywords.
func NewContainsAll(keywords []string, opt ...ContainsAllOption) *ContainsAll {
	m := &ContainsAll{
		Base:     metric.NewBase("ContainsAll", 1.0),
		keywords: keywords,
	}
	for _, o := range opt {
		o(m)
	}
	return m
}

// Score implements metric.Metric.
func (m *ContainsAll) Score(ctx context.Context, c *evalcase.Case, rsp *model.Response) (*metric.Result, error) {
	if len(m.keywords) == 0 {
		return m.ErrorResult(fmt.Errorf("no keywords provided")), nil
	}
	found, missing := searchKeywords(rsp.Text, m.keywords, m.caseSensitive)
	score := float64(len(found)) / float64(len(m.keywords))
	reason := fmt.Sprintf("Found %d/%d", len(found), len(m.keywords))
	if len(missing) > 0 {
		reason += fmt.Sprintf(", missing: %v", missing)
	}
	return m.MakeResult(score, reason, map[string]any{
		"found":   found,
		"missing": missing,
	}), nil
}

func searchKeywords(text string, keywords []string, caseSensitive bool) (found, missing []string) {
	if !caseSensitive {
		text = strings.ToLower(text)
	}
	found = make([]string, 0, len(keywords))
	missing = make([]string, 0)
	for _, kw := range keywords {
		check := kw
		if !caseSensitive {
			check = strings.ToLower(kw)
		}
		if strings.Contains(text, check) {
			found = append(found, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	return found, missing
}

// RegexMatch scores 1.0 when the pattern matches anywhere in the
// response. With no pattern configured, the expected output is matched
// literally.
type RegexMatch struct {
	metric.Base
	pattern       string
	caseSensitive bool
}

// RegexMatchOption configures a RegexMatch metric.
type RegexMatchOption func(*RegexMatch)

// WithRegexCaseSensitive disables the default case-insensitive matching.
func WithRegexCaseSensitive(sensitive bool) RegexMatchOption {
	return func(m *RegexMatch) {
		m.caseSensitive = sensitive
	}
}

// WithRegexThreshold overrides the pass threshold.
func WithRegexThreshold(threshold float64) RegexMatchOption {
	return func(m *RegexMatch) {
		m.Base = metric.NewBase(m.Name(), threshold)
	}
}

// NewRegexMatch creates a RegexMatch metric for the given pattern.
func NewRegexMatch(pattern string, opt ...RegexMatchOption) *RegexMatch {
	m := &RegexMatch{
		Base:    metric.NewBase("RegexMatch", 1.0),
		pattern: pattern,
	}
	for _, o := range opt {
		o(m)
	}
	return m
}

// Score implements metric.Metric.
func (m *RegexMatch) Score(ctx context.Context, c *evalcase.Case, rsp *model.Response) (*metric.Result, error) {
	pattern := m.pattern
	if pattern == "" && c.ExpectedOutput != "" {
		pattern = regexp.QuoteMeta(c.ExpectedOutput)
	}
	if pattern == "" {
		return m.ErrorResult(fmt.Errorf("no regex pattern provided")), nil
	}
	compiled := pattern
	if !m.caseSensitive {
		compiled = "(?i)" + pattern
	}
	re, err := regexp.Compile(compiled)
	if err != nil {
		return m.ErrorResult(fmt.Errorf("invalid regex: %w", err)), nil
	}
	if re.MatchString(rsp.Text) {
		return m.MakeResult(1.0, fmt.Sprintf("Pattern found: %s", truncate(pattern, 80)), nil), nil
	}
	return m.MakeResult(0.0, fmt.Sprintf("Pattern not found: %s", truncate(pattern, 80)), nil), nil
}

// IsJSON checks that the response parses as JSON, unwrapping markdown
// code fences first. Required keys, when set, are checked against the
// top-level object.
type IsJSON struct {
	metric.Base
	requiredKeys []string
}

// IsJSONOption configures an IsJSON metric.
type IsJSONOption func(*IsJSON)

// WithRequiredKeys sets keys that must be present in the parsed object.
func WithRequiredKeys(keys ...string) IsJSONOption {
	return func(m *IsJSON) {
		m.requiredKeys = keys
	}
}

// WithJSONThreshold overrides the pass threshold.
func WithJSONThreshold(threshold float64) IsJSONOption {
	return func(m *IsJSON) {
		m.Base = metric.NewBase(m.Name(), threshold)
	}
}

// NewIsJSON creates an IsJSON metric.
func NewIsJSON(opt ...IsJSONOption) *IsJSON {
	m := &IsJSON{
		Base: metric.NewBase("IsJSON", 1.0),
	}
	for _, o := range opt {
		o(m)
	}
	return m
}

// Score implements metric.Metric.
func (m *IsJSON) Score(ctx context.Context, c *evalcase.Case, rsp *model.Response) (*metric.Result, error) {
	text := stripCodeFence(strings.TrimSpace(rsp.Text))
	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return m.MakeResult(0.0, fmt.Sprintf("Invalid JSON: %v", err), nil), nil
	}
	if len(m.requiredKeys) == 0 {
		return m.MakeResult(1.0, "Valid JSON", nil), nil
	}
	object, ok := parsed.(map[string]any)
	if !ok {
		return m.MakeResult(0.5, "Valid JSON but not an object (required keys check skipped)", nil), nil
	}
	var found, missing []string
	for _, key := range m.requiredKeys {
		if _, ok := object[key]; ok {
			found = append(found, key)
		} else {
			missing = append(missing, key)
		}
	}
	score := float64(len(found)) / float64(len(m.requiredKeys))
	reason := fmt.Sprintf("JSON keys: %d/%d", len(found), len(m.requiredKeys))
	if len(missing) > 0 {
		reason += fmt.Sprintf(", missing: %v", missing)
	}
	return m.MakeResult(score, reason, map[string]any{
		"foundKeys":   found,
		"missingKeys": missing,
	}), nil
}

func stripCodeFence(text string) string {
	marker, offset := "```json", 7
	start := strings.Index(text, marker)
	if start < 0 {
		marker, offset = "```", 3
		start = strings.Index(text, marker)
	}
	if start < 0 {
		return text
	}
	body := text[start+offset:]
	end := strings.Index(body, "```")
	if end < 0 {
		return text
	}
	return strings.TrimSpace(body[:end])
}

// LengthRange scores 1.0 when the response length in characters falls
// inside the configured range and degrades linearly outside it.
type LengthRange struct {
	metric.Base
	minChars int
	maxChars int
}

// LengthRangeOption configures a LengthRange metric.
type LengthRangeOption func(*LengthRange)

// WithLengthThreshold overrides the pass threshold.
func WithLengthThreshold(threshold float64) LengthRangeOption {
	return func(m *LengthRange) {
		m.Base = metric.NewBase(m.Name(), threshold)
	}
}

// NewLengthRange creates a LengthRange metric for [minChars, maxChars].
func NewLengthRange(minChars, maxChars int, opt ...LengthRangeOption) *LengthRange {
	m := &LengthRange{
		Base:     metric.NewBase("LengthRange", metric.DefaultThreshold),
		minChars: minChars,
		maxChars: maxChars,
	}
	for _, o := range opt {
		o(m)
	}
	return m
}

// Score implements metric.Metric.
func (m *LengthRange) Score(ctx context.Context, c *evalcase.Case, rsp *model.Response) (*metric.Result, error) {
	length := len(rsp.Text)
	meta := map[string]any{"length": length}
	if length >= m.minChars && length <= m.maxChars {
		reason := fmt.Sprintf("Length %d within [%d, %d]", length, m.minChars, m.maxChars)
		return m.MakeResult(1.0, reason, meta), nil
	}
	if length < m.minChars {
		score := 0.0
		if m.minChars > 0 {
			score = float64(length) / float64(m.minChars)
		}
		return m.MakeResult(score, fmt.Sprintf("Too short: %d < %d", length, m.minChars), meta), nil
	}
	overshoot := length - m.maxChars
	score := 1.0 - float64(overshoot)/float64(m.maxChars)
	if score < 0 {
		score = 0
	}
	return m.MakeResult(score, fmt.Sprintf("Too long: %d > %d", length, m.maxChars), meta), nil
}
