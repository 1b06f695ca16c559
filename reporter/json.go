//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package reporter

import (
	"encoding/json"
	"os"
	"path/filepath"

	"trpc.group/trpc-go/evalkit/result"
)

// JSON exports evaluation results as machine-readable documents.
type JSON struct {
	indent string
}

// JSONOption configures a JSON reporter.
type JSONOption func(*JSON)

// WithIndent overrides the two-space indentation.
func WithIndent(indent string) JSONOption {
	return func(j *JSON) {
		j.indent = indent
	}
}

// NewJSON creates a JSON reporter.
func NewJSON(opt ...JSONOption) *JSON {
	j := &JSON{indent: "  "}
	for _, o := range opt {
		o(j)
	}
	return j
}

// Render converts a suite result to its document JSON.
func (j *JSON) Render(r *result.SuiteResult) ([]byte, error) {
	return json.MarshalIndent(result.NewDocument(r), "", j.indent)
}

// Save writes a suite result document to path, creating parent
// directories as needed.
func (j *JSON) Save(r *result.SuiteResult, path string) error {
	raw, err := j.Render(r)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// comparisonDocument is the persisted form of a multi-model run.
type comparisonDocument struct {
	Comparison bool                        `json:"comparison"`
	Models     map[string]*result.Document `json:"models"`
	Ranking    []string                    `json:"ranking"`
}

// SaveComparison writes per-model documents plus a ranking by
// descending average score.
func (j *JSON) SaveComparison(results map[string]*result.SuiteResult, path string) error {
	doc := comparisonDocument{
		Comparison: true,
		Models:     make(map[string]*result.Document, len(results)),
		Ranking:    result.RankModels(results),
	}
	for name, r := range results {
		doc.Models[name] = result.NewDocument(r)
	}
	raw, err := json.MarshalIndent(doc, "", j.indent)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
