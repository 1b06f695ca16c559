//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package evalcase defines the evaluation case value type.
package evalcase

import (
	"strings"

	"github.com/google/uuid"
)

// caseIDLength truncates generated case IDs to a short, log-friendly prefix.
const caseIDLength = 8

// Case is a single evaluation unit: one input with optional reference data.
// Cases are constructed before a run and never mutated by the runner.
type Case struct {
	// CaseID uniquely identifies the case within a suite.
	// Uniqueness is the caller's responsibility; NewCase generates one when absent.
	CaseID string `json:"caseId,omitempty"`
	// Input is the prompt or question sent to the model.
	Input string `json:"input"`
	// ExpectedOutput is the reference answer, when one exists.
	ExpectedOutput string `json:"expectedOutput,omitempty"`
	// Context holds retrieved context chunks for grounded evaluation.
	Context []string `json:"context,omitempty"`
	// Metadata carries arbitrary tags for filtering and grouping.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Option configures a Case built by NewCase.
type Option func(*Case)

// WithExpectedOutput sets the reference answer.
func WithExpectedOutput(expected string) Option {
	return func(c *Case) {
		c.ExpectedOutput = expected
	}
}

// WithContext sets the retrieved context chunks.
func WithContext(chunks ...string) Option {
	return func(c *Case) {
		c.Context = chunks
	}
}

// WithMetadata sets arbitrary case tags.
func WithMetadata(metadata map[string]any) Option {
	return func(c *Case) {
		c.Metadata = metadata
	}
}

// WithCaseID overrides the generated case ID.
func WithCaseID(id string) Option {
	return func(c *Case) {
		c.CaseID = id
	}
}

// NewCase creates a Case for the given input with a generated case ID.
func NewCase(input string, opt ...Option) *Case {
	c := &Case{Input: input}
	for _, o := range opt {
		o(c)
	}
	if c.CaseID == "" {
		c.CaseID = NewCaseID()
	}
	return c
}

// NewCaseID generates a short unique case identifier.
func NewCaseID() string {
	return uuid.NewString()[:caseIDLength]
}

// ContextString flattens the context chunks into a single string.
func (c *Case) ContextString() string {
	return strings.Join(c.Context, "\n\n")
}
