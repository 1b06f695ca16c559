//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package model defines the model collaborator contract consumed by the runner.
package model

import "context"

// ErrorModel is the model label recorded when a model invocation faulted and
// a placeholder response was substituted.
const ErrorModel = "error"

// Response is a single model answer for one case input.
// The runner back-fills LatencyMS when the adapter leaves it at zero;
// everything else is immutable after creation.
type Response struct {
	// Text is the model output.
	Text string `json:"text"`
	// Model identifies the model that produced the output.
	Model string `json:"model"`
	// LatencyMS is the wall-clock duration of the call in milliseconds.
	LatencyMS float64 `json:"latencyMs"`
	// TokenCount is the total token usage of the call.
	TokenCount int `json:"tokenCount,omitempty"`
	// PromptTokens is the prompt-side token usage.
	PromptTokens int `json:"promptTokens,omitempty"`
	// CompletionTokens is the completion-side token usage.
	CompletionTokens int `json:"completionTokens,omitempty"`
	// CostUSD is the estimated cost of the call in USD.
	CostUSD float64 `json:"costUsd,omitempty"`
	// Raw keeps the provider payload for debugging. Never serialized.
	Raw any `json:"-"`
}

// Func is a model collaborator: it takes case input text and returns a
// response or an error. Credentials, retries, and rate limiting are the
// collaborator's concern.
type Func func(ctx context.Context, input string) (*Response, error)
