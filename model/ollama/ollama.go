//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package ollama provides a model collaborator for a local Ollama server.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"trpc.group/trpc-go/evalkit/model"
)

const defaultBaseURL = "http://localhost:11434"

type options struct {
	baseURL     string
	temperature float64
	httpClient  *http.Client
}

var defaultOptions = options{
	baseURL:     defaultBaseURL,
	temperature: 0.0,
}

// Option configures the Ollama model collaborator.
type Option func(*options)

// WithBaseURL overrides the server address.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) Option {
	return func(o *options) {
		o.temperature = temperature
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type generateResponse struct {
	Response        string `json:"response"`
	EvalCount       int    `json:"eval_count"`
	PromptEvalCount int    `json:"prompt_eval_count"`
}

// New returns a model.Func that generates completions via the Ollama
// /api/generate endpoint. Local models report zero cost.
func New(name string, opt ...Option) model.Func {
	opts := defaultOptions
	for _, o := range opt {
		o(&opts)
	}
	if opts.httpClient == nil {
		opts.httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return func(ctx context.Context, input string) (*model.Response, error) {
		body, err := json.Marshal(generateRequest{
			Model:   name,
			Prompt:  input,
			Stream:  false,
			Options: map[string]any{"temperature": opts.temperature},
		})
		if err != nil {
			return nil, fmt.Errorf("marshal generate request: %w", err)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			opts.baseURL+"/api/generate", bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("build generate request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		start := time.Now()
		resp, err := opts.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("ollama generate: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("ollama generate: unexpected status %s", resp.Status)
		}
		var data generateResponse
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return nil, fmt.Errorf("decode generate response: %w", err)
		}
		latency := float64(time.Since(start)) / float64(time.Millisecond)
		return &model.Response{
			Text:             data.Response,
			Model:            "ollama:" + name,
			LatencyMS:        latency,
			TokenCount:       data.EvalCount,
			PromptTokens:     data.PromptEvalCount,
			CompletionTokens: data.EvalCount,
			CostUSD:          0,
			Raw:              data,
		}, nil
	}
}
