//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package anthropic provides a model collaborator backed by the Anthropic messages API.
package anthropic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"trpc.group/trpc-go/evalkit/model"
)

type options struct {
	apiKey      string
	baseURL     string
	temperature float64
	maxTokens   int64
	pricing     model.Pricing
}

var defaultOptions = options{
	temperature: 0.0,
	maxTokens:   1024,
}

// Option configures the Anthropic model collaborator.
type Option func(*options)

// WithAPIKey sets the API key. The SDK falls back to ANTHROPIC_API_KEY.
func WithAPIKey(key string) Option {
	return func(o *options) {
		o.apiKey = key
	}
}

// WithBaseURL overrides the API endpoint.
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

// WithMaxTokens caps the completion length.
func WithMaxTokens(maxTokens int64) Option {
	return func(o *options) {
		o.maxTokens = maxTokens
	}
}

// WithPricing sets the pricing table used for cost estimation.
func WithPricing(pricing model.Pricing) Option {
	return func(o *options) {
		o.pricing = pricing
	}
}

// New returns a model.Func that sends each case input as a single user
// message to the named Anthropic model.
func New(name string, opt ...Option) model.Func {
	opts := defaultOptions
	for _, o := range opt {
		o(&opts)
	}
	if opts.pricing == nil {
		opts.pricing = model.DefaultPricing()
	}
	var clientOpts []option.RequestOption
	if opts.apiKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.apiKey))
	}
	if opts.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.baseURL))
	}
	client := anthropic.NewClient(clientOpts...)
	return func(ctx context.Context, input string) (*model.Response, error) {
		start := time.Now()
		message, err := client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:       anthropic.Model(name),
			MaxTokens:   opts.maxTokens,
			Temperature: anthropic.Float(opts.temperature),
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(input)),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("anthropic message: %w", err)
		}
		latency := float64(time.Since(start)) / float64(time.Millisecond)
		var text strings.Builder
		for _, block := range message.Content {
			if block.Type == "text" {
				text.WriteString(block.Text)
			}
		}
		promptTokens := int(message.Usage.InputTokens)
		completionTokens := int(message.Usage.OutputTokens)
		return &model.Response{
			Text:             text.String(),
			Model:            name,
			LatencyMS:        latency,
			TokenCount:       promptTokens + completionTokens,
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			CostUSD:          opts.pricing.EstimateCost(name, promptTokens, completionTokens),
			Raw:              message,
		}, nil
	}
}
