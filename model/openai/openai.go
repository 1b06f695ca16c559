//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package openai provides a model collaborator backed by the OpenAI chat API.
package openai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

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

// Option configures the OpenAI model collaborator.
type Option func(*options)

// WithAPIKey sets the API key. The SDK falls back to OPENAI_API_KEY.
func WithAPIKey(key string) Option {
	return func(o *options) {
		o.apiKey = key
	}
}

// WithBaseURL overrides the API endpoint for OpenAI-compatible gateways.
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
// message to the named OpenAI chat model.
func New(name string, opt ...Option) model.Func {
	opts := defaultOptions
	for _, o := range opt {
		o(&opts)
	}
	if opts.pricing == nil {
		opts.pricing = model.DefaultPricing()
	}
	var clientOpts []openaiopt.RequestOption
	if opts.apiKey != "" {
		clientOpts = append(clientOpts, openaiopt.WithAPIKey(opts.apiKey))
	}
	if opts.baseURL != "" {
		clientOpts = append(clientOpts, openaiopt.WithBaseURL(opts.baseURL))
	}
	client := openai.NewClient(clientOpts...)
	return func(ctx context.Context, input string) (*model.Response, error) {
		start := time.Now()
		completion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model:               shared.ChatModel(name),
			Messages:            []openai.ChatCompletionMessageParamUnion{openai.UserMessage(input)},
			Temperature:         openai.Float(opts.temperature),
			MaxCompletionTokens: openai.Int(opts.maxTokens),
		})
		if err != nil {
			return nil, fmt.Errorf("openai chat completion: %w", err)
		}
		latency := float64(time.Since(start)) / float64(time.Millisecond)
		if len(completion.Choices) == 0 {
			return nil, fmt.Errorf("openai chat completion: no choices")
		}
		promptTokens := int(completion.Usage.PromptTokens)
		completionTokens := int(completion.Usage.CompletionTokens)
		return &model.Response{
			Text:             completion.Choices[0].Message.Content,
			Model:            name,
			LatencyMS:        latency,
			TokenCount:       promptTokens + completionTokens,
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			CostUSD:          opts.pricing.EstimateCost(name, promptTokens, completionTokens),
			Raw:              completion,
		}, nil
	}
}
