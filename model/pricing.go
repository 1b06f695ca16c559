//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package model

import (
	"sort"
	"strings"
)

// TokenPrice holds per-1K-token prices in USD for one model family.
type TokenPrice struct {
	// Input is the prompt-side price per 1K tokens.
	Input float64
	// Output is the completion-side price per 1K tokens.
	Output float64
}

// Pricing maps model name fragments to token prices. A Pricing value is
// passed to adapters at construction and treated as immutable afterwards.
type Pricing map[string]TokenPrice

// DefaultPricing returns approximate per-1K-token prices for common models.
func DefaultPricing() Pricing {
	return Pricing{
		"gpt-4":             {Input: 0.03, Output: 0.06},
		"gpt-4-turbo":       {Input: 0.01, Output: 0.03},
		"gpt-4o":            {Input: 0.005, Output: 0.015},
		"gpt-4o-mini":       {Input: 0.00015, Output: 0.0006},
		"gpt-3.5-turbo":     {Input: 0.0005, Output: 0.0015},
		"claude-3-5-sonnet": {Input: 0.003, Output: 0.015},
		"claude-3-haiku":    {Input: 0.00025, Output: 0.00125},
		"claude-3-opus":     {Input: 0.015, Output: 0.075},
	}
}

// EstimateCost estimates the USD cost of a call from token counts.
// Keys are matched as substrings of the model name, longest key first, so
// "gpt-4o-mini" wins over "gpt-4". Unknown models cost zero.
func (p Pricing) EstimateCost(model string, promptTokens, completionTokens int) float64 {
	lower := strings.ToLower(model)
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, key := range keys {
		if strings.Contains(lower, key) {
			price := p[key]
			return float64(promptTokens)/1000*price.Input + float64(completionTokens)/1000*price.Output
		}
	}
	return 0.0
}
