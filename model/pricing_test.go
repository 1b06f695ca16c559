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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCostLongestKeyWins(t *testing.T) {
	pricing := DefaultPricing()
	// 1K prompt + 1K completion tokens of gpt-4o-mini must use the mini
	// prices, not the gpt-4 prices that also substring-match.
	cost := pricing.EstimateCost("gpt-4o-mini-2024", 1000, 1000)
	assert.InDelta(t, 0.00015+0.0006, cost, 1e-9)
}

func TestEstimateCostUnknownModel(t *testing.T) {
	assert.Equal(t, 0.0, DefaultPricing().EstimateCost("llama3:8b", 1000, 1000))
}

func TestEstimateCostScalesWithTokens(t *testing.T) {
	pricing := Pricing{"m": {Input: 0.01, Output: 0.02}}
	assert.InDelta(t, 0.005+0.02, pricing.EstimateCost("m-large", 500, 1000), 1e-9)
}
