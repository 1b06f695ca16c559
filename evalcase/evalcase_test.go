//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package evalcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCaseGeneratesID(t *testing.T) {
	a := NewCase("What is 2+2?")
	b := NewCase("What is 2+2?")
	require.Len(t, a.CaseID, 8)
	assert.NotEqual(t, a.CaseID, b.CaseID)
}

func TestNewCaseOptions(t *testing.T) {
	c := NewCase("q",
		WithCaseID("case-1"),
		WithExpectedOutput("a"),
		WithContext("first", "second"),
		WithMetadata(map[string]any{"suite": "smoke"}),
	)
	assert.Equal(t, "case-1", c.CaseID)
	assert.Equal(t, "a", c.ExpectedOutput)
	assert.Equal(t, "smoke", c.Metadata["suite"])
}

func TestContextString(t *testing.T) {
	assert.Equal(t, "", NewCase("q").ContextString())
	c := NewCase("q", WithContext("first", "second"))
	assert.Equal(t, "first\n\nsecond", c.ContextString())
}
