//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package jsontext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractObject(t *testing.T) {
	tests := map[string]struct {
		text string
		want map[string]any
	}{
		"bare object": {
			text: `{"score": 0.8, "reason": "good"}`,
			want: map[string]any{"score": 0.8, "reason": "good"},
		},
		"json fence": {
			text: "```json\n{\"score\": 1}\n```",
			want: map[string]any{"score": 1.0},
		},
		"plain fence": {
			text: "```\n{\"score\": 1}\n```",
			want: map[string]any{"score": 1.0},
		},
		"surrounding prose": {
			text: `Here is my assessment: {"score": 0.5} Hope that helps.`,
			want: map[string]any{"score": 0.5},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ExtractObject(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractObject_Invalid(t *testing.T) {
	for _, text := range []string{"", "no json here", "{broken", "[1, 2]"} {
		_, err := ExtractObject(text)
		assert.Error(t, err, text)
	}
}
