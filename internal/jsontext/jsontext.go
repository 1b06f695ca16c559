//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package jsontext extracts JSON objects from model output that may
// wrap them in markdown fences or surrounding prose.
package jsontext

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractObject parses the first JSON object found in text. Markdown
// code fences are unwrapped first, then the outermost brace pair is
// taken as the candidate object.
func ExtractObject(text string) (map[string]any, error) {
	text = unfence(strings.TrimSpace(text))

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		text = text[start : end+1]
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("parse json object: %w", err)
	}
	return parsed, nil
}

func unfence(text string) string {
	marker, offset := "```json", 7
	start := strings.Index(text, marker)
	if start < 0 {
		marker, offset = "```", 3
		start = strings.Index(text, marker)
	}
	if start < 0 {
		return text
	}
	body := text[start+offset:]
	end := strings.Index(body, "```")
	if end < 0 {
		return text
	}
	return strings.TrimSpace(body[:end])
}
