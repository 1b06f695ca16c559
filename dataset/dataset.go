//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package dataset loads evaluation cases from JSON, JSONL, CSV and
// YAML files.
package dataset

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"trpc.group/trpc-go/evalkit/evalcase"
	"trpc.group/trpc-go/evalkit/log"
)

// LoadCases detects the file format by extension and loads its cases.
// Supported extensions are .json, .jsonl, .csv, .yaml and .yml.
func LoadCases(path string) ([]*evalcase.Case, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSON(path)
	case ".jsonl":
		return loadJSONL(path)
	case ".csv":
		return loadCSV(path)
	case ".yaml", ".yml":
		return loadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q, use .json, .jsonl, .csv or .yaml", filepath.Ext(path))
	}
}

// loadJSON loads cases from a JSON file holding a list of records. A
// single object is treated as a one-case list.
func loadJSON(path string) ([]*evalcase.Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		var single map[string]any
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, fmt.Errorf("parse dataset %s: %w", path, err)
		}
		records = []map[string]any{single}
	}
	return recordsToCases(path, records)
}

// loadJSONL loads cases from a file with one JSON record per line.
func loadJSONL(path string) ([]*evalcase.Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []map[string]any
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			return nil, fmt.Errorf("parse dataset %s line %d: %w", path, lineNo, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return recordsToCases(path, records)
}

// loadCSV loads cases from a CSV file with a header row. Recognized
// columns are input, expected_output (or expected) and context.
func loadCSV(path string) ([]*evalcase.Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	if len(rows) == 0 {
		return []*evalcase.Case{}, nil
	}
	header := rows[0]
	records := make([]map[string]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]any, len(header))
		for i, col := range header {
			if i < len(row) {
				record[col] = row[i]
			}
		}
		records = append(records, record)
	}
	return recordsToCases(path, records)
}

// loadYAML loads cases from a YAML file holding a list of records.
func loadYAML(path string) ([]*evalcase.Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []map[string]any
	if err := yaml.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return recordsToCases(path, records)
}

func recordsToCases(path string, records []map[string]any) ([]*evalcase.Case, error) {
	cases := make([]*evalcase.Case, 0, len(records))
	for _, record := range records {
		cases = append(cases, recordToCase(record))
	}
	log.Infof("loaded %d cases from %s", len(cases), path)
	return cases, nil
}

// recordToCase converts a raw record to a case, accepting the
// alternate key names common in public QA datasets.
func recordToCase(record map[string]any) *evalcase.Case {
	input := stringKey(record, "input", "question", "prompt")
	var opts []evalcase.Option
	if expected := stringKey(record, "expected_output", "expected", "answer"); expected != "" {
		opts = append(opts, evalcase.WithExpectedOutput(expected))
	}
	if context := contextKey(record, "context", "contexts"); len(context) > 0 {
		opts = append(opts, evalcase.WithContext(context...))
	}
	if caseID := stringKey(record, "case_id", "id"); caseID != "" {
		opts = append(opts, evalcase.WithCaseID(caseID))
	}
	if metadata, ok := record["metadata"].(map[string]any); ok {
		opts = append(opts, evalcase.WithMetadata(metadata))
	}
	return evalcase.NewCase(input, opts...)
}

func stringKey(record map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := record[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// contextKey flattens a string or list-of-strings context value.
func contextKey(record map[string]any, keys ...string) []string {
	for _, key := range keys {
		switch v := record[key].(type) {
		case string:
			if v != "" {
				return []string{v}
			}
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}
