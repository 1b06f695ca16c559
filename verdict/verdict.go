//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package verdict defines the pass/fail classification of a metric result.
package verdict

import (
	"encoding/json"
	"fmt"
)

// Verdict classifies the outcome of one metric evaluation.
type Verdict int

const (
	// Pass means the score met the metric threshold.
	Pass Verdict = iota
	// Fail means the score fell below the metric threshold.
	Fail
	// Error means the metric could not produce a valid score.
	Error
	// Skip means the metric is excluded from aggregation entirely.
	Skip
)

// String returns the stable wire name of the verdict.
func (v Verdict) String() string {
	switch v {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case Error:
		return "error"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the verdict by name so persisted documents stay readable across releases.
func (v Verdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a verdict from its wire name.
func (v *Verdict) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "pass":
		*v = Pass
	case "fail":
		*v = Fail
	case "error":
		*v = Error
	case "skip":
		*v = Skip
	default:
		return fmt.Errorf("unknown verdict %q", s)
	}
	return nil
}
