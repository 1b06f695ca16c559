//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package evalkit

import "trpc.group/trpc-go/evalkit/result"

// CaseCompleteFunc is called after each case finishes with its index in
// the suite and its result. Under concurrency greater than one the
// calls arrive in completion order, not case order.
type CaseCompleteFunc func(idx int, cr *result.CaseResult)

// options holds runner configuration.
type options struct {
	concurrency    int
	onCaseComplete CaseCompleteFunc
}

// newOptions applies functional options over the defaults.
func newOptions(opt ...Option) *options {
	opts := &options{concurrency: 1}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures a Runner.
type Option func(*options)

// WithConcurrency sets the maximum number of concurrent case
// evaluations. One means sequential execution.
func WithConcurrency(concurrency int) Option {
	return func(o *options) {
		o.concurrency = concurrency
	}
}

// WithOnCaseComplete sets a callback fired after each case completes.
func WithOnCaseComplete(fn CaseCompleteFunc) Option {
	return func(o *options) {
		o.onCaseComplete = fn
	}
}
