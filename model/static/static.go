//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package static provides a canned-response model collaborator for tests
// and offline runs.
package static

import (
	"context"
	"strings"

	"trpc.group/trpc-go/evalkit/model"
)

const defaultReply = "I don't know"

type options struct {
	defaultReply string
}

// Option configures the static model collaborator.
type Option func(*options)

// WithDefaultReply sets the reply returned for inputs not in the table.
func WithDefaultReply(reply string) Option {
	return func(o *options) {
		o.defaultReply = reply
	}
}

// New returns a model.Func that looks each input up in responses and
// falls back to the default reply for unknown inputs.
func New(responses map[string]string, opt ...Option) model.Func {
	opts := options{defaultReply: defaultReply}
	for _, o := range opt {
		o(&opts)
	}
	return func(ctx context.Context, input string) (*model.Response, error) {
		text, ok := responses[input]
		if !ok {
			text = opts.defaultReply
		}
		return &model.Response{
			Text:       text,
			Model:      "static",
			TokenCount: len(strings.Fields(text)),
		}, nil
	}
}
