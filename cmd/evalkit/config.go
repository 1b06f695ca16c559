//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"trpc.group/trpc-go/evalkit/model"
	"trpc.group/trpc-go/evalkit/model/anthropic"
	"trpc.group/trpc-go/evalkit/model/ollama"
	"trpc.group/trpc-go/evalkit/model/openai"
	"trpc.group/trpc-go/evalkit/model/static"
)

// config holds provider credentials read from the environment.
type config struct {
	OpenAIAPIKey    string `envconfig:"OPENAI_API_KEY"`
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`
	OllamaBaseURL   string `envconfig:"OLLAMA_BASE_URL" default:"http://localhost:11434"`
}

func loadConfig() (*config, error) {
	var cfg config
	if err := envconfig.Process("evalkit", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// buildModel resolves a model spec of the form provider:name. The bare
// spec "static" yields an echo model useful for dry runs without
// credentials.
func buildModel(spec string, cfg *config) (model.Func, string, error) {
	provider, name, _ := strings.Cut(spec, ":")
	switch provider {
	case "static", "":
		return static.New(nil, static.WithDefaultReply("")), "static", nil
	case "openai":
		if name == "" {
			return nil, "", fmt.Errorf("model spec %q is missing a model name", spec)
		}
		return openai.New(name, openai.WithAPIKey(cfg.OpenAIAPIKey)), name, nil
	case "anthropic":
		if name == "" {
			return nil, "", fmt.Errorf("model spec %q is missing a model name", spec)
		}
		return anthropic.New(name, anthropic.WithAPIKey(cfg.AnthropicAPIKey)), name, nil
	case "ollama":
		if name == "" {
			return nil, "", fmt.Errorf("model spec %q is missing a model name", spec)
		}
		return ollama.New(name, ollama.WithBaseURL(cfg.OllamaBaseURL)), "ollama:" + name, nil
	default:
		return nil, "", fmt.Errorf("unknown model provider %q, use static, openai, anthropic or ollama", provider)
	}
}
