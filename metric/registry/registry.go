//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package registry manages the registration and retrieval of metric
// factories by name.
package registry

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"trpc.group/trpc-go/evalkit/metric"
	"trpc.group/trpc-go/evalkit/metric/deterministic"
	"trpc.group/trpc-go/evalkit/metric/statistical"
)

// Factory builds a metric with its default configuration.
type Factory func() metric.Metric

// Registry defines the interface for metric factory registries.
type Registry interface {
	// Register registers a metric factory under a name.
	Register(name string, f Factory) error
	// Get retrieves a factory by name.
	Get(name string) (Factory, error)
	// List returns the names of all registered factories.
	List() []string
}

// registry is the default implementation of Registry.
type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New creates a metric registry preloaded with the metrics that need no
// external collaborators. Judge metrics require a judge function, so
// callers register those themselves as closures.
func New() Registry {
	r := &registry{
		factories: make(map[string]Factory),
	}
	r.Register("ExactMatch", func() metric.Metric { return deterministic.NewExactMatch() })
	r.Register("ContainsAny", func() metric.Metric { return deterministic.NewContainsAny(nil) })
	r.Register("ContainsAll", func() metric.Metric { return deterministic.NewContainsAll(nil) })
	r.Register("RegexMatch", func() metric.Metric { return deterministic.NewRegexMatch("") })
	r.Register("IsJSON", func() metric.Metric { return deterministic.NewIsJSON() })
	r.Register("LengthRange", func() metric.Metric { return deterministic.NewLengthRange(0, 10000) })
	r.Register("BLEUScore", func() metric.Metric { return statistical.NewBLEU() })
	r.Register("ROUGEScore", func() metric.Metric { return statistical.NewRouge() })
	r.Register("SemanticSimilarity", func() metric.Metric { return statistical.NewSemanticSimilarity() })
	r.Register("Latency", func() metric.Metric { return statistical.NewLatency(1000, 5000) })
	r.Register("Cost", func() metric.Metric { return statistical.NewCost(0.01, 0.10) })
	return r
}

// Register registers a metric factory under a name.
// A factory registered with the same name is overwritten.
func (r *registry) Register(name string, f Factory) error {
	if f == nil {
		return errors.New("metric factory is nil")
	}
	if name == "" {
		return errors.New("metric name is empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
	return nil
}

// Get gets a metric factory by name.
// Returns os.ErrNotExist if no factory is registered under the name.
func (r *registry) Get(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f, ok := r.factories[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("get metric %s: %w", name, os.ErrNotExist)
}

// List returns the names of all registered factories sorted
// lexicographically.
func (r *registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
