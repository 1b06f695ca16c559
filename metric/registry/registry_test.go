//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package registry

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/evalkit/metric"
	"trpc.group/trpc-go/evalkit/metric/deterministic"
)

func TestNew_PreloadedFactories(t *testing.T) {
	r := New()
	names := r.List()
	assert.Contains(t, names, "ExactMatch")
	assert.Contains(t, names, "ContainsAll")
	assert.Contains(t, names, "RegexMatch")
	assert.Contains(t, names, "LengthRange")
	assert.Contains(t, names, "ROUGEScore")
	assert.Contains(t, names, "Latency")
	assert.IsIncreasing(t, names)

	f, err := r.Get("ExactMatch")
	require.NoError(t, err)
	assert.Equal(t, "ExactMatch", f().Name())
}

func TestNew_DeterministicDefaults(t *testing.T) {
	r := New()
	for _, name := range []string{"ContainsAll", "RegexMatch", "LengthRange"} {
		f, err := r.Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, f().Name())
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := New()
	err := r.Register("CustomContains", func() metric.Metric {
		return deterministic.NewContainsAll([]string{"alpha"})
	})
	require.NoError(t, err)

	f, err := r.Get("CustomContains")
	require.NoError(t, err)
	assert.Equal(t, "ContainsAll", f().Name())
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := New()
	_, err := r.Get("NoSuchMetric")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRegistry_RegisterInvalid(t *testing.T) {
	r := New()
	assert.Error(t, r.Register("x", nil))
	assert.Error(t, r.Register("", func() metric.Metric { return deterministic.NewIsJSON() }))
}
