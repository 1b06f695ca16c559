//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/evalkit/result"
)

func newDocument(runID string) *result.Document {
	return &result.Document{
		RunID:     runID,
		SuiteName: "qa-basics",
		Model:     "static",
	}
}

func TestManager_SaveAndGet(t *testing.T) {
	m := NewManager(WithBaseDir(t.TempDir()))
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, newDocument("run1")))
	got, err := m.Get(ctx, "run1")
	require.NoError(t, err)
	assert.Equal(t, "run1", got.RunID)
	assert.Equal(t, "qa-basics", got.SuiteName)
}

func TestManager_SaveOverwrites(t *testing.T) {
	m := NewManager(WithBaseDir(t.TempDir()))
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, newDocument("run1")))
	updated := newDocument("run1")
	updated.Model = "ollama:llama3"
	require.NoError(t, m.Save(ctx, updated))

	got, err := m.Get(ctx, "run1")
	require.NoError(t, err)
	assert.Equal(t, "ollama:llama3", got.Model)
}

func TestManager_SaveInvalid(t *testing.T) {
	m := NewManager(WithBaseDir(t.TempDir()))
	ctx := context.Background()
	assert.Error(t, m.Save(ctx, nil))
	assert.Error(t, m.Save(ctx, &result.Document{}))
}

func TestManager_GetMissing(t *testing.T) {
	m := NewManager(WithBaseDir(t.TempDir()))
	_, err := m.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestManager_List(t *testing.T) {
	m := NewManager(WithBaseDir(t.TempDir()))
	ctx := context.Background()
	require.NoError(t, m.Save(ctx, newDocument("run1")))
	require.NoError(t, m.Save(ctx, newDocument("run2")))

	docs, err := m.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestManager_ListEmptyDir(t *testing.T) {
	m := NewManager(WithBaseDir(filepath.Join(t.TempDir(), "nonexistent")))
	docs, err := m.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestManager_ListSkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(WithBaseDir(dir))
	ctx := context.Background()
	require.NoError(t, m.Save(ctx, newDocument("run1")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.evalresult.json"), []byte("{broken"), 0o644))

	docs, err := m.List(ctx)
	assert.Error(t, err)
	assert.Len(t, docs, 1)
}
