//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Package local provides local file storage for evaluation result
// documents.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"

	"trpc.group/trpc-go/evalkit/result"
)

const resultSuffix = ".evalresult.json"

// Manager persists suite result documents keyed by run ID.
type Manager interface {
	// Save stores a result document.
	Save(ctx context.Context, doc *result.Document) error
	// Get retrieves a result document by run ID.
	Get(ctx context.Context, runID string) (*result.Document, error)
	// List returns all stored result documents.
	List(ctx context.Context) ([]*result.Document, error)
}

type options struct {
	baseDir string
}

// Option configures the local result manager.
type Option func(*options)

// WithBaseDir overrides the storage directory.
func WithBaseDir(baseDir string) Option {
	return func(o *options) {
		o.baseDir = baseDir
	}
}

// manager implements Manager on the local filesystem.
type manager struct {
	baseDir string
	mu      sync.Mutex
}

// NewManager creates a local file result manager. The default directory
// is ./eval_results.
func NewManager(opt ...Option) Manager {
	opts := options{baseDir: "eval_results"}
	for _, o := range opt {
		o(&opts)
	}
	return &manager{baseDir: opts.baseDir}
}

// Save writes the document to a temporary file and renames it into
// place so readers never observe a partial write.
func (m *manager) Save(ctx context.Context, doc *result.Document) error {
	_ = ctx
	if doc == nil {
		return errors.New("document is nil")
	}
	if doc.RunID == "" {
		return errors.New("run id is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := os.MkdirAll(m.baseDir, 0o755); err != nil {
		return err
	}
	path := m.documentPath(doc.RunID)
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// Get retrieves a result document by run ID.
func (m *manager) Get(ctx context.Context, runID string) (*result.Document, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(runID)
}

// List returns every stored document. Unreadable files are collected
// into a combined error while the healthy documents are still
// returned.
func (m *manager) List(ctx context.Context) ([]*result.Document, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	entries, err := os.ReadDir(m.baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*result.Document{}, nil
		}
		return nil, err
	}
	var docs []*result.Document
	var errs *multierror.Error
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), resultSuffix) {
			continue
		}
		runID := strings.TrimSuffix(entry.Name(), resultSuffix)
		doc, err := m.load(runID)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("load result %s: %w", runID, err))
			continue
		}
		docs = append(docs, doc)
	}
	return docs, errs.ErrorOrNil()
}

func (m *manager) documentPath(runID string) string {
	return filepath.Join(m.baseDir, runID+resultSuffix)
}

func (m *manager) load(runID string) (*result.Document, error) {
	f, err := os.Open(m.documentPath(runID))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var doc result.Document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
