//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package evalkit

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"trpc.group/trpc-go/evalkit/evalcase"
	"trpc.group/trpc-go/evalkit/metric"
	"trpc.group/trpc-go/evalkit/model"
	"trpc.group/trpc-go/evalkit/result"
)

type caseTaskParam struct {
	idx      int
	ctx      context.Context
	evalCase *evalcase.Case
	metrics  []metric.Metric
	modelFn  model.Func
	runner   *Runner
	results  []*result.CaseResult
	wg       *sync.WaitGroup
}

func (p *caseTaskParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.evalCase = nil
	p.metrics = nil
	p.modelFn = nil
	p.runner = nil
	p.results = nil
	p.wg = nil
}

var caseTaskParamPool = &sync.Pool{
	New: func() any { return new(caseTaskParam) },
}

func createCasePool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*caseTaskParam)
		if !ok {
			panic("case pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			caseTaskParamPool.Put(param)
		}()
		cr := param.runner.evalCase(param.ctx, param.evalCase, param.metrics, param.modelFn)
		param.results[param.idx] = cr
		if fn := param.runner.opts.onCaseComplete; fn != nil {
			fn(param.idx, cr)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("create case pool: %w", err)
	}
	return pool, nil
}
