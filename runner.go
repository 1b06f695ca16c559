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
	"time"

	"github.com/panjf2000/ants/v2"

	"trpc.group/trpc-go/evalkit/evalcase"
	"trpc.group/trpc-go/evalkit/log"
	"trpc.group/trpc-go/evalkit/metric"
	"trpc.group/trpc-go/evalkit/model"
	"trpc.group/trpc-go/evalkit/result"
	"trpc.group/trpc-go/evalkit/verdict"
)

// Runner executes evaluation suites against model collaborators.
type Runner struct {
	opts *options
	pool *ants.PoolWithFunc
}

// NewRunner creates a runner. With a concurrency greater than one it
// holds a worker pool that must be released with Close.
func NewRunner(opt ...Option) (*Runner, error) {
	opts := newOptions(opt...)
	r := &Runner{opts: opts}
	if opts.concurrency > 1 {
		pool, err := createCasePool(opts.concurrency)
		if err != nil {
			return nil, err
		}
		r.pool = pool
	}
	return r, nil
}

// Close releases the worker pool.
func (r *Runner) Close() {
	if r.pool != nil {
		r.pool.Release()
		r.pool = nil
	}
}

// Run evaluates every case in the suite against the model function and
// returns the suite result. Case results keep the order of the suite's
// cases regardless of concurrency. Per-case faults are isolated into
// error-flagged entries, so the returned error covers setup problems
// only.
func (r *Runner) Run(ctx context.Context, suite *Suite, modelFn model.Func, modelName string) (*result.SuiteResult, error) {
	if suite == nil {
		return nil, errors.New("suite is nil")
	}
	if modelFn == nil {
		return nil, errors.New("model func is nil")
	}
	log.Infof("starting eval: %s (%d cases, %d metrics, model=%s)",
		suite.Name, len(suite.Cases), len(suite.Metrics), modelName)

	suiteResult := &result.SuiteResult{
		SuiteName: suite.Name,
		Model:     modelName,
		RunID:     evalcase.NewCaseID(),
		StartedAt: time.Now(),
		Metadata:  suite.Metadata,
	}
	if r.pool != nil {
		suiteResult.CaseResults = r.runParallel(ctx, suite, modelFn)
	} else {
		suiteResult.CaseResults = r.runSerial(ctx, suite, modelFn)
	}
	suiteResult.FinishedAt = time.Now()

	log.Infof("eval complete: %s, %d/%d passed (%.1f%%), avg score %.2f",
		suite.Name, suiteResult.PassedCases(), suiteResult.TotalCases(),
		suiteResult.PassRate()*100, suiteResult.AvgScore())
	return suiteResult, nil
}

func (r *Runner) runSerial(ctx context.Context, suite *Suite, modelFn model.Func) []*result.CaseResult {
	results := make([]*result.CaseResult, 0, len(suite.Cases))
	for idx, c := range suite.Cases {
		cr := r.evalCase(ctx, c, suite.Metrics, modelFn)
		results = append(results, cr)
		if r.opts.onCaseComplete != nil {
			r.opts.onCaseComplete(idx, cr)
		}
		status := "FAIL"
		if cr.Passed() {
			status = "PASS"
		}
		log.Debugf("case %d/%d: %s (%.2f)", idx+1, len(suite.Cases), status, cr.AvgScore())
	}
	return results
}

func (r *Runner) runParallel(ctx context.Context, suite *Suite, modelFn model.Func) []*result.CaseResult {
	results := make([]*result.CaseResult, len(suite.Cases))
	var wg sync.WaitGroup
	for idx, c := range suite.Cases {
		wg.Add(1)
		param := caseTaskParamPool.Get().(*caseTaskParam)
		param.idx = idx
		param.ctx = ctx
		param.evalCase = c
		param.metrics = suite.Metrics
		param.modelFn = modelFn
		param.runner = r
		param.results = results
		param.wg = &wg
		if err := r.pool.Invoke(param); err != nil {
			wg.Done()
			results[idx] = errorCaseResult(c, fmt.Errorf("submit case %s: %w", c.CaseID, err))
			param.reset()
			caseTaskParamPool.Put(param)
		}
	}
	wg.Wait()
	return results
}

// evalCase sends the case input to the model and scores the response
// with every metric. Model faults produce a placeholder response that
// the metrics still score; metric faults and panics produce
// error-verdict results for that metric only.
func (r *Runner) evalCase(ctx context.Context, c *evalcase.Case, metrics []metric.Metric, modelFn model.Func) (cr *result.CaseResult) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("case %s panicked: %v", c.CaseID, rec)
			cr = errorCaseResult(c, fmt.Errorf("case evaluation panicked: %v", rec))
		}
	}()

	start := time.Now()
	rsp, err := modelFn(ctx, c.Input)
	if err != nil || rsp == nil {
		log.Warnf("model call failed for case %s: %v", c.CaseID, err)
		rsp = &model.Response{Model: model.ErrorModel}
	} else if rsp.LatencyMS == 0 {
		rsp.LatencyMS = float64(time.Since(start)) / float64(time.Millisecond)
	}

	metricResults := make([]*metric.Result, 0, len(metrics))
	for _, m := range metrics {
		metricResults = append(metricResults, scoreWithRecovery(ctx, m, c, rsp))
	}
	return &result.CaseResult{
		Case:          c,
		Response:      rsp,
		MetricResults: metricResults,
	}
}

func scoreWithRecovery(ctx context.Context, m metric.Metric, c *evalcase.Case, rsp *model.Response) (mr *metric.Result) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("metric %s panicked for case %s: %v", m.Name(), c.CaseID, rec)
			mr = errorMetricResult(m, fmt.Errorf("metric panicked: %v", rec))
		}
	}()
	mr, err := m.Score(ctx, c, rsp)
	if err != nil || mr == nil {
		log.Warnf("metric %s failed for case %s: %v", m.Name(), c.CaseID, err)
		return errorMetricResult(m, fmt.Errorf("metric error: %w", err))
	}
	return mr
}

func errorMetricResult(m metric.Metric, err error) *metric.Result {
	return &metric.Result{
		MetricName: m.Name(),
		Score:      0,
		Verdict:    verdict.Error,
		Reason:     err.Error(),
		Threshold:  m.Threshold(),
	}
}

// errorCaseResult keeps a faulted case in the run as an error-flagged
// entry so the total case count never shrinks.
func errorCaseResult(c *evalcase.Case, err error) *result.CaseResult {
	return &result.CaseResult{
		Case:     c,
		Response: &model.Response{Model: model.ErrorModel},
		MetricResults: []*metric.Result{{
			MetricName: "runner",
			Verdict:    verdict.Error,
			Reason:     err.Error(),
		}},
	}
}
