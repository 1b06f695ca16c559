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
	"fmt"

	"trpc.group/trpc-go/evalkit/log"
	"trpc.group/trpc-go/evalkit/model"
	"trpc.group/trpc-go/evalkit/result"
)

// RunComparison runs the suite against each named model in turn and
// returns the per-model suite results. Use result.RankModels to order
// the outcome.
func (r *Runner) RunComparison(ctx context.Context, suite *Suite, models map[string]model.Func) (map[string]*result.SuiteResult, error) {
	results := make(map[string]*result.SuiteResult, len(models))
	for name, fn := range models {
		log.Infof("running comparison model: %s", name)
		suiteResult, err := r.Run(ctx, suite, fn, name)
		if err != nil {
			return nil, fmt.Errorf("run model %s: %w", name, err)
		}
		results[name] = suiteResult
	}
	return results, nil
}
