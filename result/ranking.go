//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package result

import "sort"

// RankModels orders model names by descending average score. Ties keep
// a stable lexicographic order so rankings are deterministic.
func RankModels(results map[string]*SuiteResult) []string {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := results[names[i]].AvgScore(), results[names[j]].AvgScore()
		if a != b {
			return a > b
		}
		return names[i] < names[j]
	})
	return names
}
