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
	"sort"

	"github.com/spf13/cobra"

	"trpc.group/trpc-go/evalkit/metric/registry"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List available metrics",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available metrics:")
		for _, name := range registry.New().List() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Judge metrics (require --judge):")
		names := make([]string, 0, len(judgeFactories))
		for name := range judgeFactories {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "  %s\n", name)
		}
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
