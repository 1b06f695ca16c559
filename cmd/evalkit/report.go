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
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trpc.group/trpc-go/evalkit/reporter"
	"trpc.group/trpc-go/evalkit/result"
)

var reportFlags struct {
	verbose bool
}

var reportCmd = &cobra.Command{
	Use:   "report <result-file>",
	Short: "Render a report from a saved result document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var doc result.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("parse result document %s: %w", args[0], err)
		}
		console := reporter.NewConsole(reporter.WithVerbose(reportFlags.verbose))
		fmt.Fprint(cmd.OutOrStdout(), console.Report(doc.SuiteResult()))
		return nil
	},
}

func init() {
	reportCmd.Flags().BoolVarP(&reportFlags.verbose, "verbose", "v", false,
		"show per-case details")
	rootCmd.AddCommand(reportCmd)
}
