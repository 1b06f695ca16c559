//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

// Command evalkit runs evaluation suites from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "evalkit",
	Short:   "EvalKit is a model evaluation framework",
	Long:    "EvalKit runs datasets of test cases against models and scores the responses with pluggable metrics.",
	Version: "0.1.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
