// SPDX-License-Identifier: MIT

// Command matcalc performs matrix arithmetic on whitespace-delimited text files.
//
// Usage:
//
//	matcalc add A B OUT
//	matcalc subtract A B OUT
//	matcalc multiply A B|SCALAR OUT
//	matcalc equal A B
//	matcalc trace A
//	matcalc det A
//	matcalc power A N OUT
//	matcalc batch SCRIPT
//
// Settings come from MATCALC_PRECISION, MATCALC_MAX_DET_ORDER and MATCALC_VERBOSE.
package main

import (
	"log"
	"os"

	"github.com/katalvlaran/matcalc/internal/command"
	"github.com/katalvlaran/matcalc/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("matcalc: %v", err)
	}

	logger := log.New(os.Stderr, "matcalc: ", 0)
	runner := command.NewRunner(os.Stdout, logger, cfg)

	os.Exit(runner.Execute(os.Args[1:]))
}
