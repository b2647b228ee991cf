/*
* Copyright (c) 2025-present ifacelink authors
* @author Andrei Remizov
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"ifacelink",
		"link-time interface binding generator",
		args,
		ver,
		newGenCmd(),
		newVerifyCmd(),
	)

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
