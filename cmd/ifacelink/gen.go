/*
* Copyright (c) 2025-present ifacelink authors
* @author Andrei Remizov
 */

package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/ifacelink/ifacelink/pkg/expand"
)

type genParams struct {
	dryRun        bool
	noWeakDefault bool
}

func newGenCmd() *cobra.Command {
	params := genParams{}
	cmd := &cobra.Command{
		Use:   "gen [dirs...]",
		Short: "expand directives into generated link surfaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(args, params)
		},
	}
	cmd.Flags().BoolVar(&params.dryRun, "dry-run", false, "report what would be generated, write nothing")
	cmd.Flags().BoolVar(&params.noWeakDefault, "no-weak-default", false, "disable the weak default overlay, default directives become errors")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [dirs...]",
		Short: "run expansion without writing and report diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(args, genParams{dryRun: true})
		},
	}
}

func generate(args []string, params genParams) error {
	dirs, err := collectDirs(args)
	if err != nil {
		return err
	}

	opts := expand.Options{
		WeakDefault: !params.noWeakDefault,
		DryRun:      params.dryRun,
	}
	errs := make([]error, 0)
	generated := 0
	for _, dir := range dirs {
		res, err := expand.GeneratePackage(dir, opts)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if res == nil {
			if logger.IsVerbose() {
				logger.Verbose("no directives in", dir)
			}
			continue
		}
		generated++
		logger.Info(dir+":", res.Defs, "defs,", res.Impls, "impls,", res.Calls, "call bindings")
	}
	if len(errs) == 0 {
		logger.Info("processed", len(dirs), "dirs,", generated, "packages expanded")
	}
	return errors.Join(errs...)
}

// collectDirs resolves the dir arguments; a trailing "..." walks the
// tree, taking every directory that holds Go files and skipping hidden,
// underscore-prefixed, testdata and vendor directories.
func collectDirs(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	dirs := make([]string, 0, len(args))
	for _, arg := range args {
		if !strings.HasSuffix(arg, "...") {
			dirs = append(dirs, filepath.Clean(arg))
			continue
		}
		root := filepath.Clean(strings.TrimSuffix(arg, "..."))
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
				name == "testdata" || name == "vendor") {
				return filepath.SkipDir
			}
			ok, err := hasGoFiles(path)
			if err != nil {
				return err
			}
			if ok {
				dirs = append(dirs, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return dirs, nil
}

func hasGoFiles(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".go") {
			return true, nil
		}
	}
	return false, nil
}
