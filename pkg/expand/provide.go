/*
* Copyright (c) 2025-present ifacelink authors
* @author Andrei Remizov
 */

// Package expand scans a package for ifacelink directives and generates
// the link surface connecting interface definitions, implementations and
// call bindings across independently compiled packages.
package expand

import (
	"os"
	"path/filepath"
)

// Options controls one generation run.
type Options struct {
	// WeakDefault enables the default-method overlay. With it off, a
	// default directive is an error instead of a weak body.
	WeakDefault bool
	// DryRun renders the sources without writing any file.
	DryRun bool
}

func DefaultOptions() Options {
	return Options{WeakDefault: true}
}

// Result describes what was generated for one package.
type Result struct {
	Dir         string
	PackageName string
	// GoSource is the formatted generated Go file.
	GoSource []byte
	// AsmSource is the empty assembly stub, nil when the generated file
	// has no bodyless declarations.
	AsmSource []byte
	Defs      int
	Impls     int
	Calls     int
	Wrote     bool
}

// GeneratePackage expands the directives of one package directory.
// It returns (nil, nil) when the package carries no directives. No file
// is written on any error.
func GeneratePackage(dir string, opts Options) (*Result, error) {
	model, err := scanPackage(dir)
	if err != nil {
		return nil, err
	}
	if model.empty() {
		return nil, nil
	}

	data, err := buildFileData(model, opts)
	if err != nil {
		return nil, err
	}
	src, err := emit(data)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Dir:         dir,
		PackageName: model.name,
		GoSource:    src,
		Defs:        len(model.defs),
		Impls:       len(model.impls),
		Calls:       len(model.calls),
	}
	if data.NeedAsm {
		res.AsmSource = []byte(asmStub)
	}
	if opts.DryRun {
		return res, nil
	}

	if err := os.WriteFile(filepath.Join(dir, generatedGoFile), res.GoSource, generatedFileMode); err != nil {
		return nil, err
	}
	asmPath := filepath.Join(dir, generatedAsmFile)
	if res.AsmSource != nil {
		if err := os.WriteFile(asmPath, res.AsmSource, generatedFileMode); err != nil {
			return nil, err
		}
	} else if err := os.Remove(asmPath); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	res.Wrote = true
	return res, nil
}
