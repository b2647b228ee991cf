/*
* Copyright (c) 2025-present ifacelink authors
* @author Andrei Remizov
 */

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const implSource = `package kernel

//ifacelink:impl SimpleIf
type SimpleImpl struct{}

func (s SimpleImpl) GetValue() int { return 12345 }
`

func TestBasicUsage(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	require.NoError(os.WriteFile(filepath.Join(dir, "kernel.go"), []byte(implSource), 0o644))

	err := execRootCmd([]string{"ifacelink", "gen", dir}, "0.0.0")
	require.NoError(err)

	gen, err := os.ReadFile(filepath.Join(dir, "ifacelink_gen.go"))
	require.NoError(err)
	require.Contains(string(gen), "__SimpleIf_GetValue__impl")
	_, err = os.Stat(filepath.Join(dir, "ifacelink_gen.s"))
	require.NoError(err)
}

func TestGenWalksTree(t *testing.T) {
	require := require.New(t)

	root := t.TempDir()
	dir := filepath.Join(root, "drivers", "kernel")
	require.NoError(os.MkdirAll(dir, 0o755))
	require.NoError(os.WriteFile(filepath.Join(dir, "kernel.go"), []byte(implSource), 0o644))

	err := execRootCmd([]string{"ifacelink", "gen", root + "/..."}, "0.0.0")
	require.NoError(err)

	_, err = os.Stat(filepath.Join(dir, "ifacelink_gen.go"))
	require.NoError(err)
}

func TestVerifyWritesNothing(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	require.NoError(os.WriteFile(filepath.Join(dir, "kernel.go"), []byte(implSource), 0o644))

	err := execRootCmd([]string{"ifacelink", "verify", dir}, "0.0.0")
	require.NoError(err)

	_, err = os.Stat(filepath.Join(dir, "ifacelink_gen.go"))
	require.True(os.IsNotExist(err))
}

func TestVerifyReportsDiagnostics(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	bad := `package bad

//ifacelink:impl NotAType
type NotAStruct int
`
	require.NoError(os.WriteFile(filepath.Join(dir, "bad.go"), []byte(bad), 0o644))

	err := execRootCmd([]string{"ifacelink", "verify", dir}, "0.0.0")
	require.ErrorContains(err, "expect a trait implementation")
}
