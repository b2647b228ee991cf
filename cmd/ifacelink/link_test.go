/*
* Copyright (c) 2025-present ifacelink authors
* @author Andrei Remizov
 */

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// These tests build and run real programs out of generated output, which
// is the only place link-stage behavior is observable: generated-text
// assertions cannot see whether a guard reference survives the compiler
// or whether an override actually wins at run time.

const linkTestDefine = `package hal

//ifacelink:define gen_caller
type SimpleIf interface {
	GetValue() int
	Compute(a, b int) int
}

//ifacelink:define gen_caller
type DerivedIf interface {
	BaseValue() int
	DerivedValue() int
}

//ifacelink:default DerivedIf.BaseValue
func defaultBaseValue() int {
	return 100
}

//ifacelink:default DerivedIf.DerivedValue
func defaultDerivedValue() int {
	return defaultBaseValue() * 2
}
`

const linkTestImpl = `package kernel

//ifacelink:impl SimpleIf
type SimpleImpl struct{}

func (s SimpleImpl) GetValue() int {
	return 12345
}

func (s SimpleImpl) Compute(a, b int) int {
	return a*b + 10
}
`

const linkTestPartialImpl = `package kernel

//ifacelink:impl DerivedIf
type PartialImpl struct{}

func (p PartialImpl) BaseValue() int {
	return 500
}
`

const linkTestMain = `package main

import (
	"fmt"

	"example.com/linktest/hal"
	_ "example.com/linktest/kernel"
)

//ifacelink:call hal::SimpleIf::Compute
var compute func(a, b int) int

func main() {
	fmt.Println("GetValue:", hal.GetValue())
	fmt.Println("Compute:", compute(10, 5))
	fmt.Println("BaseValue:", hal.BaseValue())
	fmt.Println("DerivedValue:", hal.DerivedValue())
}
`

const linkTestGoMod = `module example.com/linktest

go 1.21

require github.com/ifacelink/ifacelink v0.0.0

replace github.com/ifacelink/ifacelink => %s
`

func requireGo(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not available")
	}
}

func writeLinkTestModule(t *testing.T, files map[string]string) string {
	t.Helper()
	require := require.New(t)

	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(err)

	dir := t.TempDir()
	require.NoError(os.WriteFile(filepath.Join(dir, "go.mod"),
		[]byte(fmt.Sprintf(linkTestGoMod, root)), 0o644))
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(os.WriteFile(path, []byte(content), 0o644))
	}

	require.NoError(execRootCmd([]string{"ifacelink", "gen", dir + "/..."}, "0.0.0"))
	return dir
}

func goTool(dir string, args ...string) (string, error) {
	cmd := exec.Command("go", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GOWORK=off")
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func buildAndRun(t *testing.T, dir string) string {
	t.Helper()
	require := require.New(t)

	out, err := goTool(dir, "mod", "tidy")
	require.NoError(err, out)
	bin := filepath.Join(dir, "linktest.bin")
	out, err = goTool(dir, "build", "-o", bin, "./boot")
	require.NoError(err, out)
	out, err = goTool(dir, "run", "./boot")
	require.NoError(err, out)
	return out
}

func TestLinkedProgram(t *testing.T) {
	requireGo(t)
	require := require.New(t)

	dir := writeLinkTestModule(t, map[string]string{
		"hal/hal.go":       linkTestDefine,
		"kernel/kernel.go": linkTestImpl,
		"boot/main.go":     linkTestMain,
	})

	out := buildAndRun(t, dir)
	require.Contains(out, "GetValue: 12345")
	require.Contains(out, "Compute: 60")
	require.Contains(out, "BaseValue: 100")
	require.Contains(out, "DerivedValue: 200")
}

func TestLinkedProgramPartialOverride(t *testing.T) {
	requireGo(t)
	require := require.New(t)

	dir := writeLinkTestModule(t, map[string]string{
		"hal/hal.go":        linkTestDefine,
		"kernel/kernel.go":  linkTestImpl,
		"kernel/partial.go": linkTestPartialImpl,
		"boot/main.go":      linkTestMain,
	})

	// the linked override of BaseValue wins, and DerivedValue follows it
	// through the self proxy
	out := buildAndRun(t, dir)
	require.Contains(out, "BaseValue: 500")
	require.Contains(out, "DerivedValue: 1000")
}

func TestNamespaceMismatchFailsToLink(t *testing.T) {
	requireGo(t)
	require := require.New(t)

	// the implementation claims namespace kmod; the definition carries
	// none, so the implementation's guard call must not resolve
	mismatched := `package kernel

//ifacelink:impl SimpleIf, namespace = kmod
type SimpleImpl struct{}

func (s SimpleImpl) GetValue() int {
	return 12345
}

func (s SimpleImpl) Compute(a, b int) int {
	return a*b + 10
}
`
	dir := writeLinkTestModule(t, map[string]string{
		"hal/hal.go":       linkTestDefine,
		"kernel/kernel.go": mismatched,
		"boot/main.go":     linkTestMain,
	})

	out, err := goTool(dir, "mod", "tidy")
	require.NoError(err, out)
	out, err = goTool(dir, "build", "-o", filepath.Join(dir, "mismatch.bin"), "./boot")
	require.Error(err)
	require.Contains(out, "__MustNotAnAlias__SimpleIf__kmod")
}
