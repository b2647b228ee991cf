/*
* Copyright (c) 2025-present ifacelink authors
* @author Andrei Remizov
 */

package attrs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefine(t *testing.T) {
	require := require.New(t)

	opts, err := ParseDefine("")
	require.NoError(err)
	require.False(opts.GenCaller)
	require.Equal("", opts.Namespace)

	opts, err = ParseDefine("gen_caller")
	require.NoError(err)
	require.True(opts.GenCaller)

	opts, err = ParseDefine("gen_caller, namespace = kmod")
	require.NoError(err)
	require.True(opts.GenCaller)
	require.Equal("kmod", opts.Namespace)

	opts, err = ParseDefine("namespace = kmod")
	require.NoError(err)
	require.False(opts.GenCaller)
	require.Equal("kmod", opts.Namespace)
}

func TestParseDefine_Errors(t *testing.T) {
	require := require.New(t)

	_, err := ParseDefine("whatever")
	require.ErrorContains(err, "unknown argument: whatever")

	_, err = ParseDefine("gen_caller, gen_caller")
	require.ErrorContains(err, "duplicate argument: gen_caller")

	_, err = ParseDefine("namespace = a, namespace = b")
	require.ErrorContains(err, "duplicate argument: namespace")

	_, err = ParseDefine("namespace")
	require.ErrorContains(err, "requires a value")

	_, err = ParseDefine("gen_caller = yes")
	require.ErrorContains(err, "does not take a value")
}

func TestParseImpl(t *testing.T) {
	require := require.New(t)

	ref, err := ParseImpl("SimpleIf")
	require.NoError(err)
	require.Equal("SimpleIf", ref.Iface)
	require.Equal("", ref.Namespace)

	ref, err = ParseImpl("SimpleIf, namespace = kmod")
	require.NoError(err)
	require.Equal("SimpleIf", ref.Iface)
	require.Equal("kmod", ref.Namespace)

	// a qualified reference names the interface by its last segment
	ref, err = ParseImpl("hal.SimpleIf")
	require.NoError(err)
	require.Equal("SimpleIf", ref.Iface)
}

func TestParseImpl_Errors(t *testing.T) {
	require := require.New(t)

	// gen_caller belongs to definitions only
	_, err := ParseImpl("SimpleIf, gen_caller")
	require.ErrorContains(err, "unknown argument: gen_caller")

	_, err = ParseImpl("")
	require.Error(err)
}

func TestParseCall(t *testing.T) {
	require := require.New(t)

	call, err := ParseCall("SimpleIf::Compute")
	require.NoError(err)
	require.Equal("", call.Namespace)
	require.Equal("SimpleIf", call.Iface())
	require.Equal("Compute", call.Method())
	require.Empty(call.Prefix())
	require.Empty(call.Args)

	// trailing comma-list argument form
	call, err = ParseCall("SimpleIf::Compute, 10, 5")
	require.NoError(err)
	require.Equal([]string{"10", "5"}, call.Args)

	// parenthesized call form
	call, err = ParseCall("SimpleIf::Compute(10, 5)")
	require.NoError(err)
	require.Equal([]string{"10", "5"}, call.Args)

	// leading namespace pair is consumed first
	call, err = ParseCall("namespace = kmod, SimpleIf::Compute(a, b)")
	require.NoError(err)
	require.Equal("kmod", call.Namespace)
	require.Equal("SimpleIf", call.Iface())
	require.Equal([]string{"a", "b"}, call.Args)

	// a longer path keeps its prefix
	call, err = ParseCall("hal::SimpleIf::Compute")
	require.NoError(err)
	require.Equal([]string{"hal"}, call.Prefix())
	require.Equal("SimpleIf", call.Iface())
}

func TestParseCall_Errors(t *testing.T) {
	require := require.New(t)

	_, err := ParseCall("Compute")
	require.ErrorIs(err, ErrExpectTraitFunc)

	_, err = ParseCall("namespace = kmod, Compute")
	require.ErrorIs(err, ErrExpectTraitFunc)

	_, err = ParseCall("")
	require.Error(err)
}

func TestParseDefault(t *testing.T) {
	require := require.New(t)

	ref, err := ParseDefault("DerivedIf.BaseValue")
	require.NoError(err)
	require.Equal("DerivedIf", ref.Iface)
	require.Equal("BaseValue", ref.Method)

	ref, err = ParseDefault("DerivedIf::BaseValue")
	require.NoError(err)
	require.Equal("BaseValue", ref.Method)

	_, err = ParseDefault("BaseValue")
	require.Error(err)
}
