/*
* Copyright (c) 2025-present ifacelink authors
* @author Andrei Remizov
 */

package attrs

import "github.com/alecthomas/participle/v2/lexer"

// DefineOptions is the parsed configuration of a define directive.
type DefineOptions struct {
	// GenCaller requests plain forwarding functions for every method.
	GenCaller bool
	// Namespace partitions the symbol-name space and must match the one
	// given on every implementation of the interface.
	Namespace string
}

// ImplOptions is the parsed configuration of an impl directive.
type ImplOptions struct {
	Namespace string
}

// ImplRef names the one interface an implementation claims to
// implement, plus its options.
type ImplRef struct {
	Iface string
	ImplOptions
}

// CallForm is a parsed interface-call expression:
// "[namespace = X,] [prefix::]Interface::Method" followed by either a
// trailing comma-list of arguments or a parenthesized call form.
type CallForm struct {
	Namespace string
	Segments  []string
	Args      []string
}

// Method returns the last path segment.
func (c CallForm) Method() string { return c.Segments[len(c.Segments)-1] }

// Iface returns the second to last path segment.
func (c CallForm) Iface() string { return c.Segments[len(c.Segments)-2] }

// Prefix returns the path segments before the interface, kept only so a
// caller may qualify the scope in source; symbols are global to the
// linker.
func (c CallForm) Prefix() []string { return c.Segments[:len(c.Segments)-2] }

// DefaultRef names the interface method a default body belongs to.
type DefaultRef struct {
	Iface  string
	Method string
}

// grammar ASTs

type optionAST struct {
	Pos   lexer.Position
	Key   string  `parser:"@Ident"`
	Value *string `parser:"('=' @Ident)?"`
}

type defineArgsAST struct {
	Options []optionAST `parser:"(@@ (',' @@)*)?"`
}

type implArgsAST struct {
	Iface   []string    `parser:"@Ident (('.' | PathSep) @Ident)*"`
	Options []optionAST `parser:"(',' @@)*"`
}

type argsAST struct {
	Args []string `parser:"@(Ident | Int | Float | String) (',' @(Ident | Int | Float | String))*"`
}

type callAST struct {
	Namespace *string  `parser:"('namespace' '=' @Ident ',')?"`
	Segments  []string `parser:"@Ident ((PathSep | '.') @Ident)*"`
	Parened   *argsAST `parser:"( '(' @@? ')'"`
	Trailing  *argsAST `parser:"| (',' @@) )?"`
}

type defaultRefAST struct {
	Iface  string `parser:"@Ident"`
	Method string `parser:"('.' | PathSep) @Ident"`
}
