/*
* Copyright (c) 2025-present ifacelink authors
* @author Andrei Remizov
 */

package attrs

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

const (
	keyGenCaller = "gen_caller"
	keyNamespace = "namespace"
)

var attrLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "PathSep", Pattern: `::`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Float", Pattern: `[-+]?\d+\.\d+`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Punct", Pattern: `[=,().]`},
	{Name: "Whitespace", Pattern: `[ \r\n\t]+`},
})

func buildParser[T any]() *participle.Parser[T] {
	return participle.MustBuild[T](
		participle.Lexer(attrLexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
		participle.UseLookahead(4),
	)
}

var (
	defineParser  = buildParser[defineArgsAST]()
	implParser    = buildParser[implArgsAST]()
	callParser    = buildParser[callAST]()
	defaultParser = buildParser[defaultRefAST]()
)

// interpretOptions folds the generic key/value option list into the two
// recognized options, rejecting unknown and duplicate keys.
func interpretOptions(opts []optionAST, genCallerAllowed bool) (DefineOptions, error) {
	res := DefineOptions{}
	for _, o := range opts {
		switch o.Key {
		case keyGenCaller:
			if !genCallerAllowed {
				return res, ErrUnknownOption(o.Key)
			}
			if res.GenCaller {
				return res, ErrDuplicateOption(o.Key)
			}
			if o.Value != nil {
				return res, ErrOptionTakesNoValue(o.Key)
			}
			res.GenCaller = true
		case keyNamespace:
			if res.Namespace != "" {
				return res, ErrDuplicateOption(o.Key)
			}
			if o.Value == nil {
				return res, ErrOptionNeedsValue(o.Key)
			}
			res.Namespace = *o.Value
		default:
			return res, ErrUnknownOption(o.Key)
		}
	}
	return res, nil
}

// ParseDefine parses the option text of a define directive.
func ParseDefine(payload string) (DefineOptions, error) {
	ast, err := defineParser.ParseString("", payload)
	if err != nil {
		return DefineOptions{}, err
	}
	return interpretOptions(ast.Options, true)
}

// ParseImpl parses the payload of an impl directive: the interface
// reference (possibly qualified; only the last segment names the
// interface, like a use-path) and the options.
func ParseImpl(payload string) (ImplRef, error) {
	ast, err := implParser.ParseString("", payload)
	if err != nil {
		return ImplRef{}, err
	}
	opts, err := interpretOptions(ast.Options, false)
	if err != nil {
		return ImplRef{}, err
	}
	return ImplRef{
		Iface:       ast.Iface[len(ast.Iface)-1],
		ImplOptions: ImplOptions{Namespace: opts.Namespace},
	}, nil
}

// ParseCall parses an interface-call form. A leading `namespace = X`
// pair is consumed first when present; the path must then still carry
// at least the Interface::Method segments.
func ParseCall(payload string) (CallForm, error) {
	ast, err := callParser.ParseString("", payload)
	if err != nil {
		return CallForm{}, err
	}
	if len(ast.Segments) < 2 {
		return CallForm{}, ErrExpectTraitFunc
	}
	res := CallForm{Segments: ast.Segments}
	if ast.Namespace != nil {
		res.Namespace = *ast.Namespace
	}
	if ast.Parened != nil {
		res.Args = ast.Parened.Args
	} else if ast.Trailing != nil {
		res.Args = ast.Trailing.Args
	}
	return res, nil
}

// ParseDefault parses the `Interface.Method` reference of a default
// directive.
func ParseDefault(payload string) (DefaultRef, error) {
	ast, err := defaultParser.ParseString("", payload)
	if err != nil {
		return DefaultRef{}, err
	}
	return DefaultRef{Iface: ast.Iface, Method: ast.Method}, nil
}
