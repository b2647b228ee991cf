/*
* Copyright (c) 2025-present ifacelink authors
* @author Ilya Bocharov
 */

package signature

import "strings"

// Param is one projected function parameter.
type Param struct {
	Name string
	Type string
}

// Signature is the projection of a method signature: the ordered
// parameter list and the result types, with any receiver already
// dropped. It is the only view of a method the expansions operate on,
// and both the definition and the implementation side must project to
// byte-identical parameter and result lists for the link contract to
// hold.
type Signature struct {
	Params  []Param
	Results []string
}

// ParamList renders the parameter list of a generated function,
// e.g. "a int, b int".
func (s Signature) ParamList() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.Name + " " + p.Type
	}
	return strings.Join(parts, ", ")
}

// ArgList renders the plain argument-expression list forwarding a call,
// e.g. "a, b".
func (s Signature) ArgList() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.Name
	}
	return strings.Join(parts, ", ")
}

// ResultList renders the result types: "" for none, a bare type for one,
// a parenthesized list otherwise.
func (s Signature) ResultList() string {
	switch len(s.Results) {
	case 0:
		return ""
	case 1:
		return s.Results[0]
	default:
		return "(" + strings.Join(s.Results, ", ") + ")"
	}
}

// HasResults reports whether the signature returns anything. Generated
// forwarders need the distinction to decide between "return f(...)" and
// a bare call.
func (s Signature) HasResults() bool {
	return len(s.Results) > 0
}

// TypesEqual reports whether two signatures agree on parameter and
// result types. Parameter names do not participate: a default body may
// name its parameters differently from the interface declaration.
func (s Signature) TypesEqual(other Signature) bool {
	if len(s.Params) != len(other.Params) || len(s.Results) != len(other.Results) {
		return false
	}
	for i := range s.Params {
		if s.Params[i].Type != other.Params[i].Type {
			return false
		}
	}
	for i := range s.Results {
		if s.Results[i] != other.Results[i] {
			return false
		}
	}
	return true
}
