/*
* Copyright (c) 2025-present ifacelink authors
* @author Andrei Remizov
 */

// Package naming synthesizes the external symbol names that connect an
// interface definition, its implementation and its call sites across
// independently compiled packages.
//
// The definition expansion, the implementation expansion and the call
// rewriter must all call these functions with identical inputs: the
// resulting names are the only thing the linker has to match the three
// parties. Any divergence here silently disconnects caller from callee,
// which is why every function below is a plain deterministic string
// formula with no configuration.
package naming

// Symbol returns the external symbol name of an interface method.
// With a namespace: "__{ns}_{iface}_{method}", without: "__{iface}_{method}".
func Symbol(namespace, iface, method string) string {
	if namespace != "" {
		return "__" + namespace + "_" + iface + "_" + method
	}
	return "__" + iface + "_" + method
}

// ImplSymbol returns the name of the strong definition an implementation
// pushes. The definition side pulls it from inside the dispatch shim of
// every method that carries no default body, so a missing implementation
// of such a method is an unresolved relocation at the link stage.
func ImplSymbol(namespace, iface, method string) string {
	return Symbol(namespace, iface, method) + "__impl"
}

// ModuleName returns the name grouping an interface's extern
// declarations. The namespace is intentionally not included: no two
// interfaces may share a name in one package regardless of namespace,
// so the module name is already unique.
func ModuleName(iface string) string {
	return "__" + iface + "_mod"
}

// AliasGuard returns the sentinel symbol whose absence reveals an
// implementation that refers to the interface under a renamed alias.
//
// Unlike the scoped constant a language with trait-scoped items could
// use, a linker symbol lives in one flat namespace, so interfaces that
// share a name across namespaces must not share a guard. The namespace
// is appended when present; the unqualified form keeps the plain
// "__MustNotAnAlias__{iface}" shape.
func AliasGuard(namespace, iface string) string {
	g := "__MustNotAnAlias__" + iface
	if namespace != "" {
		g += "__" + namespace
	}
	return g
}

// NamespaceGuard returns the sentinel symbol enforcing that a definition
// and an implementation agree on the namespace. Qualified by the
// interface name for the same flat-namespace reason as AliasGuard.
func NamespaceGuard(namespace, iface string) string {
	return "__NamespaceGuard__" + namespace + "__" + iface
}

// SelfProxy returns the name of the per-method proxy a default body
// calls instead of its sibling method, so that the reference is resolved
// through the sibling's external symbol rather than bound early to the
// sibling's default text.
func SelfProxy(method string) string {
	return "__self_proxy_" + method
}
