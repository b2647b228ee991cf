/*
* Copyright (c) 2025-present ifacelink authors
* @author Andrei Remizov
 */

package expand

import (
	"go/ast"
	"go/token"

	"github.com/ifacelink/ifacelink/pkg/attrs"
	"github.com/ifacelink/ifacelink/pkg/signature"
)

// scanned model

type packageModel struct {
	dir   string
	name  string
	fset  *token.FileSet
	defs  []*interfaceDef
	impls []*implDef
	calls []*callBinding
}

type interfaceDef struct {
	name    string
	opts    attrs.DefineOptions
	methods []*methodDef
	pos     token.Position
}

type methodDef struct {
	name string
	sig  signature.Signature
	pos  token.Position
	// non-nil when a default directive attached a body to this method
	def *defaultBody
}

type defaultBody struct {
	funcName string
	decl     *ast.FuncDecl
	sig      signature.Signature
	pos      token.Position
}

type implDef struct {
	typeName string
	ref      attrs.ImplRef
	methods  []*methodDef
	pos      token.Position
}

type callBinding struct {
	varName string
	form    attrs.CallForm
	sig     signature.Signature
	pos     token.Position
}

func (p *packageModel) empty() bool {
	return len(p.defs) == 0 && len(p.impls) == 0 && len(p.calls) == 0
}

func (p *packageModel) findDef(name string) *interfaceDef {
	for _, d := range p.defs {
		if d.name == name {
			return d
		}
	}
	return nil
}

func (d *interfaceDef) findMethod(name string) *methodDef {
	for _, m := range d.methods {
		if m.name == name {
			return m
		}
	}
	return nil
}

// render model, filled from the scanned model and handed to the
// templates

type fileData struct {
	PackageName string
	NeedLinkrt  bool
	NeedAsm     bool
	Defs        []defData
	Impls       []implData
	Calls       callsData
}

type defData struct {
	Iface             string
	Module            string
	GenCaller         bool
	AliasGuard        string
	AliasGuardDef     string
	NamespaceGuard    string
	NamespaceGuardDef string
	Methods           []defMethodData
}

type defMethodData struct {
	Name       string
	Symbol     string
	ImplSymbol string
	Shim       string
	Params     string
	Args       string
	Results    string
	HasResults bool

	HasDefault bool
	WeakName   string
	WeakSig    string
	Proxies    []proxyData
	Body       string
}

type proxyData struct {
	Decl string
}

type implData struct {
	Iface          string
	Type           string
	AliasGuard     string
	NamespaceGuard string
	Methods        []implMethodData
}

type implMethodData struct {
	Name       string
	Symbol     string
	ImplSymbol string
	Fwd        string
	Params     string
	Args       string
	Results    string
	HasResults bool
}

type callsData struct {
	Pulls []callPullData
	Binds []callBindData
}

type callPullData struct {
	Symbol  string
	Params  string
	Results string
}

type callBindData struct {
	VarName string
	Symbol  string
}
