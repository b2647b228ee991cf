/*
* Copyright (c) 2025-present ifacelink authors
* @author Andrei Remizov
 */

package expand

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/ifacelink/ifacelink/pkg/attrs"
	"github.com/ifacelink/ifacelink/pkg/signature"
)

type scanContext struct {
	model    *packageModel
	errs     []error
	defaults []*rawDefault
	// receiver methods by base type name, in source order, for later
	// association with impl directives
	recvMethods map[string][]*ast.FuncDecl
}

type rawDefault struct {
	ref  attrs.DefaultRef
	decl *ast.FuncDecl
	sig  signature.Signature
	pos  token.Position
}

func (c *scanContext) errorAt(err error, pos token.Pos) {
	c.errs = append(c.errs, errorAt(err, c.model.fset.Position(pos)))
}

// scanPackage parses every non-generated Go file of dir and collects the
// directive-decorated declarations into a package model. It accumulates
// errors instead of stopping on the first one, so a single run reports
// everything wrong with the package.
func scanPackage(dir string) (*packageModel, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	c := &scanContext{
		model: &packageModel{
			dir:  dir,
			fset: token.NewFileSet(),
		},
		recvMethods: make(map[string][]*ast.FuncDecl),
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		if strings.HasSuffix(name, "_test.go") || name == generatedGoFile {
			continue
		}
		file, err := parser.ParseFile(c.model.fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			c.errs = append(c.errs, err)
			continue
		}
		if c.model.name == "" {
			c.model.name = file.Name.Name
		} else if c.model.name != file.Name.Name {
			c.errorAt(ErrMixedPackages(file.Name.Name, c.model.name), file.Name.Pos())
			continue
		}
		c.scanFile(file)
	}

	c.associateImplMethods()
	c.associateDefaults()

	return c.model, errors.Join(c.errs...)
}

func (c *scanContext) scanFile(file *ast.File) {
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			kind, payload, pos, ok := c.directiveOf(d.Doc)
			if !ok {
				continue
			}
			c.scanGenDecl(d, kind, payload, pos)
		case *ast.FuncDecl:
			kind, payload, pos, ok := c.directiveOf(d.Doc)
			if !ok {
				if d.Recv != nil {
					c.recordReceiverMethod(d)
				}
				continue
			}
			if kind != directiveDefault {
				c.errorAt(ErrDirectiveTarget(kind), pos)
				continue
			}
			c.scanDefault(d, payload, pos)
		}
	}
}

// directiveOf extracts the single ifacelink directive line of a doc
// comment, if any. A second directive on the same declaration is an
// error: each declaration plays exactly one role.
func (c *scanContext) directiveOf(doc *ast.CommentGroup) (kind, payload string, pos token.Pos, ok bool) {
	if doc == nil {
		return "", "", token.NoPos, false
	}
	for _, comment := range doc.List {
		if !strings.HasPrefix(comment.Text, directivePrefix) {
			continue
		}
		if ok {
			c.errorAt(ErrMultipleDirectives, comment.Pos())
			return "", "", token.NoPos, false
		}
		rest := strings.TrimPrefix(comment.Text, directivePrefix)
		kind, payload, _ = strings.Cut(rest, " ")
		payload = strings.TrimSpace(payload)
		pos = comment.Pos()
		ok = true
	}
	return kind, payload, pos, ok
}

func (c *scanContext) scanGenDecl(d *ast.GenDecl, kind, payload string, pos token.Pos) {
	switch kind {
	case directiveDefine:
		c.scanDefine(d, payload, pos)
	case directiveImpl:
		c.scanImpl(d, payload, pos)
	case directiveCall:
		c.scanCall(d, payload, pos)
	case directiveDefault:
		c.errorAt(ErrDirectiveTarget(kind), pos)
	default:
		c.errorAt(ErrUnknownDirective(kind), pos)
	}
}

func (c *scanContext) singleTypeSpec(d *ast.GenDecl, pos token.Pos) *ast.TypeSpec {
	if d.Tok != token.TYPE || len(d.Specs) != 1 {
		c.errorAt(ErrGroupedDecl, pos)
		return nil
	}
	return d.Specs[0].(*ast.TypeSpec)
}

func (c *scanContext) scanDefine(d *ast.GenDecl, payload string, pos token.Pos) {
	spec := c.singleTypeSpec(d, pos)
	if spec == nil {
		return
	}
	opts, err := attrs.ParseDefine(payload)
	if err != nil {
		c.errorAt(err, pos)
		return
	}
	iface, ok := spec.Type.(*ast.InterfaceType)
	if !ok {
		c.errorAt(ErrDefineNotInterface, spec.Pos())
		return
	}
	if c.model.findDef(spec.Name.Name) != nil {
		c.errorAt(ErrDuplicateInterface(spec.Name.Name), spec.Pos())
		return
	}
	if spec.TypeParams != nil && len(spec.TypeParams.List) > 0 {
		c.errorAt(signature.ErrGenericNotAllowed(spec.Name.Name), spec.TypeParams.Pos())
		return
	}

	def := &interfaceDef{
		name: spec.Name.Name,
		opts: opts,
		pos:  c.model.fset.Position(spec.Pos()),
	}
	// any invalid method aborts the whole interface
	for _, field := range iface.Methods.List {
		if len(field.Names) == 0 {
			c.errorAt(ErrEmbeddedInterface, field.Pos())
			return
		}
		ft := field.Type.(*ast.FuncType)
		sig, err := signature.Project(ft)
		if err != nil {
			c.errorAt(err, field.Pos())
			return
		}
		def.methods = append(def.methods, &methodDef{
			name: field.Names[0].Name,
			sig:  sig,
			pos:  c.model.fset.Position(field.Pos()),
		})
	}
	c.model.defs = append(c.model.defs, def)
}

func (c *scanContext) scanImpl(d *ast.GenDecl, payload string, pos token.Pos) {
	spec := c.singleTypeSpec(d, pos)
	if spec == nil {
		return
	}
	ref, err := attrs.ParseImpl(payload)
	if err != nil {
		c.errorAt(err, pos)
		return
	}
	if _, ok := spec.Type.(*ast.StructType); !ok {
		c.errorAt(ErrExpectTraitImplementation, spec.Pos())
		return
	}
	if spec.TypeParams != nil && len(spec.TypeParams.List) > 0 {
		c.errorAt(signature.ErrGenericNotAllowed(spec.Name.Name), spec.TypeParams.Pos())
		return
	}
	c.model.impls = append(c.model.impls, &implDef{
		typeName: spec.Name.Name,
		ref:      ref,
		pos:      c.model.fset.Position(spec.Pos()),
	})
}

func (c *scanContext) scanCall(d *ast.GenDecl, payload string, pos token.Pos) {
	if d.Tok != token.VAR || len(d.Specs) != 1 {
		c.errorAt(ErrGroupedDecl, pos)
		return
	}
	spec := d.Specs[0].(*ast.ValueSpec)
	if len(spec.Names) != 1 {
		c.errorAt(ErrGroupedDecl, pos)
		return
	}
	if len(spec.Values) != 0 {
		c.errorAt(ErrCallVarInitialized, spec.Values[0].Pos())
		return
	}
	ft, ok := spec.Type.(*ast.FuncType)
	if !ok {
		c.errorAt(ErrCallNotFuncVar, spec.Pos())
		return
	}
	form, err := attrs.ParseCall(payload)
	if err != nil {
		c.errorAt(err, pos)
		return
	}
	if len(form.Args) != 0 {
		c.errorAt(ErrCallArgsNotAllowed, pos)
		return
	}
	sig, err := signature.Project(ft)
	if err != nil {
		c.errorAt(err, spec.Pos())
		return
	}
	c.model.calls = append(c.model.calls, &callBinding{
		varName: spec.Names[0].Name,
		form:    form,
		sig:     sig,
		pos:     c.model.fset.Position(spec.Pos()),
	})
}

func (c *scanContext) scanDefault(d *ast.FuncDecl, payload string, pos token.Pos) {
	if d.Recv != nil {
		c.errorAt(ErrDefaultIsMethod, d.Pos())
		return
	}
	if d.Body == nil {
		c.errorAt(ErrDefaultBodyMissing, d.Pos())
		return
	}
	ref, err := attrs.ParseDefault(payload)
	if err != nil {
		c.errorAt(err, pos)
		return
	}
	sig, err := signature.Project(d.Type)
	if err != nil {
		c.errorAt(err, d.Pos())
		return
	}
	c.defaults = append(c.defaults, &rawDefault{
		ref:  ref,
		decl: d,
		sig:  sig,
		pos:  c.model.fset.Position(d.Pos()),
	})
}

func (c *scanContext) recordReceiverMethod(d *ast.FuncDecl) {
	if len(d.Recv.List) != 1 {
		return
	}
	recv := d.Recv.List[0].Type
	if star, ok := recv.(*ast.StarExpr); ok {
		recv = star.X
	}
	ident, ok := recv.(*ast.Ident)
	if !ok {
		return
	}
	c.recvMethods[ident.Name] = append(c.recvMethods[ident.Name], d)
}

// associateImplMethods attaches the value-receiver methods of each
// annotated struct to its impl. Every value-receiver method is part of
// the claimed surface; pointer-receiver methods are helpers and stay off
// the link surface.
func (c *scanContext) associateImplMethods() {
	for _, impl := range c.model.impls {
		for _, fd := range c.recvMethods[impl.typeName] {
			if _, ok := fd.Recv.List[0].Type.(*ast.Ident); !ok {
				continue
			}
			if err := signature.ValidateImplMethod(fd, impl.typeName); err != nil {
				c.errorAt(err, fd.Pos())
				continue
			}
			sig, err := signature.Project(fd.Type)
			if err != nil {
				c.errorAt(err, fd.Pos())
				continue
			}
			impl.methods = append(impl.methods, &methodDef{
				name: fd.Name.Name,
				sig:  sig,
				pos:  c.model.fset.Position(fd.Pos()),
			})
		}
	}
}

func (c *scanContext) associateDefaults() {
	for _, raw := range c.defaults {
		def := c.model.findDef(raw.ref.Iface)
		if def == nil {
			c.errs = append(c.errs, errorAt(ErrUnknownInterface(raw.ref.Iface), raw.pos))
			continue
		}
		m := def.findMethod(raw.ref.Method)
		if m == nil {
			c.errs = append(c.errs, errorAt(ErrUnknownMethod(raw.ref.Iface, raw.ref.Method), raw.pos))
			continue
		}
		if m.def != nil {
			c.errs = append(c.errs, errorAt(ErrRedeclared(raw.ref.Iface, raw.ref.Method), raw.pos))
			continue
		}
		if !raw.sig.TypesEqual(m.sig) {
			c.errs = append(c.errs, errorAt(
				ErrDefaultSignatureMismatch(raw.decl.Name.Name, raw.ref.Iface, raw.ref.Method), raw.pos))
			continue
		}
		m.def = &defaultBody{
			funcName: raw.decl.Name.Name,
			decl:     raw.decl,
			sig:      raw.sig,
			pos:      raw.pos,
		}
	}
}
