/*
* Copyright (c) 2025-present ifacelink authors
* @author Andrei Remizov
 */

package expand

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/tools/go/ast/astutil"

	"github.com/ifacelink/ifacelink/pkg/naming"
)

// rewriteDefaultBody returns the statements of a default body with every
// reference to a sibling default function redirected through a per-method
// self proxy, plus the proxy declarations to prepend. The proxies forward
// through the sibling's dispatch shim, so an override of the sibling wins
// over the default text the body was written next to.
func rewriteDefaultBody(fset *token.FileSet, def *interfaceDef, m *methodDef, namespace string) (string, []proxyData) {
	// default function name -> method it backs, for this interface
	siblings := make(map[string]string)
	for _, sm := range def.methods {
		if sm.def != nil {
			siblings[sm.def.funcName] = sm.name
		}
	}

	referenced := make(map[string]bool)
	body := astutil.Apply(m.def.decl.Body, func(c *astutil.Cursor) bool {
		ident, ok := c.Node().(*ast.Ident)
		if !ok {
			return true
		}
		method, ok := siblings[ident.Name]
		if !ok {
			return true
		}
		// a selector field or method name is not a reference to the
		// default function
		if sel, ok := c.Parent().(*ast.SelectorExpr); ok && sel.Sel == ident {
			return true
		}
		referenced[method] = true
		c.Replace(ast.NewIdent(naming.SelfProxy(method)))
		return true
	}, nil).(*ast.BlockStmt)

	proxies := make([]proxyData, 0, len(referenced))
	methods := maps.Keys(referenced)
	slices.Sort(methods)
	for _, method := range methods {
		sm := def.findMethod(method)
		shim := shimName(naming.Symbol(namespace, def.name, method))
		ret := ""
		if sm.sig.HasResults() {
			ret = "return "
		}
		proxies = append(proxies, proxyData{
			Decl: fmt.Sprintf("%s := func(%s) %s { %s%s(%s) }",
				naming.SelfProxy(method), sm.sig.ParamList(), sm.sig.ResultList(),
				ret, shim, sm.sig.ArgList()),
		})
	}
	return blockStatements(fset, body), proxies
}

// blockStatements prints a block without its outer braces. Indentation is
// left as printed; the emitted file is reformatted as a whole.
func blockStatements(fset *token.FileSet, block *ast.BlockStmt) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, block); err != nil {
		return ""
	}
	s := strings.TrimSpace(buf.String())
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	return strings.Trim(s, "\n")
}
