/*
* Copyright (c) 2025-present ifacelink authors
* @author Ilya Bocharov
 */

package signature

import (
	"fmt"
	"go/ast"
	"go/types"
)

// Validate rejects signatures that cannot take part in the link
// contract: generic and variadic ones. The same check runs when
// defining and when implementing an interface, since both sides must
// produce identical external signatures. It never degrades to a partial
// projection: the caller aborts the whole expansion on error.
func Validate(ft *ast.FuncType) error {
	if ft.TypeParams != nil && len(ft.TypeParams.List) > 0 {
		return ErrGenericNotAllowed(types.ExprString(ft.TypeParams.List[0].Type))
	}
	if ft.Params != nil {
		for _, f := range ft.Params.List {
			if _, ok := f.Type.(*ast.Ellipsis); ok {
				return ErrVariadicNotAllowed
			}
		}
	}
	return nil
}

// ValidateImplMethod checks the receiver of an implementation method.
// Exactly one plain value receiver of the implementing struct is
// tolerated (projection drops it); anything else is rejected because the
// external symbol forwards through a fresh zero value of the struct and
// must not observe state.
func ValidateImplMethod(fd *ast.FuncDecl, typeName string) error {
	if fd.Recv == nil || len(fd.Recv.List) != 1 {
		return ErrBadReceiver(typeName, "none")
	}
	recv := fd.Recv.List[0].Type
	ident, ok := recv.(*ast.Ident)
	if !ok {
		return ErrBadReceiver(typeName, types.ExprString(recv))
	}
	if ident.Name != typeName {
		return ErrBadReceiver(typeName, ident.Name)
	}
	return Validate(fd.Type)
}

// Project extracts the ordered (name, type) parameter list and the
// result types from a function signature. Unnamed and blank parameters
// get deterministic synthesized names, since generated forwarders must
// be able to mention every argument.
func Project(ft *ast.FuncType) (Signature, error) {
	if err := Validate(ft); err != nil {
		return Signature{}, err
	}

	s := Signature{}
	if ft.Params != nil {
		n := 0
		for _, f := range ft.Params.List {
			typ := types.ExprString(f.Type)
			if len(f.Names) == 0 {
				s.Params = append(s.Params, Param{Name: fmt.Sprintf("p%d", n), Type: typ})
				n++
				continue
			}
			for _, name := range f.Names {
				pname := name.Name
				if pname == "_" {
					pname = fmt.Sprintf("p%d", n)
				}
				s.Params = append(s.Params, Param{Name: pname, Type: typ})
				n++
			}
		}
	}
	if ft.Results != nil {
		for _, f := range ft.Results.List {
			typ := types.ExprString(f.Type)
			// a named result group declares one result per name
			count := len(f.Names)
			if count == 0 {
				count = 1
			}
			for i := 0; i < count; i++ {
				s.Results = append(s.Results, typ)
			}
		}
	}
	return s, nil
}
