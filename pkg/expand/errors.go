/*
* Copyright (c) 2025-present ifacelink authors
* @author Andrei Remizov
 */

package expand

import (
	"errors"
	"fmt"
	"go/token"
)

var (
	ErrExpectTraitImplementation = errors.New("expect a trait implementation")
	ErrDefineNotInterface        = errors.New("define directive must decorate an interface type")
	ErrEmbeddedInterface         = errors.New("embedded interfaces are not allowed in a link interface")
	ErrGroupedDecl               = errors.New("directive must decorate a single ungrouped declaration")
	ErrMultipleDirectives        = errors.New("more than one directive on a declaration")
	ErrCallNotFuncVar            = errors.New("call directive must decorate a package-level var of function type")
	ErrCallVarInitialized        = errors.New("call binding var must not have an initializer")
	ErrCallArgsNotAllowed        = errors.New("arguments are not allowed in a call binding")
	ErrDefaultIsMethod           = errors.New("default directive must decorate a plain function, not a method")
	ErrDefaultBodyMissing        = errors.New("default directive must decorate a function with a body")
)

func ErrUnknownDirective(name string) error {
	return fmt.Errorf("unknown directive: %s%s", directivePrefix, name)
}

func ErrDirectiveTarget(name string) error {
	return fmt.Errorf("directive %s%s cannot decorate this declaration", directivePrefix, name)
}

func ErrMixedPackages(got, want string) error {
	return fmt.Errorf("package %s mixed with package %s in one directory", got, want)
}

func ErrUnknownInterface(name string) error {
	return fmt.Errorf("unknown interface: %s", name)
}

func ErrDuplicateInterface(name string) error {
	return fmt.Errorf("interface %s defined more than once in this package", name)
}

func ErrUnknownMethod(iface, method string) error {
	return fmt.Errorf("interface %s has no method %s", iface, method)
}

func ErrRedeclared(iface, method string) error {
	return fmt.Errorf("default for %s.%s redeclared", iface, method)
}

func ErrDefaultSignatureMismatch(funcName, iface, method string) error {
	return fmt.Errorf("signature of %s does not match %s.%s", funcName, iface, method)
}

func ErrDefaultWithoutOverlay(iface, method string) error {
	return fmt.Errorf("default for %s.%s requires the weak default overlay", iface, method)
}

func errorAt(err error, pos token.Position) error {
	return fmt.Errorf("%s: %w", pos, err)
}
