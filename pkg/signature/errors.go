/*
* Copyright (c) 2025-present ifacelink authors
* @author Ilya Bocharov
 */

package signature

import (
	"errors"
	"fmt"
)

var ErrVariadicNotAllowed = errors.New("variadic parameters are not allowed in a link-bound interface")

func ErrGenericNotAllowed(what string) error {
	return fmt.Errorf("generic parameters are not allowed in a link-bound interface: %s", what)
}

func ErrBadReceiver(typeName, got string) error {
	return fmt.Errorf("implementation methods must use a plain value receiver of %s, got %s", typeName, got)
}
