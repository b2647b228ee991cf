/*
* Copyright (c) 2025-present ifacelink authors
* @author Ilya Bocharov
 */

package linkrt

import "fmt"

func ErrUnresolved(module, symbol string) error {
	return fmt.Errorf("%s: unresolved interface symbol %s (no implementation linked and no default)", module, symbol)
}
