/*
* Copyright (c) 2025-present ifacelink authors
* @author Andrei Remizov
 */

package attrs

import (
	"errors"
	"fmt"
)

var ErrExpectTraitFunc = errors.New("expect `Interface::method`")

func ErrUnknownOption(name string) error {
	return fmt.Errorf("unknown argument: %s", name)
}

func ErrDuplicateOption(name string) error {
	return fmt.Errorf("duplicate argument: %s", name)
}

func ErrOptionNeedsValue(name string) error {
	return fmt.Errorf("argument %s requires a value", name)
}

func ErrOptionTakesNoValue(name string) error {
	return fmt.Errorf("argument %s does not take a value", name)
}
