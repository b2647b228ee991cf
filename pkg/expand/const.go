/*
* Copyright (c) 2025-present ifacelink authors
* @author Andrei Remizov
 */

package expand

const (
	directivePrefix = "//ifacelink:"

	directiveDefine  = "define"
	directiveImpl    = "impl"
	directiveDefault = "default"
	directiveCall    = "call"

	generatedGoFile  = "ifacelink_gen.go"
	generatedAsmFile = "ifacelink_gen.s"

	generatedFileMode = 0o644
)

// asmStub keeps the assembler quiet about the bodyless linkname pulls in
// the generated Go file. An empty assembly file in the package is enough
// to let them through to the linker.
const asmStub = `// Code generated by ifacelink. DO NOT EDIT.

// This file intentionally left empty. Its presence allows the function
// declarations without bodies in ` + generatedGoFile + ` to reach the
// linker, where they resolve against symbols pushed elsewhere.
`
