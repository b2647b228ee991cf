/*
* Copyright (c) 2025-present ifacelink authors
* @author Andrei Remizov
 */

package expand

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var genTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

// emit renders the generated Go file and normalizes it with goimports.
// A formatting failure means the templates produced unparsable code and
// is reported as such rather than written out.
func emit(data *fileData) ([]byte, error) {
	var buf bytes.Buffer
	if err := genTemplates.ExecuteTemplate(&buf, "file", data); err != nil {
		return nil, err
	}
	src, err := imports.Process(generatedGoFile, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("generated code for package %s does not parse: %w", data.PackageName, err)
	}
	return src, nil
}
