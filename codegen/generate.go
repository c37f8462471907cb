/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

// enummetaImport is the runtime library wired into lazy output.
const enummetaImport = "github.com/suparena/enummeta"

type templateData struct {
	Package string
	Type    string
	Meta    string
	Store   string
	Imports []string
	Entries []TableEntry
}

var eagerTemplate = template.Must(template.New("eager").Parse(`// Code generated by metagen; DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)

// Meta returns the metadata attached to v, evaluated fresh on every call.
func (v {{.Type}}) Meta() {{.Meta}} {
	switch v {
{{- range .Entries}}
	case {{.Variant}}:
		return {{.Value}}
{{- end}}
	}
	panic(fmt.Sprintf("unknown {{.Type}} variant %v", v))
}

// All{{.Type}} returns every {{.Type}} variant in table order.
func All{{.Type}}() []{{.Type}} {
	return []{{.Type}}{
{{- range .Entries}}
		{{.Variant}},
{{- end}}
	}
}
`))

var lazyTemplate = template.Must(template.New("lazy").Parse(`// Code generated by metagen; DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)

// All{{.Type}} returns every {{.Type}} variant in table order.
func All{{.Type}}() []{{.Type}} {
	return []{{.Type}}{
{{- range .Entries}}
		{{.Variant}},
{{- end}}
	}
}

// {{.Store}} is the process-wide metadata store for {{.Type}}. Its table
// expressions are evaluated exactly once, on first lookup.
var {{.Store}} = enummeta.MustLazy("{{.Store}}", All{{.Type}}(),
{{- range .Entries}}
	enummeta.Expr({{.Variant}}, func() {{$.Meta}} { return {{.Value}} }),
{{- end}}
)

// Meta returns a pointer to the cached metadata attached to v.
func (v {{.Type}}) Meta() *{{.Meta}} {
	return {{.Store}}.Meta(v)
}
`))

// Generate renders the Go source for a table. declared is the variant list
// discovered from the target package; generation fails if the table does not
// cover it exactly.
func Generate(tbl *Table, declared []string) ([]byte, error) {
	if err := tbl.CheckCoverage(declared); err != nil {
		return nil, err
	}

	data := templateData{
		Package: tbl.Package,
		Type:    tbl.Type,
		Meta:    tbl.Meta,
		Store:   tbl.Store,
		Entries: tbl.Entries,
	}

	tmpl := eagerTemplate
	switch tbl.Mode {
	case ModeEager:
		// The eager dispatch panics on fallthrough, which needs fmt.
		data.Imports = mergeImports(tbl.Imports, "fmt")
	case ModeLazy:
		tmpl = lazyTemplate
		data.Imports = mergeImports(tbl.Imports, enummetaImport)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering %s table for %s: %w", tbl.Mode, tbl.Type, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code for %s: %w", tbl.Type, err)
	}
	return src, nil
}

// DefaultFilename is the output filename used when none is given.
func DefaultFilename(typeName string) string {
	return strings.ToLower(typeName) + "_meta_gen.go"
}

// Run loads a table file, inspects the target package, and writes the
// generated source next to it. It returns the path of the written file.
func Run(tablePath, dir, out string) (string, error) {
	tbl, err := LoadTable(tablePath)
	if err != nil {
		return "", err
	}

	declared, err := Variants(dir, tbl.Type)
	if err != nil {
		return "", err
	}

	src, err := Generate(tbl, declared)
	if err != nil {
		return "", err
	}

	if out == "" {
		out = filepath.Join(dir, DefaultFilename(tbl.Type))
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", out, err)
	}
	return out, nil
}

// mergeImports deduplicates the user-supplied imports with the ones the
// template itself needs, sorted for stable output.
func mergeImports(user []string, required ...string) []string {
	seen := make(map[string]struct{}, len(user)+len(required))
	var merged []string
	for _, imp := range append(required, user...) {
		if _, ok := seen[imp]; ok {
			continue
		}
		seen[imp] = struct{}{}
		merged = append(merged, imp)
	}
	sort.Strings(merged)
	return merged
}
