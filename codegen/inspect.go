/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codegen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Variants returns the constants of the named type declared in the package
// at dir, in declaration order. Constants inside an iota block without an
// explicit type inherit the block's type, matching the compiler's rules.
func Variants(dir, typeName string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading package directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)

	fset := token.NewFileSet()
	var variants []string
	for _, path := range files {
		file, err := parser.ParseFile(fset, path, nil, 0)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		variants = append(variants, constantsOfType(file, typeName)...)
	}

	if len(variants) == 0 {
		return nil, fmt.Errorf("no constants of type %s declared in %s", typeName, dir)
	}
	return variants, nil
}

// constantsOfType walks a file's const declarations and collects the names
// belonging to typeName.
func constantsOfType(file *ast.File, typeName string) []string {
	var names []string
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.CONST {
			continue
		}

		// current tracks the type carried across specs within one block.
		current := ""
		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			switch {
			case vs.Type != nil:
				if ident, ok := vs.Type.(*ast.Ident); ok {
					current = ident.Name
				} else {
					current = ""
				}
			case len(vs.Values) > 0:
				// Explicit values without a type reset the inherited type.
				current = ""
			}
			if current != typeName {
				continue
			}
			for _, name := range vs.Names {
				if name.Name == "_" {
					continue
				}
				names = append(names, name.Name)
			}
		}
	}
	return names
}
