package internal_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExportedIdentifiersAreDocumented walks every package under internal and
// requires a package comment plus a doc comment on each exported declaration.
func TestExportedIdentifiersAreDocumented(t *testing.T) {
	fset := token.NewFileSet()
	pkgDoc := make(map[string]bool)
	var missing []string

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "testdata" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			return err
		}

		dir := filepath.Dir(path)
		pkgDoc[dir] = pkgDoc[dir] || file.Doc != nil

		for _, decl := range file.Decls {
			missing = append(missing, undocumented(fset, decl)...)
		}
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, pkgDoc)

	for dir, ok := range pkgDoc {
		assert.True(t, ok, "package in %s has no package comment", dir)
	}
	assert.Empty(t, missing, "exported declarations without a doc comment")
}

func undocumented(fset *token.FileSet, decl ast.Decl) []string {
	var out []string
	report := func(pos token.Pos, name string) {
		out = append(out, fset.Position(pos).String()+" "+name)
	}

	switch d := decl.(type) {
	case *ast.FuncDecl:
		if d.Name.IsExported() && d.Doc == nil {
			report(d.Pos(), d.Name.Name)
		}
	case *ast.GenDecl:
		grouped := d.Lparen.IsValid()
		for _, spec := range d.Specs {
			switch s := spec.(type) {
			case *ast.TypeSpec:
				if s.Name.IsExported() && !hasDoc(s.Doc, d.Doc, grouped) {
					report(s.Pos(), s.Name.Name)
				}
			case *ast.ValueSpec:
				for _, name := range s.Names {
					if name.IsExported() && !hasDoc(s.Doc, d.Doc, grouped) {
						report(name.Pos(), name.Name)
					}
				}
			}
		}
	}

	return out
}

// hasDoc accepts the declaration comment only for ungrouped specs; members of
// a parenthesized group need their own.
func hasDoc(specDoc, declDoc *ast.CommentGroup, grouped bool) bool {
	if specDoc != nil {
		return true
	}
	return !grouped && declDoc != nil
}
