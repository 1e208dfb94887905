package extractor

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"repointel/internal/analysis"
)

// routeMarkers are decorator-name substrings that identify an HTTP route
// decorator (Flask/FastAPI style). Matching is case-insensitive and
// intentionally loose: any decorator containing ".route" qualifies.
var routeMarkers = []string{".get", ".post", ".put", ".delete", ".patch", ".route"}

const maxDocLineLen = 200

// PythonExtractor extracts structure from Python sources using a full
// tree-sitter parse. It is the only grammar-based strategy; every other
// language falls back to pattern matching.
type PythonExtractor struct{}

func (p *PythonExtractor) Language() string { return "Python" }

const pythonQuery = `
	(class_definition) @class
	(function_definition) @func
	(import_statement) @import
	(import_from_statement) @from_import
`

// Extract walks the syntax tree in a single query pass, collecting classes,
// functions, imports, and decorator-declared routes. A tree containing
// syntax errors yields a record with all collections empty.
func (p *PythonExtractor) Extract(path string, content string) *analysis.FileAnalysis {
	result := analysis.NewFileAnalysis(path, p.Language())
	src := []byte(content)

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil || tree.RootNode().HasError() {
		return result
	}

	query, err := sitter.NewQuery([]byte(pythonQuery), python.GetLanguage())
	if err != nil {
		return result
	}

	qc := sitter.NewQueryCursor()
	qc.Exec(query, tree.RootNode())

	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			switch query.CaptureNameForId(c.Index) {
			case "class":
				p.collectClass(result, c.Node, src)
			case "func":
				p.collectFunction(result, c.Node, src)
			case "import":
				p.collectImport(result, c.Node, src)
			case "from_import":
				p.collectFromImport(result, c.Node, src)
			}
		}
	}

	return result
}

func (p *PythonExtractor) collectClass(result *analysis.FileAnalysis, node *sitter.Node, src []byte) {
	nameNode := node.ChildByFieldName("name")
	name := ""
	if nameNode != nil {
		name = nameNode.Content(src)
	}

	bases := []string{}
	if supers := node.ChildByFieldName("superclasses"); supers != nil {
		for i := 0; i < int(supers.NamedChildCount()); i++ {
			base := supers.NamedChild(i)
			switch base.Type() {
			case "identifier":
				bases = append(bases, base.Content(src))
			case "attribute":
				bases = append(bases, dottedName(base, src))
			}
		}
	}

	result.Classes = append(result.Classes, analysis.Class{
		Name:       name,
		Line:       lineOf(node),
		Bases:      bases,
		Decorators: decoratorsOf(node, src),
	})
}

func (p *PythonExtractor) collectFunction(result *analysis.FileAnalysis, node *sitter.Node, src []byte) {
	nameNode := node.ChildByFieldName("name")
	name := ""
	if nameNode != nil {
		name = nameNode.Content(src)
	}

	decorators := decoratorsOf(node, src)
	fn := analysis.Function{
		Name:        name,
		Line:        lineOf(node),
		Decorators:  decorators,
		IsAsync:     isAsyncDef(node),
		Description: docstringOf(node, src),
	}
	result.Functions = append(result.Functions, fn)

	for _, dec := range decorators {
		if containsRouteMarker(dec) {
			result.Routes = append(result.Routes, analysis.Route{
				Path:    dec,
				Handler: name,
				Line:    fn.Line,
			})
		}
	}
}

func (p *PythonExtractor) collectImport(result *analysis.FileAnalysis, node *sitter.Node, src []byte) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "dotted_name":
			result.Imports = append(result.Imports, analysis.Import{Raw: child.Content(src), Line: lineOf(node)})
		case "aliased_import":
			if n := child.ChildByFieldName("name"); n != nil {
				result.Imports = append(result.Imports, analysis.Import{Raw: n.Content(src), Line: lineOf(node)})
			}
		}
	}
}

func (p *PythonExtractor) collectFromImport(result *analysis.FileAnalysis, node *sitter.Node, src []byte) {
	moduleNode := node.ChildByFieldName("module_name")
	module := ""
	if moduleNode != nil {
		module = strings.Trim(moduleNode.Content(src), ".")
	}

	add := func(name string) {
		result.Imports = append(result.Imports, analysis.Import{
			Raw:  module + "." + name,
			Line: lineOf(node),
		})
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if moduleNode != nil && child.StartByte() == moduleNode.StartByte() && child.EndByte() == moduleNode.EndByte() {
			continue
		}
		switch child.Type() {
		case "dotted_name", "identifier":
			add(child.Content(src))
		case "aliased_import":
			if n := child.ChildByFieldName("name"); n != nil {
				add(n.Content(src))
			}
		case "wildcard_import":
			add("*")
		}
	}
}

// decoratorsOf returns the decorator names attached to a definition node.
// Attribute decorators are flattened to a dotted string; call decorators
// resolve to the called name, not the full call expression.
func decoratorsOf(node *sitter.Node, src []byte) []string {
	parent := node.Parent()
	if parent == nil || parent.Type() != "decorated_definition" {
		return []string{}
	}

	decorators := []string{}
	for i := 0; i < int(parent.NamedChildCount()); i++ {
		child := parent.NamedChild(i)
		if child.Type() != "decorator" {
			continue
		}
		expr := child.NamedChild(0)
		if expr == nil {
			continue
		}
		decorators = append(decorators, decoratorName(expr, src))
	}
	return decorators
}

func decoratorName(expr *sitter.Node, src []byte) string {
	switch expr.Type() {
	case "identifier":
		return expr.Content(src)
	case "attribute":
		return dottedName(expr, src)
	case "call":
		if fn := expr.ChildByFieldName("function"); fn != nil {
			if fn.Type() == "attribute" {
				return dottedName(fn, src)
			}
			return fn.Content(src)
		}
	}
	return expr.Content(src)
}

// dottedName flattens an attribute chain (a.b.c) to its dotted form.
func dottedName(node *sitter.Node, src []byte) string {
	var parts []string
	current := node
	for current != nil && current.Type() == "attribute" {
		if attr := current.ChildByFieldName("attribute"); attr != nil {
			parts = append([]string{attr.Content(src)}, parts...)
		}
		current = current.ChildByFieldName("object")
	}
	if current != nil {
		parts = append([]string{current.Content(src)}, parts...)
	}
	return strings.Join(parts, ".")
}

func isAsyncDef(node *sitter.Node) bool {
	first := node.Child(0)
	return first != nil && first.Type() == "async"
}

// docstringOf returns the first line of a function's docstring, truncated
// to 200 characters, or the empty string.
func docstringOf(node *sitter.Node, src []byte) string {
	body := node.ChildByFieldName("body")
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}
	first := body.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}
	str := first.NamedChild(0)
	if str.Type() != "string" {
		return ""
	}

	text := stripStringQuotes(str.Content(src))
	text = strings.TrimSpace(text)
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	text = strings.TrimSpace(text)
	if len(text) > maxDocLineLen {
		text = text[:maxDocLineLen]
	}
	return text
}

func stripStringQuotes(s string) string {
	for _, q := range []string{`"""`, "'''", `"`, "'"} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) && len(s) >= 2*len(q) {
			return s[len(q) : len(s)-len(q)]
		}
	}
	return s
}

func containsRouteMarker(decorator string) bool {
	lower := strings.ToLower(decorator)
	for _, marker := range routeMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func lineOf(node *sitter.Node) int {
	return int(node.StartPoint().Row) + 1
}
