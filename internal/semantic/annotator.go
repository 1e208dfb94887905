package semantic

import (
	"context"
	"fmt"
	"strings"

	"repointel/internal/analysis"
)

// DescribeFile generates a file-level description from the structural
// record alone. Rules are evaluated in fixed priority order (component
// file, script backend file, Python backend file, generic) and the first
// matching rule produces the description. The function is pure: identical
// input always yields identical output.
func DescribeFile(fa *analysis.FileAnalysis) string {
	var descriptions []string

	switch {
	case len(fa.Components) > 0:
		descriptions = append(descriptions, describeComponentFile(fa))
	case isScriptLanguage(fa.Language) && len(fa.Functions) > 0:
		descriptions = append(descriptions, describeScriptFile(fa)...)
	case fa.Language == "Python" && len(fa.Functions) > 0:
		descriptions = append(descriptions, describePythonFile(fa)...)
	}

	if len(descriptions) == 0 {
		switch {
		case isScriptLanguage(fa.Language):
			descriptions = append(descriptions, fmt.Sprintf("This %s module contains utility functions and helper methods.", fa.Language))
		case fa.Language == "Python":
			descriptions = append(descriptions, "This Python module provides core functionality for the application.")
		default:
			descriptions = append(descriptions, fmt.Sprintf("This %s file contains application logic.", fa.Language))
		}
	}

	return strings.Join(descriptions, " ")
}

func describeComponentFile(fa *analysis.FileAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This React functional component named '%s' is responsible for rendering UI for the related feature.", fa.Components[0].Name)

	if hasHook(fa.ReactHooks, "useState") {
		b.WriteString(" It uses React Hooks for state management.")
	}
	if hasHook(fa.ReactHooks, "useEffect") {
		b.WriteString(" It uses lifecycle side effects through useEffect.")
	}
	if hasHTTPClientImport(fa) {
		b.WriteString(" It interacts with backend APIs using HTTP requests.")
	}
	if mentionsMapping(fa) {
		b.WriteString(" It dynamically renders UI elements using array mapping.")
	}

	return b.String()
}

func describeScriptFile(fa *analysis.FileAnalysis) []string {
	var sentences []string
	for _, fn := range limitFunctions(fa.Functions, 3) {
		if fn.IsAsync {
			sentences = append(sentences, fmt.Sprintf("This asynchronous backend function '%s' likely handles business logic or request processing.", fn.Name))
		} else {
			sentences = append(sentences, fmt.Sprintf("This backend function '%s' handles specific application logic.", fn.Name))
		}
	}

	var descriptions []string
	if len(sentences) > 2 {
		sentences = sentences[:2]
	}
	if len(sentences) > 0 {
		descriptions = append(descriptions, strings.Join(sentences, " "))
	}

	if methods := routeMethodSummary(fa.Routes); len(methods) > 0 {
		descriptions = append(descriptions, fmt.Sprintf("This file defines API endpoints using Express routing with %s methods.", strings.Join(methods, ", ")))
	}

	return descriptions
}

func describePythonFile(fa *analysis.FileAnalysis) []string {
	var sentences []string
	for _, fn := range limitFunctions(fa.Functions, 3) {
		sentence := fmt.Sprintf("This Python function '%s' performs backend data processing logic.", fn.Name)
		if hasEndpointDecorator(fn.Decorators) {
			sentence += " It is exposed as an API endpoint."
		}
		sentences = append(sentences, sentence)
	}

	var descriptions []string
	if len(sentences) > 2 {
		sentences = sentences[:2]
	}
	if len(sentences) > 0 {
		descriptions = append(descriptions, strings.Join(sentences, " "))
	}

	if len(fa.Routes) > 0 {
		descriptions = append(descriptions, fmt.Sprintf("This module defines %d API route(s) for handling HTTP requests.", len(fa.Routes)))
	}

	return descriptions
}

// EnhanceFunctions fills in descriptions for functions that have none.
// When a Generator is supplied it is consulted first; on any failure the
// deterministic rule list produces the result instead, so behavior without
// a generation backend is fully specified.
func EnhanceFunctions(ctx context.Context, fa *analysis.FileAnalysis, gen Generator) {
	for i := range fa.Functions {
		fn := &fa.Functions[i]
		if strings.TrimSpace(fn.Description) != "" {
			continue
		}

		if gen != nil {
			if text, err := gen.Generate(ctx, buildFunctionPrompt(fa, fn)); err == nil && strings.TrimSpace(text) != "" {
				fn.Description = strings.TrimSpace(text)
				continue
			}
		}

		fn.Description = InferFunctionPurpose(fn.Name, fa.Language, fn.Decorators)
	}
}

func buildFunctionPrompt(fa *analysis.FileAnalysis, fn *analysis.Function) string {
	var sb strings.Builder
	sb.WriteString("Analyze and describe this code function concisely.\n")
	fmt.Fprintf(&sb, "Function name: %s\n", fn.Name)
	fmt.Fprintf(&sb, "Language: %s\n", fa.Language)
	fmt.Fprintf(&sb, "File: %s\n", fa.FilePath)
	if len(fn.Decorators) > 0 {
		fmt.Fprintf(&sb, "Decorators: %s\n", strings.Join(fn.Decorators, ", "))
	}
	if fn.IsAsync {
		sb.WriteString("The function is asynchronous.\n")
	}
	sb.WriteString("\nProvide a brief technical description of what this function does. Keep it to 1-2 sentences.")
	return sb.String()
}

func limitFunctions(functions []analysis.Function, n int) []analysis.Function {
	if len(functions) > n {
		return functions[:n]
	}
	return functions
}

func hasHook(hooks []string, name string) bool {
	for _, h := range hooks {
		if h == name {
			return true
		}
	}
	return false
}

// hasHTTPClientImport reports whether any import token mentions a known
// HTTP client marker.
func hasHTTPClientImport(fa *analysis.FileAnalysis) bool {
	joined := strings.ToLower(strings.Join(fa.ImportTokens(), " "))
	return strings.Contains(joined, "axios") || strings.Contains(joined, "fetch")
}

// mentionsMapping reports whether "map" appears among function or
// component names, a proxy for list-rendering patterns.
func mentionsMapping(fa *analysis.FileAnalysis) bool {
	var names []string
	for _, fn := range fa.Functions {
		names = append(names, fn.Name)
	}
	names = append(names, fa.ComponentNames()...)
	return strings.Contains(strings.ToLower(strings.Join(names, " ")), "map")
}

// routeMethodSummary returns the distinct uppercased methods of the first
// three routes, preserving first-seen order.
func routeMethodSummary(routes []analysis.Route) []string {
	if len(routes) > 3 {
		routes = routes[:3]
	}
	var methods []string
	seen := map[string]bool{}
	for _, rt := range routes {
		method := strings.ToUpper(rt.Method)
		if method == "" || seen[method] {
			continue
		}
		seen[method] = true
		methods = append(methods, method)
	}
	return methods
}

func hasEndpointDecorator(decorators []string) bool {
	joined := strings.Join(decorators, " ")
	for _, marker := range []string{"route", "get", "post", "put", "delete"} {
		if strings.Contains(joined, marker) {
			return true
		}
	}
	return false
}
