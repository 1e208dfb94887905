package extractor

import (
	"regexp"

	"repointel/internal/analysis"
)

var (
	reactFuncComponentPattern  = regexp.MustCompile(`(?:export\s+(?:default\s+)?)?function\s+([A-Z]\w+)\s*\(`)
	reactArrowComponentPattern = regexp.MustCompile(`(?:export\s+(?:default\s+)?)?const\s+([A-Z]\w+)\s*=\s*(?:\([^)]*\)|[^=])\s*=>`)
	reactHOCComponentPattern   = regexp.MustCompile(`(?:export\s+(?:default\s+)?)?const\s+([A-Z]\w+)\s*=\s*(?:React\.)?(?:forwardRef|memo)\s*\(`)

	reactHookCallPattern = regexp.MustCompile(`\b(use[A-Z]\w+)\s*\(`)
)

// knownReactHooks is the fixed vocabulary used to narrow raw use* call
// detections down to recognized built-in hooks.
var knownReactHooks = map[string]bool{
	"useState":             true,
	"useEffect":            true,
	"useContext":           true,
	"useReducer":           true,
	"useCallback":          true,
	"useMemo":              true,
	"useRef":               true,
	"useLayoutEffect":      true,
	"useImperativeHandle":  true,
	"useDebugValue":        true,
	"useId":                true,
	"useTransition":        true,
	"useDeferredValue":     true,
	"useSyncExternalStore": true,
}

// ReactExtractor layers component and hook detection on top of the plain
// JavaScript strategy for JSX/TSX dialects.
type ReactExtractor struct {
	base JavaScriptExtractor
}

func (r *ReactExtractor) Language() string { return r.base.Language() }

func (r *ReactExtractor) Extract(path string, content string) *analysis.FileAnalysis {
	result := r.base.Extract(path, content)

	hooks := detectRecognizedHooks(content)
	result.ReactHooks = hooks

	seen := map[string]bool{}
	for _, pattern := range []*regexp.Regexp{
		reactFuncComponentPattern,
		reactArrowComponentPattern,
		reactHOCComponentPattern,
	} {
		for _, m := range pattern.FindAllStringSubmatch(content, -1) {
			name := m[1]
			if seen[name] {
				continue
			}
			seen[name] = true
			result.Components = append(result.Components, analysis.Component{
				Name:  name,
				Hooks: hooks,
			})
		}
	}

	return result
}

// detectRecognizedHooks finds all use<Capitalized>( call tokens and keeps
// only those present in the known-hook vocabulary, in first-seen order.
func detectRecognizedHooks(content string) []string {
	recognized := []string{}
	seen := map[string]bool{}
	for _, m := range reactHookCallPattern.FindAllStringSubmatch(content, -1) {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		if knownReactHooks[name] {
			recognized = append(recognized, name)
		}
	}
	return recognized
}
