package semantic

import (
	"fmt"
	"strings"
)

// routeDecoratorMarkers classify a decorator as an HTTP endpoint marker
// for the rule-list fallback. The bare "route" substring is deliberately
// loose; see the file-level description rules for the same tradeoff.
var routeDecoratorMarkers = []string{"route", "get", "post", "put", "delete", "patch"}

// InferFunctionPurpose derives a description from a function's name and
// context using common naming conventions. Rules are evaluated in fixed
// priority order and the first match wins; the result is fully
// deterministic.
func InferFunctionPurpose(name string, language string, decorators []string) string {
	lower := strings.ToLower(name)

	if strings.HasPrefix(name, "use") && isScriptLanguage(language) {
		return fmt.Sprintf("Custom React hook for managing %s state or behavior", name[3:])
	}

	switch {
	case strings.HasPrefix(lower, "get"), strings.HasPrefix(lower, "fetch"):
		return "Retrieves or fetches data"
	case strings.HasPrefix(lower, "create"), strings.HasPrefix(lower, "add"):
		return "Creates or adds new data"
	case strings.HasPrefix(lower, "update"), strings.HasPrefix(lower, "edit"):
		return "Updates or modifies existing data"
	case strings.HasPrefix(lower, "delete"), strings.HasPrefix(lower, "remove"):
		return "Deletes or removes data"
	case strings.HasPrefix(lower, "handle"):
		return fmt.Sprintf("Handles %s event or action", name[6:])
	case strings.HasPrefix(lower, "on"):
		return fmt.Sprintf("Event handler for %s", name[2:])
	case strings.Contains(lower, "validate"):
		return "Validates data or input"
	case strings.Contains(lower, "process"), strings.Contains(lower, "parse"):
		return "Processes or transforms data"
	case strings.Contains(lower, "render"):
		return "Renders UI component or view"
	case strings.Contains(lower, "init"), strings.Contains(lower, "setup"):
		return "Initializes or sets up the application or module"
	case strings.Contains(lower, "login"), strings.Contains(lower, "auth"):
		return "Handles authentication or authorization"
	case strings.Contains(lower, "logout"):
		return "Handles user logout"
	case strings.Contains(lower, "api"), strings.Contains(lower, "request"):
		return "Makes API request or handles network communication"
	case strings.Contains(lower, "save"), strings.Contains(lower, "store"):
		return "Saves or stores data"
	case strings.Contains(lower, "load"):
		return "Loads data from storage"
	case strings.Contains(lower, "format"), strings.Contains(lower, "transform"):
		return "Formats or transforms data"
	case strings.Contains(lower, "convert"):
		return "Converts data from one format to another"
	case strings.Contains(lower, "calculate"), strings.Contains(lower, "compute"):
		return "Performs calculations or computations"
	case strings.Contains(lower, "search"), strings.Contains(lower, "find"):
		return "Searches or finds specific data"
	case strings.Contains(lower, "filter"):
		return "Filters data based on criteria"
	}

	for _, dec := range decorators {
		decLower := strings.ToLower(dec)
		for _, marker := range routeDecoratorMarkers {
			if strings.Contains(decLower, marker) {
				return "API endpoint handler function"
			}
		}
	}

	if isScriptLanguage(language) {
		return "JavaScript/TypeScript utility function"
	}
	if language == "Python" {
		return "Python helper function"
	}

	return ""
}

// isScriptLanguage reports whether the language belongs to the JS/TS
// family used by the hook and utility rules.
func isScriptLanguage(language string) bool {
	return language == "JavaScript" || language == "TypeScript"
}
