package semantic

import (
	"strings"

	"repointel/internal/analysis"
)

var patternMarkers = map[string][]string{
	"async":      {"async", "await"},
	"api":        {"axios", "fetch(", "http.get", "http.post", "requests.get", "requests.post"},
	"state":      {"usestate", "setstate", "redux", "vuex", "mobx"},
	"routing":    {"router", "route", "@app.route", "express()"},
	"database":   {"mongoose", "sequelize", "prisma", "sqlalchemy", "query", "database"},
	"validation": {"validate", "yup", "joi", "validator", "schema"},
}

// DetectPatterns flags common behaviors by scanning raw file content for
// well-known markers. Purely lexical, best-effort.
func DetectPatterns(content string) analysis.CodePatterns {
	var patterns analysis.CodePatterns
	if content == "" {
		return patterns
	}

	lower := strings.ToLower(content)
	contains := func(key string) bool {
		for _, marker := range patternMarkers[key] {
			if strings.Contains(lower, marker) {
				return true
			}
		}
		return false
	}

	patterns.HasAsync = contains("async")
	patterns.HasAPICalls = contains("api")
	patterns.HasStateManagement = contains("state")
	patterns.HasRouting = contains("routing")
	patterns.HasDatabase = contains("database")
	patterns.HasValidation = contains("validation")
	return patterns
}
