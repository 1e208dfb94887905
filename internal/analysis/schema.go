package analysis

// Class represents a class declaration discovered in a source file.
type Class struct {
	Name       string   `json:"name"`                 // Class name, empty for malformed input
	Line       int      `json:"line,omitempty"`       // 1-based line number, 0 when unknown
	Bases      []string `json:"bases,omitempty"`      // Base classes, dotted bases flattened ("db.Model")
	Decorators []string `json:"decorators,omitempty"` // Decorator names, calls resolved to the callee
}

// Function represents a function or method declaration.
type Function struct {
	Name        string   `json:"name"`
	Line        int      `json:"line,omitempty"`
	Decorators  []string `json:"decorators,omitempty"`
	IsAsync     bool     `json:"is_async"`
	Description string   `json:"description"` // Doc comment first line, or an inferred description
}

// Component represents a UI component (React-style function component).
type Component struct {
	Name  string   `json:"name"`
	Line  int      `json:"line,omitempty"`
	Hooks []string `json:"hooks,omitempty"` // Recognized hooks used by the owning file
}

// Route represents an HTTP-style endpoint discovered either from a route
// call (app.get("/x")) or from a route decorator (@app.route("/x")).
type Route struct {
	Method  string `json:"method,omitempty"` // Uppercased HTTP method, empty for decorator routes
	Path    string `json:"path"`             // URL path, or the raw decorator text for decorator routes
	Handler string `json:"handler,omitempty"`
	Line    int    `json:"line,omitempty"`
}

// Import represents a single import statement normalized to a dotted or
// module-path token ("os.path", "react", "./components/Button").
type Import struct {
	Raw  string `json:"raw"`
	Line int    `json:"line,omitempty"`
}

// CodePatterns flags common behaviors detected from raw file content.
type CodePatterns struct {
	HasAsync           bool `json:"has_async"`
	HasAPICalls        bool `json:"has_api_calls"`
	HasStateManagement bool `json:"has_state_management"`
	HasRouting         bool `json:"has_routing"`
	HasDatabase        bool `json:"has_database"`
	HasValidation      bool `json:"has_validation"`
}

// FileAnalysis is the full structural record extracted from one source file.
// All collections are ordered as discovered; duplicates by name are allowed
// for classes and functions since real code may genuinely shadow or overload.
type FileAnalysis struct {
	FilePath    string       `json:"file_path"`
	Language    string       `json:"language"`
	Classes     []Class      `json:"classes"`
	Functions   []Function   `json:"functions"`
	Components  []Component  `json:"components"`
	Routes      []Route      `json:"routes"`
	Imports     []Import     `json:"imports"`
	Exports     []string     `json:"exports,omitempty"`
	ReactHooks  []string     `json:"react_hooks"` // Detected hook calls filtered to the known-hook vocabulary
	Description string       `json:"semantic_description"`
	Patterns    CodePatterns `json:"patterns"`
}

// NewFileAnalysis returns a record with every collection initialized empty,
// so downstream consumers and JSON encoding never see nil slices.
func NewFileAnalysis(path, language string) *FileAnalysis {
	return &FileAnalysis{
		FilePath:   path,
		Language:   language,
		Classes:    []Class{},
		Functions:  []Function{},
		Components: []Component{},
		Routes:     []Route{},
		Imports:    []Import{},
		ReactHooks: []string{},
	}
}

// ImportTokens returns the raw import tokens in discovery order.
func (fa *FileAnalysis) ImportTokens() []string {
	tokens := make([]string, 0, len(fa.Imports))
	for _, imp := range fa.Imports {
		tokens = append(tokens, imp.Raw)
	}
	return tokens
}

// ComponentNames returns the component names in discovery order.
func (fa *FileAnalysis) ComponentNames() []string {
	names := make([]string, 0, len(fa.Components))
	for _, c := range fa.Components {
		names = append(names, c.Name)
	}
	return names
}
