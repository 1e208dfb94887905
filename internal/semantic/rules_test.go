package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferFunctionPurpose(t *testing.T) {
	cases := []struct {
		name       string
		language   string
		decorators []string
		want       string
	}{
		{name: "getUser", language: "JavaScript", want: "Retrieves or fetches data"},
		{name: "fetchOrders", language: "Python", want: "Retrieves or fetches data"},
		{name: "createAccount", language: "JavaScript", want: "Creates or adds new data"},
		{name: "updateProfile", language: "Python", want: "Updates or modifies existing data"},
		{name: "deleteItem", language: "JavaScript", want: "Deletes or removes data"},
		{name: "handleClick", language: "JavaScript", want: "Handles Click event or action"},
		{name: "onSubmit", language: "JavaScript", want: "Event handler for Submit"},
		{name: "useCart", language: "JavaScript", want: "Custom React hook for managing Cart state or behavior"},
		{name: "useCart", language: "TypeScript", want: "Custom React hook for managing Cart state or behavior"},
		{name: "validateEmail", language: "Python", want: "Validates data or input"},
		{name: "parsePayload", language: "Python", want: "Processes or transforms data"},
		{name: "renderChart", language: "JavaScript", want: "Renders UI component or view"},
		{name: "setupServer", language: "Python", want: "Initializes or sets up the application or module"},
		{name: "checkAuth", language: "Python", want: "Handles authentication or authorization"},
		{name: "calculateTotal", language: "JavaScript", want: "Performs calculations or computations"},
		{name: "filterRows", language: "JavaScript", want: "Filters data based on criteria"},
		{name: "mystery", language: "JavaScript", want: "JavaScript/TypeScript utility function"},
		{name: "mystery", language: "Python", want: "Python helper function"},
		{name: "mystery", language: "Java", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name+"/"+tc.language, func(t *testing.T) {
			got := InferFunctionPurpose(tc.name, tc.language, tc.decorators)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInferFunctionPurpose_RouteDecorator(t *testing.T) {
	got := InferFunctionPurpose("mystery", "Python", []string{"app.route"})
	assert.Equal(t, "API endpoint handler function", got)

	got = InferFunctionPurpose("mystery", "Python", []string{"Router.GET"})
	assert.Equal(t, "API endpoint handler function", got, "decorator matching is case-insensitive")
}

func TestInferFunctionPurpose_PrefixRulesWinOverDecorators(t *testing.T) {
	// Name-based rules rank above the decorator fallback.
	got := InferFunctionPurpose("getUser", "Python", []string{"app.route"})
	assert.Equal(t, "Retrieves or fetches data", got)
}

func TestInferFunctionPurpose_UseInPythonIsNotAHook(t *testing.T) {
	got := InferFunctionPurpose("useCache", "Python", nil)
	assert.NotContains(t, got, "React hook")
}
