package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pythonSample = `import os
import sys as system
from collections import OrderedDict

class UserService(BaseService):
    pass

@app.route("/users")
def list_users():
    """Return all users.

    Longer explanation that should not appear.
    """
    return []

@requires_auth
async def refresh_cache():
    pass
`

func TestPythonExtractor_Extract(t *testing.T) {
	ext := &PythonExtractor{}
	result := ext.Extract("services/users.py", pythonSample)

	t.Run("Language", func(t *testing.T) {
		assert.Equal(t, "Python", result.Language)
		assert.Equal(t, "services/users.py", result.FilePath)
	})

	t.Run("Imports", func(t *testing.T) {
		assert.Equal(t, []string{"os", "sys", "collections.OrderedDict"}, result.ImportTokens())
	})

	t.Run("Classes", func(t *testing.T) {
		require.Len(t, result.Classes, 1)
		cls := result.Classes[0]
		assert.Equal(t, "UserService", cls.Name)
		assert.Equal(t, []string{"BaseService"}, cls.Bases)
		assert.Equal(t, 5, cls.Line)
	})

	t.Run("Functions", func(t *testing.T) {
		require.Len(t, result.Functions, 2)

		listUsers := result.Functions[0]
		assert.Equal(t, "list_users", listUsers.Name)
		assert.Equal(t, []string{"app.route"}, listUsers.Decorators)
		assert.Equal(t, "Return all users.", listUsers.Description)
		assert.False(t, listUsers.IsAsync)

		refresh := result.Functions[1]
		assert.Equal(t, "refresh_cache", refresh.Name)
		assert.Equal(t, []string{"requires_auth"}, refresh.Decorators)
		assert.True(t, refresh.IsAsync)
		assert.Empty(t, refresh.Description)
	})

	t.Run("Routes", func(t *testing.T) {
		require.Len(t, result.Routes, 1)
		route := result.Routes[0]
		assert.Equal(t, "app.route", route.Path)
		assert.Equal(t, "list_users", route.Handler)
		assert.Empty(t, route.Method)
	})
}

func TestPythonExtractor_SyntaxError(t *testing.T) {
	ext := &PythonExtractor{}
	result := ext.Extract("broken.py", "def broken(:\n    pass\n")

	assert.Equal(t, "Python", result.Language)
	assert.Empty(t, result.Classes)
	assert.Empty(t, result.Functions)
	assert.Empty(t, result.Imports)
	assert.Empty(t, result.Routes)
	assert.NotNil(t, result.Functions, "collections stay initialized on parse failure")
}

func TestPythonExtractor_MethodDecoratorRoutes(t *testing.T) {
	src := `@router.get("/items")
def get_items():
    pass

@router.post("/items")
def create_item():
    pass

@cached
def helper():
    pass
`
	result := (&PythonExtractor{}).Extract("api.py", src)

	require.Len(t, result.Routes, 2)
	assert.Equal(t, "router.get", result.Routes[0].Path)
	assert.Equal(t, "get_items", result.Routes[0].Handler)
	assert.Equal(t, "router.post", result.Routes[1].Path)
	assert.Equal(t, "create_item", result.Routes[1].Handler)
}

func TestPythonExtractor_DocstringTruncation(t *testing.T) {
	long := strings.Repeat("x", 300)
	src := "def f():\n    \"\"\"" + long + "\"\"\"\n    pass\n"
	result := (&PythonExtractor{}).Extract("f.py", src)

	require.Len(t, result.Functions, 1)
	assert.Len(t, result.Functions[0].Description, maxDocLineLen)
}

func TestPythonExtractor_Deterministic(t *testing.T) {
	ext := &PythonExtractor{}
	first := ext.Extract("services/users.py", pythonSample)
	second := ext.Extract("services/users.py", pythonSample)
	assert.Equal(t, first, second)
}
