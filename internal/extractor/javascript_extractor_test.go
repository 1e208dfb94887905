package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsSample = `import React from 'react';
import { api } from './api';
const axios = require('axios');

/**
 * Fetches the user list from the server.
 */
async function getUsers() {
  return api.get('/users');
}

export const formatName = (user) => user.name;

class ApiError extends Error {}

export default getUsers;

app.get('/users', getUsers);
router.post('/users', createUser);
`

func TestJavaScriptExtractor_Extract(t *testing.T) {
	ext := &JavaScriptExtractor{}
	result := ext.Extract("src/users.js", jsSample)

	t.Run("Language", func(t *testing.T) {
		assert.Equal(t, "JavaScript", result.Language)
	})

	t.Run("Imports", func(t *testing.T) {
		assert.Equal(t, []string{"react", "./api", "axios"}, result.ImportTokens())
	})

	t.Run("Functions", func(t *testing.T) {
		names := make(map[string]string)
		for _, fn := range result.Functions {
			names[fn.Name] = fn.Description
		}
		require.Contains(t, names, "getUsers")
		require.Contains(t, names, "formatName")
		assert.Equal(t, "Fetches the user list from the server.", names["getUsers"])
		assert.Empty(t, names["formatName"])
	})

	t.Run("Classes", func(t *testing.T) {
		require.Len(t, result.Classes, 1)
		assert.Equal(t, "ApiError", result.Classes[0].Name)
		assert.Equal(t, []string{"Error"}, result.Classes[0].Bases)
	})

	t.Run("Exports", func(t *testing.T) {
		assert.Contains(t, result.Exports, "getUsers")
		assert.Contains(t, result.Exports, "formatName")
	})

	t.Run("Routes", func(t *testing.T) {
		require.Len(t, result.Routes, 2)
		assert.Equal(t, "GET", result.Routes[0].Method)
		assert.Equal(t, "/users", result.Routes[0].Path)
		assert.Equal(t, "POST", result.Routes[1].Method)
	})
}

func TestJavaScriptExtractor_TypeScript(t *testing.T) {
	ext := &JavaScriptExtractor{}
	result := ext.Extract("src/util.ts", "export function identity(x) { return x; }\n")

	assert.Equal(t, "TypeScript", result.Language)
	require.Len(t, result.Functions, 1)
	assert.Equal(t, "identity", result.Functions[0].Name)
}

func TestJavaScriptExtractor_DuplicateFunctionNames(t *testing.T) {
	src := `function save() {}
const save = async () => {};
`
	result := (&JavaScriptExtractor{}).Extract("dup.js", src)

	require.Len(t, result.Functions, 1, "first matching pattern wins per name")
	assert.Equal(t, "save", result.Functions[0].Name)
}

func TestJavaScriptExtractor_RouteCaseInsensitive(t *testing.T) {
	result := (&JavaScriptExtractor{}).Extract("s.js", `Router.GET('/health', ok);`)

	require.Len(t, result.Routes, 1)
	assert.Equal(t, "GET", result.Routes[0].Method)
	assert.Equal(t, "/health", result.Routes[0].Path)
}
