package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repointel/internal/graph"
	"repointel/internal/source"
)

func testRepo() []source.File {
	return []source.File{
		{Path: "api/users.py", Content: `from services import db

@app.route("/users")
def list_users():
    """Return all users."""
    return db.fetch_all()
`},
		{Path: "services/db.py", Content: `def fetch_all():
    return []
`},
		{Path: "server.js", Content: `const express = require('express');
const app = express();
app.get('/health', healthCheck);
function healthCheck(req, res) {}
`},
		{Path: "src/App.jsx", Content: `import React, { useState } from 'react';
import Button from './Button';

export default function App() {
  const [open, setOpen] = useState(false);
  return null;
}
`},
		{Path: "src/Button.jsx", Content: `export const Button = (props) => null;
`},
		{Path: "docs/guide.md", Content: "# guide"},
	}
}

func TestAnalyzer_Run(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil)
	rep, err := analyzer.Run(context.Background(), testRepo())
	require.NoError(t, err)

	t.Run("Unknown extensions are skipped", func(t *testing.T) {
		assert.Equal(t, 5, rep.Metadata.TotalFiles)
	})

	t.Run("Metadata classification", func(t *testing.T) {
		assert.True(t, rep.Metadata.FrontendDetected)
		assert.True(t, rep.Metadata.BackendDetected)
	})

	t.Run("Every file gets a description", func(t *testing.T) {
		for _, f := range rep.Files {
			assert.NotEmpty(t, f.Description, "file %s", f.FilePath)
		}
	})

	t.Run("Docstrings survive enrichment", func(t *testing.T) {
		users := rep.Files[0]
		require.Equal(t, "api/users.py", users.FilePath)
		require.Len(t, users.Functions, 1)
		assert.Equal(t, "Return all users.", users.Functions[0].Description)
	})

	t.Run("Undocumented functions get rule descriptions", func(t *testing.T) {
		db := rep.Files[1]
		require.Len(t, db.Functions, 1)
		assert.Equal(t, "Retrieves or fetches data", db.Functions[0].Description)
	})

	t.Run("Patterns come from raw content", func(t *testing.T) {
		server := rep.Files[2]
		assert.True(t, server.Patterns.HasRouting)
	})

	t.Run("Module graph links importers", func(t *testing.T) {
		adjacency := rep.Graphs[graph.GraphModuleDependency].Adjacency
		assert.Contains(t, adjacency["api.users"], "services.db")
	})

	t.Run("Route graph covers both route styles", func(t *testing.T) {
		adjacency := rep.Graphs[graph.GraphAPIRoutes].Adjacency
		gateway := adjacency["API_Gateway"]
		assert.Contains(t, gateway, "app.route")
		assert.Contains(t, gateway, "GET /health")
	})

	t.Run("Component graph links App to Button", func(t *testing.T) {
		adjacency := rep.Graphs[graph.GraphComponents].Adjacency
		assert.Contains(t, adjacency["App"], "Button")
	})

	t.Run("Graphs never carry images without a renderer", func(t *testing.T) {
		for key, result := range rep.Graphs {
			assert.Nil(t, result.Image, "graph %s", key)
		}
	})
}

func TestAnalyzer_Run_Deterministic(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil)

	first, err := analyzer.Run(context.Background(), testRepo())
	require.NoError(t, err)
	second, err := analyzer.Run(context.Background(), testRepo())
	require.NoError(t, err)

	assert.Equal(t, first.Files, second.Files)
	assert.Equal(t, first.Graphs, second.Graphs)
}

func TestAnalyzer_Run_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAnalyzer(nil, nil).Run(ctx, testRepo())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzer_Run_EmptyInput(t *testing.T) {
	rep, err := NewAnalyzer(nil, nil).Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 0, rep.Metadata.TotalFiles)
	assert.Contains(t, rep.Graphs, graph.GraphModuleDependency)
}
