package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reactSample = `import React, { useState, useEffect } from 'react';
import Button from './Button';
import { useCart } from './hooks/useCart';

export default function UserList() {
  const [users, setUsers] = useState([]);
  useEffect(() => {
    setUsers([]);
  }, []);
  const cart = useCart();
  return null;
}

const Avatar = (props) => null;
`

func TestReactExtractor_Extract(t *testing.T) {
	ext := &ReactExtractor{}
	result := ext.Extract("src/UserList.tsx", reactSample)

	t.Run("Language", func(t *testing.T) {
		assert.Equal(t, "TypeScript", result.Language)
	})

	t.Run("Hooks", func(t *testing.T) {
		assert.Equal(t, []string{"useState", "useEffect"}, result.ReactHooks,
			"custom hooks outside the known vocabulary are filtered")
	})

	t.Run("Components", func(t *testing.T) {
		require.Len(t, result.Components, 2)
		assert.Equal(t, "UserList", result.Components[0].Name)
		assert.Equal(t, "Avatar", result.Components[1].Name)
		assert.Equal(t, []string{"useState", "useEffect"}, result.Components[0].Hooks)
	})

	t.Run("InheritsJavaScriptExtraction", func(t *testing.T) {
		assert.Contains(t, result.ImportTokens(), "./Button")
		assert.Contains(t, result.ImportTokens(), "react")
	})
}

func TestReactExtractor_LowercaseFunctionsAreNotComponents(t *testing.T) {
	src := `function helper() {}
const doWork = () => {};
export function Panel() {}
`
	result := (&ReactExtractor{}).Extract("Panel.jsx", src)

	require.Len(t, result.Components, 1)
	assert.Equal(t, "Panel", result.Components[0].Name)
}

func TestReactExtractor_HOCComponents(t *testing.T) {
	src := `export const FancyInput = React.forwardRef((props, ref) => null);
const Memoized = memo(() => null);
`
	result := (&ReactExtractor{}).Extract("Fancy.jsx", src)

	names := result.ComponentNames()
	assert.Contains(t, names, "FancyInput")
	assert.Contains(t, names, "Memoized")
}

func TestReactExtractor_EmptyHooksStayInitialized(t *testing.T) {
	result := (&ReactExtractor{}).Extract("Plain.jsx", "export function Plain() { return null; }\n")

	assert.NotNil(t, result.ReactHooks)
	assert.Empty(t, result.ReactHooks)
}
