package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repointel/internal/analysis"
)

func TestGenericExtractor_Java(t *testing.T) {
	src := `import java.util.List;
import java.util.Optional;

public class UserRepository {
    public List<User> findAll() { return null; }
    private void refresh() { }
}
`
	result := (&GenericExtractor{}).Extract("UserRepository.java", src)

	assert.Equal(t, "Java", result.Language)
	assert.Equal(t, []string{"java.util.List", "java.util.Optional"}, result.ImportTokens())

	require.Len(t, result.Classes, 1)
	assert.Equal(t, "UserRepository", result.Classes[0].Name)

	names := functionNames(result.Functions)
	assert.Contains(t, names, "findAll")
	assert.Contains(t, names, "refresh")
}

func TestGenericExtractor_Go(t *testing.T) {
	src := `package store

import (
	"fmt"
	"os"
)

func NewStore() *Store { return nil }

func (s *Store) Save(v string) error {
	return nil
}
`
	result := (&GenericExtractor{}).Extract("store.go", src)

	assert.Equal(t, "Go", result.Language)
	assert.Equal(t, []string{"fmt", "os"}, result.ImportTokens())

	names := functionNames(result.Functions)
	assert.Contains(t, names, "NewStore")
	assert.Contains(t, names, "Save", "receiver methods are captured")
}

func TestGenericExtractor_StoplistAndLanguageName(t *testing.T) {
	src := `int compute(int v) {
    if (v > 0) {
        return process(v);
    }
    return 0;
}
`
	result := (&GenericExtractor{}).Extract("calc.cpp", src)

	assert.Equal(t, "C++", result.Language)
	names := functionNames(result.Functions)
	assert.Contains(t, names, "compute")
	assert.NotContains(t, names, "if")
	assert.NotContains(t, names, "return")
}

func functionNames(fns []analysis.Function) []string {
	names := make([]string, 0, len(fns))
	for _, fn := range fns {
		names = append(names, fn.Name)
	}
	return names
}
