package exporters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/glossary/internal/glossary"
)

func testGlossary() *glossary.Glossary {
	g := glossary.New()
	g.Add("apple", glossary.Noun, "a fruit")
	g.Add("avocado", glossary.Noun, "a creamy fruit")
	g.Add("Banana", glossary.Noun, "a long fruit")
	g.Add("cat", glossary.Verb, "to catch")
	g.Add("cat", glossary.Noun, "a feline")
	g.Add("42", glossary.Noun, "the answer")
	return g
}

// --- GroupKey Tests ---

func TestGroupKey(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"apple", "A"},
		{"Apple", "A"},
		{"éclair", "É"},
		{"42", "_"},
		{"-ism", "_"},
		{"", "_"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, GroupKey(tt.word))
		})
	}
}

// --- GenerateWordMarkdown Tests ---

func TestGenerateWordMarkdown(t *testing.T) {
	markdown := GenerateWordMarkdown("cat", []glossary.Sense{
		{PartOfSpeech: glossary.Noun, Definition: "a feline"},
		{PartOfSpeech: glossary.Verb, Definition: "to catch"},
	})

	assert.Equal(t, "## cat\n\n- *noun.* a feline\n- *verb.* to catch\n\n", markdown)
}

// --- MarkdownExporter Tests ---

func TestMarkdownExporter_Export(t *testing.T) {
	exportDir := filepath.Join(t.TempDir(), "vault", "glossary")
	exporter := NewMarkdownExporter(exportDir)

	result, err := exporter.Export(testGlossary())
	require.NoError(t, err)

	assert.Equal(t, 5, result.WordsProcessed)
	assert.Equal(t, 6, result.DefinitionsProcessed)
	assert.Equal(t, 5, result.FilesWritten, "A, B, C, _ and the index")

	for _, name := range []string{"A.md", "B.md", "C.md", "_.md", "index.md"} {
		_, err := os.Stat(filepath.Join(exportDir, name))
		assert.NoError(t, err, name)
	}

	content, err := os.ReadFile(filepath.Join(exportDir, "A.md"))
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "content_type: glossary")
	assert.Contains(t, text, "words: 2")
	assert.Less(t, strings.Index(text, "## apple"), strings.Index(text, "## avocado"))

	content, err = os.ReadFile(filepath.Join(exportDir, "C.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "## cat\n\n- *noun.* a feline\n- *verb.* to catch\n")
}

func TestMarkdownExporter_Index(t *testing.T) {
	exportDir := t.TempDir()
	exporter := NewMarkdownExporter(exportDir)

	_, err := exporter.Export(testGlossary())
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(exportDir, "index.md"))
	require.NoError(t, err)

	assert.Equal(t, "# Glossary\n\n"+
		"- [[A]] (2 words)\n"+
		"- [[B]] (1 words)\n"+
		"- [[C]] (1 words)\n"+
		"- [[_]] (1 words)\n", string(index))
}

func TestMarkdownExporter_ResetsResult(t *testing.T) {
	exporter := NewMarkdownExporter(t.TempDir())

	_, err := exporter.Export(testGlossary())
	require.NoError(t, err)
	result, err := exporter.Export(testGlossary())
	require.NoError(t, err)

	assert.Equal(t, 5, result.WordsProcessed)
}

func TestMarkdownExporter_EmptyGlossary(t *testing.T) {
	exportDir := t.TempDir()
	exporter := NewMarkdownExporter(exportDir)

	result, err := exporter.Export(glossary.New())
	require.NoError(t, err)

	assert.Equal(t, ExportResult{FilesWritten: 1}, result)
	index, err := os.ReadFile(filepath.Join(exportDir, "index.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Glossary\n\n", string(index))
}

func TestMarkdownExporter_UnwritableDir(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	exporter := NewMarkdownExporter(filepath.Join(blocker, "sub"))
	_, err := exporter.Export(testGlossary())

	assert.Error(t, err)
}
