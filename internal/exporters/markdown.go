package exporters

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/mrlokans/glossary/internal/glossary"
)

var _ GlossaryExporter = (*MarkdownExporter)(nil)

// otherGroup collects words that do not start with a letter.
const otherGroup = "_"

// MarkdownExporter writes a glossary as Obsidian-compatible markdown: one file
// per initial letter plus an index linking them.
type MarkdownExporter struct {
	ExportDir     string
	IndexFileName string
	Result        ExportResult
}

func NewMarkdownExporter(exportDir string) *MarkdownExporter {
	return &MarkdownExporter{
		ExportDir:     exportDir,
		IndexFileName: "index.md",
		Result:        ExportResult{},
	}
}

func (exporter *MarkdownExporter) ensureDirs() error {
	if err := os.MkdirAll(exporter.ExportDir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	return nil
}

// GroupKey returns the file group a word belongs to: its upper-cased first
// letter, or "_" for anything else.
func GroupKey(word string) string {
	r, _ := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return otherGroup
	}
	return string(unicode.ToUpper(r))
}

// GenerateWordMarkdown renders a single word section.
func GenerateWordMarkdown(word string, senses []glossary.Sense) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "## %s\n\n", word)
	for _, sense := range senses {
		fmt.Fprintf(&builder, "- *%s.* %s\n", sense.PartOfSpeech, sense.Definition)
	}
	builder.WriteString("\n")

	return builder.String()
}

func (exporter *MarkdownExporter) exportGroup(group string, words []string, source GlossarySource) (string, error) {
	outputPath := filepath.Join(exporter.ExportDir, group+".md")

	var builder strings.Builder
	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: glossary\n")
	fmt.Fprintf(&builder, "created_at: %s\n", time.Now().Format("2006-01-02"))
	fmt.Fprintf(&builder, "group: \"%s\"\n", group)
	fmt.Fprintf(&builder, "words: %d\n", len(words))
	fmt.Fprintf(&builder, "tags: glossary\n")
	fmt.Fprintf(&builder, "---\n\n")

	for _, word := range words {
		senses, ok := source.Split(word)
		if !ok {
			continue
		}
		builder.WriteString(GenerateWordMarkdown(word, senses))
		exporter.Result.WordsProcessed++
		exporter.Result.DefinitionsProcessed += len(senses)
	}

	if err := os.WriteFile(outputPath, []byte(builder.String()), 0644); err != nil {
		return "", err
	}
	exporter.Result.FilesWritten++
	return outputPath, nil
}

func (exporter *MarkdownExporter) writeIndex(groups []string, counts map[string]int) error {
	var builder strings.Builder
	fmt.Fprintf(&builder, "# Glossary\n\n")
	for _, group := range groups {
		fmt.Fprintf(&builder, "- [[%s]] (%d words)\n", group, counts[group])
	}

	indexPath := filepath.Join(exporter.ExportDir, exporter.IndexFileName)
	if err := os.WriteFile(indexPath, []byte(builder.String()), 0644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	exporter.Result.FilesWritten++
	return nil
}

func (exporter *MarkdownExporter) Export(source GlossarySource) (ExportResult, error) {
	// Reset result state for each export
	exporter.Result = ExportResult{}

	if err := exporter.ensureDirs(); err != nil {
		return ExportResult{}, err
	}

	// Byte order puts "Banana" before "apple", so groups are collected then sorted.
	var groups []string
	byGroup := make(map[string][]string)
	for _, word := range source.Words() {
		key := GroupKey(word)
		if _, seen := byGroup[key]; !seen {
			groups = append(groups, key)
		}
		byGroup[key] = append(byGroup[key], word)
	}
	slices.Sort(groups)

	counts := make(map[string]int, len(groups))
	for _, group := range groups {
		if _, err := exporter.exportGroup(group, byGroup[group], source); err != nil {
			return ExportResult{}, fmt.Errorf("failed to export group %s: %w", group, err)
		}
		counts[group] = len(byGroup[group])
	}

	if err := exporter.writeIndex(groups, counts); err != nil {
		return ExportResult{}, err
	}

	return exporter.Result, nil
}
