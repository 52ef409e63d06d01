package exporters

import "github.com/mrlokans/glossary/internal/glossary"

// GlossarySource is the read-only view of a glossary an exporter needs.
type GlossarySource interface {
	Words() []string
	Split(word string) ([]glossary.Sense, bool)
}

type GlossaryExporter interface {
	Export(source GlossarySource) (ExportResult, error)
}

type ExportResult struct {
	WordsProcessed       int `json:"words_processed"`
	DefinitionsProcessed int `json:"definitions_processed"`
	FilesWritten         int `json:"files_written"`
}
