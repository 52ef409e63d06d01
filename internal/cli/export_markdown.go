package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/glossary/internal/config"
	"github.com/mrlokans/glossary/internal/exporters"
)

// ExportMarkdownCommand writes a glossary as Obsidian-compatible markdown.
type ExportMarkdownCommand struct {
	FilePath      string
	SkipMalformed bool
	OutputDir     string

	Out io.Writer
}

func NewExportMarkdownCommand() *ExportMarkdownCommand {
	return &ExportMarkdownCommand{Out: os.Stdout}
}

func (cmd *ExportMarkdownCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("export-markdown", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", cfg.Glossary.FilePath, "Path to the glossary file")
	fs.BoolVar(&cmd.SkipMalformed, "skip-malformed", cfg.Glossary.SkipMalformed, "Skip malformed lines instead of failing")
	fs.StringVar(&cmd.OutputDir, "output", cfg.Export.Dir, "Output directory for markdown files")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export-markdown [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export a glossary to one markdown file per initial letter plus index.md.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export-markdown -file ./glossary.txt -output ~/Obsidian/Glossary\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.OutputDir == "" {
		return fmt.Errorf("required flag -output not provided")
	}
	return nil
}

func (cmd *ExportMarkdownCommand) Run() error {
	g, err := loadGlossary(cmd.FilePath, cmd.SkipMalformed)
	if err != nil {
		return err
	}

	outputDir, err := absPath(cmd.OutputDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.Out, "Exporting to markdown: %s\n", outputDir)

	result, err := exporters.NewMarkdownExporter(outputDir).Export(g)
	if err != nil {
		return fmt.Errorf("failed to export to markdown: %w", err)
	}

	fmt.Fprintf(cmd.Out, "Exported %d words (%d definitions) to %d files\n",
		result.WordsProcessed, result.DefinitionsProcessed, result.FilesWritten)
	return nil
}
