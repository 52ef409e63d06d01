package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/glossary/internal/config"
)

// StatsCommand prints glossary metadata without entering the menu.
type StatsCommand struct {
	FilePath      string
	SkipMalformed bool
	Verbose       bool

	Out io.Writer
}

func NewStatsCommand() *StatsCommand {
	return &StatsCommand{Out: os.Stdout}
}

func (cmd *StatsCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("stats", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", cfg.Glossary.FilePath, "Path to the glossary file")
	fs.BoolVar(&cmd.SkipMalformed, "skip-malformed", cfg.Glossary.SkipMalformed, "Skip malformed lines instead of failing")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Also print definition counts per part of speech")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s stats [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print word, definition and part-of-speech counts of a glossary.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *StatsCommand) Run() error {
	g, err := loadGlossary(cmd.FilePath, cmd.SkipMalformed)
	if err != nil {
		return err
	}

	stats := g.Stats()
	fmt.Fprintf(cmd.Out, "words: %d\n", stats.Words)
	fmt.Fprintf(cmd.Out, "definitions: %d\n", stats.Definitions)
	fmt.Fprintf(cmd.Out, "definitions per word: %.3f\n", stats.DefinitionsPerWord)
	fmt.Fprintf(cmd.Out, "parts of speech: %d\n", stats.PartsOfSpeech)
	fmt.Fprintf(cmd.Out, "first word: %s\n", stats.First)
	fmt.Fprintf(cmd.Out, "last word: %s\n", stats.Last)

	if cmd.Verbose {
		fmt.Fprintln(cmd.Out, "\n=== Definitions per part of speech ===")
		for _, pos := range g.PartsOfSpeechInUse() {
			fmt.Fprintf(cmd.Out, "%s: %d\n", pos, g.PartOfSpeechUsage(pos))
		}
	}
	return nil
}
