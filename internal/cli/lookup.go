package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/glossary/internal/config"
)

// LookupCommand prints the definitions of a single word.
type LookupCommand struct {
	FilePath      string
	SkipMalformed bool
	Word          string
	PartsOnly     bool

	Out io.Writer
}

func NewLookupCommand() *LookupCommand {
	return &LookupCommand{Out: os.Stdout}
}

func (cmd *LookupCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("lookup", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", cfg.Glossary.FilePath, "Path to the glossary file")
	fs.BoolVar(&cmd.SkipMalformed, "skip-malformed", cfg.Glossary.SkipMalformed, "Skip malformed lines instead of failing")
	fs.StringVar(&cmd.Word, "word", "", "Word to look up (required)")
	fs.BoolVar(&cmd.PartsOnly, "pos", false, "Only list the parts of speech the word is used as")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s lookup -word <word> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Word == "" {
		return fmt.Errorf("required flag -word not provided")
	}
	return nil
}

func (cmd *LookupCommand) Run() error {
	g, err := loadGlossary(cmd.FilePath, cmd.SkipMalformed)
	if err != nil {
		return err
	}

	lines, ok := g.Merged(cmd.Word)
	if cmd.PartsOnly {
		lines, ok = g.PartsOfSpeech(cmd.Word)
	}
	if !ok {
		return fmt.Errorf("%s not found", cmd.Word)
	}

	for _, line := range lines {
		fmt.Fprintln(cmd.Out, line)
	}
	return nil
}
