package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/glossary/internal/config"
)

// RangeCommand lists the words between two bounds, inclusive.
type RangeCommand struct {
	FilePath      string
	SkipMalformed bool
	Start         string
	End           string

	Out io.Writer
}

func NewRangeCommand() *RangeCommand {
	return &RangeCommand{Out: os.Stdout}
}

func (cmd *RangeCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("range", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", cfg.Glossary.FilePath, "Path to the glossary file")
	fs.BoolVar(&cmd.SkipMalformed, "skip-malformed", cfg.Glossary.SkipMalformed, "Skip malformed lines instead of failing")
	fs.StringVar(&cmd.Start, "start", "", "First word of the range (required)")
	fs.StringVar(&cmd.End, "end", "", "Last word of the range (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s range -start <word> -end <word> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Start == "" || cmd.End == "" {
		return fmt.Errorf("required flags -start and -end not provided")
	}
	// Glossary.Range does not reject reversed bounds, so the front end does.
	if cmd.Start > cmd.End {
		return fmt.Errorf("start %q sorts after end %q", cmd.Start, cmd.End)
	}
	return nil
}

func (cmd *RangeCommand) Run() error {
	g, err := loadGlossary(cmd.FilePath, cmd.SkipMalformed)
	if err != nil {
		return err
	}

	for _, word := range g.Range(cmd.Start, cmd.End) {
		fmt.Fprintln(cmd.Out, word)
	}
	return nil
}
