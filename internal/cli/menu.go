package cli

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mrlokans/glossary/internal/audit"
	"github.com/mrlokans/glossary/internal/config"
	"github.com/mrlokans/glossary/internal/console"
	"github.com/mrlokans/glossary/internal/entities"
)

// MenuCommand runs the interactive glossary editor.
type MenuCommand struct {
	FilePath      string
	SkipMalformed bool
	Audit         bool
	AuditDir      string

	In  io.Reader
	Out io.Writer
}

func NewMenuCommand() *MenuCommand {
	return &MenuCommand{In: os.Stdin, Out: os.Stdout}
}

func (cmd *MenuCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("menu", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", cfg.Glossary.FilePath, "Path to the glossary file (word::pos::definition per line)")
	fs.BoolVar(&cmd.SkipMalformed, "skip-malformed", cfg.Glossary.SkipMalformed, "Skip malformed lines instead of refusing the whole file")
	fs.BoolVar(&cmd.Audit, "audit", cfg.Audit.Enabled, "Write a JSON journal of changes made in this session")
	fs.StringVar(&cmd.AuditDir, "audit-dir", cfg.Audit.Dir, "Directory for audit journals")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s menu [options] [file]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Open the interactive glossary editor.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s menu -file ./glossary.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s ./glossary.txt\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	// A bare positional path wins over -file.
	if fs.NArg() > 0 {
		cmd.FilePath = fs.Arg(0)
	}
	if cmd.FilePath == "" {
		fs.Usage()
		return fmt.Errorf("glossary file is required")
	}

	return nil
}

func (cmd *MenuCommand) Run() error {
	// A missing or unreadable file is not fatal: the editor starts empty.
	g, err := loadGlossary(cmd.FilePath, cmd.SkipMalformed)
	if err != nil {
		log.Printf("WARNING: %v. Starting with an empty glossary.", err)
	}

	menu := console.New(g, cmd.In, cmd.Out)
	if cmd.Audit {
		auditor := audit.NewAuditor(cmd.AuditDir)
		auditor.RecordResult(entities.AuditEventLoad, "load "+cmd.FilePath, err)
		menu.WithAuditor(auditor)
	}

	return menu.Run()
}
