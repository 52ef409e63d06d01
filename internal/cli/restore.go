package cli

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mrlokans/glossary/internal/config"
	"github.com/mrlokans/glossary/internal/database"
	"github.com/mrlokans/glossary/internal/database/snapshots"
	"github.com/mrlokans/glossary/internal/entities"
	"github.com/mrlokans/glossary/internal/glossary"
)

// RestoreCommand writes a stored snapshot back out as a glossary file.
type RestoreCommand struct {
	DatabasePath string
	OutputPath   string
	SnapshotID   uint

	Out io.Writer
}

func NewRestoreCommand() *RestoreCommand {
	return &RestoreCommand{Out: os.Stdout}
}

func (cmd *RestoreCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("restore", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the snapshot database")
	fs.StringVar(&cmd.OutputPath, "output", "", "Glossary file to write (required)")
	fs.UintVar(&cmd.SnapshotID, "id", 0, "Snapshot to restore (default: latest)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s restore -output <file> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.OutputPath == "" {
		return fmt.Errorf("required flag -output not provided")
	}
	return nil
}

func (cmd *RestoreCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := snapshots.NewRepository(db.DB)

	var snap *entities.Snapshot
	if cmd.SnapshotID == 0 {
		snap, err = repo.GetLatestSnapshot()
	} else {
		snap, err = repo.GetSnapshot(cmd.SnapshotID)
	}
	if err != nil {
		return err
	}

	rows, err := repo.GetEntries(snap.ID)
	if err != nil {
		return err
	}

	g := glossary.New()
	for _, row := range rows {
		g.Add(row.Word, glossary.PartOfSpeech(row.PartOfSpeech), row.Definition)
	}

	if err := g.SaveFile(cmd.OutputPath); err != nil {
		return err
	}

	log.Printf("Restored snapshot %d to %s", snap.ID, cmd.OutputPath)
	fmt.Fprintf(cmd.Out, "Restored snapshot %d (%q): %d words, %d definitions written to %s\n",
		snap.ID, snap.Label, g.Size(), g.DefinitionCount(), cmd.OutputPath)
	return nil
}
