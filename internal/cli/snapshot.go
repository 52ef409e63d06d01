package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mrlokans/glossary/internal/config"
	"github.com/mrlokans/glossary/internal/database"
	"github.com/mrlokans/glossary/internal/database/snapshots"
	"github.com/mrlokans/glossary/internal/entities"
	"github.com/mrlokans/glossary/internal/glossary"
)

// SnapshotCommand copies a glossary file into the snapshot database.
type SnapshotCommand struct {
	FilePath      string
	SkipMalformed bool
	DatabasePath  string
	Label         string

	Out io.Writer
}

func NewSnapshotCommand() *SnapshotCommand {
	return &SnapshotCommand{Out: os.Stdout}
}

func (cmd *SnapshotCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", cfg.Glossary.FilePath, "Path to the glossary file")
	fs.BoolVar(&cmd.SkipMalformed, "skip-malformed", cfg.Glossary.SkipMalformed, "Skip malformed lines instead of failing")
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the snapshot database")
	fs.StringVar(&cmd.Label, "label", "", "Snapshot label (defaults to the current time)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s snapshot [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Store a copy of a glossary file in the snapshot database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Label == "" {
		cmd.Label = time.Now().Format("2006-01-02 15:04:05")
	}
	return nil
}

func (cmd *SnapshotCommand) Run() error {
	g, err := loadGlossary(cmd.FilePath, cmd.SkipMalformed)
	if err != nil {
		return err
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	snap, err := snapshots.NewRepository(db.DB).SaveSnapshot(cmd.Label, cmd.FilePath, toSnapshotEntries(g.Entries()))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.Out, "Snapshot %d (%q) saved: %d words, %d definitions\n",
		snap.ID, snap.Label, snap.Words, snap.Definitions)
	return nil
}

// SnapshotsCommand lists stored snapshots, or deletes one.
type SnapshotsCommand struct {
	DatabasePath string
	DeleteID     uint

	Out io.Writer
}

func NewSnapshotsCommand() *SnapshotsCommand {
	return &SnapshotsCommand{Out: os.Stdout}
}

func (cmd *SnapshotsCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("snapshots", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the snapshot database")
	fs.UintVar(&cmd.DeleteID, "delete", 0, "Delete the snapshot with this ID instead of listing")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s snapshots [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SnapshotsCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := snapshots.NewRepository(db.DB)

	if cmd.DeleteID != 0 {
		if err := repo.DeleteSnapshot(cmd.DeleteID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.Out, "Snapshot %d deleted\n", cmd.DeleteID)
		return nil
	}

	list, err := repo.ListSnapshots()
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	if len(list) == 0 {
		fmt.Fprintln(cmd.Out, "No snapshots found")
		return nil
	}
	for _, snap := range list {
		fmt.Fprintf(cmd.Out, "%d\t%s\t%s\t%d words\t%d definitions\n",
			snap.ID, snap.CreatedAt.Format("2006-01-02 15:04:05"), snap.Label, snap.Words, snap.Definitions)
	}
	return nil
}

func toSnapshotEntries(entries []glossary.Entry) []entities.SnapshotEntry {
	rows := make([]entities.SnapshotEntry, len(entries))
	for i, e := range entries {
		rows[i] = entities.SnapshotEntry{
			Word:         e.Word,
			PartOfSpeech: string(e.PartOfSpeech),
			Definition:   e.Definition,
		}
	}
	return rows
}
