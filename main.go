package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mrlokans/glossary/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// No arguments, flags or a bare file path all open the menu.
	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") || !isCommand(os.Args[1]) {
		run(cli.NewMenuCommand(), os.Args[1:])
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	switch name {
	case "menu":
		run(cli.NewMenuCommand(), args)

	case "stats":
		run(cli.NewStatsCommand(), args)

	case "lookup":
		run(cli.NewLookupCommand(), args)

	case "range":
		run(cli.NewRangeCommand(), args)

	case "export-markdown":
		run(cli.NewExportMarkdownCommand(), args)

	case "snapshot":
		run(cli.NewSnapshotCommand(), args)

	case "snapshots":
		run(cli.NewSnapshotsCommand(), args)

	case "restore":
		run(cli.NewRestoreCommand(), args)

	case "version":
		fmt.Printf("glossary %s (%s)\n", Version, Commit)

	case "help":
		printUsage()
	}
}

func isCommand(name string) bool {
	switch name {
	case "menu", "stats", "lookup", "range", "export-markdown",
		"snapshot", "snapshots", "restore", "version", "help":
		return true
	}
	return false
}

func run(cmd command, args []string) {
	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [command] [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  menu             Open the interactive editor (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  stats            Print glossary metadata\n")
	fmt.Fprintf(os.Stderr, "  lookup           Print the definitions of a word\n")
	fmt.Fprintf(os.Stderr, "  range            List the words between two bounds\n")
	fmt.Fprintf(os.Stderr, "  export-markdown  Export the glossary as markdown files\n")
	fmt.Fprintf(os.Stderr, "  snapshot         Store a copy of the glossary in the database\n")
	fmt.Fprintf(os.Stderr, "  snapshots        List stored snapshots\n")
	fmt.Fprintf(os.Stderr, "  restore          Write a stored snapshot back to a glossary file\n")
	fmt.Fprintf(os.Stderr, "  version          Print version information\n")
	fmt.Fprintf(os.Stderr, "\nA bare file path opens the menu on that file: %s ./glossary.txt\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Use '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
