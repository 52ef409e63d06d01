package cli

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/mrlokans/glossary/internal/glossary"
)

// loadGlossary reads the glossary file at path. On error the returned
// glossary is empty but usable.
func loadGlossary(path string, skipMalformed bool) (*glossary.Glossary, error) {
	g := glossary.New()
	result, err := g.LoadFile(path, glossary.WithSkipMalformed(skipMalformed))
	if err != nil {
		return glossary.New(), err
	}

	if len(result.Skipped) > 0 {
		log.Printf("Skipped %d malformed lines in %s: %v", len(result.Skipped), path, result.Skipped)
	}
	log.Printf("Loaded %d words (%d definitions) from %s", g.Size(), g.DefinitionCount(), path)
	return g, nil
}

func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for %s: %w", path, err)
	}
	return abs, nil
}
