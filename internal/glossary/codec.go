package glossary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Delimiter separates the fields of a record.
const Delimiter = "::"

// ErrMalformedRecord is returned when a line has fewer than three fields.
var ErrMalformedRecord = errors.New("malformed glossary record")

// Parser reads word::pos::definition records, one per line.
//
// By default a malformed line aborts the whole parse. With SkipMalformed set
// such lines are skipped and their 1-based numbers collected in Skipped.
// Blank lines are always ignored.
type Parser struct {
	SkipMalformed bool
	Skipped       []int
}

func NewParser() *Parser {
	return &Parser{}
}

// LoadOption configures how a glossary source is parsed.
type LoadOption func(*Parser)

// WithSkipMalformed makes loading skip malformed lines instead of failing.
func WithSkipMalformed(skip bool) LoadOption {
	return func(p *Parser) {
		p.SkipMalformed = skip
	}
}

// Parse reads all records from r. A definition may itself contain the
// delimiter: everything after the second "::" belongs to it.
func (p *Parser) Parse(r io.Reader) ([]Entry, error) {
	p.Skipped = nil

	var entries []Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		entry, err := ParseRecord(line)
		if err != nil {
			if p.SkipMalformed {
				p.Skipped = append(p.Skipped, lineNum)
				continue
			}
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read glossary: %w", err)
	}
	return entries, nil
}

// ParseRecord splits a single line into an entry.
func ParseRecord(line string) (Entry, error) {
	fields := strings.SplitN(line, Delimiter, 3)
	if len(fields) < 3 {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}
	return Entry{
		Word:         fields[0],
		PartOfSpeech: PartOfSpeech(fields[1]),
		Definition:   fields[2],
	}, nil
}

// FormatRecord renders an entry as a single line without a newline.
func FormatRecord(e Entry) string {
	return e.Word + Delimiter + string(e.PartOfSpeech) + Delimiter + e.Definition
}

// LoadResult reports what a load changed.
type LoadResult struct {
	Records int   // well-formed records read
	Added   int   // records that were new definitions
	Skipped []int // line numbers of skipped malformed records
}

// Load adds every record read from r. Tags are not checked against the known
// parts of speech. If parsing fails the glossary is left untouched.
func (g *Glossary) Load(r io.Reader, opts ...LoadOption) (LoadResult, error) {
	parser := NewParser()
	for _, opt := range opts {
		opt(parser)
	}

	entries, err := parser.Parse(r)
	if err != nil {
		return LoadResult{}, err
	}

	result := LoadResult{Records: len(entries), Skipped: parser.Skipped}
	for _, e := range entries {
		if g.Add(e.Word, e.PartOfSpeech, e.Definition) {
			result.Added++
		}
	}
	return result, nil
}

// LoadFile loads records from the file at path.
func (g *Glossary) LoadFile(path string, opts ...LoadOption) (LoadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to open glossary file: %w", err)
	}
	defer file.Close()

	result, err := g.Load(file, opts...)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return result, nil
}

// NewFromFile builds a glossary from the file at path. The returned glossary
// is always usable; on error it is empty.
func NewFromFile(path string, opts ...LoadOption) (*Glossary, error) {
	g := New()
	if _, err := g.LoadFile(path, opts...); err != nil {
		return New(), err
	}
	return g, nil
}

// WriteTo writes every record in canonical order, separated by newlines.
// The final record has no trailing newline.
func (g *Glossary) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, e := range g.Entries() {
		line := FormatRecord(e)
		if i > 0 {
			line = "\n" + line
		}
		n, err := io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// SaveFile writes the glossary to path, replacing any existing file.
// The parent directory must exist.
func (g *Glossary) SaveFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create glossary file: %w", err)
	}

	bw := bufio.NewWriter(file)
	if _, err := g.WriteTo(bw); err != nil {
		file.Close()
		return fmt.Errorf("failed to write glossary file: %w", err)
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write glossary file: %w", err)
	}
	return file.Close()
}
