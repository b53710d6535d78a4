package ledger

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"hyprdrop/pkg/core"
)

// Delimiter separates the key from the handle on each ledger line.
const Delimiter = "\t"

// ErrMalformedRow marks a ledger line that could not be parsed.
var ErrMalformedRow = errors.New("malformed ledger row")

// RowError reports a skipped ledger line.
type RowError struct {
	Line int
	Text string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, ErrMalformedRow, e.Text)
}

func (e *RowError) Unwrap() error {
	return ErrMalformedRow
}

// Store persists ledger entries.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// FileStore keeps entries in a line-oriented text file, one "key<TAB>handle" per line.
type FileStore struct {
	path string
	log  core.Logger
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string, log core.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load reads the file. A missing file is an empty ledger; malformed lines are
// logged and skipped.
func (s *FileStore) Load() ([]Entry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.log.Debug("Ledger file absent, starting empty", "path", s.path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	entries, skipped, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read ledger %s: %w", s.path, err)
	}
	for _, rowErr := range skipped {
		s.log.Warn("Skipping malformed ledger row", "path", s.path, "line", rowErr.Line, "text", rowErr.Text)
	}
	return entries, nil
}

// Save rewrites the whole file.
func (s *FileStore) Save(entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create ledger directory: %w", err)
	}
	var buf bytes.Buffer
	if err := Format(&buf, entries); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}

// MaxRowBytes bounds a ledger line. Longer lines are skipped as malformed.
const MaxRowBytes = 4096

// Parse reads ledger lines from r. Blank lines are ignored; lines without a key,
// without a handle, without the delimiter or longer than MaxRowBytes are
// returned as RowErrors. Only a read failure of r itself is an error.
func Parse(r io.Reader) ([]Entry, []*RowError, error) {
	var (
		entries []Entry
		skipped []*RowError
	)
	br := bufio.NewReader(r)
	for line := 1; ; line++ {
		text, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, nil, err
		}
		if text == "" && err != nil {
			break
		}
		text = strings.TrimRight(text, "\r\n")

		switch {
		case strings.TrimSpace(text) == "":
		case len(text) > MaxRowBytes:
			skipped = append(skipped, &RowError{Line: line, Text: text[:64] + "..."})
		default:
			key, handle, ok := cutLast(text, Delimiter)
			handle = strings.TrimSpace(handle)
			if !ok || key == "" || handle == "" || strings.ContainsAny(handle, " \t") {
				skipped = append(skipped, &RowError{Line: line, Text: text})
				break
			}
			entries = upsert(entries, Entry{Key: key, Handle: handle})
		}

		if err != nil {
			break
		}
	}
	return entries, skipped, nil
}

// Format writes entries in ledger line format.
func Format(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := io.WriteString(w, e.Key+Delimiter+e.Handle+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func cutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}

// MemoryStore keeps entries in memory.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
	saves   int
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(entries ...Entry) *MemoryStore {
	return &MemoryStore{entries: append([]Entry(nil), entries...)}
}

func (m *MemoryStore) Load() ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.entries...), nil
}

func (m *MemoryStore) Save(entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append([]Entry(nil), entries...)
	m.saves++
	return nil
}

// Saves reports how many times Save was called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
