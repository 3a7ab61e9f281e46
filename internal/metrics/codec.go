package metrics

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// DefaultPath is the metrics snapshot filename understood by Load and Save
// when no override is given.
const DefaultPath = "metrics.json"

// CorruptMetricsError reports a persisted snapshot that cannot be
// deserialized. Callers may recover by substituting an empty store.
type CorruptMetricsError struct {
	Path string
	Err  error
}

func (e *CorruptMetricsError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("corrupt metrics snapshot %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("corrupt metrics snapshot: %v", e.Err)
}

func (e *CorruptMetricsError) Unwrap() error {
	return e.Err
}

// Read decodes a snapshot from r. Undecodable data yields a
// *CorruptMetricsError.
func Read(r io.Reader) (*Store, error) {
	var stats map[int]*QuestionStats
	if err := json.NewDecoder(r).Decode(&stats); err != nil {
		return nil, &CorruptMetricsError{Err: err}
	}
	if stats == nil {
		stats = make(map[int]*QuestionStats)
	}
	return &Store{stats: stats}, nil
}

// Load reads the snapshot at path. A missing file is a first run and yields
// an empty store; an unreadable one yields a *CorruptMetricsError.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open metrics snapshot: %w", err)
	}
	defer f.Close()

	s, err := Read(f)
	var corrupt *CorruptMetricsError
	if errors.As(err, &corrupt) {
		corrupt.Path = path
		return nil, corrupt
	}
	return s, err
}

// Write serializes the full current mapping to w.
func (s *Store) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.stats)
}

// Save overwrites the snapshot at path with the full current mapping.
func (s *Store) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create metrics snapshot: %w", err)
	}
	if err := s.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("write metrics snapshot: %w", err)
	}
	return f.Close()
}
