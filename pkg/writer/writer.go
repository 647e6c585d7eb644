package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/japaniel/devlingo/pkg/phrase"
)

// DefaultPattern names category files <category>.json.
const DefaultPattern = "%s.json"

// IOError reports a filesystem failure while writing or reading a category file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err) }

func (e *IOError) Unwrap() error { return e.Err }

// Writer serializes category record lists into JSON files under Dir.
type Writer struct {
	Dir string
	// Pattern is a fmt verb template receiving the category, e.g. "phrases_%s.json".
	Pattern string
	Logger  *zap.Logger
}

// CheckPattern reports whether pattern names a single file per category:
// exactly one %s, no other verbs and no path separators.
func CheckPattern(pattern string) error {
	if strings.Count(pattern, "%s") != 1 || strings.Count(pattern, "%") != 1 {
		return fmt.Errorf("file_pattern must contain exactly one %%s, got %q", pattern)
	}
	if strings.ContainsAny(pattern, `/\`) {
		return fmt.Errorf("file_pattern must be a file name, got %q", pattern)
	}
	return nil
}

// New creates a Writer. An empty pattern falls back to DefaultPattern.
// The pattern is checked by WriteCategory; use CheckPattern to reject it earlier.
func New(dir, pattern string) *Writer {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &Writer{Dir: dir, Pattern: pattern, Logger: zap.NewNop()}
}

// Path returns the output file path for a category. It does not check the
// pattern or the category.
func (w *Writer) Path(c phrase.Category) string {
	return filepath.Join(w.Dir, fmt.Sprintf(w.Pattern, c))
}

// Marshal encodes records as an indented JSON array with a trailing newline.
// Output is deterministic for identical input.
func Marshal(records []phrase.Record) ([]byte, error) {
	if records == nil {
		records = []phrase.Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCategory writes the records of one category and returns the file path.
// The file is replaced atomically: readers see either the old or the new array.
func (w *Writer) WriteCategory(c phrase.Category, records []phrase.Record) (string, error) {
	if err := CheckPattern(w.Pattern); err != nil {
		return "", err
	}
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", c)
	}
	path := w.Path(c)
	data, err := Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", c, err)
	}

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", &IOError{Op: "mkdir", Path: w.Dir, Err: err}
	}
	if err := writeFileAtomic(path, data); err != nil {
		return "", err
	}

	w.logger().Debug("wrote category file",
		zap.String("category", string(c)),
		zap.String("path", path),
		zap.Int("records", len(records)),
		zap.Int("bytes", len(data)))
	return path, nil
}

func (w *Writer) logger() *zap.Logger {
	if w.Logger == nil {
		return zap.NewNop()
	}
	return w.Logger
}

func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &IOError{Op: "sync", Path: path, Err: err}
	}
	if err = tmp.Chmod(0o644); err != nil {
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err = os.Rename(tmpName, path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

// ReadCategory loads a category file written by WriteCategory.
func ReadCategory(path string) ([]phrase.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	var records []phrase.Record
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse %s as a phrase array: %w", path, err)
	}
	return records, nil
}
