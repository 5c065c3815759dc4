package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

const utf8BOM = "\uFEFF"

// CSVStore implements Store on top of a comma-delimited file.
type CSVStore struct {
	path string
	mu   sync.Mutex
}

// NewCSVStore creates a store backed by the file at path. The file and its
// directory are created on the first Append.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Path returns the location of the backing file.
func (s *CSVStore) Path() string {
	return s.path
}

// LoadHistory parses the whole file. A missing or empty file, or a file with
// only a header, yields an empty history.
func (s *CSVStore) LoadHistory() (History, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return History{}, nil
		}
		return nil, fmt.Errorf("failed to open response file: %w", err)
	}
	defer f.Close()

	return s.parse(f)
}

func (s *CSVStore) parse(r io.Reader) (History, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return History{}, nil
	}
	if err != nil {
		return nil, s.parseError(err)
	}
	if err := checkHeader(header); err != nil {
		return nil, &StoreError{Path: s.path, Line: 1, Err: err}
	}

	history := History{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, s.parseError(err)
		}

		rec := make(Record, len(row))
		for i, field := range row {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				line, _ := cr.FieldPos(i)
				return nil, &StoreError{Path: s.path, Line: line, Err: fmt.Errorf("column %s: %q is not an integer", ColumnName(i), field)}
			}
			if v < MinValue || v > MaxValue {
				line, _ := cr.FieldPos(i)
				return nil, &StoreError{Path: s.path, Line: line, Err: fmt.Errorf("column %s: value %d out of range %d..%d", ColumnName(i), v, MinValue, MaxValue)}
			}
			rec[i] = v
		}
		history = append(history, rec)
	}

	return history, nil
}

func (s *CSVStore) parseError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &StoreError{Path: s.path, Line: pe.Line, Err: pe.Err}
	}
	return &StoreError{Path: s.path, Err: err}
}

// checkHeader verifies the header reads Q1..QN in order.
func checkHeader(header []string) error {
	if len(header) == 0 {
		return fmt.Errorf("empty header")
	}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		if strings.TrimSpace(name) != ColumnName(i) {
			return fmt.Errorf("header column %d is %q, want %q", i+1, name, ColumnName(i))
		}
	}
	return nil
}

// Append writes rec as a new row. A missing or empty file is created with a
// header first. A record of the wrong width or with an out-of-range value is
// rejected before anything is written. The file is synced before returning.
func (s *CSVStore) Append(rec Record) error {
	if len(rec) == 0 {
		return fmt.Errorf("%w: empty record", ErrColumnMismatch)
	}
	for i, v := range rec {
		if v < MinValue || v > MaxValue {
			return fmt.Errorf("%w: %s = %d", ErrInvalidValue, ColumnName(i), v)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create response directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open response file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat response file: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if info.Size() == 0 {
		if err := w.Write(Header(len(rec))); err != nil {
			return err
		}
	} else {
		width, trailingNewline, err := s.inspect(f, info.Size())
		if err != nil {
			return err
		}
		if width != len(rec) {
			return fmt.Errorf("%w: file has %d columns, record has %d", ErrColumnMismatch, width, len(rec))
		}
		if !trailingNewline {
			buf.WriteByte('\n')
		}
	}

	row := make([]string, len(rec))
	for i, v := range rec {
		row[i] = strconv.Itoa(v)
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	// One write call per append keeps the row contiguous.
	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to append response: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync response file: %w", err)
	}
	return nil
}

// inspect returns the header width of an existing file and whether the file
// ends with a newline.
func (s *CSVStore) inspect(f *os.File, size int64) (int, bool, error) {
	cr := csv.NewReader(io.NewSectionReader(f, 0, size))
	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return 0, false, &StoreError{Path: s.path, Line: 1, Err: fmt.Errorf("missing header")}
		}
		return 0, false, s.parseError(err)
	}
	if err := checkHeader(header); err != nil {
		return 0, false, &StoreError{Path: s.path, Line: 1, Err: err}
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, size-1); err != nil {
		return 0, false, fmt.Errorf("failed to read response file: %w", err)
	}
	return len(header), last[0] == '\n', nil
}
