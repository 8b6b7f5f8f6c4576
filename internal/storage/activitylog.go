// Package storage reads and appends the append-only activity log shared
// with the OS-level sampler: a CSV of (timestamp, app_name) rows, one per
// detected application change.
package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/siddhi-bansal/focus-flow/internal/analyzer"
)

var header = []string{"timestamp", "app_name"}

// timestampFormats covers RFC3339 and the zone-less ISO-8601 the sampler
// writes.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// ActivityLog is the CSV-backed sample store.
type ActivityLog struct {
	path string
}

func NewActivityLog(path string) *ActivityLog {
	return &ActivityLog{path: path}
}

func (l *ActivityLog) Path() string { return l.path }

// Append writes one sample, creating the file (with header) on first use.
func (l *ActivityLog) Append(ts time.Time, rawTitle string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open activity log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat activity log: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := w.Write([]string{ts.Format(time.RFC3339), rawTitle}); err != nil {
		return fmt.Errorf("write sample: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush activity log: %w", err)
	}
	return nil
}

// ReadAll loads every sample in log order. A missing file is an empty log,
// and malformed rows are skipped rather than failing the whole read.
func (l *ActivityLog) ReadAll() ([]analyzer.Sample, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open activity log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var samples []analyzer.Sample
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Skip rows the CSV layer cannot parse; fail on real I/O errors.
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				continue
			}
			return nil, fmt.Errorf("read activity log: %w", err)
		}
		if len(row) < 2 || row[0] == "timestamp" {
			continue
		}
		ts, ok := parseTimestamp(row[0])
		if !ok {
			continue
		}
		samples = append(samples, analyzer.Sample{Timestamp: ts, RawTitle: row[1]})
	}
	return samples, nil
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
