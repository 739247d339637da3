// Package seed reads records from a plain-text file, one per line:
//
//	amount;comment[;DD.MM.YYYY]
//
// Blank lines and lines starting with '#' are ignored. A missing date means
// the current day.
package seed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"dailybudget/internal/core"
)

const separator = ";"

var ErrMalformedLine = errors.New("malformed line")

// LineError reports the line of the file a record could not be read from.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// LoadFile reads all records of path in file order.
func LoadFile(path string, now time.Time) ([]core.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records file: %w", err)
	}
	defer f.Close()

	records, err := Read(f, now)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}

// Read parses records from r. The first bad line aborts the read.
func Read(r io.Reader, now time.Time) ([]core.Record, error) {
	var out []core.Record
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := parseLine(line, now)
		if err != nil {
			return nil, &LineError{Line: n, Err: err}
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseLine(line string, now time.Time) (core.Record, error) {
	fields := strings.Split(line, separator)
	if len(fields) < 2 || len(fields) > 3 {
		return core.Record{}, fmt.Errorf("%w: want amount;comment[;date], got %q", ErrMalformedLine, line)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	amount, err := core.ParseAmount(fields[0])
	if err != nil {
		return core.Record{}, fmt.Errorf("%w: %q", err, fields[0])
	}

	date := ""
	if len(fields) == 3 {
		date = fields[2]
	}
	return core.NewRecord(amount, fields[1], date, now)
}
