package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the validation run log.
type Entry struct {
	Timestamp time.Time
	Period    string // "YYYY-MM", may be empty when the caller gave none
	File      string
	Accounts  int
	Errors    int
	Warnings  int
	Info      int
	Valid     bool
}

// Header is the CSV header for validation-log.csv.
const Header = "timestamp,period,file,accounts,errors,warnings,info,valid"

const (
	numFields    = 8
	logDir       = "logs"
	logFile      = "logs/validation-log.csv"
	colTimestamp = 0
	colPeriod    = 1
	colFile      = 2
	colAccounts  = 3
	colErrors    = 4
	colWarnings  = 5
	colInfo      = 6
	colValid     = 7
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colPeriod] = e.Period
	row[colFile] = e.File
	row[colAccounts] = strconv.Itoa(e.Accounts)
	row[colErrors] = strconv.Itoa(e.Errors)
	row[colWarnings] = strconv.Itoa(e.Warnings)
	row[colInfo] = strconv.Itoa(e.Info)
	row[colValid] = strconv.FormatBool(e.Valid)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	counts := make([]int, 4)
	for i, col := range []int{colAccounts, colErrors, colWarnings, colInfo} {
		counts[i], err = strconv.Atoi(record[col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing count %q: %w", record[col], err)
		}
	}

	valid, err := strconv.ParseBool(record[colValid])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing valid flag %q: %w", record[colValid], err)
	}

	return Entry{
		Timestamp: ts,
		Period:    record[colPeriod],
		File:      record[colFile],
		Accounts:  counts[0],
		Errors:    counts[1],
		Warnings:  counts[2],
		Info:      counts[3],
		Valid:     valid,
	}, nil
}

// Append writes entries to <projectRoot>/logs/validation-log.csv, creating
// the file and header if needed.
func Append(projectRoot string, entries []Entry) error {
	dir := filepath.Join(projectRoot, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(projectRoot, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening validation log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <projectRoot>/logs/validation-log.csv.
// Returns an empty slice if the file does not exist.
func Read(projectRoot string) ([]Entry, error) {
	path := filepath.Join(projectRoot, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening validation log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading validation log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
