// Package ingest implements the bank-statement ingestion pipeline:
// parsing uploaded CSV exports into normalized rows, classifying them
// into income/expense transactions, and committing them to the ledger
// while keeping the business's financial position consistent.
package ingest

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row is one normalized statement line. AmountCents keeps the original
// sign from the export; the classifier decides type from it.
type Row struct {
	Date        time.Time
	Description string
	AmountCents int64
}

// ParseError reports a statement that cannot be parsed at all, as opposed
// to individual rows being skipped.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string { return "statement parse: " + e.Reason }

// Column header aliases, matched case-insensitively after trimming.
// Different banks export wildly different headers; these cover the
// formats we have seen in the wild.
var (
	dateAliases = []string{"date", "transaction date", "transaction_date", "posted date", "value date"}
	descAliases = []string{"description", "memo", "narrative", "details", "payee", "name"}
	amtAliases  = []string{"amount", "value", "transaction amount"}
)

// dateLayouts are tried in order when parsing the date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

type columnIndex struct {
	date int
	desc int
	amt  int
}

// Scanner streams normalized rows out of a CSV statement. It holds no
// state beyond the reader position (parsing the same bytes again with a
// fresh Scanner yields the same rows) and performs no I/O of its own.
type Scanner struct {
	r       *csv.Reader
	cols    columnIndex
	skipped int
	err     error
}

// NewScanner reads the header row and resolves column aliases. It returns
// a ParseError when the export has no recognizable date or amount column.
func NewScanner(r io.Reader) (*Scanner, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ParseError{Reason: "empty file"}
	}
	if err != nil {
		return nil, &ParseError{Reason: "reading header: " + err.Error()}
	}

	cols := columnIndex{date: -1, desc: -1, amt: -1}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		switch {
		case cols.date < 0 && matchesAlias(key, dateAliases):
			cols.date = i
		case cols.desc < 0 && matchesAlias(key, descAliases):
			cols.desc = i
		case cols.amt < 0 && matchesAlias(key, amtAliases):
			cols.amt = i
		}
	}
	if cols.date < 0 {
		return nil, &ParseError{Reason: "no date column found"}
	}
	if cols.amt < 0 {
		return nil, &ParseError{Reason: "no amount column found"}
	}

	return &Scanner{r: cr, cols: cols}, nil
}

func matchesAlias(key string, aliases []string) bool {
	for _, a := range aliases {
		if key == a {
			return true
		}
	}
	return false
}

// Next returns the next valid row. Rows with unparseable dates or
// non-numeric amounts are counted as skipped and never surface; a bad
// row is not a bad statement. Returns false at end of input or on a
// read error (see Err).
func (s *Scanner) Next() (Row, bool) {
	for {
		record, err := s.r.Read()
		if err == io.EOF {
			return Row{}, false
		}
		if err != nil {
			s.err = &ParseError{Reason: "reading row: " + err.Error()}
			return Row{}, false
		}
		if len(record) <= s.cols.date || len(record) <= s.cols.amt {
			s.skipped++
			continue
		}

		date, ok := parseDate(record[s.cols.date])
		if !ok {
			s.skipped++
			continue
		}
		cents, ok := parseAmountCents(record[s.cols.amt])
		if !ok {
			s.skipped++
			continue
		}

		row := Row{Date: date, AmountCents: cents}
		if s.cols.desc >= 0 && len(record) > s.cols.desc {
			row.Description = strings.TrimSpace(record[s.cols.desc])
		}
		return row, true
	}
}

// Skipped reports how many rows were dropped so far.
func (s *Scanner) Skipped() int { return s.skipped }

// Err returns the first read error, if any. Row-level problems are never
// errors; only a broken underlying read is.
func (s *Scanner) Err() error { return s.err }

// ReadAll drains a statement into memory and returns the valid rows and
// the skipped count.
func ReadAll(r io.Reader) ([]Row, int, error) {
	s, err := NewScanner(r)
	if err != nil {
		return nil, 0, err
	}
	var rows []Row
	for {
		row, ok := s.Next()
		if !ok {
			break
		}
		rows = append(rows, row)
	}
	if s.Err() != nil {
		return nil, 0, s.Err()
	}
	return rows, s.Skipped(), nil
}

func parseDate(raw string) (time.Time, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseAmountCents converts a monetary string to signed cents. It accepts
// thousands separators, a leading currency symbol, and accounting-style
// parentheses for negatives. Sub-cent precision rounds bankers-style.
func parseAmountCents(raw string) (int64, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")") {
		negative = true
		v = strings.TrimSuffix(strings.TrimPrefix(v, "("), ")")
	}
	v = strings.ReplaceAll(v, ",", "")
	v = strings.TrimLeft(v, "$€£")
	v = strings.TrimSpace(v)

	d, err := decimal.NewFromString(v)
	if err != nil {
		return 0, false
	}
	if negative {
		d = d.Neg()
	}
	return d.Shift(2).RoundBank(0).IntPart(), true
}
