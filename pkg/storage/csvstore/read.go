package csvstore

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const separator = ';'

var utf8BOM = []byte{0xEF, 0xBB, 0xBF} //nolint: gochecknoglobals

// errMissingHeader is returned when no row carries the postal code column.
var errMissingHeader = errors.New("no header row with a postal code column")

// table is a parsed CSV file: a header index plus the data rows after it.
type table struct {
	columns map[string]int
	rows    [][]string
}

// readTable reads a ';' separated file. Files that are not valid UTF-8 are
// decoded as Windows-1252, the encoding the public registers are exported in.
// Lines before the first row containing one of keyColumns are skipped.
func readTable(path string, keyColumns []string) (*table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	data, err = toUTF8(data)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", path, err)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = separator
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var t *table
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", path, err)
		}
		if t == nil {
			if cols := headerIndex(rec); hasAny(cols, keyColumns) {
				t = &table{columns: cols}
			}

			continue
		}
		if isBlank(rec) {
			continue
		}
		t.rows = append(t.rows, rec)
	}

	if t == nil {
		return nil, fmt.Errorf("%s: %w", path, errMissingHeader)
	}

	return t, nil
}

func toUTF8(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, nil
	}

	return charmap.Windows1252.NewDecoder().Bytes(data)
}

func normalizeColumn(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func headerIndex(rec []string) map[string]int {
	cols := make(map[string]int, len(rec))
	for i, c := range rec {
		if n := normalizeColumn(c); n != "" {
			if _, dup := cols[n]; !dup {
				cols[n] = i
			}
		}
	}

	return cols
}

func hasAny(cols map[string]int, names []string) bool {
	_, ok := lookup(cols, names)

	return ok
}

// lookup returns the index of the first alias present in cols.
func lookup(cols map[string]int, aliases []string) (int, bool) {
	for _, a := range aliases {
		if i, ok := cols[normalizeColumn(a)]; ok {
			return i, true
		}
	}

	return 0, false
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}

	return true
}

// field returns rec[i] trimmed, or "" when the row is short.
func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}

	return strings.TrimSpace(rec[i])
}

// parseDecimal accepts both "52,5123" and "52.5123".
func parseDecimal(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return 0, errors.New("empty number")
	}

	return strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
}

// parseCount accepts plain integers and integral decimals such as "1234,0".
func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}

	f, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}

	return int(f), nil
}
