package interchange

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/spec-kit/hr-service/internal/domain"
)

const bom = "\uFEFF"

var (
	// ErrEmptyFile is returned when the input has no header or no data rows.
	ErrEmptyFile = errors.New("file is empty or invalid")
	// ErrNoValidRecords is returned when every data row lacks a full name.
	ErrNoValidRecords = errors.New("no valid records found")
)

// ImportResult describes a successful parse-and-merge. Merged is a new slice; the existing
// collection passed to Import is never modified.
type ImportResult struct {
	Merged     []domain.Employee
	Added      []domain.Employee
	Duplicates int
	Unnamed    int
}

// Export writes employees as BOM-prefixed CSV: one unquoted header row, then one row per record
// with every field quoted and embedded quotes doubled. Lines are separated by "\n".
func Export(w io.Writer, employees []domain.Employee) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(bom + strings.Join(Headers(), ",")); err != nil {
		return err
	}
	for _, e := range employees {
		values := Row(e)
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
		}
		if _, err := bw.WriteString("\n" + strings.Join(quoted, ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Import parses CSV data and merges the named rows into existing. Rows whose full name is
// already present, in existing or earlier in the same file, are skipped. Unmapped columns fall
// back to the defaults of tax. Import performs no I/O beyond reading data.
func Import(data []byte, existing []domain.Employee, tax domain.Taxonomy) (*ImportResult, error) {
	rows, err := readRows(data)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptyFile
	}

	mapping := make([]int, len(rows[0]))
	for i, h := range rows[0] {
		idx, ok := columnByHeader[cleanHeader(h)]
		if !ok {
			idx = -1
		}
		mapping[i] = idx
	}

	result := &ImportResult{}
	var parsed []domain.Employee
	for _, row := range rows[1:] {
		emp := domain.NewEmployee(tax)
		for i, col := range mapping {
			if col < 0 {
				continue
			}
			val := ""
			if i < len(row) {
				val = row[i]
			}
			*columns[col].field(&emp) = val
		}
		if !emp.HasName() {
			result.Unnamed++
			continue
		}
		parsed = append(parsed, emp)
	}
	if len(parsed) == 0 {
		return nil, ErrNoValidRecords
	}

	names := make(map[string]struct{}, len(existing)+len(parsed))
	merged := make([]domain.Employee, len(existing), len(existing)+len(parsed))
	copy(merged, existing)
	for _, e := range existing {
		names[e.FullName] = struct{}{}
	}
	for _, e := range parsed {
		if _, dup := names[e.FullName]; dup {
			result.Duplicates++
			continue
		}
		names[e.FullName] = struct{}{}
		merged = append(merged, e)
		result.Added = append(result.Added, e)
	}
	result.Merged = merged
	return result, nil
}

// readRows decodes data to UTF-8, honouring any byte-order mark, and tokenizes it with a
// quote-aware reader. Blank lines are dropped.
func readRows(data []byte) ([][]string, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyFile, err)
	}
	decoded = bytes.TrimPrefix(decoded, []byte(bom))

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEmptyFile, err)
		}
		if blank(rec) {
			continue
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func cleanHeader(h string) string {
	h = strings.TrimSpace(strings.TrimPrefix(h, bom))
	if len(h) >= 2 && strings.HasPrefix(h, `"`) && strings.HasSuffix(h, `"`) {
		h = h[1 : len(h)-1]
	}
	return strings.TrimSpace(h)
}

// blank matches lines holding only whitespace, which the reader returns as one field.
func blank(rec []string) bool {
	return len(rec) == 1 && strings.TrimSpace(rec[0]) == ""
}
