package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedFile marks a file that cannot be tokenized into rows at all
// (broken quoting, inconsistent column counts). It aborts the whole import
// before any row is validated, unlike per-row errors which never do.
var ErrMalformedFile = errors.New("malformed csv file")

// ParseCSV reads the whole file into an ordered slice of rows. When
// hasHeader is true the first line names the columns; otherwise columns are
// named column_1..column_N positionally. Blank lines are skipped and do not
// consume a row index.
func ParseCSV(r io.Reader, hasHeader bool) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var columns []string
	if hasHeader {
		for _, name := range records[0] {
			columns = append(columns, strings.ToLower(strings.TrimSpace(name)))
		}
		records = records[1:]
	} else {
		for i := range records[0] {
			columns = append(columns, fmt.Sprintf("column_%d", i+1))
		}
	}

	rows := make([]Row, 0, len(records))
	for i, record := range records {
		fields := make(map[string]string, len(columns))
		for j, column := range columns {
			if j < len(record) {
				fields[column] = record[j]
			}
		}
		rows = append(rows, Row{Index: i + 1, Fields: fields})
	}

	return rows, nil
}
