package importer

import "strings"

// Row is one data line of an uploaded file, keyed by header column name.
// Index is the 1-based position of the row among the data rows (the header
// does not count); every error reported downstream references this index,
// never a renumbered one.
type Row struct {
	Index  int
	Fields map[string]string
}

// Get returns the trimmed value of a column, or "" when the column is
// absent.
func (r Row) Get(column string) string {
	return strings.TrimSpace(r.Fields[column])
}

// Has reports whether the column exists and is non-blank.
func (r Row) Has(column string) bool {
	return r.Get(column) != ""
}

// Present reports whether the column appeared in the file at all, even when
// the cell is blank. Some defaulting rules distinguish a blank cell from a
// column that was never supplied.
func (r Row) Present(column string) bool {
	_, ok := r.Fields[column]
	return ok
}
