package importer

import "sort"

// RowError ties a failure to the original 1-based row that caused it,
// whichever stage produced it, together with the raw data of that row so
// the caller can show exactly what was rejected.
type RowError struct {
	Row     int               `json:"row"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data,omitempty"`
}

// Result is the aggregate outcome of one import run. Errors are kept in
// ascending row order; row numbers are never compacted after filtering.
type Result struct {
	SuccessCount int        `json:"success_count"`
	Errors       []RowError `json:"errors"`
}

// NewResult returns a Result whose error list serializes as an empty array
// rather than null when no row fails.
func NewResult() Result {
	return Result{Errors: []RowError{}}
}

func (r *Result) AddError(row int, message string, data map[string]string) {
	r.Errors = append(r.Errors, RowError{Row: row, Message: message, Data: data})
}

func (r *Result) FailedCount() int {
	return len(r.Errors)
}

// SortErrors restores ascending row order after validation-stage and
// creation-stage errors have been merged.
func (r *Result) SortErrors() {
	sort.Slice(r.Errors, func(i, j int) bool {
		return r.Errors[i].Row < r.Errors[j].Row
	})
}
