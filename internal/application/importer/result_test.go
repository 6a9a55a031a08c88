package importer_test

import (
	"encoding/json"
	"testing"

	"github.com/freshroute/admin-api/internal/application/importer"
)

func TestNewResultMarshalsEmptyErrorList(t *testing.T) {
	t.Parallel()

	result := importer.NewResult()
	result.SuccessCount = 3

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := `{"success_count":3,"errors":[]}`
	if string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}
}

func TestRowPresentDistinguishesBlankFromAbsent(t *testing.T) {
	t.Parallel()

	row := importer.Row{Index: 1, Fields: map[string]string{"name": "Alice", "is_active": ""}}

	if !row.Present("is_active") {
		t.Fatal("expected blank column to count as present")
	}
	if row.Has("is_active") {
		t.Fatal("expected blank column to fail Has")
	}
	if row.Present("email") {
		t.Fatal("expected missing column to be absent")
	}
}
