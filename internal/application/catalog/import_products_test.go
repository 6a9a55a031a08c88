package catalog_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	app "github.com/freshroute/admin-api/internal/application/catalog"
)

type fakeProductCreator struct {
	inputs  []app.CreateProductInput
	failFor map[string]error
}

func (f *fakeProductCreator) Execute(ctx context.Context, in app.CreateProductInput) (app.ProductOutput, error) {
	f.inputs = append(f.inputs, in)
	if err, ok := f.failFor[in.SKU]; ok {
		return app.ProductOutput{}, err
	}
	return app.ProductOutput{SKU: in.SKU, Name: in.Name}, nil
}

func TestImportProductsDefaults(t *testing.T) {
	t.Parallel()

	creator := &fakeProductCreator{}
	uc := app.NewImportProducts(creator, nil)

	csv := "sku,name,unit,price,stock\nVEG-001,Carrot,,,\n"
	result, err := uc.Execute(context.Background(), app.ImportProductsInput{Data: []byte(csv), HasHeader: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.SuccessCount != 1 {
		t.Fatalf("expected 1 success, got %d", result.SuccessCount)
	}
	if result.Errors == nil {
		t.Fatal("expected empty error list, not nil")
	}

	got := creator.inputs[0]
	if got.Unit != "" || got.Price != "" || got.Stock != "" {
		t.Fatalf("expected blank columns passed through for defaulting, got %+v", got)
	}
	if !got.Active {
		t.Fatal("expected active default")
	}
}

func TestImportProductsValidation(t *testing.T) {
	t.Parallel()

	creator := &fakeProductCreator{}
	uc := app.NewImportProducts(creator, nil)

	csv := strings.Join([]string{
		"sku,name,price,stock",
		"VEG-001,Carrot,2.50,10",
		",Potato,1.00,5",
		"VEG-003,,1.00,5",
		"VEG-004,Onion,-1,5",
		"VEG-005,Leek,1.00,2.5",
	}, "\n")

	result, err := uc.Execute(context.Background(), app.ImportProductsInput{Data: []byte(csv), HasHeader: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.SuccessCount != 1 {
		t.Fatalf("expected 1 success, got %d", result.SuccessCount)
	}
	want := map[int]string{
		2: "SKU is required",
		3: "Name is required",
		4: "Price must be a non-negative number",
		5: "Stock must be a non-negative integer",
	}
	if len(result.Errors) != len(want) {
		t.Fatalf("expected %d errors, got %d", len(want), len(result.Errors))
	}
	for _, rowErr := range result.Errors {
		if want[rowErr.Row] != rowErr.Message {
			t.Fatalf("row %d: expected %q, got %q", rowErr.Row, want[rowErr.Row], rowErr.Message)
		}
	}
	if len(creator.inputs) != 1 {
		t.Fatalf("expected only the valid row to reach creation, got %d", len(creator.inputs))
	}
}

func TestImportProductsCreationFailureContinues(t *testing.T) {
	t.Parallel()

	creator := &fakeProductCreator{failFor: map[string]error{"VEG-002": errors.New("duplicate sku")}}
	uc := app.NewImportProducts(creator, nil)

	csv := "sku,name\nVEG-001,Carrot\nVEG-002,Potato\nVEG-003,Onion\n"
	result, err := uc.Execute(context.Background(), app.ImportProductsInput{Data: []byte(csv), HasHeader: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.SuccessCount != 2 {
		t.Fatalf("expected 2 successes, got %d", result.SuccessCount)
	}
	if len(result.Errors) != 1 || result.Errors[0].Row != 2 || result.Errors[0].Message != "duplicate sku" {
		t.Fatalf("unexpected errors: %+v", result.Errors)
	}
	if len(creator.inputs) != 3 {
		t.Fatalf("expected all 3 rows attempted, got %d", len(creator.inputs))
	}
}

func TestImportProductsMalformedFile(t *testing.T) {
	t.Parallel()

	uc := app.NewImportProducts(&fakeProductCreator{}, nil)

	_, err := uc.Execute(context.Background(), app.ImportProductsInput{Data: []byte("sku,name\nVEG-001\n"), HasHeader: true})
	if !errors.Is(err, app.ErrMalformedImport) {
		t.Fatalf("expected ErrMalformedImport, got %v", err)
	}
}

func TestImportProductsLocalName(t *testing.T) {
	t.Parallel()

	creator := &fakeProductCreator{}
	uc := app.NewImportProducts(creator, nil)

	csv := "sku,name,name_local\nVEG-001,Carrot,Sárgarépa\n"
	if _, err := uc.Execute(context.Background(), app.ImportProductsInput{Data: []byte(csv), HasHeader: true}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if creator.inputs[0].LocalName != "Sárgarépa" {
		t.Fatalf("expected local name carried through, got %q", creator.inputs[0].LocalName)
	}
}
