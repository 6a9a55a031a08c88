package catalog

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/freshroute/admin-api/internal/application/importer"
)

// maxCreateConcurrency mirrors the user-import policy: one create call in
// flight at a time, to stay inside the backend's request limits.
const maxCreateConcurrency = 1

// The submission loop is written for one call in flight; this fails to
// compile if the limit is raised without reworking it.
var _ [1]struct{} = [maxCreateConcurrency]struct{}{}

type ImportProductsInput struct {
	Data      []byte
	HasHeader bool
}

type ImportProducts interface {
	Execute(ctx context.Context, in ImportProductsInput) (importer.Result, error)
}

type productCreator interface {
	Execute(ctx context.Context, in CreateProductInput) (ProductOutput, error)
}

type importProducts struct {
	creator productCreator
	logger  *zap.Logger
}

func NewImportProducts(creator productCreator, logger *zap.Logger) ImportProducts {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &importProducts{creator: creator, logger: logger}
}

func (uc *importProducts) Execute(ctx context.Context, in ImportProductsInput) (importer.Result, error) {
	rows, err := importer.ParseCSV(bytes.NewReader(in.Data), in.HasHeader)
	if err != nil {
		return importer.Result{}, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}

	result := importer.NewResult()

	type pending struct {
		row    importer.Row
		record CreateProductInput
	}
	var queue []pending

	for _, row := range rows {
		if msg := validateProductRow(row); msg != "" {
			result.AddError(row.Index, msg, row.Fields)
			continue
		}

		record, convErr := convertProductRow(row)
		if convErr != nil {
			result.AddError(row.Index, convErr.Error(), row.Fields)
			continue
		}

		queue = append(queue, pending{row: row, record: record})
	}

	for _, item := range queue {
		if _, createErr := uc.creator.Execute(ctx, item.record); createErr != nil {
			result.AddError(item.row.Index, createErr.Error(), item.row.Fields)
		} else {
			result.SuccessCount++
		}
	}

	result.SortErrors()

	uc.logger.Info("product import finished",
		zap.Int("rows", len(rows)),
		zap.Int("succeeded", result.SuccessCount),
		zap.Int("failed", result.FailedCount()),
	)

	return result, nil
}

func validateProductRow(row importer.Row) string {
	if !row.Has("sku") {
		return "SKU is required"
	}
	if !row.Has("name") {
		return "Name is required"
	}
	if row.Has("price") {
		price, err := decimal.NewFromString(row.Get("price"))
		if err != nil || price.IsNegative() {
			return "Price must be a non-negative number"
		}
	}
	if row.Has("stock") {
		stock, err := strconv.Atoi(row.Get("stock"))
		if err != nil || stock < 0 {
			return "Stock must be a non-negative integer"
		}
	}
	return ""
}

// convertProductRow applies the defaulting rules: unit piece, price 0,
// stock 0, active true, whenever the column is absent or blank. The local
// display name column is optional.
func convertProductRow(row importer.Row) (record CreateProductInput, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected row data: %v", r)
		}
	}()

	active := true
	if row.Has("is_active") {
		active = strings.EqualFold(row.Get("is_active"), "true")
	}

	record = CreateProductInput{
		SKU:       row.Get("sku"),
		Name:      row.Get("name"),
		LocalName: row.Get("name_local"),
		Unit:      row.Get("unit"),
		Price:     row.Get("price"),
		Stock:     row.Get("stock"),
		Active:    active,
	}
	return record, nil
}
