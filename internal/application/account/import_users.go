package account

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/freshroute/admin-api/internal/application/importer"
	domain "github.com/freshroute/admin-api/internal/domain/account"
)

// maxCreateConcurrency caps how many create calls may be in flight during a
// batch. The auth service rate-limits account provisioning, so records are
// submitted strictly one at a time; raise this only after confirming the
// backend's limits and reworking the submission loop.
const maxCreateConcurrency = 1

// The submission loop is written for one call in flight; this fails to
// compile if the limit is raised without reworking it.
var _ [1]struct{} = [maxCreateConcurrency]struct{}{}

type ImportUsersInput struct {
	Data      []byte
	HasHeader bool
}

type ImportUsers interface {
	Execute(ctx context.Context, in ImportUsersInput) (importer.Result, error)
}

type userCreator interface {
	Execute(ctx context.Context, in CreateUserInput) (CreateUserOutput, error)
}

type importUsers struct {
	creator userCreator
	logger  *zap.Logger
}

func NewImportUsers(creator userCreator, logger *zap.Logger) ImportUsers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &importUsers{creator: creator, logger: logger}
}

// Execute runs the full pipeline: parse, per-row validate, convert with
// defaults, then create each record sequentially. Row errors from any stage
// are collected against the row's original 1-based position; only an
// unparseable file aborts the run.
func (uc *importUsers) Execute(ctx context.Context, in ImportUsersInput) (importer.Result, error) {
	rows, err := importer.ParseCSV(bytes.NewReader(in.Data), in.HasHeader)
	if err != nil {
		return importer.Result{}, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}

	result := importer.NewResult()

	type pending struct {
		row    importer.Row
		record CreateUserInput
	}
	var queue []pending

	for _, row := range rows {
		if msg := validateUserRow(row); msg != "" {
			result.AddError(row.Index, msg, row.Fields)
			continue
		}

		record, convErr := convertUserRow(row)
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

	uc.logger.Info("user import finished",
		zap.Int("rows", len(rows)),
		zap.Int("succeeded", result.SuccessCount),
		zap.Int("failed", result.FailedCount()),
	)

	return result, nil
}

func validateUserRow(row importer.Row) string {
	if !row.Has("name") {
		return "Name is required"
	}
	if row.Has("email") && !domain.ValidEmail(row.Get("email")) {
		return "Invalid email format"
	}
	if row.Has("role") {
		if _, err := domain.ParseRole(row.Get("role")); err != nil {
			return "Invalid role: must be admin, customer or driver"
		}
	}
	return ""
}

// convertUserRow maps a validated row into a create request, applying the
// defaulting rules: role falls back to customer, a missing email is
// synthesized downstream. Status defaults to active only when the is_active
// column was never supplied; once the column is present, any value other
// than "true" means inactive, a blank cell included. An unexpected panic
// while converting is attributed to the row rather than re-thrown.
func convertUserRow(row importer.Row) (record CreateUserInput, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected row data: %v", r)
		}
	}()

	active := true
	if row.Present("is_active") {
		active = strings.EqualFold(row.Get("is_active"), "true")
	}

	record = CreateUserInput{
		Name:        row.Get("name"),
		Email:       row.Get("email"),
		Role:        row.Get("role"),
		Active:      active,
		PhoneNumber: row.Get("phone_number"),
		Address:     row.Get("address"),
		City:        row.Get("city"),
		ZipCode:     row.Get("zip_code"),
		Notes:       row.Get("notes"),
	}
	return record, nil
}
