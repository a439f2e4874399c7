package repository

import (
	"context"
	"errors"

	"github.com/martijn/trainhub/internal/api/util"
)

var ErrNotFound = errors.New("record not found")

// Record is one stored entity as JSON-compatible values: string, float64,
// int64, bool or nil.
type Record = map[string]any

// RecordFilter embeds ListFilter for generic query/order/pagination
type RecordFilter struct {
	util.ListFilter
}

// RecordRepository stores the records of one resource. Ids are assigned on
// insert and never reused.
type RecordRepository interface {
	Insert(ctx context.Context, rec Record) (Record, error)
	FindByID(ctx context.Context, id int64) (Record, error)
	// Patch sets the given keys; a nil value clears the key.
	Patch(ctx context.Context, id int64, fields Record) (Record, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter RecordFilter) ([]Record, error)
	Count(ctx context.Context, filter RecordFilter) (int, error)
}
