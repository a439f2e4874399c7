package repository

import (
	"context"

	"github.com/martijn/trainhub/internal/core/domain"
)

// ExtrasReader supplies locally kept fields by resource id. Lookups never
// fail: a missing entry yields the zero value.
type ExtrasReader interface {
	ClientExtras(id int64) domain.ClientExtras
	FormateurExtras(id int64) domain.FormateurExtras
}

type ExtrasRepository interface {
	ExtrasReader
	SetClientExtras(ctx context.Context, id int64, extras domain.ClientExtras) error
	SetFormateurExtras(ctx context.Context, id int64, extras domain.FormateurExtras) error
	DeleteClientExtras(ctx context.Context, id int64) error
	DeleteFormateurExtras(ctx context.Context, id int64) error
}
