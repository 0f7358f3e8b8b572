package list

import (
	"context"

	"Feira/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, l *List) error
	Delete(ctx context.Context, id, userID ulid.ULID) error
	GetByIdAndUser(ctx context.Context, id, userID ulid.ULID) (*List, error)
	GetByUserId(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*List, int64, error)
	ReplaceItems(ctx context.Context, id, userID ulid.ULID, items []Item) error
	DeleteByUserId(ctx context.Context, userID ulid.ULID) error
}
