package store

import (
	"context"

	"github.com/verseworks/poem-service/internal/model"
)

// Store exposes the append-only collections backing the catalog and the
// session subsystem. There is no update or delete: every entity lives for
// the remainder of process uptime, and implementations must preserve
// insertion order on listing.
type Store interface {
	Users() Users
	Authors() Authors
	Categories() Categories
	Poems() Poems
}

// Users holds account records. UserName is unique at creation time.
type Users interface {
	// Append assigns the next id and stores the user. Returns
	// model.ErrConflict if the userName is taken.
	Append(ctx context.Context, u *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetByUserName(ctx context.Context, userName string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
}

// Authors holds author records. Name is unique at creation time.
type Authors interface {
	Append(ctx context.Context, a *model.Author) (*model.Author, error)
	GetByID(ctx context.Context, id int) (*model.Author, error)
	List(ctx context.Context) ([]*model.Author, error)
}

// Categories holds category records. Name is unique at creation time.
type Categories interface {
	Append(ctx context.Context, c *model.Category) (*model.Category, error)
	GetByID(ctx context.Context, id int) (*model.Category, error)
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
	List(ctx context.Context) ([]*model.Category, error)
}

// Poems holds poem records. No uniqueness constraint and, matching the
// legacy service, no referential check against authors or categories.
type Poems interface {
	Append(ctx context.Context, p *model.Poem) (*model.Poem, error)
	GetByID(ctx context.Context, id int) (*model.Poem, error)
	List(ctx context.Context) ([]*model.Poem, error)
	ListByCategory(ctx context.Context, categoryID int) ([]*model.Poem, error)
}
