// Package memory provides a mutex-guarded in-memory implementation of the
// store interfaces. It is the only store the service ships with: the data
// model is append-only and process-scoped.
package memory

import (
	"context"
	"sync"

	"github.com/verseworks/poem-service/internal/model"
	"github.com/verseworks/poem-service/internal/store"
)

// Store keeps all four collections in insertion-ordered slices behind a
// single mutex. Id assignment and append happen in the same critical
// section, so two concurrent creations can never observe the same
// pre-increment length.
type Store struct {
	mu         sync.RWMutex
	users      []model.User
	authors    []model.Author
	categories []model.Category
	poems      []model.Poem
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

func (s *Store) Users() store.Users           { return (*users)(s) }
func (s *Store) Authors() store.Authors       { return (*authors)(s) }
func (s *Store) Categories() store.Categories { return (*categories)(s) }
func (s *Store) Poems() store.Poems           { return (*poems)(s) }

// users ----------------------------------------------------------------------

type users Store

func (u *users) Append(_ context.Context, in *model.User) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i := range u.users {
		if u.users[i].UserName == in.UserName {
			return nil, model.ErrConflict
		}
	}

	rec := *in
	rec.ID = len(u.users) + 1
	u.users = append(u.users, rec)
	out := rec
	return &out, nil
}

func (u *users) GetByID(_ context.Context, id int) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	for i := range u.users {
		if u.users[i].ID == id {
			out := u.users[i]
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

func (u *users) GetByUserName(_ context.Context, userName string) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	for i := range u.users {
		if u.users[i].UserName == userName {
			out := u.users[i]
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

func (u *users) List(_ context.Context) ([]*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]*model.User, 0, len(u.users))
	for i := range u.users {
		rec := u.users[i]
		out = append(out, &rec)
	}
	return out, nil
}

// authors --------------------------------------------------------------------

type authors Store

func (a *authors) Append(_ context.Context, in *model.Author) (*model.Author, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.authors {
		if a.authors[i].Name == in.Name {
			return nil, model.ErrConflict
		}
	}

	rec := *in
	rec.ID = len(a.authors) + 1
	a.authors = append(a.authors, rec)
	out := rec
	return &out, nil
}

func (a *authors) GetByID(_ context.Context, id int) (*model.Author, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for i := range a.authors {
		if a.authors[i].ID == id {
			out := a.authors[i]
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

func (a *authors) List(_ context.Context) ([]*model.Author, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]*model.Author, 0, len(a.authors))
	for i := range a.authors {
		rec := a.authors[i]
		out = append(out, &rec)
	}
	return out, nil
}

// categories -----------------------------------------------------------------

type categories Store

func (c *categories) Append(_ context.Context, in *model.Category) (*model.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.categories {
		if c.categories[i].Name == in.Name {
			return nil, model.ErrConflict
		}
	}

	rec := *in
	rec.ID = len(c.categories) + 1
	c.categories = append(c.categories, rec)
	out := rec
	return &out, nil
}

func (c *categories) GetByID(_ context.Context, id int) (*model.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.categories {
		if c.categories[i].ID == id {
			out := c.categories[i]
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

func (c *categories) GetBySlug(_ context.Context, slug string) (*model.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.categories {
		if c.categories[i].Slug == slug {
			out := c.categories[i]
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

func (c *categories) List(_ context.Context) ([]*model.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*model.Category, 0, len(c.categories))
	for i := range c.categories {
		rec := c.categories[i]
		out = append(out, &rec)
	}
	return out, nil
}

// poems ----------------------------------------------------------------------

type poems Store

func (p *poems) Append(_ context.Context, in *model.Poem) (*model.Poem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	rec := *in
	rec.ID = len(p.poems) + 1
	p.poems = append(p.poems, rec)
	out := rec
	return &out, nil
}

func (p *poems) GetByID(_ context.Context, id int) (*model.Poem, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for i := range p.poems {
		if p.poems[i].ID == id {
			out := p.poems[i]
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

func (p *poems) List(_ context.Context) ([]*model.Poem, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]*model.Poem, 0, len(p.poems))
	for i := range p.poems {
		rec := p.poems[i]
		out = append(out, &rec)
	}
	return out, nil
}

func (p *poems) ListByCategory(_ context.Context, categoryID int) ([]*model.Poem, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var out []*model.Poem
	for i := range p.poems {
		if p.poems[i].CategoryID == categoryID {
			rec := p.poems[i]
			out = append(out, &rec)
		}
	}
	return out, nil
}
