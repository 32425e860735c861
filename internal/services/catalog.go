package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/verseworks/poem-service/internal/model"
	"github.com/verseworks/poem-service/internal/store"
)

// digestLimit caps how many poems a category contributes to the
// recommended digest. Insertion order is the only ranking signal.
const digestLimit = 5

// CatalogService is the read-side resolver joining poems, authors and
// categories into the aggregate views the API returns, plus the catalog
// creation operations.
type CatalogService struct {
	store store.Store
}

func NewCatalogService(s store.Store) *CatalogService { return &CatalogService{store: s} }

// RecommendedDigest returns one entry per category in insertion order, each
// carrying at most the first five poems of that category. Categories with
// no poems appear with an empty list.
func (s *CatalogService) RecommendedDigest(ctx context.Context) ([]model.DigestEntry, error) {
	cats, err := s.store.Categories().List(ctx)
	if err != nil {
		return nil, err
	}

	digest := make([]model.DigestEntry, 0, len(cats))
	for _, cat := range cats {
		poems, err := s.store.Poems().ListByCategory(ctx, cat.ID)
		if err != nil {
			return nil, err
		}
		if len(poems) > digestLimit {
			poems = poems[:digestLimit]
		}
		top, err := s.summarize(ctx, poems)
		if err != nil {
			return nil, err
		}
		digest = append(digest, model.DigestEntry{Category: *cat, TopPoems: top})
	}
	return digest, nil
}

// PoemDetail resolves a poem with its author and category fully joined.
// A missing poem is ErrNotFound; a poem whose stored authorId or categoryId
// fails to resolve is ErrBrokenReference.
func (s *CatalogService) PoemDetail(ctx context.Context, id int) (*model.PoemDetail, error) {
	poem, err := s.store.Poems().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, poem)
}

// PoemPreview resolves like PoemDetail but keeps only the first half of the
// content. The cut counts characters, not bytes, so multibyte content never
// truncates mid-rune. Zero-length content yields an empty preview.
func (s *CatalogService) PoemPreview(ctx context.Context, id int) (*model.PoemDetail, error) {
	detail, err := s.PoemDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	runes := []rune(detail.Content)
	detail.Content = string(runes[:len(runes)/2])
	return detail, nil
}

// ThematicView resolves a category by slug and lists all of its poems with
// authors joined, in insertion order.
func (s *CatalogService) ThematicView(ctx context.Context, slug string) (*model.ThematicView, error) {
	cat, err := s.store.Categories().GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	poems, err := s.store.Poems().ListByCategory(ctx, cat.ID)
	if err != nil {
		return nil, err
	}
	summaries, err := s.summarize(ctx, poems)
	if err != nil {
		return nil, err
	}
	return &model.ThematicView{Category: *cat, Poems: summaries}, nil
}

// ListAuthors returns all authors in insertion order.
func (s *CatalogService) ListAuthors(ctx context.Context) ([]*model.Author, error) {
	return s.store.Authors().List(ctx)
}

// GetAuthor returns an author by id.
func (s *CatalogService) GetAuthor(ctx context.Context, id int) (*model.Author, error) {
	return s.store.Authors().GetByID(ctx, id)
}

// ListCategories returns all categories in insertion order.
func (s *CatalogService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.store.Categories().List(ctx)
}

// CreatePoem appends a poem. Matching the legacy service there is no
// existence check on authorId or categoryId.
func (s *CatalogService) CreatePoem(ctx context.Context, title, content string, authorID, categoryID int) (*model.Poem, error) {
	return s.store.Poems().Append(ctx, &model.Poem{
		Title:      title,
		Content:    content,
		AuthorID:   authorID,
		CategoryID: categoryID,
	})
}

// CreateAuthor appends an author, failing with ErrConflict when the name is
// taken.
func (s *CatalogService) CreateAuthor(ctx context.Context, name string) (*model.Author, error) {
	return s.store.Authors().Append(ctx, &model.Author{Name: name})
}

// CreateCategory appends a category with the slug derived as the lowercase
// name, failing with ErrConflict when the name is taken.
func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	return s.store.Categories().Append(ctx, &model.Category{
		Name: name,
		Slug: strings.ToLower(name),
	})
}

func (s *CatalogService) join(ctx context.Context, poem *model.Poem) (*model.PoemDetail, error) {
	author, err := s.store.Authors().GetByID(ctx, poem.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("poem %d author %d: %w", poem.ID, poem.AuthorID, model.ErrBrokenReference)
	}
	cat, err := s.store.Categories().GetByID(ctx, poem.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("poem %d category %d: %w", poem.ID, poem.CategoryID, model.ErrBrokenReference)
	}
	return &model.PoemDetail{
		ID:       poem.ID,
		Title:    poem.Title,
		Author:   author.Name,
		Content:  poem.Content,
		Category: *cat,
	}, nil
}

func (s *CatalogService) summarize(ctx context.Context, poems []*model.Poem) ([]model.PoemSummary, error) {
	out := make([]model.PoemSummary, 0, len(poems))
	for _, p := range poems {
		author, err := s.store.Authors().GetByID(ctx, p.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("poem %d author %d: %w", p.ID, p.AuthorID, model.ErrBrokenReference)
		}
		out = append(out, model.PoemSummary{PoemID: p.ID, Title: p.Title, Author: author.Name})
	}
	return out, nil
}
