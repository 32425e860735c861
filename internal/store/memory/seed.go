package memory

import (
	"context"

	"github.com/verseworks/poem-service/internal/model"
	"github.com/verseworks/poem-service/internal/store"
)

// SeedDemo loads a small fixture catalog so a fresh process serves
// meaningful responses. Append order matters: ids are assigned from it and
// the digest and thematic views expose it directly.
func SeedDemo(ctx context.Context, s store.Store) error {
	for _, a := range []model.Author{
		{Name: "Emily Dickinson"},
		{Name: "Robert Frost"},
		{Name: "Sara Teasdale"},
	} {
		if _, err := s.Authors().Append(ctx, &a); err != nil {
			return err
		}
	}

	for _, c := range []model.Category{
		{Name: "Love", Slug: "love"},
		{Name: "Nature", Slug: "nature"},
	} {
		if _, err := s.Categories().Append(ctx, &c); err != nil {
			return err
		}
	}

	for _, p := range []model.Poem{
		{Title: "Heart, we will forget him!", AuthorID: 1, CategoryID: 1,
			Content: "Heart, we will forget him!\nYou and I, to-night!\nYou may forget the warmth he gave,\nI will forget the light."},
		{Title: "The Look", AuthorID: 3, CategoryID: 1,
			Content: "Strephon kissed me in the spring,\nRobin in the fall,\nBut Colin only looked at me\nAnd never kissed at all."},
		{Title: "Love's Secret", AuthorID: 2, CategoryID: 1,
			Content: "Never seek to tell thy love,\nLove that never told can be;\nFor the gentle wind does move\nSilently, invisibly."},
		{Title: "Stopping by Woods", AuthorID: 2, CategoryID: 2,
			Content: "Whose woods these are I think I know.\nHis house is in the village though;\nHe will not see me stopping here\nTo watch his woods fill up with snow."},
		{Title: "A Bird came down the Walk", AuthorID: 1, CategoryID: 2,
			Content: "A Bird came down the Walk—\nHe did not know I saw—\nHe bit an Angleworm in halves\nAnd ate the fellow, raw."},
		{Title: "Barter", AuthorID: 3, CategoryID: 2,
			Content: "Life has loveliness to sell,\nAll beautiful and splendid things,\nBlue waves whitened on a cliff,\nSoaring fire that sways and sings."},
	} {
		if _, err := s.Poems().Append(ctx, &p); err != nil {
			return err
		}
	}

	for _, u := range []model.User{
		{UserName: "reader", Password: "reader"},
		{UserName: "editor", Password: "editor"},
	} {
		if _, err := s.Users().Append(ctx, &u); err != nil {
			return err
		}
	}
	return nil
}
