package model

// User represents an account in the system. Password is the stored secret
// compared verbatim at login.
type User struct {
	ID       int    `json:"id"`
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// Author is a poem writer. Name is unique.
type Author struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Category groups poems by theme. Name is unique; Slug is the lowercase
// form of Name and is the public lookup key.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Poem is the core catalog entity. AuthorID and CategoryID reference the
// author and category collections by id.
type Poem struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   int    `json:"authorId"`
	CategoryID int    `json:"categoryId"`
}

// PoemSummary is the projection used by the digest and thematic views.
type PoemSummary struct {
	PoemID int    `json:"poemId"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// DigestEntry pairs a category with its top poems.
type DigestEntry struct {
	Category Category      `json:"category"`
	TopPoems []PoemSummary `json:"topPoems"`
}

// PoemDetail is the fully joined poem view. The preview endpoint reuses it
// with truncated content.
type PoemDetail struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Content  string   `json:"content"`
	Category Category `json:"category"`
}

// ThematicView lists every poem in a category.
type ThematicView struct {
	Category Category      `json:"category"`
	Poems    []PoemSummary `json:"poems"`
}
