package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	apiclient "github.com/verseworks/poem-service/client"
)

func marshalIndent(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func init() {
	// categories
	categoriesCmd := &cobra.Command{Use: "categories", Short: "Category operations"}
	categoriesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := apiclient.New(apiFlag).Categories(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cats)
		},
	})
	categoriesCmd.AddCommand(&cobra.Command{
		Use:   "show SLUG",
		Short: "Show a category with all of its poems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := apiclient.New(apiFlag).ThematicView(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(view)
		},
	})
	var categoryName string
	createCategoryCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := apiclient.New(apiFlag).CreateCategory(cmd.Context(), categoryName)
			if err != nil {
				return err
			}
			return printJSON(cat)
		},
	}
	createCategoryCmd.Flags().StringVarP(&categoryName, "name", "n", "", "Category name (required)")
	_ = createCategoryCmd.MarkFlagRequired("name")
	categoriesCmd.AddCommand(createCategoryCmd)
	rootCmd.AddCommand(categoriesCmd)

	// authors
	authorsCmd := &cobra.Command{Use: "authors", Short: "Author operations"}
	authorsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List authors",
		RunE: func(cmd *cobra.Command, args []string) error {
			authors, err := apiclient.New(apiFlag).Authors(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(authors)
		},
	})
	var authorName string
	createAuthorCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an author",
		RunE: func(cmd *cobra.Command, args []string) error {
			author, err := apiclient.New(apiFlag).CreateAuthor(cmd.Context(), authorName)
			if err != nil {
				return err
			}
			return printJSON(author)
		},
	}
	createAuthorCmd.Flags().StringVarP(&authorName, "name", "n", "", "Author name (required)")
	_ = createAuthorCmd.MarkFlagRequired("name")
	authorsCmd.AddCommand(createAuthorCmd)
	rootCmd.AddCommand(authorsCmd)

	// poems
	poemsCmd := &cobra.Command{Use: "poems", Short: "Poem operations"}
	poemsCmd.AddCommand(&cobra.Command{
		Use:   "recommended",
		Short: "Show the recommended digest",
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, err := apiclient.New(apiFlag).RecommendedPoems(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(digest)
		},
	})
	var poemID int
	showPoemCmd := &cobra.Command{
		Use:   "show",
		Short: "Show a poem with author and category",
		RunE: func(cmd *cobra.Command, args []string) error {
			poem, err := apiclient.New(apiFlag).Poem(cmd.Context(), poemID)
			if err != nil {
				return err
			}
			return printJSON(poem)
		},
	}
	showPoemCmd.Flags().IntVarP(&poemID, "id", "i", 0, "Poem ID (required)")
	_ = showPoemCmd.MarkFlagRequired("id")
	poemsCmd.AddCommand(showPoemCmd)

	var title, content string
	var authorID, categoryID int
	createPoemCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a poem",
		RunE: func(cmd *cobra.Command, args []string) error {
			poem, err := apiclient.New(apiFlag).CreatePoem(cmd.Context(), title, content, authorID, categoryID)
			if err != nil {
				return err
			}
			return printJSON(poem)
		},
	}
	createPoemCmd.Flags().StringVarP(&title, "title", "t", "", "Poem title (required)")
	createPoemCmd.Flags().StringVarP(&content, "content", "c", "", "Poem content (required)")
	createPoemCmd.Flags().IntVar(&authorID, "author", 0, "Author ID (required)")
	createPoemCmd.Flags().IntVar(&categoryID, "category", 0, "Category ID (required)")
	_ = createPoemCmd.MarkFlagRequired("title")
	_ = createPoemCmd.MarkFlagRequired("content")
	_ = createPoemCmd.MarkFlagRequired("author")
	_ = createPoemCmd.MarkFlagRequired("category")
	poemsCmd.AddCommand(createPoemCmd)
	rootCmd.AddCommand(poemsCmd)
}
