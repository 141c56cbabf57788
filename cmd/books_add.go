// ABOUTME: Add subcommand for the book collection
// ABOUTME: Submits a new draft and prints the created record

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rantiputri/booktrack/internal/api"
	"github.com/rantiputri/booktrack/internal/books"
	"github.com/spf13/cobra"
)

var (
	addTitle       string
	addAuthor      string
	addGenre       string
	addDescription string
	addPages       string
)

var booksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new book",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runBooksAdd(ctx, os.Stdout, addTitle, addAuthor, addGenre, addDescription, addPages); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	booksCmd.AddCommand(booksAddCmd)
	booksAddCmd.Flags().StringVar(&addTitle, "title", "", "Book title")
	booksAddCmd.Flags().StringVar(&addAuthor, "author", "", "Book author")
	booksAddCmd.Flags().StringVar(&addGenre, "genre", "", "Book genre")
	booksAddCmd.Flags().StringVar(&addDescription, "description", "", "Book description")
	booksAddCmd.Flags().StringVar(&addPages, "pages", "0", "Total pages")
}

// runBooksAdd submits the draft and returns exit code
func runBooksAdd(ctx context.Context, w io.Writer, title, author, genre, description, pages string) int {
	totalPages, err := books.ParsePages(pages)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	c, sess := newSession()
	store := books.NewStore(c)

	created, err := store.Create(ctx, &api.Draft{
		Title:       title,
		Author:      author,
		Genre:       genre,
		Description: description,
		TotalPages:  totalPages,
	})
	if err != nil {
		return fail(w, sess, err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatBookJSON(created))
	} else {
		fmt.Fprintf(w, "Added %q (id %s)\n", created.Title, created.ID)
	}
	return 0
}
