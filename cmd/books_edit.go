// ABOUTME: Edit subcommand for the book collection
// ABOUTME: Fetches the record, merges flag overrides, and submits all fields

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
	editTitle       string
	editAuthor      string
	editGenre       string
	editDescription string
	editPages       string
)

var booksEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing book",
	Long: `Edit an existing book. Fields not overridden by flags keep their current
value; the full record is always submitted.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runBooksEdit(ctx, os.Stdout, args[0], cmd); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	booksCmd.AddCommand(booksEditCmd)
	booksEditCmd.Flags().StringVar(&editTitle, "title", "", "Book title")
	booksEditCmd.Flags().StringVar(&editAuthor, "author", "", "Book author")
	booksEditCmd.Flags().StringVar(&editGenre, "genre", "", "Book genre")
	booksEditCmd.Flags().StringVar(&editDescription, "description", "", "Book description")
	booksEditCmd.Flags().StringVar(&editPages, "pages", "", "Total pages")
}

// runBooksEdit merges overrides into the fetched record and returns exit code
func runBooksEdit(ctx context.Context, w io.Writer, id string, cmd *cobra.Command) int {
	c, sess := newSession()
	store := books.NewStore(c)

	current, err := store.LoadOne(ctx, id)
	if err != nil {
		return fail(w, sess, err)
	}

	draft := &api.Draft{
		Title:       current.Title,
		Author:      current.Author,
		Genre:       current.Genre,
		Description: current.Description,
		TotalPages:  current.TotalPages,
	}
	if cmd.Flags().Changed("title") {
		draft.Title = editTitle
	}
	if cmd.Flags().Changed("author") {
		draft.Author = editAuthor
	}
	if cmd.Flags().Changed("genre") {
		draft.Genre = editGenre
	}
	if cmd.Flags().Changed("description") {
		draft.Description = editDescription
	}
	if cmd.Flags().Changed("pages") {
		pages, err := books.ParsePages(editPages)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		draft.TotalPages = pages
	}

	updated, err := store.Update(ctx, id, draft)
	if err != nil {
		return fail(w, sess, err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatBookJSON(updated))
	} else {
		fmt.Fprintf(w, "Updated %q (id %s)\n", updated.Title, updated.ID)
	}
	return 0
}
