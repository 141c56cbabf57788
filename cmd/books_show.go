// ABOUTME: Show subcommand for a single book
// ABOUTME: Fetches one record by id and prints its fields

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rantiputri/booktrack/internal/books"
	"github.com/spf13/cobra"
)

var booksShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one book",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runBooksShow(ctx, os.Stdout, args[0]); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	booksCmd.AddCommand(booksShowCmd)
}

// runBooksShow fetches one record and returns exit code
func runBooksShow(ctx context.Context, w io.Writer, id string) int {
	c, sess := newSession()
	store := books.NewStore(c)

	book, err := store.LoadOne(ctx, id)
	if err != nil {
		return fail(w, sess, err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatBookJSON(book))
	} else {
		fmt.Fprintln(w, formatBookHuman(book))
	}
	return 0
}
