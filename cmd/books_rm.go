// ABOUTME: Remove subcommand for the book collection
// ABOUTME: Deletes a record on the server

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

var booksRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a book",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runBooksRm(ctx, os.Stdout, args[0]); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	booksCmd.AddCommand(booksRmCmd)
}

// runBooksRm deletes the record and returns exit code
func runBooksRm(ctx context.Context, w io.Writer, id string) int {
	c, sess := newSession()
	store := books.NewStore(c)

	if err := store.Delete(ctx, id); err != nil {
		return fail(w, sess, err)
	}

	fmt.Fprintf(w, "Removed book %s\n", id)
	return 0
}
