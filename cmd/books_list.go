// ABOUTME: List subcommand for the book collection
// ABOUTME: Fetches and prints the full server-side listing

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

var booksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all books",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runBooksList(ctx, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	booksCmd.AddCommand(booksListCmd)
}

// runBooksList fetches the collection and returns exit code
func runBooksList(ctx context.Context, w io.Writer) int {
	c, sess := newSession()
	store := books.NewStore(c)

	list, err := store.LoadAll(ctx)
	if err != nil {
		return fail(w, sess, err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatBookListJSON(list))
	} else {
		fmt.Fprintln(w, formatBookListHuman(list))
	}
	return 0
}
