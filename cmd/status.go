// ABOUTME: Status command for the booktrack CLI
// ABOUTME: Shows login state and collection size at a glance

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rantiputri/booktrack/internal/api"
	"github.com/rantiputri/booktrack/internal/books"
	"github.com/rantiputri/booktrack/internal/profile"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session and library status",
	Long:  `Check who is logged in and how many books the library holds.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runStatus(ctx, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// runStatus fetches profile and collection concurrently and returns exit code
func runStatus(ctx context.Context, w io.Writer) int {
	c, sess := newSession()

	if sess.Token() == "" {
		fmt.Fprintln(w, "Not logged in. Run booktrack login first.")
		return 1
	}

	mgr := profile.NewManager(c, sess)
	store := books.NewStore(c)

	var user *api.User
	var list []api.Book

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = mgr.Load(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		list, err = store.LoadAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fail(w, sess, err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatStatusJSON(GetAPIURL(), user, len(list)))
	} else {
		fmt.Fprintln(w, formatStatusHuman(GetAPIURL(), user, len(list)))
	}
	return 0
}

// formatStatusHuman formats the status for human readability
func formatStatusHuman(url string, user *api.User, bookCount int) string {
	return fmt.Sprintf(`Server:   %s
User:     %s <%s>
Books:    %d`, url, user.Username, user.Email, bookCount)
}

// formatStatusJSON formats the status as JSON
func formatStatusJSON(url string, user *api.User, bookCount int) string {
	output := map[string]interface{}{
		"server":     url,
		"username":   user.Username,
		"email":      user.Email,
		"book_count": bookCount,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
