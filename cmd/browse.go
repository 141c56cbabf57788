// ABOUTME: Browse command launching the interactive TUI
// ABOUTME: Wires the session, collection, and profile managers into the app

package cmd

import (
	"fmt"
	"os"

	"github.com/rantiputri/booktrack/internal/books"
	"github.com/rantiputri/booktrack/internal/debuglog"
	"github.com/rantiputri/booktrack/internal/profile"
	"github.com/rantiputri/booktrack/internal/session"
	"github.com/rantiputri/booktrack/internal/tui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse your library interactively",
	Long: `Open the interactive terminal UI. Starts at the book list when a saved
session exists, otherwise at the login form.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := debuglog.Init(session.DefaultConfigDir()); err == nil {
			defer debuglog.Close()
		}

		c, sess := newSession()
		store := books.NewStore(c)
		profiles := profile.NewManager(c, sess)

		if err := tui.Run(sess, store, profiles); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
