// ABOUTME: Logout command for the booktrack CLI
// ABOUTME: Clears the persisted session token

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the session token",
	Long:  `Clear the persisted session token. Logging out while already logged out is fine.`,
	Run: func(cmd *cobra.Command, args []string) {
		if exitCode := runLogout(os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout clears the token and returns exit code
func runLogout(w io.Writer) int {
	_, sess := newSession()
	if err := sess.Logout(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintln(w, "Logged out")
	return 0
}
