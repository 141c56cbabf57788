// ABOUTME: Root command for the booktrack CLI
// ABOUTME: Handles global flags and wiring of the core components

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rantiputri/booktrack/internal/api"
	"github.com/rantiputri/booktrack/internal/session"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	jsonOutput bool
)

const defaultAPIURL = "http://localhost:5000"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "booktrack",
	Short: "Terminal client for your book library",
	Long: `booktrack is a terminal client for a remote book library.

Log in once; the session token is kept in your config directory and attached
to every request until you log out.

Environment Variables:
  BOOKTRACK_API_URL  Library API URL (default: http://localhost:5000)`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Library API URL (overrides BOOKTRACK_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("BOOKTRACK_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newSession wires the gateway and session manager for one command run
func newSession() (*api.Client, *session.Manager) {
	c := api.New(GetAPIURL())
	sess := session.NewManager(c, session.NewStore(session.DefaultConfigDir()))
	c.SetTokenSource(sess.Token)
	return c, sess
}

// fail prints a gateway error, clearing the session when it reports an
// authentication failure, and returns the error exit code.
func fail(w io.Writer, sess *session.Manager, err error) int {
	fmt.Fprintf(w, "Error: %v\n", err)
	if sess.InvalidateOn(err) {
		fmt.Fprintln(w, "Session expired. Run booktrack login to sign in again.")
	}
	return 2
}
