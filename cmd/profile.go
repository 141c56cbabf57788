// ABOUTME: Profile commands for the booktrack CLI
// ABOUTME: Shows and edits the authenticated user's profile

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
	"github.com/rantiputri/booktrack/internal/profile"
	"github.com/spf13/cobra"
)

var (
	profileUsername string
	profileEmail    string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runProfile(ctx, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit your profile",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runProfileEdit(ctx, os.Stdout, profileUsername, profileEmail, cmd); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileEditCmd)
	profileEditCmd.Flags().StringVar(&profileUsername, "username", "", "New username")
	profileEditCmd.Flags().StringVar(&profileEmail, "email", "", "New email address")
}

// runProfile fetches and prints the profile, returning exit code
func runProfile(ctx context.Context, w io.Writer) int {
	c, sess := newSession()
	mgr := profile.NewManager(c, sess)

	user, err := mgr.Load(ctx)
	if err != nil {
		return fail(w, sess, err)
	}
	if user == nil {
		fmt.Fprintln(w, "Not logged in. Run booktrack login first.")
		return 1
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatProfileJSON(user))
	} else {
		fmt.Fprintln(w, formatProfileHuman(user))
	}
	return 0
}

// runProfileEdit updates the profile, returning exit code. Fields not passed
// as flags keep their current value; both are always sent.
func runProfileEdit(ctx context.Context, w io.Writer, username, email string, cmd *cobra.Command) int {
	c, sess := newSession()
	mgr := profile.NewManager(c, sess)

	current, err := mgr.Load(ctx)
	if err != nil {
		return fail(w, sess, err)
	}
	if current == nil {
		fmt.Fprintln(w, "Not logged in. Run booktrack login first.")
		return 1
	}

	if !cmd.Flags().Changed("username") {
		username = current.Username
	}
	if !cmd.Flags().Changed("email") {
		email = current.Email
	}

	updated, err := mgr.Save(ctx, current.ID, username, email)
	if err != nil {
		return fail(w, sess, err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatProfileJSON(updated))
	} else {
		fmt.Fprintln(w, "Profile updated successfully.")
	}
	return 0
}

// formatProfileHuman formats the profile for human readability
func formatProfileHuman(u *api.User) string {
	return fmt.Sprintf(`Username: %s
Email:    %s
ID:       %s`, u.Username, u.Email, u.ID)
}

// formatProfileJSON formats the profile as JSON
func formatProfileJSON(u *api.User) string {
	data, _ := json.MarshalIndent(u, "", "  ")
	return string(data)
}
