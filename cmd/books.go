// ABOUTME: Parent command for book collection operations
// ABOUTME: Hosts shared formatting helpers for book output

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rantiputri/booktrack/internal/api"
	"github.com/spf13/cobra"
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Manage your book collection",
	Long:  `List, show, add, edit, and remove books in your library.`,
}

func init() {
	rootCmd.AddCommand(booksCmd)
}

// formatBookHuman formats one book for human readability
func formatBookHuman(b *api.Book) string {
	return fmt.Sprintf(`Title:       %s
Author:      %s
Genre:       %s
Description: %s
Pages:       %d
ID:          %s`, b.Title, b.Author, b.Genre, b.Description, b.TotalPages, b.ID)
}

// formatBookJSON formats one book as JSON
func formatBookJSON(b *api.Book) string {
	data, _ := json.MarshalIndent(b, "", "  ")
	return string(data)
}

// formatBookListHuman formats the collection for human readability
func formatBookListHuman(books []api.Book) string {
	if len(books) == 0 {
		return "No books in your library yet. Add one with booktrack books add."
	}

	var sb strings.Builder
	for i, b := range books {
		fmt.Fprintf(&sb, "%-10s %s by %s", b.ID, b.Title, b.Author)
		if b.Genre != "" {
			fmt.Fprintf(&sb, " [%s]", b.Genre)
		}
		if b.TotalPages > 0 {
			fmt.Fprintf(&sb, " (%d pages)", b.TotalPages)
		}
		if i < len(books)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// formatBookListJSON formats the collection as JSON
func formatBookListJSON(books []api.Book) string {
	data, _ := json.MarshalIndent(books, "", "  ")
	return string(data)
}
