// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pbozzay/kanbanist/internal/model"
)

const (
	// ListSeparator is the separator line for list sections.
	ListSeparator = "------------"
)

// FormatItem formats an item line for the backlog.
// Format: "{N:>4}  {CONTENT}[  (due DATE)]\n"
func FormatItem(w io.Writer, num int, item model.Item) {
	fmt.Fprintf(w, "%4d  %s%s\n", num, normalizeContent(item.Content), dueSuffix(item))
}

// FormatItemIndented formats an item line for a named list section.
func FormatItemIndented(w io.Writer, num int, item model.Item) {
	fmt.Fprintf(w, "    %4d  %s%s\n", num, normalizeContent(item.Content), dueSuffix(item))
}

// FormatItemWithLetter formats an item line prefixed with its list letter,
// matching the reference accepted by done, edit and move.
func FormatItemWithLetter(w io.Writer, letter rune, num int, item model.Item) {
	ref := fmt.Sprintf("%c%d", letter, num)
	fmt.Fprintf(w, "%8s  %s%s\n", ref, normalizeContent(item.Content), dueSuffix(item))
}

// FormatListHeader formats a list section header.
func FormatListHeader(w io.Writer, title string, isBacklog bool) {
	displayTitle := normalizeListTitle(title)
	if isBacklog {
		displayTitle += " [backlog]"
	}
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintln(w, displayTitle)
	fmt.Fprintln(w, ListSeparator)
}

// FormatListName formats a list name for the lists command.
func FormatListName(w io.Writer, list model.List) {
	title := normalizeListTitle(list.Title)
	switch {
	case list.IsBacklog():
		title += " [backlog]"
	case model.IsDateListID(list.ID):
		title += " [" + list.ID + "]"
	}
	fmt.Fprintf(w, "%s (%d)\n", title, len(list.Items))
}

func dueSuffix(item model.Item) string {
	if item.Due == nil || item.Due.Date == "" {
		return ""
	}
	return "  (due " + item.Due.Date + ")"
}

// normalizeContent normalizes item content for display.
// - Empty or whitespace-only content becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeContent(content string) string {
	content = strings.ReplaceAll(content, "\r", " ")
	content = strings.ReplaceAll(content, "\n", " ")

	if strings.TrimSpace(content) == "" {
		return "(untitled)"
	}
	return content
}

// normalizeListTitle normalizes a list title for display.
// Empty or whitespace-only titles become "(untitled)".
func normalizeListTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
