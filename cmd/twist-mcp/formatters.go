package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/bobmcallan/twist-mcp/internal/twist"
)

// formatTS renders a Unix timestamp for display, or a dash when unset.
func formatTS(ts int64) string {
	if ts <= 0 {
		return "-"
	}
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04")
}

// truncate shortens a snippet for table display.
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// threadFlags renders the archived/starred/pinned markers for a thread.
func threadFlags(t *twist.Thread) string {
	var flags []string
	if bool(t.IsArchived) {
		flags = append(flags, "archived")
	}
	if bool(t.Starred) {
		flags = append(flags, "starred")
	}
	if bool(t.Pinned) {
		flags = append(flags, "pinned")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ", ")
}

// formatThreadList formats threads as a markdown table.
func formatThreadList(title string, threads []twist.Thread) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	sb.WriteString(fmt.Sprintf("%d thread(s)\n\n", len(threads)))
	sb.WriteString("| ID | Title | Channel | Comments | Updated | Flags |\n")
	sb.WriteString("|----|-------|---------|----------|---------|-------|\n")
	for i := range threads {
		t := &threads[i]
		sb.WriteString(fmt.Sprintf("| %d | %s | %d | %d | %s | %s |\n",
			t.ID, truncate(t.Title, 60), t.ChannelID, t.CommentCount,
			formatTS(t.LastUpdatedTS), threadFlags(t)))
	}

	// Snippets below the table, where they have room
	hasSnippets := false
	for i := range threads {
		if threads[i].Snippet != "" {
			hasSnippets = true
			break
		}
	}
	if hasSnippets {
		sb.WriteString("\n## Latest Activity\n\n")
		for i := range threads {
			t := &threads[i]
			if t.Snippet == "" {
				continue
			}
			sb.WriteString(fmt.Sprintf("- **%d** (%s): %s\n", t.ID, truncate(t.Title, 40), truncate(t.Snippet, 120)))
		}
	}

	return sb.String()
}

// formatThread formats a single thread as a markdown detail block.
func formatThread(t *twist.Thread) string {
	var sb strings.Builder

	title := t.Title
	if title == "" {
		title = fmt.Sprintf("Thread %d", t.ID)
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	sb.WriteString("| Field | Value |\n")
	sb.WriteString("|-------|-------|\n")
	sb.WriteString(fmt.Sprintf("| ID | %d |\n", t.ID))
	sb.WriteString(fmt.Sprintf("| Channel | %d |\n", t.ChannelID))
	if t.WorkspaceID > 0 {
		sb.WriteString(fmt.Sprintf("| Workspace | %d |\n", t.WorkspaceID))
	}
	if t.CreatorName != "" {
		sb.WriteString(fmt.Sprintf("| Creator | %s |\n", t.CreatorName))
	} else if t.Creator > 0 {
		sb.WriteString(fmt.Sprintf("| Creator | %d |\n", t.Creator))
	}
	sb.WriteString(fmt.Sprintf("| Posted | %s |\n", formatTS(t.PostedTS)))
	sb.WriteString(fmt.Sprintf("| Updated | %s |\n", formatTS(t.LastUpdatedTS)))
	sb.WriteString(fmt.Sprintf("| Comments | %d |\n", t.CommentCount))
	sb.WriteString(fmt.Sprintf("| Flags | %s |\n", threadFlags(t)))
	if t.MutedUntilTS > 0 {
		sb.WriteString(fmt.Sprintf("| Muted until | %s |\n", formatTS(t.MutedUntilTS)))
	}

	if t.Content != "" {
		sb.WriteString("\n")
		sb.WriteString(t.Content)
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatUnreadThreads formats threads/get_unread entries as a markdown table.
func formatUnreadThreads(unread []twist.UnreadThread) string {
	var sb strings.Builder

	sb.WriteString("# Unread Threads\n\n")
	sb.WriteString(fmt.Sprintf("%d unread thread(s)\n\n", len(unread)))
	sb.WriteString("| Thread | Channel | Last Read Index |\n")
	sb.WriteString("|--------|---------|-----------------|\n")
	for _, u := range unread {
		sb.WriteString(fmt.Sprintf("| %d | %d | %d |\n", u.ThreadID, u.ChannelID, u.ObjIndex))
	}
	sb.WriteString("\nUse `twist_threads_getone` with a thread id for the full conversation.\n")

	return sb.String()
}
