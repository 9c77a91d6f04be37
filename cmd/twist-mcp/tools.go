package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/twist-mcp/internal/twist"
)

// registerTools registers all MCP tools on the server, wiring each to a
// handler that calls the Twist REST API via the client.
func registerTools(s *server.MCPServer, c *twist.Client) {
	// Inbox
	s.AddTool(createInboxGetTool(), handleInboxGet(c))
	s.AddTool(createInboxArchiveAllTool(), handleInboxArchiveAll(c))
	s.AddTool(createInboxArchiveTool(), handleInboxArchive(c))
	s.AddTool(createInboxUnarchiveTool(), handleInboxUnarchive(c))
	s.AddTool(createInboxMarkAllReadTool(), handleInboxMarkAllRead(c))
	s.AddTool(createInboxGetCountTool(), handleInboxGetCount(c))

	// Threads
	s.AddTool(createThreadsGetOneTool(), handleThreadsGetOne(c))
	s.AddTool(createThreadsGetTool(), handleThreadsGet(c))
	s.AddTool(createThreadsAddTool(), handleThreadsAdd(c))
	s.AddTool(createThreadsUpdateTool(), handleThreadsUpdate(c))
	s.AddTool(createThreadsRemoveTool(), handleThreadsRemove(c))
	s.AddTool(createThreadsStarTool(), handleThreadsStar(c))
	s.AddTool(createThreadsUnstarTool(), handleThreadsUnstar(c))
	s.AddTool(createThreadsPinTool(), handleThreadsPin(c))
	s.AddTool(createThreadsUnpinTool(), handleThreadsUnpin(c))
	s.AddTool(createThreadsMoveToChannelTool(), handleThreadsMoveToChannel(c))
	s.AddTool(createThreadsGetUnreadTool(), handleThreadsGetUnread(c))
	s.AddTool(createThreadsMarkReadTool(), handleThreadsMarkRead(c))
	s.AddTool(createThreadsMarkUnreadTool(), handleThreadsMarkUnread(c))
	s.AddTool(createThreadsMarkUnreadForOthersTool(), handleThreadsMarkUnreadForOthers(c))
	s.AddTool(createThreadsMarkAllReadTool(), handleThreadsMarkAllRead(c))
	s.AddTool(createThreadsClearUnreadTool(), handleThreadsClearUnread(c))
	s.AddTool(createThreadsMuteTool(), handleThreadsMute(c))
	s.AddTool(createThreadsUnmuteTool(), handleThreadsUnmute(c))
}

// --- Inbox tool definitions ---

func createInboxGetTool() mcp.Tool {
	return mcp.NewTool("twist_inbox_get",
		mcp.WithDescription("Get the authenticated user's inbox threads for the configured workspace."),
		mcp.WithNumber("limit", mcp.Description("Limits the number of threads returned (default is 30, maximum is 500)")),
		mcp.WithNumber("newer_than_ts", mcp.Description("Limits threads to those newer than the specified Unix time")),
		mcp.WithNumber("older_than_ts", mcp.Description("Limits threads to those older than the specified Unix time")),
		mcp.WithString("archive_filter", mcp.Description("Filter threads by is_archived flag: 'all', 'archived', or 'active' (default)")),
		mcp.WithString("order_by", mcp.Description("Order of threads: 'desc' (default) or 'asc', based on last_updated attribute")),
		mcp.WithArray("exclude_thread_ids", mcp.WithStringItems(), mcp.Description("Thread IDs to exclude from results")),
	)
}

func createInboxArchiveAllTool() mcp.Tool {
	return mcp.NewTool("twist_inbox_archive_all",
		mcp.WithDescription("Archive all inbox threads in the configured workspace, optionally only those older than a Unix time cutoff."),
		mcp.WithNumber("older_than_ts", mcp.Description("Only archive threads older than the specified Unix time")),
	)
}

func createInboxArchiveTool() mcp.Tool {
	return mcp.NewTool("twist_inbox_archive",
		mcp.WithDescription("Archive a single inbox thread."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("The id of the thread")),
	)
}

func createInboxUnarchiveTool() mcp.Tool {
	return mcp.NewTool("twist_inbox_unarchive",
		mcp.WithDescription("Unarchive a single inbox thread."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("The id of the thread")),
	)
}

func createInboxMarkAllReadTool() mcp.Tool {
	return mcp.NewTool("twist_inbox_mark_all_read",
		mcp.WithDescription("Mark all inbox threads in the configured workspace as read."),
	)
}

func createInboxGetCountTool() mcp.Tool {
	return mcp.NewTool("twist_inbox_get_count",
		mcp.WithDescription("Get the number of inbox threads in the configured workspace. Returns the count as an integer."),
	)
}

// --- Thread tool definitions ---

func createThreadsGetOneTool() mcp.Tool {
	return mcp.NewTool("twist_threads_getone",
		mcp.WithDescription("Get a thread object by id."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("The id of the thread")),
	)
}

func createThreadsGetTool() mcp.Tool {
	return mcp.NewTool("twist_threads_get",
		mcp.WithDescription("Get all threads in a channel."),
		mcp.WithNumber("channel_id", mcp.Required(), mcp.Description("The id of the channel")),
		mcp.WithBoolean("as_ids", mcp.Description("If enabled, only the ids of the threads are returned")),
		mcp.WithString("filter_by", mcp.Description("A filter can be one of 'attached_to_me' or 'everyone'. Default is 'everyone'")),
		mcp.WithNumber("limit", mcp.Description("Limits the number of threads returned (default is 20, maximum is 500)")),
		mcp.WithNumber("newer_than_ts", mcp.Description("Limits threads to those newer than the specified Unix time")),
		mcp.WithNumber("older_than_ts", mcp.Description("Limits threads to those older than the specified Unix time")),
		mcp.WithNumber("before_id", mcp.Description("Limits threads to those with a lower id than specified")),
		mcp.WithNumber("after_id", mcp.Description("Limits threads to those with a higher id than specified")),
		mcp.WithBoolean("is_pinned", mcp.Description("If enabled, only pinned threads are returned")),
		mcp.WithBoolean("is_starred", mcp.Description("If enabled, only starred threads are returned")),
		mcp.WithString("order_by", mcp.Description("The order of the threads returned. Either 'desc' (default) or 'asc'")),
		mcp.WithArray("exclude_thread_ids", mcp.WithStringItems(), mcp.Description("Thread IDs to exclude from results")),
	)
}

func createThreadsAddTool() mcp.Tool {
	return mcp.NewTool("twist_threads_add",
		mcp.WithDescription("Add a new thread to a channel."),
		mcp.WithNumber("channel_id", mcp.Required(), mcp.Description("The id of the channel")),
		mcp.WithString("title", mcp.Required(), mcp.Description("The title of the new thread")),
		mcp.WithString("content", mcp.Required(), mcp.Description("The content of the new thread")),
		mcp.WithString("recipients", mcp.Description("Comma-separated user ids to attach to the thread, or 'EVERYONE'")),
		mcp.WithArray("direct_mentions", mcp.WithStringItems(), mcp.Description("The users that are directly mentioned")),
		mcp.WithArray("direct_group_mentions", mcp.WithStringItems(), mcp.Description("The groups that are directly mentioned")),
		mcp.WithArray("groups", mcp.WithStringItems(), mcp.Description("The groups that will be notified")),
		mcp.WithBoolean("send_as_integration", mcp.Description("Displays the integration as the thread creator")),
	)
}

func createThreadsUpdateTool() mcp.Tool {
	return mcp.NewTool("twist_threads_update",
		mcp.WithDescription("Update an existing thread."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("The id of the thread")),
		mcp.WithString("title", mcp.Description("The title of the thread")),
		mcp.WithString("content", mcp.Description("The content of the thread")),
		mcp.WithArray("direct_mentions", mcp.WithStringItems(), mcp.Description("The users that are directly mentioned")),
		mcp.WithArray("direct_group_mentions", mcp.WithStringItems(), mcp.Description("The groups that are directly mentioned")),
	)
}

func createThreadsRemoveTool() mcp.Tool {
	return mcp.NewTool("twist_threads_remove",
		mcp.WithDescription("Remove a thread."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("The id of the thread")),
	)
}

func createThreadsStarTool() mcp.Tool {
	return mcp.NewTool("twist_threads_star",
		mcp.WithDescription("Star a thread."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("The id of the thread")),
	)
}

func createThreadsUnstarTool() mcp.Tool {
	return mcp.NewTool("twist_threads_unstar",
		mcp.WithDescription("Unstar a thread."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("The id of the thread")),
	)
}

func createThreadsPinTool() mcp.Tool {
	return mcp.NewTool("twist_threads_pin",
		mcp.WithDescription("Pin a thread in its channel."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("The id of the thread")),
	)
}

func createThreadsUnpinTool() mcp.Tool {
	return mcp.NewTool("twist_threads_unpin",
		mcp.WithDescription("Unpin a thread."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("The id of the thread")),
	)
}

func createThreadsMoveToChannelTool() mcp.Tool {
	return mcp.NewTool("twist_threads_move_to_channel",
		mcp.WithDescription("Move a thread to a different channel."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("The id of the thread")),
		mcp.WithNumber("to_channel", mcp.Required(), mcp.Description("The target channel's id")),
	)
}

func createThreadsGetUnreadTool() mcp.Tool {
	return mcp.NewTool("twist_threads_get_unread",
		mcp.WithDescription("Get unread threads in the configured workspace for the authenticated user."),
	)
}

func createThreadsMarkReadTool() mcp.Tool {
	return mcp.NewTool("twist_threads_mark_read",
		mcp.WithDescription("Mark a thread as read."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("The id of the thread")),
		mcp.WithNumber("obj_index", mcp.Required(), mcp.Description("The index of the last known read message")),
	)
}

func createThreadsMarkUnreadTool() mcp.Tool {
	return mcp.NewTool("twist_threads_mark_unread",
		mcp.WithDescription("Mark a thread as unread."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("The id of the thread")),
		mcp.WithNumber("obj_index", mcp.Required(), mcp.Description("The index of the last unread message. A value of -1 marks the whole thread as unread")),
	)
}

func createThreadsMarkUnreadForOthersTool() mcp.Tool {
	return mcp.NewTool("twist_threads_mark_unread_for_others",
		mcp.WithDescription("Mark a thread as unread for others."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("The id of the thread")),
		mcp.WithNumber("obj_index", mcp.Required(), mcp.Description("The index of the last unread message. A value of -1 marks the whole thread as unread")),
	)
}

func createThreadsMarkAllReadTool() mcp.Tool {
	return mcp.NewTool("twist_threads_mark_all_read",
		mcp.WithDescription("Mark all threads in a workspace or channel as read. Uses the configured workspace when neither is given."),
		mcp.WithNumber("workspace_id", mcp.Description("The id of the workspace")),
		mcp.WithNumber("channel_id", mcp.Description("The id of the channel")),
	)
}

func createThreadsClearUnreadTool() mcp.Tool {
	return mcp.NewTool("twist_threads_clear_unread",
		mcp.WithDescription("Clear unread threads in the configured workspace."),
	)
}

func createThreadsMuteTool() mcp.Tool {
	return mcp.NewTool("twist_threads_mute",
		mcp.WithDescription("Mute a thread for a number of minutes."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("The id of the thread")),
		mcp.WithNumber("minutes", mcp.Required(), mcp.Description("The number of minutes to mute the thread")),
	)
}

func createThreadsUnmuteTool() mcp.Tool {
	return mcp.NewTool("twist_threads_unmute",
		mcp.WithDescription("Unmute a thread."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("The id of the thread")),
	)
}
