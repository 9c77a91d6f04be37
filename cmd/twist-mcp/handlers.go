package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/twist-mcp/internal/twist"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// requireThreadID reads the required numeric "id" parameter.
func requireThreadID(request mcp.CallToolRequest) (int, bool) {
	id := request.GetInt("id", 0)
	return id, id > 0
}

// withCorrelation returns a client whose log entries carry a fresh
// correlation ID for this tool call.
func withCorrelation(c *twist.Client) *twist.Client {
	return c.WithCorrelationId(uuid.NewString())
}

// workspaceValue converts the configured workspace id to a number when it is
// numeric, so JSON bodies carry it the way the API documents.
func workspaceValue(id string) interface{} {
	if n, err := strconv.Atoi(id); err == nil {
		return n
	}
	return id
}

// parseIDList converts string-typed id parameters to integers.
func parseIDList(vals []string) ([]int, error) {
	ids := make([]int, 0, len(vals))
	for _, v := range vals {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", v)
		}
		ids = append(ids, n)
	}
	return ids, nil
}

// --- Inbox handlers ---

func handleInboxGet(c *twist.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tc := withCorrelation(c)
		if tc.WorkspaceID() == "" {
			return errorResult("Error: TWIST_WORKSPACE_ID environment variable is required"), nil
		}

		params := url.Values{}
		params.Set("workspace_id", tc.WorkspaceID())
		if limit := request.GetInt("limit", 0); limit > 0 {
			params.Set("limit", strconv.Itoa(limit))
		}
		if ts := request.GetInt("newer_than_ts", 0); ts > 0 {
			params.Set("newer_than_ts", strconv.Itoa(ts))
		}
		if ts := request.GetInt("older_than_ts", 0); ts > 0 {
			params.Set("older_than_ts", strconv.Itoa(ts))
		}
		if af := request.GetString("archive_filter", ""); af != "" {
			params.Set("archive_filter", af)
		}
		if ob := request.GetString("order_by", ""); ob != "" {
			params.Set("order_by", ob)
		}
		if ex := request.GetStringSlice("exclude_thread_ids", nil); len(ex) > 0 {
			ids, err := parseIDList(ex)
			if err != nil {
				return errorResult(fmt.Sprintf("Error: exclude_thread_ids: %v", err)), nil
			}
			params.Set("exclude_thread_ids", joinIDs(ids))
		}

		body, err := tc.Get(ctx, "inbox/get", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting inbox: %v", err)), nil
		}

		var threads []twist.Thread
		if err := json.Unmarshal(body, &threads); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}
		if len(threads) == 0 {
			return textResult("No inbox threads found"), nil
		}

		return textResult(formatThreadList("Inbox", threads)), nil
	}
}

func handleInboxArchiveAll(c *twist.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tc := withCorrelation(c)
		if tc.WorkspaceID() == "" {
			return errorResult("Error: TWIST_WORKSPACE_ID environment variable is required"), nil
		}

		reqBody := map[string]interface{}{
			"workspace_id": workspaceValue(tc.WorkspaceID()),
		}
		if ts := request.GetInt("older_than_ts", 0); ts > 0 {
			reqBody["older_than_ts"] = ts
		}

		if _, err := tc.Post(ctx, "inbox/archive_all", reqBody); err != nil {
			return errorResult(fmt.Sprintf("Error archiving inbox: %v", err)), nil
		}

		if ts := request.GetInt("older_than_ts", 0); ts > 0 {
			return textResult(fmt.Sprintf("Successfully archived inbox threads older than %d", ts)), nil
		}
		return textResult("Successfully archived all inbox threads"), nil
	}
}

func handleInboxArchive(c *twist.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, ok := requireThreadID(request)
		if !ok {
			return errorResult("Error: id parameter is required"), nil
		}

		tc := withCorrelation(c)
		if _, err := tc.Post(ctx, "inbox/archive", map[string]interface{}{"id": id}); err != nil {
			return errorResult(fmt.Sprintf("Error archiving thread: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Successfully archived thread with ID: %d", id)), nil
	}
}

func handleInboxUnarchive(c *twist.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, ok := requireThreadID(request)
		if !ok {
			return errorResult("Error: id parameter is required"), nil
		}

		tc := withCorrelation(c)
		if _, err := tc.Post(ctx, "inbox/unarchive", map[string]interface{}{"id": id}); err != nil {
			return errorResult(fmt.Sprintf("Error unarchiving thread: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Successfully unarchived thread with ID: %d", id)), nil
	}
}

func handleInboxMarkAllRead(c *twist.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tc := withCorrelation(c)
		if tc.WorkspaceID() == "" {
			return errorResult("Error: TWIST_WORKSPACE_ID environment variable is required"), nil
		}

		reqBody := map[string]interface{}{
			"workspace_id": workspaceValue(tc.WorkspaceID()),
		}
		if _, err := tc.Post(ctx, "inbox/mark_all_read", reqBody); err != nil {
			return errorResult(fmt.Sprintf("Error marking inbox as read: %v", err)), nil
		}

		return textResult("Successfully marked all inbox threads as read"), nil
	}
}

func handleInboxGetCount(c *twist.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tc := withCorrelation(c)
		if tc.WorkspaceID() == "" {
			return errorResult("Error: TWIST_WORKSPACE_ID environment variable is required"), nil
		}

		params := url.Values{}
		params.Set("workspace_id", tc.WorkspaceID())

		body, err := tc.Get(ctx, "inbox/get_count", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting inbox count: %v", err)), nil
		}

		count, err := twist.ParseInboxCount(body)
		if err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(strconv.Itoa(count)), nil
	}
}

// --- Thread handlers ---

func handleThreadsGetOne(c *twist.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, ok := requireThreadID(request)
		if !ok {
			return errorResult("Error: id parameter is required"), nil
		}

		tc := withCorrelation(c)
		params := url.Values{}
		params.Set("id", strconv.Itoa(id))

		body, err := tc.Get(ctx, "threads/getone", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting thread: %v", err)), nil
		}

		var thread twist.Thread
		if err := json.Unmarshal(body, &thread); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatThread(&thread)), nil
	}
}

func handleThreadsGet(c *twist.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		channelID := request.GetInt("channel_id", 0)
		if channelID <= 0 {
			return errorResult("Error: channel_id parameter is required"), nil
		}

		tc := withCorrelation(c)
		params := url.Values{}
		params.Set("channel_id", strconv.Itoa(channelID))
		if request.GetBool("as_ids", false) {
			params.Set("as_ids", "true")
		}
		if fb := request.GetString("filter_by", ""); fb != "" {
			params.Set("filter_by", fb)
		}
		if limit := request.GetInt("limit", 0); limit > 0 {
			params.Set("limit", strconv.Itoa(limit))
		}
		if ts := request.GetInt("newer_than_ts", 0); ts > 0 {
			params.Set("newer_than_ts", strconv.Itoa(ts))
		}
		if ts := request.GetInt("older_than_ts", 0); ts > 0 {
			params.Set("older_than_ts", strconv.Itoa(ts))
		}
		if id := request.GetInt("before_id", 0); id > 0 {
			params.Set("before_id", strconv.Itoa(id))
		}
		if id := request.GetInt("after_id", 0); id > 0 {
			params.Set("after_id", strconv.Itoa(id))
		}
		if request.GetBool("is_pinned", false) {
			params.Set("is_pinned", "true")
		}
		if request.GetBool("is_starred", false) {
			params.Set("is_starred", "true")
		}
		if ob := request.GetString("order_by", ""); ob != "" {
			params.Set("order_by", ob)
		}
		if ex := request.GetStringSlice("exclude_thread_ids", nil); len(ex) > 0 {
			ids, err := parseIDList(ex)
			if err != nil {
				return errorResult(fmt.Sprintf("Error: exclude_thread_ids: %v", err)), nil
			}
			params.Set("exclude_thread_ids", joinIDs(ids))
		}

		body, err := tc.Get(ctx, "threads/get", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting threads: %v", err)), nil
		}

		if request.GetBool("as_ids", false) {
			// Bare id list — pass the upstream body through
			return textResult(strings.TrimSpace(string(body))), nil
		}

		var threads []twist.Thread
		if err := json.Unmarshal(body, &threads); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}
		if len(threads) == 0 {
			return textResult("No threads found"), nil
		}

		return textResult(formatThreadList(fmt.Sprintf("Threads in channel %d", channelID), threads)), nil
	}
}

func handleThreadsAdd(c *twist.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		channelID := request.GetInt("channel_id", 0)
		if channelID <= 0 {
			return errorResult("Error: channel_id parameter is required"), nil
		}
		title, err := request.RequireString("title")
		if err != nil || title == "" {
			return errorResult("Error: title parameter is required"), nil
		}
		content, err := request.RequireString("content")
		if err != nil || content == "" {
			return errorResult("Error: content parameter is required"), nil
		}

		reqBody := map[string]interface{}{
			"channel_id": channelID,
			"title":      title,
			"content":    content,
		}
		if r := request.GetString("recipients", ""); r != "" {
			if strings.EqualFold(r, "EVERYONE") {
				reqBody["recipients"] = "EVERYONE"
			} else {
				ids, err := parseIDList(strings.Split(r, ","))
				if err != nil {
					return errorResult(fmt.Sprintf("Error: recipients: %v", err)), nil
				}
				reqBody["recipients"] = ids
			}
		}
		for _, key := range []string{"direct_mentions", "direct_group_mentions", "groups"} {
			if vals := request.GetStringSlice(key, nil); len(vals) > 0 {
				ids, err := parseIDList(vals)
				if err != nil {
					return errorResult(fmt.Sprintf("Error: %s: %v", key, err)), nil
				}
				reqBody[key] = ids
			}
		}
		if request.GetBool("send_as_integration", false) {
			reqBody["send_as_integration"] = true
		}

		tc := withCorrelation(c)
		body, err := tc.Post(ctx, "threads/add", reqBody)
		if err != nil {
			return errorResult(fmt.Sprintf("Error adding thread: %v", err)), nil
		}

		var thread twist.Thread
		if err := json.Unmarshal(body, &thread); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatThread(&thread)), nil
	}
}

func handleThreadsUpdate(c *twist.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, ok := requireThreadID(request)
		if !ok {
			return errorResult("Error: id parameter is required"), nil
		}

		reqBody := map[string]interface{}{"id": id}
		if t := request.GetString("title", ""); t != "" {
			reqBody["title"] = t
		}
		if content := request.GetString("content", ""); content != "" {
			reqBody["content"] = content
		}
		for _, key := range []string{"direct_mentions", "direct_group_mentions"} {
			if vals := request.GetStringSlice(key, nil); len(vals) > 0 {
				ids, err := parseIDList(vals)
				if err != nil {
					return errorResult(fmt.Sprintf("Error: %s: %v", key, err)), nil
				}
				reqBody[key] = ids
			}
		}

		tc := withCorrelation(c)
		body, err := tc.Post(ctx, "threads/update", reqBody)
		if err != nil {
			return errorResult(fmt.Sprintf("Error updating thread: %v", err)), nil
		}

		var thread twist.Thread
		if err := json.Unmarshal(body, &thread); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatThread(&thread)), nil
	}
}

func handleThreadsRemove(c *twist.Client) server.ToolHandlerFunc {
	return threadActionHandler(c, "threads/remove", "Successfully removed thread with ID: %d")
}

func handleThreadsStar(c *twist.Client) server.ToolHandlerFunc {
	return threadActionHandler(c, "threads/star", "Successfully starred thread with ID: %d")
}

func handleThreadsUnstar(c *twist.Client) server.ToolHandlerFunc {
	return threadActionHandler(c, "threads/unstar", "Successfully unstarred thread with ID: %d")
}

func handleThreadsPin(c *twist.Client) server.ToolHandlerFunc {
	return threadActionHandler(c, "threads/pin", "Successfully pinned thread with ID: %d")
}

func handleThreadsUnpin(c *twist.Client) server.ToolHandlerFunc {
	return threadActionHandler(c, "threads/unpin", "Successfully unpinned thread with ID: %d")
}

// threadActionHandler covers the single-id POST endpoints that return no
// body worth formatting.
func threadActionHandler(c *twist.Client, endpoint, successFormat string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, ok := requireThreadID(request)
		if !ok {
			return errorResult("Error: id parameter is required"), nil
		}

		tc := withCorrelation(c)
		if _, err := tc.Post(ctx, endpoint, map[string]interface{}{"id": id}); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return textResult(fmt.Sprintf(successFormat, id)), nil
	}
}

func handleThreadsMoveToChannel(c *twist.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, ok := requireThreadID(request)
		if !ok {
			return errorResult("Error: id parameter is required"), nil
		}
		toChannel := request.GetInt("to_channel", 0)
		if toChannel <= 0 {
			return errorResult("Error: to_channel parameter is required"), nil
		}

		tc := withCorrelation(c)
		reqBody := map[string]interface{}{"id": id, "to_channel": toChannel}
		if _, err := tc.Post(ctx, "threads/move_to_channel", reqBody); err != nil {
			return errorResult(fmt.Sprintf("Error moving thread: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Successfully moved thread with ID: %d to channel: %d", id, toChannel)), nil
	}
}

func handleThreadsGetUnread(c *twist.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tc := withCorrelation(c)
		if tc.WorkspaceID() == "" {
			return errorResult("Error: TWIST_WORKSPACE_ID environment variable is required"), nil
		}

		params := url.Values{}
		params.Set("workspace_id", tc.WorkspaceID())

		body, err := tc.Get(ctx, "threads/get_unread", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting unread threads: %v", err)), nil
		}

		var unread []twist.UnreadThread
		if err := json.Unmarshal(body, &unread); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}
		if len(unread) == 0 {
			return textResult("No unread threads found"), nil
		}

		return textResult(formatUnreadThreads(unread)), nil
	}
}

func handleThreadsMarkRead(c *twist.Client) server.ToolHandlerFunc {
	return markHandler(c, "threads/mark_read", "Successfully marked thread with ID: %d as read up to comment index: %d")
}

func handleThreadsMarkUnread(c *twist.Client) server.ToolHandlerFunc {
	return markHandler(c, "threads/mark_unread", "Successfully marked thread with ID: %d as unread from comment index: %d")
}

func handleThreadsMarkUnreadForOthers(c *twist.Client) server.ToolHandlerFunc {
	return markHandler(c, "threads/mark_unread_for_others", "Successfully marked thread with ID: %d as unread for others from comment index: %d")
}

// markHandler covers the read-state endpoints taking id and obj_index.
// obj_index may be -1 (whole thread), so only its presence is validated.
func markHandler(c *twist.Client, endpoint, successFormat string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, ok := requireThreadID(request)
		if !ok {
			return errorResult("Error: id parameter is required"), nil
		}
		objIndex, err := request.RequireInt("obj_index")
		if err != nil {
			return errorResult("Error: obj_index parameter is required"), nil
		}

		tc := withCorrelation(c)
		reqBody := map[string]interface{}{"id": id, "obj_index": objIndex}
		if _, err := tc.Post(ctx, endpoint, reqBody); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return textResult(fmt.Sprintf(successFormat, id, objIndex)), nil
	}
}

func handleThreadsMarkAllRead(c *twist.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tc := withCorrelation(c)

		reqBody := map[string]interface{}{}
		channelID := request.GetInt("channel_id", 0)
		workspaceID := request.GetInt("workspace_id", 0)

		switch {
		case channelID > 0:
			reqBody["channel_id"] = channelID
		case workspaceID > 0:
			reqBody["workspace_id"] = workspaceID
		case tc.WorkspaceID() != "":
			reqBody["workspace_id"] = workspaceValue(tc.WorkspaceID())
		default:
			return errorResult("Error: Either workspace_id or channel_id is required"), nil
		}

		if _, err := tc.Post(ctx, "threads/mark_all_read", reqBody); err != nil {
			return errorResult(fmt.Sprintf("Error marking all threads as read: %v", err)), nil
		}

		if channelID > 0 {
			return textResult(fmt.Sprintf("Successfully marked all threads in channel ID: %d as read", channelID)), nil
		}
		return textResult(fmt.Sprintf("Successfully marked all threads in workspace ID: %v as read", reqBody["workspace_id"])), nil
	}
}

func handleThreadsClearUnread(c *twist.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tc := withCorrelation(c)
		if tc.WorkspaceID() == "" {
			return errorResult("Error: TWIST_WORKSPACE_ID environment variable is required"), nil
		}

		reqBody := map[string]interface{}{
			"workspace_id": workspaceValue(tc.WorkspaceID()),
		}
		if _, err := tc.Post(ctx, "threads/clear_unread", reqBody); err != nil {
			return errorResult(fmt.Sprintf("Error clearing unread threads: %v", err)), nil
		}

		return textResult("Successfully cleared unread threads"), nil
	}
}

func handleThreadsMute(c *twist.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, ok := requireThreadID(request)
		if !ok {
			return errorResult("Error: id parameter is required"), nil
		}
		minutes := request.GetInt("minutes", 0)
		if minutes <= 0 {
			return errorResult("Error: minutes parameter is required"), nil
		}

		tc := withCorrelation(c)
		reqBody := map[string]interface{}{"id": id, "minutes": minutes}
		body, err := tc.Post(ctx, "threads/mute", reqBody)
		if err != nil {
			return errorResult(fmt.Sprintf("Error muting thread: %v", err)), nil
		}

		var thread twist.Thread
		if err := json.Unmarshal(body, &thread); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatThread(&thread)), nil
	}
}

func handleThreadsUnmute(c *twist.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, ok := requireThreadID(request)
		if !ok {
			return errorResult("Error: id parameter is required"), nil
		}

		tc := withCorrelation(c)
		body, err := tc.Post(ctx, "threads/unmute", map[string]interface{}{"id": id})
		if err != nil {
			return errorResult(fmt.Sprintf("Error unmuting thread: %v", err)), nil
		}

		var thread twist.Thread
		if err := json.Unmarshal(body, &thread); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatThread(&thread)), nil
	}
}

// joinIDs renders an id list as the comma-separated form the GET endpoints
// accept.
func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
