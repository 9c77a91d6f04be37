package twist

import (
	"bytes"
	"fmt"
)

// Flag is a boolean that tolerates the 0/1 integers some Twist API
// revisions emit in place of true/false.
type Flag bool

// UnmarshalJSON accepts true/false, 0/1, and null.
func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1":
		*f = true
	case "false", "0", "null":
		*f = false
	default:
		return fmt.Errorf("invalid flag value: %s", data)
	}
	return nil
}

// Thread is a Twist conversation record. Only the fields the formatters
// display are typed; unknown fields are ignored on decode, and the raw
// response body is what handlers return when no formatting applies.
type Thread struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	ChannelID      int64  `json:"channel_id"`
	WorkspaceID    int64  `json:"workspace_id"`
	Creator        int64  `json:"creator"`
	CreatorName    string `json:"creator_name"`
	Snippet        string `json:"snippet"`
	SnippetCreator int64  `json:"snippet_creator"`
	PostedTS       int64  `json:"posted_ts"`
	LastUpdatedTS  int64  `json:"last_updated_ts"`
	CommentCount   int    `json:"comment_count"`
	IsArchived     Flag   `json:"is_archived"`
	Starred        Flag   `json:"starred"`
	Pinned         Flag   `json:"pinned"`
	MutedUntilTS   int64  `json:"muted_until_ts"`
}

// UnreadThread is an entry from threads/get_unread: a pointer to a thread
// with the index of the last read message.
type UnreadThread struct {
	ThreadID  int64 `json:"thread_id"`
	ChannelID int64 `json:"channel_id"`
	ObjIndex  int64 `json:"obj_index"`
}
