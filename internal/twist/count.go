package twist

import (
	"encoding/json"
	"fmt"
)

// ParseInboxCount extracts the integer from an inbox/get_count response.
// The endpoint has returned both a bare integer and {"count": N} across API
// revisions; both shapes are accepted.
func ParseInboxCount(body []byte) (int, error) {
	var n int
	if err := json.Unmarshal(body, &n); err == nil {
		return n, nil
	}

	var obj struct {
		Count *int `json:"count"`
	}
	if err := json.Unmarshal(body, &obj); err == nil && obj.Count != nil {
		return *obj.Count, nil
	}

	return 0, fmt.Errorf("unexpected inbox count response: %s", body)
}
