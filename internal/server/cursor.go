package server

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"liberty/internal/repository"
)

// Feed cursors are opaque to clients: base64url over "<unixnano>:<id>", the
// (created_at, id) position of the last item on the page. Clients must treat
// the token as a black box; only its round-trip behavior is stable.

func encodeFeedCursor(cur repository.FeedCursor) string {
	raw := fmt.Sprintf("%d:%d", cur.CreatedAt.UTC().UnixNano(), cur.ID)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeFeedCursor(token string) (*repository.FeedCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("malformed cursor")
	}

	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed cursor")
	}

	nanos, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed cursor")
	}
	id, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("malformed cursor")
	}

	return &repository.FeedCursor{
		CreatedAt: time.Unix(0, nanos).UTC(),
		ID:        uint(id),
	}, nil
}
