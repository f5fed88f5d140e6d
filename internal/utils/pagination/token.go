package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

const (
	// DefaultLimit is the page size used when the caller does not specify one.
	DefaultLimit = 50
	// MaxLimit caps the page size a caller can request.
	MaxLimit = 200
)

// Normalize applies the default and maximum page size and clamps a negative
// offset to zero.
func Normalize(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// EncodeOffsetToken creates an opaque base64 page token from the offset of
// the next page. This keeps list responses consistent across repositories.
func EncodeOffsetToken(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

// DecodeOffsetToken parses a page token back into an offset.
func DecodeOffsetToken(token string) (int, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	offset, err := strconv.Atoi(string(decodedBytes))
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (offset parse): %w", err)
	}
	if offset < 0 {
		return 0, fmt.Errorf("invalid pagination token format (negative offset)")
	}
	return offset, nil
}

// NextToken returns the token of the following page, or an empty string when
// the current page was not full and no further page can exist.
func NextToken(offset, limit, pageLen int) string {
	if pageLen < limit {
		return ""
	}
	return EncodeOffsetToken(offset + limit)
}
