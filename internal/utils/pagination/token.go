package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is used when the caller does not ask for a page size.
	DefaultLimit = 20
	// MaxLimit caps the page size.
	MaxLimit = 100
)

// ClampLimit bounds a requested page size to [1, MaxLimit], defaulting to DefaultLimit.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// EncodeSeqToken creates a base64 encoded token pointing after the given posting sequence.
func EncodeSeqToken(seq int64) string {
	return EncodeMultiFieldToken("seq", strconv.FormatInt(seq, 10))
}

// DecodeSeqToken parses a token produced by EncodeSeqToken.
func DecodeSeqToken(token string) (int64, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	if len(parts) != 2 || parts[0] != "seq" {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	seq, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (seq parse): %w", err)
	}
	return seq, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}
