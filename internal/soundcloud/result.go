package soundcloud

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

// Result is a decoded JSON object returned by the API.
//
// The shape is owned by SoundCloud and is not validated here.
type Result map[string]any

// String returns the value at key rendered as a string, or "" when absent.
func (r Result) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Int returns the value at key as an integer, or 0 when absent or not numeric.
func (r Result) Int(key string) int64 {
	switch v := r[key].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return n
	case float64:
		return int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Token converts a token endpoint response to an [oauth2.Token].
//
// Returns nil when the response carries no access_token. The raw response is kept as Extra.
func (r Result) Token() *oauth2.Token {
	access := r.String("access_token")
	if access == "" {
		return nil
	}

	tok := &oauth2.Token{
		AccessToken:  access,
		TokenType:    r.String("token_type"),
		RefreshToken: r.String("refresh_token"),
	}
	if secs := r.Int("expires_in"); secs > 0 {
		tok.Expiry = time.Now().Add(time.Duration(secs) * time.Second)
	}

	return tok.WithExtra(map[string]any(r))
}

func decodeResult(body []byte) (Result, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Result{}, nil
	}

	var out Result
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}
