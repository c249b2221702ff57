package coingecko

import "fmt"

// UpstreamError covers transport failures and non-2xx responses from the
// market data API. Status is 0 when the request never got a response
// (timeout, connection refused, DNS failure).
type UpstreamError struct {
	Status int
	Reason string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("upstream request failed: %s", e.Reason)
	}
	return fmt.Sprintf("upstream returned HTTP %d: %s", e.Status, e.Reason)
}

// RateLimited reports whether the upstream rejected the call with HTTP 429.
func (e *UpstreamError) RateLimited() bool {
	return e.Status == 429
}

// MalformedError means the upstream answered 2xx but the body could not be
// decoded or is missing expected fields.
type MalformedError struct {
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed upstream response: %s", e.Reason)
}
