// Package api defines the contracts between the pushsub client and the
// remote social-data aggregation service: the session collaborator that
// performs authenticated calls, the generic JSON object returned by those
// calls, and the error taxonomy shared by every layer of the client.
package api

import "context"

// ParamPrefix is the namespace applied to every destination-specific
// request parameter before transmission, e.g. "output_params.url".
const ParamPrefix = "output_params."

// Caller is the authenticated session collaborator. Implementations own
// authentication, HTTP transport, retries, and raw response parsing; the
// client never touches sockets or headers directly.
//
// CallAPI invokes the named endpoint (e.g. "push/get") with a flat string
// parameter map and returns the decoded response body. Credential failures
// surface as errors with ErrCodeAccessDenied and are propagated by the
// client unwrapped.
type Caller interface {
	CallAPI(ctx context.Context, endpoint string, params map[string]string) (Object, error)
}
