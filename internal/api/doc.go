// Package api provides the HTTP facade for the cheat sheet API. It builds one
// request per call against the configured server origin, attaches the JSON
// content type and an optional bearer token, and normalizes every response
// into a small envelope.
//
// # Client Creation
//
// [New] takes the server origin and functional options. Every request path
// is resolved as <origin>/api<path>.
//
// # Operations
//
// Unauthenticated:
//
//   - [Client.PostWithoutToken]: POST with a JSON body, returns [Response].
//   - [Client.GetWithoutToken]: GET, returns [Response].
//
// Authenticated with "Authorization: Bearer <token>":
//
//   - [Client.Get]: GET with optional [Filters], returns [Response].
//   - [Client.Post]: POST with a JSON body, returns [CreateResponse].
//   - [Client.Patch]: PATCH with a JSON body, returns [StatusResponse].
//   - [Client.Delete]: DELETE, returns [StatusResponse].
//
// # Success Policy
//
// Only HTTP 200 counts as success. Every other status, including 201 and
// 204, is returned as an [*APIError] carrying the server's status text.
// Requests are never retried and nothing is cached between calls.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. It holds no mutable state,
// so overlapping calls are independent of one another.
package api
