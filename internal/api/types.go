package api

import "encoding/json"

// Response is the envelope returned by read and unauthenticated calls.
type Response struct {
	Status int
	// Data is the response body, passed through verbatim.
	Data json.RawMessage
}

// Decode unmarshals Data into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Data, v)
}

// CreateResponse is the envelope returned by an authenticated create.
type CreateResponse struct {
	Status int
	ID     string
}

// StatusResponse is the envelope returned by update and delete.
type StatusResponse struct {
	Status int
}

// savedResponse is the body of a successful create.
type savedResponse struct {
	ID string `json:"id"`
}
