package api

import (
	"net/url"
	"strings"
)

// PublishedListKey is the query parameter for the publication filter.
const PublishedListKey = "is_published__list"

// Filters narrows an authenticated read. Only IsPublishedList is recognized.
type Filters struct {
	// IsPublishedList is sent as a single comma-joined value. The server
	// splits it on ",".
	IsPublishedList []string
}

// Encode serializes the filters into a URL query string. It returns an
// empty string when f is nil or no recognized field is set.
func (f *Filters) Encode() string {
	if f == nil {
		return ""
	}

	values := url.Values{}
	if len(f.IsPublishedList) > 0 {
		values.Set(PublishedListKey, strings.Join(f.IsPublishedList, ","))
	}

	return values.Encode()
}
