package modifier

import "net/http"

// Modifier modifies an outgoing request before it is sent.
type Modifier interface {
	Modify(*http.Request) error
}

// UserAgent sets the User-Agent header. Modrinth rejects anonymous clients.
type UserAgent string

func (u UserAgent) Modify(req *http.Request) error {
	if u != "" {
		req.Header.Set("User-Agent", string(u))
	}
	return nil
}

// Accept sets the Accept header when the request has none.
type Accept string

func (a Accept) Modify(req *http.Request) error {
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", string(a))
	}
	return nil
}
