package xApiKey

import (
	"net/http"

	"github.com/modwarden/modwarden/module/mods/http/modifier"
)

// NewAuthorizer returns a modifier that sends token in the x-api-key header.
// An empty token leaves requests untouched so the registry reports the
// missing key itself.
func NewAuthorizer(token string) modifier.Modifier {
	return &authorizer{
		token: token,
	}
}

type authorizer struct {
	token string
}

func (a *authorizer) Modify(req *http.Request) error {
	if a.token == "" {
		return nil
	}
	req.Header.Set("x-api-key", a.token)
	return nil
}
