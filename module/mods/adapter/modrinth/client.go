package modrinth

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/modwarden/modwarden/module/mods/adapter"
	httputil "github.com/modwarden/modwarden/module/mods/http"
	"github.com/modwarden/modwarden/module/mods/http/modifier"
)

// DefaultEndpoint is the public Modrinth API.
const DefaultEndpoint = "https://api.modrinth.com"

// newClient constructs a modrinth client
func newClient(cfg adapter.Config) *client {
	endpoint := strings.TrimSuffix(cfg.Endpoint, "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &client{
		client: httputil.NewClient(
			cfg.HTTP,
			modifier.UserAgent(cfg.UserAgent),
			modifier.Accept("application/json"),
		),
		url: endpoint,
	}
}

type client struct {
	client *httputil.Client
	url    string
}

// Project represents a project from the Modrinth v2 API
type Project struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ProjectType string `json:"project_type"`
}

// Version represents a project version from the Modrinth v2 API
type Version struct {
	ID            string `json:"id"`
	ProjectID     string `json:"project_id"`
	Name          string `json:"name"`
	VersionNumber string `json:"version_number"`
}

// getVersionFromHash looks up the version a file with the given SHA-1 belongs to.
func (c *client) getVersionFromHash(ctx context.Context, sha1 string) (*Version, error) {
	u := fmt.Sprintf("%s/v2/version_file/%s?algorithm=sha1", c.url, url.PathEscape(sha1))

	var version Version
	if err := c.client.Get(ctx, u, &version); err != nil {
		return nil, err
	}
	return &version, nil
}

// getProject fetches a project by id or slug.
func (c *client) getProject(ctx context.Context, id string) (*Project, error) {
	u := fmt.Sprintf("%s/v2/project/%s", c.url, url.PathEscape(id))

	var project Project
	if err := c.client.Get(ctx, u, &project); err != nil {
		return nil, err
	}
	return &project, nil
}
