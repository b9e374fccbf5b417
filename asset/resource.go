package asset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	ErrUnsupportedScheme = errors.New("resource: unsupported scheme")
	ErrFetchFailed       = errors.New("resource: could not fetch")
)

// Client used for fetching remote resources.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// A Resource is a readable stream backed by a local file or a remote
// http(s) URL.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the location of this resource.
func (r *Resource) Path() string {
	return r.url.String()
}

// Returns the base name of this resource without any URL prefix.
func (r *Resource) Name() string {
	return filepath.Base(r.url.Path)
}

// Open a resource stream. Plain paths and file:// URLs are read from the
// local filesystem while http/https URLs are fetched using a GET request.
//
// Callers must close the returned resource.
func NewResource(ctx context.Context, location string) (*Resource, error) {
	u, err := url.Parse(strings.ReplaceAll(location, `\`, `/`))
	if err != nil {
		return nil, fmt.Errorf("resource: invalid location %q: %w", location, err)
	}

	var reader io.ReadCloser
	switch u.Scheme {
	case "", "file":
		reader, err = os.Open(filepath.Clean(u.Path))
		if err != nil {
			return nil, err
		}
	case "http", "https":
		reader, err = fetch(ctx, u)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w '%s'", ErrUnsupportedScheme, u.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        u,
	}, nil
}

func fetch(ctx context.Context, u *url.URL) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrFetchFailed, u, err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrFetchFailed, u, err)
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w '%s': status %d", ErrFetchFailed, u, resp.StatusCode)
	}
	return resp.Body, nil
}
