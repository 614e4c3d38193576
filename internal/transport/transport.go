// Package transport defines the request/response contract between the
// resource slices and the marketplace REST backend, and provides the HTTP
// implementation of it.
package transport

import (
	"context"
	"net/url"
)

// Request describes one backend call. Body is JSON-encoded when set; Form
// switches the request to multipart encoding (file-capable) and takes
// precedence over Body.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Form   *Form
}

// Form is a multipart payload: flat fields plus optional file parts.
type Form struct {
	Fields url.Values
	Files  []File
}

// File is one uploaded file part.
type File struct {
	Field       string
	Name        string
	ContentType string
	Content     []byte
}

// Client issues a request and decodes the envelope's data payload into
// out (which may be nil when no payload is expected). Failures are
// normalized to *Error.
type Client interface {
	Do(ctx context.Context, req Request, out any) error
}

// TokenCarrier is implemented by clients that attach a bearer token.
type TokenCarrier interface {
	SetToken(token string)
}
