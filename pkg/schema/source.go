package schema

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Source identifies where an OpenAPI document lives.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source identifying a resource inside the reader's
// fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }
func (s urlSource) Kind() SourceKind { return SourceKindURL }

// SourceFromURL validates raw and returns a URL Source.
func SourceFromURL(raw string) (Source, error) {
	if raw == "" {
		return nil, errors.New("schema: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("schema: invalid URL %q: %w", raw, err)
	}
	return urlSource{raw: raw}, nil
}

// ParseSource maps a CLI style argument to a Source: http(s) URLs become
// URL sources, everything else a file path.
func ParseSource(raw string) (Source, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil, errors.New("schema: source is required")
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return SourceFromURL(path)
	}
	return SourceFromFile(path), nil
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithFileSystem enables SourceKindFS lookups.
func WithFileSystem(files fs.FS) ReaderOption {
	return func(r *Reader) {
		r.fs = files
	}
}

// WithHTTPClient enables URL sources using client.
func WithHTTPClient(client *http.Client) ReaderOption {
	return func(r *Reader) {
		r.http = client
	}
}

// WithHTTPFallback enables URL sources with a default client and timeout.
func WithHTTPFallback(timeout time.Duration) ReaderOption {
	return func(r *Reader) {
		if r.http == nil {
			r.http = &http.Client{Timeout: timeout}
		}
	}
}

// Reader fetches raw documents. URL sources are disabled unless an HTTP
// client is configured.
type Reader struct {
	fs   fs.FS
	http *http.Client
}

// NewReader constructs a Reader.
func NewReader(options ...ReaderOption) *Reader {
	r := &Reader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Read returns the bytes behind src.
func (r *Reader) Read(ctx context.Context, src Source) ([]byte, error) {
	if src == nil {
		return nil, errors.New("schema: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch src.Kind() {
	case SourceKindFile:
		return os.ReadFile(src.Location())
	case SourceKindFS:
		if r.fs == nil {
			return nil, errors.New("schema: filesystem is not configured")
		}
		return fs.ReadFile(r.fs, src.Location())
	case SourceKindURL:
		if r.http == nil {
			return nil, errors.New("schema: http support disabled")
		}
		return r.fetch(ctx, src.Location())
	default:
		return nil, fmt.Errorf("schema: unsupported source kind %q", src.Kind())
	}
}

func (r *Reader) fetch(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("schema: build request: %w", err)
	}
	resp, err := r.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("schema: fetch %s: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("schema: fetch %s: unexpected status %d", location, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
