package maskformat

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
)

// ErrMissingMux is returned when routes are registered on a nil mux.
var ErrMissingMux = errors.New("maskformat: missing mux")

// Mux is anything that can mount an http.Handler; *http.ServeMux qualifies.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath is the path the format handler answers on under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	return mountPath(basePath, NewOptions(fns...).RoutePath)
}

// RegisterRoutes mounts a handler built from fns and returns its path.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions mounts a handler for opts. Blank fields in opts
// fall back to the defaults.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (string, error) {
	if mux == nil {
		return "", ErrMissingMux
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	route := mountPath(basePath, opts.RoutePath)
	if strings.ContainsAny(route, "?# \t") {
		return "", fmt.Errorf("maskformat: invalid route %q", route)
	}
	mux.Handle(route, HandlerWithOptions(opts))
	return route, nil
}

// mountPath joins basePath and routePath into a rooted, cleaned path.
func mountPath(basePath, routePath string) string {
	return path.Join("/", strings.TrimSpace(basePath), strings.TrimSpace(routePath))
}
