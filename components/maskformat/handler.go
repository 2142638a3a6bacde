package maskformat

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/goliatone/go-maskfield/pkg/field"
	"github.com/goliatone/go-maskfield/pkg/mask"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

var (
	ErrMissingPattern = errors.New("maskformat: pattern or field is required")
	ErrUnknownField   = errors.New("maskformat: unknown field")
)

// Request is a single format call. Pattern wins over Field when both are set.
type Request struct {
	Pattern string `json:"pattern,omitempty"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value"`
}

// Result is the formatted view of a value against its pattern.
type Result struct {
	Value       string `json:"value"`
	Digits      string `json:"digits"`
	Placeholder string `json:"placeholder"`
	Complete    bool   `json:"complete"`
	Capacity    int    `json:"capacity"`
}

type formatResponse struct {
	Data Result `json:"data"`
}

// Format runs req through the mask pipeline using opts for field lookups.
func Format(req Request, opts Options) (Result, error) {
	pattern := req.Pattern
	if pattern == "" {
		name := strings.TrimSpace(req.Field)
		if name == "" {
			return Result{}, StatusError{Code: http.StatusBadRequest, Err: ErrMissingPattern}
		}
		id, err := field.ParseIdentity(name)
		if err != nil {
			return Result{}, StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("%w %q", ErrUnknownField, name)}
		}
		pattern = opts.patternFor(id)
	}

	compiled := mask.Compile(pattern)
	value := mask.Apply(pattern, req.Value)
	digits := mask.ExtractDigits(value)
	return Result{
		Value:       value,
		Digits:      digits,
		Placeholder: compiled.Placeholder(value),
		Complete:    compiled.Complete(digits),
		Capacity:    compiled.Capacity(),
	}, nil
}

// Handler builds a net/http handler with default options plus any overrides.
// It is an alias of NewHandler to match the recommended component API surface.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options value.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodPost:
		default:
			w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodHead, http.MethodPost}, ", "))
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeError(w, err, http.StatusForbidden)
				return
			}
		}

		req, err := decodeRequest(w, r, opts)
		if err != nil {
			writeError(w, err, http.StatusBadRequest)
			return
		}
		result, err := Format(req, opts)
		if err != nil {
			writeError(w, err, http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		_ = enc.Encode(formatResponse{Data: result})
	})
}

func decodeRequest(w http.ResponseWriter, r *http.Request, opts Options) (Request, error) {
	if r.Method != http.MethodPost {
		query := r.URL.Query()
		return Request{
			Pattern: query.Get(opts.PatternParam),
			Field:   query.Get(opts.FieldParam),
			Value:   query.Get(opts.ValueParam),
		}, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, opts.MaxBodyBytes)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return Request{}, StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("maskformat: decode body: %w", err)}
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return Request{}, StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("maskformat: parse form: %w", err)}
	}
	return Request{
		Pattern: r.PostFormValue(opts.PatternParam),
		Field:   r.PostFormValue(opts.FieldParam),
		Value:   r.PostFormValue(opts.ValueParam),
	}, nil
}

func writeError(w http.ResponseWriter, err error, fallback int) {
	if w == nil {
		return
	}
	code := fallback
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = fallback
		}
	}
	http.Error(w, http.StatusText(code), code)
}
