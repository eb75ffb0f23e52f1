package codec

import (
	"fmt"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"
)

// HeaderError reports a malformed or duplicated header value, tagged
// with the field name it was parsed for.
type HeaderError struct {
	Name    string
	Message string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("header %q: %s", e.Name, e.Message)
}

// CombineHeaderValues folds a possibly-repeated header into one string,
// per the duplicate-handling policy: allow-listed names are joined with
// ", "; everything else errors if sent more than once. An absent header
// returns ("", false, nil).
func CombineHeaderValues(h http.Header, name string) (string, bool, error) {
	values := h.Values(textproto.CanonicalMIMEHeaderKey(name))
	if len(values) == 0 {
		return "", false, nil
	}
	if len(values) == 1 {
		return values[0], true, nil
	}
	lname := strings.ToLower(name)
	if !HeaderAllowsDuplicates(lname) {
		return "", false, &HeaderError{Name: name, Message: "duplicate header values not allowed"}
	}
	return strings.Join(values, ", "), true, nil
}

// RequireHeader reads a required string-valued header.
func RequireHeader(h http.Header, name string) (string, error) {
	v, ok, err := CombineHeaderValues(h, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &HeaderError{Name: name, Message: "required header missing"}
	}
	return v, nil
}

// OptHeader reads an optional string-valued header.
func OptHeader(h http.Header, name string) (*string, error) {
	v, ok, err := CombineHeaderValues(h, name)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

// OptHeaderInt64 reads an optional integer-valued header, e.g.
// x-amz-mp-parts-count or Content-Length overrides.
func OptHeaderInt64(h http.Header, name string) (*int64, error) {
	v, ok, err := CombineHeaderValues(h, name)
	if err != nil || !ok {
		return nil, err
	}
	n, perr := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if perr != nil {
		return nil, &HeaderError{Name: name, Message: "not an integer: " + perr.Error()}
	}
	return &n, nil
}

// OptHeaderBool reads an optional boolean-valued header, e.g.
// x-amz-bucket-key-enabled ("true"/"false").
func OptHeaderBool(h http.Header, name string) (*bool, error) {
	v, ok, err := CombineHeaderValues(h, name)
	if err != nil || !ok {
		return nil, err
	}
	b, perr := strconv.ParseBool(strings.TrimSpace(v))
	if perr != nil {
		return nil, &HeaderError{Name: name, Message: "not a boolean: " + perr.Error()}
	}
	return &b, nil
}

// httpDateLayouts are the timestamp formats S3 headers may carry; the
// canonical one is RFC 1123 GMT, but conditional-request headers from
// older clients sometimes arrive in RFC 850 or ANSI C form.
var httpDateLayouts = []string{
	http.TimeFormat,
	time.RFC1123,
	time.RFC1123Z,
	time.ANSIC,
	time.RFC850,
}

// OptHeaderTimestamp reads an optional HTTP-date-valued header (e.g.
// If-Modified-Since, x-amz-copy-source-if-unmodified-since).
func OptHeaderTimestamp(h http.Header, name string) (*time.Time, error) {
	v, ok, err := CombineHeaderValues(h, name)
	if err != nil || !ok {
		return nil, err
	}
	for _, layout := range httpDateLayouts {
		if t, perr := time.Parse(layout, v); perr == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, &HeaderError{Name: name, Message: "not a valid HTTP date: " + v}
}

// ParseListHeader splits a comma-separated header value into trimmed
// entries, e.g. x-amz-expose-headers on CORS rules.
func ParseListHeader(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
