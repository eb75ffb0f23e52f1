package codec

import (
	"net/url"
	"strconv"
)

// QueryError reports a malformed or duplicated query parameter.
type QueryError struct {
	Name    string
	Message string
}

func (e *QueryError) Error() string { return "query " + strconv.Quote(e.Name) + ": " + e.Message }

// CombineQueryValues folds a query parameter into one string. Query
// parameters never combine: a repeated value is always rejected,
// matching QueryAllowsDuplicates's closed allow-list (which is empty).
func CombineQueryValues(q url.Values, name string) (string, bool, error) {
	values := q[name]
	if len(values) == 0 {
		return "", false, nil
	}
	if len(values) > 1 && !QueryAllowsDuplicates(name) {
		return "", false, &QueryError{Name: name, Message: "duplicate query parameter not allowed"}
	}
	return values[0], true, nil
}

// RequireQuery reads a required string-valued query parameter.
func RequireQuery(q url.Values, name string) (string, error) {
	v, ok, err := CombineQueryValues(q, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &QueryError{Name: name, Message: "required query parameter missing"}
	}
	return v, nil
}

// OptQuery reads an optional string-valued query parameter.
func OptQuery(q url.Values, name string) (*string, error) {
	v, ok, err := CombineQueryValues(q, name)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

// OptQueryInt reads an optional integer-valued query parameter, e.g.
// max-keys, part-number, max-uploads.
func OptQueryInt(q url.Values, name string) (*int, error) {
	v, ok, err := CombineQueryValues(q, name)
	if err != nil || !ok {
		return nil, err
	}
	n, perr := strconv.Atoi(v)
	if perr != nil {
		return nil, &QueryError{Name: name, Message: "not an integer: " + perr.Error()}
	}
	return &n, nil
}

// HasQueryTag reports whether a bare (unvalued) query parameter is
// present at all, e.g. ?acl or ?uploads.
func HasQueryTag(q url.Values, name string) bool {
	_, ok := q[name]
	return ok
}
