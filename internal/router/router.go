// Package router resolves an incoming request's {method, path-shape}
// group down to a single registry.Operation, using the exact
// precedence rules collect_routes/codegen_router encode: query-tag
// routes first, then query-pattern routes, then routes needing a
// required-query-string/required-header combination, and finally at
// most one "final" route with no disambiguator at all as a catch-all.
package router

import (
	"net/http"
	"net/url"
	"sort"

	"github.com/bleepstore/s3kit/internal/registry"
)

// entry is one operation's precomputed disambiguators within a
// {method, path-shape} group.
type entry struct {
	op            *registry.Operation
	queryTag      string
	queryPatterns map[string]string
	requiredQS    []string
	requiredHdrs  []string
	needsFullBody bool
}

// Router is the precomputed, read-only route table built once from a
// *registry.Registry at process start.
type Router struct {
	groups map[groupKey][]entry
}

type groupKey struct {
	method string
	shape  registry.PathShape
}

// Build constructs a Router from every operation the registry knows
// about, grouping and sorting each {method, path-shape} bucket per the
// tier order below.
func Build(reg *registry.Registry) *Router {
	r := &Router{groups: map[groupKey][]entry{}}
	for _, op := range reg.All() {
		key := groupKey{method: op.Method, shape: op.PathShape}
		r.groups[key] = append(r.groups[key], entry{
			op:            op,
			queryTag:      op.QueryTag,
			queryPatterns: op.QueryPatterns,
			requiredQS:    op.RequiredQueries,
			requiredHdrs:  op.RequiredHeaders,
			needsFullBody: needsFullBody(reg, op),
		})
	}
	for key, group := range r.groups {
		sortGroup(group)
		r.groups[key] = group
	}
	return r
}

// sortGroup implements collect_routes's sort: primary key is whether
// the route carries a query tag (tagged routes first), then the number
// of query patterns, then required query strings, then required
// headers — each descending — with operation name as a stable
// ascending tiebreak so the table is deterministic across rebuilds.
func sortGroup(group []entry) {
	sort.SliceStable(group, func(i, j int) bool {
		a, b := group[i], group[j]
		if (a.queryTag != "") != (b.queryTag != "") {
			return a.queryTag != ""
		}
		if len(a.queryPatterns) != len(b.queryPatterns) {
			return len(a.queryPatterns) > len(b.queryPatterns)
		}
		if len(a.requiredQS) != len(b.requiredQS) {
			return len(a.requiredQS) > len(b.requiredQS)
		}
		if len(a.requiredHdrs) != len(b.requiredHdrs) {
			return len(a.requiredHdrs) > len(b.requiredHdrs)
		}
		return a.op.Name < b.op.Name
	})
}

// needsFullBody mirrors is_xml_payload/needs_full_body from the
// original code generator: GET requests never need it, and otherwise
// a payload field only forces whole-body buffering when it's
// XML-shaped, not when it's a raw streaming blob (or the
// select-object-content event stream) that the caller attaches as a
// live reader instead.
func needsFullBody(reg *registry.Registry, op *registry.Operation) bool {
	if op.Method == "GET" {
		return false
	}
	shape, ok := reg.Shape(op.InputType)
	if !ok {
		return false
	}
	for _, f := range shape.Fields {
		if f.Position == registry.PositionXML {
			return true
		}
		if f.Position == registry.PositionPayload && !isStreamingPayload(reg, f) {
			return true
		}
	}
	return false
}

func isStreamingPayload(reg *registry.Registry, f registry.Field) bool {
	target, ok := reg.Shape(f.TargetType)
	if !ok {
		return false
	}
	return target.Kind == registry.KindProvided && target.ProvidedGoType != "string"
}

// ErrUnknownOperation is returned when no route in a {method, path-shape}
// group matches the request's query string and headers.
type ErrUnknownOperation struct{}

func (ErrUnknownOperation) Error() string { return "router: no matching operation" }

// Resolve picks the operation for a request, given its method,
// path-shape classification, query values, and headers. It returns the
// matched operation and whether the caller must buffer the full
// request body before invoking it.
func (r *Router) Resolve(method string, shape registry.PathShape, q url.Values, h http.Header) (*registry.Operation, bool, error) {
	group := r.groups[groupKey{method: method, shape: shape}]
	if len(group) == 0 {
		return nil, false, ErrUnknownOperation{}
	}
	if len(group) == 1 {
		return group[0].op, group[0].needsFullBody, nil
	}

	for _, e := range group {
		if e.queryTag != "" && hasQueryTag(q, e.queryTag) {
			return e.op, e.needsFullBody, nil
		}
	}
	for _, e := range group {
		if e.queryTag != "" {
			continue
		}
		if len(e.queryPatterns) == 0 {
			continue
		}
		if matchesQueryPatterns(q, e.queryPatterns) {
			return e.op, e.needsFullBody, nil
		}
	}

	var final *entry
	for i := range group {
		e := &group[i]
		if e.queryTag != "" || len(e.queryPatterns) != 0 {
			continue
		}
		if len(e.requiredQS) == 0 && len(e.requiredHdrs) == 0 {
			final = e
			continue
		}
		if matchesRequiredQueries(q, e.requiredQS) && matchesRequiredHeaders(h, e.requiredHdrs) {
			return e.op, e.needsFullBody, nil
		}
	}
	if final != nil {
		return final.op, final.needsFullBody, nil
	}
	return nil, false, ErrUnknownOperation{}
}

func hasQueryTag(q url.Values, tag string) bool {
	_, ok := q[tag]
	return ok
}

func matchesQueryPatterns(q url.Values, patterns map[string]string) bool {
	for k, v := range patterns {
		if q.Get(k) != v {
			return false
		}
	}
	return true
}

func matchesRequiredQueries(q url.Values, required []string) bool {
	for _, k := range required {
		if _, ok := q[k]; !ok {
			return false
		}
	}
	return true
}

func matchesRequiredHeaders(h http.Header, required []string) bool {
	for _, name := range required {
		if h.Get(name) == "" {
			return false
		}
	}
	return true
}
