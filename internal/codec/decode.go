package codec

import (
	"io"
	"net/http"

	"github.com/bleepstore/s3kit/internal/registry"
)

// DecodeInput builds the dynamic input Value for an operation from an
// HTTP request: path-bound Bucket/Key, header- and query-bound scalar
// fields, x-amz-meta-* metadata, and an XML request body when the
// operation's input shape carries XML/payload-positioned fields.
//
// A payload field whose target shape is KindProvided (StreamingBlob,
// CopySource) is never consumed here — the caller is expected to
// attach the raw body reader itself under that field's ProgramName,
// since s3kit treats object bodies as streams rather than buffering
// them into the dynamic Value tree.
func DecodeInput(reg *registry.Registry, op *registry.Operation, r *http.Request, bucket, key string) (map[string]any, error) {
	shape, ok := reg.Shape(op.InputType)
	if !ok {
		return FallbackInput(op, bucket, key), nil
	}
	out := map[string]any{}

	var payloadField *registry.Field
	var xmlFields []*registry.Field
	for i := range shape.Fields {
		f := &shape.Fields[i]
		switch f.Position {
		case registry.PositionPayload:
			payloadField = f
		case registry.PositionXML:
			xmlFields = append(xmlFields, f)
		}
	}

	hasBody := r.Body != nil && r.ContentLength != 0
	switch {
	case payloadField != nil:
		if target, ok := reg.Shape(payloadField.TargetType); ok && target.Kind != registry.KindProvided && hasBody {
			v, err := DecodeXML(reg, r.Body, payloadField.TargetType)
			if err != nil && err != io.EOF {
				return nil, err
			}
			out[payloadField.ProgramName] = v
		}

	case len(xmlFields) == 1 && hasBody:
		// A single top-level XML field with no explicit payload
		// position (e.g. CreateBucket's CreateBucketConfiguration) is
		// bound the same way a payload field is: the request body IS
		// that field's value, not a wrapper containing it.
		f := xmlFields[0]
		v, err := DecodeXML(reg, r.Body, f.TargetType)
		if err != nil && err != io.EOF {
			return nil, err
		}
		out[f.ProgramName] = v

	case len(xmlFields) > 1 && hasBody:
		v, err := DecodeXML(reg, r.Body, op.InputType)
		if err != nil && err != io.EOF {
			return nil, err
		}
		if m, ok := v.(map[string]any); ok {
			for k, val := range m {
				out[k] = val
			}
		}
	}

	q := r.URL.Query()
	for _, f := range shape.Fields {
		switch f.Position {
		case registry.PositionBucket:
			out[f.ProgramName] = bucket
		case registry.PositionKey:
			out[f.ProgramName] = key
		case registry.PositionHeader:
			name := f.HeaderName
			if name == "" {
				name = f.WireName
			}
			if f.Required {
				v, err := RequireHeader(r.Header, name)
				if err != nil {
					return nil, err
				}
				out[f.ProgramName] = v
			} else if v, err := OptHeader(r.Header, name); err != nil {
				return nil, err
			} else if v != nil {
				out[f.ProgramName] = *v
			}
		case registry.PositionQuery:
			name := f.QueryKey
			if name == "" {
				name = f.WireName
			}
			if f.Required {
				v, err := RequireQuery(q, name)
				if err != nil {
					return nil, err
				}
				out[f.ProgramName] = v
			} else if v, err := OptQuery(q, name); err != nil {
				return nil, err
			} else if v != nil {
				out[f.ProgramName] = *v
			}
		case registry.PositionMetadata:
			out[f.ProgramName] = ExtractUserMetadata(r.Header)
		}
	}

	return out, nil
}
