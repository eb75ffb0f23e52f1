package codec

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bleepstore/s3kit/internal/registry"
)

// EncodeOutput writes an operation's header-positioned fields onto w's
// header set and, if the output shape carries XML/payload fields,
// writes the XML document body. It does not write the status line:
// callers call w.WriteHeader(op.SuccessStatus) (or an error status)
// themselves once headers are set, and stream any StreamingBlob
// payload field separately after this returns.
func EncodeOutput(reg *registry.Registry, op *registry.Operation, w http.ResponseWriter, value map[string]any) error {
	shape, ok := reg.Shape(op.OutputType)
	if !ok {
		return nil // no registered output shape: fallback operations carry no typed body
	}

	var payloadField *registry.Field
	hasXMLFields := false
	for i := range shape.Fields {
		f := &shape.Fields[i]
		switch f.Position {
		case registry.PositionHeader:
			name := f.HeaderName
			if name == "" {
				name = f.WireName
			}
			if v, ok := value[f.ProgramName]; ok && v != nil {
				w.Header().Set(name, renderHeaderValue(reg, f.TargetType, v))
			}
		case registry.PositionMetadata:
			if m, ok := value[f.ProgramName].(map[string]string); ok {
				ApplyUserMetadata(w.Header(), m)
			}
		case registry.PositionPayload:
			payloadField = f
		case registry.PositionXML:
			hasXMLFields = true
		}
	}

	switch {
	case payloadField != nil:
		v, present := value[payloadField.ProgramName]
		if !present {
			return nil
		}
		target, known := reg.Shape(payloadField.TargetType)
		if known && target.Kind == registry.KindProvided {
			return nil // raw body streamed by the caller
		}
		root := payloadField.WireName
		switch {
		case shape.XMLRoot != "":
			// The outer output shape names its own root, e.g.
			// GetBucketLocationOutput -> "LocationConstraint".
			root = shape.XMLRoot
		case known && target.XMLRoot != "":
			root = target.XMLRoot
		case known:
			root = target.Name
		}
		w.Header().Set("Content-Type", "application/xml")
		if !known {
			// Scalar payload (e.g. GetBucketLocation's bare LocationConstraint
			// string): render directly instead of recursing into the shape walker.
			_, err := w.Write([]byte(xmlDeclaration))
			if err != nil {
				return err
			}
			return encodeScalarDocument(w, root, fmt.Sprint(v))
		}
		return EncodeXMLDocument(reg, w, payloadField.TargetType, root, v)

	case hasXMLFields:
		root := shape.XMLRoot
		if root == "" {
			root = shape.Name
		}
		w.Header().Set("Content-Type", "application/xml")
		return EncodeXMLDocument(reg, w, op.OutputType, root, value)
	}
	return nil
}

func renderHeaderValue(reg *registry.Registry, targetType string, v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case time.Time:
		format := registry.TimestampHTTPDate
		if shape, ok := reg.Shape(targetType); ok && shape.Kind == registry.KindTimestamp {
			format = shape.TimeFormat
		}
		return formatTimestamp(format, t)
	default:
		return fmt.Sprint(v)
	}
}
