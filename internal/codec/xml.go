// XML (de)serialization driven entirely by the registry's shape tables,
// generalizing xmlutil's per-response-type structs into a single walker
// that works from any Struct/List/Map/Union shape. This is what lets a
// new operation's XML shape exist purely as registry data: nothing here
// needs a matching Go struct definition.
package codec

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/bleepstore/s3kit/internal/registry"
)

// s3NS is the XML namespace URI S3 success response root elements carry.
const s3NS = "http://s3.amazonaws.com/doc/2006-03-01/"

// xmlDeclaration is written before every encoded XML document.
const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Value is the dynamic representation of decoded/encoded shape data:
// a string for scalars/timestamps/enums, map[string]any keyed by
// Field.ProgramName for structs, []any for lists, map[string]any for
// maps (string-keyed).
type Value = any

// EncodeXMLDocument writes v (a Value for shapeName) as a complete XML
// document with the standard declaration and S3 namespace on the root
// element, to w.
func EncodeXMLDocument(reg *registry.Registry, w io.Writer, shapeName, rootName string, v Value) error {
	if _, err := io.WriteString(w, xmlDeclaration); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	start := xml.StartElement{
		Name: xml.Name{Local: rootName},
		Attr: []xml.Attr{{Name: xml.Name{Local: "xmlns"}, Value: s3NS}},
	}
	if err := encodeElement(enc, reg, shapeName, start, v); err != nil {
		return err
	}
	return enc.Flush()
}

// EncodeXMLFragment writes v without a declaration or namespace
// attribute, for request bodies such as CompleteMultipartUpload.
func EncodeXMLFragment(reg *registry.Registry, w io.Writer, shapeName, rootName string, v Value) error {
	enc := xml.NewEncoder(w)
	start := xml.StartElement{Name: xml.Name{Local: rootName}}
	if err := encodeElement(enc, reg, shapeName, start, v); err != nil {
		return err
	}
	return enc.Flush()
}

func encodeElement(enc *xml.Encoder, reg *registry.Registry, shapeName string, start xml.StartElement, v Value) error {
	if v == nil {
		return nil
	}
	shape, ok := reg.Shape(shapeName)
	if !ok {
		return encodeScalar(enc, start, fmt.Sprint(v))
	}
	switch shape.Kind {
	case registry.KindStruct:
		m, _ := v.(map[string]any)
		fields := sortedXMLFields(shape.Fields)

		// Attributes must be attached to the start tag before it is
		// written, so collect them in a first pass over the fields.
		for _, f := range fields {
			if !f.XMLAttribute {
				continue
			}
			if f.Position != registry.PositionXML && f.Position != registry.PositionPayload {
				continue
			}
			fv, present := m[f.ProgramName]
			if !present || fv == nil {
				continue
			}
			name := f.XMLName
			if name == "" {
				name = f.WireName
			}
			start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: name}, Value: fmt.Sprint(fv)})
		}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		for _, f := range fields {
			if f.XMLAttribute {
				continue
			}
			if f.Position != registry.PositionXML && f.Position != registry.PositionPayload {
				continue
			}
			fv, present := m[f.ProgramName]
			if !present || fv == nil {
				continue
			}
			name := f.XMLName
			if name == "" {
				name = f.WireName
			}
			child := xml.StartElement{Name: xml.Name{Local: name}}
			if err := encodeElement(enc, reg, f.TargetType, child, fv); err != nil {
				return err
			}
		}
		return enc.EncodeToken(start.End())

	case registry.KindList:
		items, _ := v.([]any)
		if shape.ListFlattened {
			for _, item := range items {
				if err := encodeElement(enc, reg, shape.ListMember, start, item); err != nil {
					return err
				}
			}
			return nil
		}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		memberName := shape.ListMemberXML
		if memberName == "" {
			memberName = "member"
		}
		for _, item := range items {
			member := xml.StartElement{Name: xml.Name{Local: memberName}}
			if err := encodeElement(enc, reg, shape.ListMember, member, item); err != nil {
				return err
			}
		}
		return enc.EncodeToken(start.End())

	case registry.KindMap:
		entries, _ := v.(map[string]any)
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			entry := xml.StartElement{Name: xml.Name{Local: "entry"}}
			if err := enc.EncodeToken(entry); err != nil {
				return err
			}
			keyEl := xml.StartElement{Name: xml.Name{Local: "key"}}
			if err := encodeScalar(enc, keyEl, k); err != nil {
				return err
			}
			valEl := xml.StartElement{Name: xml.Name{Local: "value"}}
			if err := encodeElement(enc, reg, shape.MapValue, valEl, entries[k]); err != nil {
				return err
			}
			if err := enc.EncodeToken(entry.End()); err != nil {
				return err
			}
		}
		return enc.EncodeToken(start.End())

	case registry.KindStringEnum:
		return encodeScalar(enc, start, fmt.Sprint(v))

	case registry.KindTimestamp:
		t, ok := v.(time.Time)
		if !ok {
			return encodeScalar(enc, start, fmt.Sprint(v))
		}
		return encodeScalar(enc, start, formatTimestamp(shape.TimeFormat, t))

	case registry.KindAlias:
		return encodeScalar(enc, start, fmt.Sprint(v))

	default:
		return encodeScalar(enc, start, fmt.Sprint(v))
	}
}

// encodeScalarDocument writes a single namespaced element with chardata
// content, for payload shapes that are bare primitives rather than a
// registered struct (GetBucketLocation's LocationConstraint).
func encodeScalarDocument(w io.Writer, rootName, value string) error {
	enc := xml.NewEncoder(w)
	start := xml.StartElement{
		Name: xml.Name{Local: rootName},
		Attr: []xml.Attr{{Name: xml.Name{Local: "xmlns"}, Value: s3NS}},
	}
	if err := encodeScalar(enc, start, value); err != nil {
		return err
	}
	return enc.Flush()
}

func encodeScalar(enc *xml.Encoder, start xml.StartElement, s string) error {
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.CharData([]byte(s))); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

func formatTimestamp(format registry.TimestampFormat, t time.Time) string {
	switch format {
	case registry.TimestampHTTPDate:
		return t.UTC().Format("Mon, 02 Jan 2006 15:04:05 GMT")
	case registry.TimestampEpochSeconds:
		return strconv.FormatInt(t.Unix(), 10)
	default:
		return t.UTC().Format("2006-01-02T15:04:05.000Z")
	}
}

// sortedXMLFields returns fields in declaration order; kept as a named
// helper so a future ordering rule (e.g. attributes-first) has one
// place to change.
func sortedXMLFields(fields []registry.Field) []registry.Field {
	return fields
}

// DecodeXML parses an XML document body into a Value for shapeName.
// Only Struct/List/Map/StringEnum/Timestamp/Alias shapes are supported;
// unknown elements are ignored rather than rejected, since S3 clients
// occasionally send extra namespace declarations.
func DecodeXML(reg *registry.Registry, r io.Reader, shapeName string) (Value, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("codec: empty XML body")
		}
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return decodeElement(dec, reg, shapeName, start)
		}
	}
}

func decodeElement(dec *xml.Decoder, reg *registry.Registry, shapeName string, start xml.StartElement) (Value, error) {
	shape, ok := reg.Shape(shapeName)
	if !ok {
		return decodeScalar(dec, start)
	}
	switch shape.Kind {
	case registry.KindStruct:
		out := map[string]any{}
		for _, f := range shape.Fields {
			if f.XMLAttribute {
				name := f.XMLName
				if name == "" {
					name = f.WireName
				}
				for _, a := range start.Attr {
					if a.Name.Local == name {
						out[f.ProgramName] = a.Value
					}
				}
			}
		}
		fieldByXMLName := map[string]registry.Field{}
		for _, f := range shape.Fields {
			if f.Position != registry.PositionXML && f.Position != registry.PositionPayload {
				continue
			}
			name := f.XMLName
			if name == "" {
				name = f.WireName
			}
			fieldByXMLName[name] = f
		}
		for {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			switch t := tok.(type) {
			case xml.StartElement:
				f, known := fieldByXMLName[t.Name.Local]
				if !known {
					if err := dec.Skip(); err != nil {
						return nil, err
					}
					continue
				}
				v, err := decodeElement(dec, reg, f.TargetType, t)
				if err != nil {
					return nil, err
				}
				if f.IsListType() && !listShapeFlattened(reg, f.TargetType) {
					out[f.ProgramName] = v
				} else if f.IsListType() {
					existing, _ := out[f.ProgramName].([]any)
					if items, ok := v.([]any); ok {
						out[f.ProgramName] = append(existing, items...)
					} else {
						out[f.ProgramName] = append(existing, v)
					}
				} else {
					out[f.ProgramName] = v
				}
			case xml.EndElement:
				if t.Name.Local == start.Name.Local {
					return out, nil
				}
			}
		}

	case registry.KindList:
		memberName := shape.ListMemberXML
		if memberName == "" {
			memberName = "member"
		}
		var items []any
		if shape.ListFlattened {
			v, err := decodeElement(dec, reg, shape.ListMember, start)
			if err != nil {
				return nil, err
			}
			return []any{v}, nil
		}
		for {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			switch t := tok.(type) {
			case xml.StartElement:
				if t.Name.Local != memberName {
					if err := dec.Skip(); err != nil {
						return nil, err
					}
					continue
				}
				v, err := decodeElement(dec, reg, shape.ListMember, t)
				if err != nil {
					return nil, err
				}
				items = append(items, v)
			case xml.EndElement:
				if t.Name.Local == start.Name.Local {
					return items, nil
				}
			}
		}

	case registry.KindMap:
		out := map[string]any{}
		for {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			switch t := tok.(type) {
			case xml.StartElement:
				if t.Name.Local != "entry" {
					if err := dec.Skip(); err != nil {
						return nil, err
					}
					continue
				}
				k, v, err := decodeMapEntry(dec, reg, shape.MapValue, t)
				if err != nil {
					return nil, err
				}
				out[k] = v
			case xml.EndElement:
				if t.Name.Local == start.Name.Local {
					return out, nil
				}
			}
		}

	default:
		return decodeScalar(dec, start)
	}
}

func decodeMapEntry(dec *xml.Decoder, reg *registry.Registry, valueShape string, start xml.StartElement) (string, any, error) {
	var key string
	var val any
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "key":
				s, err := decodeScalar(dec, t)
				if err != nil {
					return "", nil, err
				}
				key = fmt.Sprint(s)
			case "value":
				v, err := decodeElement(dec, reg, valueShape, t)
				if err != nil {
					return "", nil, err
				}
				val = v
			default:
				if err := dec.Skip(); err != nil {
					return "", nil, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return key, val, nil
			}
		}
	}
}

func decodeScalar(dec *xml.Decoder, start xml.StartElement) (Value, error) {
	var cdata string
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			cdata += string(t)
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return cdata, nil
			}
		case xml.StartElement:
			if err := dec.Skip(); err != nil {
				return nil, err
			}
		}
	}
}

func listShapeFlattened(reg *registry.Registry, shapeName string) bool {
	s, ok := reg.Shape(shapeName)
	return ok && s.Kind == registry.KindList && s.ListFlattened
}
