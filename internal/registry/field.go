package registry

// Position is where a struct field's value travels on the wire.
type Position int

const (
	PositionHeader Position = iota
	PositionQuery
	PositionXML
	PositionPayload
	PositionMetadata
	PositionBucket
	PositionKey
)

// Field describes one member of a Struct shape.
type Field struct {
	WireName    string // CamelCase, as it appears in the Smithy model
	ProgramName string // Go field name (snake_case-derived, then exported)
	TargetType  string // shape name this field's value is typed as
	Position    Position

	Required bool
	Optional bool // derived, see deriveOptionality
	Default  any  // JSON literal, or nil

	HeaderName   string // Position == PositionHeader
	QueryKey     string // Position == PositionQuery
	XMLName      string // Position == PositionXML
	XMLFlattened bool
	XMLAttribute bool
	XMLNamespace string
}

// deriveOptionality applies the three-rule precedence from the field
// optionality model: a streaming-blob field with an empty-string
// default is optional; an unrequired field whose type name ends in
// "List" is a required-empty-list rather than optional; otherwise a
// field is optional iff it is not required and has no default.
func deriveOptionality(f *Field) bool {
	if f.TargetType == "StreamingBlob" {
		if s, ok := f.Default.(string); ok && s == "" {
			return true
		}
	}
	if !f.Required {
		if hasSuffix(f.TargetType, "List") {
			return false
		}
		return f.Default == nil
	}
	return false
}
