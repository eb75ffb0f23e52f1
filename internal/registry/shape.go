// Package registry builds the in-memory type registry the rest of s3kit
// is driven from: operations, their input/output structs, and the shapes
// those structs reference. In a Smithy-based code generator this table
// would be emitted from a JSON service model; here it is assembled once,
// offline, from the literal tables in this package (see New), with an
// optional live model loader in smithymodel.go for hosts that ship one.
package registry

// ShapeKind tags the variant a Shape carries.
type ShapeKind int

const (
	KindAlias ShapeKind = iota
	KindList
	KindMap
	KindStringEnum
	KindStruct
	KindUnion
	KindTimestamp
	KindProvided
)

func (k ShapeKind) String() string {
	switch k {
	case KindAlias:
		return "alias"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindStringEnum:
		return "string_enum"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	case KindTimestamp:
		return "timestamp"
	case KindProvided:
		return "provided"
	default:
		return "unknown"
	}
}

// TimestampFormat names the wire encoding a Timestamp shape uses.
type TimestampFormat int

const (
	TimestampDateTime TimestampFormat = iota
	TimestampHTTPDate
	TimestampEpochSeconds
)

// EnumVariant is one member of a StringEnum shape.
type EnumVariant struct {
	Name     string // program name, upper-snake-case except CRC32C
	WireName string // the literal string sent on the wire
	Doc      string
}

// Shape is a tagged variant over the shape kinds a Smithy-style service
// model can declare. Only the fields relevant to Kind are populated.
type Shape struct {
	Name string
	Kind ShapeKind

	// KindAlias
	AliasTarget string // "bool" | "i32" | "i64" | "string"

	// KindList
	ListMember     string
	ListMemberXML  string // XML element name for non-flattened members; "" => "member"
	ListFlattened  bool

	// KindMap
	MapKey   string
	MapValue string

	// KindStringEnum
	EnumVariants []EnumVariant

	// KindStruct
	Fields      []Field
	XMLRoot     string // "" => use shape Name
	IsError     bool

	// KindUnion
	UnionVariants []string // each names a Struct shape

	// KindTimestamp
	TimeFormat TimestampFormat

	// KindProvided: StreamingBlob, CopySource, ContentRange, Event
	ProvidedGoType string
}

// CanDefault reports whether every field of a struct shape is optional,
// a list, a map, or carries a zero-valued default — the predicate that
// gates emission of a Default{Shape}() constructor.
func (s *Shape) CanDefault() bool {
	if s.Kind != KindStruct {
		return false
	}
	for _, f := range s.Fields {
		if f.Optional || f.IsListType() || f.IsMapType() {
			continue
		}
		if f.Default != nil {
			continue
		}
		return false
	}
	return true
}

// IsListType reports whether the field's target type resolves to a
// List shape; callers pass the registry so the field's TargetType
// string can be looked up. This is a placeholder used by CanDefault;
// the real classification happens via Registry.FieldIsList below, but
// a field whose TargetType literally ends in "List" is treated as a
// list per the naming convention used throughout the service model
// (mirrors the derivation rule in Field.Optionality).
func (f *Field) IsListType() bool {
	return hasSuffix(f.TargetType, "List")
}

func (f *Field) IsMapType() bool {
	return hasSuffix(f.TargetType, "Map")
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
