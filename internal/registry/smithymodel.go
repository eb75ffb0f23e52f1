package registry

import (
	"encoding/json"
	"fmt"
	"os"

	smithydocument "github.com/aws/smithy-go/document"
)

// ModelDocument wraps a raw Smithy 2.0 JSON AST model so it round-trips
// through the same Marshaler/Unmarshaler contract aws-sdk-go-v2's own
// flexible "document"-typed shapes use, rather than inventing a
// bespoke format for something that is, at heart, an arbitrary JSON
// document.
type ModelDocument struct {
	raw json.RawMessage
}

var (
	_ smithydocument.Marshaler   = ModelDocument{}
	_ smithydocument.Unmarshaler = (*ModelDocument)(nil)
)

func (d ModelDocument) MarshalSmithyDocument() ([]byte, error) {
	return d.raw, nil
}

func (d *ModelDocument) UnmarshalSmithyDocument(v any) error {
	return json.Unmarshal(d.raw, v)
}

// smithyShape is the subset of a Smithy 2.0 AST shape node this loader
// reads. Only operation shapes carrying an "smithy.api#http" trait
// contribute anything; every other shape kind (structure, list, enum,
// ...) is read and discarded, since the literal tables in
// shapes_table.go remain the source of truth for field layout.
type smithyShape struct {
	Type   string `json:"type"`
	Traits struct {
		HTTP *struct {
			Method string `json:"method"`
			URI    string `json:"uri"`
			Code   int    `json:"code"`
		} `json:"smithy.api#http"`
	} `json:"traits"`
}

type smithyModel struct {
	Shapes map[string]smithyShape `json:"shapes"`
}

// ModelPatch is one operation's route metadata as read from an external
// model, applied over the literal table's entry of the same name.
type ModelPatch struct {
	OperationName string
	Method        string
	URIPattern    string
	SuccessStatus int
}

// LoadModelPatches decodes a Smithy 2.0 JSON AST document into the set
// of per-operation route patches it describes. A shape ID's namespace
// prefix ("com.amazonaws.s3#PutObject") is stripped down to the bare
// operation name every literal table in this package keys by.
func LoadModelPatches(raw []byte) ([]ModelPatch, error) {
	doc := ModelDocument{raw: raw}
	var model smithyModel
	if err := doc.UnmarshalSmithyDocument(&model); err != nil {
		return nil, fmt.Errorf("registry: decode smithy model: %w", err)
	}

	var patches []ModelPatch
	for shapeID, shape := range model.Shapes {
		if shape.Type != "operation" || shape.Traits.HTTP == nil {
			continue
		}
		patches = append(patches, ModelPatch{
			OperationName: shapeName(shapeID),
			Method:        shape.Traits.HTTP.Method,
			URIPattern:    shape.Traits.HTTP.URI,
			SuccessStatus: shape.Traits.HTTP.Code,
		})
	}
	return patches, nil
}

func shapeName(shapeID string) string {
	for i := len(shapeID) - 1; i >= 0; i-- {
		if shapeID[i] == '#' {
			return shapeID[i+1:]
		}
	}
	return shapeID
}

// ApplyModelPatches overrides the route metadata of already-registered
// operations in place, then rebuilds the {method, path-shape} grouping
// those patches may have moved an operation between. Patches naming an
// operation this registry doesn't know are ignored: an external model
// may describe more of the service than this package implements a
// codec for.
func (r *Registry) ApplyModelPatches(patches []ModelPatch) {
	for _, p := range patches {
		op, ok := r.operations[p.OperationName]
		if !ok {
			continue
		}
		if p.Method != "" {
			op.Method = p.Method
		}
		if p.URIPattern != "" {
			op.URIPattern = p.URIPattern
		}
		if p.SuccessStatus != 0 {
			op.SuccessStatus = p.SuccessStatus
		}
	}
	r.byGroup = map[groupKey][]*Operation{}
	for _, op := range r.operations {
		shape, tag, qpatterns := decomposeURI(op.Method, op.URIPattern)
		op.PathShape = shape
		op.QueryTag = tag
		op.QueryPatterns = qpatterns
		key := groupKey{Method: op.Method, Shape: shape}
		r.byGroup[key] = append(r.byGroup[key], op)
	}
}

// LoadModelFromEnv applies S3KIT_SMITHY_MODEL (a path to a Smithy 2.0
// JSON AST file) over r's route table, if set. A host that doesn't
// ship a model file is unaffected; New on its own always returns a
// complete, self-consistent registry without this ever running.
func LoadModelFromEnv(r *Registry) error {
	path := os.Getenv("S3KIT_SMITHY_MODEL")
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("registry: read smithy model: %w", err)
	}
	patches, err := LoadModelPatches(raw)
	if err != nil {
		return err
	}
	r.ApplyModelPatches(patches)
	return nil
}
