package registry

import "testing"

const testModel = `{
	"shapes": {
		"com.amazonaws.s3#PutObject": {
			"type": "operation",
			"traits": {
				"smithy.api#http": {"method": "PUT", "uri": "/{Bucket}/{Key+}", "code": 200}
			}
		},
		"com.amazonaws.s3#PutObjectInput": {
			"type": "structure"
		}
	}
}`

func TestLoadModelPatches(t *testing.T) {
	patches, err := LoadModelPatches([]byte(testModel))
	if err != nil {
		t.Fatalf("LoadModelPatches: %v", err)
	}
	if len(patches) != 1 {
		t.Fatalf("got %d patches, want 1", len(patches))
	}
	p := patches[0]
	if p.OperationName != "PutObject" || p.Method != "PUT" || p.URIPattern != "/{Bucket}/{Key+}" || p.SuccessStatus != 200 {
		t.Fatalf("got %+v", p)
	}
}

func TestApplyModelPatchesOverridesRoute(t *testing.T) {
	r := New()
	op, ok := r.Operation("PutObject")
	if !ok {
		t.Fatal("PutObject not registered")
	}
	originalMethod := op.Method

	r.ApplyModelPatches([]ModelPatch{{OperationName: "PutObject", Method: "POST", URIPattern: "/{Bucket}/{Key+}", SuccessStatus: 200}})

	op, _ = r.Operation("PutObject")
	if op.Method != "POST" {
		t.Fatalf("got method %q, want POST", op.Method)
	}
	if _, stillThere := findOp(r.Operations(originalMethod, ShapeObject), "PutObject"); stillThere {
		t.Fatalf("PutObject still grouped under its pre-patch method %q", originalMethod)
	}
	if _, moved := findOp(r.Operations("POST", ShapeObject), "PutObject"); !moved {
		t.Fatal("PutObject not re-grouped under its patched method")
	}
}

func TestApplyModelPatchesIgnoresUnknownOperation(t *testing.T) {
	r := New()
	r.ApplyModelPatches([]ModelPatch{{OperationName: "NotARealOperation", Method: "GET"}})
	if _, ok := r.Operation("NotARealOperation"); ok {
		t.Fatal("unknown operation should not be registered by a patch")
	}
}

func findOp(ops []*Operation, name string) (*Operation, bool) {
	for _, op := range ops {
		if op.Name == name {
			return op, true
		}
	}
	return nil, false
}
