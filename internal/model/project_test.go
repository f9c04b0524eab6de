package model

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"aidlkit/internal/ast"
	"aidlkit/internal/engine"
	"aidlkit/internal/source"
)

// buildProject runs the real engine over the given sources and projects the
// outcome, mirroring the production pipeline.
func buildProject(t *testing.T, sources map[string]string) *Project {
	t.Helper()
	fs := source.NewFileSet()
	e := engine.New(engine.Options{})

	for path, text := range sources {
		id := fs.AddVirtual(path, []byte(text))
		e.AddContent(id, fs.Get(id).Content)
	}

	results, err := e.Validate(context.Background())
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	return Build(fs, results, "/work")
}

func TestProjectSimpleInterface(t *testing.T) {
	p := buildProject(t, map[string]string{
		"Foo.aidl": `package com.example;
interface Foo {
    int bar();
}
`,
	})

	if p.Root != "/work" {
		t.Errorf("expected root %q, got %q", "/work", p.Root)
	}
	if len(p.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(p.Items))
	}

	item, ok := p.Items["com.example.Foo"]
	if !ok {
		t.Fatalf("expected key %q, keys: %v", "com.example.Foo", keys(p.Items))
	}
	if item.ItemType != ItemInterface {
		t.Errorf("expected itemType interface, got %q", item.ItemType)
	}
	if item.Path != "Foo.aidl" {
		t.Errorf("expected path Foo.aidl, got %q", item.Path)
	}
	if len(item.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(item.Elements))
	}

	bar := item.Elements["bar"]
	if bar.ElementType != ElementMethod {
		t.Errorf("expected method element, got %q", bar.ElementType)
	}
	if bar.ReturnType != "int" {
		t.Errorf("expected return type %q, got %q", "int", bar.ReturnType)
	}
	if bar.Args == nil {
		t.Fatalf("expected an empty args list, got nil")
	}
	if len(*bar.Args) != 0 {
		t.Errorf("expected zero args, got %d", len(*bar.Args))
	}
	if bar.Oneway == nil || *bar.Oneway {
		t.Errorf("expected oneway=false, got %v", bar.Oneway)
	}
}

func TestProjectParcelableAndEnum(t *testing.T) {
	p := buildProject(t, map[string]string{
		"Data.aidl": `package com.example;
/** A data holder. */
parcelable Data {
    /** Display names. */
    List<String> names;
}
`,
		"Status.aidl": `package com.example;
enum Status {
    UNKNOWN = 0,
    DONE,
}
`,
	})

	data := p.Items["com.example.Data"]
	if data.ItemType != ItemParcelable {
		t.Fatalf("expected parcelable, got %q", data.ItemType)
	}
	if data.Doc != "A data holder." {
		t.Errorf("expected item doc preserved, got %q", data.Doc)
	}
	names := data.Elements["names"]
	if names.ElementType != ElementField {
		t.Errorf("expected field element, got %q", names.ElementType)
	}
	if names.Type != "List<String>" {
		t.Errorf("expected canonical type %q, got %q", "List<String>", names.Type)
	}
	if names.Doc != "Display names." {
		t.Errorf("expected field doc preserved, got %q", names.Doc)
	}

	status := p.Items["com.example.Status"]
	if status.ItemType != ItemEnum {
		t.Fatalf("expected enum, got %q", status.ItemType)
	}
	unknown := status.Elements["UNKNOWN"]
	if unknown.ElementType != ElementEnumElement || unknown.Value != "0" {
		t.Errorf("unexpected UNKNOWN element %+v", unknown)
	}
	done := status.Elements["DONE"]
	if done.Value != nil {
		t.Errorf("expected implicit enum value to stay absent, got %v", done.Value)
	}
}

func TestProjectMethodDetails(t *testing.T) {
	p := buildProject(t, map[string]string{
		"IService.aidl": `package com.example;
interface IService {
    oneway void notify(in int what, String tag);
    int getState() = 5;
}
`,
	})

	item := p.Items["com.example.IService"]
	notify := item.Elements["notify"]
	if notify.Oneway == nil || !*notify.Oneway {
		t.Error("expected oneway=true")
	}
	if notify.Args == nil || len(*notify.Args) != 2 {
		t.Fatalf("expected 2 args, got %v", notify.Args)
	}
	args := *notify.Args
	if args[0].Direction != DirIn {
		t.Errorf("expected direction in, got %q", args[0].Direction)
	}
	if args[0].Name == nil || *args[0].Name != "what" {
		t.Errorf("unexpected arg name %v", args[0].Name)
	}
	if args[1].Direction != "" {
		t.Errorf("expected unspecified direction to be empty, got %q", args[1].Direction)
	}

	getState := item.Elements["getState"]
	if getState.Value != uint32(5) {
		t.Errorf("expected transaction id 5, got %v (%T)", getState.Value, getState.Value)
	}
}

func TestProjectFailedFileContributesNothing(t *testing.T) {
	p := buildProject(t, map[string]string{
		"Good.aidl": `package com.example;
parcelable Good { int id; }
`,
		"Bad.aidl": "completely broken",
	})

	if len(p.Items) != 1 {
		t.Fatalf("expected only the good item, got %v", keys(p.Items))
	}
	if _, ok := p.Items["com.example.Good"]; !ok {
		t.Errorf("expected com.example.Good present, got %v", keys(p.Items))
	}
}

func TestProjectDuplicateMembersFold(t *testing.T) {
	p := buildProject(t, map[string]string{
		"IService.aidl": `package com.example;
interface IService {
    int ping();
    void ping(in int x);
}
`,
	})

	item := p.Items["com.example.IService"]
	// The engine's AST ordering is stable, but the fold itself only
	// guarantees a single survivor; this is a known lossy case.
	if len(item.Elements) != 1 {
		t.Errorf("expected duplicate members to fold into one entry, got %d", len(item.Elements))
	}
	if _, ok := item.Elements["ping"]; !ok {
		t.Error("expected surviving element under the duplicated name")
	}
}

func TestTypeStringCanonicalization(t *testing.T) {
	tests := []struct {
		name string
		typ  ast.Type
		want string
	}{
		{
			name: "bare list",
			typ:  ast.Type{Kind: ast.TypeList, Name: "List"},
			want: "List",
		},
		{
			name: "generic list",
			typ: ast.Type{Kind: ast.TypeList, Name: "List", Generic: []ast.Type{
				{Kind: ast.TypeString, Name: "String"},
			}},
			want: "List<String>",
		},
		{
			name: "map with two arguments",
			typ: ast.Type{Kind: ast.TypeMap, Name: "Map", Generic: []ast.Type{
				{Kind: ast.TypeString, Name: "String"},
				{Kind: ast.TypeList, Name: "List", Generic: []ast.Type{{Kind: ast.TypePrimitive, Name: "int"}}},
			}},
			want: "Map<String, List<int>>",
		},
		{
			name: "map with too few arguments",
			typ: ast.Type{Kind: ast.TypeMap, Name: "Map", Generic: []ast.Type{
				{Kind: ast.TypeString, Name: "String"},
			}},
			want: "Map",
		},
		{
			name: "array",
			typ: ast.Type{Kind: ast.TypeArray, Name: "Array", Generic: []ast.Type{
				{Kind: ast.TypePrimitive, Name: "byte"},
			}},
			want: "Array<byte>",
		},
		{
			name: "bare array",
			typ:  ast.Type{Kind: ast.TypeArray, Name: "Array"},
			want: "Array",
		},
		{
			name: "resolved",
			typ:  ast.Type{Kind: ast.TypeResolved, Name: "Data", Qualified: "com.example.Data"},
			want: "com.example.Data",
		},
		{
			name: "unresolved",
			typ:  ast.Type{Kind: ast.TypeUnresolved, Name: "Mystery"},
			want: "Mystery",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeString(tt.typ); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestProjectJSONRoundTrip(t *testing.T) {
	p := buildProject(t, map[string]string{
		"IService.aidl": `package com.example;
interface IService {
    const int VERSION = 2;
    oneway void notify(in int what);
}
`,
	})

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var back Project
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	again, err := json.Marshal(&back)
	if err != nil {
		t.Fatalf("re-marshal failed: %v", err)
	}

	var first, second map[string]any
	if err := json.Unmarshal(data, &first); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if err := json.Unmarshal(again, &second); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip changed the model:\nfirst:  %s\nsecond: %s", data, again)
	}
}

func TestSerializedOutputHasNoRangeKeys(t *testing.T) {
	p := buildProject(t, map[string]string{
		"IService.aidl": `package com.example;
interface IService {
    int getState();
}
`,
	})

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	assertNoRangeKeys(t, decoded)
}

func TestSerializedArgsKeyPerElementKind(t *testing.T) {
	p := buildProject(t, map[string]string{
		"IService.aidl": `package com.example;
interface IService {
    const int VERSION = 2;
    int getState();
}
`,
	})

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded struct {
		Items map[string]struct {
			Elements map[string]map[string]any `json:"elements"`
		} `json:"items"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	elems := decoded.Items["com.example.IService"].Elements

	method, ok := elems["getState"]
	if !ok {
		t.Fatalf("missing getState element in %s", data)
	}
	args, ok := method["args"]
	if !ok {
		t.Fatalf("expected an args key on a zero-arg method, got %v", method)
	}
	if list, isList := args.([]any); !isList || len(list) != 0 {
		t.Errorf("expected an empty args list, got %v", args)
	}

	konst, ok := elems["VERSION"]
	if !ok {
		t.Fatalf("missing VERSION element in %s", data)
	}
	if _, has := konst["args"]; has {
		t.Errorf("expected no args key on a const, got %v", konst["args"])
	}
}

func assertNoRangeKeys(t *testing.T, v any) {
	t.Helper()
	switch val := v.(type) {
	case map[string]any:
		for k, inner := range val {
			if strings.HasSuffix(k, "_range") {
				t.Errorf("serialized output leaks positional key %q", k)
			}
			assertNoRangeKeys(t, inner)
		}
	case []any:
		for _, inner := range val {
			assertNoRangeKeys(t, inner)
		}
	}
}

func keys(m map[string]Item) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
