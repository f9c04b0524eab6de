package parser

import (
	"testing"

	"aidlkit/internal/ast"
	"aidlkit/internal/diag"
	"aidlkit/internal/source"
)

func parseSrc(t *testing.T, input string) (*ast.File, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.aidl", []byte(input))
	bag := diag.NewBag(100)
	f := ParseFile(fs.Get(id), Options{Reporter: diag.BagReporter{Bag: bag}})
	return f, bag
}

func TestParseInterface(t *testing.T) {
	input := `package com.example;

import com.example.Data;

/** Service interface. */
interface IService {
    const int VERSION = 2;

    /** Returns the current state. */
    int getState();

    oneway void notify(in int what, inout Data data, out String result);

    void setName(String name) = 7;
}
`
	f, bag := parseSrc(t, input)
	if bag.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %d: %+v", bag.Len(), bag.Items())
	}
	if f == nil {
		t.Fatal("expected AST, got nil")
	}
	if f.Package.Name != "com.example" {
		t.Errorf("expected package %q, got %q", "com.example", f.Package.Name)
	}
	if len(f.Imports) != 1 || f.Imports[0].Path != "com.example.Data" {
		t.Fatalf("unexpected imports %+v", f.Imports)
	}

	iface, ok := f.Item.(*ast.Interface)
	if !ok {
		t.Fatalf("expected *ast.Interface, got %T", f.Item)
	}
	if iface.Name != "IService" {
		t.Errorf("expected name IService, got %q", iface.Name)
	}
	if iface.Doc != "Service interface." {
		t.Errorf("expected interface doc, got %q", iface.Doc)
	}
	if len(iface.Members) != 4 {
		t.Fatalf("expected 4 members, got %d", len(iface.Members))
	}

	c, ok := iface.Members[0].(*ast.Const)
	if !ok {
		t.Fatalf("expected const first, got %T", iface.Members[0])
	}
	if c.Name != "VERSION" || c.Value != "2" || c.Type.Name != "int" {
		t.Errorf("unexpected const %+v", c)
	}

	get, ok := iface.Members[1].(*ast.Method)
	if !ok {
		t.Fatalf("expected method second, got %T", iface.Members[1])
	}
	if get.Name != "getState" || get.ReturnType.Name != "int" || len(get.Args) != 0 {
		t.Errorf("unexpected method %+v", get)
	}
	if get.Doc != "Returns the current state." {
		t.Errorf("expected method doc, got %q", get.Doc)
	}

	notify, ok := iface.Members[2].(*ast.Method)
	if !ok {
		t.Fatalf("expected method third, got %T", iface.Members[2])
	}
	if !notify.Oneway {
		t.Error("expected oneway flag")
	}
	wantDirs := []ast.Direction{ast.DirIn, ast.DirInOut, ast.DirOut}
	if len(notify.Args) != len(wantDirs) {
		t.Fatalf("expected %d args, got %d", len(wantDirs), len(notify.Args))
	}
	for i, d := range wantDirs {
		if notify.Args[i].Direction != d {
			t.Errorf("arg %d: expected direction %v, got %v", i, d, notify.Args[i].Direction)
		}
	}

	setName, ok := iface.Members[3].(*ast.Method)
	if !ok {
		t.Fatalf("expected method fourth, got %T", iface.Members[3])
	}
	if setName.TransactionID == nil || *setName.TransactionID != 7 {
		t.Errorf("expected transaction id 7, got %v", setName.TransactionID)
	}
	if setName.Args[0].Direction != ast.DirUnspecified {
		t.Errorf("expected unspecified direction, got %v", setName.Args[0].Direction)
	}
	if setName.Args[0].Name != "name" {
		t.Errorf("expected arg name %q, got %q", "name", setName.Args[0].Name)
	}
}

func TestParseParcelable(t *testing.T) {
	input := `package com.example;

parcelable Data {
    int id;
    /** Display names. */
    List<String> names;
    Map<String, List<int>> index;
    byte[] payload;
    int flags = 0;
}
`
	f, bag := parseSrc(t, input)
	if bag.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %+v", bag.Items())
	}

	par, ok := f.Item.(*ast.Parcelable)
	if !ok {
		t.Fatalf("expected *ast.Parcelable, got %T", f.Item)
	}
	if len(par.Fields) != 5 {
		t.Fatalf("expected 5 fields, got %d", len(par.Fields))
	}

	names := par.Fields[1]
	if names.Type.Kind != ast.TypeList || len(names.Type.Generic) != 1 {
		t.Errorf("unexpected List type %+v", names.Type)
	}
	if names.Doc != "Display names." {
		t.Errorf("expected field doc, got %q", names.Doc)
	}

	index := par.Fields[2]
	if index.Type.Kind != ast.TypeMap || len(index.Type.Generic) != 2 {
		t.Fatalf("unexpected Map type %+v", index.Type)
	}
	if index.Type.Generic[1].Kind != ast.TypeList {
		t.Errorf("expected nested List, got %+v", index.Type.Generic[1])
	}

	payload := par.Fields[3]
	if payload.Type.Kind != ast.TypeArray || payload.Type.Name != "Array" {
		t.Fatalf("unexpected array type %+v", payload.Type)
	}
	if payload.Type.Generic[0].Name != "byte" {
		t.Errorf("expected byte element type, got %+v", payload.Type.Generic[0])
	}
}

func TestParseEnum(t *testing.T) {
	input := `package com.example;

enum Status {
    UNKNOWN = 0,
    STARTED,
    DONE = 0x2,
}
`
	f, bag := parseSrc(t, input)
	if bag.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %+v", bag.Items())
	}

	enum, ok := f.Item.(*ast.Enum)
	if !ok {
		t.Fatalf("expected *ast.Enum, got %T", f.Item)
	}
	if len(enum.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(enum.Elements))
	}
	if enum.Elements[0].Value != "0" {
		t.Errorf("expected UNKNOWN value %q, got %q", "0", enum.Elements[0].Value)
	}
	if enum.Elements[1].Value != "" {
		t.Errorf("expected implicit STARTED value, got %q", enum.Elements[1].Value)
	}
	if enum.Elements[2].Value != "0x2" {
		t.Errorf("expected DONE value %q, got %q", "0x2", enum.Elements[2].Value)
	}
}

func TestParseAnnotationsSkipped(t *testing.T) {
	input := `package com.example;

@UnsupportedAppUsage
interface IService {
    @nullable String name(@utf8 in String key);
}
`
	f, bag := parseSrc(t, input)
	if bag.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %+v", bag.Items())
	}
	iface := f.Item.(*ast.Interface)
	if len(iface.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(iface.Members))
	}
}

func TestParseErrorProducesNoAST(t *testing.T) {
	f, bag := parseSrc(t, "this is not aidl at all")
	if f != nil {
		t.Errorf("expected nil AST for unparseable input, got %+v", f)
	}
	if !bag.HasErrors() {
		t.Error("expected at least one error diagnostic")
	}
}

func TestParseRecoversAfterBadMember(t *testing.T) {
	input := `package com.example;

interface IService {
    int ();
    int good();
}
`
	f, bag := parseSrc(t, input)
	if !bag.HasErrors() {
		t.Fatal("expected error diagnostics for the bad member")
	}
	if f == nil {
		t.Fatal("expected partial AST despite member error")
	}
	iface := f.Item.(*ast.Interface)
	found := false
	for _, m := range iface.Members {
		if m.MemberName() == "good" {
			found = true
		}
	}
	if !found {
		t.Error("expected parser to recover and keep the following member")
	}
}

func TestParseSecondItemRejected(t *testing.T) {
	input := `package com.example;

interface IFirst {}
interface ISecond {}
`
	f, bag := parseSrc(t, input)
	if f == nil {
		t.Fatal("expected AST for first item")
	}
	if f.Item.ItemName() != "IFirst" {
		t.Errorf("expected first item kept, got %q", f.Item.ItemName())
	}
	if !bag.HasErrors() {
		t.Fatal("expected an error for the extra item")
	}
	d := bag.Items()[0]
	if d.Code != diag.SynExtraItem {
		t.Errorf("expected SynExtraItem, got %v", d.Code)
	}
	if len(d.Related) != 1 {
		t.Errorf("expected one related info pointing at the first item, got %d", len(d.Related))
	}
	if d.Hint == "" {
		t.Error("expected a hint on the extra-item diagnostic")
	}
}

func TestParseDuplicateMembersAccepted(t *testing.T) {
	// Duplicate member names are not a syntax error; the projection layer
	// folds them (last one wins).
	input := `package com.example;

interface IService {
    int ping();
    void ping(in int x);
}
`
	f, bag := parseSrc(t, input)
	if bag.HasErrors() {
		t.Fatalf("expected no errors, got %+v", bag.Items())
	}
	iface := f.Item.(*ast.Interface)
	if len(iface.Members) != 2 {
		t.Errorf("expected both duplicate members in the AST, got %d", len(iface.Members))
	}
}
