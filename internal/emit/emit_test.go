package emit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"aidlkit/internal/model"
)

func sampleProject() *model.Project {
	name := "what"
	args := []model.Arg{
		{Direction: model.DirIn, Name: &name, Type: "int"},
	}
	return &model.Project{
		Root: "/work",
		Items: map[string]model.Item{
			"com.example.Foo": {
				Path:     "Foo.aidl",
				ItemType: model.ItemInterface,
				Name:     "Foo",
				Elements: map[string]model.Element{
					"bar": {
						ElementType: model.ElementMethod,
						Name:        "bar",
						ReturnType:  "int",
						Args:        &args,
					},
				},
			},
		},
	}
}

func TestMarshalJSONCompact(t *testing.T) {
	data, err := Marshal(sampleProject(), Options{Format: FormatJSON})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytes.Contains(data, []byte("\n")) {
		t.Errorf("expected compact json, got newlines: %q", data)
	}
	var decoded model.Project
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if decoded.Root != "/work" {
		t.Errorf("expected root %q, got %q", "/work", decoded.Root)
	}
}

func TestMarshalJSONPretty(t *testing.T) {
	data, err := Marshal(sampleProject(), Options{Format: FormatJSON, Pretty: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(data, []byte("\n  \"items\"")) {
		t.Errorf("expected two-space indentation, got %q", data)
	}
}

func TestMarshalYAML(t *testing.T) {
	data, err := Marshal(sampleProject(), Options{Format: FormatYAML})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded model.Project
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid yaml: %v", err)
	}
	item, ok := decoded.Items["com.example.Foo"]
	if !ok {
		t.Fatalf("expected item com.example.Foo, got %v", decoded.Items)
	}
	if item.ItemType != model.ItemInterface {
		t.Errorf("expected item type %q, got %q", model.ItemInterface, item.ItemType)
	}
}

func TestWriteToStream(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(sampleProject(), Options{Format: FormatJSON}, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "\n\n") {
		t.Errorf("expected trailing blank line, got %q", out)
	}
	if strings.HasSuffix(out, "\n\n\n") {
		t.Errorf("expected exactly one blank line, got %q", out)
	}
}

func TestWriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "..", "project.json")
	if err := Write(sampleProject(), Options{Format: FormatJSON, Pretty: true, OutputPath: path}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !bytes.HasSuffix(data, []byte("}\n")) {
		t.Errorf("expected file to end with a single newline, got %q", data[len(data)-4:])
	}
	var decoded model.Project
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output file is not valid json: %v", err)
	}
}

func TestWriteTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.json")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), 1<<16), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}
	if err := Write(sampleProject(), Options{Format: FormatJSON, OutputPath: path}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if bytes.Contains(data, []byte("xxx")) {
		t.Errorf("expected file to be truncated, found leftover content")
	}
}

func TestWriteCreateFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "project.json")
	err := Write(sampleProject(), Options{Format: FormatJSON, OutputPath: path}, nil)
	if err == nil {
		t.Fatalf("expected error for unwritable path")
	}
	if !strings.Contains(err.Error(), "failed to create output file") {
		t.Errorf("expected create failure message, got %q", err)
	}
}
