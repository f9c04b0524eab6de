package main

import (
	"os"
	"testing"

	"aidlkit/internal/ast"
)

func TestUseColorModes(t *testing.T) {
	cases := []struct {
		mode    string
		want    bool
		wantErr bool
	}{
		{mode: "on", want: true},
		{mode: "off", want: false},
		{mode: "rainbow", wantErr: true},
	}
	for _, tc := range cases {
		got, err := useColor(tc.mode, os.Stderr)
		if tc.wantErr {
			if err == nil {
				t.Errorf("useColor(%q): expected error, got none", tc.mode)
			}
			continue
		}
		if err != nil {
			t.Errorf("useColor(%q): unexpected error: %v", tc.mode, err)
			continue
		}
		if got != tc.want {
			t.Errorf("useColor(%q) = %v, want %v", tc.mode, got, tc.want)
		}
	}
}

func TestSetupLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := setupLogger("loud"); err == nil {
		t.Errorf("expected error for unknown log level")
	}
	if _, err := setupLogger("debug"); err != nil {
		t.Errorf("unexpected error for valid level: %v", err)
	}
}

func TestItemKind(t *testing.T) {
	cases := []struct {
		item ast.Item
		want string
	}{
		{item: &ast.Interface{Name: "I"}, want: "interface"},
		{item: &ast.Parcelable{Name: "P"}, want: "parcelable"},
		{item: &ast.Enum{Name: "E"}, want: "enum"},
	}
	for _, tc := range cases {
		if got := itemKind(tc.item); got != tc.want {
			t.Errorf("itemKind(%T) = %q, want %q", tc.item, got, tc.want)
		}
	}
}
