package pages_test

import (
	"testing"

	"github.com/c360studio/enumkit/enum"
	"github.com/c360studio/enumkit/vocabulary/pages"
)

func TestConnectionTypesDeclaration(t *testing.T) {
	want := []string{
		"include-messy",
		"include-elements",
		"component",
		"link",
		"redirect",
	}

	values := pages.ConnectionTypes.Values()
	if len(values) != len(want) {
		t.Fatalf("ConnectionTypes has %d variants, want %d", len(values), len(want))
	}
	for i, v := range values {
		if string(v.Value) != want[i] {
			t.Errorf("variant %d = %q, want %q", i, v.Value, want[i])
		}
	}
}

func TestConnectionTypeIsValid(t *testing.T) {
	tests := []struct {
		value pages.ConnectionType
		want  bool
	}{
		{pages.ConnectionIncludeMessy, true},
		{pages.ConnectionIncludeElements, true},
		{pages.ConnectionComponent, true},
		{pages.ConnectionLink, true},
		{pages.ConnectionRedirect, true},
		{pages.ConnectionType("backlink"), false},
		{pages.ConnectionType(""), false},
	}

	for _, tc := range tests {
		t.Run(string(tc.value), func(t *testing.T) {
			if got := tc.value.IsValid(); got != tc.want {
				t.Errorf("IsValid(%q) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestRevisionTypesDeclaration(t *testing.T) {
	want := []string{"CREATE", "REGULAR", "MOVE", "DELETE", "UNDELETE"}

	names := pages.RevisionTypes.Names()
	if len(names) != len(want) {
		t.Fatalf("RevisionTypes has %d variants, want %d", len(names), len(want))
	}
	for i, name := range names {
		if name != want[i] {
			t.Errorf("name %d = %q, want %q", i, name, want[i])
		}
	}

	for _, v := range pages.RevisionTypes.Values() {
		if !v.Value.IsValid() {
			t.Errorf("declared revision type %q reported invalid", v.Value)
		}
	}
	if pages.RevisionType("rename").IsValid() {
		t.Error("IsValid(rename) = true, want false")
	}
}

func TestPageVocabulariesRegistered(t *testing.T) {
	for _, name := range []string{"page.connection", "page.revision"} {
		if _, ok := enum.Lookup(name); !ok {
			t.Errorf("%s not registered in default catalog", name)
		}
	}
}
