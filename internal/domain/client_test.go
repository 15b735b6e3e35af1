package domain

import (
	"reflect"
	"testing"
)

func TestSplitIssues(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "vacio", raw: "", want: []string{}},
		{name: "solo espacios", raw: "   ", want: []string{}},
		{name: "una etiqueta", raw: "Anxiety", want: []string{"Anxiety"}},
		{name: "varias con espacios", raw: " Anxiety , Depression,,Trauma ", want: []string{"Anxiety", "Depression", "Trauma"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitIssues(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestJoinIssuesRoundTrip(t *testing.T) {
	joined := JoinIssues([]string{" Anxiety", "", "Trauma "})
	if joined != "Anxiety,Trauma" {
		t.Fatalf("unexpected join result: %q", joined)
	}
}

func TestClientPreferences(t *testing.T) {
	c := Client{
		Budget:            1000,
		PreferOnline:      true,
		PreferredGender:   " Female ",
		PreferredLanguage: " Ukrainian",
		Issues:            []string{"Anxiety", " "},
	}
	p := c.Preferences()
	if p.Budget != 1000 || !p.PreferOnline || p.PreferOffline {
		t.Fatalf("unexpected scalar fields: %+v", p)
	}
	if p.PreferredGender != "Female" || p.PreferredLanguage != "Ukrainian" {
		t.Fatalf("expected trimmed preferences, got %+v", p)
	}
	if len(p.Issues) != 1 || p.Issues[0] != "Anxiety" {
		t.Fatalf("expected normalized issues, got %v", p.Issues)
	}
}
