package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"psy-match/internal/ranking"
)

func TestHelpHandlerLists(t *testing.T) {
	srv := setupRouter(t, &mockSpecialistRepo{}, nil)

	cases := []struct {
		path     string
		contains string
		size     int
	}{
		{path: "/help/specializations", contains: "Stress Management", size: 17},
		{path: "/help/languages", contains: "Ukrainian", size: 7},
		{path: "/help/genders", contains: "Any", size: 3},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := performRequest(srv.router, http.MethodGet, tc.path, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", rec.Code)
			}
			var items []string
			if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(items) != tc.size {
				t.Fatalf("expected %d items, got %d", tc.size, len(items))
			}
			found := false
			for _, it := range items {
				if it == tc.contains {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected %q in %v", tc.contains, items)
			}
		})
	}
}

func TestHelpHandlerTopsis(t *testing.T) {
	srv := setupRouter(t, &mockSpecialistRepo{}, nil)

	rec := performRequest(srv.router, http.MethodGet, "/help/topsis", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var body struct {
		Criteria []struct {
			Name   string `json:"name"`
			Weight string `json:"weight"`
		} `json:"criteria"`
		Bands []struct {
			Band string `json:"band"`
		} `json:"bands"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Criteria) != ranking.NumCriteria {
		t.Fatalf("expected %d criteria, got %d", ranking.NumCriteria, len(body.Criteria))
	}
	want := map[string]string{"price": "25%", "category": "35%", "language": "15%", "gender": "10%", "format": "15%"}
	for _, c := range body.Criteria {
		if want[c.Name] != c.Weight {
			t.Fatalf("criterion %s: expected %s, got %s", c.Name, want[c.Name], c.Weight)
		}
	}
	if len(body.Bands) != 3 {
		t.Fatalf("expected 3 bands, got %d", len(body.Bands))
	}
}
