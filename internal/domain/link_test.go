package domain

import "testing"

func TestNormalizeLinkInput(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		url       string
		wantTitle string
		wantURL   string
		wantErr   bool
	}{
		{
			name:      "valid input",
			title:     "Example",
			url:       "https://example.com",
			wantTitle: "Example",
			wantURL:   "https://example.com",
		},
		{
			name:      "surrounding whitespace trimmed",
			title:     "  Example  ",
			url:       "\thttps://example.com\n",
			wantTitle: "Example",
			wantURL:   "https://example.com",
		},
		{
			name:    "empty title",
			title:   "",
			url:     "https://example.com",
			wantErr: true,
		},
		{
			name:    "whitespace-only title",
			title:   "   ",
			url:     "https://example.com",
			wantErr: true,
		},
		{
			name:    "whitespace-only url",
			title:   "Example",
			url:     " \t ",
			wantErr: true,
		},
		{
			name:      "single character is enough",
			title:     "a",
			url:       "b",
			wantTitle: "a",
			wantURL:   "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, url, err := NormalizeLinkInput(tt.title, tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeLinkInput(%q, %q) expected error, got none", tt.title, tt.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeLinkInput(%q, %q) unexpected error: %v", tt.title, tt.url, err)
			}
			if title != tt.wantTitle || url != tt.wantURL {
				t.Errorf("NormalizeLinkInput() = (%q, %q), want (%q, %q)", title, url, tt.wantTitle, tt.wantURL)
			}
		})
	}
}

func TestSortByOrder(t *testing.T) {
	items := []LinkItem{
		{ID: "c", Order: 2},
		{ID: "a", Order: 0},
		{ID: "b", Order: 1},
	}

	SortByOrder(items)

	want := []string{"a", "b", "c"}
	for i, id := range want {
		if items[i].ID != id {
			t.Errorf("items[%d].ID = %s, want %s", i, items[i].ID, id)
		}
	}
}

func TestSortByOrderTieBreak(t *testing.T) {
	items := []LinkItem{
		{ID: "b", Order: 0, CreatedAt: 200},
		{ID: "a", Order: 0, CreatedAt: 100},
	}

	SortByOrder(items)

	if items[0].ID != "a" {
		t.Errorf("expected older item first on equal order, got %s", items[0].ID)
	}
}
