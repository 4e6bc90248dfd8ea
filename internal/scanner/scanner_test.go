package scanner

import (
	"testing"
)

func TestTags(t *testing.T) {
	got := Tags([]byte("Today I worked on #rust and #cli\nthen #rust again"))
	want := []string{"#rust", "#cli", "#rust"}
	if len(got) != len(want) {
		t.Fatalf("Tags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tag %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTagsWordCharacters(t *testing.T) {
	got := Tags([]byte("#snake_case #v2 #café #日本 # #-dash end#tail"))
	want := []string{"#snake_case", "#v2", "#café", "#日本", "#tail"}
	if len(got) != len(want) {
		t.Fatalf("Tags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tag %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTagsHeading(t *testing.T) {
	// A Markdown heading marker followed by a space is not a tag.
	got := Tags([]byte("# 2025-01-02.md\n\n## Notes\n"))
	if len(got) != 0 {
		t.Errorf("Tags = %v, want none", got)
	}
}

func TestTagsNone(t *testing.T) {
	if got := Tags(nil); len(got) != 0 {
		t.Errorf("Tags(nil) = %v", got)
	}
}

func TestContains(t *testing.T) {
	data := []byte("Meeting with Alice about (a+b)*")
	cases := []struct {
		query string
		want  bool
	}{
		{"Alice", true},
		{"alice", false},
		{"(a+b)*", true},
		{"a.b", false},
		{"", true},
	}
	for _, c := range cases {
		if got := Contains(data, c.query); got != c.want {
			t.Errorf("Contains(%q) = %v, want %v", c.query, got, c.want)
		}
	}
}

func TestIsText(t *testing.T) {
	if !IsText([]byte("plain")) {
		t.Error("plain ASCII should be text")
	}
	if IsText([]byte{0xff, 0xfe, 0x00}) {
		t.Error("invalid UTF-8 should not be text")
	}
}
