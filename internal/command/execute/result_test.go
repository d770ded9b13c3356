package execute

import (
	"testing"

	"tubaudio/internal/models"
)

func TestParseResult_Absent(t *testing.T) {
	for _, in := range []string{"", "\n", "null", "[download] nothing here\n"} {
		res, err := ParseResult(in)
		if err != nil {
			t.Fatalf("ParseResult(%q): unexpected error %v", in, err)
		}
		if res.Kind != models.ResultAbsent {
			t.Fatalf("ParseResult(%q): expected absent, got %v", in, res.Kind)
		}
	}
}

func TestParseResult_Single(t *testing.T) {
	out := "[info] something\n{\"_type\": \"video\", \"id\": \"abc\", \"title\": \"My:Song\"}\n"

	res, err := ParseResult(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Kind != models.ResultSingle {
		t.Fatalf("expected single, got %v", res.Kind)
	}
	if res.Single == nil || res.Single.Title != "My:Song" || res.Single.ID != "abc" {
		t.Fatalf("unexpected item %+v", res.Single)
	}
}

func TestParseResult_Collection(t *testing.T) {
	out := `{"_type": "playlist", "title": "list", "entries": [{"id": "1", "title": "One"}, null, {"_type": "playlist", "entries": [{"id": "2", "title": "Two"}, null]}]}`

	res, err := ParseResult(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Kind != models.ResultCollection {
		t.Fatalf("expected collection, got %v", res.Kind)
	}
	if len(res.Entries) != 4 {
		t.Fatalf("expected 4 flattened slots, got %d", len(res.Entries))
	}
	if res.Entries[0] == nil || res.Entries[0].Title != "One" {
		t.Fatalf("unexpected first entry %+v", res.Entries[0])
	}
	if res.Entries[1] != nil || res.Entries[3] != nil {
		t.Fatalf("expected unavailable slots to stay nil")
	}
	if res.Entries[2] == nil || res.Entries[2].Title != "Two" {
		t.Fatalf("unexpected nested entry %+v", res.Entries[2])
	}
}

func TestParseResult_EmptyPlaylist(t *testing.T) {
	res, err := ParseResult(`{"_type": "playlist", "entries": []}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Kind != models.ResultCollection || len(res.Entries) != 0 {
		t.Fatalf("expected empty collection, got %+v", res)
	}
}

func TestParseResult_Malformed(t *testing.T) {
	if _, err := ParseResult(`{"_type": "video", "title": `); err == nil {
		t.Fatalf("expected decode error for truncated JSON")
	}
}

func TestExtractionFailure(t *testing.T) {
	stderr := "[debug] x\nERROR: [youtube] abc: Video unavailable\n[debug] y\n"
	err := extractionFailure(stderr, nil)
	if err.Error() != "ERROR: [youtube] abc: Video unavailable" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
