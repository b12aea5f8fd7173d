package captions

import (
	"reflect"
	"testing"
)

func TestSplitCues_HeaderAndMarkupStripping(t *testing.T) {
	raw := "WEBVTT\nKind: captions\nLanguage: en\n\n" +
		"00:00:01.000 --> 00:00:03.000 align:start position:0%\n" +
		" \n" +
		"hello<00:00:01.280><c> and</c><00:00:01.520><c> welcome</c>"

	header, cues, queue := SplitCues(raw)

	if header != "WEBVTT\nKind: captions\nLanguage: en" {
		t.Fatalf("header = %q", header)
	}
	if len(cues) != 1 {
		t.Fatalf("got %d cues, want 1: %#v", len(cues), cues)
	}
	cue := cues[0]
	if cue.Start != "00:00:01.000" || cue.End != "00:00:03.000" {
		t.Errorf("timestamps = %s / %s", cue.Start, cue.End)
	}
	// le markup inline (stamps + balises <c>) doit avoir disparu,
	// la ligne " " intermédiaire aussi
	wantLines := []string{"hello and welcome"}
	if !reflect.DeepEqual(cue.Lines, wantLines) {
		t.Errorf("lines = %#v; want %#v", cue.Lines, wantLines)
	}
	if got := queue.Lines(); !reflect.DeepEqual(got, wantLines) {
		t.Errorf("queue = %#v; want %#v", got, wantLines)
	}
}

func TestSplitCues_EmptyInput(t *testing.T) {
	header, cues, queue := SplitCues("")
	if header != "" {
		t.Errorf("header = %q; want empty", header)
	}
	if len(cues) != 0 {
		t.Errorf("got %d cues; want 0", len(cues))
	}
	if !queue.Empty() {
		t.Errorf("queue should be empty, got %#v", queue.Lines())
	}
}

func TestSplitCues_MalformedTimestampLineIsText(t *testing.T) {
	// une ligne qui ne matche pas le motif de timestamps est du texte,
	// jamais une erreur
	raw := "WEBVTT\n\n0:0:1.0 --> 00:00:03.000\nreal text"
	_, cues, _ := SplitCues(raw)
	if len(cues) != 1 {
		t.Fatalf("got %d cues, want 1", len(cues))
	}
	if cues[0].HasTimestamps() {
		t.Errorf("malformed timestamp line should not set Start/End: %#v", cues[0])
	}
	wantLines := []string{"0:0:1.0 --> 00:00:03.000", "real text"}
	if !reflect.DeepEqual(cues[0].Lines, wantLines) {
		t.Errorf("lines = %#v; want %#v", cues[0].Lines, wantLines)
	}
}

func TestSplitCues_TimestampSeparatorsOptional(t *testing.T) {
	// le motif accepte des groupes sans séparateur ":" (largeur fixe)
	raw := "WEBVTT\n\n000001.000 --> 000003.000\nhi"
	_, cues, _ := SplitCues(raw)
	if len(cues) != 1 || !cues[0].HasTimestamps() {
		t.Fatalf("expected one timestamped cue, got %#v", cues)
	}
	if cues[0].Start != "000001.000" {
		t.Errorf("start = %q", cues[0].Start)
	}
}

func TestLineQueue_DedupWindow(t *testing.T) {
	tests := []struct {
		name string
		push []string
		want []string
	}{
		{
			name: "repeat in 5 consecutive cues kept once",
			push: []string{"X", "X", "X", "X", "X"},
			want: []string{"X"},
		},
		{
			name: "blank lines skipped",
			push: []string{"", "  ", "a"},
			want: []string{"a"},
		},
		{
			name: "repeat outside window accepted again",
			push: []string{"X", "a", "b", "c", "d", "X"},
			want: []string{"X", "a", "b", "c", "d", "X"},
		},
		{
			name: "repeat inside window suppressed",
			push: []string{"X", "a", "b", "c", "X"},
			want: []string{"X", "a", "b", "c"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var q LineQueue
			for _, l := range tc.push {
				q.Push(l)
			}
			if got := q.Lines(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("queue = %#v; want %#v", got, tc.want)
			}
		})
	}
}

func TestLineQueue_RemoveFirstOccurrence(t *testing.T) {
	var q LineQueue
	for _, l := range []string{"a", "b", "c"} {
		q.Push(l)
	}
	if !q.Remove("b") {
		t.Fatal("Remove(b) = false")
	}
	if q.Remove("zz") {
		t.Error("Remove(zz) should be false")
	}
	if got := q.Lines(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("queue = %#v", got)
	}
}
