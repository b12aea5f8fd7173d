package captions

import (
	"reflect"
	"testing"
)

// sample roulant réaliste : chaque cue ré-affiche la dernière ligne du
// précédent avec le markup karaoke sur la nouvelle ligne.
const rollingSample = "WEBVTT\nKind: captions\nLanguage: en\n\n" +
	"00:00:00.320 --> 00:00:02.870 align:start position:0%\n" +
	" \n" +
	"hello<00:00:00.560><c> and</c><00:00:00.800><c> welcome</c>\n\n" +
	"00:00:02.870 --> 00:00:05.120 align:start position:0%\n" +
	"hello and welcome\n" +
	"back<00:00:03.200><c> to</c><00:00:03.440><c> the</c><00:00:03.679><c> channel</c>\n\n" +
	"00:00:05.120 --> 00:00:07.440\n" +
	"back to the channel\n" +
	"today<00:00:05.759><c> we</c><00:00:06.000><c> talk</c>"

func TestProcess_RollingSample(t *testing.T) {
	res := Process(rollingSample)

	if res.Header != "WEBVTT\nKind: captions\nLanguage: en" {
		t.Fatalf("header = %q", res.Header)
	}
	if len(res.Matched) != 2 {
		t.Fatalf("got %d matched cues, want 2: %#v", len(res.Matched), res.Matched)
	}

	first := res.Matched[0]
	if first.ID != 1 || first.Start != "00:00:00.320" || first.End != "00:00:05.120" {
		t.Errorf("first cue = %+v", first)
	}
	if !reflect.DeepEqual(first.Lines, []string{"hello and welcome", "back to the channel"}) {
		t.Errorf("first lines = %#v", first.Lines)
	}

	second := res.Matched[1]
	if second.ID != 2 || second.Start != "00:00:05.120" || second.End != "00:00:07.440" {
		t.Errorf("second cue = %+v", second)
	}
}

func TestProcess_EmptyInput(t *testing.T) {
	res := Process("")
	if !res.Empty() {
		t.Errorf("expected empty result, got %#v", res.Matched)
	}
	if res.Header != "" {
		t.Errorf("header = %q; want empty", res.Header)
	}
}

func TestSerialize_Format(t *testing.T) {
	matched := []MatchedCue{
		{ID: 1, Start: "00:00:01.000", End: "00:00:03.000", Lines: []string{"one", "two"}},
		{ID: 2, Start: "00:00:03.000", End: "00:00:05.000", Lines: []string{"three"}},
	}
	got := Serialize("WEBVTT", matched)
	want := "WEBVTT\n\n" +
		"1\n00:00:01.000 --> 00:00:03.000\none\ntwo\n\n" +
		"2\n00:00:03.000 --> 00:00:05.000\nthree\n\n"
	if got != want {
		t.Errorf("serialized = %q; want %q", got, want)
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	// sérialiser un jeu de cues dont chaque ligne est déjà unique, puis
	// re-découper et re-aligner : on doit retrouver les mêmes cues
	matched := []MatchedCue{
		{ID: 1, Start: "00:00:01.000", End: "00:00:03.000", Lines: []string{"alpha"}},
		{ID: 2, Start: "00:00:03.000", End: "00:00:05.000", Lines: []string{"beta"}},
		{ID: 3, Start: "00:00:05.000", End: "00:00:07.000", Lines: []string{"gamma"}},
	}
	out := Serialize("WEBVTT", matched)

	res := Process(out)
	if res.Header != "WEBVTT" {
		t.Fatalf("header = %q", res.Header)
	}
	if len(res.Matched) != len(matched) {
		t.Fatalf("got %d matched cues, want %d: %#v", len(res.Matched), len(matched), res.Matched)
	}
	for i, cue := range res.Matched {
		orig := matched[i]
		if cue.Start != orig.Start || cue.End != orig.End {
			t.Errorf("cue %d: timestamps %s/%s; want %s/%s",
				i, cue.Start, cue.End, orig.Start, orig.End)
		}
		if !reflect.DeepEqual(cue.Lines, orig.Lines) {
			t.Errorf("cue %d: lines %#v; want %#v", i, cue.Lines, orig.Lines)
		}
	}
}
