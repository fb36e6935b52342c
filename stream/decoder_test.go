package stream

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func drain(t *testing.T, d *Decoder) []Event {
	t.Helper()
	var res []Event
	for {
		ev, err := d.ReadEvent()
		if err == io.EOF {
			return res
		}
		if err != nil {
			t.Fatalf("ReadEvent: %v", err)
		}
		res = append(res, *ev)
	}
}

func TestDecoderEvents(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []Event
	}{
		{
			"single element",
			`<parent></parent>`,
			[]Event{Open("parent"), Close("parent")},
		},
		{
			"self closing",
			`<parent/>`,
			[]Event{Open("parent"), Close("parent")},
		},
		{
			"nested",
			`<a><b></b></a>`,
			[]Event{Open("a"), Open("b"), Close("b"), Close("a")},
		},
		{
			"non-element tokens dropped",
			`<?xml version="1.0"?>
<!-- comment -->
<a>text<!-- inner --><b attr="v">more</b></a>`,
			[]Event{Open("a"), Open("b"), Close("b"), Close("a")},
		},
		{
			"namespaces reduced to local names",
			`<x:a xmlns:x="urn:test"><x:b/></x:a>`,
			[]Event{Open("a"), Open("b"), Close("b"), Close("a")},
		},
		{
			"empty input",
			``,
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := NewDecoder(strings.NewReader(tt.doc))
			got := drain(t, dec)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
			if dec.Err() != nil {
				t.Errorf("unexpected Err: %v", dec.Err())
			}
		})
	}
}

func TestDecoderTruncatesOnMalformedInput(t *testing.T) {
	// the closing tag never arrives and the junk is not well-formed
	doc := `<a><b></b><<<`
	dec := NewDecoder(strings.NewReader(doc), WithLogger(discardLogger()))
	got := drain(t, dec)
	want := []Event{Open("a"), Open("b"), Close("b")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if dec.Err() == nil {
		t.Error("Err should record the truncation cause")
	}
	// once truncated, the decoder stays at EOF
	if _, err := dec.ReadEvent(); err != io.EOF {
		t.Errorf("ReadEvent after truncation = %v, want io.EOF", err)
	}
}

func TestDecoderTruncatesOnReadError(t *testing.T) {
	readErr := &fs.PathError{Op: "read", Path: "x", Err: errors.New("boom")}
	r := io.MultiReader(strings.NewReader("<a><b/>"), &errReader{err: readErr})
	dec := NewDecoder(r, WithLogger(discardLogger()))
	got := drain(t, dec)
	want := []Event{Open("a"), Open("b"), Close("b")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if dec.Err() == nil {
		t.Error("Err should record the read error")
	}
}

type errReader struct {
	err error
}

func (r *errReader) Read([]byte) (int, error) {
	return 0, r.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
