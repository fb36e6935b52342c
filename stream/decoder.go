package stream

import (
	"encoding/xml"
	"io"
	"log/slog"
)

// Decoder reads a raw XML token stream and produces Open/Close events.
// It is a pure filter: element tokens map to events by local name, every
// other token kind is dropped. A Decoder is single-pass and not
// restartable.
type Decoder struct {
	dec  *xml.Decoder
	opts *streamOpts

	err  error
	done bool
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...StreamOption) *Decoder {
	streamOpts := &streamOpts{}
	for _, opt := range opts {
		opt(streamOpts)
	}
	if streamOpts.logger == nil {
		streamOpts.logger = slog.Default()
	}
	return &Decoder{
		dec:  xml.NewDecoder(r),
		opts: streamOpts,
	}
}

// ReadEvent returns the next Open or Close event, or io.EOF when the
// stream is exhausted.
//
// A tokenizer error other than io.EOF ends the sequence early: the error
// is logged, recorded for Err, and ReadEvent returns io.EOF as if the
// document had ended. Callers must tolerate a sequence that stops before
// the real document end.
func (d *Decoder) ReadEvent() (*Event, error) {
	if d.done {
		return nil, io.EOF
	}
	for {
		tok, err := d.dec.Token()
		if err != nil {
			d.done = true
			if err != io.EOF {
				d.err = err
				d.opts.logger.Error("truncating malformed input", "err", err)
			}
			return nil, io.EOF
		}
		switch t := tok.(type) {
		case xml.StartElement:
			ev := Open(t.Name.Local)
			return &ev, nil
		case xml.EndElement:
			ev := Close(t.Name.Local)
			return &ev, nil
		}
	}
}

// Err returns the tokenizer error that truncated the stream, if any. It
// is meaningful once ReadEvent has returned io.EOF.
func (d *Decoder) Err() error {
	return d.err
}
