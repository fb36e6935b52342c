// Package stream turns raw markup token streams into shape trees.
//
// The package has two layers, consumed in order:
//
// Decoder normalizes a raw XML token stream into a minimal two-variant
// event type, EventOpenElement and EventCloseElement. All other token
// kinds (text, comments, processing instructions, directives) are dropped
// without emission. The event sequence is lazy, finite and single-pass.
//
// Builder consumes the event sequence and maintains a current position in
// a growing shape tree: an open event moves to a child, created on first
// sighting of a name at that position and reused on repeat sightings; a
// close event moves back to the parent. The root is the permanent floor
// of the position stack, so a stray close at the root never pops it away.
//
// # Example
//
//	dec := stream.NewDecoder(r)
//	root, err := stream.Build(dec)
//	if err != nil {
//	    return err
//	}
//	encode.Encode(root, os.Stdout)
//
// # Error policy
//
// The decoder recovers from tokenizer errors by truncating: it logs a
// diagnostic and ends the sequence as if the document had ended. The
// builder then sees fewer events and returns a smaller tree; partial
// shape information is considered better than no output. Callers that
// want to surface the truncation can inspect Decoder.Err after draining
// the stream.
package stream
