package pipeline

import "bytes"

// LinesCodec splits subprocess output into line records.
//
// Decoding is eager: when the accumulated buffer holds no newline, the
// entire remainder is emitted immediately as its own record instead of
// waiting for a future newline. A non-terminated tail therefore becomes a
// record of its own.
type LinesCodec struct{}

// Encode is an identity passthrough: bytes in, bytes out.
func (LinesCodec) Encode(item string, dst *bytes.Buffer) {
	dst.WriteString(item)
}

// Decode emits the next record from the accumulating buffer. When a newline
// byte exists, everything up to and including it is one record and the
// remainder is retained; otherwise a non-empty buffer is drained whole. The
// second result reports whether a record was produced.
func (LinesCodec) Decode(src *bytes.Buffer) (string, bool) {
	if src.Len() == 0 {
		return "", false
	}
	if i := bytes.IndexByte(src.Bytes(), '\n'); i >= 0 {
		record := string(src.Next(i + 1))
		return record, true
	}
	record := src.String()
	src.Reset()
	return record, true
}
