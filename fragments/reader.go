package fragments

// A SigReader is a stateless-over-the-input cursor into a DBus type
// signature. It is the "types-only" projection of the full
// marshaling subsystem's type reader: it never looks at a message
// body, only at the signature bytes, and its job is purely to keep a
// body validator's notion of "what type comes next" synchronized with
// the body's byte cursor.
//
// A SigReader assumes its backing signature has already passed
// signature grammar validation; it does no bounds or grammar checking
// of its own; a malformed backing signature causes undefined
// behavior in SigReader, same as in the reference validator this is
// modeled on.
type SigReader struct {
	sig []byte
	pos int
}

// NewSigReader initializes a types-only reader over sig.
func NewSigReader(sig []byte) SigReader {
	return SigReader{sig: sig}
}

// Current returns the typecode of the next unread type, or [NoType]
// if the reader is exhausted.
func (r SigReader) Current() Typecode {
	if r.pos >= len(r.sig) {
		return NoType
	}
	return Typecode(r.sig[r.pos])
}

// Advance skips past the current type, including all of its nested
// element/field types. It is a no-op if the reader is exhausted.
func (r *SigReader) Advance() {
	if r.pos >= len(r.sig) {
		return
	}
	r.pos += r.spanLen(r.pos)
}

// Recurse returns a reader scoped to the field types of the current
// struct. It panics if the current type isn't a struct; callers
// dispatch on [SigReader.Current] before calling it.
func (r SigReader) Recurse() SigReader {
	if r.Current() != TStructBegin {
		panic("Recurse called when current type is not a struct")
	}
	end := r.pos + r.spanLen(r.pos)
	// end-1 is the matching ')'; the fields are strictly between the
	// parens.
	return SigReader{sig: r.sig[r.pos+1 : end-1]}
}

// ElementType returns a reader scoped to exactly the element type of
// the current array (one complete type, never more). It panics if
// the current type isn't an array.
func (r SigReader) ElementType() SigReader {
	if r.Current() != TArray {
		panic("ElementType called when current type is not an array")
	}
	start := r.pos + 1
	n := r.spanLen(start)
	return SigReader{sig: r.sig[start : start+n]}
}

// spanLen returns the number of signature bytes occupied by the
// single complete type starting at pos, including all nested types.
func (r SigReader) spanLen(pos int) int {
	if pos >= len(r.sig) {
		return 0
	}
	switch Typecode(r.sig[pos]) {
	case TArray:
		return 1 + r.spanLen(pos+1)
	case TStructBegin:
		depth := 1
		i := pos + 1
		for depth > 0 && i < len(r.sig) {
			switch Typecode(r.sig[i]) {
			case TStructBegin:
				depth++
			case TStructEnd:
				depth--
			}
			i++
		}
		return i - pos
	default:
		return 1
	}
}
