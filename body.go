package dbusvalidate

import "github.com/TeamBitBean/dbusvalidate/fragments"

// alignTo advances cursor to the next multiple of align (relative to
// the start of the message that buf represents), requiring every
// skipped byte to be 0x00. It never reads past end.
func alignTo(buf fragments.Bytes, cursor, end, align int) (int, Validity) {
	if align <= 1 {
		return cursor, Valid
	}
	rem := cursor % align
	if rem == 0 {
		return cursor, Valid
	}
	aligned := cursor + (align - rem)
	if aligned > end {
		return cursor, NotEnoughData
	}
	pad, ok := buf.Slice(cursor, aligned-cursor)
	if !ok || !fragments.AllNUL(pad) {
		return cursor, AlignmentPaddingNotNUL
	}
	return aligned, Valid
}

// readFixed aligns to align, then consumes exactly width bytes,
// returning them and the cursor just past them.
func readFixed(buf fragments.Bytes, cursor, end, align, width int) ([]byte, int, Validity) {
	cursor, v := alignTo(buf, cursor, end, align)
	if v != Valid {
		return nil, cursor, v
	}
	if cursor+width > end {
		return nil, cursor, NotEnoughData
	}
	bs, ok := buf.Slice(cursor, width)
	if !ok {
		return nil, cursor, NotEnoughData
	}
	return bs, cursor + width, Valid
}

// consumeNUL requires one more byte at cursor and that it be 0x00,
// reporting missing if it's present but nonzero, and NotEnoughData if
// there's no byte left at all.
func consumeNUL(buf fragments.Bytes, cursor, end int, missing Validity) (int, Validity) {
	if cursor >= end {
		return cursor, NotEnoughData
	}
	b, ok := buf.Slice(cursor, 1)
	if !ok {
		return cursor, NotEnoughData
	}
	if b[0] != 0 {
		return cursor, missing
	}
	return cursor + 1, Valid
}

// ValidateBody checks that body is a well-formed DBus message body
// for the given, already-grammar-validated, signature and byte
// order.
//
// If bytesRemaining is non-nil, it receives the number of body bytes
// left over after every value named by sig has been validated, and a
// nonzero remainder is not itself an error. If bytesRemaining is nil,
// any leftover bytes cause [TooMuchData].
//
// sig must already have passed [ValidateSignature]; ValidateBody does
// not re-check the signature grammar for the top-level signature (it
// does validate signatures and variant signatures embedded within the
// body itself, since those come from the untrusted peer too).
func ValidateBody(sig []byte, order fragments.ByteOrder, body []byte, bytesRemaining *int) Validity {
	r := fragments.NewSigReader(sig)
	buf := fragments.NewBytes(body)
	cursor, v := validateValue(r, order, true, buf, 0, buf.Len())
	if v != Valid {
		return v
	}
	if bytesRemaining != nil {
		*bytesRemaining = buf.Len() - cursor
		return Valid
	}
	if cursor < buf.Len() {
		return TooMuchData
	}
	return Valid
}

// validateValue walks r against buf[cursor:end], validating one
// value if walkToEnd is false, or every remaining value named by r if
// walkToEnd is true (the struct case: termination is by schema, not
// by a length prefix).
func validateValue(r fragments.SigReader, order fragments.ByteOrder, walkToEnd bool, buf fragments.Bytes, cursor, end int) (int, Validity) {
	for {
		t := r.Current()
		if t == fragments.NoType {
			return cursor, Valid
		}
		if cursor >= end {
			return cursor, NotEnoughData
		}

		newCursor, v := validateOne(t, r, order, buf, cursor, end)
		if v != Valid {
			return newCursor, v
		}
		cursor = newCursor

		if !walkToEnd {
			return cursor, Valid
		}
		r.Advance()
	}
}

// validateOne validates the single value of type t (the schema
// position r is currently at), returning the cursor just past it.
func validateOne(t fragments.Typecode, r fragments.SigReader, order fragments.ByteOrder, buf fragments.Bytes, cursor, end int) (int, Validity) {
	switch t {
	case fragments.TBoolean:
		bs, newCursor, v := readFixed(buf, cursor, end, 4, 4)
		if v != Valid {
			return newCursor, v
		}
		if u := order.Uint32(bs); u != 0 && u != 1 {
			return newCursor, BooleanNotZeroOrOne
		}
		return newCursor, Valid

	case fragments.TString:
		return validateStringLike(order, buf, cursor, end, false)
	case fragments.TObjectPath:
		return validateStringLike(order, buf, cursor, end, true)

	case fragments.TSignature:
		return validateSignatureValue(buf, cursor, end)

	case fragments.TArray:
		return validateArray(r, order, buf, cursor, end)

	case fragments.TStructBegin:
		return validateStruct(r, order, buf, cursor, end)

	case fragments.TVariant:
		return validateVariant(order, buf, cursor, end)

	default:
		// byte, int32, uint32, int64, uint64, double: every basic
		// scalar other than boolean is just an aligned fixed-width
		// read, with width equal to alignment.
		if t.IsBasic() {
			width := t.Alignment()
			_, newCursor, v := readFixed(buf, cursor, end, width, width)
			return newCursor, v
		}
		// Unreachable: t came from a reader over a signature that
		// already passed ValidateSignature.
		return cursor, UnknownTypecode
	}
}

func validateStringLike(order fragments.ByteOrder, buf fragments.Bytes, cursor, end int, isPath bool) (int, Validity) {
	lenBytes, cursor, v := readFixed(buf, cursor, end, 4, 4)
	if v != Valid {
		return cursor, v
	}
	L := int(order.Uint32(lenBytes))
	if L > end-cursor {
		return cursor, StringLengthOutOfBounds
	}
	payload, ok := buf.Slice(cursor, L)
	if !ok {
		return cursor, StringLengthOutOfBounds
	}
	if isPath {
		if !ValidObjectPath(payload) {
			return cursor, BadPath
		}
	} else if !fragments.ValidUTF8(payload) {
		return cursor, BadUTF8InString
	}
	cursor += L
	return consumeNUL(buf, cursor, end, StringMissingNUL)
}

func validateSignatureValue(buf fragments.Bytes, cursor, end int) (int, Validity) {
	lenByte, cursor, v := readFixed(buf, cursor, end, 1, 1)
	if v != Valid {
		return cursor, v
	}
	L := int(lenByte[0])
	if L+1 > end-cursor {
		return cursor, SignatureLengthOutOfBounds
	}
	embedded, ok := buf.Slice(cursor, L)
	if !ok {
		return cursor, SignatureLengthOutOfBounds
	}
	if ValidateSignature(embedded) != Valid {
		return cursor, BadSignature
	}
	cursor += L
	return consumeNUL(buf, cursor, end, SignatureMissingNUL)
}

func validateArray(r fragments.SigReader, order fragments.ByteOrder, buf fragments.Bytes, cursor, end int) (int, Validity) {
	lenBytes, cursor, v := readFixed(buf, cursor, end, 4, 4)
	if v != Valid {
		return cursor, v
	}
	L := int(order.Uint32(lenBytes))

	elem := r.ElementType()
	cursor, v = alignTo(buf, cursor, end, elem.Current().Alignment())
	if v != Valid {
		return cursor, v
	}
	if L > end-cursor {
		return cursor, StringLengthOutOfBounds
	}
	arrayEnd := cursor + L
	for cursor < arrayEnd {
		sub := elem
		var sv Validity
		cursor, sv = validateValue(sub, order, false, buf, cursor, end)
		if sv != Valid {
			return cursor, sv
		}
		if cursor > arrayEnd {
			return cursor, ArrayLengthIncorrect
		}
	}
	return cursor, Valid
}

func validateStruct(r fragments.SigReader, order fragments.ByteOrder, buf fragments.Bytes, cursor, end int) (int, Validity) {
	cursor, v := alignTo(buf, cursor, end, 8)
	if v != Valid {
		return cursor, v
	}
	return validateValue(r.Recurse(), order, true, buf, cursor, end)
}

func validateVariant(order fragments.ByteOrder, buf fragments.Bytes, cursor, end int) (int, Validity) {
	lenByte, cursor, v := readFixed(buf, cursor, end, 1, 1)
	if v != Valid {
		return cursor, v
	}
	L := int(lenByte[0])
	if L+1 > end-cursor {
		return cursor, VariantSignatureLengthOutOfBounds
	}
	embedded, ok := buf.Slice(cursor, L)
	if !ok {
		return cursor, VariantSignatureLengthOutOfBounds
	}
	if ValidateSignature(embedded) != Valid {
		return cursor, VariantSignatureBad
	}
	cursor += L
	cursor, v = consumeNUL(buf, cursor, end, VariantSignatureMissingNUL)
	if v != Valid {
		return cursor, v
	}

	embReader := fragments.NewSigReader(embedded)
	cursor, v = alignTo(buf, cursor, end, embReader.Current().Alignment())
	if v != Valid {
		return cursor, v
	}
	if embReader.Current() == fragments.NoType {
		return cursor, VariantSignatureEmpty
	}

	cursor, v = validateValue(embReader, order, false, buf, cursor, end)
	if v != Valid {
		return cursor, v
	}
	embReader.Advance()
	if embReader.Current() != fragments.NoType {
		return cursor, VariantSignatureSpecifiesMultipleValues
	}
	return cursor, Valid
}
