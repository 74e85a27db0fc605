package dbusvalidate

import "github.com/TeamBitBean/dbusvalidate/fragments"

// maxSignatureLen is the maximum length, in bytes, of a DBus type
// signature.
const maxSignatureLen = 255

// maxNesting is the maximum struct or array recursion depth permitted
// in a signature.
const maxNesting = 32

// ValidateSignature checks that sig is a well-formed DBus type
// signature: every byte is a recognized typecode, array markers are
// each followed by an element type, struct delimiters balance with
// nesting no deeper than 32, struct-begin is never immediately
// followed by struct-end, and the whole signature is at most 255
// bytes.
//
// It does not consider any message body; see [ValidateBody] for
// that. A signature accepted here is the only kind [ValidateBody] may
// safely be called with.
func ValidateSignature(sig []byte) Validity {
	if len(sig) > maxSignatureLen {
		return SignatureTooLong
	}

	var structDepth, arrayDepth int
	var last fragments.Typecode

	for _, b := range sig {
		t := fragments.Typecode(b)
		switch t {
		case fragments.TByte, fragments.TBoolean, fragments.TInt32, fragments.TUint32,
			fragments.TInt64, fragments.TUint64, fragments.TDouble, fragments.TString,
			fragments.TObjectPath, fragments.TSignature, fragments.TVariant:
			// basic types and containers-by-reference are fine
			// anywhere; nothing further to check.

		case fragments.TArray:
			arrayDepth++
			if arrayDepth > maxNesting {
				return ExceededMaximumArrayRecursion
			}
			last = t
			continue // consecutive array markers don't reset arrayDepth

		case fragments.TStructBegin:
			structDepth++
			if structDepth > maxNesting {
				return ExceededMaximumStructRecursion
			}

		case fragments.TStructEnd:
			if structDepth == 0 {
				return StructEndedButNotStarted
			}
			if last == fragments.TStructBegin {
				return StructHasNoFields
			}
			if last == fragments.TArray {
				return MissingArrayElementType
			}
			structDepth--

		default:
			return UnknownTypecode
		}

		// Reached for every byte except array markers (handled above
		// with an early continue): arrayDepth counts only consecutive
		// array markers immediately preceding an element type, not
		// array nesting depth as such.
		arrayDepth = 0
		last = t
	}

	if arrayDepth > 0 {
		return MissingArrayElementType
	}
	if structDepth > 0 {
		return StructStartedButNotEnded
	}
	return Valid
}
