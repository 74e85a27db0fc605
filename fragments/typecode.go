package fragments

// Typecode is a single DBus signature byte: a basic type, the array
// marker, or a struct delimiter. The zero Typecode is not a valid
// wire typecode; [SigReader.Current] returns it as the "no more
// types" sentinel.
type Typecode byte

// The typecodes this validation core knows about. This is
// deliberately a subset of the full DBus type system: DICT_ENTRY
// ('{'/'}'), UNIX_FD ('h'), INT16/UINT16 ('n'/'q'), and the reserved
// STRUCT code ('r', which never appears on the wire — only '(' and
// ')' do) are not in this alphabet, so a signature containing any of
// them reports [UnknownTypecode].
const (
	NoType Typecode = 0

	TByte       Typecode = 'y'
	TBoolean    Typecode = 'b'
	TInt32      Typecode = 'i'
	TUint32     Typecode = 'u'
	TInt64      Typecode = 'x'
	TUint64     Typecode = 't'
	TDouble     Typecode = 'd'
	TString     Typecode = 's'
	TObjectPath Typecode = 'o'
	TSignature  Typecode = 'g'
	TVariant    Typecode = 'v'
	TArray      Typecode = 'a'
	TStructBegin Typecode = '('
	TStructEnd   Typecode = ')'
)

// Alignment returns the wire alignment, in bytes, of a value of type
// t. Container length prefixes (array, signature, variant) have
// their own alignment distinct from their payload; Alignment reports
// the alignment of the length prefix (or, for signature/variant,
// the 1-byte length that needs no padding at all).
func (t Typecode) Alignment() int {
	switch t {
	case TByte, TSignature, TVariant, TStructEnd:
		return 1
	case TBoolean, TInt32, TUint32, TString, TObjectPath, TArray:
		return 4
	case TInt64, TUint64, TDouble, TStructBegin:
		return 8
	default:
		return 1
	}
}

// IsBasic reports whether t is a fixed-width scalar type (as opposed
// to a length-prefixed or container type).
func (t Typecode) IsBasic() bool {
	switch t {
	case TByte, TBoolean, TInt32, TUint32, TInt64, TUint64, TDouble:
		return true
	default:
		return false
	}
}
