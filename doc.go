// Package dbusvalidate checks whether a byte sequence from an
// untrusted DBus peer conforms to the DBus wire-marshaling rules, and
// whether textual identifiers (object paths, interface, member,
// error, and bus names, and type signatures) are well-formed.
//
// The package does not decode values, does not produce human-readable
// error messages, and does not mutate its input. Every validator
// operates on a borrowed byte slice and returns either [Valid] or the
// first-detected [Validity] code describing why the input was
// rejected. Message assembly, transport, authentication, and object
// dispatch live above this package; the low-level collaborators a
// body walk needs (a types-only signature cursor, wire byte orders, a
// bounds-checked byte view, UTF-8 checking) live in the sibling
// [github.com/TeamBitBean/dbusvalidate/fragments] package.
//
// [ValidateSignature] checks a type signature against the grammar in
// the package's design notes: a closed alphabet of typecodes, struct
// and array nesting each capped at 32, and a 255-byte length cap.
// [ValidateBody] walks a signature as a schema over a byte range,
// checking alignment padding, length prefixes, nested containers, and
// variants (whose type is embedded in the body itself) as it goes.
package dbusvalidate
