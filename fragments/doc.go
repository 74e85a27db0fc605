// package fragments provides the low-level, allocation-free pieces
// the validation core is built from: a types-only signature cursor
// ([SigReader]) that walks a signature in lockstep with a message
// body, the wire byte orders ([ByteOrder]), a bounds-checked view of
// a borrowed byte buffer ([Bytes]), and a UTF-8 check ([ValidUTF8]).
//
// Nothing in this package allocates, mutates its input, or retains
// state across calls. You should not need to use it directly unless
// you are implementing another validator against the same wire
// format.
package fragments
