package dbusvalidate

// Identifier validators: ASCII character-class scanners for object
// paths, interface names, member names, error names, and bus names
// (unique and well-known). Each takes the identifier as a plain byte
// slice; unlike the (start, len) pair into a shared buffer that an
// unsafe host language needs, a Go slice already carries its own
// bounds, so there is nothing further to precondition-check before
// scanning (see DESIGN.md's note on this).
//
// All of these run in a single allocation-free pass over the input.

// maxNameLen is the maximum length, in bytes, of an interface,
// member, error, or bus name.
const maxNameLen = 255

var alphaUnderscore [256]bool
var alphaNumUnderscore [256]bool

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		alphaUnderscore[c] = true
		alphaNumUnderscore[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		alphaUnderscore[c] = true
		alphaNumUnderscore[c] = true
	}
	alphaUnderscore['_'] = true
	alphaNumUnderscore['_'] = true
	for c := byte('0'); c <= '9'; c++ {
		alphaNumUnderscore[c] = true
	}
}

func isAlphaUnderscore(c byte) bool    { return alphaUnderscore[c] }
func isAlphaNumUnderscore(c byte) bool { return alphaNumUnderscore[c] }

// ValidObjectPath reports whether b is a well-formed DBus object
// path: starts with '/', is either exactly "/" or has no trailing
// '/', has no empty ("//") components, and every component consists
// of [A-Za-z0-9_].
func ValidObjectPath(b []byte) bool {
	if len(b) == 0 || b[0] != '/' {
		return false
	}
	if len(b) == 1 {
		return true
	}
	if b[len(b)-1] == '/' {
		return false
	}
	compStart := 1
	for i := 1; i <= len(b); i++ {
		if i == len(b) || b[i] == '/' {
			if i == compStart {
				return false
			}
			for j := compStart; j < i; j++ {
				if !isAlphaNumUnderscore(b[j]) {
					return false
				}
			}
			compStart = i + 1
		}
	}
	return true
}

// ValidInterfaceName reports whether b is a well-formed DBus
// interface name: dot-separated components, each starting with
// [A-Za-z_] and continuing with [A-Za-z0-9_], at least one dot, no
// leading or trailing dot, and 1-255 bytes total.
func ValidInterfaceName(b []byte) bool {
	if len(b) == 0 || len(b) > maxNameLen {
		return false
	}
	if b[0] == '.' || b[len(b)-1] == '.' {
		return false
	}
	dots := 0
	compStart := 0
	for i := 0; i <= len(b); i++ {
		if i == len(b) || b[i] == '.' {
			if i == compStart {
				return false
			}
			if !isAlphaUnderscore(b[compStart]) {
				return false
			}
			for j := compStart + 1; j < i; j++ {
				if !isAlphaNumUnderscore(b[j]) {
					return false
				}
			}
			if i < len(b) {
				dots++
			}
			compStart = i + 1
		}
	}
	return dots >= 1
}

// ValidMemberName reports whether b is a well-formed DBus member
// (method or signal) name: a single component starting with
// [A-Za-z_], continuing with [A-Za-z0-9_], 1-255 bytes, no dot.
func ValidMemberName(b []byte) bool {
	if len(b) == 0 || len(b) > maxNameLen {
		return false
	}
	if !isAlphaUnderscore(b[0]) {
		return false
	}
	for _, c := range b[1:] {
		if !isAlphaNumUnderscore(c) {
			return false
		}
	}
	return true
}

// ValidErrorName reports whether b is a well-formed DBus error name.
// Error names follow exactly the same grammar as interface names.
func ValidErrorName(b []byte) bool {
	return ValidInterfaceName(b)
}

// ValidUniqueName reports whether b is a well-formed DBus unique
// connection name: a ':' followed by one or more '.'-separated
// tokens of [A-Za-z0-9_], 1-255 bytes total (including the ':').
// Only the very first token (the one immediately after the ':') may
// be empty; every other token, including the last, must be
// non-empty.
func ValidUniqueName(b []byte) bool {
	if len(b) < 2 || len(b) > maxNameLen || b[0] != ':' {
		return false
	}
	rest := b[1:]
	compStart := 0
	first := true
	for i := 0; i <= len(rest); i++ {
		if i == len(rest) || rest[i] == '.' {
			tok := rest[compStart:i]
			if len(tok) == 0 {
				if !first {
					return false
				}
			} else {
				for _, c := range tok {
					if !isAlphaNumUnderscore(c) {
						return false
					}
				}
			}
			first = false
			compStart = i + 1
		}
	}
	return true
}

// ValidBusName reports whether b is a well-formed DBus bus name:
// either a unique name (if it starts with ':') or a name following
// interface-name grammar otherwise.
func ValidBusName(b []byte) bool {
	if len(b) > 0 && b[0] == ':' {
		return ValidUniqueName(b)
	}
	return ValidInterfaceName(b)
}
