package dbusvalidate_test

import (
	"testing"

	dbusvalidate "github.com/TeamBitBean/dbusvalidate"
	"github.com/TeamBitBean/dbusvalidate/fragments"
)

func validateBody(t *testing.T, sig string, body []byte, remaining *int) dbusvalidate.Validity {
	t.Helper()
	if v := dbusvalidate.ValidateSignature([]byte(sig)); v != dbusvalidate.Valid {
		t.Fatalf("signature %q itself invalid: %v", sig, v)
	}
	return dbusvalidate.ValidateBody([]byte(sig), fragments.LittleEndian, body, remaining)
}

func TestValidateBodyByte(t *testing.T) {
	if got := validateBody(t, "y", []byte{0x2a}, nil); got != dbusvalidate.Valid {
		t.Errorf("got %v, want Valid", got)
	}
}

func TestValidateBodyBoolean(t *testing.T) {
	if got := validateBody(t, "b", []byte{0x02, 0, 0, 0}, nil); got != dbusvalidate.BooleanNotZeroOrOne {
		t.Errorf("got %v, want BooleanNotZeroOrOne", got)
	}
	if got := validateBody(t, "b", []byte{0x01, 0, 0, 0}, nil); got != dbusvalidate.Valid {
		t.Errorf("got %v, want Valid", got)
	}
}

func TestValidateBodyString(t *testing.T) {
	hello := append([]byte{5, 0, 0, 0}, "hello\x00"...)
	if got := validateBody(t, "s", hello, nil); got != dbusvalidate.Valid {
		t.Errorf("got %v, want Valid", got)
	}

	noNUL := append([]byte{5, 0, 0, 0}, "hello"...)
	if got := validateBody(t, "s", noNUL, nil); got != dbusvalidate.NotEnoughData {
		t.Errorf("got %v, want NotEnoughData", got)
	}

	badNUL := append([]byte{5, 0, 0, 0}, "hello"...)
	badNUL = append(badNUL, 0x01)
	if got := validateBody(t, "s", badNUL, nil); got != dbusvalidate.StringMissingNUL {
		t.Errorf("got %v, want StringMissingNUL", got)
	}

	badUTF8 := append([]byte{1, 0, 0, 0}, 0xff, 0)
	if got := validateBody(t, "s", badUTF8, nil); got != dbusvalidate.BadUTF8InString {
		t.Errorf("got %v, want BadUTF8InString", got)
	}
}

func TestValidateBodyArray(t *testing.T) {
	if got := validateBody(t, "ay", []byte{0, 0, 0, 0}, nil); got != dbusvalidate.Valid {
		t.Errorf("empty byte array: got %v, want Valid", got)
	}
	if got := validateBody(t, "ay", []byte{3, 0, 0, 0, 1, 2, 3}, nil); got != dbusvalidate.Valid {
		t.Errorf("3-element byte array: got %v, want Valid", got)
	}
	if got := validateBody(t, "ai", []byte{0, 0, 0, 0}, nil); got != dbusvalidate.Valid {
		t.Errorf("empty int32 array: got %v, want Valid", got)
	}

	var remaining int
	body := []byte{0, 0, 0, 0, 0xff}
	if got := validateBody(t, "ai", body, &remaining); got != dbusvalidate.Valid {
		t.Errorf("got %v, want Valid", got)
	} else if remaining != 1 {
		t.Errorf("remaining = %d, want 1", remaining)
	}
	if got := validateBody(t, "ai", body, nil); got != dbusvalidate.TooMuchData {
		t.Errorf("without bytesRemaining: got %v, want TooMuchData", got)
	}
}

func TestValidateBodyVariant(t *testing.T) {
	one := []byte{1, 'y', 0, 0x2a}
	if got := validateBody(t, "v", one, nil); got != dbusvalidate.Valid {
		t.Errorf("got %v, want Valid", got)
	}

	two := []byte{2, 'y', 'y', 0, 0x2a, 0x2b}
	if got := validateBody(t, "v", two, nil); got != dbusvalidate.VariantSignatureSpecifiesMultipleValues {
		t.Errorf("got %v, want VariantSignatureSpecifiesMultipleValues", got)
	}

	empty := []byte{0, 0}
	if got := validateBody(t, "v", empty, nil); got != dbusvalidate.VariantSignatureEmpty {
		t.Errorf("got %v, want VariantSignatureEmpty", got)
	}
}

func TestValidateBodyAlignmentPadding(t *testing.T) {
	// "yi": one byte, then 3 bytes of padding to reach int32 alignment,
	// then the int32.
	good := []byte{0x01, 0, 0, 0, 0x2a, 0, 0, 0}
	if got := validateBody(t, "yi", good, nil); got != dbusvalidate.Valid {
		t.Errorf("got %v, want Valid", got)
	}

	for i := 1; i < 4; i++ {
		bad := append([]byte(nil), good...)
		bad[i] = 0x01
		if got := validateBody(t, "yi", bad, nil); got != dbusvalidate.AlignmentPaddingNotNUL {
			t.Errorf("flipping padding byte %d: got %v, want AlignmentPaddingNotNUL", i, got)
		}
	}
}

func TestValidateBodyStruct(t *testing.T) {
	// "(yi)": struct aligned to 8, byte field, 3 bytes padding, int32 field.
	body := []byte{0x01, 0, 0, 0, 0x2a, 0, 0, 0}
	if got := validateBody(t, "(yi)", body, nil); got != dbusvalidate.Valid {
		t.Errorf("got %v, want Valid", got)
	}
}

func TestValidateBodyIdempotent(t *testing.T) {
	sig := []byte("(yi)")
	body := []byte{0x01, 0, 0, 0, 0x2a, 0, 0, 0}
	first := dbusvalidate.ValidateBody(sig, fragments.LittleEndian, body, nil)
	second := dbusvalidate.ValidateBody(sig, fragments.LittleEndian, body, nil)
	if first != second {
		t.Errorf("repeated validation diverged: %v then %v", first, second)
	}
	if !bytesUnchanged(body, []byte{0x01, 0, 0, 0, 0x2a, 0, 0, 0}) {
		t.Errorf("ValidateBody mutated its input")
	}
}

func bytesUnchanged(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
