package dbusvalidate_test

import (
	"testing"

	dbusvalidate "github.com/TeamBitBean/dbusvalidate"
)

func TestValidityString(t *testing.T) {
	if got := dbusvalidate.Valid.String(); got != "valid" {
		t.Errorf("Valid.String() = %q, want %q", got, "valid")
	}
	if got := dbusvalidate.NotEnoughData.String(); got != "not-enough-data" {
		t.Errorf("NotEnoughData.String() = %q, want %q", got, "not-enough-data")
	}
	if got := dbusvalidate.Validity(0).String(); got != "invalid-validity-code" {
		t.Errorf("zero Validity.String() = %q, want %q", got, "invalid-validity-code")
	}
	if got := dbusvalidate.Validity(9999).String(); got != "invalid-validity-code" {
		t.Errorf("out-of-range Validity.String() = %q, want %q", got, "invalid-validity-code")
	}
}

func TestValidityOK(t *testing.T) {
	if !dbusvalidate.Valid.OK() {
		t.Error("Valid.OK() = false, want true")
	}
	if dbusvalidate.BadSignature.OK() {
		t.Error("BadSignature.OK() = true, want false")
	}
}
