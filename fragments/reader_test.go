package fragments_test

import (
	"testing"

	"github.com/TeamBitBean/dbusvalidate/fragments"
)

func TestSigReaderCurrentAndAdvance(t *testing.T) {
	r := fragments.NewSigReader([]byte("yiu"))
	want := []fragments.Typecode{fragments.TByte, fragments.TInt32, fragments.TUint32, fragments.NoType}
	for _, w := range want {
		if got := r.Current(); got != w {
			t.Fatalf("Current() = %v, want %v", got, w)
		}
		r.Advance()
	}
}

func TestSigReaderElementType(t *testing.T) {
	r := fragments.NewSigReader([]byte("a(ii)"))
	if r.Current() != fragments.TArray {
		t.Fatalf("Current() = %v, want TArray", r.Current())
	}
	elem := r.ElementType()
	if elem.Current() != fragments.TStructBegin {
		t.Fatalf("element Current() = %v, want TStructBegin", elem.Current())
	}
	r.Advance()
	if r.Current() != fragments.NoType {
		t.Fatalf("after Advance, Current() = %v, want NoType", r.Current())
	}
}

func TestSigReaderRecurse(t *testing.T) {
	r := fragments.NewSigReader([]byte("(iy)u"))
	fields := r.Recurse()
	if fields.Current() != fragments.TInt32 {
		t.Fatalf("first field = %v, want TInt32", fields.Current())
	}
	fields.Advance()
	if fields.Current() != fragments.TByte {
		t.Fatalf("second field = %v, want TByte", fields.Current())
	}
	fields.Advance()
	if fields.Current() != fragments.NoType {
		t.Fatalf("after last field, Current() = %v, want NoType", fields.Current())
	}

	r.Advance()
	if r.Current() != fragments.TUint32 {
		t.Fatalf("outer reader after struct = %v, want TUint32", r.Current())
	}
}

func TestSigReaderNestedArray(t *testing.T) {
	r := fragments.NewSigReader([]byte("aai"))
	outer := r.ElementType()
	if outer.Current() != fragments.TArray {
		t.Fatalf("outer element = %v, want TArray", outer.Current())
	}
	inner := outer.ElementType()
	if inner.Current() != fragments.TInt32 {
		t.Fatalf("inner element = %v, want TInt32", inner.Current())
	}
}
