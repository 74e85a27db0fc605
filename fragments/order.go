package fragments

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// ByteOrder is the wire byte order used to interpret multi-byte
// scalars in a message body. Unlike [binary.ByteOrder], it also knows
// its DBus byte order flag ('l' or 'B').
type ByteOrder interface {
	binary.ByteOrder
	// Flag returns the DBus wire byte order flag byte for this byte
	// order: 'l' for little-endian, 'B' for big-endian.
	Flag() byte
}

type wrapStd struct {
	binary.ByteOrder
}

func (w wrapStd) Flag() byte {
	switch w.ByteOrder {
	case binary.BigEndian:
		return 'B'
	case binary.LittleEndian:
		return 'l'
	case binary.NativeEndian:
		if cpu.IsBigEndian {
			return 'B'
		}
		return 'l'
	default:
		panic("unknown ByteOrder, how did you manage to make one of those?")
	}
}

var (
	// BigEndian is the 'B' wire byte order.
	BigEndian ByteOrder = wrapStd{binary.BigEndian}
	// LittleEndian is the 'l' wire byte order.
	LittleEndian ByteOrder = wrapStd{binary.LittleEndian}
	// NativeEndian is whichever of BigEndian or LittleEndian matches
	// the host CPU, for tools that pick a byte order to produce
	// rather than validate one that was given to them.
	NativeEndian ByteOrder = wrapStd{binary.NativeEndian}
)

// ByteOrderFromFlag maps a DBus wire byte order flag byte ('l' or
// 'B') to a [ByteOrder]. ok is false for any other byte.
func ByteOrderFromFlag(flag byte) (order ByteOrder, ok bool) {
	switch flag {
	case 'l':
		return LittleEndian, true
	case 'B':
		return BigEndian, true
	default:
		return nil, false
	}
}
