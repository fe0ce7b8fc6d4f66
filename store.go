package signboard

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
)

// Slot store geometry, matching the sign's EEPROM layout: one magic
// byte followed by six fixed-size message slots.
const (
	StoreSlots = 6
	SlotSize   = 170

	storeMagic = 0xb0
	storeSize  = 1 + StoreSlots*SlotSize
)

// Store errors.
var (
	ErrSlot    = errors.New("signboard: slot index out of range")
	ErrTooLong = errors.New("signboard: message does not fit in a slot")
	ErrEmpty   = errors.New("signboard: no messages stored")
)

// Store is a file-backed image of the sign's persistent message
// memory. A zero-length entry marks a vacant slot. Store is not safe
// for concurrent use.
type Store struct {
	path string
	data [storeSize]byte
}

// OpenStore loads the store at path, initializing a fresh image when
// the file is missing, truncated, or does not carry the magic byte.
func OpenStore(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if len(raw) == storeSize && raw[0] == storeMagic {
		copy(s.data[:], raw)
		return s, nil
	}

	// First run.
	s.data[0] = storeMagic
	if err := s.flush(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) flush() error {
	return os.WriteFile(s.path, s.data[:], 0o644)
}

func (s *Store) slot(slot int) []byte {
	return s.data[1+slot*SlotSize : 1+(slot+1)*SlotSize]
}

// Get returns a copy of the message in slot; empty for a vacant slot.
func (s *Store) Get(slot int) ([]byte, error) {
	if slot < 0 || slot >= StoreSlots {
		return nil, ErrSlot
	}
	raw := s.slot(slot)
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return append([]byte(nil), raw...), nil
}

// Put stores msg in slot and persists the image. An empty msg vacates
// the slot. The message must leave room for its terminator.
func (s *Store) Put(slot int, msg []byte) error {
	if slot < 0 || slot >= StoreSlots {
		return ErrSlot
	}
	if len(msg) >= SlotSize {
		return ErrTooLong
	}
	dst := s.slot(slot)
	n := copy(dst, msg)
	for i := n; i < SlotSize; i++ {
		dst[i] = 0
	}
	return s.flush()
}

// NextAfter returns the next occupied slot after slot, wrapping
// around and revisiting slot itself last. Pass -1 to start from the
// first slot. ErrEmpty means every slot is vacant.
func (s *Store) NextAfter(slot int) (int, []byte, error) {
	if slot < -1 || slot >= StoreSlots {
		return 0, nil, ErrSlot
	}
	for i := 1; i <= StoreSlots; i++ {
		n := (slot + i + StoreSlots) % StoreSlots
		msg, err := s.Get(n)
		if err != nil {
			return 0, nil, err
		}
		if len(msg) > 0 {
			return n, msg, nil
		}
	}
	return 0, nil, ErrEmpty
}
