// Package chainhash defines the fixed-size hash types the block cache keys
// its indices by. It is modeled on kaspad's util/subnetworkid package:
// plain byte arrays with reversed-hex (en|de)coding, kept distinct per
// domain meaning (independent block id, solution hash, transaction id)
// even though two of them happen to share a size, so the compiler catches
// a mixed-up hash the way kaspad's own chainhash.Hash and
// subnetworkid.SubnetworkID are kept apart despite both being 32 bytes.
package chainhash

import (
	"encoding/hex"
	"math/big"

	"github.com/pkg/errors"
)

// IndepHashSize is the length in bytes of an independent block hash.
const IndepHashSize = 48

// SolutionHashSize is the length in bytes of a proof-of-work solution hash.
const SolutionHashSize = 32

// TxIDSize is the length in bytes of a transaction id.
const TxIDSize = 32

// ErrHashStrSize is returned when a hex string exceeds the target size.
var ErrHashStrSize = errors.New("max hash string length is exceeded")

// IndepHash uniquely identifies a block.
type IndepHash [IndepHashSize]byte

// SolutionHash is the (non-unique) proof-of-work output of a block.
type SolutionHash [SolutionHashSize]byte

// TxID identifies a transaction.
type TxID [TxIDSize]byte

// String returns the hex-encoded hash, most-significant byte first, matching
// subnetworkid.SubnetworkID.String's byte-reversed display convention for
// hex IDs.
func (h IndepHash) String() string { return reverseHex(h[:]) }

// String returns the hex-encoded hash.
func (h SolutionHash) String() string { return reverseHex(h[:]) }

// String returns the hex-encoded transaction id.
func (t TxID) String() string { return reverseHex(t[:]) }

// IsEqual returns whether h and other represent the same hash. Two nil
// pointers are considered equal.
func (h *IndepHash) IsEqual(other *IndepHash) bool {
	if h == nil && other == nil {
		return true
	}
	if h == nil || other == nil {
		return false
	}
	return *h == *other
}

// IsEqual returns whether h and other represent the same hash.
func (h *SolutionHash) IsEqual(other *SolutionHash) bool {
	if h == nil && other == nil {
		return true
	}
	if h == nil || other == nil {
		return false
	}
	return *h == *other
}

// CloneBytes returns a newly-allocated copy of the hash bytes.
func (h IndepHash) CloneBytes() []byte {
	out := make([]byte, IndepHashSize)
	copy(out, h[:])
	return out
}

// SetBytes copies src, which must be IndepHashSize bytes long, into h.
func (h *IndepHash) SetBytes(src []byte) error {
	if len(src) != IndepHashSize {
		return errors.Errorf("invalid hash length of %d, want %d", len(src), IndepHashSize)
	}
	copy(h[:], src)
	return nil
}

// SetBytes copies src, which must be SolutionHashSize bytes long, into h.
func (h *SolutionHash) SetBytes(src []byte) error {
	if len(src) != SolutionHashSize {
		return errors.Errorf("invalid hash length of %d, want %d", len(src), SolutionHashSize)
	}
	copy(h[:], src)
	return nil
}

// NewIndepHash returns a new IndepHash from a byte slice.
func NewIndepHash(src []byte) (*IndepHash, error) {
	var h IndepHash
	if err := h.SetBytes(src); err != nil {
		return nil, err
	}
	return &h, nil
}

// NewSolutionHash returns a new SolutionHash from a byte slice.
func NewSolutionHash(src []byte) (*SolutionHash, error) {
	var h SolutionHash
	if err := h.SetBytes(src); err != nil {
		return nil, err
	}
	return &h, nil
}

// NewIndepHashFromStr creates an IndepHash from a hex string, which may omit
// leading zero bytes (the string is right-aligned into the array, same as
// subnetworkid.NewFromStr).
func NewIndepHashFromStr(s string) (*IndepHash, error) {
	var h IndepHash
	buf, err := decodeReversedHex(s, IndepHashSize)
	if err != nil {
		return nil, err
	}
	copy(h[:], buf)
	return &h, nil
}

// NewSolutionHashFromStr creates a SolutionHash from a hex string.
func NewSolutionHashFromStr(s string) (*SolutionHash, error) {
	var h SolutionHash
	buf, err := decodeReversedHex(s, SolutionHashSize)
	if err != nil {
		return nil, err
	}
	copy(h[:], buf)
	return &h, nil
}

// Cmp returns -1, 0 or 1 depending on whether h is numerically less than,
// equal to, or greater than other, treating both as big-endian integers.
func (h IndepHash) Cmp(other IndepHash) int {
	for i := 0; i < IndepHashSize; i++ {
		if h[i] != other[i] {
			if h[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether h sorts before other.
func (h IndepHash) Less(other IndepHash) bool { return h.Cmp(other) < 0 }

// ToBig interprets h as a little-endian unsigned integer: the bytes are
// reversed before being handed to big.Int.SetBytes.
func ToBig(h *SolutionHash) *big.Int {
	buf := make([]byte, SolutionHashSize)
	for i := range h {
		buf[SolutionHashSize-1-i] = h[i]
	}
	return new(big.Int).SetBytes(buf)
}

func reverseHex(b []byte) string {
	rev := make([]byte, len(b))
	for i, c := range b {
		rev[len(b)-1-i] = c
	}
	return hex.EncodeToString(rev)
}

func decodeReversedHex(s string, size int) ([]byte, error) {
	if len(s) > size*2 {
		return nil, ErrHashStrSize
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	out := make([]byte, size)
	for i, b := range buf {
		out[len(buf)-1-i] = b
	}
	return out, nil
}
