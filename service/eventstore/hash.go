package eventstore

import (
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/zeebo/blake3"
)

// chainDomainKey is used when no integrity key is configured.
// ASCII of the domain name, zero padded to 32 bytes.
var chainDomainKey = [32]byte{
	'f', 'i', 'n', 'l', 'e', 'd', 'g', 'e', 'r', '.', 'e', 'v', 'e', 'n', 't', 's',
	'.', 'c', 'h', 'a', 'i', 'n', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// ChainHasher computes the tamper evidence hash of an event,
// hash = BLAKE3(prev_hash, aggregate_id, version, event_type, payload, metadata, created_at)
type ChainHasher struct {
	key [32]byte
}

// HashInput is the part of an event covered by the chain hash
type HashInput struct {
	PrevHash    string
	AggregateID string
	Version     int64
	EventType   string
	Payload     []byte
	Metadata    []byte
	CreatedAt   time.Time
}

// NewChainHasher uses the domain key when key is empty, key must be 32 bytes otherwise
func NewChainHasher(key []byte) *ChainHasher {
	h := &ChainHasher{key: chainDomainKey}
	if len(key) > 0 {
		copy(h.key[:], key)
	}
	return h
}

// Hash returns the hex encoded digest
func (c *ChainHasher) Hash(in HashInput) string {
	hasher, err := blake3.NewKeyed(c.key[:])
	if err != nil {
		panic(err)
	}

	writeField(hasher, []byte(in.PrevHash))
	writeField(hasher, []byte(in.AggregateID))

	var version [8]byte
	binary.BigEndian.PutUint64(version[:], uint64(in.Version))
	writeField(hasher, version[:])

	writeField(hasher, []byte(in.EventType))
	writeField(hasher, in.Payload)
	writeField(hasher, in.Metadata)
	writeField(hasher, []byte(in.CreatedAt.UTC().Format(time.RFC3339Nano)))

	return hex.EncodeToString(hasher.Sum(nil))
}

// writeField length prefixes each field so that field boundaries can not be shifted
func writeField(h *blake3.Hasher, data []byte) {
	var size [8]byte
	binary.BigEndian.PutUint64(size[:], uint64(len(data)))
	_, _ = h.Write(size[:])
	_, _ = h.Write(data)
}
