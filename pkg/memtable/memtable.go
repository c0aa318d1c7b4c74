package memtable

import (
	"encoding/binary"

	"github.com/coocood/freecache"
)

// MemTable is a process local cache of per key version numbers.
// An entry is only a lower bound, the database remains the source of truth.
type MemTable struct {
	cache     *freecache.Cache
	expireSec int
}

// New creates freecache with size
func New(size int, expireSec int) *MemTable {
	return &MemTable{
		cache:     freecache.NewCache(size),
		expireSec: expireSec,
	}
}

// GetNum ...
func (m *MemTable) GetNum(key string) (num uint64, ok bool) {
	data, err := m.cache.Get([]byte(key))
	if err != nil {
		return 0, false
	}
	if len(data) < 8 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(data), true
}

// SetNum ...
func (m *MemTable) SetNum(key string, num uint64) {
	var data [8]byte
	binary.LittleEndian.PutUint64(data[:], num)
	_ = m.cache.Set([]byte(key), data[:], m.expireSec)
}

// AdvanceNum stores num only when it is greater than the cached one
func (m *MemTable) AdvanceNum(key string, num uint64) {
	current, ok := m.GetNum(key)
	if ok && current >= num {
		return
	}
	m.SetNum(key, num)
}

// Delete ...
func (m *MemTable) Delete(key string) {
	m.cache.Del([]byte(key))
}

// Clear removes all entries
func (m *MemTable) Clear() {
	m.cache.Clear()
}

// HitRate ...
func (m *MemTable) HitRate() float64 {
	return m.cache.HitRate()
}
