package memtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemTable(t *testing.T) {
	m := New(512*1024, 0)

	m.SetNum("account:acc-1", 11)
	m.SetNum("account:acc-2", 12)

	n, ok := m.GetNum("account:acc-1")
	assert.Equal(t, true, ok)
	assert.Equal(t, uint64(11), n)

	n, ok = m.GetNum("account:acc-2")
	assert.Equal(t, true, ok)
	assert.Equal(t, uint64(12), n)

	n, ok = m.GetNum("account:acc-3")
	assert.Equal(t, false, ok)
	assert.Equal(t, uint64(0), n)

	_ = m.cache.Set([]byte("key04"), []byte("aa"), 0)
	n, ok = m.GetNum("key04")
	assert.Equal(t, false, ok)
	assert.Equal(t, uint64(0), n)
}

func TestMemTable_AdvanceNum(t *testing.T) {
	m := New(512*1024, 0)

	m.AdvanceNum("daily:acc-1", 3)
	n, _ := m.GetNum("daily:acc-1")
	assert.Equal(t, uint64(3), n)

	m.AdvanceNum("daily:acc-1", 2)
	n, _ = m.GetNum("daily:acc-1")
	assert.Equal(t, uint64(3), n)

	m.AdvanceNum("daily:acc-1", 5)
	n, _ = m.GetNum("daily:acc-1")
	assert.Equal(t, uint64(5), n)

	m.Delete("daily:acc-1")
	_, ok := m.GetNum("daily:acc-1")
	assert.Equal(t, false, ok)

	m.SetNum("daily:acc-2", 1)
	m.Clear()
	_, ok = m.GetNum("daily:acc-2")
	assert.Equal(t, false, ok)
}
