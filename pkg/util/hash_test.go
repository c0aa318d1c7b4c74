package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShardOf(t *testing.T) {
	assert.Equal(t, uint32(0), ShardOf("acc-1", 0))
	assert.Equal(t, uint32(0), ShardOf("acc-1", 1))

	for _, key := range []string{"acc-1", "acc-2", "budget-1", ""} {
		shard := ShardOf(key, 256)
		assert.Less(t, shard, uint32(256))
		assert.Equal(t, shard, ShardOf(key, 256))
		assert.Equal(t, HashFunc(key)%256, shard)
	}
}
