package util

import "github.com/twmb/murmur3"

// HashFunc ...
func HashFunc(s string) uint32 {
	return murmur3.Sum32([]byte(s))
}

// ShardOf maps a key into one of n shards
func ShardOf(key string, n uint32) uint32 {
	if n == 0 {
		return 0
	}
	return HashFunc(key) % n
}
