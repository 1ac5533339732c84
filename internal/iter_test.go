package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedSeq2(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"b": 2, "a": 1}
	b := map[string]int{"c": 3, "a": 10}

	var keys []string
	var values []int
	for key, value := range SortedSeq2(maps.All(a), maps.All(b)) {
		keys = append(keys, key)
		values = append(values, value)
	}

	assert.Equal([]string{"a", "b", "c"}, keys)
	assert.Equal([]int{10, 2, 3}, values)

	keys = nil
	for key := range SortedSeq2(maps.All(a)) {
		keys = append(keys, key)
		break
	}
	assert.Equal([]string{"a"}, keys)
}
