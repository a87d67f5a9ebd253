// internal/zookeeper/lock_test.go
package zookeeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeq(t *testing.T) {
	seq, err := parseSeq("_c_6b1d2c3e4f5a6978-lock-0000000042")
	require.NoError(t, err)
	assert.Equal(t, 42, seq)

	_, err = parseSeq("garbage")
	assert.Error(t, err)

	_, err = parseSeq("_c_guid-lock-notanumber")
	assert.Error(t, err)
}

func TestQueuePositionOrdersBySequenceNotName(t *testing.T) {
	// guid 前缀的字典序与序号相反：按名字排序会把序号 2 排到队首
	children := []string{
		"_c_aaaaaaaaaaaaaaaa-lock-0000000002",
		"_c_zzzzzzzzzzzzzzzz-lock-0000000001",
	}

	lowest, _, err := queuePosition(children, "_c_aaaaaaaaaaaaaaaa-lock-0000000002")
	require.NoError(t, err)
	assert.False(t, lowest, "sequence 2 must wait for sequence 1")

	lowest, prev, err := queuePosition(children, "_c_zzzzzzzzzzzzzzzz-lock-0000000001")
	require.NoError(t, err)
	assert.True(t, lowest)
	assert.Empty(t, prev)
}

func TestQueuePositionWatchesImmediatePredecessor(t *testing.T) {
	children := []string{
		"_c_cccc-lock-0000000007",
		"_c_aaaa-lock-0000000003",
		"_c_bbbb-lock-0000000005",
	}

	lowest, prev, err := queuePosition(children, "_c_cccc-lock-0000000007")
	require.NoError(t, err)
	assert.False(t, lowest)
	// 监听序号小于自己的最大者，而不是任何更早的节点
	assert.Equal(t, "_c_bbbb-lock-0000000005", prev)
}

func TestQueuePositionSkipsMalformedNodes(t *testing.T) {
	children := []string{
		"not-a-sequential-node",
		"_c_aaaa-lock-0000000004",
	}

	lowest, _, err := queuePosition(children, "_c_aaaa-lock-0000000004")
	require.NoError(t, err)
	assert.True(t, lowest)
}
