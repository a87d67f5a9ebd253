// internal/zookeeper/lock.go
package zookeeper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-zookeeper/zk"
)

const (
	// 库存扣减锁的根节点。同一商品的并发扣减通过它串行化。
	lockRoot = "/signcraft/inventory_locks"

	lockWaitTimeout = 30 * time.Second
)

// DistributedLock 是基于临时顺序节点的分布式锁。
// 锁粒度由 resourceID 决定，库存场景下传商品 ID。
type DistributedLock struct {
	conn     *Conn
	path     string // 锁路径，如 /signcraft/inventory_locks/prod-123
	lockNode string // 成功抢锁后自己创建的节点路径
}

// NewDistributedLock 创建一个分布式锁实例，并确保锁路径存在。
func NewDistributedLock(conn *Conn, resourceID string) (*DistributedLock, error) {
	if err := ensurePath(conn, lockRoot); err != nil {
		return nil, err
	}

	lockPath := lockRoot + "/" + resourceID
	if err := ensurePath(conn, lockPath); err != nil {
		return nil, err
	}

	return &DistributedLock{
		conn: conn,
		path: lockPath,
	}, nil
}

func ensurePath(conn *Conn, path string) error {
	exists, _, err := conn.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check node %s: %w", path, err)
	}
	if exists {
		return nil
	}
	// 逐级创建，父节点可能也不存在
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	current := ""
	for _, part := range parts {
		current += "/" + part
		if _, err := conn.Create(current, []byte(""), 0, zk.WorldACL(zk.PermAll)); err != nil && err != zk.ErrNodeExists {
			return fmt.Errorf("failed to create node %s: %w", current, err)
		}
	}
	return nil
}

// Lock 尝试获取锁，获取不到则阻塞等待，最多等 lockWaitTimeout。
func (l *DistributedLock) Lock() error {
	// 创建临时顺序节点参与排队
	nodePath, err := l.conn.CreateProtectedEphemeralSequential(l.path+"/lock-", []byte(""), zk.WorldACL(zk.PermAll))
	if err != nil {
		return fmt.Errorf("failed to create sequential node: %w", err)
	}
	l.lockNode = nodePath

	for {
		children, _, err := l.conn.Children(l.path)
		if err != nil {
			return fmt.Errorf("failed to get children nodes: %w", err)
		}

		myNodeName := strings.TrimPrefix(l.lockNode, l.path+"/")
		lowest, prevNode, err := queuePosition(children, myNodeName)
		if err != nil {
			return err
		}
		if lowest {
			// 自己持有最小序号，拿到锁
			return nil
		}

		prevNodePath := l.path + "/" + prevNode

		exists, _, eventChan, err := l.conn.ExistsW(prevNodePath)
		if err != nil {
			if err == zk.ErrNoNode {
				continue
			}
			return fmt.Errorf("failed to watch previous node: %w", err)
		}
		if !exists {
			continue
		}

		select {
		case event := <-eventChan:
			if event.Type == zk.EventNodeDeleted {
				continue
			}
		case <-time.After(lockWaitTimeout):
			return errors.New("timeout waiting for lock")
		}
	}
}

// parseSeq 取出顺序节点名末尾的序号。
// CreateProtectedEphemeralSequential 生成形如 _c_<guid>-lock-0000000001 的名字，
// 按整个节点名排序会被随机 guid 前缀支配，必须只比较序号。
func parseSeq(node string) (int, error) {
	idx := strings.LastIndex(node, "-")
	if idx < 0 {
		return 0, fmt.Errorf("node %q has no sequence suffix", node)
	}
	seq, err := strconv.Atoi(node[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("node %q has no sequence suffix: %w", node, err)
	}
	return seq, nil
}

// queuePosition 按序号判断 mine 是否排在队首；
// 不在队首时返回需要监听的前驱节点（序号小于自己的最大者）。
func queuePosition(children []string, mine string) (lowest bool, prev string, err error) {
	mySeq, err := parseSeq(mine)
	if err != nil {
		return false, "", err
	}

	prevSeq := -1
	for _, child := range children {
		seq, err := parseSeq(child)
		if err != nil {
			// 锁路径下出现无序号的脏节点时跳过，不让它卡死队列
			continue
		}
		if seq < mySeq && seq > prevSeq {
			prevSeq = seq
			prev = child
		}
	}
	if prevSeq < 0 {
		return true, "", nil
	}
	return false, prev, nil
}

// Unlock 释放锁。
func (l *DistributedLock) Unlock() error {
	if l.lockNode == "" {
		return errors.New("no lock to unlock")
	}
	err := l.conn.Delete(l.lockNode, -1)
	if err != nil && err != zk.ErrNoNode {
		return fmt.Errorf("failed to delete lock node: %w", err)
	}
	l.lockNode = ""
	return nil
}
