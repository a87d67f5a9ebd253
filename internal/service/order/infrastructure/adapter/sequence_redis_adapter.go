// internal/service/order/infrastructure/adapter/sequence_redis_adapter.go
package adapter

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/pkg/errors"

	"signcraft/internal/pkg/redis"
	"signcraft/internal/service/order/port"
)

// 序号 key 按天过期即可，留 48 小时冗余避开时区边界。
const sequenceKeyTTL = 48 * time.Hour

const sequenceScriptName = "order_sequence"

// INCR 和首个序号的 EXPIRE 必须在同一脚本里原子执行，
// 否则进程在两步之间退出会留下永不过期的 key。
const sequenceScript = `
local seq = redis.call("INCR", KEYS[1])
if seq == 1 then
    redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return seq`

// RedisSequenceAdapter 用 Redis 发号。
// key 按自然日分桶，同一天内的序号严格单调递增，跨实例也不冲突。
type RedisSequenceAdapter struct {
	client *redis.Client
}

func NewRedisSequenceAdapter(client *redis.Client) *RedisSequenceAdapter {
	// 同一进程重复构造时脚本已注册，内容相同，重复注册错误可以忽略
	_ = client.LoadScriptFromContent(sequenceScriptName, sequenceScript)
	return &RedisSequenceAdapter{client: client}
}

var _ port.OrderNumberSequence = (*RedisSequenceAdapter)(nil)

func (a *RedisSequenceAdapter) Next(ctx context.Context, t time.Time) (int64, error) {
	key := fmt.Sprintf("ordseq:%s", t.Format("20060102"))

	result, err := a.client.RunScript(ctx, sequenceScriptName, []string{key}, int64(sequenceKeyTTL/time.Second))
	if err != nil {
		return 0, pkgerrors.Wrap(err, "failed to increment order sequence")
	}
	seq, ok := result.(int64)
	if !ok {
		return 0, pkgerrors.Errorf("unexpected order sequence result type %T", result)
	}
	return seq, nil
}
