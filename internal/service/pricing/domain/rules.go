// internal/service/pricing/domain/rules.go
package domain

import (
	"sync"

	"github.com/google/cel-go/cel"
	zlog "github.com/rs/zerolog/log"
)

// 折扣档位的 CEL 条件在 quantity / subtotal / rush 三个变量上求值。
// 环境全局唯一，编译结果按表达式缓存，商品缓存命中时不重复编译。
var (
	celEnvOnce sync.Once
	celEnv     *cel.Env
	celEnvErr  error

	programCache sync.Map // string -> cel.Program
)

func tierEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("quantity", cel.IntType),
			cel.Variable("subtotal", cel.DoubleType),
			cel.Variable("rush", cel.BoolType),
		)
	})
	return celEnv, celEnvErr
}

// EvalTierCondition 对一个档位条件求值。
// 表达式编译失败、求值失败或结果不是布尔值时一律视为不命中：
// 坏的规则配置只会让档位失效，绝不会让报价接口报错。
func EvalTierCondition(expr string, quantity int, subtotal float64, rush bool) bool {
	prg, err := compiledProgram(expr)
	if err != nil {
		zlog.Warn().Err(err).Str("condition", expr).Msg("discount tier condition rejected")
		return false
	}

	out, _, err := prg.Eval(map[string]interface{}{
		"quantity": int64(quantity),
		"subtotal": subtotal,
		"rush":     rush,
	})
	if err != nil {
		zlog.Warn().Err(err).Str("condition", expr).Msg("discount tier condition evaluation failed")
		return false
	}

	result, ok := out.Value().(bool)
	return ok && result
}

func compiledProgram(expr string) (cel.Program, error) {
	if cached, ok := programCache.Load(expr); ok {
		return cached.(cel.Program), nil
	}

	env, err := tierEnv()
	if err != nil {
		return nil, err
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, err
	}

	programCache.Store(expr, prg)
	return prg, nil
}
