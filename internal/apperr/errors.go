// internal/apperr/errors.go
package apperr

import (
	"github.com/pkg/errors"
)

// 业务错误分类。所有服务在顶层把错误收敛到这四类，
// 再统一转换成结构化的失败响应，调用方永远不会收到未处理的异常。
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInternal        = errors.New("internal error")
)

// InvalidArgumentf 构造一个带说明的参数错误。
func InvalidArgumentf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// NotFoundf 构造一个带说明的未找到错误。
func NotFoundf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

// Unauthorizedf 构造一个带说明的鉴权错误。
func Unauthorizedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUnauthorized, format, args...)
}

// Classify 返回错误所属的分类；无法识别时归入 Internal。
func Classify(err error) error {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return ErrInvalidArgument
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	case errors.Is(err, ErrUnauthorized):
		return ErrUnauthorized
	default:
		return ErrInternal
	}
}
