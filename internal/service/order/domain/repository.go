// internal/service/order/domain/repository.go
package domain

import "context"

// OrderRepository 定义订单聚合的持久化接口。
// 位于领域层，由基础设施层实现。
type OrderRepository interface {
	// Save 保存一个订单聚合（创建或更新）。
	Save(ctx context.Context, order *Order) error

	// FindByID 根据 ID 查找订单聚合。
	FindByID(ctx context.Context, id string) (*Order, error)
}
