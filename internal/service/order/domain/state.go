// internal/service/order/domain/state.go
package domain

// State 定义订单的生命周期状态。
// 本仓库只负责创建到 pending 为止，后续流转由履约侧驱动。
type State string

const (
	StatePending    State = "pending"    // 已创建，等待生产排期
	StateProduction State = "production" // 生产中
	StateShipped    State = "shipped"    // 已发货
	StateDelivered  State = "delivered"  // 已签收
	StateCancelled  State = "cancelled"  // 已取消
	StateFailed     State = "failed"     // 创建流程失败
)

// PaymentState 定义支付状态。
type PaymentState string

const (
	PaymentPending PaymentState = "pending"
	PaymentPaid    PaymentState = "paid"
	PaymentFailed  PaymentState = "failed"
)
