// internal/service/order/infrastructure/gorm_repository.go
package infrastructure

import (
	"context"
	"encoding/json"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"signcraft/internal/apperr"
	"signcraft/internal/service/order/domain"
	pricingdomain "signcraft/internal/service/pricing/domain"
)

// GormOrderRepository 基于 GORM 的订单仓储实现。
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

var _ domain.OrderRepository = (*GormOrderRepository)(nil)

// itemConfig 是行项目配置快照的 JSON 形态。
type itemConfig struct {
	Size        *pricingdomain.Size            `json:"size,omitempty"`
	Options     []pricingdomain.SelectedOption `json:"options,omitempty"`
	LetterCount int                            `json:"letterCount,omitempty"`
}

// Save 在一个事务内写入订单主表和行项目表。
func (r *GormOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	model, itemModels, err := toOrderModel(order)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model).Error; err != nil {
			return pkgerrors.Wrap(err, "failed to save order")
		}
		for i := range itemModels {
			if err := tx.Save(&itemModels[i]).Error; err != nil {
				return pkgerrors.Wrap(err, "failed to save order item")
			}
		}
		return nil
	})
}

// FindByID 按 ID 加载订单及其全部行项目。
func (r *GormOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var model OrderModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("order %s not found", id)
		}
		return nil, pkgerrors.Wrap(err, "failed to query order")
	}

	var itemModels []OrderItemModel
	if err := r.db.WithContext(ctx).Where("order_id = ?", id).Find(&itemModels).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "failed to query order items")
	}

	return toDomainOrder(&model, itemModels)
}

func toOrderModel(order *domain.Order) (*OrderModel, []OrderItemModel, error) {
	shippingJSON, err := json.Marshal(order.ShippingAddr)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(err, "failed to marshal shipping address")
	}
	billingJSON, err := json.Marshal(order.BillingAddr)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(err, "failed to marshal billing address")
	}

	items := make([]OrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		configJSON, err := json.Marshal(itemConfig{
			Size:        item.Size,
			Options:     item.Options,
			LetterCount: item.LetterCount,
		})
		if err != nil {
			return nil, nil, pkgerrors.Wrapf(err, "failed to marshal config for item %s", item.ID)
		}
		items = append(items, OrderItemModel{
			ID:              item.ID,
			OrderID:         order.ID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			ConfigJSON:      string(configJSON),
			CalculatedPrice: item.CalculatedPrice,
			CreatedAt:       order.CreatedAt,
		})
	}

	return &OrderModel{
		ID:                  order.ID,
		Number:              order.Number,
		UserID:              order.UserID,
		ShippingAddressJSON: string(shippingJSON),
		BillingAddressJSON:  string(billingJSON),
		ShippingMethodID:    order.ShippingMethodID,
		ShippingCost:        order.ShippingCost,
		Rush:                order.Rush,
		Instructions:        order.Instructions,
		TotalAmount:         order.TotalAmount,
		EstimatedDelivery:   order.EstimatedDelivery,
		State:               string(order.State),
		PaymentState:        string(order.PaymentState),
		CreatedAt:           order.CreatedAt,
		UpdatedAt:           order.UpdatedAt,
	}, items, nil
}

func toDomainOrder(model *OrderModel, itemModels []OrderItemModel) (*domain.Order, error) {
	var shipping, billing domain.Address
	if err := json.Unmarshal([]byte(model.ShippingAddressJSON), &shipping); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal shipping address for order %s", model.ID)
	}
	if model.BillingAddressJSON != "" {
		if err := json.Unmarshal([]byte(model.BillingAddressJSON), &billing); err != nil {
			return nil, pkgerrors.Wrapf(err, "failed to unmarshal billing address for order %s", model.ID)
		}
	}

	items := make([]domain.Item, 0, len(itemModels))
	for _, im := range itemModels {
		var cfg itemConfig
		if im.ConfigJSON != "" {
			if err := json.Unmarshal([]byte(im.ConfigJSON), &cfg); err != nil {
				return nil, pkgerrors.Wrapf(err, "failed to unmarshal config for item %s", im.ID)
			}
		}
		items = append(items, domain.Item{
			ID:              im.ID,
			ProductID:       im.ProductID,
			Quantity:        im.Quantity,
			Size:            cfg.Size,
			Options:         cfg.Options,
			LetterCount:     cfg.LetterCount,
			CalculatedPrice: im.CalculatedPrice,
		})
	}

	return &domain.Order{
		ID:                model.ID,
		Number:            model.Number,
		UserID:            model.UserID,
		Items:             items,
		ShippingAddr:      shipping,
		BillingAddr:       billing,
		ShippingMethodID:  model.ShippingMethodID,
		ShippingCost:      model.ShippingCost,
		Rush:              model.Rush,
		Instructions:      model.Instructions,
		TotalAmount:       model.TotalAmount,
		EstimatedDelivery: model.EstimatedDelivery,
		State:             domain.State(model.State),
		PaymentState:      domain.PaymentState(model.PaymentState),
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}, nil
}
