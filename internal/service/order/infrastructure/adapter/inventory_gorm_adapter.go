// internal/service/order/infrastructure/adapter/inventory_gorm_adapter.go
package adapter

import (
	"context"
	"sort"
	"time"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"signcraft/internal/pkg/logger"
	"signcraft/internal/service/order/infrastructure"
	"signcraft/internal/service/order/port"
	"signcraft/internal/zookeeper"
)

// InventoryGormAdapter 用 MySQL 存库存，用 Zookeeper 做商品粒度的互斥。
// 同一商品的并发扣减先抢锁再读改写，不同商品互不阻塞。
type InventoryGormAdapter struct {
	db *gorm.DB
	zk *zookeeper.Conn
}

// NewInventoryGormAdapter 创建库存适配器。zkConn 传 nil 时退化为无锁模式（仅用于测试）。
func NewInventoryGormAdapter(db *gorm.DB, zkConn *zookeeper.Conn) *InventoryGormAdapter {
	return &InventoryGormAdapter{db: db, zk: zkConn}
}

var _ port.InventoryService = (*InventoryGormAdapter)(nil)

// ReserveStock 按商品逐个扣减库存，返回每个商品实际扣掉的数量。
// 库存不足时只扣到 0 并把商品标记为缺货，不阻塞下单，
// 所以返回值可能小于请求量；补偿归还时必须以返回值为准。
func (a *InventoryGormAdapter) ReserveStock(ctx context.Context, orderID string, items map[string]int) (map[string]int, error) {
	// 固定加锁顺序，避免两个订单交叉持锁互等
	productIDs := make([]string, 0, len(items))
	for id := range items {
		productIDs = append(productIDs, id)
	}
	sort.Strings(productIDs)

	reserved := make(map[string]int, len(items))
	for _, productID := range productIDs {
		qty := items[productID]

		var taken int
		err := a.withProductLock(ctx, productID, func() error {
			var err error
			taken, err = a.decrement(ctx, productID, qty)
			return err
		})
		if err != nil {
			return reserved, pkgerrors.Wrapf(err, "failed to reserve stock for product %s (order %s)", productID, orderID)
		}
		if taken > 0 {
			reserved[productID] = taken
		}
	}
	return reserved, nil
}

// ReleaseStock 把之前扣掉的数量加回去，是 ReserveStock 的补偿操作。
func (a *InventoryGormAdapter) ReleaseStock(ctx context.Context, orderID string, items map[string]int) error {
	productIDs := make([]string, 0, len(items))
	for id := range items {
		productIDs = append(productIDs, id)
	}
	sort.Strings(productIDs)

	for _, productID := range productIDs {
		qty := items[productID]
		if err := a.withProductLock(ctx, productID, func() error {
			return a.increment(ctx, productID, qty)
		}); err != nil {
			return pkgerrors.Wrapf(err, "failed to release stock for product %s (order %s)", productID, orderID)
		}
	}
	return nil
}

func (a *InventoryGormAdapter) withProductLock(ctx context.Context, productID string, fn func() error) error {
	if a.zk == nil {
		return fn()
	}

	lock, err := zookeeper.NewDistributedLock(a.zk, productID)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to create distributed lock")
	}
	if err := lock.Lock(); err != nil {
		return pkgerrors.Wrap(err, "failed to acquire distributed lock")
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Ctx(ctx).Warn().Err(err).Str("product_id", productID).Msg("Failed to release inventory lock")
		}
	}()

	return fn()
}

// takeFromStock 计算一次扣减：库存不足时扣到 0，返回实际扣掉的数量。
func takeFromStock(stock, qty int) (newStock, taken int) {
	taken = qty
	if taken > stock {
		taken = stock
	}
	return stock - taken, taken
}

// decrement 扣减单个商品的库存，返回实际扣掉的数量。
func (a *InventoryGormAdapter) decrement(ctx context.Context, productID string, qty int) (int, error) {
	taken := 0
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inv infrastructure.InventoryModel
		if err := tx.First(&inv, "product_id = ?", productID).Error; err != nil {
			if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
				// 没有库存记录的商品按不限量处理，没有可归还的扣减
				return nil
			}
			return err
		}

		var newStock int
		newStock, taken = takeFromStock(inv.Stock, qty)
		inv.Stock = newStock
		inv.InStock = newStock > 0
		inv.UpdatedAt = time.Now()
		return tx.Save(&inv).Error
	})
	if err != nil {
		return 0, err
	}
	return taken, nil
}

func (a *InventoryGormAdapter) increment(ctx context.Context, productID string, qty int) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inv infrastructure.InventoryModel
		if err := tx.First(&inv, "product_id = ?", productID).Error; err != nil {
			if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		inv.Stock += qty
		inv.InStock = inv.Stock > 0
		inv.UpdatedAt = time.Now()
		return tx.Save(&inv).Error
	})
}
