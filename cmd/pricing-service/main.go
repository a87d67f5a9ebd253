// cmd/pricing-service/main.go
package main

import (
	"log"

	"go.opentelemetry.io/otel"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"signcraft/internal/catalog"
	"signcraft/internal/pkg/bootstrap"
	"signcraft/internal/pkg/redis"
	"signcraft/internal/service/pricing/application"
	"signcraft/internal/service/pricing/interfaces"
)

const (
	serviceName = "pricing-service"
	servicePort = 8084
)

// main 函数是应用的"组装根" (Composition Root)
// 它的核心职责是：创建并组装所有依赖项，然后启动应用。
func main() {
	bootstrap.Init()
	cfg := bootstrap.GetCurrentConfig()

	db, err := gorm.Open(mysql.Open(cfg.Infra.Mysql.DSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to mysql: %v", err)
	}

	redisClient, err := redis.NewClient(cfg.Infra.Redis.Addrs)
	if err != nil {
		log.Fatalf("failed to initialize redis client: %v", err)
	}
	defer redisClient.Close()

	// 商品读取走缓存仓储，Redis 不可用时自动退到 MySQL
	products := catalog.NewCachedRepository(catalog.NewGormRepository(db), redisClient)

	tracer := otel.Tracer(serviceName)
	pricingService := application.NewPricingService(products, tracer)
	handler := interfaces.NewPricingHandler(pricingService)

	bootstrap.StartService(bootstrap.AppInfo{
		ServiceName: serviceName,
		Port:        servicePort,
		RegisterHandlers: func(appCtx bootstrap.AppCtx) {
			handler.RegisterRoutes(appCtx.Mux)
		},
	})
}
