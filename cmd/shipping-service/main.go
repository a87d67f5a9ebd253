// cmd/shipping-service/main.go
package main

import (
	"log"

	"go.opentelemetry.io/otel"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"signcraft/internal/catalog"
	"signcraft/internal/pkg/bootstrap"
	"signcraft/internal/pkg/redis"
	"signcraft/internal/service/shipping/application"
	"signcraft/internal/service/shipping/interfaces"
)

const (
	serviceName = "shipping-service"
	servicePort = 8086
)

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

	products := catalog.NewCachedRepository(catalog.NewGormRepository(db), redisClient)

	tracer := otel.Tracer(serviceName)
	shippingService := application.NewShippingService(products, tracer)
	handler := interfaces.NewShippingHandler(shippingService)

	bootstrap.StartService(bootstrap.AppInfo{
		ServiceName: serviceName,
		Port:        servicePort,
		RegisterHandlers: func(appCtx bootstrap.AppCtx) {
			handler.RegisterRoutes(appCtx.Mux)
		},
	})
}
