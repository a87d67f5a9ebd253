// cmd/order-service/main.go
package main

import (
	"log"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"signcraft/internal/catalog"
	"signcraft/internal/pkg/bootstrap"
	"signcraft/internal/pkg/httpclient"
	"signcraft/internal/pkg/mq"
	"signcraft/internal/pkg/redis"
	"signcraft/internal/service/order/application"
	"signcraft/internal/service/order/infrastructure"
	"signcraft/internal/service/order/infrastructure/adapter"
	"signcraft/internal/service/order/interfaces"
	"signcraft/internal/zookeeper"
)

const (
	serviceName = "order-service"
	servicePort = 8085

	zkSessionTimeout = 5 * time.Second
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

	zkConn, err := zookeeper.Connect(cfg.Infra.Zookeeper.Servers, zkSessionTimeout)
	if err != nil {
		log.Fatalf("failed to connect to zookeeper: %v", err)
	}
	defer zkConn.Close()

	kafkaWriter := mq.NewKafkaWriter(strings.Split(cfg.Infra.Kafka.Brokers, ","), cfg.App.OrderTopic)
	defer kafkaWriter.Close()

	tracer := otel.Tracer(serviceName)

	products := catalog.NewCachedRepository(catalog.NewGormRepository(db), redisClient)
	orderRepo := infrastructure.NewGormOrderRepository(db)
	inventory := adapter.NewInventoryGormAdapter(db, zkConn)
	notifier := adapter.NewNotificationKafkaAdapter(kafkaWriter)
	sequence := adapter.NewRedisSequenceAdapter(redisClient)

	bootstrap.StartService(bootstrap.AppInfo{
		ServiceName: serviceName,
		Port:        servicePort,
		RegisterHandlers: func(appCtx bootstrap.AppCtx) {
			// 运费服务的实例地址在运行时查 Nacos，这里只拿到注册中心句柄
			shipping := adapter.NewShippingHTTPAdapter(httpclient.NewClient(tracer), appCtx.Nacos)

			orderService := application.NewOrderApplicationService(
				orderRepo, products, inventory, notifier, sequence, shipping,
				tracer, cfg.App.PriceTolerance,
			)
			interfaces.NewOrderHandler(orderService).RegisterRoutes(appCtx.Mux)
		},
	})
}
