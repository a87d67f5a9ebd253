// internal/pkg/bootstrap/config.go
package bootstrap

import (
	"log"
	"os"
	"strconv"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// Config 聚合了所有服务共享的运行时配置。
// 按来源优先级：环境变量 > CONFIG_PATH 指向的 yaml 文件 > 默认值。
type Config struct {
	App struct {
		OrderTopic     string  `yaml:"orderTopic"`     // 订单通知消息的 Kafka 主题
		PriceTolerance float64 `yaml:"priceTolerance"` // 客户端报价与服务端重算价的允许偏差（元）
	} `yaml:"app"`
	Infra struct {
		Jaeger struct {
			Endpoint string `yaml:"endpoint"`
		} `yaml:"jaeger"`
		Mysql struct {
			DSN string `yaml:"dsn"`
		} `yaml:"mysql"`
		Redis struct {
			Addrs string `yaml:"addrs"`
		} `yaml:"redis"`
		Kafka struct {
			Brokers string `yaml:"brokers"`
		} `yaml:"kafka"`
		Zookeeper struct {
			Servers string `yaml:"servers"`
		} `yaml:"zookeeper"`
		Nacos struct {
			ServerAddrs string `yaml:"serverAddrs"`
			Namespace   string `yaml:"namespace"`
			Group       string `yaml:"group"`
		} `yaml:"nacos"`
	} `yaml:"infra"`
}

var currentConfig atomic.Value // *Config

// Init 加载配置并缓存为全局当前配置。所有 main 函数的第一行调用。
func Init() {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("FATAL: cannot read config file %s: %v", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("FATAL: cannot parse config file %s: %v", path, err)
		}
		log.Printf("Config loaded from %s", path)
	}

	applyEnvOverrides(cfg)
	currentConfig.Store(cfg)
}

// GetCurrentConfig 返回当前生效的配置快照。
func GetCurrentConfig() *Config {
	if c, ok := currentConfig.Load().(*Config); ok {
		return c
	}
	// 允许测试等场景在未显式 Init 时拿到默认值
	cfg := defaultConfig()
	currentConfig.Store(cfg)
	return cfg
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.App.OrderTopic = "order-notifications"
	cfg.App.PriceTolerance = 0.01
	cfg.Infra.Jaeger.Endpoint = "http://localhost:14268/api/traces"
	cfg.Infra.Mysql.DSN = "signcraft:signcraft@tcp(localhost:3306)/signcraft?charset=utf8mb4&parseTime=True&loc=Local"
	cfg.Infra.Redis.Addrs = "localhost:6379"
	cfg.Infra.Kafka.Brokers = "localhost:9092"
	cfg.Infra.Zookeeper.Servers = "localhost:2181"
	cfg.Infra.Nacos.ServerAddrs = "localhost:8848"
	cfg.Infra.Nacos.Group = "DEFAULT_GROUP"
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	setIfPresent := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setIfPresent("JAEGER_ENDPOINT", &cfg.Infra.Jaeger.Endpoint)
	setIfPresent("MYSQL_DSN", &cfg.Infra.Mysql.DSN)
	setIfPresent("REDIS_ADDRS", &cfg.Infra.Redis.Addrs)
	setIfPresent("KAFKA_BROKERS", &cfg.Infra.Kafka.Brokers)
	setIfPresent("ZK_SERVERS", &cfg.Infra.Zookeeper.Servers)
	setIfPresent("NACOS_SERVER_ADDRS", &cfg.Infra.Nacos.ServerAddrs)
	setIfPresent("NACOS_NAMESPACE", &cfg.Infra.Nacos.Namespace)
	setIfPresent("NACOS_GROUP", &cfg.Infra.Nacos.Group)
	setIfPresent("ORDER_TOPIC", &cfg.App.OrderTopic)
	if v, ok := os.LookupEnv("PRICE_TOLERANCE"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.App.PriceTolerance = f
		}
	}
}
