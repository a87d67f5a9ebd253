// internal/service/order/infrastructure/adapter/shipping_http_adapter.go
package adapter

import (
	"context"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"signcraft/internal/pkg/httpclient"
	"signcraft/internal/pkg/nacos"
	"signcraft/internal/service/order/port"
)

const shippingServiceName = "shipping-service"

// ShippingHTTPAdapter 通过 Nacos 发现运费服务并发起 HTTP 调用。
type ShippingHTTPAdapter struct {
	client *httpclient.Client
	nacos  *nacos.Client
}

func NewShippingHTTPAdapter(client *httpclient.Client, nacosClient *nacos.Client) *ShippingHTTPAdapter {
	return &ShippingHTTPAdapter{client: client, nacos: nacosClient}
}

var _ port.ShippingQuoter = (*ShippingHTTPAdapter)(nil)

type calculateShippingRequest struct {
	ProductID string `json:"productId"`
	MethodID  string `json:"methodId"`
	Zip       string `json:"zip"`
	Quantity  int    `json:"quantity"`
}

type calculateShippingResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Cost float64 `json:"cost"`
	} `json:"data"`
	Error string `json:"error"`
}

func (a *ShippingHTTPAdapter) Quote(ctx context.Context, productID, methodID, zip string, quantity int) (float64, error) {
	ip, servicePort, err := a.nacos.DiscoverServiceInstance(shippingServiceName)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "failed to discover shipping service")
	}

	url := fmt.Sprintf("http://%s:%d/calculate_shipping", ip, servicePort)
	req := calculateShippingRequest{
		ProductID: productID,
		MethodID:  methodID,
		Zip:       zip,
		Quantity:  quantity,
	}

	var resp calculateShippingResponse
	if err := a.client.PostJSON(ctx, url, req, &resp); err != nil {
		return 0, pkgerrors.Wrap(err, "failed to call shipping service")
	}
	if !resp.Success {
		return 0, pkgerrors.Errorf("shipping service rejected quote: %s", resp.Error)
	}
	return resp.Data.Cost, nil
}
