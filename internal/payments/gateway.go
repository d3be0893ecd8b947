package payments

import (
	"context"

	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httperr"
)

const (
	GatewayMercadoPago = "mercadopago"
	GatewayStripe      = "stripe"
)

// Checkout é o que o app precisa para levar o cliente ao pagamento:
// o identificador no gateway e a URL (ou client secret) de cobrança.
type Checkout struct {
	ExternalID  string
	CheckoutURL string
}

type Gateway interface {
	CreateCheckout(
		ctx context.Context,
		reference string,
		title string,
		amount float64,
		currency string,
	) (*Checkout, error)
}

// Registry resolve o gateway pedido na requisição. Gateways sem
// credencial configurada simplesmente não entram no mapa.
type Registry struct {
	gateways map[string]Gateway
}

func NewRegistry() *Registry {
	return &Registry{gateways: make(map[string]Gateway)}
}

func (r *Registry) Register(name string, g Gateway) {
	if g != nil {
		r.gateways[name] = g
	}
}

func (r *Registry) Get(name string) (Gateway, error) {
	if name == "" {
		name = GatewayMercadoPago
	}

	g, ok := r.gateways[name]
	if !ok {
		return nil, httperr.ErrBusiness("gateway_not_available")
	}
	return g, nil
}
