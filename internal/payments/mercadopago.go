package payments

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// MercadoPago cria uma preference de checkout; o init point é a URL
// que o app abre para o cliente pagar.
type MercadoPago struct {
	prefs preference.Client
}

func NewMercadoPago(accessToken string) *MercadoPago {
	if accessToken == "" {
		return nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil
	}

	return &MercadoPago{prefs: preference.NewClient(cfg)}
}

func (m *MercadoPago) CreateCheckout(
	ctx context.Context,
	reference string,
	title string,
	amount float64,
	currency string,
) (*Checkout, error) {

	req := preference.Request{
		ExternalReference: reference,
		Items: []preference.ItemRequest{
			{
				Title:      title,
				Quantity:   1,
				UnitPrice:  amount,
				CurrencyID: currency,
			},
		},
	}

	resp, err := m.prefs.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return &Checkout{
		ExternalID:  resp.ID,
		CheckoutURL: resp.InitPoint,
	}, nil
}

// Compile-time check
var _ Gateway = (*MercadoPago)(nil)
