package payments

import (
	"context"
	"math"
	"strings"

	stripesdk "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// Stripe cria um PaymentIntent; o client secret vai no lugar da URL
// de checkout (o app conclui com o SDK do Stripe no dispositivo).
type Stripe struct{}

func NewStripe(secretKey string) *Stripe {
	if secretKey == "" {
		return nil
	}

	stripesdk.Key = secretKey
	return &Stripe{}
}

func (s *Stripe) CreateCheckout(
	ctx context.Context,
	reference string,
	title string,
	amount float64,
	currency string,
) (*Checkout, error) {

	params := &stripesdk.PaymentIntentParams{
		Amount:      stripesdk.Int64(int64(math.Round(amount * 100))),
		Currency:    stripesdk.String(strings.ToLower(currency)),
		Description: stripesdk.String(title),
	}
	params.Context = ctx
	params.AddMetadata("reference", reference)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	return &Checkout{
		ExternalID:  pi.ID,
		CheckoutURL: pi.ClientSecret,
	}, nil
}

// Compile-time check
var _ Gateway = (*Stripe)(nil)
