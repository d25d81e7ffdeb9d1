package payment

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gocartvn/checkout-api/internal/domain"
	"github.com/gocartvn/checkout-api/internal/usecase"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// sessionTTL is how long a hosted checkout session stays redeemable before the
// gateway expires it.
const sessionTTL = 30 * time.Minute

const requestTimeout = 20 * time.Second

// StripeGateway creates Stripe Checkout Sessions for gateway payments.
type StripeGateway struct {
	api   *client.API
	appID string
}

func NewStripeGateway(secretKey, appID string) *StripeGateway {
	backends := stripe.NewBackends(&http.Client{Timeout: requestTimeout})
	return &StripeGateway{
		api:   client.New(secretKey, backends),
		appID: appID,
	}
}

// CreateSession opens one card-payment session covering the whole checkout.
// The created order ids and the shopper identity travel as session metadata so
// the confirmation webhook can finalize out of band.
func (g *StripeGateway) CreateSession(ctx context.Context, req usecase.SessionRequest) (*domain.PaymentSession, error) {
	ids := make([]string, 0, len(req.OrderIDs))
	for _, id := range req.OrderIDs {
		ids = append(ids, id.String())
	}

	expiresAt := time.Now().Add(sessionTTL)

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(UnitAmount(req.Amount, req.Currency)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Order payment"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		ExpiresAt:  stripe.Int64(expiresAt.Unix()),
		SuccessURL: stripe.String(req.Origin + "/loading?nextUrl=orders"),
		CancelURL:  stripe.String(req.Origin + "/cart"),
	}
	params.Context = ctx
	params.AddMetadata("orderIds", strings.Join(ids, ","))
	params.AddMetadata("userId", req.UserID)
	params.AddMetadata("appId", g.appID)

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, err
	}

	return &domain.PaymentSession{URL: session.URL, ExpiresAt: expiresAt}, nil
}

var _ usecase.PaymentGateway = (*StripeGateway)(nil)
