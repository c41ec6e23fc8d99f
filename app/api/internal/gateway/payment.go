package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpc"
)

// PaymentGateway creates payment intents with the external processor. The
// intent amount always comes from the stored order total, never from the
// client request.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, orderNumber string, amountCents int64, currency string) (*Intent, error)
}

type Intent struct {
	IntentId     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
	AmountCents  int64  `json:"amountCents"`
	Currency     string `json:"currency"`
}

type httpPaymentGateway struct {
	endpoint string
	apiKey   string
}

// NewPaymentGateway returns nil when no endpoint is configured; the payment
// endpoint then reports the gateway as unavailable.
func NewPaymentGateway(endpoint, apiKey string) PaymentGateway {
	if endpoint == "" {
		return nil
	}
	return &httpPaymentGateway{endpoint: endpoint, apiKey: apiKey}
}

type createIntentRequest struct {
	Authorization string `header:"Authorization"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Reference     string `json:"reference"`
}

type createIntentResponse struct {
	Id           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

func (g *httpPaymentGateway) CreateIntent(ctx context.Context, orderNumber string, amountCents int64, currency string) (*Intent, error) {
	req := createIntentRequest{
		Authorization: "Bearer " + g.apiKey,
		Amount:        amountCents,
		Currency:      currency,
		Reference:     orderNumber,
	}
	resp, err := httpc.Do(ctx, http.MethodPost, g.endpoint+"/v1/payment_intents", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var body createIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	return &Intent{
		IntentId:     body.Id,
		ClientSecret: body.ClientSecret,
		AmountCents:  amountCents,
		Currency:     currency,
	}, nil
}
