package gateway

import (
	"context"
	"fmt"

	"refurbmart/pkg/utils"

	razorpay "github.com/razorpay/razorpay-go"
)

type Config struct {
	KeyID        string
	KeySecret    string
	ProviderName string // stored on Transaction.Gateway
}

// Gateway is the payment-provider boundary the order and payment services
// talk to. CreateRemoteOrder registers a payment intent on the provider and
// returns its id; VerifySignature checks the checksum the provider's client
// flow hands back after a completed payment.
type Gateway interface {
	CreateRemoteOrder(ctx context.Context, amountMinor int64, currency string, receipt string) (string, error)
	VerifySignature(remoteOrderID, remotePaymentID, signature string) bool
	KeyID() string
	Name() string
}

type razorpayGateway struct {
	client *razorpay.Client
	cfg    Config
}

func NewRazorpayGateway(cfg Config) (Gateway, error) {
	if cfg.KeyID == "" || cfg.KeySecret == "" {
		return nil, fmt.Errorf("missing razorpay credentials")
	}
	if cfg.ProviderName == "" {
		cfg.ProviderName = "razorpay"
	}

	return &razorpayGateway{
		client: razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		cfg:    cfg,
	}, nil
}

func (g *razorpayGateway) CreateRemoteOrder(ctx context.Context, amountMinor int64, currency string, receipt string) (string, error) {
	body := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}

	resp, err := g.client.Order.Create(body, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay create order: %w", err)
	}

	remoteID, ok := resp["id"].(string)
	if !ok || remoteID == "" {
		return "", fmt.Errorf("razorpay create order: missing id in response")
	}

	return remoteID, nil
}

func (g *razorpayGateway) VerifySignature(remoteOrderID, remotePaymentID, signature string) bool {
	return utils.VerifyPaymentSignature(g.cfg.KeySecret, remoteOrderID, remotePaymentID, signature)
}

func (g *razorpayGateway) KeyID() string {
	return g.cfg.KeyID
}

func (g *razorpayGateway) Name() string {
	return g.cfg.ProviderName
}
