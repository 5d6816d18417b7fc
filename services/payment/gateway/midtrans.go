package gateway

import (
	"bytes"
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/payment"
)

// MidtransGW talks to the Midtrans Snap API. It implements both
// payment.SnapGW and payment.SignatureVerifier.
type MidtransGW struct {
	baseURL   string
	serverKey string
	client    *http.Client
}

// NewMidtransGW creates a new Midtrans gateway from configuration
func NewMidtransGW(cfg models.MidtransConfig) *MidtransGW {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &MidtransGW{
		baseURL:   cfg.BaseURL,
		serverKey: cfg.ServerKey,
		client:    &http.Client{Timeout: timeout},
	}
}

type snapRequest struct {
	TransactionDetails struct {
		OrderID     string `json:"order_id"`
		GrossAmount int    `json:"gross_amount"`
	} `json:"transaction_details"`
	CustomerDetails struct {
		Email string `json:"email"`
	} `json:"customer_details"`
}

type snapResponse struct {
	Token         string   `json:"token"`
	RedirectURL   string   `json:"redirect_url"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateTransaction creates a Snap transaction and returns the redirect
// handle. The raw request and response bodies are returned for storage.
func (g *MidtransGW) CreateTransaction(ctx context.Context, orderID string, grossAmount int, customerEmail string) (*payment.SnapResult, error) {
	var body snapRequest
	body.TransactionDetails.OrderID = orderID
	body.TransactionDetails.GrossAmount = grossAmount
	body.CustomerDetails.Email = customerEmail

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snap request: %w", err)
	}

	url := g.baseURL + "/snap/v1/transactions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build snap request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Basic "+basicAuth(g.serverKey))

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrPaymentProvider, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", payment.ErrPaymentProvider, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d: %s", payment.ErrPaymentProvider, resp.StatusCode, respBody)
	}

	var snap snapResponse
	if err := json.Unmarshal(respBody, &snap); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", payment.ErrPaymentProvider, err)
	}
	if snap.Token == "" {
		return nil, fmt.Errorf("%w: empty token: %s", payment.ErrPaymentProvider, respBody)
	}

	return &payment.SnapResult{
		Token:       snap.Token,
		RedirectURL: snap.RedirectURL,
		RawRequest:  string(payload),
		RawResponse: string(respBody),
	}, nil
}

// Verify checks the notification signature: the hex SHA-512 of
// order_id + status_code + gross_amount + server key. The comparison is
// constant time since the signature comes from the caller.
func (g *MidtransGW) Verify(n *models.PaymentNotification) error {
	expected := SignNotification(n.OrderID, n.StatusCode, n.GrossAmount, g.serverKey)
	if subtle.ConstantTimeCompare([]byte(n.SignatureKey), []byte(expected)) != 1 {
		return payment.ErrWebhookVerification
	}
	return nil
}

// SignNotification computes the provider's notification signature
func SignNotification(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func basicAuth(serverKey string) string {
	return base64.StdEncoding.EncodeToString([]byte(serverKey + ":"))
}
