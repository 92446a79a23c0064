package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"clinicbook/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler collects payment for a booking and returns the invoice.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// UnifiedPaymentHandler routes card payments through Stripe and records cash
// payments as pending until the front desk settles them.
type UnifiedPaymentHandler struct {
	logger *zap.Logger
}

func NewPaymentHandler(logger *zap.Logger) *UnifiedPaymentHandler {
	return &UnifiedPaymentHandler{logger: logger}
}

func (h *UnifiedPaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	switch req.Method {
	case "card":
		return h.processCardPayment(ctx, req, inv)
	case "cash":
		return h.processCashPayment(req, inv)
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

// processCardPayment opens a Stripe PaymentIntent. The client secret goes
// back to the caller so the front end can confirm the charge; the intent id
// is kept as the gateway reference.
func (h *UnifiedPaymentHandler) processCardPayment(ctx context.Context, req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toMinorUnits(req.Amount)),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			"invoiceId": inv.InvoiceID,
			"userId":    req.UserID,
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		h.logger.Error("Stripe payment intent failed", zap.Error(err))
		return nil, fmt.Errorf("card payment failed: %w", err)
	}

	inv.PaymentID = pi.ID
	inv.ClientSecret = pi.ClientSecret
	inv.Status = "paid"
	inv.UpdatedAt = time.Now()

	h.logger.Info("Card payment initiated",
		zap.String("invoice", inv.InvoiceID), zap.String("paymentIntent", pi.ID))
	return inv, nil
}

// processCashPayment leaves the invoice pending; cash is settled at the desk.
func (h *UnifiedPaymentHandler) processCashPayment(req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	inv.UpdatedAt = time.Now()
	h.logger.Info("Cash payment recorded",
		zap.String("invoice", inv.InvoiceID), zap.String("user", req.UserID))
	return inv, nil
}

func validateRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.UserID == "" {
		return errors.New("missing user ID")
	}
	if req.Method != "card" && req.Method != "cash" {
		return errors.New("unsupported method")
	}
	if req.Currency == "" {
		return errors.New("missing currency")
	}
	return nil
}

// toMinorUnits converts a decimal amount to the smallest currency unit
// Stripe expects.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
