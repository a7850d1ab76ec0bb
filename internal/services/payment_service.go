package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/prajith-ops/Stayelo/internal/models"
	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

var ErrPaymentVerification = errors.New("payment verification failed")

// PaymentOrder is the slice of the gateway order the client needs to open
// the checkout widget.
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PaymentGateway abstracts the order/verification protocol so tests can run
// without gateway credentials.
type PaymentGateway interface {
	CreateOrder(amountPaise int64, currency, receipt string) (*PaymentOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

func (rg *RazorpayGateway) CreateOrder(amountPaise int64, currency, receipt string) (*PaymentOrder, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := rg.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway order creation failed: %v", err)
	}

	order := &PaymentOrder{Currency: currency}
	if id, ok := body["id"].(string); ok {
		order.ID = id
	}
	if amount, ok := body["amount"].(float64); ok {
		order.Amount = int64(amount)
	}
	if cur, ok := body["currency"].(string); ok {
		order.Currency = cur
	}
	if order.ID == "" {
		return nil, fmt.Errorf("gateway returned an order without an id")
	}

	return order, nil
}

func (rg *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, rg.keySecret)
}

type PaymentService struct {
	gateway  PaymentGateway
	bookings *BookingService
}

func NewPaymentService(gateway PaymentGateway, bookings *BookingService) *PaymentService {
	return &PaymentService{
		gateway:  gateway,
		bookings: bookings,
	}
}

// CreateOrder opens a gateway order for the given rupee amount.
func (ps *PaymentService) CreateOrder(ctx context.Context, amount float64) (*PaymentOrder, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	amountPaise := int64(math.Round(amount * 100))
	return ps.gateway.CreateOrder(amountPaise, "INR", "stayelo_booking")
}

// VerifyPayment checks the gateway signature and, only on success, records
// a CONFIRMED booking carrying the gateway payment id. On failure no booking
// is created.
func (ps *PaymentService) VerifyPayment(ctx context.Context, orderID, paymentID, signature string, booking *models.Booking) (*models.Booking, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return nil, fmt.Errorf("order id, payment id and signature are required")
	}

	if !ps.gateway.VerifySignature(orderID, paymentID, signature) {
		return nil, ErrPaymentVerification
	}

	return ps.bookings.ConfirmPaidBooking(ctx, booking, paymentID)
}
