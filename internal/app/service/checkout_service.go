package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	appGateway "github.com/dsev/locknlock-bff/internal/app/gateway"
	"github.com/dsev/locknlock-bff/internal/app/model"
	"github.com/dsev/locknlock-bff/pkg/gateway"
	"github.com/dsev/locknlock-bff/pkg/logger"
)

var (
	ErrCheckoutNotFound     = errors.New("checkout session not found")
	ErrCheckoutInvalidState = errors.New("checkout session is not awaiting payment")
)

// ValidationError carries per-field messages for a rejected checkout form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "checkout form validation failed"
}

// CheckoutOptions tunes the payment watcher and session lifecycle.
type CheckoutOptions struct {
	// PollInterval is how often an awaiting session asks the backend for
	// payment status.
	PollInterval time.Duration
	// SessionTTL is how long an untouched session survives before the
	// janitor reaps it.
	SessionTTL time.Duration
	// RedirectDelay is how long a paid session shows its confirmation
	// before the view starts carrying a redirect target.
	RedirectDelay time.Duration
}

// CheckoutService runs QR payment checkouts. Submit places the order and
// requests a QR code, then a background watcher polls payment status until
// the transfer lands or the session is abandoned.
type CheckoutService interface {
	Submit(ctx context.Context, token string, shipping model.ShippingInfo) (model.CheckoutView, error)
	Get(sessionID string) (model.CheckoutView, error)
	CheckNow(ctx context.Context, sessionID string) (model.CheckoutView, error)
	Abandon(sessionID string) error
	SweepIdle() int
	Shutdown()
}

type checkoutSession struct {
	id          string
	token       string
	orderID     string
	orderNumber string
	qrURL       string

	mu       sync.Mutex
	state    model.CheckoutState
	paidAt   time.Time
	lastSeen time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

func (s *checkoutSession) stopWatcher() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

type checkoutService struct {
	orderGateway appGateway.OrderGateway
	cartService  CartService
	options      CheckoutOptions

	mu       sync.Mutex
	sessions map[string]*checkoutSession
	wg       sync.WaitGroup
}

func NewCheckoutService(orderGateway appGateway.OrderGateway, cartService CartService, options CheckoutOptions) CheckoutService {
	if options.PollInterval <= 0 {
		options.PollInterval = 3 * time.Second
	}
	if options.SessionTTL <= 0 {
		options.SessionTTL = 30 * time.Minute
	}
	return &checkoutService{
		orderGateway: orderGateway,
		cartService:  cartService,
		options:      options,
		sessions:     make(map[string]*checkoutSession),
	}
}

func validateShipping(shipping model.ShippingInfo) *ValidationError {
	fields := make(map[string]string)
	if strings.TrimSpace(shipping.FullName) == "" {
		fields["fullName"] = "Vui lòng nhập họ tên"
	}
	if strings.TrimSpace(shipping.PhoneNumber) == "" {
		fields["phoneNumber"] = "Vui lòng nhập số điện thoại"
	}
	if strings.TrimSpace(shipping.City) == "" {
		fields["city"] = "Vui lòng chọn tỉnh/thành phố"
	}
	if strings.TrimSpace(shipping.Ward) == "" {
		fields["ward"] = "Vui lòng chọn phường/xã"
	}
	if strings.TrimSpace(shipping.Street) == "" {
		fields["street"] = "Vui lòng nhập địa chỉ"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Submit validates the form, places the order and requests the payment QR.
// A failed order or QR request sends the caller back to the form with the
// backend's message. An order that succeeded before a QR failure is kept,
// the shopper can pay it from their order history.
func (s *checkoutService) Submit(ctx context.Context, token string, shipping model.ShippingInfo) (model.CheckoutView, error) {
	if verr := validateShipping(shipping); verr != nil {
		return model.CheckoutView{State: model.CheckoutStateForm}, verr
	}

	order, err := s.orderGateway.CreateOrder(ctx, token, shipping)
	if err != nil {
		if gateway.IsAuthError(err) {
			return model.CheckoutView{State: model.CheckoutStateForm}, err
		}
		logger.Error("Failed to create order", err, nil)
		return model.CheckoutView{
			State:   model.CheckoutStateForm,
			Message: gateway.Message(err, "Tạo đơn hàng thất bại"),
		}, nil
	}

	qr, err := s.orderGateway.RequestQR(ctx, token, order.ID)
	if err != nil {
		logger.Error("Failed to request payment QR", err, map[string]interface{}{
			"order_id": order.ID,
		})
		return model.CheckoutView{
			State:   model.CheckoutStateForm,
			Message: gateway.Message(err, "Tạo QR thanh toán thất bại"),
		}, nil
	}

	session := &checkoutSession{
		id:          uuid.New().String(),
		token:       token,
		orderID:     order.ID,
		orderNumber: order.OrderNumber,
		qrURL:       qr.QRURL,
		state:       model.CheckoutStateAwaitingPayment,
		lastSeen:    time.Now(),
		stop:        make(chan struct{}),
	}

	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()

	// First status check happens right away, the transfer may already have
	// landed by the time the QR came back.
	s.poll(session)

	s.wg.Add(1)
	go s.watch(session)

	logger.Info("Checkout session started", map[string]interface{}{
		"session_id":   session.id,
		"order_number": session.orderNumber,
	})
	return s.viewOf(session), nil
}

func (s *checkoutService) watch(session *checkoutSession) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.options.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-session.stop:
			return
		case <-ticker.C:
			if s.poll(session) {
				return
			}
		}
	}
}

// poll asks the backend once and marks the session paid when the transfer
// landed, reporting whether it did. Transient failures are logged and the
// next tick tries again.
func (s *checkoutService) poll(session *checkoutSession) bool {
	ctx, cancel := context.WithTimeout(context.Background(), s.options.PollInterval)
	defer cancel()

	state, err := s.orderGateway.PaymentStatus(ctx, session.token, session.orderID)
	if err != nil {
		logger.Warn("Payment status check failed", map[string]interface{}{
			"session_id": session.id,
			"error":      err.Error(),
		})
		return false
	}

	if state.PaymentStatus == model.PaymentStatusSuccess {
		s.markPaid(session)
		return true
	}
	return false
}

func (s *checkoutService) markPaid(session *checkoutSession) {
	session.mu.Lock()
	if session.state != model.CheckoutStateAwaitingPayment {
		session.mu.Unlock()
		return
	}
	session.state = model.CheckoutStatePaid
	session.paidAt = time.Now()
	session.mu.Unlock()

	session.stopWatcher()
	s.cartService.Clear(session.token)

	logger.Info("Checkout paid", map[string]interface{}{
		"session_id":   session.id,
		"order_number": session.orderNumber,
	})
}

func (s *checkoutService) find(sessionID string) (*checkoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrCheckoutNotFound
	}
	return session, nil
}

func (s *checkoutService) viewOf(session *checkoutSession) model.CheckoutView {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.lastSeen = time.Now()

	view := model.CheckoutView{
		ID:          session.id,
		State:       session.state,
		OrderNumber: session.orderNumber,
		QRURL:       session.qrURL,
	}
	if session.state == model.CheckoutStatePaid {
		view.Message = "Thanh toán thành công"
		if time.Since(session.paidAt) >= s.options.RedirectDelay {
			view.RedirectTo = "/don-hang"
		}
	}
	return view
}

func (s *checkoutService) Get(sessionID string) (model.CheckoutView, error) {
	session, err := s.find(sessionID)
	if err != nil {
		return model.CheckoutView{}, err
	}
	return s.viewOf(session), nil
}

// CheckNow runs one status check immediately instead of waiting for the
// next tick. Only an awaiting session can be checked.
func (s *checkoutService) CheckNow(ctx context.Context, sessionID string) (model.CheckoutView, error) {
	session, err := s.find(sessionID)
	if err != nil {
		return model.CheckoutView{}, err
	}

	session.mu.Lock()
	awaiting := session.state == model.CheckoutStateAwaitingPayment
	session.mu.Unlock()
	if !awaiting {
		return s.viewOf(session), ErrCheckoutInvalidState
	}

	state, err := s.orderGateway.PaymentStatus(ctx, session.token, session.orderID)
	if err != nil {
		logger.Warn("Payment status check failed", map[string]interface{}{
			"session_id": session.id,
			"error":      err.Error(),
		})
		return s.viewOf(session), nil
	}
	if state.PaymentStatus == model.PaymentStatusSuccess {
		s.markPaid(session)
	}
	return s.viewOf(session), nil
}

// Abandon stops the watcher and forgets the session. The order itself is
// untouched, it stays payable from order history.
func (s *checkoutService) Abandon(sessionID string) error {
	session, err := s.find(sessionID)
	if err != nil {
		return err
	}

	session.stopWatcher()

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	logger.Info("Checkout session abandoned", map[string]interface{}{
		"session_id": sessionID,
	})
	return nil
}

// SweepIdle reaps sessions nobody has looked at within the session TTL and
// returns how many were dropped.
func (s *checkoutService) SweepIdle() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.options.SessionTTL)
	swept := 0
	for id, session := range s.sessions {
		session.mu.Lock()
		idle := session.lastSeen.Before(cutoff)
		session.mu.Unlock()
		if idle {
			session.stopWatcher()
			delete(s.sessions, id)
			swept++
		}
	}
	return swept
}

// Shutdown stops every watcher and waits for them to exit.
func (s *checkoutService) Shutdown() {
	s.mu.Lock()
	for _, session := range s.sessions {
		session.stopWatcher()
	}
	s.mu.Unlock()

	s.wg.Wait()
}
