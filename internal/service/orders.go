package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/amirko228/couple-shop/internal/domain"
	"github.com/amirko228/couple-shop/internal/relay"
	"github.com/amirko228/couple-shop/internal/repository"
)

// ErrRelayFailed wraps notification failures that block a submission.
var ErrRelayFailed = errors.New("notification relay failed")

// OrderService owns order and custom-print submission plus the admin
// transitions over both lists. Submissions notify through the relay before
// anything is stored; a relay failure fails the whole submission.
type OrderService struct {
	orders   *repository.OrderList
	prints   *repository.CustomPrintList
	notifier relay.Notifier
	log      *zap.Logger
}

func NewOrderService(orders *repository.OrderList, prints *repository.CustomPrintList, notifier relay.Notifier, log *zap.Logger) *OrderService {
	return &OrderService{orders: orders, prints: prints, notifier: notifier, log: log}
}

// Submit validates the checkout payload, relays the notification and stores
// the order as pending. Missing fields never reach the relay.
func (s *OrderService) Submit(ctx context.Context, items []domain.CartLine, totalPrice int, info domain.CustomerInfo) (*domain.Order, error) {
	if len(items) == 0 || totalPrice <= 0 {
		return nil, ErrInvalidInput
	}
	if info.Name == "" || info.Contact == "" || info.Phone == "" {
		return nil, ErrInvalidInput
	}

	lines := make([]domain.OrderLine, 0, len(items))
	for _, it := range items {
		if it.Product.ID == "" || it.Quantity <= 0 {
			return nil, ErrInvalidInput
		}
		lines = append(lines, domain.OrderLine{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Price:     it.Product.Price,
			Image:     it.Product.Thumbnail(),
			Quantity:  it.Quantity,
			Size:      it.Size,
			Color:     it.Color,
		})
	}

	msg := relay.FormatOrderMessage(lines, totalPrice, info)
	if err := s.notifier.SendMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRelayFailed, err)
	}

	o := domain.Order{
		ID:           newToken(),
		Items:        lines,
		TotalPrice:   totalPrice,
		CustomerInfo: info,
		Date:         time.Now().UTC(),
		Status:       domain.OrderStatusPending,
	}
	s.orders.Append(o)
	s.log.Info("order submitted", zap.String("id", o.ID), zap.Int("total", o.TotalPrice))
	return &o, nil
}

func (s *OrderService) ListOrders() []domain.Order { return s.orders.All() }

// UpdateOrderStatus sets the status and, when notify is set and the status
// actually changed, relays a customer-facing notice. That relay is best
// effort: a failure is logged, not returned, matching how the shop always
// behaved.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus, notify bool, comment string) (*domain.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidInput
	}
	o, err := s.orders.Get(id)
	if err != nil {
		return nil, err
	}
	old := o.Status
	o.Status = status
	if err := s.orders.Update(*o); err != nil {
		return nil, err
	}
	if notify && status != old {
		if err := s.notifier.SendMessage(ctx, relay.FormatStatusUpdate(*o, comment)); err != nil {
			s.log.Warn("status notification failed", zap.String("order", id), zap.Error(err))
		}
	}
	return o, nil
}

func (s *OrderService) DeleteOrder(id string) error { return s.orders.Delete(id) }

// CustomPrintInput is the custom-print submission payload. ImageData is
// either a data: URI or an external URL and is dropped after the relay call.
type CustomPrintInput struct {
	Name      string
	Contact   string
	Phone     string
	Message   string
	ImageData string
}

func (s *OrderService) SubmitCustomPrint(ctx context.Context, in CustomPrintInput) (*domain.CustomPrintRequest, error) {
	if in.Name == "" || in.Contact == "" || in.Phone == "" || in.Message == "" {
		return nil, ErrInvalidInput
	}

	hasImage := in.ImageData != ""
	msg := relay.FormatCustomPrintMessage(in.Name, in.Contact, in.Phone, in.Message, hasImage)

	var err error
	if hasImage {
		err = s.notifier.SendPhoto(ctx, in.ImageData, msg)
	} else {
		err = s.notifier.SendMessage(ctx, msg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRelayFailed, err)
	}

	r := domain.CustomPrintRequest{
		ID:       newToken(),
		Name:     in.Name,
		Contact:  in.Contact,
		Phone:    in.Phone,
		Message:  in.Message,
		HasImage: hasImage,
		Date:     time.Now().UTC(),
		Status:   domain.CustomPrintStatusNew,
	}
	s.prints.Append(r)
	s.log.Info("custom print request submitted", zap.String("id", r.ID), zap.Bool("hasImage", hasImage))
	return &r, nil
}

func (s *OrderService) ListCustomPrints() []domain.CustomPrintRequest { return s.prints.All() }

func (s *OrderService) UpdateCustomPrintStatus(id string, status domain.CustomPrintStatus) (*domain.CustomPrintRequest, error) {
	if !status.Valid() {
		return nil, ErrInvalidInput
	}
	r, err := s.prints.Get(id)
	if err != nil {
		return nil, err
	}
	r.Status = status
	if err := s.prints.Update(*r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *OrderService) DeleteCustomPrint(id string) error { return s.prints.Delete(id) }

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newToken builds the public id scheme used across the shop: a base36
// millisecond timestamp followed by three random uppercase characters.
func newToken() string {
	suffix := make([]byte, 3)
	for i := range suffix {
		suffix[i] = tokenAlphabet[rand.IntN(len(tokenAlphabet))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + strings.ToUpper(string(suffix))
}
