// Copyright 2024 picklebay
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"

	"github.com/picklebay/picklebay/internal/notification"
	"github.com/picklebay/picklebay/internal/order/internal/domain"
	"github.com/picklebay/picklebay/internal/order/internal/event"
	"github.com/picklebay/picklebay/internal/order/internal/repository"
	"github.com/picklebay/picklebay/internal/payment"
)

var (
	ErrOrderNotFound           = repository.ErrOrderNotFound
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	// ErrNothingToRefund means the order has no captured gateway payment,
	// either cod or the gateway never confirmed.
	ErrNothingToRefund = errors.New("order has no gateway payment to refund")
	// ErrRefundMismatch rejects a refund whose amount or payment id does not
	// match the stored order.
	ErrRefundMismatch = errors.New("refund request does not match the order")
)

// bulkConcurrency bounds the fan-out of a bulk status update.
const bulkConcurrency = 8

// CancelResult reports a cancellation that may have partially succeeded: the
// order is cancelled but an automatic refund attempt can still fail, leaving
// the refund to be retried manually.
type CancelResult struct {
	Order           domain.Order
	RefundAttempted bool
	RefundSucceeded bool
	RefundID        string
	RefundFailure   string
}

type BulkResult struct {
	Updated []domain.Order
	Failed  []BulkFailure
}

// BulkFailure reports a key that did not reach the target status. Status is
// the persisted status re-read after the batch, so the console shows ground
// truth instead of its optimistic copy.
type BulkFailure struct {
	SN     string
	Reason string
	Status string
}

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go -typed Service
type Service interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	// ListOrders pages newest-first. status 0 means any status, keyword ""
	// disables the search filter.
	ListOrders(ctx context.Context, offset, limit int, status domain.OrderStatus, keyword string) ([]domain.Order, int64, error)
	// UpdateStatus moves the order along the lifecycle graph. Setting the
	// status it already has is a no-op, not an error.
	UpdateStatus(ctx context.Context, sn string, target domain.OrderStatus) (domain.Order, error)
	// CancelOrder cancels and, for captured online payments, refunds. A
	// failed refund does not undo the cancellation.
	CancelOrder(ctx context.Context, sn string) (CancelResult, error)
	// RefundOrder pushes amount paisa back through the gateway and marks the
	// order refunded, or cancelled_and_refunded when it was cancelled. The
	// caller restates the gateway transaction id, which must match the
	// stored one.
	RefundOrder(ctx context.Context, sn string, amount int64, paymentID string) (domain.Order, error)
	BulkUpdateStatus(ctx context.Context, sns []string, target domain.OrderStatus) (BulkResult, error)
	// MarkPaid and MarkPaymentFailed apply gateway outcomes. Both are
	// idempotent so a redelivered payment event is harmless.
	MarkPaid(ctx context.Context, sn string, paymentID string) error
	MarkPaymentFailed(ctx context.Context, sn string) error
}

func NewService(repo repository.OrderRepository,
	paymentSvc payment.Service,
	notificationSvc notification.Service,
	producer event.OrderEventProducer) Service {
	return &service{
		repo:            repo,
		paymentSvc:      paymentSvc,
		notificationSvc: notificationSvc,
		producer:        producer,
		logger:          elog.DefaultLogger,
	}
}

type service struct {
	repo            repository.OrderRepository
	paymentSvc      payment.Service
	notificationSvc notification.Service
	producer        event.OrderEventProducer
	logger          *elog.Component
}

func (s *service) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	order.Status = domain.StatusPending
	// A payment id at create time means the gateway already captured the
	// money client-side (the web layer verified the checkout signature), so
	// the order skips pending. A redelivered webhook finds it off pending
	// and is swallowed as a duplicate.
	if order.PaymentID != "" {
		order.Status = domain.StatusProcessing
	}
	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	// Side effects are best-effort: the order exists, mail and broadcast
	// failures must not roll it back.
	s.produce(ctx, event.TypeNewOrder, created)
	if err = s.notificationSvc.SendOrderConfirmation(ctx, s.toSummary(created)); err != nil {
		s.logger.Warn("failed to send order confirmation",
			elog.String("order_sn", created.SN),
			elog.FieldErr(err))
	}
	return created, nil
}

func (s *service) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	return s.repo.FindOrderBySN(ctx, sn)
}

func (s *service) ListOrders(ctx context.Context, offset, limit int, status domain.OrderStatus, keyword string) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListOrders(ctx, offset, limit, status, keyword)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrders(ctx, status, keyword)
		return err
	})
	return orders, total, eg.Wait()
}

func (s *service) UpdateStatus(ctx context.Context, sn string, target domain.OrderStatus) (domain.Order, error) {
	order, err := s.repo.FindOrderBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	if order.Status == target {
		return order, nil
	}
	if !order.Status.CanTransitionTo(target) {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, order.Status, target)
	}
	if err = s.repo.UpdateStatus(ctx, sn, order.Status, target); err != nil {
		return domain.Order{}, err
	}
	order.Status = target
	s.produce(ctx, event.TypeOrderUpdated, order)
	return order, nil
}

func (s *service) CancelOrder(ctx context.Context, sn string) (CancelResult, error) {
	order, err := s.repo.FindOrderBySN(ctx, sn)
	if err != nil {
		return CancelResult{}, err
	}
	if !order.Status.Cancellable() {
		return CancelResult{}, fmt.Errorf("%w: cannot cancel a %s order", ErrInvalidStatusTransition, order.Status)
	}
	if err = s.repo.UpdateStatus(ctx, sn, order.Status, domain.StatusCancelled); err != nil {
		return CancelResult{}, err
	}
	order.Status = domain.StatusCancelled
	result := CancelResult{Order: order}

	if s.hasCapturedPayment(order) {
		result.RefundAttempted = true
		refundID, err := s.paymentSvc.Refund(ctx, payment.Channel(order.PaymentMethod), order.PaymentID, order.TotalAmount)
		if err != nil {
			// Partial success: the order stays cancelled, the refund is
			// retried through the explicit refund operation.
			s.logger.Warn("cancelled but refund failed",
				elog.String("order_sn", sn),
				elog.String("payment_id", order.PaymentID),
				elog.FieldErr(err))
			result.RefundFailure = err.Error()
		} else {
			if err = s.repo.UpdateStatus(ctx, sn, domain.StatusCancelled, domain.StatusCancelledAndRefunded); err != nil {
				return CancelResult{}, err
			}
			order.Status = domain.StatusCancelledAndRefunded
			result.Order = order
			result.RefundSucceeded = true
			result.RefundID = refundID
		}
	}
	s.produce(ctx, event.TypeOrderUpdated, order)
	return result, nil
}

func (s *service) RefundOrder(ctx context.Context, sn string, amount int64, paymentID string) (domain.Order, error) {
	order, err := s.repo.FindOrderBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	if order.Status.Refunded() {
		return domain.Order{}, fmt.Errorf("%w: order %s is already refunded", ErrInvalidStatusTransition, sn)
	}
	target := domain.StatusRefunded
	if order.Status == domain.StatusCancelled {
		target = domain.StatusCancelledAndRefunded
	}
	if !order.Status.CanTransitionTo(target) {
		return domain.Order{}, fmt.Errorf("%w: cannot refund a %s order", ErrInvalidStatusTransition, order.Status)
	}
	if !s.hasCapturedPayment(order) {
		return domain.Order{}, ErrNothingToRefund
	}
	if amount <= 0 || amount > order.TotalAmount {
		return domain.Order{}, fmt.Errorf("%w: amount %d against total %d", ErrRefundMismatch, amount, order.TotalAmount)
	}
	if paymentID != order.PaymentID {
		return domain.Order{}, fmt.Errorf("%w: payment id %q is not the captured one", ErrRefundMismatch, paymentID)
	}

	refundID, err := s.paymentSvc.Refund(ctx, payment.Channel(order.PaymentMethod), order.PaymentID, amount)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to refund order %s: %w", sn, err)
	}
	if err = s.repo.UpdateStatus(ctx, sn, order.Status, target); err != nil {
		return domain.Order{}, err
	}
	s.logger.Info("order refunded",
		elog.String("order_sn", sn),
		elog.String("refund_id", refundID),
		elog.Int64("amount", amount))
	order.Status = target
	s.produce(ctx, event.TypeOrderUpdated, order)
	return order, nil
}

func (s *service) BulkUpdateStatus(ctx context.Context, sns []string, target domain.OrderStatus) (BulkResult, error) {
	updated := make([]domain.Order, len(sns))
	failures := make([]error, len(sns))

	var eg errgroup.Group
	eg.SetLimit(bulkConcurrency)
	for i := range sns {
		i := i
		eg.Go(func() error {
			order, err := s.UpdateStatus(ctx, sns[i], target)
			if err != nil {
				failures[i] = err
				return nil
			}
			updated[i] = order
			return nil
		})
	}
	// Goroutines report through the slices, the group never errors.
	_ = eg.Wait()

	var result BulkResult
	for i, sn := range sns {
		if failures[i] != nil {
			failure := BulkFailure{SN: sn, Reason: failures[i].Error()}
			// Re-read the ground truth for the console: the key may hold any
			// status by now, including the target if a concurrent update won.
			if order, err := s.repo.FindOrderBySN(ctx, sn); err == nil {
				failure.Status = order.Status.String()
			}
			result.Failed = append(result.Failed, failure)
			continue
		}
		result.Updated = append(result.Updated, updated[i])
	}
	return result, nil
}

func (s *service) MarkPaid(ctx context.Context, sn string, paymentID string) error {
	err := s.repo.UpdateStatusAndPaymentID(ctx, sn, domain.StatusPending, domain.StatusProcessing, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return s.ignoreDuplicateOutcome(ctx, sn, err)
		}
		return err
	}
	order, err := s.repo.FindOrderBySN(ctx, sn)
	if err == nil {
		s.produce(ctx, event.TypeOrderUpdated, order)
		if err = s.notificationSvc.SendOrderConfirmation(ctx, s.toSummary(order)); err != nil {
			s.logger.Warn("failed to send payment confirmation",
				elog.String("order_sn", sn),
				elog.FieldErr(err))
		}
	}
	return nil
}

func (s *service) MarkPaymentFailed(ctx context.Context, sn string) error {
	err := s.repo.UpdateStatus(ctx, sn, domain.StatusPending, domain.StatusFailed)
	if err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return s.ignoreDuplicateOutcome(ctx, sn, err)
		}
		return err
	}
	order, err := s.repo.FindOrderBySN(ctx, sn)
	if err == nil {
		s.produce(ctx, event.TypeOrderUpdated, order)
	}
	return nil
}

// ignoreDuplicateOutcome swallows a redelivered gateway outcome: if the order
// already left pending the event was applied before.
func (s *service) ignoreDuplicateOutcome(ctx context.Context, sn string, cause error) error {
	order, err := s.repo.FindOrderBySN(ctx, sn)
	if err != nil {
		return err
	}
	if order.Status != domain.StatusPending {
		s.logger.Info("ignoring duplicate payment outcome",
			elog.String("order_sn", sn),
			elog.String("status", order.Status.String()))
		return nil
	}
	return cause
}

func (s *service) hasCapturedPayment(order domain.Order) bool {
	return order.PaymentID != "" && payment.Channel(order.PaymentMethod).IsOnline()
}

func (s *service) produce(ctx context.Context, typ string, order domain.Order) {
	evt := event.OrderEvent{
		Type:  typ,
		Order: toEventOrder(order),
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Warn("failed to produce order event",
			elog.String("order_sn", order.SN),
			elog.String("type", typ),
			elog.FieldErr(err))
	}
}

func toEventOrder(order domain.Order) event.Order {
	return event.Order{
		SN: order.SN,
		Customer: event.Customer{
			Name:    order.Customer.Name,
			Email:   order.Customer.Email,
			Phone:   order.Customer.Phone,
			Address: order.Customer.Address,
			City:    order.Customer.City,
			State:   order.Customer.State,
			Pincode: order.Customer.Pincode,
		},
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) event.OrderItem {
			return event.OrderItem{
				ProductSN: src.ProductSN,
				Name:      src.Name,
				Weight:    src.Weight,
				UnitPrice: src.UnitPrice,
				Quantity:  src.Quantity,
			}
		}),
		Subtotal:      order.Subtotal,
		Discount:      order.Discount,
		Taxes:         order.Taxes,
		ShippingFee:   order.ShippingFee,
		OtherFees:     order.OtherFees,
		TotalAmount:   order.TotalAmount,
		PaymentMethod: order.PaymentMethod,
		PaymentID:     order.PaymentID,
		CouponCode:    order.Coupon.Code,
		CouponPercent: order.Coupon.Percent,
		Status:        order.Status.String(),
		Ctime:         order.Ctime,
		Utime:         order.Utime,
	}
}

func (s *service) toSummary(order domain.Order) notification.OrderSummary {
	return notification.OrderSummary{
		SN:            order.SN,
		CustomerName:  order.Customer.Name,
		CustomerEmail: order.Customer.Email,
		Address:       order.Customer.Address,
		City:          order.Customer.City,
		State:         order.Customer.State,
		Pincode:       order.Customer.Pincode,
		PaymentMethod: order.PaymentMethod,
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) notification.ItemSummary {
			return notification.ItemSummary{
				Name:      src.Name,
				Weight:    src.Weight,
				Quantity:  src.Quantity,
				UnitPrice: src.UnitPrice,
			}
		}),
		Subtotal:    order.Subtotal,
		Discount:    order.Discount,
		Taxes:       order.Taxes,
		ShippingFee: order.ShippingFee,
		OtherFees:   order.OtherFees,
		TotalAmount: order.TotalAmount,
	}
}
