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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"

	"github.com/picklebay/picklebay/internal/order/internal/domain"
	"github.com/picklebay/picklebay/internal/order/internal/repository/dao"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrStatusConflict means the guarded status update matched no row: the
	// order moved concurrently, or the payment id was already set.
	ErrStatusConflict = errors.New("order status changed concurrently")
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	ListOrders(ctx context.Context, offset, limit int, status domain.OrderStatus, keyword string) ([]domain.Order, error)
	TotalOrders(ctx context.Context, status domain.OrderStatus, keyword string) (int64, error)
	UpdateStatus(ctx context.Context, sn string, from, to domain.OrderStatus) error
	UpdateStatusAndPaymentID(ctx context.Context, sn string, from, to domain.OrderStatus, paymentID string) error
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	oid, err := o.d.CreateOrder(ctx, o.toOrderEntity(order), o.toOrderItemEntities(order.Items))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	return order, nil
}

func (o *orderRepository) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.d.FindOrderBySN(ctx, sn)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, err
	}
	items, err := o.d.FindOrderItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) ListOrders(ctx context.Context, offset, limit int, status domain.OrderStatus, keyword string) ([]domain.Order, error) {
	orders, err := o.d.List(ctx, offset, limit, status.ToUint8(), keyword)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Order, 0, len(orders))
	for _, entity := range orders {
		items, err := o.d.FindOrderItemsByOrderID(ctx, entity.Id)
		if err != nil {
			return nil, err
		}
		result = append(result, o.toOrderDomain(entity, items))
	}
	return result, nil
}

func (o *orderRepository) TotalOrders(ctx context.Context, status domain.OrderStatus, keyword string) (int64, error) {
	return o.d.Count(ctx, status.ToUint8(), keyword)
}

func (o *orderRepository) UpdateStatus(ctx context.Context, sn string, from, to domain.OrderStatus) error {
	affected, err := o.d.UpdateStatus(ctx, sn, from.ToUint8(), to.ToUint8())
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (o *orderRepository) UpdateStatusAndPaymentID(ctx context.Context, sn string, from, to domain.OrderStatus, paymentID string) error {
	affected, err := o.d.UpdateStatusAndPaymentID(ctx, sn, from.ToUint8(), to.ToUint8(), paymentID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (o *orderRepository) toOrderEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:            order.ID,
		SN:            order.SN,
		CustomerName:  order.Customer.Name,
		CustomerEmail: order.Customer.Email,
		CustomerPhone: order.Customer.Phone,
		Address:       order.Customer.Address,
		City:          order.Customer.City,
		State:         order.Customer.State,
		Pincode:       order.Customer.Pincode,
		Subtotal:      order.Subtotal,
		Discount:      order.Discount,
		Taxes:         order.Taxes,
		ShippingFee:   order.ShippingFee,
		OtherFees:     order.OtherFees,
		TotalAmount:   order.TotalAmount,
		PaymentMethod: order.PaymentMethod,
		PaymentId:     order.PaymentID,
		CouponCode:    order.Coupon.Code,
		CouponPercent: order.Coupon.Percent,
		Status:        order.Status.ToUint8(),
	}
}

func (o *orderRepository) toOrderItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			ProductId: src.ProductID,
			ProductSN: src.ProductSN,
			Name:      src.Name,
			Weight:    src.Weight,
			UnitPrice: src.UnitPrice,
			Quantity:  src.Quantity,
		}
	})
}

func (o *orderRepository) toOrderDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID: order.Id,
		SN: order.SN,
		Customer: domain.Customer{
			Name:    order.CustomerName,
			Email:   order.CustomerEmail,
			Phone:   order.CustomerPhone,
			Address: order.Address,
			City:    order.City,
			State:   order.State,
			Pincode: order.Pincode,
		},
		Subtotal:      order.Subtotal,
		Discount:      order.Discount,
		Taxes:         order.Taxes,
		ShippingFee:   order.ShippingFee,
		OtherFees:     order.OtherFees,
		TotalAmount:   order.TotalAmount,
		PaymentMethod: order.PaymentMethod,
		PaymentID:     order.PaymentId,
		Coupon: domain.Coupon{
			Code:    order.CouponCode,
			Percent: order.CouponPercent,
		},
		Status: domain.OrderStatus(order.Status),
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				OrderID:   src.OrderId,
				ProductID: src.ProductId,
				ProductSN: src.ProductSN,
				Name:      src.Name,
				Weight:    src.Weight,
				UnitPrice: src.UnitPrice,
				Quantity:  src.Quantity,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
