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

package domain

import "fmt"

type OrderStatus uint8

const (
	StatusPending OrderStatus = iota + 1
	StatusProcessing
	StatusShipped
	StatusDelivered
	StatusCancelled
	StatusRefunded
	StatusCancelledAndRefunded
	StatusFailed
)

var statusNames = map[OrderStatus]string{
	StatusPending:              "pending",
	StatusProcessing:           "processing",
	StatusShipped:              "shipped",
	StatusDelivered:            "delivered",
	StatusCancelled:            "cancelled",
	StatusRefunded:             "refunded",
	StatusCancelledAndRefunded: "cancelled_and_refunded",
	StatusFailed:               "failed",
}

// transitions is the full lifecycle graph. A transition absent from here is
// rejected no matter who asks for it, admin console included.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCancelled, StatusFailed, StatusRefunded, StatusCancelledAndRefunded},
	StatusProcessing: {StatusShipped, StatusCancelled, StatusRefunded, StatusCancelledAndRefunded},
	StatusShipped:    {StatusDelivered, StatusRefunded, StatusCancelledAndRefunded},
	StatusCancelled:  {StatusCancelledAndRefunded},
	// delivered, refunded, cancelled_and_refunded and failed are terminal.
}

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s OrderStatus) String() string {
	name, ok := statusNames[s]
	if !ok {
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
	return name
}

func (s OrderStatus) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// CanTransitionTo reports whether the lifecycle graph permits moving from s
// to target. A same-status "transition" is not in the graph; callers treat it
// as a no-op before consulting this.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return len(transitions[s]) == 0 && s.Valid()
}

// Cancellable reports whether a customer-or-admin cancellation may start from
// this status. Shipped orders can still be cancelled (courier return flow).
func (s OrderStatus) Cancellable() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped:
		return true
	default:
		return false
	}
}

// Refunded reports whether money has already gone back to the customer.
func (s OrderStatus) Refunded() bool {
	return s == StatusRefunded || s == StatusCancelledAndRefunded
}

func ParseOrderStatus(name string) (OrderStatus, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown order status %q", name)
}

// Customer is the shipping contact captured at checkout. Guest checkout only,
// so there is no account id to hang the order on.
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	State   string
	Pincode string
}

type Coupon struct {
	Code    string
	Percent int64
}

type OrderItem struct {
	OrderID   int64
	ProductID int64
	ProductSN string
	Name      string
	Weight    string
	// UnitPrice is in paisa, 27400 is Rs 274.00.
	UnitPrice int64
	Quantity  int64
}

type Order struct {
	ID       int64
	SN       string
	Customer Customer
	Items    []OrderItem

	// All amounts are in paisa.
	Subtotal    int64
	Discount    int64
	Taxes       int64
	ShippingFee int64
	OtherFees   int64
	TotalAmount int64

	// PaymentMethod is a payment channel name: cod, razorpay or phonepe.
	PaymentMethod string
	// PaymentID is the gateway transaction id. Empty until the gateway
	// confirms, always empty for cod.
	PaymentID string

	Coupon Coupon
	Status OrderStatus
	Ctime  int64
	Utime  int64
}
