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

package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/picklebay/picklebay/internal/email"
	emailmocks "github.com/picklebay/picklebay/internal/email/mocks"
)

func testSummary() OrderSummary {
	return OrderSummary{
		SN:            "1712345678901KwSysDpxcBU9FNhGkn2",
		CustomerName:  "Meera Nair",
		CustomerEmail: "meera@example.com",
		Address:       "14 Spice Lane",
		City:          "Kochi",
		State:         "Kerala",
		Pincode:       "682001",
		PaymentMethod: "cod",
		Items: []ItemSummary{
			{Name: "Mango Pickle", Weight: "500g", Quantity: 2, UnitPrice: 27400},
		},
		Subtotal:    54800,
		Discount:    0,
		Taxes:       5480,
		ShippingFee: 10000,
		OtherFees:   0,
		TotalAmount: 70280,
	}
}

func TestService_SendOrderConfirmation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mailer := emailmocks.NewMockService(ctrl)

	var sent []email.Mail
	mailer.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m email.Mail) error {
			sent = append(sent, m)
			return nil
		}).Times(2)

	svc := NewService(mailer, "orders@picklebay.in")
	err := svc.SendOrderConfirmation(context.Background(), testSummary())
	require.NoError(t, err)

	require.Len(t, sent, 2)
	assert.Equal(t, "meera@example.com", sent[0].To)
	assert.Equal(t, "orders@picklebay.in", sent[1].To)
	assert.Contains(t, string(sent[0].Body), "Mango Pickle")
	assert.Contains(t, string(sent[0].Body), "₹702.80")
	assert.Contains(t, sent[0].Subject, "1712345678901KwSysDpxcBU9FNhGkn2")
}

func TestService_SendOrderConfirmation_CustomerFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mailer := emailmocks.NewMockService(ctrl)
	mailer.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	svc := NewService(mailer, "orders@picklebay.in")
	err := svc.SendOrderConfirmation(context.Background(), testSummary())
	assert.Error(t, err)
}

func TestService_SendOrderConfirmation_OperatorFailureSwallowed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mailer := emailmocks.NewMockService(ctrl)
	gomock.InOrder(
		mailer.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil),
		mailer.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("mailbox full")),
	)

	svc := NewService(mailer, "orders@picklebay.in")
	err := svc.SendOrderConfirmation(context.Background(), testSummary())
	assert.NoError(t, err)
}
