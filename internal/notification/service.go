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
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/gotomicro/ego/core/elog"

	"github.com/picklebay/picklebay/internal/email"
)

// OrderSummary is the rendered-mail input. It is a snapshot handed over by
// the order module so this package does not depend on order internals.
type OrderSummary struct {
	SN            string
	CustomerName  string
	CustomerEmail string
	Address       string
	City          string
	State         string
	Pincode       string
	PaymentMethod string
	Items         []ItemSummary
	Subtotal      int64
	Discount      int64
	Taxes         int64
	ShippingFee   int64
	OtherFees     int64
	TotalAmount   int64
}

type ItemSummary struct {
	Name      string
	Weight    string
	Quantity  int64
	UnitPrice int64
}

//go:generate mockgen -source=./service.go -package=notificationmocks -destination=./mocks/notification.mock.go -typed Service
type Service interface {
	// SendOrderConfirmation mails the summary to the customer and the store
	// operator. Callers treat a failure as non-fatal.
	SendOrderConfirmation(ctx context.Context, summary OrderSummary) error
}

func NewService(mailer email.Service, operatorEmail string) Service {
	return &service{
		mailer:        mailer,
		operatorEmail: operatorEmail,
		tmpl:          template.Must(template.New("order-confirmation").Funcs(template.FuncMap{"rupees": rupees}).Parse(confirmationTemplate)),
		logger:        elog.DefaultLogger,
	}
}

type service struct {
	mailer        email.Service
	operatorEmail string
	tmpl          *template.Template
	logger        *elog.Component
}

func (s *service) SendOrderConfirmation(ctx context.Context, summary OrderSummary) error {
	body, err := s.render(summary)
	if err != nil {
		return fmt.Errorf("failed to render confirmation for order %s: %w", summary.SN, err)
	}
	mail := email.Mail{
		From:    "Picklebay Orders",
		To:      summary.CustomerEmail,
		Subject: fmt.Sprintf("Order %s confirmed", summary.SN),
		Body:    body,
	}
	if err = s.mailer.SendMail(ctx, mail); err != nil {
		return fmt.Errorf("failed to mail customer %s: %w", summary.CustomerEmail, err)
	}

	// The operator copy is secondary, log and move on if it bounces.
	mail.To = s.operatorEmail
	mail.Subject = fmt.Sprintf("New order %s (%s)", summary.SN, summary.CustomerName)
	if err = s.mailer.SendMail(ctx, mail); err != nil {
		s.logger.Warn("failed to mail operator copy",
			elog.String("orderSN", summary.SN),
			elog.FieldErr(err))
	}
	return nil
}

func (s *service) render(summary OrderSummary) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, summary); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rupees formats a paisa amount for display.
func rupees(paisa int64) string {
	return fmt.Sprintf("₹%d.%02d", paisa/100, paisa%100)
}

const confirmationTemplate = `<html>
<body>
<p>Hi {{.CustomerName}},</p>
<p>Thanks for your order <strong>{{.SN}}</strong>. Here is what we are packing for you:</p>
<table border="1" cellpadding="4" cellspacing="0">
  <tr><th>Item</th><th>Weight</th><th>Qty</th><th>Unit price</th></tr>
  {{range .Items}}<tr><td>{{.Name}}</td><td>{{.Weight}}</td><td>{{.Quantity}}</td><td>{{rupees .UnitPrice}}</td></tr>
  {{end}}
</table>
<p>
Subtotal: {{rupees .Subtotal}}<br/>
Discount: -{{rupees .Discount}}<br/>
Taxes: {{rupees .Taxes}}<br/>
Shipping: {{rupees .ShippingFee}}<br/>
Other fees: {{rupees .OtherFees}}<br/>
<strong>Total: {{rupees .TotalAmount}}</strong>
</p>
<p>Payment method: {{.PaymentMethod}}</p>
<p>Shipping to: {{.Address}}, {{.City}}, {{.State}} {{.Pincode}}</p>
<p>— The Picklebay crew</p>
</body>
</html>`
