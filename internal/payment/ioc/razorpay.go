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

package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	razorpaygo "github.com/razorpay/razorpay-go"

	"github.com/picklebay/picklebay/internal/payment/internal/service/razorpay"
)

type RazorpayConfig struct {
	KeyID         string
	KeySecret     string
	WebhookSecret string
}

func InitRazorpayConfig() RazorpayConfig {
	var cfg RazorpayConfig
	err := econf.UnmarshalKey("razorpay", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitRazorpayAPI(cfg RazorpayConfig) razorpay.PaymentAPI {
	client := razorpaygo.NewClient(cfg.KeyID, cfg.KeySecret)
	return client.Payment
}

func InitRazorpayService(api razorpay.PaymentAPI, cfg RazorpayConfig) *razorpay.Service {
	return razorpay.NewService(api, cfg.KeySecret, cfg.WebhookSecret)
}
