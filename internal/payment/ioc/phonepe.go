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
	"net/http"
	"time"

	"github.com/gotomicro/ego/core/econf"

	"github.com/picklebay/picklebay/internal/payment/internal/service/phonepe"
	"github.com/picklebay/picklebay/internal/payment/internal/web"
)

type PhonePeConfig struct {
	BaseURL    string
	MerchantID string
	SaltKey    string
	SaltIndex  string

	SuccessURL string
	FailureURL string
	PendingURL string
}

func InitPhonePeConfig() PhonePeConfig {
	var cfg PhonePeConfig
	err := econf.UnmarshalKey("phonepe", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitPhonePeClient(cfg PhonePeConfig) *phonepe.Client {
	httpClient := &http.Client{Timeout: 10 * time.Second}
	return phonepe.NewClient(httpClient, cfg.BaseURL, cfg.MerchantID, cfg.SaltKey, cfg.SaltIndex)
}

func InitRedirectConfig(cfg PhonePeConfig) web.RedirectConfig {
	return web.RedirectConfig{
		SuccessURL: cfg.SuccessURL,
		FailureURL: cfg.FailureURL,
		PendingURL: cfg.PendingURL,
	}
}
