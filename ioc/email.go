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
	"fmt"

	"github.com/gotomicro/ego/core/econf"

	"github.com/picklebay/picklebay/internal/email"
	"github.com/picklebay/picklebay/internal/email/aliyun"
	"github.com/picklebay/picklebay/internal/email/gomail"
	"github.com/picklebay/picklebay/internal/notification"
)

// InitEmailService picks the mail transport from config. SMTP is the default
// and what local compose setups use; DirectMail is for deployments without a
// reachable SMTP relay.
func InitEmailService() email.Service {
	type Config struct {
		Provider string `yaml:"provider"`
		From     string `yaml:"from"`
		SMTP     struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Username string `yaml:"username"`
			Password string `yaml:"password"`
		} `yaml:"smtp"`
		DirectMail struct {
			AccessKeyID     string `yaml:"accessKeyID"`
			AccessKeySecret string `yaml:"accessKeySecret"`
		} `yaml:"directMail"`
	}

	var cfg Config
	err := econf.UnmarshalKey("email", &cfg)
	if err != nil {
		panic(err)
	}

	switch cfg.Provider {
	case "", "smtp":
		return gomail.NewSMTPService(cfg.SMTP.Host, cfg.SMTP.Port,
			cfg.SMTP.Username, cfg.SMTP.Password, cfg.From)
	case "directmail":
		svc, err := aliyun.NewDirectMailAPI(cfg.DirectMail.AccessKeyID,
			cfg.DirectMail.AccessKeySecret, cfg.From)
		if err != nil {
			panic(err)
		}
		return svc
	default:
		panic(fmt.Sprintf("unknown email provider %q", cfg.Provider))
	}
}

func InitNotificationService(mailer email.Service) notification.Service {
	return notification.NewService(mailer, econf.GetString("email.operator"))
}
