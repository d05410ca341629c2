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

package phonepe

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gotomicro/ego/core/elog"
	pkgerrors "github.com/pkg/errors"

	"github.com/picklebay/picklebay/internal/payment/internal/domain"
)

const (
	statusPath = "/pg/v1/status"
	refundPath = "/pg/v1/refund"
)

// Client talks to the PhonePe PG REST API. PhonePe ships no Go SDK, so the
// request signing (X-VERIFY checksum) is done by hand.
type Client struct {
	httpClient *http.Client
	baseURL    string
	merchantID string
	saltKey    string
	saltIndex  string
	l          *elog.Component

	codeToTransactionStatus map[string]domain.TransactionStatus
}

func NewClient(httpClient *http.Client, baseURL, merchantID, saltKey, saltIndex string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		merchantID: merchantID,
		saltKey:    saltKey,
		saltIndex:  saltIndex,
		l:          elog.DefaultLogger,
		codeToTransactionStatus: map[string]domain.TransactionStatus{
			"PAYMENT_SUCCESS":  domain.StatusSuccess,
			"PAYMENT_ERROR":    domain.StatusFailed,
			"PAYMENT_DECLINED": domain.StatusFailed,
			"TIMED_OUT":        domain.StatusFailed,
			"PAYMENT_PENDING":  domain.StatusPending,
		},
	}
}

type statusResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Data    struct {
		MerchantTransactionID string `json:"merchantTransactionId"`
		TransactionID         string `json:"transactionId"`
	} `json:"data"`
}

// Verify polls the transaction status for the given merchant transaction id
// (the order SN in our flow) and maps it to the tri-state result.
func (c *Client) Verify(ctx context.Context, merchantTransactionID string) (domain.VerifyResult, error) {
	path := fmt.Sprintf("%s/%s/%s", statusPath, c.merchantID, merchantTransactionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return domain.VerifyResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-MERCHANT-ID", c.merchantID)
	req.Header.Set("X-VERIFY", c.checksum(path))

	var resp statusResponse
	if err = c.do(req, &resp); err != nil {
		return domain.VerifyResult{}, pkgerrors.Wrapf(err, "failed to check phonepe status for %s", merchantTransactionID)
	}

	status, ok := c.codeToTransactionStatus[resp.Code]
	if !ok {
		c.l.Warn("unknown phonepe status code",
			elog.String("merchantTransactionID", merchantTransactionID),
			elog.String("code", resp.Code))
		status = domain.StatusPending
	}
	return domain.VerifyResult{Status: status, TransactionID: resp.Data.TransactionID}, nil
}

type refundRequest struct {
	MerchantID            string `json:"merchantId"`
	OriginalTransactionID string `json:"originalTransactionId"`
	MerchantTransactionID string `json:"merchantTransactionId"`
	Amount                int64  `json:"amount"`
}

type refundResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Data    struct {
		TransactionID string `json:"transactionId"`
	} `json:"data"`
}

// Refund refunds amount paisa against an earlier transaction.
func (c *Client) Refund(ctx context.Context, originalTransactionID string, amount int64) (string, error) {
	payload, err := json.Marshal(refundRequest{
		MerchantID:            c.merchantID,
		OriginalTransactionID: originalTransactionID,
		MerchantTransactionID: fmt.Sprintf("R%d", time.Now().UnixNano()),
		Amount:                amount,
	})
	if err != nil {
		return "", err
	}
	encoded := base64.StdEncoding.EncodeToString(payload)
	body, err := json.Marshal(map[string]string{"request": encoded})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refundPath, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-VERIFY", c.checksum(encoded+refundPath))

	var resp refundResponse
	if err = c.do(req, &resp); err != nil {
		return "", pkgerrors.Wrapf(err, "failed to refund phonepe transaction %s", originalTransactionID)
	}
	if !resp.Success {
		return "", fmt.Errorf("phonepe refused refund for %s: %s", originalTransactionID, resp.Code)
	}
	return resp.Data.TransactionID, nil
}

func (c *Client) do(req *http.Request, out any) error {
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = httpResp.Body.Close() }()
	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("phonepe returned HTTP %d", httpResp.StatusCode)
	}
	return json.NewDecoder(httpResp.Body).Decode(out)
}

// checksum computes X-VERIFY: sha256(payload + saltKey) + "###" + saltIndex.
func (c *Client) checksum(payload string) string {
	sum := sha256.Sum256([]byte(payload + c.saltKey))
	return hex.EncodeToString(sum[:]) + "###" + c.saltIndex
}
