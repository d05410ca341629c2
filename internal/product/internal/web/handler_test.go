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

package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/picklebay/picklebay/internal/product/internal/domain"
	"github.com/picklebay/picklebay/internal/product/internal/service"
	productmocks "github.com/picklebay/picklebay/internal/product/mocks"
)

type result struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func newServer(t *testing.T) (*gin.Engine, *productmocks.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	svc := productmocks.NewMockService(ctrl)
	server := gin.New()
	NewHandler(svc).PublicRoutes(server)
	return server, svc
}

func sampleProduct(sn string) domain.Product {
	return domain.Product{
		SN:       sn,
		Name:     "Cut Mango Pickle",
		Category: "pickles",
		Status:   domain.StatusOnShelf,
		Variants: []domain.Variant{
			{SN: sn + "-250", Name: "Cut Mango Pickle 250g", Weight: "250g", Price: 27400, Stock: 40},
		},
	}
}

func TestHandler_ListProducts(t *testing.T) {
	t.Parallel()

	t.Run("defaults without query params", func(t *testing.T) {
		t.Parallel()
		server, svc := newServer(t)
		svc.EXPECT().ListProducts(gomock.Any(), 0, defaultPageSize).
			Return([]domain.Product{sampleProduct("PKL-MANGO")}, int64(1), nil)

		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/product/list", nil))
		require.Equal(t, http.StatusOK, recorder.Code)

		var res result
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		var resp ListProductsResp
		require.NoError(t, json.Unmarshal(res.Data, &resp))
		assert.Equal(t, int64(1), resp.Total)
		require.Len(t, resp.Products, 1)
		assert.Equal(t, "PKL-MANGO", resp.Products[0].SN)
	})

	t.Run("reads offset and limit from the query string", func(t *testing.T) {
		t.Parallel()
		server, svc := newServer(t)
		svc.EXPECT().ListProducts(gomock.Any(), 40, 10).
			Return(nil, int64(0), nil)

		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/product/list?offset=40&limit=10", nil))
		require.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("caps the page size", func(t *testing.T) {
		t.Parallel()
		server, svc := newServer(t)
		svc.EXPECT().ListProducts(gomock.Any(), 0, maxPageSize).
			Return(nil, int64(0), nil)

		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/product/list?limit=5000", nil))
		require.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestHandler_Detail(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		server, svc := newServer(t)
		svc.EXPECT().FindBySN(gomock.Any(), "PKL-MANGO").
			Return(sampleProduct("PKL-MANGO"), nil)

		data, err := json.Marshal(ProductDetailReq{SN: "PKL-MANGO"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/product/detail", bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)

		var res result
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		var resp ProductDetailResp
		require.NoError(t, json.Unmarshal(res.Data, &resp))
		assert.Equal(t, "Cut Mango Pickle", resp.Product.Name)
		require.Len(t, resp.Product.Variants, 1)
		assert.Equal(t, int64(27400), resp.Product.Variants[0].Price)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		server, svc := newServer(t)
		svc.EXPECT().FindBySN(gomock.Any(), "NOPE").
			Return(domain.Product{}, service.ErrProductNotFound)

		data, err := json.Marshal(ProductDetailReq{SN: "NOPE"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/product/detail", bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusInternalServerError, recorder.Code)

		var res result
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		assert.Equal(t, 403404, res.Code)
	})
}
