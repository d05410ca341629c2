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
	"errors"
	"fmt"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"

	"github.com/picklebay/picklebay/internal/product/internal/domain"
	"github.com/picklebay/picklebay/internal/product/internal/errs"
	"github.com/picklebay/picklebay/internal/product/internal/service"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	productNotFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
)

var _ ginx.Handler = &Handler{}

// Handler serves the public catalog.
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.GET("/list", ginx.W(h.ListProducts))
	g.POST("/detail", ginx.B[ProductDetailReq](h.Detail))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) ListProducts(ctx *ginx.Context) (ginx.Result, error) {
	offset, limit := pagination(ctx)
	products, total, err := h.svc.ListProducts(ctx.Request.Context(), offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListProductsResp{
			Total: total,
			Products: slice.Map(products, func(idx int, src domain.Product) Product {
				return toProductVO(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req ProductDetailReq) (ginx.Result, error) {
	product, err := h.svc.FindBySN(ctx.Request.Context(), req.SN)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return productNotFoundResult, fmt.Errorf("product %s not found: %w", req.SN, err)
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProductDetailResp{Product: toProductVO(product)},
	}, nil
}

func pagination(ctx *ginx.Context) (offset, limit int) {
	offset, limit = 0, defaultPageSize
	query := ctx.Request.URL.Query()
	if v, err := strconv.Atoi(query.Get("offset")); err == nil && v > 0 {
		offset = v
	}
	if v, err := strconv.Atoi(query.Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return offset, limit
}
