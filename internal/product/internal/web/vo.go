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
	"github.com/ecodeclub/ekit/slice"

	"github.com/picklebay/picklebay/internal/product/internal/domain"
)

type ListProductsReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListProductsResp struct {
	Total    int64     `json:"total"`
	Products []Product `json:"products"`
}

type ProductDetailReq struct {
	SN string `json:"sn"`
}

type ProductDetailResp struct {
	Product Product `json:"product"`
}

type Product struct {
	SN          string    `json:"sn"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Variants    []Variant `json:"variants"`
}

type Variant struct {
	SN     string `json:"sn"`
	Name   string `json:"name"`
	Weight string `json:"weight"`
	Price  int64  `json:"price"`
	Stock  int64  `json:"stock"`
}

func toProductVO(product domain.Product) Product {
	return Product{
		SN:          product.SN,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Image:       product.Image,
		Variants: slice.Map(product.Variants, func(idx int, src domain.Variant) Variant {
			return Variant{
				SN:     src.SN,
				Name:   src.Name,
				Weight: src.Weight,
				Price:  src.Price,
				Stock:  src.Stock,
			}
		}),
	}
}
