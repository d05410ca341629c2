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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"

	"github.com/picklebay/picklebay/internal/product/internal/domain"
	"github.com/picklebay/picklebay/internal/product/internal/repository/dao"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	FindBySN(ctx context.Context, sn string) (domain.Product, error)
	FindVariantBySN(ctx context.Context, sn string) (domain.Variant, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, error)
	Total(ctx context.Context) (int64, error)
	DecrementStock(ctx context.Context, variantSN string, quantity int64) error
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{d: d}
}

type productRepository struct {
	d dao.ProductDAO
}

func (p *productRepository) FindBySN(ctx context.Context, sn string) (domain.Product, error) {
	product, err := p.d.FindBySN(ctx, sn)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return domain.Product{}, ErrProductNotFound
		}
		return domain.Product{}, err
	}
	variants, err := p.d.FindVariantsByProductID(ctx, product.Id)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toProductDomain(product, variants), nil
}

func (p *productRepository) FindVariantBySN(ctx context.Context, sn string) (domain.Variant, error) {
	variant, err := p.d.FindVariantBySN(ctx, sn)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return domain.Variant{}, ErrProductNotFound
		}
		return domain.Variant{}, err
	}
	return p.toVariantDomain(variant), nil
}

func (p *productRepository) List(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	products, err := p.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Product, 0, len(products))
	for _, entity := range products {
		variants, err := p.d.FindVariantsByProductID(ctx, entity.Id)
		if err != nil {
			return nil, err
		}
		result = append(result, p.toProductDomain(entity, variants))
	}
	return result, nil
}

func (p *productRepository) Total(ctx context.Context) (int64, error) {
	return p.d.Count(ctx)
}

func (p *productRepository) DecrementStock(ctx context.Context, variantSN string, quantity int64) error {
	return p.d.DecrementStock(ctx, variantSN, quantity)
}

func (p *productRepository) toProductDomain(product dao.Product, variants []dao.ProductVariant) domain.Product {
	return domain.Product{
		ID:          product.Id,
		SN:          product.SN,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Image:       product.Image,
		Status:      domain.Status(product.Status),
		Variants: slice.Map(variants, func(idx int, src dao.ProductVariant) domain.Variant {
			return p.toVariantDomain(src)
		}),
	}
}

func (p *productRepository) toVariantDomain(variant dao.ProductVariant) domain.Variant {
	return domain.Variant{
		ID:        variant.Id,
		ProductID: variant.ProductId,
		SN:        variant.SN,
		Name:      variant.Name,
		Weight:    variant.Weight,
		Price:     variant.Price,
		Stock:     variant.Stock,
		Status:    domain.Status(variant.Status),
	}
}
