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

package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/picklebay/picklebay/internal/product/internal/domain"
	"github.com/picklebay/picklebay/internal/product/internal/repository"
)

var ErrProductNotFound = repository.ErrProductNotFound

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go -typed Service
type Service interface {
	// FindBySN returns an on-shelf product with its variants.
	FindBySN(ctx context.Context, sn string) (domain.Product, error)
	// FindVariantBySN resolves the sellable unit the storefront cart holds.
	FindVariantBySN(ctx context.Context, sn string) (domain.Variant, error)
	ListProducts(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	// DecrementStock takes quantity off a variant after an order commits.
	// Guarded against going negative; a conflict surfaces as an error for
	// the caller to log.
	DecrementStock(ctx context.Context, variantSN string, quantity int64) error
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Product, error) {
	return s.repo.FindBySN(ctx, sn)
}

func (s *service) FindVariantBySN(ctx context.Context, sn string) (domain.Variant, error) {
	return s.repo.FindVariantBySN(ctx, sn)
}

func (s *service) DecrementStock(ctx context.Context, variantSN string, quantity int64) error {
	return s.repo.DecrementStock(ctx, variantSN, quantity)
}

func (s *service) ListProducts(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg       errgroup.Group
		products []domain.Product
		total    int64
	)
	eg.Go(func() error {
		var err error
		products, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return products, total, eg.Wait()
}
