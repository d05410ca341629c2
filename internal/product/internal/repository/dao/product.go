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

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrStockConflict means the variant row was missing or held less stock
	// than the requested decrement.
	ErrStockConflict = errors.New("stock decrement lost")
)

type ProductDAO interface {
	FindBySN(ctx context.Context, sn string) (Product, error)
	FindVariantBySN(ctx context.Context, sn string) (ProductVariant, error)
	FindVariantsByProductID(ctx context.Context, pid int64) ([]ProductVariant, error)
	FindProductByID(ctx context.Context, id int64) (Product, error)
	// List pages on-shelf products.
	List(ctx context.Context, offset, limit int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	// DecrementStock takes quantity off the variant, guarded so stock never
	// goes negative.
	DecrementStock(ctx context.Context, sn string, quantity int64) error
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &gormProductDAO{db: db}
}

type gormProductDAO struct {
	db *egorm.Component
}

func (g *gormProductDAO) FindBySN(ctx context.Context, sn string) (Product, error) {
	var product Product
	err := g.db.WithContext(ctx).
		Where("sn = ? AND status = ?", sn, statusOnShelf).
		First(&product).Error
	return product, err
}

func (g *gormProductDAO) FindVariantBySN(ctx context.Context, sn string) (ProductVariant, error) {
	var variant ProductVariant
	err := g.db.WithContext(ctx).
		Where("sn = ? AND status = ?", sn, statusOnShelf).
		First(&variant).Error
	return variant, err
}

func (g *gormProductDAO) FindVariantsByProductID(ctx context.Context, pid int64) ([]ProductVariant, error) {
	var variants []ProductVariant
	err := g.db.WithContext(ctx).
		Where("product_id = ? AND status = ?", pid, statusOnShelf).
		Find(&variants).Error
	return variants, err
}

func (g *gormProductDAO) FindProductByID(ctx context.Context, id int64) (Product, error) {
	var product Product
	err := g.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, statusOnShelf).
		First(&product).Error
	return product, err
}

func (g *gormProductDAO) List(ctx context.Context, offset, limit int) ([]Product, error) {
	var products []Product
	err := g.db.WithContext(ctx).
		Where("status = ?", statusOnShelf).
		Order("id DESC").Offset(offset).Limit(limit).
		Find(&products).Error
	return products, err
}

func (g *gormProductDAO) Count(ctx context.Context) (int64, error) {
	var total int64
	err := g.db.WithContext(ctx).Model(&Product{}).
		Where("status = ?", statusOnShelf).
		Count(&total).Error
	return total, err
}

func (g *gormProductDAO) DecrementStock(ctx context.Context, sn string, quantity int64) error {
	res := g.db.WithContext(ctx).Model(&ProductVariant{}).
		Where("sn = ? AND stock >= ?", sn, quantity).
		Updates(map[string]any{
			"stock": gorm.Expr("stock - ?", quantity),
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: variant %s, quantity %d", ErrStockConflict, sn, quantity)
	}
	return nil
}

func InitTables(db *egorm.Component) error {
	if err := db.AutoMigrate(&Product{}, &ProductVariant{}); err != nil {
		return fmt.Errorf("failed to init product tables: %w", err)
	}
	return nil
}

const statusOnShelf = 2

type Product struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	SN          string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_product_sn"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"not null"`
	Category    string `gorm:"type:varchar(128);not null;default:'';index:idx_category"`
	Image       string `gorm:"type:varchar(512);not null;default:''"`
	// 1=off shelf 2=on shelf
	Status uint8 `gorm:"type:tinyint unsigned;not null;default:1"`
	Ctime  int64
	Utime  int64
}

type ProductVariant struct {
	Id        int64  `gorm:"primaryKey;autoIncrement"`
	ProductId int64  `gorm:"not null;index:idx_product_id"`
	SN        string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_variant_sn"`
	Name      string `gorm:"type:varchar(255);not null"`
	Weight    string `gorm:"type:varchar(32);not null"`
	// Price in paisa.
	Price  int64 `gorm:"not null"`
	Stock  int64 `gorm:"not null;default:0"`
	Status uint8 `gorm:"type:tinyint unsigned;not null;default:1"`
	Ctime  int64
	Utime  int64
}
