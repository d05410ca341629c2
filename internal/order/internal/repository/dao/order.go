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
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicateSN    = errors.New("duplicate order sn")
)

const uniqueIndexErrNo uint16 = 1062

type OrderDAO interface {
	CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error)
	FindOrderBySN(ctx context.Context, sn string) (Order, error)
	FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error)
	// List pages newest-first. status 0 means any status, keyword "" means
	// no search filter.
	List(ctx context.Context, offset, limit int, status uint8, keyword string) ([]Order, error)
	Count(ctx context.Context, status uint8, keyword string) (int64, error)
	// UpdateStatus flips the status only when the row still holds the
	// expected one. The caller inspects the affected-row count to detect a
	// lost race.
	UpdateStatus(ctx context.Context, sn string, from, to uint8) (int64, error)
	// UpdateStatusAndPaymentID additionally records the gateway transaction
	// id. The payment id is set-once.
	UpdateStatusAndPaymentID(ctx context.Context, sn string, from, to uint8, paymentID string) (int64, error)
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &gormOrderDAO{db: db}
}

type gormOrderDAO struct {
	db *egorm.Component
}

func (g *gormOrderDAO) CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		order.Ctime, order.Utime = now, now
		if err := tx.Create(&order).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
				return fmt.Errorf("%w: %s", ErrDuplicateSN, order.SN)
			}
			return err
		}
		for i := range items {
			items[i].OrderId = order.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		return tx.Create(&items).Error
	})
	return order.Id, err
}

func (g *gormOrderDAO) FindOrderBySN(ctx context.Context, sn string) (Order, error) {
	var order Order
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&order).Error
	return order, err
}

func (g *gormOrderDAO) FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error) {
	var items []OrderItem
	err := g.db.WithContext(ctx).Where("order_id = ?", oid).Find(&items).Error
	return items, err
}

func (g *gormOrderDAO) List(ctx context.Context, offset, limit int, status uint8, keyword string) ([]Order, error) {
	var orders []Order
	query := g.listQuery(ctx, status, keyword)
	err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&orders).Error
	return orders, err
}

func (g *gormOrderDAO) Count(ctx context.Context, status uint8, keyword string) (int64, error) {
	var total int64
	err := g.listQuery(ctx, status, keyword).Model(&Order{}).Count(&total).Error
	return total, err
}

func (g *gormOrderDAO) listQuery(ctx context.Context, status uint8, keyword string) *gorm.DB {
	query := g.db.WithContext(ctx)
	if status != 0 {
		query = query.Where("status = ?", status)
	}
	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("sn LIKE ? OR customer_name LIKE ? OR customer_email LIKE ? OR customer_phone LIKE ?",
			pattern, pattern, pattern, pattern)
	}
	return query
}

func (g *gormOrderDAO) UpdateStatus(ctx context.Context, sn string, from, to uint8) (int64, error) {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("sn = ? AND status = ?", sn, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (g *gormOrderDAO) UpdateStatusAndPaymentID(ctx context.Context, sn string, from, to uint8, paymentID string) (int64, error) {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("sn = ? AND status = ? AND payment_id = ''", sn, from).
		Updates(map[string]any{
			"status":     to,
			"payment_id": paymentID,
			"utime":      time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func InitTables(db *egorm.Component) error {
	if err := db.AutoMigrate(&Order{}, &OrderItem{}); err != nil {
		return fmt.Errorf("failed to init order tables: %w", err)
	}
	return nil
}

type Order struct {
	Id            int64  `gorm:"primaryKey;autoIncrement"`
	SN            string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_order_sn"`
	CustomerName  string `gorm:"type:varchar(255);not null"`
	CustomerEmail string `gorm:"type:varchar(255);not null;index:idx_customer_email"`
	CustomerPhone string `gorm:"type:varchar(32);not null;index:idx_customer_phone"`
	Address       string `gorm:"type:varchar(512);not null"`
	City          string `gorm:"type:varchar(128);not null"`
	State         string `gorm:"type:varchar(128);not null"`
	Pincode       string `gorm:"type:varchar(16);not null"`

	// Amounts in paisa, 27400 is Rs 274.00.
	Subtotal    int64 `gorm:"not null"`
	Discount    int64 `gorm:"not null;default:0"`
	Taxes       int64 `gorm:"not null;default:0"`
	ShippingFee int64 `gorm:"not null;default:0"`
	OtherFees   int64 `gorm:"not null;default:0"`
	TotalAmount int64 `gorm:"not null"`

	PaymentMethod string `gorm:"type:varchar(32);not null"`
	PaymentId     string `gorm:"type:varchar(255);not null;default:'';index:idx_payment_id"`
	CouponCode    string `gorm:"type:varchar(64);not null;default:''"`
	CouponPercent int64  `gorm:"not null;default:0"`

	// 1=pending 2=processing 3=shipped 4=delivered 5=cancelled 6=refunded
	// 7=cancelled_and_refunded 8=failed
	Status uint8 `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status"`
	Ctime  int64
	Utime  int64
}

type OrderItem struct {
	Id        int64  `gorm:"primaryKey;autoIncrement"`
	OrderId   int64  `gorm:"not null;index:idx_order_id"`
	ProductId int64  `gorm:"not null"`
	ProductSN string `gorm:"type:varchar(64);not null"`
	Name      string `gorm:"type:varchar(255);not null"`
	Weight    string `gorm:"type:varchar(32);not null;default:''"`
	UnitPrice int64  `gorm:"not null"`
	Quantity  int64  `gorm:"not null"`
	Ctime     int64
	Utime     int64
}
