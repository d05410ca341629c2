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

//go:build wireinject

package product

import (
	"github.com/ego-component/egorm"
	"github.com/google/wire"

	"github.com/picklebay/picklebay/internal/product/internal/repository"
	"github.com/picklebay/picklebay/internal/product/internal/repository/dao"
	"github.com/picklebay/picklebay/internal/product/internal/service"
	"github.com/picklebay/picklebay/internal/product/internal/web"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		initDAO,
		repository.NewProductRepository,
		service.NewService,
		web.NewHandler,
	)
	return new(Module), nil
}

func initDAO(db *egorm.Component) dao.ProductDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewProductGORMDAO(db)
}
