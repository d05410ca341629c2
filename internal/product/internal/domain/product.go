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

package domain

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusOffShelf Status = 1
	StatusOnShelf  Status = 2
)

// Product is a pickle recipe. The sellable units are its variants, one per
// jar size.
type Product struct {
	ID          int64
	SN          string
	Name        string
	Description string
	Category    string
	Image       string
	Status      Status
	Variants    []Variant
}

// Variant is one jar size of a product, the unit orders reference.
type Variant struct {
	ID        int64
	ProductID int64
	SN        string
	// Name is the display name, product plus jar size.
	Name   string
	Weight string
	// Price is in paisa, 27400 is Rs 274.00.
	Price  int64
	Stock  int64
	Status Status
}
