package entity

import "time"

// Sizes holds per-size stock counts.
type Sizes struct {
	M   int `json:"M"`
	L   int `json:"L"`
	XL  int `json:"XL"`
	XXL int `json:"XXL"`
}

// Total returns the stock summed across sizes.
func (s Sizes) Total() int {
	return s.M + s.L + s.XL + s.XXL
}

// ProductVariation is one colour of a product.
type ProductVariation struct {
	ID        string `json:"id"`
	ColorName string `json:"colorName"`
	Image     string `json:"image,omitempty"`
	Stock     Sizes  `json:"stock"`
}

// Product is an item in the inventory.
type Product struct {
	ID           string             `json:"id"`
	Code         string             `json:"code"`
	Name         string             `json:"name"`
	Price        float64            `json:"price"`
	Cost         float64            `json:"cost"`
	Points       int                `json:"points"`
	AlertLimit   int                `json:"alertLimit"`
	Variations   []ProductVariation `json:"variations"`
	LastModified time.Time          `json:"lastModified"`
}

// TotalStock sums stock across every variation.
func (p Product) TotalStock() int {
	total := 0
	for _, v := range p.Variations {
		total += v.Stock.Total()
	}

	return total
}

// LowStock reports whether stock has reached the alert limit.
func (p Product) LowStock() bool {
	return p.TotalStock() <= p.AlertLimit
}

// Branch is a physical store.
type Branch struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location,omitempty"`
	LastModified time.Time `json:"lastModified"`
}

// DailyInquiry records a product question received by staff.
type DailyInquiry struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"userId"`
	UserName            string    `json:"userName"`
	Date                time.Time `json:"date"`
	ProductInquiry      string    `json:"productInquiry"`
	CustomerGovernorate string    `json:"customerGovernorate"`
	LastModified        time.Time `json:"lastModified"`
}
