package http

import (
	"time"

	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/pricing"
)

// All monetary values leave the service as strings rounded to exactly
// two decimal places; this is the presentation boundary.

type LineItemDTO struct {
	ProductID   int64  `json:"product_id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	LineTotal   string `json:"line_total"`
}

type BreakdownDTO struct {
	Subtotal     string `json:"subtotal"`
	Tax          string `json:"tax"`
	Shipping     string `json:"shipping"`
	Total        string `json:"total"`
	FreeShipping bool   `json:"free_shipping"`
}

type CartViewDTO struct {
	Items     []LineItemDTO `json:"items"`
	Breakdown BreakdownDTO  `json:"breakdown"`
	IsEmpty   bool          `json:"is_empty"`
}

type OrderDTO struct {
	ID            string              `json:"id"`
	CreatedAt     time.Time           `json:"created_at"`
	Items         []LineItemDTO       `json:"items"`
	ItemCount     int                 `json:"item_count"`
	Subtotal      string              `json:"subtotal"`
	Tax           string              `json:"tax"`
	Shipping      string              `json:"shipping"`
	Total         string              `json:"total"`
	ShippingInfo  domain.ShippingInfo `json:"shipping_info"`
	PaymentMethod string              `json:"payment_method"`
}

type NoticeDTO struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func toLineItemDTO(it domain.LineItem) LineItemDTO {
	return LineItemDTO{
		ProductID:   it.ProductID,
		Title:       it.Title,
		Category:    it.Category,
		Description: it.Description,
		Thumbnail:   it.Thumbnail,
		UnitPrice:   it.UnitPrice.StringFixed(2),
		Quantity:    it.Quantity,
		LineTotal:   it.LineTotal().StringFixed(2),
	}
}

func toLineItemDTOs(items []domain.LineItem) []LineItemDTO {
	out := make([]LineItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toLineItemDTO(it))
	}
	return out
}

func toBreakdownDTO(b pricing.Breakdown) BreakdownDTO {
	return BreakdownDTO{
		Subtotal:     b.Subtotal.StringFixed(2),
		Tax:          b.Tax.StringFixed(2),
		Shipping:     b.Shipping.StringFixed(2),
		Total:        b.Total.StringFixed(2),
		FreeShipping: b.Shipping.IsZero(),
	}
}

// cartView derives the full cart DTO, recomputing the breakdown from
// the given items.
func cartView(items []domain.LineItem) CartViewDTO {
	return CartViewDTO{
		Items:     toLineItemDTOs(items),
		Breakdown: toBreakdownDTO(pricing.Compute(items)),
		IsEmpty:   len(items) == 0,
	}
}

func toOrderDTO(o domain.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID,
		CreatedAt:     o.CreatedAt,
		Items:         toLineItemDTOs(o.Items),
		ItemCount:     len(o.Items),
		Subtotal:      o.Subtotal.StringFixed(2),
		Tax:           o.Tax.StringFixed(2),
		Shipping:      o.Shipping.StringFixed(2),
		Total:         o.Total.StringFixed(2),
		ShippingInfo:  o.ShippingInfo,
		PaymentMethod: o.PaymentMethod.String(),
	}
}

func toOrderDTOs(orders []domain.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderDTO(o))
	}
	return out
}
