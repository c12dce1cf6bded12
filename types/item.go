package types

// Item is one purchased line item attached to a payment source. Amounts are
// in the smallest unit of the charge currency.
type Item struct {
	SKU      string  `json:"sku" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"min=0"`
	Amount   int64   `json:"amount" validate:"min=0"`
	Category *string `json:"category,omitempty"`
	Brand    *string `json:"brand,omitempty"`
	ItemURI  *string `json:"item_uri,omitempty"`
	ImageURI *string `json:"image_uri,omitempty"`
}
