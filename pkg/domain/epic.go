package domain

import "time"

// EpicPromotion describes one promotion window for an Epic offer
type EpicPromotion struct {
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	DiscountPercentage int       `json:"discount_percentage"`
}

// EpicOffer represents one Epic store promotion entry
type EpicOffer struct {
	Title         string         `json:"title"`
	OfferID       string         `json:"offer_id"`
	Namespace     string         `json:"namespace"`
	Description   string         `json:"description"`
	URL           string         `json:"url"`
	ImageURL      string         `json:"image_url"`
	CurrencyCode  string         `json:"currency_code"`
	OriginalPrice int            `json:"original_price"`
	DiscountPrice int            `json:"discount_price"`
	Promotion     *EpicPromotion `json:"promotion,omitempty"`
	IsUpcoming    bool           `json:"is_upcoming"`
}

// IsFree reports whether the offer is fully discounted
func (o *EpicOffer) IsFree() bool {
	if o.Promotion != nil && o.Promotion.DiscountPercentage == 0 {
		return true
	}
	return o.DiscountPrice == 0
}
