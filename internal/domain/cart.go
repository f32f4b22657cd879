package domain

// DefaultImageURL is used whenever a product carries no usable image.
const DefaultImageURL = "/assets/images/product-placeholder.png"

// Product is the catalog record a cart item is built from. Fields may arrive
// partially filled from the catalog service, so consumers normalize before use.
type Product struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Price       float64  `json:"price" bson:"price"`
	Stock       int      `json:"stock" bson:"stock"`
	Images      []string `json:"images,omitempty" bson:"images,omitempty"`
}

type CartItem struct {
	ProductID string   `json:"product_id" bson:"product_id"`
	Name      string   `json:"name" bson:"name"`
	UnitPrice float64  `json:"unit_price" bson:"unit_price"`
	Quantity  int      `json:"quantity" bson:"quantity"`
	ImageURL  string   `json:"image_url" bson:"image_url"`
	Product   *Product `json:"product,omitempty" bson:"product,omitempty"`
}

// CartState is a consistent snapshot of the cart: the ordered item list plus
// totals derived from it. Total and Count are recomputed on every mutation,
// never cached separately, so a snapshot can never carry stale aggregates.
type CartState struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}

// CartSummary is the read-only pricing breakdown derived from a CartState.
type CartSummary struct {
	Subtotal  float64 `json:"subtotal" bson:"subtotal"`
	TaxRate   float64 `json:"tax_rate" bson:"tax_rate"`
	Tax       float64 `json:"tax" bson:"tax"`
	Shipping  float64 `json:"shipping" bson:"shipping"`
	Total     float64 `json:"total" bson:"total"`
	ItemCount int     `json:"item_count" bson:"item_count"`
}
