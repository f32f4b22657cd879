package domain

type PaymentMethod string

const (
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodBankTransfer   PaymentMethod = "bank-transfer"
	PaymentMethodCashOnDelivery PaymentMethod = "cash-on-delivery"
)

type ShippingInfo struct {
	Name      string `json:"name" bson:"name"`
	Surname   string `json:"surname" bson:"surname"`
	Email     string `json:"email" bson:"email"`
	Phone     string `json:"phone" bson:"phone"`
	Address   string `json:"address" bson:"address"`
	Province  string `json:"province" bson:"province"`
	City      string `json:"city" bson:"city"`
	Reference string `json:"reference,omitempty" bson:"reference,omitempty"`
	Postal    string `json:"postal,omitempty" bson:"postal,omitempty"`
	Notes     string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// PaymentInfo carries the selected method plus its opaque method-specific
// fields. Card and bank data is never validated or charged here, only passed
// through to whatever fulfills the order later.
type PaymentInfo struct {
	Method        PaymentMethod `json:"method" bson:"method"`
	CardHolder    string        `json:"card_holder,omitempty" bson:"card_holder,omitempty"`
	CardNumber    string        `json:"card_number,omitempty" bson:"card_number,omitempty"` // masked
	CardExpiry    string        `json:"card_expiry,omitempty" bson:"card_expiry,omitempty"`
	TransferProof string        `json:"transfer_proof,omitempty" bson:"transfer_proof,omitempty"`
}

// OrderRequest is the atomic snapshot submitted for placement. It is captured
// once at submission time; later cart mutations must not affect it.
type OrderRequest struct {
	Cart     CartState    `json:"cart"`
	Shipping ShippingInfo `json:"shipping"`
	Payment  PaymentInfo  `json:"payment"`
	Summary  CartSummary  `json:"summary"`
}
