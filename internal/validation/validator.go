package validation

import (
	"regexp"
	"strings"

	"github.com/Dannyjar1/AgriConnect-sub000/internal/domain"
)

// Error is a user-correctable checkout problem. Its message is shown to the
// user verbatim, so it must name the field in their terms.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(msg string) *Error {
	return &Error{Message: msg}
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// requiredShippingFields pairs each mandatory field with its user-facing name,
// checked in display order.
var requiredShippingFields = []struct {
	name  string
	value func(*domain.ShippingInfo) string
}{
	{"nombre", func(s *domain.ShippingInfo) string { return s.Name }},
	{"apellido", func(s *domain.ShippingInfo) string { return s.Surname }},
	{"correo electrónico", func(s *domain.ShippingInfo) string { return s.Email }},
	{"teléfono", func(s *domain.ShippingInfo) string { return s.Phone }},
	{"dirección", func(s *domain.ShippingInfo) string { return s.Address }},
	{"provincia", func(s *domain.ShippingInfo) string { return s.Province }},
	{"ciudad", func(s *domain.ShippingInfo) string { return s.City }},
}

// ValidateOrder gates order placement. Rules run in a fixed order and the
// first failure is returned immediately; no side effect may occur before this
// passes.
func ValidateOrder(req *domain.OrderRequest) error {
	if len(req.Cart.Items) == 0 {
		return newError("El carrito está vacío")
	}
	if req.Cart.Total <= 0 {
		return newError("El total del carrito debe ser mayor a cero")
	}

	for _, field := range requiredShippingFields {
		if strings.TrimSpace(field.value(&req.Shipping)) == "" {
			return newError("El campo " + field.name + " es obligatorio")
		}
	}

	if !emailPattern.MatchString(strings.TrimSpace(req.Shipping.Email)) {
		return newError("El correo electrónico no es válido")
	}
	if !phonePattern.MatchString(strings.TrimSpace(req.Shipping.Phone)) {
		return newError("El teléfono debe tener 10 dígitos")
	}

	switch req.Payment.Method {
	case domain.PaymentMethodCard:
		if strings.TrimSpace(req.Payment.CardHolder) == "" ||
			strings.TrimSpace(req.Payment.CardNumber) == "" ||
			strings.TrimSpace(req.Payment.CardExpiry) == "" {
			return newError("Los datos de la tarjeta están incompletos")
		}
	case domain.PaymentMethodBankTransfer, domain.PaymentMethodCashOnDelivery:
		// No extra fields required.
	default:
		return newError("Seleccione un método de pago")
	}

	return nil
}
