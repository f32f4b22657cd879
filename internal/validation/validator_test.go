package validation

import (
	"testing"

	"github.com/Dannyjar1/AgriConnect-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() domain.OrderRequest {
	items := []domain.CartItem{
		{ProductID: "p1", Name: "Manzanas", UnitPrice: 2.50, Quantity: 2},
	}
	return domain.OrderRequest{
		Cart: domain.CartState{Items: items, Total: 5.00, Count: 2},
		Shipping: domain.ShippingInfo{
			Name:     "Ana",
			Surname:  "Paredes",
			Email:    "ana@example.com",
			Phone:    "0991234567",
			Address:  "Av. Amazonas N26-12",
			Province: "Pichincha",
			City:     "Quito",
		},
		Payment: domain.PaymentInfo{Method: domain.PaymentMethodCashOnDelivery},
		Summary: domain.CartSummary{Subtotal: 5.00, Total: 9.10, ItemCount: 2},
	}
}

func TestValidateOrder_ValidRequest(t *testing.T) {
	req := validRequest()
	assert.NoError(t, ValidateOrder(&req))
}

func TestValidateOrder_EmptyCart(t *testing.T) {
	req := validRequest()
	req.Cart = domain.CartState{}

	err := ValidateOrder(&req)

	require.Error(t, err)
	assert.Equal(t, "El carrito está vacío", err.Error())
}

func TestValidateOrder_ZeroTotal(t *testing.T) {
	req := validRequest()
	req.Cart.Total = 0

	err := ValidateOrder(&req)

	require.Error(t, err)
	assert.Equal(t, "El total del carrito debe ser mayor a cero", err.Error())
}

func TestValidateOrder_MissingRequiredField(t *testing.T) {
	req := validRequest()
	req.Shipping.Surname = "   "

	err := ValidateOrder(&req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "apellido")
}

func TestValidateOrder_FailFastReturnsFirstFailure(t *testing.T) {
	// Both name and email are broken; the name check comes first.
	req := validRequest()
	req.Shipping.Name = ""
	req.Shipping.Email = "not-an-email"

	err := ValidateOrder(&req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nombre")
}

func TestValidateOrder_InvalidEmail(t *testing.T) {
	for _, email := range []string{"plain", "a b@c.com", "nodomain@", "@nouser.com"} {
		req := validRequest()
		req.Shipping.Email = email

		err := ValidateOrder(&req)

		require.Error(t, err, "email %q should fail", email)
		assert.Equal(t, "El correo electrónico no es válido", err.Error())
	}
}

func TestValidateOrder_InvalidPhone(t *testing.T) {
	for _, phone := range []string{"12345", "09912345678", "099123456a"} {
		req := validRequest()
		req.Shipping.Phone = phone

		err := ValidateOrder(&req)

		require.Error(t, err, "phone %q should fail", phone)
		assert.Equal(t, "El teléfono debe tener 10 dígitos", err.Error())
	}
}

func TestValidateOrder_NoPaymentMethod(t *testing.T) {
	req := validRequest()
	req.Payment = domain.PaymentInfo{}

	err := ValidateOrder(&req)

	require.Error(t, err)
	assert.Equal(t, "Seleccione un método de pago", err.Error())
}

func TestValidateOrder_CardRequiresCardFields(t *testing.T) {
	req := validRequest()
	req.Payment = domain.PaymentInfo{
		Method:     domain.PaymentMethodCard,
		CardHolder: "Ana Paredes",
	}

	err := ValidateOrder(&req)

	require.Error(t, err)
	assert.Equal(t, "Los datos de la tarjeta están incompletos", err.Error())
}

func TestValidateOrder_CompleteCardPasses(t *testing.T) {
	req := validRequest()
	req.Payment = domain.PaymentInfo{
		Method:     domain.PaymentMethodCard,
		CardHolder: "Ana Paredes",
		CardNumber: "**** **** **** 4242",
		CardExpiry: "12/27",
	}

	assert.NoError(t, ValidateOrder(&req))
}

func TestValidateOrder_ReturnsValidationErrorType(t *testing.T) {
	req := validRequest()
	req.Cart = domain.CartState{}

	err := ValidateOrder(&req)

	var vErr *Error
	assert.ErrorAs(t, err, &vErr)
}
