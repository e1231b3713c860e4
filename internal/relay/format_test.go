package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirko228/couple-shop/internal/domain"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "0 KGS", FormatPrice(0))
	assert.Equal(t, "990 KGS", FormatPrice(990))
	assert.Equal(t, "2 490 KGS", FormatPrice(2490))
	assert.Equal(t, "1 234 567 KGS", FormatPrice(1234567))
	assert.Equal(t, "-4 980 KGS", FormatPrice(-4980))
}

func TestFormatOrderMessage(t *testing.T) {
	msg := FormatOrderMessage(
		[]domain.OrderLine{
			{Name: "Urban Style Tee", Price: 2490, Quantity: 2, Size: "M", Color: "Black"},
			{Name: "Minimal Black Hoodie", Price: 4990, Quantity: 1},
		},
		9970,
		domain.CustomerInfo{Name: "Aiana", Contact: "@aiana", Phone: "+996555112233"},
	)

	assert.Contains(t, msg, "Urban Style Tee (Size: M) (Color: Black) - 2 x 2 490 KGS = 4 980 KGS")
	assert.Contains(t, msg, "Minimal Black Hoodie - 1 x 4 990 KGS = 4 990 KGS")
	assert.Contains(t, msg, "<b>Total:</b> 9 970 KGS")
	assert.Contains(t, msg, "Aiana")
	assert.Contains(t, msg, "+996555112233")
}

func TestFormatCustomPrintMessage(t *testing.T) {
	withImage := FormatCustomPrintMessage("A", "@a", "1", "hello", true)
	assert.Contains(t, withImage, "An image is attached")

	without := FormatCustomPrintMessage("A", "@a", "1", "hello", false)
	assert.NotContains(t, without, "An image is attached")
	assert.Contains(t, without, "hello")
}

func TestFormatStatusUpdate(t *testing.T) {
	o := domain.Order{
		ID:           "abc123",
		Status:       domain.OrderStatusCompleted,
		CustomerInfo: domain.CustomerInfo{Name: "Aiana"},
	}
	msg := FormatStatusUpdate(o, "ready for pickup")
	assert.Contains(t, msg, "#abc123")
	assert.Contains(t, msg, `"completed"`)
	assert.Contains(t, msg, "<b>Comment:</b> ready for pickup")

	plain := FormatStatusUpdate(o, "")
	assert.NotContains(t, plain, "Comment")
}
