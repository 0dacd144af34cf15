package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceFee(t *testing.T) {
	cases := []struct {
		subtotal int64
		want     int64
	}{
		{0, 0},
		{1, 0},      // 0.05 -> rounds down
		{10, 1},     // 0.5 -> rounds half up
		{100, 5},
		{999, 50},   // 49.95 -> 50
		{1000, 50},
		{1300, 65},
		{2000, 100},
		{12345, 617}, // 617.25 -> 617
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ServiceFee(c.subtotal), "subtotal=%d", c.subtotal)
	}
}

func TestServiceFeeDeterministic(t *testing.T) {
	for i := int64(0); i < 1000; i++ {
		assert.Equal(t, ServiceFee(i), ServiceFee(i))
	}
}

func TestCompute(t *testing.T) {
	b := Compute(1300, 200, 0)
	assert.Equal(t, Breakdown{
		Subtotal:    1300,
		DeliveryFee: 200,
		ServiceFee:  65,
		Discount:    0,
		Total:       1565,
	}, b)
}

func TestComputeWithDiscount(t *testing.T) {
	b := Compute(2000, 0, 200)
	assert.Equal(t, int64(100), b.ServiceFee)
	assert.Equal(t, int64(1900), b.Total)
}

func TestComputeZeroSubtotal(t *testing.T) {
	b := Compute(0, 0, 0)
	assert.Equal(t, int64(0), b.Total)
}
