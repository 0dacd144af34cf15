package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateDiscountPercent(t *testing.T) {
	terms := &DiscountTerms{Percent: true, Value: 10, Active: true}
	assert.Equal(t, int64(200), EvaluateDiscount(terms, 2000))
	assert.Equal(t, int64(100), EvaluateDiscount(terms, 999)) // 99.9 -> 100 half up
}

func TestEvaluateDiscountFixed(t *testing.T) {
	terms := &DiscountTerms{Value: 300, Active: true}
	assert.Equal(t, int64(300), EvaluateDiscount(terms, 1000))
}

func TestEvaluateDiscountFailsClosed(t *testing.T) {
	assert.Equal(t, int64(0), EvaluateDiscount(nil, 5000), "missing rule")

	inactive := &DiscountTerms{Percent: true, Value: 10, Active: false}
	assert.Equal(t, int64(0), EvaluateDiscount(inactive, 5000), "inactive rule")

	belowMin := &DiscountTerms{Percent: true, Value: 10, MinSubtotal: 2000, Active: true}
	assert.Equal(t, int64(0), EvaluateDiscount(belowMin, 1999), "below minimum")
	assert.Equal(t, int64(200), EvaluateDiscount(belowMin, 2000), "at minimum")
}

func TestEvaluateDiscountCaps(t *testing.T) {
	capped := &DiscountTerms{Percent: true, Value: 50, MaxDiscount: 500, Active: true}
	assert.Equal(t, int64(500), EvaluateDiscount(capped, 10000))

	// ส่วนลดคงที่เกินยอด -> ตัดที่ยอด ไม่มีออเดอร์ติดลบ
	overshoot := &DiscountTerms{Value: 9999, Active: true}
	assert.Equal(t, int64(700), EvaluateDiscount(overshoot, 700))
}
