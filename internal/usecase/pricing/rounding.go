package pricing

import (
	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/shopspring/decimal"
)

// RoundPrice rounds a minor-unit price to the given multiple. The multiple
// set {1,10,100,500,1000} is enforced at the configuration boundary, not
// here.
func RoundPrice(price int64, multiple int64, mode domain.RoundingMode) int64 {
	if multiple <= 1 {
		return price
	}
	quotient := decimal.NewFromInt(price).Div(decimal.NewFromInt(multiple))

	switch mode {
	case domain.RoundCeil:
		quotient = quotient.Ceil()
	case domain.RoundFloor:
		quotient = quotient.Floor()
	default:
		quotient = quotient.Round(0)
	}

	return quotient.Mul(decimal.NewFromInt(multiple)).IntPart()
}
