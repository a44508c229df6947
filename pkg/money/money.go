// Package money переводит денежные суммы между float64 и центами.
// Все суммы, которые уходят игроку или в БД, проходят через этот пакет.
package money

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrOverflow сумма не помещается в int64 центов
var ErrOverflow = errors.New("money: amount overflows int64 cents")

var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

// ToCents переводит сумму в целые центы (округление до ближайшего цента)
func ToCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Round(2).Shift(2).IntPart()
}

// FromCents переводит центы обратно в сумму с двумя знаками после запятой
func FromCents(cents int64) float64 {
	f, _ := decimal.New(cents, -2).Float64()
	return f
}

// FloorCents отбрасывает всё, что меньше цента (округление вниз)
func FloorCents(amount float64) float64 {
	f, _ := decimal.NewFromFloat(amount).Shift(2).Floor().Shift(-2).Float64()
	return f
}

// RoundCents округляет сумму до ближайшего цента
func RoundCents(amount float64) float64 {
	f, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return f
}

// Percent возвращает part/total*100 с двумя знаками. Для total = 0 возвращает 0
func Percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	f, _ := decimal.NewFromInt(part).
		Div(decimal.NewFromInt(total)).
		Shift(2).
		Round(2).
		Float64()
	return f
}

// MulCents умножает сумму в центах на множитель, округляя до цента.
// Результат вне int64 даёт ErrOverflow
func MulCents(cents int64, multiplier float64) (int64, error) {
	if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		return 0, ErrOverflow
	}
	d := decimal.NewFromInt(cents).Mul(decimal.NewFromFloat(multiplier)).Round(0)
	if d.GreaterThan(maxCents) || d.LessThan(minCents) {
		return 0, ErrOverflow
	}
	return d.IntPart(), nil
}

// AddCents сумма в центах с проверкой переполнения
func AddCents(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrOverflow
	}
	return sum, nil
}

// IsWholeCents сумма без долей цента: 1.25 да, 1.004 нет
func IsWholeCents(amount float64) bool {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	d := decimal.NewFromFloat(amount).Shift(2)
	return d.Equal(d.Truncate(0))
}
