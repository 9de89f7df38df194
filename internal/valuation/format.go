package valuation

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const rupeeSymbol = "₹"

// FormatRupee renders amount in Indian Rupees with en-IN digit grouping
// (last three digits, then pairs) and no decimals, e.g. "₹1,25,000".
func FormatRupee(amount int64) string {
	if amount < 0 {
		// -MinInt64 overflows; format via the unsigned magnitude.
		return "-" + rupeeSymbol + groupIndian(strconv.FormatUint(uint64(-(amount+1))+1, 10))
	}
	return rupeeSymbol + groupIndian(strconv.FormatInt(amount, 10))
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var b strings.Builder
	lead := len(head) % 2
	if lead > 0 {
		b.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}

// DepreciatedPercent is the whole-percent loss of current against original.
func DepreciatedPercent(current int64, original float64) int {
	if original <= 0 {
		return 0
	}
	return int(math.Round((1 - float64(current)/original) * 100))
}

// AgeLabel renders an age in years, e.g. "1 year" or "3 years".
func AgeLabel(age int) string {
	if age == 1 {
		return "1 year"
	}
	return strconv.Itoa(age) + " years"
}

// RateLabel renders an annual rate, e.g. "25% / year".
func RateLabel(rate float64) string {
	return strconv.Itoa(int(math.Round(rate*100))) + "% / year"
}

// MultiplierLabel renders the condition and brand multipliers, e.g. "0.85x × 1.15x".
func MultiplierLabel(condition, brand float64) string {
	return formatFactor(condition) + "x × " + formatFactor(brand) + "x"
}

func formatFactor(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Label turns an enumeration tag into a display badge, e.g. "mid-range" -> "Mid Range".
func Label(tag string) string {
	// Casers carry state and cannot be shared across goroutines.
	return cases.Title(language.English).String(strings.ReplaceAll(tag, "-", " "))
}
