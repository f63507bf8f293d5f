package product

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah groups digits the Indonesian way: 25000 -> "25.000".
func FormatRupiah(n int) string {
	return idPrinter.Sprintf("%d", n)
}

// PriceLabel prefixes the formatted amount with "Rp".
func PriceLabel(n int) string {
	return "Rp" + FormatRupiah(n)
}

// RatingLabel renders a rating with one decimal, e.g. "4.5".
func RatingLabel(r float64) string {
	return fmt.Sprintf("%.1f", r)
}
