package banner

// Promo is one slide of the home page promo slider.
type Promo struct {
	ImageURL string `json:"imageUrl"`
	AltText  string `json:"altText"`
}

// Seed returns the built-in promos. They are not user-editable.
func Seed() []Promo {
	return []Promo{
		{ImageURL: "https://picsum.photos/seed/promo1/800/400", AltText: "Promo Spesial Kriuké"},
		{ImageURL: "https://picsum.photos/seed/promo2/800/400", AltText: "Gratis Ongkir"},
		{ImageURL: "https://picsum.photos/seed/promo3/800/400", AltText: "Beli 2 Gratis 1"},
	}
}
