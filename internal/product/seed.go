package product

import "time"

func ptrInt(n int) *int { return &n }

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed returns a fresh copy of the first-run catalog.
func Seed() []Product {
	return []Product{
		{
			ID:            "p1",
			Name:          "kripik pisang rasa original",
			Subtitle:      "Kripik Pisang Rasa Original Kripik pisang...",
			OriginalPrice: 25000,
			Rating:        4.8,
			Sold:          178,
			Category:      "Keripik Pisang",
			Images: []string{
				"https://picsum.photos/seed/p1-1/400/400",
				"https://picsum.photos/seed/p1-2/400/400",
			},
			Description: "Kripik pisang renyah dengan rasa asli pisang yang gurih alami. Cocok untuk semua kalangan dan camilan harian Anda. Kriuknya beda, rasanya istimewa!",
			EcommerceLinks: &EcommerceLinks{
				Shopee:    "https://shopee.co.id",
				Tokopedia: "https://www.tokopedia.com",
			},
			Reviews: []Review{
				{ID: "r1", Author: "Siti", Rating: 5, Comment: "Renyahnya pas, rasa pisangnya berasa banget! Anak saya suka.", Timestamp: at("2024-05-20T10:00:00Z")},
				{ID: "r2", Author: "Budi", Rating: 4, Comment: "Enak, tapi mungkin bisa sedikit lebih tebal potongannya.", Timestamp: at("2024-05-18T14:30:00Z")},
			},
		},
		{
			ID:            "p2",
			Name:          "kriuke rasa coklat",
			Subtitle:      "Kripik Pisang Rasa Coklat Kripik pisang...",
			OriginalPrice: 25000,
			DiscountPrice: ptrInt(20000),
			Rating:        4.7,
			Sold:          241,
			Category:      "Promo Spesial",
			Images: []string{
				"https://picsum.photos/seed/p2-1/400/400",
				"https://picsum.photos/seed/p2-2/400/400",
			},
			Description: "Promo Spesial! Kripik pisang renyah dibalut dengan coklat premium yang lumer di mulut. Kriuknya beda, rasanya istimewa!",
			EcommerceLinks: &EcommerceLinks{
				Tiktok: "https://www.tiktok.com",
				Shopee: "https://shopee.co.id",
			},
			Reviews: []Review{
				{ID: "r3", Author: "Dewi", Rating: 5, Comment: "Coklatnya lumer banget, gak bikin eneg. Fix order lagi!", Timestamp: at("2024-05-21T09:00:00Z")},
				{ID: "r4", Author: "Agus", Rating: 5, Comment: "Kombinasi pisang sama coklatnya juara!", Timestamp: at("2024-05-20T11:20:00Z")},
				{ID: "r5", Author: "Rina", Rating: 4, Comment: "Enak, coklatnya tebel. Mungkin lain kali packingnya bisa lebih aman.", Timestamp: at("2024-05-19T18:05:00Z")},
				{ID: "r6", Author: "Joko", Rating: 5, Comment: "The best kripik coklat ever!", Timestamp: at("2024-05-17T08:45:00Z")},
			},
		},
		{
			ID:            "p3",
			Name:          "kripik pisang rasa balado",
			Subtitle:      "Kripik Pisang Rasa Balado Kripik pisang...",
			OriginalPrice: 18000,
			Rating:        4.5,
			Sold:          92,
			Category:      "Pedas",
			Images:        []string{"https://picsum.photos/seed/p3-1/400/400"},
			Description:   "Sensasi pedas manis bumbu balado khas yang bikin ketagihan. Dibuat dari cabai pilihan dan bumbu rempah Indonesia. Berani coba?",
		},
		{
			ID:            "p4",
			Name:          "rasa manis pedas manis",
			Subtitle:      "Kripik Pisang Rasa Pedas Manis Kripik pisang...",
			OriginalPrice: 19000,
			Rating:        4.9,
			Sold:          312,
			Category:      "Manis",
			Images:        []string{"https://picsum.photos/seed/p4-1/400/400"},
			Description:   "Perpaduan sempurna antara rasa manis gula aren dan sensasi pedas yang hangat. Rasa yang pasti disukai semua orang!",
			Reviews: []Review{
				{ID: "r7", Author: "Lina", Rating: 5, Comment: "Ini rasa favoritku! Pedes manisnya pas banget.", Timestamp: at("2024-05-22T15:00:00Z")},
			},
		},
		{
			ID:            "p5",
			Name:          "kripik pisang rasa matcha",
			Subtitle:      "Kriuké dengan bubuk matcha asli Jepang...",
			OriginalPrice: 22000,
			Rating:        4.6,
			Sold:          155,
			Category:      "Manis",
			Images: []string{
				"https://picsum.photos/seed/p5-1/400/400",
				"https://picsum.photos/seed/p5-2/400/400",
			},
			Description:    "Bagi pecinta teh hijau! Kriuké dengan bubuk matcha asli Jepang, memberikan rasa manis pahit yang unik dan menenangkan.",
			EcommerceLinks: &EcommerceLinks{Shopee: "https://shopee.co.id"},
		},
		{
			ID:            "p6",
			Name:          "kriuke rasa sapi panggang",
			Subtitle:      "Kripik Pisang Rasa Sapi Panggang gurih...",
			OriginalPrice: 21000,
			Rating:        4.3,
			Sold:          88,
			Category:      "Gurih",
			Images: []string{
				"https://picsum.photos/seed/p6-1/400/400",
				"https://picsum.photos/seed/p6-2/400/400",
			},
			Description: "Nikmati sensasi gurihnya bumbu sapi panggang premium dalam setiap gigitan kriuk. Cocok untuk Anda yang suka rasa asin dan gurih.",
		},
	}
}
