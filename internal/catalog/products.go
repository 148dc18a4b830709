package catalog

import "github.com/QuantumCastro/L-Artisan/internal/domain"

var defaultProducts = []domain.Product{
	{
		ID:       1,
		Name:     domain.LocalizedText{EN: "Napoli Virgin Wool Suit", ES: "Traje Napoli Lana Virgen"},
		Price:    850,
		Category: domain.CategorySuits,
		Image:    "https://images.unsplash.com/photo-1594938298603-c8148c4dae35?q=80&w=1000&auto=format&fit=crop",
		Description: domain.LocalizedText{
			EN: "Italian cut, notch lapel, ethical 120s wool. Ideal for business.",
			ES: "Corte italiano, solapa de muesca, lana 120s de origen etico. Ideal para negocios.",
		},
		Sizes: []string{"46", "48", "50", "52", "54"},
	},
	{
		ID:       2,
		Name:     domain.LocalizedText{EN: "Egyptian Oxford Shirt", ES: "Camisa Oxford Egipcio"},
		Price:    180,
		Category: domain.CategoryShirts,
		Image:    "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?q=80&w=1000&auto=format&fit=crop",
		Description: domain.LocalizedText{
			EN: "Giza 87 cotton, mother-of-pearl buttons, structured cutaway collar.",
			ES: "Algodon Giza 87, botones de nacar, cuello cutaway estructurado.",
		},
		Sizes: []string{"S", "M", "L", "XL"},
	},
	{
		ID:       3,
		Name:     domain.LocalizedText{EN: "Brown Coat", ES: "Gabardina Media Marron"},
		Price:    1200,
		Category: domain.CategoryCoats,
		Image:    "https://images.unsplash.com/photo-1764593008195-87ca871d72bd?q=80&w=464&auto=format&fit=crop",
		Description: domain.LocalizedText{
			EN: "Pure cashmere, silk lining, classic cut below the knee.",
			ES: "Cachemir puro, forro de seda, corte clasico por debajo de la rodilla.",
		},
		Sizes: []string{"48", "50", "52"},
	},
	{
		ID:       4,
		Name:     domain.LocalizedText{EN: "Brown Loafers", ES: "Loafers Marrón"},
		Price:    420,
		Category: domain.CategoryShoes,
		Image:    "https://images.unsplash.com/photo-1615979474401-8a6a344de5bd?q=80&w=581&auto=format&fit=crop",
		Description: domain.LocalizedText{
			EN: "Handcrafted balmoral boots with full-grain leather and Goodyear welt.",
			ES: "Botas Balmoral artesanales en piel plena flor con suela Goodyear.",
		},
		Sizes: []string{"40", "41", "42", "43", "44"},
	},
	{
		ID:       5,
		Name:     domain.LocalizedText{EN: "Silk Tie", ES: "Corbata de Seda"},
		Price:    120,
		Category: domain.CategoryAccessories,
		Image:    "https://plus.unsplash.com/premium_photo-1723924810262-c67a0950f311?q=80&w=870&auto=format&fit=crop",
		Description: domain.LocalizedText{
			EN: "Seven-fold jacquard silk from Como, hand finished.",
			ES: "Seda jacquard de Como con siete pliegues, terminada a mano.",
		},
		Sizes: []string{"Unica"},
	},
}
