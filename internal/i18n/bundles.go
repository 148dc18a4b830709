package i18n

import "github.com/QuantumCastro/L-Artisan/internal/domain"

var english = Messages{
	Lang:  domain.LanguageEN,
	Brand: "L'Artisan.",
	Nav: NavMessages{
		Language:   "Language",
		SearchAria: "Open search",
		CartAria:   "Open cart",
		Categories: map[domain.Category]string{
			domain.CategoryAll:         "All",
			domain.CategorySuits:       "Suits",
			domain.CategoryShirts:      "Shirts",
			domain.CategoryCoats:       "Coats",
			domain.CategoryShoes:       "Shoes",
			domain.CategoryAccessories: "Accessories",
		},
	},
	Hero: HeroMessages{
		Tag:      "Est. 1985 · Milano",
		Title:    "The art of timeless elegance",
		Subtitle: "Precise tailoring. Noble materials. A shopping experience crafted for the modern gentleman.",
		Scroll:   "Explore collection",
	},
	Collection: CollectionMessages{
		Title:    "FW 2025 Collection",
		Subtitle: "Sartorial curation inspired by Milano.",
		Count:    "%d curated pieces",
	},
	Search: SearchMessages{
		Placeholder: "Search by garment, material or style (e.g. wool, oxford, formal)",
		Semantic:    "Local semantic search (no data sent)",
		Clear:       "Clear",
		Results:     "%d results · Category: %s",
	},
	Filter: FilterMessages{
		Heading:   "Filtered view",
		SearchTag: "Search: “%s”",
		Clear:     "Clear filters",
		Showing:   "Showing %d of %d curated pieces",
	},
	Product: ProductMessages{
		PriceNote:        "Tax included",
		Size:             "Select size",
		SizeGuide:        "Tailoring guide",
		SelectSizePrompt: "Please select a size",
		Add:              "Add to order",
		Adding:           "Crafting...",
	},
	Empty: EmptyMessages{
		Title: "No results",
		Body:  "Adjust your search or clear filters to view the full collection.",
		CTA:   "Back to all",
	},
	Footer: FooterMessages{
		BrandCopy:        "Redefining modern luxury through traditional craftsmanship and digital innovation.",
		CustomerTitle:    "Customer",
		LegalTitle:       "Legal",
		NewsletterTitle:  "Newsletter",
		NewsletterCTA:    "Join",
		CustomerLinks:    []string{"My orders", "Size guide", "Shipping & returns"},
		LegalLinks:       []string{"Terms", "Privacy", "Accessibility"},
		NewsletterThanks: "Thanks for joining our newsletter.",
	},
	Cart: CartMessages{
		Title:    "Order sheet",
		Empty:    "Your order sheet is empty.",
		OrderID:  "Order #%s",
		Shipping: "Insured shipping",
		Remove:   "Remove",
		Total:    "Estimated total",
		Checkout: "Proceed to payment",
		Secure:   "Insured shipping and premium packaging",
	},
	Checkout: CheckoutMessages{
		Title:          "Payment details",
		Secure:         "Secure payment",
		Back:           "Cart",
		Name:           "Full name",
		Email:          "Email",
		Card:           "Card",
		Expiry:         "Expiry (MM/YY)",
		CVV:            "CVV",
		Address:        "Address",
		Summary:        "Items",
		Note:           "We encrypt your data. Demo only, no real charge.",
		Confirm:        "Confirm payment",
		Processing:     "Processing...",
		SuccessTitle:   "Payment recorded",
		SuccessCaption: "We sent a receipt to your email. (Demo)",
	},
	Bespoke: BespokeMessages{
		Title:    "Bespoke service",
		Subtitle: "Book an appointment at our atelier for a fully tailored experience.",
		CTA:      "Schedule visit",
	},
}

var spanish = Messages{
	Lang:  domain.LanguageES,
	Brand: "L'Artisan.",
	Nav: NavMessages{
		Language:   "Idioma",
		SearchAria: "Abrir búsqueda",
		CartAria:   "Abrir carrito",
		Categories: map[domain.Category]string{
			domain.CategoryAll:         "Todos",
			domain.CategorySuits:       "Trajes",
			domain.CategoryShirts:      "Camisas",
			domain.CategoryCoats:       "Abrigos",
			domain.CategoryShoes:       "Zapatos",
			domain.CategoryAccessories: "Accesorios",
		},
	},
	Hero: HeroMessages{
		Tag:      "Est. 1985 · Milano",
		Title:    "El arte de la elegancia atemporal",
		Subtitle: "Confección precisa. Materiales nobles. Una experiencia de compra diseñada para el caballero moderno.",
		Scroll:   "Explorar colección",
	},
	Collection: CollectionMessages{
		Title:    "Colección O/I 2025",
		Subtitle: "Curaduría sartorial inspirada en Milano.",
		Count:    "%d piezas seleccionadas",
	},
	Search: SearchMessages{
		Placeholder: "Buscar por prenda, material o estilo (ej. lana, oxford, formal)",
		Semantic:    "Búsqueda semántica local (no se envían datos)",
		Clear:       "Limpiar",
		Results:     "%d resultados · Categoría: %s",
	},
	Filter: FilterMessages{
		Heading:   "Vista filtrada",
		SearchTag: "Búsqueda: “%s”",
		Clear:     "Limpiar filtros",
		Showing:   "Mostrando %d de %d piezas seleccionadas",
	},
	Product: ProductMessages{
		PriceNote:        "Impuestos incluidos",
		Size:             "Seleccionar talla",
		SizeGuide:        "Guía de sastrería",
		SelectSizePrompt: "Por favor selecciona una talla",
		Add:              "Añadir al pedido",
		Adding:           "Confeccionando...",
	},
	Empty: EmptyMessages{
		Title: "Sin resultados",
		Body:  "Ajusta la búsqueda o limpia filtros para ver la colección completa.",
		CTA:   "Volver a todos",
	},
	Footer: FooterMessages{
		BrandCopy:        "Redefiniendo el lujo moderno a través de la artesanía tradicional y la innovación digital.",
		CustomerTitle:    "Cliente",
		LegalTitle:       "Legal",
		NewsletterTitle:  "Newsletter",
		NewsletterCTA:    "Unirse",
		CustomerLinks:    []string{"Mis pedidos", "Guía de tallas", "Envíos y devoluciones"},
		LegalLinks:       []string{"Términos", "Privacidad", "Accesibilidad"},
		NewsletterThanks: "Gracias por unirte a nuestro boletín.",
	},
	Cart: CartMessages{
		Title:    "Hoja de pedido",
		Empty:    "Tu hoja de pedido está vacía.",
		OrderID:  "Pedido #%s",
		Shipping: "Envío asegurado",
		Remove:   "Remover",
		Total:    "Total estimado",
		Checkout: "Proceder al pago",
		Secure:   "Envío asegurado y empaquetado premium",
	},
	Checkout: CheckoutMessages{
		Title:          "Datos de tarjeta",
		Secure:         "Pago seguro",
		Back:           "Carrito",
		Name:           "Nombre completo",
		Email:          "Email",
		Card:           "Tarjeta",
		Expiry:         "Vencimiento (MM/AA)",
		CVV:            "CVV",
		Address:        "Dirección",
		Summary:        "Artículos",
		Note:           "Encriptamos tus datos. Demo, no se procesa pago real.",
		Confirm:        "Confirmar pago",
		Processing:     "Procesando...",
		SuccessTitle:   "Pago registrado",
		SuccessCaption: "Enviamos un comprobante a tu correo. (Demo)",
	},
	Bespoke: BespokeMessages{
		Title:    "Servicio bespoke",
		Subtitle: "Agenda una cita en nuestro atelier para una experiencia de sastrería completa y personalizada.",
		CTA:      "Agendar cita",
	},
}
