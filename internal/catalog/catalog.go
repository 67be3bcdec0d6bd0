// Package catalog holds the static cafe directory. The catalog is
// read-only at runtime; All and ByID hand out copies so callers can
// never mutate the backing data.
package catalog

import "matcha_map/internal/domain"

var cafes = []domain.Cafe{
	{
		ID:          "luxxe",
		Name:        "Luxxe Cafe",
		Address:     "60 Waymouth St, Adelaide SA 5000",
		Lat:         -34.92579587843371,
		Lng:         138.59736580994866,
		Area:        domain.AreaCBD,
		Specialty:   "Matcha lattes & specialty coffee",
		Description: "Located in the heart of Adelaide's thriving business district.",
		Hours: domain.WeeklyHours{
			"monday":    "7:00 AM - 3:00 PM",
			"tuesday":   "7:00 AM - 3:00 PM",
			"wednesday": "7:00 AM - 3:00 PM",
			"thursday":  "7:00 AM - 3:00 PM",
			"friday":    "7:00 AM - 3:00 PM",
			"saturday":  "8:00 AM - 2:00 PM",
			"sunday":    domain.Closed,
		},
	},
	{
		ID:          "munch-deli",
		Name:        "Munch Deli",
		Address:     "Shop 6/82 King William St, Adelaide SA 5000",
		Lat:         -34.9247,
		Lng:         138.6000,
		Area:        domain.AreaCBD,
		Specialty:   "Viet-inspired sandwiches & matcha",
		Description: "Known for delicious Vietnamese-inspired sandos and quality matcha drinks.",
		Hours: domain.WeeklyHours{
			"monday":    "8:00 AM - 4:00 PM",
			"tuesday":   "8:00 AM - 4:00 PM",
			"wednesday": "8:00 AM - 4:00 PM",
			"thursday":  "8:00 AM - 4:00 PM",
			"friday":    "8:00 AM - 4:00 PM",
		},
		// weekend entries intentionally absent: missing days read as open
	},
	{
		ID:          "blended",
		Name:        "Blended Cafe Adelaide",
		Address:     "95 Grenfell St, Adelaide SA 5000",
		Lat:         -34.924460149284684,
		Lng:         138.60327653747476,
		Area:        domain.AreaCBD,
		Specialty:   "Bagels & specialty matcha",
		Description: "Bringing bagels and brews to the CBD with excellent matcha options.",
		Hours: domain.WeeklyHours{
			"monday":    "7:30 AM - 2:30 PM",
			"tuesday":   "7:30 AM - 2:30 PM",
			"wednesday": "7:30 AM - 2:30 PM",
			"thursday":  "7:30 AM - 2:30 PM",
			"friday":    "7:30 AM - 2:30 PM",
			"saturday":  "8:00 AM - 1:00 PM",
			"sunday":    domain.Closed,
		},
	},
	{
		ID:          "noru-cafe",
		Name:        "Noru Cafe",
		Address:     "Unit 2, 61-63 Grote St, Adelaide SA 5000",
		Lat:         -34.9294,
		Lng:         138.5965,
		Area:        domain.AreaCBD,
		Specialty:   "Matcha near the Central Market",
		Description: "Adelaide's newest matcha and coffee haven, pouring exceptional matcha.",
	},
	{
		ID:          "yuku-do",
		Name:        "Yuku Do",
		Address:     "252 Hindley St, Adelaide SA 5000",
		Lat:         -34.923266269619916,
		Lng:         138.59001589800766,
		Area:        domain.AreaCBD,
		Specialty:   "Japanese sandos & matcha",
		Description: "Japanese-inspired cafe serving onigiri, fluffy shokupan, and quality matcha.",
		Hours: domain.WeeklyHours{
			"tuesday":   "10:00 AM - 5:00 PM",
			"wednesday": "10:00 AM - 5:00 PM",
			"thursday":  "10:00 AM - 5:00 PM",
			"friday":    "10:00 AM - 9:00 PM",
			// Hindley St late run crosses midnight; pinned as an
			// unsupported interval by the evaluator tests.
			"saturday": "10:00 AM - 12:30 AM",
			"sunday":   domain.Closed,
		},
	},
	{
		ID:          "matsuri-japanese",
		Name:        "Matsuri Japanese",
		Address:     "Shop 33 Renaissance Arcade, 128/130 Rundle Mall, Adelaide SA 5000",
		Lat:         -34.92240759843686,
		Lng:         138.60420667116395,
		Area:        domain.AreaCBD,
		Specialty:   "Traditional Japanese & matcha",
		Description: "Authentic Japanese restaurant with traditional matcha offerings.",
		Hours: domain.WeeklyHours{
			"monday":    "11:00 AM - 8:30 PM",
			"tuesday":   "11:00 AM - 8:30 PM",
			"wednesday": "11:00 AM - 8:30 PM",
			"thursday":  "11:00 AM - 8:30 PM",
			"friday":    "11:00 AM - 9:00 PM",
			"saturday":  "11:00 AM - 9:00 PM",
			"sunday":    "11:00 AM - 8:00 PM",
		},
	},
	{
		ID:          "please-say-please",
		Name:        "Please Say Please",
		Address:     "Shop 2 W, 50 Grenfell St, Adelaide SA 5000",
		Lat:         -34.924035709656714,
		Lng:         138.60170476299606,
		Area:        domain.AreaCBD,
		Specialty:   "Specialty coffee & matcha",
		Description: "Known for excellent coffee and quality matcha drinks in a friendly atmosphere.",
		Hours: domain.WeeklyHours{
			"monday":    "7:00 AM - 2:00 PM",
			"tuesday":   "7:00 AM - 2:00 PM",
			"wednesday": "7:00 AM - 2:00 PM",
			"thursday":  "7:00 AM - 2:00 PM",
			"friday":    "7:00 AM - 2:00 PM",
			"saturday":  "by appointment", // unparseable upstream data, reads as open
		},
	},
	{
		ID:          "deux-coffee",
		Name:        "Deux Coffee Roasters",
		Address:     "149 Flinders St, Adelaide SA 5000",
		Lat:         -34.92705546386342,
		Lng:         138.6063623863002,
		Area:        domain.AreaCBD,
		Specialty:   "Japanese matcha & coffee roasters",
		Description: "Adelaide's newest coffee roasters serving matcha straight from Japan.",
		Hours: domain.WeeklyHours{
			"monday":    "6:30 AM - 3:00 PM",
			"tuesday":   "6:30 AM - 3:00 PM",
			"wednesday": "6:30 AM - 3:00 PM",
			"thursday":  "6:30 AM - 3:00 PM",
			"friday":    "6:30 AM - 3:00 PM",
			"saturday":  "7:00 AM - 2:00 PM",
			"sunday":    "7:00 AM - 2:00 PM",
		},
	},
	{
		ID:          "hey-matcha",
		Name:        "Hey Matcha",
		Address:     "97 Prospect Rd, Prospect SA 5082",
		Lat:         -34.8851,
		Lng:         138.5944,
		Area:        domain.AreaOutside,
		Specialty:   "Ceremonial grade matcha bar",
		Description: "Suburban matcha bar whisking ceremonial grade matcha to order.",
		Hours: domain.WeeklyHours{
			"wednesday": "8:00 AM - 2:00 PM",
			"thursday":  "8:00 AM - 2:00 PM",
			"friday":    "8:00 AM - 2:00 PM",
			"saturday":  "8:00 AM - 3:00 PM",
			"sunday":    "8:00 AM - 3:00 PM",
			"monday":    domain.Closed,
			"tuesday":   domain.Closed,
		},
	},
	{
		ID:          "komorebi-henley",
		Name:        "Komorebi",
		Address:     "255 Seaview Rd, Henley Beach SA 5022",
		Lat:         -34.9186,
		Lng:         138.4947,
		Area:        domain.AreaOutside,
		Specialty:   "Beachside matcha & desserts",
		Description: "Japanese dessert house by the beach with a full matcha drinks list.",
	},
}

// All returns the catalog in its fixed declaration order.
func All() []domain.Cafe {
	out := make([]domain.Cafe, len(cafes))
	for i, c := range cafes {
		out[i] = clone(c)
	}
	return out
}

// ByID looks up a single cafe.
func ByID(id string) (domain.Cafe, bool) {
	for _, c := range cafes {
		if c.ID == id {
			return clone(c), true
		}
	}
	return domain.Cafe{}, false
}

func clone(c domain.Cafe) domain.Cafe {
	if c.Hours != nil {
		h := make(domain.WeeklyHours, len(c.Hours))
		for d, v := range c.Hours {
			h[d] = v
		}
		c.Hours = h
	}
	return c
}

// Len reports the catalog size.
func Len() int { return len(cafes) }
