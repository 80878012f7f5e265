package domain

// SeedCourses returns the built-in demo collection. The store falls back
// to this set when the persisted collection is missing or unreadable, and
// the seed command loads it via Reset.
func SeedCourses() []Course {
	return []Course{
		{
			ID:          "alo-studiedag-jan",
			Title:       "Landelijke studiedag KVLO en ALO Nederland",
			Organizer:   OrganizerJoint,
			Date:        "2026-01-26",
			Location:    "ALO Amsterdam",
			Region:      RegionWest,
			Price:       150,
			Description: "Inschrijving geopend! Gezamenlijke studiedag op de ALO Amsterdam.",
			Tags:        []string{"Studiedag", "Landelijk", "Kennisdeling"},
			URL:         "https://www.kvlo.nl/kalender/bijeenkomst/detail.aspx?Id=B9CEF428-BBB0-4AE1-8804-A6819124C2AF",
			ImageURL:    "https://images.unsplash.com/photo-1562771379-e71d2b1283f5?auto=format&fit=crop&q=80&w=400",
			IsNew:       true,
		},
		{
			ID:          "kvlo-bsm-feb",
			Title:       "Cursus Van start met BSM of LO2",
			Organizer:   OrganizerKVLO,
			Date:        "2026-02-02",
			Location:    "Zeist",
			Region:      RegionLandelijk,
			Price:       295,
			Description: "Voor docenten die starten met BSM of LO2.",
			Tags:        []string{"VO", "BSM", "LO2"},
			URL:         "https://www.kvlo.nl",
			ImageURL:    "https://images.unsplash.com/photo-1532444458054-01a7dd3e9fca?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:          "kvlo-coord-feb",
			Title:       "Starterscursus vakgroepcoördinator bewegingsonderwijs po",
			Organizer:   OrganizerKVLO,
			Date:        "2026-02-03",
			Location:    "Zeist",
			Region:      RegionLandelijk,
			Price:       295,
			Description: "Basiscursus voor nieuwe vakgroepcoördinatoren in het PO.",
			Tags:        []string{"PO", "Coördinator", "Management"},
			URL:         "https://www.kvlo.nl",
			ImageURL:    "https://images.unsplash.com/photo-1506784983877-45594efa4cbe?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:          "alo-mrt-feb",
			Title:       "Cursus Motorische Remedial Teaching",
			Organizer:   OrganizerALO,
			Date:        "2026-02-04",
			Location:    "CALO Windesheim, Zwolle",
			Region:      RegionLandelijk,
			Price:       450,
			Description: "Aangeboden door ALO Nederland. Specialistische cursus MRT.",
			Tags:        []string{"PO", "Zorg", "MRT"},
			URL:         "https://www.alo.nl",
			ImageURL:    "https://images.unsplash.com/photo-1616961862865-c9b433c6a96b?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:          "kvlo-ehbo-feb",
			Title:       "EHBO cursus afdeling Leiden",
			Organizer:   OrganizerKVLO,
			Date:        "2026-02-04",
			Location:    "Vlietland College",
			Region:      RegionWest,
			Price:       95,
			Description: "EHBO cursus (en 11/2) bij Vlietland College.",
			Tags:        []string{"Afdeling", "Veiligheid", "EHBO"},
			URL:         "https://www.kvlo.nl",
			ImageURL:    "https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:          "alo-heedfulness-feb",
			Title:       "Cursus Heedfulness: Van stress naar energie & veerkracht",
			Organizer:   OrganizerALO,
			Date:        "2026-02-05",
			Location:    "HAN ALO, Nijmegen",
			Region:      RegionLandelijk,
			Price:       225,
			Description: "Aangeboden door ALO Nederland. Focus op energie en veerkracht voor docenten.",
			Tags:        []string{"Vitaliteit", "Docent", "Welzijn"},
			URL:         "https://www.alo.nl",
			ImageURL:    "https://images.unsplash.com/photo-1506126613408-eca07ce68773?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:          "kvlo-symposium-mrt",
			Title:       "Symposium WerkPlekCheck",
			Organizer:   OrganizerKVLO,
			Date:        "2026-03-05",
			Location:    "Expo Houten",
			Region:      RegionLandelijk,
			Price:       125,
			Description: "Schrijf je nu in! Alles over de veilige werkplek.",
			Tags:        []string{"Veiligheid", "Symposium", "Arbo"},
			URL:         "https://www.kvlo.nl",
			ImageURL:    "https://images.unsplash.com/photo-1505373877841-8d25f7d46678?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:          "kvlo-award-mrt",
			Title:       "Beweegrijke School Award po",
			Organizer:   OrganizerJoint,
			Date:        "2026-03-18",
			Location:    "Fontys Sport en Bewegen, Eindhoven",
			Region:      RegionZuid,
			Price:       0,
			Description: "Uitreiking van de Beweegrijke School Award voor het PO.",
			Tags:        []string{"PO", "Award", "Innovatie"},
			URL:         "https://www.kvlo.nl",
			ImageURL:    "https://images.unsplash.com/photo-1565692694301-3c46d37ceb96?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:          "kvlo-insp-mrt",
			Title:       "Inspiratiedag Beweegrijke Basisscholen",
			Organizer:   OrganizerJoint,
			Date:        "2026-03-18",
			Location:    "Fontys Sport en Bewegen, Eindhoven",
			Region:      RegionZuid,
			Price:       95,
			Description: "Inspiratiedag bij Fontys Eindhoven.",
			Tags:        []string{"PO", "Inspiratie", "Praktijk"},
			URL:         "https://www.kvlo.nl",
			ImageURL:    "https://images.unsplash.com/photo-1502086223501-7ea6ecd79368?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:          "kvlo-netwerk-mrt",
			Title:       "Bijeenkomst netwerk vakgroepcoördinatoren po",
			Organizer:   OrganizerKVLO,
			Date:        "2026-03-24",
			Location:    "Zeist",
			Region:      RegionLandelijk,
			Price:       0,
			Description: "Netwerkbijeenkomst voor coördinatoren.",
			Tags:        []string{"PO", "Netwerk", "Coördinator"},
			URL:         "https://www.kvlo.nl",
			ImageURL:    "https://images.unsplash.com/photo-1515187029135-18ee286d815b?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:          "alo-ruimte-mrt",
			Title:       "Cursus Bewegen in de Openbare Ruimte",
			Organizer:   OrganizerALO,
			Date:        "2026-03-24",
			Location:    "HAN ALO, Nijmegen",
			Region:      RegionLandelijk,
			Price:       250,
			Description: "Aangeboden door ALO Nederland. Bewegen buiten de gymzaal.",
			Tags:        []string{"Outdoor", "Urban", "Trends"},
			URL:         "https://www.alo.nl",
			ImageURL:    "https://images.unsplash.com/photo-1552674605-469523f54050?auto=format&fit=crop&q=80&w=400",
		},
	}
}
