package bgg

// translation maps an English BoardGameGeek label to the label shown in the catalog.
type translation struct {
	from string
	to   string
}

var categoryTranslations = []translation{
	{"Economic", "Ekonomiczna"},
	{"Fantasy", "Fantasy"},
	{"Card Game", "Karciana"},
	{"Science Fiction", "Sci-Fi"},
	{"Fighting", "Bijatyka"},
	{"Adventure", "Przygodowa"},
	{"Medieval", "Średniowieczna"},
	{"Miniatures", "Miniaturkowa"},
	{"Exploration", "Eksploracyjna"},
	{"City Building", "Budowanie miasta"},
	{"Wargame", "Wojenna"},
	{"Dice", "Kościana"},
	{"Civilization", "Cywilizacyjna"},
	{"Territory Building", "Terytorialna"},
	{"Space Exploration", "Eksploracja kosmosu"},
	{"Industry / Manufacturing", "Przemysłowa"},
	{"Deduction", "Dedukcyjna"},
	{"Animals", "O zwierzętach"},
	{"Ancient", "Starożytna"},
	{"Mythology", "Mitologiczna"},
	{"Farming", "Rolnicza"},
	{"Horror", "Horror"},
	{"Political", "Polityczna"},
	{"Renaissance", "Renesansowa"},
	{"Nautical", "Żeglarska"},
	{"Puzzle", "Łamigłówkowa"},
	{"Travel", "Podróżnicza"},
	{"Party Game", "Imprezowa"},
	{"Murder/Mystery", "Kryminalna"},
	{"Video Game Theme", "Na podstawie gry wideo"},
	{"Mature / Adult", "Dla dorosłych"},
	{"Zombies", "Zombie"},
	{"Prehistoric", "Prehistoryczna"},
	{"World War II", "O Drugiej Wojnie Światowej"},
	{"Humor", "Humorystyczna"},
}

var mechanicTranslations = []translation{
	{"Hand Management", "Zarządzanie ręką"},
	{"Variable Player Powers", "Zmienne moce gracza"},
	{"Dice Rolling", "Rzucanie kośćmi"},
	{"Solo / Solitaire Game", "Tryb gry solo"},
	{"Open Drafting", "Otwarty dobór"},
	{"Set Collection", "Zbieranie zestawów"},
	{"Area Majority / Influence", "Wpływ na obszar gry"},
	{"End Game Bonuses", "Bonusy końcowe"},
	{"Variable Set-up", "Zmienny start gry"},
	{"Worker Placement", "Rozmieszczanie robotników"},
	{"Modular Board", "Modularna plansza"},
	{"Cooperative Game", "Współpraca"},
	{"Tile Placement", "Rozmieszczanie kafelków"},
	{"Deck, Bag, and Pool Building", "Budowanie ręki lub talii"},
	{"Action Points", "Punkty akcji"},
	{"Area Movement", "Poruszanie się po planszy"},
	{"Hexagon Grid", "Siatka heksagonalna"},
	{"Contracts", "Kontrakty"},
	{"Income", "Przychód"},
	{"Scenario / Mission / Campaign Game", "Scenariusze gry"},
	{"Simultaneous Action Selection", "Jednoczesny wybór akcji"},
	{"Events", "Wydarzenia"},
	{"Team-Based Game", "Gra zespołowa"},
	{"Auction/Bidding", "Licytacje"},
	{"Tech Trees / Tech Tracks", "Drzewko rozwoju"},
	{"Push Your Luck", "Losowość"},
	{"Role Playing", "RPG"},
	{"Storytelling", "Opowiadanie historii"},
	{"Player Elimination", "Eliminacja graczy"},
	{"Square Grid", "Siatka kwadratowa"},
	{"Simulation", "Symulacja"},
	{"Market", "Rynek"},
	{"Trading", "Handel"},
	{"Movement Points", "Punkty ruchu"},
	{"Deck Construction", "Budowanie talii"},
	{"Voting", "Głosowanie"},
}

var (
	categoryIndex = indexTranslations(categoryTranslations)
	mechanicIndex = indexTranslations(mechanicTranslations)
)

func indexTranslations(list []translation) map[string]string {
	m := make(map[string]string, len(list))
	for _, t := range list {
		m[t.from] = t.to
	}
	return m
}

func translate(index map[string]string, names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if label, ok := index[name]; ok {
			out = append(out, label)
		}
	}
	return out
}

func labels(list []translation) []string {
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.to
	}
	return out
}

// TranslateCategories maps BoardGameGeek category names to catalog labels.
// Unknown categories are dropped; input order is kept.
func TranslateCategories(names []string) []string {
	return translate(categoryIndex, names)
}

// TranslateMechanics maps BoardGameGeek mechanic names to catalog labels.
// Unknown mechanics are dropped; input order is kept.
func TranslateMechanics(names []string) []string {
	return translate(mechanicIndex, names)
}

// CategoryLabels returns every catalog category label in table order.
func CategoryLabels() []string { return labels(categoryTranslations) }

// MechanicLabels returns every catalog mechanic label in table order.
func MechanicLabels() []string { return labels(mechanicTranslations) }
