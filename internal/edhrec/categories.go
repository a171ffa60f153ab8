package edhrec

// Category is one card list of a commander page.
type Category struct {
	// Key identifies the category in results and on the command line.
	Key string

	// Label is the card list header on the EDHREC page.
	Label string
}

// Commander page categories.
var (
	HighSynergy   = Category{Key: "high_synergy", Label: "High Synergy Cards"}
	TopCards      = Category{Key: "top_cards", Label: "Top Cards"}
	Creatures     = Category{Key: "creatures", Label: "Creatures"}
	Instants      = Category{Key: "instants", Label: "Instants"}
	Sorceries     = Category{Key: "sorceries", Label: "Sorceries"}
	Artifacts     = Category{Key: "artifacts", Label: "Artifacts"}
	Enchantments  = Category{Key: "enchantments", Label: "Enchantments"}
	Lands         = Category{Key: "lands", Label: "Lands"}
	UtilityLands  = Category{Key: "utility_lands", Label: "Utility Lands"}
	ManaArtifacts = Category{Key: "mana_artifacts", Label: "Mana Artifacts"}
)

// Categories lists every category in the order results are merged.
var Categories = []Category{
	HighSynergy,
	TopCards,
	Creatures,
	Instants,
	Sorceries,
	Artifacts,
	Enchantments,
	Lands,
	UtilityLands,
	ManaArtifacts,
}

// CategoryByKey looks a category up by its key.
func CategoryByKey(key string) (Category, bool) {
	for _, c := range Categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}
