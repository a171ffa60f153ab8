package testutil

// AtraxaDeckID is the public id of AtraxaDeckPayload.
const AtraxaDeckID = "AtRaXa123"

// AtraxaDeckPayload is a trimmed Moxfield v3 deck payload. Boards and cards are
// deliberately not in alphabetical order, and "stickers" is not an object.
const AtraxaDeckPayload = `{
  "publicId": "AtRaXa123",
  "name": "Atraxa Counters",
  "format": "commander",
  "description": "Proliferate everything.",
  "boards": {
    "mainboard": {
      "count": 6,
      "cards": {
        "c9": {"quantity": 1, "card": {"name": "Sol Ring", "type_line": "Artifact", "mana_cost": "{1}", "cmc": 1}},
        "c2": {"quantity": 10, "card": {"name": "Forest", "type_line": "Basic Land — Forest", "mana_cost": "", "cmc": 0}},
        "c5": {"quantity": 1, "card": {"name": "Rhystic Study", "type_line": "Enchantment", "mana_cost": "{2}{U}", "cmc": 3}},
        "c7": {"quantity": 1, "card": {"name": "Doubling Season", "type_line": "Enchantment", "mana_cost": "{4}{G}", "cmc": 5}},
        "c1": {"quantity": 1, "card": {"name": "Grizzly Bears", "type_line": "Creature — Bear", "mana_cost": "{1}{G}", "cmc": 2}},
        "c3": {"quantity": 1, "card": {"name": "Evolution Sage", "type_line": "Creature — Elf Druid", "mana_cost": "{2}{G}", "cmc": 3}}
      }
    },
    "commanders": {
      "count": 1,
      "cards": {
        "a1": {"quantity": 1, "card": {"name": "Atraxa, Praetors' Voice", "type_line": "Legendary Creature — Phyrexian Angel Horror", "mana_cost": "{G}{W}{U}{B}", "cmc": 4}}
      }
    },
    "stickers": [],
    "sideboard": {
      "count": 1,
      "cards": {
        "s1": {"quantity": 1, "card": {"name": "Tamiyo's Safekeeping", "type_line": "Instant", "mana_cost": "{G}", "cmc": 1}}
      }
    },
    "maybeboard": {
      "count": 1,
      "cards": {
        "m1": {"card": {"name": "Deepglow Skate", "type_line": "Creature — Fish", "mana_cost": "{4}{U}", "cmc": 5}}
      }
    },
    "companions": {
      "count": 0,
      "cards": {}
    }
  }
}`
