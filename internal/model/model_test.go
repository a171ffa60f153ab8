package model

import (
	"encoding/json"
	"testing"
)

func TestParseBoard(t *testing.T) {
	tests := []struct {
		name string
		want Board
	}{
		{"commanders", Commanders},
		{"mainboard", Mainboard},
		{"sideboard", Sideboard},
		{"maybeboard", Maybeboard},
		{"companions", Board{Kind: BoardOther, Name: "companions"}},
		{"Mainboard", Board{Kind: BoardOther, Name: "Mainboard"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseBoard(tt.name); got != tt.want {
				t.Errorf("ParseBoard(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestBoard_Title(t *testing.T) {
	tests := []struct {
		board Board
		want  string
	}{
		{Commanders, "Commanders"},
		{Maybeboard, "Maybeboard"},
		{ParseBoard("signatureSpells"), "Signaturespells"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.board.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoard_JSON(t *testing.T) {
	data, err := json.Marshal(Card{Name: "Lurrus of the Dream-Den", Quantity: 1, Board: ParseBoard("companions")})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var card Card
	if err := json.Unmarshal(data, &card); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if card.Board.Kind != BoardOther || card.Board.Name != "companions" {
		t.Errorf("Board = %+v, want other board named companions", card.Board)
	}
}

func TestCard_IsBasicLand(t *testing.T) {
	tests := []struct {
		typeLine string
		want     bool
	}{
		{"Basic Land — Forest", true},
		{"Land", false},
		{"Legendary Land", false},
		{"Artifact", false},
	}

	for _, tt := range tests {
		t.Run(tt.typeLine, func(t *testing.T) {
			c := Card{Name: "x", TypeLine: tt.typeLine}
			if got := c.IsBasicLand(); got != tt.want {
				t.Errorf("IsBasicLand() = %v, want %v", got, tt.want)
			}
		})
	}
}

func testDeck() *Deck {
	return &Deck{
		Name:   "Atraxa Counters",
		Format: "commander",
		Cards: []Card{
			{Name: "Sol Ring", Quantity: 1, Board: Mainboard},
			{Name: "Forest", Quantity: 10, Board: Mainboard},
			{Name: "Deepglow Skate", Quantity: 1, Board: Maybeboard},
			{Name: "Atraxa, Praetors' Voice", Quantity: 1, Board: Commanders},
			{Name: "Lurrus of the Dream-Den", Quantity: 1, Board: ParseBoard("companions")},
			{Name: "Doubling Season", Quantity: 1, Board: Mainboard},
		},
	}
}

func TestDeck_Accessors(t *testing.T) {
	deck := testDeck()

	if got := deck.TotalCards(); got != 15 {
		t.Errorf("TotalCards() = %d, want 15", got)
	}
	if !deck.HasCommander() {
		t.Error("HasCommander() = false, want true")
	}
	if got := len(deck.Mainboard()); got != 3 {
		t.Errorf("len(Mainboard()) = %d, want 3", got)
	}

	want := "Atraxa Counters (commander) - 15 cards - Commander: Atraxa, Praetors' Voice"
	if got := deck.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	empty := &Deck{}
	if empty.HasCommander() {
		t.Error("HasCommander() on empty deck = true, want false")
	}
}

func TestDeck_Boards(t *testing.T) {
	groups := testDeck().Boards()

	wantBoards := []string{"commanders", "mainboard", "maybeboard", "companions"}
	if len(groups) != len(wantBoards) {
		t.Fatalf("len(Boards()) = %d, want %d", len(groups), len(wantBoards))
	}
	for i, g := range groups {
		if g.Board.Name != wantBoards[i] {
			t.Errorf("Boards()[%d] = %s, want %s", i, g.Board.Name, wantBoards[i])
		}
	}

	wantMain := []string{"Doubling Season", "Forest", "Sol Ring"}
	for i, c := range groups[1].Cards {
		if c.Name != wantMain[i] {
			t.Errorf("mainboard[%d] = %s, want %s", i, c.Name, wantMain[i])
		}
	}
}

func TestInclusionRate(t *testing.T) {
	tests := []struct {
		numDecks, potential int
		want                float64
	}{
		{50, 100, 0.5},
		{3, 1, 3},
		{10, 0, 0},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := InclusionRate(tt.numDecks, tt.potential); got != tt.want {
			t.Errorf("InclusionRate(%d, %d) = %v, want %v", tt.numDecks, tt.potential, got, tt.want)
		}
	}
}
