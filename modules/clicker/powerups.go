package clicker

// PowerUp is a purchasable modifier. Active power-ups multiply every click
// by Multiplier.
type PowerUp struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int64  `json:"cost"`
	Multiplier  int64  `json:"multiplier"`
	Active      bool   `json:"active"`
}

// Power-up keys.
const (
	DoubleClick        = "double_click"
	TripleClick        = "triple_click"
	AutoClick          = "auto_click"
	MegaClick          = "mega_click"
	SuperMultiplier    = "super_multiplier"
	InformationMarquee = "information_marquee"
	CatRain            = "cat_rain"
	X2AutoClicker      = "x2_auto_clicker"
	RandomBonus        = "random_bonus"
	OvenBonus          = "oven_bonus"
)

var catalog = [...]PowerUp{
	{Key: DoubleClick, Name: "Double Click", Description: "Doubles every click", Cost: 10, Multiplier: 2},
	{Key: TripleClick, Name: "Triple Click", Description: "Triples every click", Cost: 20, Multiplier: 3},
	{Key: AutoClick, Name: "Auto Click", Description: "Clicks once per second on its own", Cost: 50, Multiplier: 1},
	{Key: MegaClick, Name: "Mega Click", Description: "Multiplies every click by five", Cost: 100, Multiplier: 5},
	{Key: SuperMultiplier, Name: "Super Multiplier", Description: "Multiplies every click by ten", Cost: 500, Multiplier: 10},
	{Key: InformationMarquee, Name: "Information Marquee", Description: "Shows a scrolling info banner", Cost: 200, Multiplier: 1},
	{Key: CatRain, Name: "Cat Rain", Description: "Makes it rain cats", Cost: 300, Multiplier: 1},
	{Key: X2AutoClicker, Name: "Auto Clicker x2", Description: "Doubles the auto click speed", Cost: 400, Multiplier: 2},
	{Key: RandomBonus, Name: "Random Bonus", Description: "Grants a random multiplier bonus", Cost: 600, Multiplier: 1},
	{Key: OvenBonus, Name: "Oven Bonus", Description: "An oven appears every 10 clicks; click it for a bonus", Cost: 700, Multiplier: 1},
}

// Catalog returns every power-up, inactive, in display order.
func Catalog() []PowerUp {
	out := make([]PowerUp, len(catalog))
	copy(out, catalog[:])
	return out
}

func lookup(key string) (PowerUp, bool) {
	for _, p := range catalog {
		if p.Key == key {
			return p, true
		}
	}
	return PowerUp{}, false
}
