package domain

// PlayerSummary represents a Steam player profile summary
type PlayerSummary struct {
	SteamID      string `json:"steamid"`
	PersonaName  string `json:"personaname"`
	ProfileURL   string `json:"profileurl,omitempty"`
	Avatar       string `json:"avatarfull,omitempty"`
	PersonaState int    `json:"personastate,omitempty"`
	LastLogoff   int64  `json:"lastlogoff,omitempty"`
	TimeCreated  int64  `json:"timecreated,omitempty"`
	SteamLevel   int    `json:"steam_level,omitempty"`
}

// Game represents a single owned game with playtime stats
type Game struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int    `json:"playtime_forever"` // minutes
	Playtime2Weeks  int    `json:"playtime_2weeks"`  // minutes
	LastPlayed      int64  `json:"rtime_last_played"` // unix seconds
}

// GamesPayload is the canonical library summary shape. The same schema is
// produced by the per-account fetch and by the multi-account merge.
type GamesPayload struct {
	Count         int    `json:"count"`
	AllGames      []Game `json:"all_games"`
	TopGames      []Game `json:"top_games"`
	RecentGame    *Game  `json:"recent_game"`
	Top2Weeks     []Game `json:"top_2weeks"`
	TotalPlaytime int    `json:"total_playtime"`
}

// IsEmpty reports whether the payload carries no games
func (p *GamesPayload) IsEmpty() bool {
	return p == nil || len(p.AllGames) == 0
}

// AccountData holds per-account games and profile summary
type AccountData struct {
	Games   *GamesPayload  `json:"games"`
	Summary *PlayerSummary `json:"summary"`
}

// PriceOverview is the store price block for one app
type PriceOverview struct {
	Currency        string `json:"currency"`
	Initial         int    `json:"initial"`
	Final           int    `json:"final"`
	DiscountPercent int    `json:"discount_percent"`
	FinalFormatted  string `json:"final_formatted,omitempty"`
}

// PriceData is the payload of a successful price lookup
type PriceData struct {
	PriceOverview *PriceOverview `json:"price_overview,omitempty"`
}

// PriceEntry is the raw per-app wrapper returned by the store API.
// Success may be false with HTTP 200, meaning the price is not known.
type PriceEntry struct {
	Success bool       `json:"success"`
	Data    *PriceData `json:"data,omitempty"`
}

// WishlistItem represents one discounted wishlist entry
type WishlistItem struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	DiscountPercent int    `json:"discount_percent"`
	OriginalPrice   int    `json:"original_price"`
	FinalPrice      int    `json:"final_price"`
	Currency        string `json:"currency,omitempty"`
}

// AchievementStat holds per-app achievement progress
type AchievementStat struct {
	Total    int `json:"total"`
	Unlocked int `json:"unlocked"`
}

// FreeGames is the cached Epic free-games block
type FreeGames struct {
	UpdatedAt string      `json:"updated_at"`
	Items     []EpicOffer `json:"items"`
}

// SteamCache is the single persisted Steam document. The facade owns it
// exclusively; everything else receives it by reference or as a snapshot.
type SteamCache struct {
	Summary       *PlayerSummary             `json:"summary,omitempty"`
	Games         *GamesPayload              `json:"games,omitempty"`
	GamesAccounts map[string]AccountData     `json:"games_accounts,omitempty"`
	Prices        map[string]PriceEntry      `json:"prices,omitempty"`
	Wishlist      []WishlistItem             `json:"wishlist,omitempty"`
	Achievements  map[string]AchievementStat `json:"achievements,omitempty"`
	FreeGame      *FreeGames                 `json:"free_game,omitempty"`
}
