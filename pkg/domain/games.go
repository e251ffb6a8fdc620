package domain

import "sort"

// BuildGamesPayload derives the canonical library summary from a flat list
// of games. Input order is preserved in AllGames.
func BuildGamesPayload(games []Game) *GamesPayload {
	payload := &GamesPayload{
		Count:    len(games),
		AllGames: games,
	}

	total := 0
	for _, g := range games {
		total += g.PlaytimeForever
	}
	payload.TotalPlaytime = total

	// top-5 by total playtime
	top := make([]Game, len(games))
	copy(top, games)
	sort.SliceStable(top, func(i, j int) bool { return top[i].PlaytimeForever > top[j].PlaytimeForever })
	if len(top) > 5 {
		top = top[:5]
	}
	payload.TopGames = top

	// most recently played
	for i := range games {
		if games[i].LastPlayed == 0 {
			continue
		}
		if payload.RecentGame == nil || games[i].LastPlayed > payload.RecentGame.LastPlayed {
			g := games[i]
			payload.RecentGame = &g
		}
	}

	// up to 5 games with two-week playtime, sorted desc
	recent := make([]Game, 0, 5)
	for _, g := range games {
		if g.Playtime2Weeks > 0 {
			recent = append(recent, g)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Playtime2Weeks > recent[j].Playtime2Weeks })
	if len(recent) > 5 {
		recent = recent[:5]
	}
	payload.Top2Weeks = recent

	return payload
}

// MergeAccountGames merges per-account libraries into one canonical payload.
// Accounts are visited in the given order, so names and tie-breaks follow
// the primary account first. Per appid playtimes sum, last-played takes the
// max and the first seen name wins.
func MergeAccountGames(order []string, accounts map[string]AccountData) *GamesPayload {
	merged := make(map[int]*Game)
	var appOrder []int

	for _, id := range order {
		acc, ok := accounts[id]
		if !ok || acc.Games.IsEmpty() {
			continue
		}
		for _, g := range acc.Games.AllGames {
			if existing, ok := merged[g.AppID]; ok {
				existing.PlaytimeForever += g.PlaytimeForever
				existing.Playtime2Weeks += g.Playtime2Weeks
				if g.LastPlayed > existing.LastPlayed {
					existing.LastPlayed = g.LastPlayed
				}
				continue
			}
			gc := g
			merged[g.AppID] = &gc
			appOrder = append(appOrder, g.AppID)
		}
	}

	games := make([]Game, 0, len(appOrder))
	for _, appID := range appOrder {
		games = append(games, *merged[appID])
	}
	return BuildGamesPayload(games)
}

// AccountOrder returns a deterministic account visit order for merging:
// primary first, remaining ids sorted.
func AccountOrder(accounts map[string]AccountData, primary string) []string {
	order := make([]string, 0, len(accounts))
	if _, ok := accounts[primary]; ok {
		order = append(order, primary)
	}
	rest := make([]string, 0, len(accounts))
	for id := range accounts {
		if id != primary {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}
