package entity

import (
	"encoding/json"
	"sort"
	"strings"
)

// TagSet is the explicit form of the legacy tag string: the backend encodes
// the top/hot/new flags as substring membership in a single string
// ("tophot", "new", ...), which this type folds into a bitset. The legacy
// encoding survives only in the JSON codec below.
type TagSet uint8

const (
	TagTop TagSet = 1 << iota
	TagHot
	TagNew
)

// ParseTags decodes a legacy tag string by substring membership,
// case-insensitively.
func ParseTags(s string) TagSet {
	s = strings.ToLower(s)
	var t TagSet
	if strings.Contains(s, "top") {
		t |= TagTop
	}
	if strings.Contains(s, "hot") {
		t |= TagHot
	}
	if strings.Contains(s, "new") {
		t |= TagNew
	}
	return t
}

// TagFromName maps a tag name to its flag.
func TagFromName(name string) (TagSet, bool) {
	switch strings.ToLower(name) {
	case "top":
		return TagTop, true
	case "hot":
		return TagHot, true
	case "new":
		return TagNew, true
	}
	return 0, false
}

func (t TagSet) Has(flag TagSet) bool {
	return t&flag != 0
}

func (t TagSet) Toggle(flag TagSet) TagSet {
	return t ^ flag
}

// String re-encodes the set in the legacy format, in canonical top-hot-new
// order. Substring membership is what the backend checks, so ordering is
// free to be canonical here.
func (t TagSet) String() string {
	var b strings.Builder
	if t.Has(TagTop) {
		b.WriteString("top")
	}
	if t.Has(TagHot) {
		b.WriteString("hot")
	}
	if t.Has(TagNew) {
		b.WriteString("new")
	}
	return b.String()
}

func (t TagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TagSet) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseTags(s)
	return nil
}

// Priority ranks tag combinations for the games list, most decorated first.
func (t TagSet) Priority() int {
	switch {
	case t.Has(TagTop) && t.Has(TagHot) && t.Has(TagNew):
		return 1
	case t.Has(TagTop) && t.Has(TagHot):
		return 2
	case t.Has(TagTop) && t.Has(TagNew):
		return 3
	case t.Has(TagHot) && t.Has(TagNew):
		return 4
	case t.Has(TagTop):
		return 5
	case t.Has(TagHot):
		return 6
	case t.Has(TagNew):
		return 7
	}
	return 8
}

// Game is a catalog game enriched with the backend-stored tag state. Games
// fetched straight from the catalog have no backend ID yet.
type Game struct {
	ID           string `json:"_id,omitempty"`
	GameID       string `json:"gameId"`
	GameName     string `json:"gameName"`
	GameImg      string `json:"gameImg"`
	GameDemo     string `json:"gameDemo"`
	GameCategory string `json:"gameCategory"`
	GameProvider string `json:"gameProvider"`
	Tags         TagSet `json:"gameTab"`
}

// SortGames orders games by tag priority, stable so equally decorated games
// keep their prior relative order.
func SortGames(games []Game) {
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Tags.Priority() < games[j].Tags.Priority()
	})
}
