package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	assert.Equal(t, TagTop|TagHot|TagNew, ParseTags("tophotnew"))
	assert.Equal(t, TagTop, ParseTags("top"))
	assert.Equal(t, TagHot|TagNew, ParseTags("hotnew"))
	assert.Equal(t, TagSet(0), ParseTags(""))

	// Legacy strings come in any casing and any order.
	assert.Equal(t, TagTop|TagNew, ParseTags("NEWtop"))
}

func TestTagSetRoundTrip(t *testing.T) {
	tags := ParseTags("newhot")
	assert.Equal(t, "hotnew", tags.String())
	assert.Equal(t, tags, ParseTags(tags.String()))
}

func TestTagToggle(t *testing.T) {
	tags := ParseTags("top")
	tags = tags.Toggle(TagHot)
	assert.Equal(t, "tophot", tags.String())

	tags = tags.Toggle(TagTop)
	assert.Equal(t, "hot", tags.String())
}

func TestTagFromName(t *testing.T) {
	for name, want := range map[string]TagSet{"top": TagTop, "hot": TagHot, "new": TagNew} {
		got, ok := TagFromName(name)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := TagFromName("featured")
	assert.False(t, ok)
}

func TestTagPriorityRanking(t *testing.T) {
	ranks := []struct {
		tab  string
		want int
	}{
		{"tophotnew", 1},
		{"tophot", 2},
		{"topnew", 3},
		{"hotnew", 4},
		{"top", 5},
		{"hot", 6},
		{"new", 7},
		{"", 8},
	}
	for _, r := range ranks {
		assert.Equal(t, r.want, ParseTags(r.tab).Priority(), "tab %q", r.tab)
	}
}

func TestSortGames(t *testing.T) {
	games := []Game{
		{GameID: "d", Tags: ParseTags("")},
		{GameID: "b", Tags: ParseTags("top")},
		{GameID: "a", Tags: ParseTags("tophotnew")},
		{GameID: "c", Tags: ParseTags("hot")},
	}
	SortGames(games)

	order := make([]string, len(games))
	for i, g := range games {
		order[i] = g.GameID
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, order)
}

func TestSortGamesStable(t *testing.T) {
	games := []Game{
		{GameID: "first", Tags: TagTop},
		{GameID: "second", Tags: TagTop},
		{GameID: "third", Tags: TagTop},
	}
	SortGames(games)

	assert.Equal(t, "first", games[0].GameID)
	assert.Equal(t, "second", games[1].GameID)
	assert.Equal(t, "third", games[2].GameID)
}

func TestGameTagJSONUsesLegacyString(t *testing.T) {
	g := Game{GameID: "g1", Tags: TagTop | TagNew}
	data, err := json.Marshal(g)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"gameTab":"topnew"`)

	var back Game
	assert.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, g.Tags, back.Tags)
}
