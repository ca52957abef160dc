package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"portalcms/internal/domain/entity"
	apperrors "portalcms/pkg/errors"
)

// providerCodes maps the display name stored on a provider row to the code
// the catalog endpoint expects in the p parameter.
var providerCodes = map[string]string{
	"FiveGames":             "5G",
	"Spadegaming":           "spade",
	"JILI":                  "jili",
	"Bigpot":                "bigpot",
	"No Limit City":         "evonlc",
	"Yggdrasil":             "yggdrasil",
	"Wazdan":                "wazdan",
	"Triple Profits Gaming": "tpg",
	"Real Time Gaming":      "rtg",
	"Red Tiger":             "evoredtiger",
	"Playstar":              "playstar",
	"PG Soft":               "pgsoft",
	"Nextspin":              "nextspin",
	"NetEnt":                "netent",
	"JDB":                   "jdb",
	"FA Chai":               "fachaidirect",
	"CQ9":                   "cq9",
	"Big Time Gaming":       "btg",
	"Booongo":               "booongo",
	"Pragmatic Play":        "pp",
	"Habanero":              "habanero",
	"Elbet":                 "elbet",
	"Playtech":              "playtechsw",
}

// Client talks to the third-party game catalog. The endpoint is a legacy
// form-encoded RPC that returns games as positional arrays; requests are
// paced through a rate limiter because the vendor throttles bursts.
type Client struct {
	baseURL string
	tenant  string
	http    *http.Client
	limiter *rate.Limiter
}

func NewClient(baseURL, tenant string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tenant:  tenant,
		http:    &http.Client{Timeout: 15 * time.Second},
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
	}
}

// ProviderCode resolves the catalog code for a provider display name.
func ProviderCode(providerName string) (string, bool) {
	code, ok := providerCodes[providerName]
	return code, ok
}

// ProviderGames fetches the game list for one provider. The response is a
// JSON object keyed by game id whose values are positional arrays
// [id, name, image, demoURL, category, tabs]; rows that cannot be decoded
// are skipped rather than failing the whole list.
func (c *Client) ProviderGames(ctx context.Context, providerName string, mobile bool) ([]entity.Game, error) {
	code, ok := ProviderCode(providerName)
	if !ok {
		return nil, apperrors.BadRequest(fmt.Sprintf("no catalog code for provider %q", providerName), nil)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("cmd", "getGame")
	form.Set("p", code)
	form.Set("domain", c.tenant)
	if mobile {
		form.Set("m", "1")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.Upstream("Game catalog is unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Upstream(fmt.Sprintf("Game catalog returned status %d", resp.StatusCode), nil)
	}

	var payload map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.Upstream("Game catalog returned an unreadable response", err)
	}

	// Map order is not stable; iterate keys sorted so repeated fetches
	// return the same slice.
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	games := make([]entity.Game, 0, len(payload))
	for _, k := range keys {
		g, ok := decodeGameRow(payload[k], providerName)
		if !ok {
			continue
		}
		games = append(games, g)
	}
	return games, nil
}

func decodeGameRow(raw json.RawMessage, providerName string) (entity.Game, bool) {
	var row []any
	if err := json.Unmarshal(raw, &row); err != nil || len(row) < 2 {
		return entity.Game{}, false
	}

	g := entity.Game{
		GameID:       field(row, 0),
		GameName:     field(row, 1),
		GameImg:      field(row, 2),
		GameDemo:     field(row, 3),
		GameCategory: field(row, 4),
		GameProvider: providerName,
		Tags:         entity.ParseTags(field(row, 5)),
	}
	if g.GameID == "" || g.GameName == "" {
		return entity.Game{}, false
	}
	return g, true
}

// field stringifies a positional cell; the vendor sends numeric game ids for
// some providers.
func field(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}
