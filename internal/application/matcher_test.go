package application

import (
	"testing"

	"stock-quotes/internal/domain"

	"github.com/stretchr/testify/require"
)

const twoQuotes = `[{"symbol":"GOOG","price":2830.42},{"symbol":"AAPL","price":142.42}]`

func symbols(qs []domain.Quote) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.Symbol)
	}
	return out
}

func TestStrict_RequestOrder(t *testing.T) {
	t.Parallel()
	quotes, err := StrictMatcher{}.Match([]byte(twoQuotes), []string{"AAPL", "GOOG"})
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	require.Equal(t, []string{"AAPL", "GOOG"}, symbols(quotes))
	require.Equal(t, 142.42, quotes[0].Price)
	require.Equal(t, 2830.42, quotes[1].Price)

	quotes, err = StrictMatcher{}.Match([]byte(twoQuotes), []string{"GOOG", "AAPL"})
	require.NoError(t, err)
	require.Equal(t, []string{"GOOG", "AAPL"}, symbols(quotes))
}

func TestStrict_MissingTicker(t *testing.T) {
	t.Parallel()
	quotes, err := StrictMatcher{}.Match([]byte(`[{"symbol":"GOOG","price":2830.42}]`), []string{"AAPL"})
	require.ErrorIs(t, err, domain.ErrTickerNotFound)
	require.Contains(t, err.Error(), "AAPL")
	require.Nil(t, quotes)
}

func TestStrict_MissingTickerDiscardsFound(t *testing.T) {
	t.Parallel()
	quotes, err := StrictMatcher{}.Match([]byte(twoQuotes), []string{"AAPL", "MSFT", "GOOG"})
	require.ErrorIs(t, err, domain.ErrTickerNotFound)
	require.Contains(t, err.Error(), "MSFT")
	require.Nil(t, quotes)
}

func TestStrict_DuplicateSymbolLastWins(t *testing.T) {
	t.Parallel()
	body := `[{"symbol":"AAPL","price":1},{"symbol":"AAPL","price":2}]`
	quotes, err := StrictMatcher{}.Match([]byte(body), []string{"AAPL"})
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	require.Equal(t, 2.0, quotes[0].Price)
}

func TestStrict_DuplicateRequestRepeats(t *testing.T) {
	t.Parallel()
	quotes, err := StrictMatcher{}.Match([]byte(twoQuotes), []string{"AAPL", "AAPL"})
	require.NoError(t, err)
	require.Equal(t, []string{"AAPL", "AAPL"}, symbols(quotes))
}

func TestSet_WithChange(t *testing.T) {
	t.Parallel()
	body := `[{"symbol":"GOOG","price":2830.42,"change":10.5},{"symbol":"AAPL","price":142.42,"change":-1.2}]`
	quotes, err := SetMatcher{}.Match([]byte(body), []string{"AAPL", "GOOG"})
	require.NoError(t, err)
	require.Equal(t, []string{"GOOG", "AAPL"}, symbols(quotes))
	require.Equal(t, 2830.42, quotes[0].Price)
	require.NotNil(t, quotes[0].Change)
	require.Equal(t, 10.5, *quotes[0].Change)
	require.Equal(t, 142.42, quotes[1].Price)
	require.NotNil(t, quotes[1].Change)
	require.Equal(t, -1.2, *quotes[1].Change)
}

func TestSet_MissingTickerIsDropped(t *testing.T) {
	t.Parallel()
	quotes, err := SetMatcher{}.Match([]byte(`[{"symbol":"GOOG","price":2830.42}]`), []string{"AAPL"})
	require.NoError(t, err)
	require.Empty(t, quotes)
}

func TestSet_DuplicateRequestCollapses(t *testing.T) {
	t.Parallel()
	quotes, err := SetMatcher{}.Match([]byte(twoQuotes), []string{"AAPL", "AAPL", "AAPL"})
	require.NoError(t, err)
	require.Equal(t, []string{"AAPL"}, symbols(quotes))
}

func TestSet_PartialMatch(t *testing.T) {
	t.Parallel()
	quotes, err := SetMatcher{}.Match([]byte(twoQuotes), []string{"MSFT", "GOOG"})
	require.NoError(t, err)
	require.Equal(t, []string{"GOOG"}, symbols(quotes))
}

func TestMatch_MalformedBody(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"not json":         `<html>502</html>`,
		"object payload":   `{"Error Message":"Invalid API KEY."}`,
		"null payload":     `null`,
		"string symbol":    `[{"symbol":42,"price":1}]`,
		"string price":     `[{"symbol":"AAPL","price":"1.0"}]`,
		"missing price":    `[{"symbol":"AAPL"}]`,
		"missing symbol":   `[{"price":1}]`,
		"null element":     `[null]`,
		"trailing bytes":   `[{"symbol":"AAPL","price":1}] x`,
		"bad change type":  `[{"symbol":"AAPL","price":1,"change":"up"}]`,
		"upper-case keys":  `[{"SYMBOL":"AAPL","Price":3}]`,
		"upper-case price": `[{"symbol":"AAPL","PRICE":3}]`,
		"number element":   `[1]`,
	}
	for name, body := range cases {
		name, body := name, body
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, m := range []Matcher{StrictMatcher{}, SetMatcher{}} {
				quotes, err := m.Match([]byte(body), []string{"AAPL"})
				require.ErrorIs(t, err, ErrMalformedResponse, "mode %s", m.Mode())
				require.Nil(t, quotes)
			}
		})
	}
}

func TestDecodeQuotes_IgnoresExtraFields(t *testing.T) {
	t.Parallel()
	body := `[{"symbol":"AAPL","name":"Apple Inc.","price":201.08,"changesPercentage":0.039801,
		"change":0.08,"exchange":"NASDAQ","volume":70534466,"timestamp":1751054402}]`
	quotes, err := DecodeQuotes([]byte(body))
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	require.Equal(t, "AAPL", quotes[0].Symbol)
	require.Equal(t, 201.08, quotes[0].Price)
	require.Equal(t, 0.08, *quotes[0].Change)
}

func TestDecodeQuotes_KeysAreCaseSensitive(t *testing.T) {
	t.Parallel()
	body := `[{"symbol":"AAPL","price":1,"PRICE":2,"Symbol":"MSFT","Change":9}]`
	quotes, err := DecodeQuotes([]byte(body))
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	require.Equal(t, "AAPL", quotes[0].Symbol)
	require.Equal(t, 1.0, quotes[0].Price)
	require.Nil(t, quotes[0].Change)

	matched, err := StrictMatcher{}.Match([]byte(body), []string{"AAPL"})
	require.NoError(t, err)
	require.Equal(t, 1.0, matched[0].Price)
}

func TestDecodeQuotes_NullChange(t *testing.T) {
	t.Parallel()
	quotes, err := DecodeQuotes([]byte(`[{"symbol":"AAPL","price":1,"change":null}]`))
	require.NoError(t, err)
	require.Nil(t, quotes[0].Change)
}

func TestDecodeQuotes_EmptyArray(t *testing.T) {
	t.Parallel()
	quotes, err := DecodeQuotes([]byte(`[]`))
	require.NoError(t, err)
	require.Empty(t, quotes)
}

func TestParseMatchMode(t *testing.T) {
	t.Parallel()
	m, err := ParseMatchMode("")
	require.NoError(t, err)
	require.Equal(t, MatchStrict, m)

	m, err = ParseMatchMode("SET")
	require.NoError(t, err)
	require.Equal(t, MatchSet, m)

	_, err = ParseMatchMode("fuzzy")
	require.ErrorIs(t, err, ErrUnknownMatchMode)
}

func TestNewMatcher(t *testing.T) {
	t.Parallel()
	m, err := NewMatcher(MatchStrict)
	require.NoError(t, err)
	require.Equal(t, MatchStrict, m.Mode())

	m, err = NewMatcher(MatchSet)
	require.NoError(t, err)
	require.Equal(t, MatchSet, m.Mode())

	_, err = NewMatcher("bogus")
	require.ErrorIs(t, err, ErrUnknownMatchMode)
}
