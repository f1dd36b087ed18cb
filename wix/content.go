package wix

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/fwojciec/wixbook"
)

// TextStyleID marks the rich text components that carry body text.
const TextStyleID = "txtNew"

// PageResponse is the part of a page's API resource that holds its text.
type PageResponse struct {
	Structure struct {
		Components []Component `json:"components"`
	} `json:"structure"`
	Data struct {
		// DocumentData is decoded per entry on demand; entries of other
		// shapes are common and are ignored.
		DocumentData map[string]json.RawMessage `json:"document_data"`
	} `json:"data"`
}

// Component is a placed element of a page.
type Component struct {
	ID        string `json:"id"`
	StyleID   string `json:"styleId"`
	DataQuery string `json:"dataQuery"`
}

type textItem struct {
	Text string `json:"text"`
}

// SelectContent returns the longest text among the text components of
// resp. On equal length the earlier component wins.
//
// Returns ECONTENT when resp has no text components or none of them
// resolves to non-empty text.
func SelectContent(resp *PageResponse) (string, error) {
	var (
		best       string
		bestLen    int
		found      bool
		candidates int
	)
	for _, c := range resp.Structure.Components {
		if c.StyleID != TextStyleID {
			continue
		}
		candidates++

		text, ok := lookupText(resp.Data.DocumentData, dataKey(c.DataQuery))
		if !ok {
			continue
		}
		// Length is in runes, not UTF-16 units: text outside the BMP can
		// rank differently than in a browser.
		if n := utf8.RuneCountInString(text); !found || n > bestLen {
			best, bestLen, found = text, n, true
		}
	}

	if candidates == 0 {
		return "", wixbook.Errorf(wixbook.ECONTENT, "no %s components", TextStyleID)
	}
	if !found {
		return "", wixbook.Errorf(wixbook.ECONTENT, "none of %d %s components has text", candidates, TextStyleID)
	}
	return best, nil
}

// dataKey strips the reference sigil from a data query ("#abc" -> "abc").
func dataKey(query string) string {
	if query == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(query)
	return query[size:]
}

func lookupText(data map[string]json.RawMessage, key string) (string, bool) {
	if key == "" {
		return "", false
	}
	raw, ok := data[key]
	if !ok {
		return "", false
	}
	var item textItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return "", false
	}
	return item.Text, item.Text != ""
}
