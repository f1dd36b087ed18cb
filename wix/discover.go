package wix

import (
	"encoding/json"
	"strings"

	"github.com/fwojciec/wixbook"
	json5 "github.com/yosuke-furukawa/json5/encoding/json5"
)

// DefaultMarker introduces the configuration blob in a page's scripts.
const DefaultMarker = "var publicModel = {"

// filenamePlaceholder is substituted with a page's JSON file name in the
// topology path template.
const filenamePlaceholder = "{filename}"

type publicModel struct {
	ExternalBaseURL string   `json:"externalBaseUrl"`
	PageList        pageList `json:"pageList"`
}

type pageList struct {
	Pages    []page     `json:"pages"`
	Topology []topology `json:"topology"`
}

type page struct {
	PageURISEO       string `json:"pageUriSEO"`
	PageJSONFileName string `json:"pageJsonFileName"`
}

type topology struct {
	BaseURL string `json:"baseUrl"`
	Parts   string `json:"parts"`
}

// restURL returns the API resource for a page JSON file name.
func (t topology) restURL(fileName string) string {
	return t.BaseURL + strings.Replace(t.Parts, filenamePlaceholder, fileName, 1)
}

// Discover returns the page URL to REST URL map described by the first
// configuration blob found in scripts. A marker that appears nowhere is
// not an error: the returned map is empty.
//
// Returns EDISCOVERY when the blob is unbalanced, does not parse, or
// has no topology record.
func Discover(scripts []string) (map[string]string, error) {
	return DiscoverWithMarker(scripts, DefaultMarker)
}

// DiscoverWithMarker is Discover with a custom marker. The blob starts at
// the first opening brace at or after the marker.
func DiscoverWithMarker(scripts []string, marker string) (map[string]string, error) {
	blob, ok, err := findBlob(scripts, marker)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]string{}, nil
	}

	model, err := parseBlob(blob)
	if err != nil {
		return nil, err
	}
	return endpoints(model)
}

func findBlob(scripts []string, marker string) (string, bool, error) {
	for _, script := range scripts {
		idx := strings.Index(script, marker)
		if idx < 0 {
			continue
		}
		open := strings.IndexByte(script[idx:], '{')
		if open < 0 {
			return "", false, wixbook.Errorf(wixbook.EDISCOVERY, "configuration blob has no opening brace")
		}
		open += idx
		end := closingBrace(script, open)
		if end < 0 {
			return "", false, wixbook.Errorf(wixbook.EDISCOVERY, "configuration blob is not terminated")
		}
		return script[open : end+1], true, nil
	}
	return "", false, nil
}

// parseBlob decodes strict JSON first and falls back to JSON5, which
// accepts the unquoted keys and trailing commas of a JavaScript literal.
func parseBlob(blob string) (*publicModel, error) {
	var model publicModel
	err := json.Unmarshal([]byte(blob), &model)
	if err == nil {
		return &model, nil
	}

	model = publicModel{}
	if err5 := json5.Unmarshal([]byte(blob), &model); err5 != nil {
		return nil, wixbook.WrapError(wixbook.EDISCOVERY, err, "parse configuration blob")
	}
	return &model, nil
}

func endpoints(model *publicModel) (map[string]string, error) {
	if len(model.PageList.Topology) == 0 {
		return nil, wixbook.Errorf(wixbook.EDISCOVERY, "configuration blob has no topology")
	}
	topo := model.PageList.Topology[0]

	out := make(map[string]string, len(model.PageList.Pages))
	for _, p := range model.PageList.Pages {
		pageURL := model.ExternalBaseURL + "/" + p.PageURISEO
		out[pageURL] = topo.restURL(p.PageJSONFileName)
	}
	return out, nil
}
