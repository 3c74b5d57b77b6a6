package pipeline

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/pagecap/menumap"
)

// fencedJSONPattern extracts the payload of the first fenced code
// block, with or without a json language tag.
var fencedJSONPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// menuPage mirrors one entry of the model's menu response. Priority
// and depth are pointers so omitted fields can fall back to defaults
// instead of zero values.
type menuPage struct {
	URL      string   `json:"url"`
	Title    string   `json:"title"`
	Priority *float64 `json:"priority"`
	Depth    *int     `json:"depth"`
}

type menuResponse struct {
	Pages []menuPage `json:"pages"`
}

// parseMenuResponse decodes the model's menu reply. It prefers the
// first fenced code block and falls back to treating the whole reply
// as JSON, since models sometimes skip the fence.
func parseMenuResponse(text string) (*menuResponse, error) {
	payload := strings.TrimSpace(text)
	if m := fencedJSONPattern.FindStringSubmatch(text); m != nil {
		payload = m[1]
	}

	var resp menuResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return nil, menumap.Errorf(menumap.EINVALID, "menu response is not valid JSON: %v", err)
	}
	if resp.Pages == nil {
		return nil, menumap.Errorf(menumap.EINVALID, "menu response has no pages array")
	}
	return &resp, nil
}
