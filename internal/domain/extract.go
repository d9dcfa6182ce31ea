package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const extractPrompt = `Extract as JSON: {"contact_name":"","organization":"","phone":"","email":"","products":"","quantity":"","budget":"","timeline":"","next_action":"","next_action_date":"","notes":""}`

const extractTemperature = 0.1

var (
	jsonObjectRe     = regexp.MustCompile(`(?s)\{.*\}`)
	quantityPrefixRe = regexp.MustCompile(`\d+\s*[x×]\s*`)
)

// parseExtraction isolates the outermost {...} in an LLM reply and decodes it.
// Replies without braces are parsed as-is so the JSON error surfaces.
func parseExtraction(reply string) (map[string]any, error) {
	reply = strings.TrimSpace(reply)
	if m := jsonObjectRe.FindString(reply); m != "" {
		reply = m
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(reply), &data); err != nil {
		return nil, fmt.Errorf("decode model reply: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("decode model reply: not a JSON object")
	}

	if p, ok := data["products"].(string); ok && p != "" {
		data["products"] = stripQuantity(p)
	}

	return data, nil
}

// stripQuantity removes "3x " / "2 × " style prefixes from a products string.
func stripQuantity(products string) string {
	return strings.TrimSpace(quantityPrefixRe.ReplaceAllString(products, ""))
}
