// Package hcp fetches a player's handicap index from their federation
// profile page.
package hcp

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Fetch loads the profile page for regNum (lookupURL carries a %s
// placeholder) and scrapes the handicap index out of it. The page marks the
// value with a .hcp-index element; some federations render it inside a
// table cell labeled "HCP".
func Fetch(ctx context.Context, client *http.Client, lookupURL, regNum string) (float64, error) {
	if client == nil {
		client = http.DefaultClient
	}

	url := fmt.Sprintf(lookupURL, regNum)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch handicap page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch handicap page: unexpected status %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("parse handicap page: %w", err)
	}

	if text := strings.TrimSpace(doc.Find(".hcp-index").First().Text()); text != "" {
		return parseHandicap(text)
	}

	// Fallback: a row whose first cell says HCP
	var text string
	doc.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() >= 2 && strings.EqualFold(strings.TrimSpace(cells.First().Text()), "HCP") {
			text = strings.TrimSpace(cells.Eq(1).Text())
			return false
		}
		return true
	})
	if text == "" {
		return 0, fmt.Errorf("handicap not found on page for %s", regNum)
	}
	return parseHandicap(text)
}

// parseHandicap accepts "12.4", "12,4" and the plus-handicap form "+1.2".
func parseHandicap(text string) (float64, error) {
	text = strings.ReplaceAll(text, ",", ".")
	plus := strings.HasPrefix(text, "+")
	text = strings.TrimPrefix(text, "+")

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable handicap %q", text)
	}
	if plus {
		value = -value
	}
	return value, nil
}
