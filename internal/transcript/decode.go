package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/nguyentantai21042004/video-summarizer/internal/config"
)

type entry struct {
	Text string `json:"text"`
}

// decode turns a raw transcript payload into a single space-joined string.
func decode(format string, payload []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch format {
	case config.FormatJSON:
		text, err = decodeJSON(payload)
	case config.FormatXML:
		text, err = decodeTimedText(payload)
	case config.FormatText:
		text = string(payload)
	default:
		return "", fmt.Errorf("unsupported transcript format %q", format)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("transcript is empty")
	}
	return text, nil
}

func decodeJSON(payload []byte) (string, error) {
	var entries []entry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return "", fmt.Errorf("parse transcript json: %w (payload: %s)", err, snippet(payload))
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if t := strings.TrimSpace(e.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " "), nil
}

// decodeTimedText reads <transcript><text start=".." dur="..">...</text></transcript>.
// Caption text is itself HTML-escaped inside the XML, so it is unescaped twice.
func decodeTimedText(payload []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("parse transcript xml: %w", err)
	}

	sel := doc.Find("transcript > text")
	if sel.Length() == 0 {
		return "", fmt.Errorf("parse transcript xml: no <text> entries (payload: %s)", snippet(payload))
	}

	parts := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(unescapeCaption(s.Text()))
		if t != "" {
			parts = append(parts, strings.Join(strings.Fields(t), " "))
		}
	})
	return strings.Join(parts, " "), nil
}

func unescapeCaption(s string) string {
	return html.UnescapeString(s)
}

func snippet(b []byte) string {
	const max = 200
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
