package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aleister1102/hlsprobe/internal/common"
)

// SnapshotFromHTML builds a PageSnapshot from saved HTML without a browser.
// There is no JavaScript context, so Globals is always empty.
func SnapshotFromHTML(html string, streamAttributes []string) (*PageSnapshot, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, common.WrapError(err, "failed to parse HTML")
	}

	snapshot := &PageSnapshot{
		Globals: map[string]string{},
		HTML:    html,
	}

	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if text := s.Text(); text != "" {
			snapshot.Scripts = append(snapshot.Scripts, text)
		}
	})

	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		for _, attr := range streamAttributes {
			value := strings.TrimSpace(s.AttrOr(attr, ""))
			if ContainsManifestMarker(value) {
				snapshot.Attributes = append(snapshot.Attributes, value)
			}
		}
	})

	return snapshot, nil
}
