// Package export writes the card collection as a spreadsheet-friendly
// CSV file.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/minhvu/wordvault/internal/vocab"
)

// Header is the fixed column order of an export.
var Header = []string{
	"Word",
	"Phonetic",
	"Meaning (First)",
	"Vietnamese",
	"Example Sentence",
	"Example Translation",
	"SRS Level",
	"Next Review",
}

// bom is the UTF-8 byte-order mark. Excel needs it to pick up
// Vietnamese diacritics.
var bom = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the cards to w: BOM, header, one row per card. Every
// field is quoted, with embedded quotes doubled. encoding/csv only
// quotes fields that need it, so the rows are assembled by hand.
func WriteCSV(w io.Writer, cards []*vocab.Card) error {
	if _, err := w.Write(bom); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}
	if err := writeRow(w, Header); err != nil {
		return err
	}
	for _, c := range cards {
		if err := writeRow(w, cardRow(c)); err != nil {
			return err
		}
	}
	return nil
}

func cardRow(c *vocab.Card) []string {
	var meaning, vietnamese string
	if m := c.FirstMeaning(); m != nil {
		meaning = m.Definition
		vietnamese = m.Vietnamese
	}
	var sentence, translation string
	if len(c.Examples) > 0 {
		sentence = c.Examples[0].Sentence
		translation = c.Examples[0].Translation
	}
	return []string{
		c.Word,
		c.Phonetic,
		meaning,
		vietnamese,
		sentence,
		translation,
		strconv.Itoa(c.SRSLevel),
		formatNextReview(c.NextReview),
	}
}

func formatNextReview(millis int64) string {
	if millis == 0 {
		return ""
	}
	return time.UnixMilli(millis).UTC().Format(time.RFC3339)
}

func writeRow(w io.Writer, fields []string) error {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteString("\r\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	return nil
}
