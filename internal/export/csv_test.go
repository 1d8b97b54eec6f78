package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/minhvu/wordvault/internal/vocab"
)

func TestWriteCSVStartsWithBOMAndHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("missing UTF-8 BOM")
	}
	want := `"Word","Phonetic","Meaning (First)","Vietnamese","Example Sentence","Example Translation","SRS Level","Next Review"` + "\r\n"
	if string(out[3:]) != want {
		t.Fatalf("header = %q", string(out[3:]))
	}
}

func TestWriteCSVRow(t *testing.T) {
	card := &vocab.Card{
		Word:     "cat",
		Phonetic: "/kaet/",
		Meanings: []vocab.Meaning{
			{PartOfSpeech: "noun", Vietnamese: "con mèo", Definition: "a small feline"},
			{PartOfSpeech: "verb", Vietnamese: "quất", Definition: "to whip"},
		},
		Examples: []vocab.Example{
			{Sentence: `He said "cat" twice.`, Translation: "Anh ấy nói \"mèo\" hai lần."},
		},
		SRSLevel:   3,
		NextReview: 1_700_000_000_000,
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, []*vocab.Card{card}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\r\n"), "\r\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d", len(lines))
	}
	row := lines[1]

	// Only the first meaning and example are exported.
	if strings.Contains(row, "quất") {
		t.Fatalf("second meaning leaked into row: %q", row)
	}
	// Embedded quotes are doubled.
	if !strings.Contains(row, `"He said ""cat"" twice."`) {
		t.Fatalf("row = %q", row)
	}
	if !strings.Contains(row, `"2023-11-14T22:13:20Z"`) {
		t.Fatalf("next review rendering in %q", row)
	}
	if !strings.Contains(row, `"3"`) {
		t.Fatalf("level rendering in %q", row)
	}
}

func TestWriteCSVUnscheduledCard(t *testing.T) {
	card := &vocab.Card{
		Word:     "dog",
		Meanings: []vocab.Meaning{{Vietnamese: "con chó"}},
		SRSLevel: 1,
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, []*vocab.Card{card}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\r\n"), "\r\n")
	row := lines[1]
	if !strings.HasSuffix(row, `"1",""`) {
		t.Fatalf("row = %q", row)
	}
}
