package vocab

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestExampleUnmarshalLegacyString(t *testing.T) {
	var e Example
	if err := json.Unmarshal([]byte(`"The cat sat."`), &e); err != nil {
		t.Fatal(err)
	}
	if e.Sentence != "The cat sat." || e.Translation != "" {
		t.Fatalf("legacy form: %+v", e)
	}
}

func TestExampleUnmarshalObject(t *testing.T) {
	var e Example
	raw := `{"sentence": "The cat sat.", "translation": "Con mèo ngồi."}`
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatal(err)
	}
	if e.Sentence != "The cat sat." || e.Translation != "Con mèo ngồi." {
		t.Fatalf("object form: %+v", e)
	}
}

func TestExampleUnmarshalMixedList(t *testing.T) {
	var got []Example
	raw := `["plain sentence", {"sentence": "s", "translation": "t"}]`
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Sentence != "plain sentence" || got[1].Translation != "t" {
		t.Fatalf("mixed list: %+v", got)
	}
}

func TestPayloadValidate(t *testing.T) {
	valid := Payload{
		Word:     "cat",
		Meanings: []Meaning{{Vietnamese: "con mèo"}},
	}
	if err := valid.Validate(); err != nil {
		t.Fatal(err)
	}

	for name, p := range map[string]Payload{
		"no word":     {Meanings: []Meaning{{Vietnamese: "x"}}},
		"no meanings": {Word: "cat"},
	} {
		if err := p.Validate(); !errors.Is(err, ErrInvalidCardData) {
			t.Errorf("%s: err = %v, want ErrInvalidCardData", name, err)
		}
	}
}
