package corpus

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// On-disk corpus layout. Sentences reference speakers by id; the registry and
// the sentence index are rebuilt on read. SyntaxProb is a pointer so that NaN
// ("no score") round-trips as an absent field, which encoding/json could not
// represent otherwise.

type sentRecord struct {
	ID         string   `json:"id"`
	Num        int      `json:"num"`
	Trans      string   `json:"transcription"`
	Tokens     []string `json:"tokens,omitempty"`
	Syntax     *Tree    `json:"syntax,omitempty"`
	SyntaxProb *float64 `json:"syntax_prob,omitempty"`
	DATags     []string `json:"da_tags,omitempty"`
}

type turnRecord struct {
	Speaker string       `json:"speaker"`
	Sents   []sentRecord `json:"sentences"`
	DATags  []string     `json:"da_tags,omitempty"`
}

type dialogueRecord struct {
	ID    string       `json:"id"`
	Genre string       `json:"genre"`
	Turns []turnRecord `json:"turns"`
}

type corpusRecord struct {
	ID        string              `json:"id"`
	Speakers  map[string]*Speaker `json:"speakers"`
	Genres    map[string]int      `json:"genre_counts,omitempty"`
	Dialogues []dialogueRecord    `json:"dialogues"`
}

// WriteFile serializes the corpus as indented JSON.
func WriteFile(c *Corpus, path string) error {
	rec := corpusRecord{
		ID:       c.ID,
		Speakers: c.speakers,
		Genres:   c.genreCounts,
	}
	for _, d := range c.Dialogues {
		dr := dialogueRecord{ID: d.ID, Genre: d.Genre}
		for _, t := range d.Turns {
			tr := turnRecord{Speaker: t.Speaker.ID, DATags: t.DATags}
			for _, s := range t.Sents {
				sr := sentRecord{
					ID:     s.ID,
					Num:    s.Num,
					Trans:  s.Transcription,
					Tokens: s.Tokens,
					Syntax: s.Syntax,
					DATags: s.DATags,
				}
				if !math.IsNaN(s.SyntaxProb) {
					p := s.SyntaxProb
					sr.SyntaxProb = &p
				}
				tr.Sents = append(tr.Sents, sr)
			}
			dr.Turns = append(dr.Turns, tr)
		}
		rec.Dialogues = append(rec.Dialogues, dr)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write corpus: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

// ReadFile deserializes a corpus written by WriteFile, rebuilding the speaker
// registry and the sentence index.
func ReadFile(path string) (*Corpus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	var rec corpusRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}

	c := New(rec.ID)
	for id, spk := range rec.Speakers {
		c.speakers[id] = spk
	}
	for g, n := range rec.Genres {
		c.genreCounts[g] = n
	}
	for _, dr := range rec.Dialogues {
		d, err := c.AddDialogue(dr.ID, dr.Genre)
		if err != nil {
			return nil, err
		}
		for _, tr := range dr.Turns {
			spk := c.AddSpeaker(tr.Speaker)
			t := c.AddTurn(d, spk)
			t.DATags = tr.DATags
			for _, sr := range tr.Sents {
				s := &Sentence{
					ID:            sr.ID,
					Num:           sr.Num,
					Transcription: sr.Trans,
					Tokens:        sr.Tokens,
					Syntax:        sr.Syntax,
					SyntaxProb:    math.NaN(),
					DATags:        sr.DATags,
				}
				if sr.SyntaxProb != nil {
					s.SyntaxProb = *sr.SyntaxProb
				}
				if _, dup := c.sentIndex[s.ID]; dup {
					return nil, fmt.Errorf("read corpus %s: duplicate sentence id %q", path, s.ID)
				}
				c.sentIndex[s.ID] = s
				t.Sents = append(t.Sents, s)
			}
		}
	}
	return c, nil
}
