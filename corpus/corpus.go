package corpus

import (
	"fmt"
	"math"
)

// Speaker identifies one dialogue participant. Created on first encounter
// during ingestion and shared by pointer across all turns attributing it;
// demographic fields stay empty for plain-text sources unless a metadata
// sidecar fills them in.
type Speaker struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Age        string `json:"age,omitempty"`
	Occupation string `json:"occupation,omitempty"`
}

// Sentence is one utterance unit. Syntax and SyntaxProb are set by the
// annotator; SyntaxProb is NaN while no score has been assigned.
type Sentence struct {
	ID            string
	Num           int
	Transcription string
	Tokens        []string
	Syntax        *Tree
	SyntaxProb    float64
	DATags        []string
}

// HasSyntax reports whether a parse has been recorded for this sentence.
func (s *Sentence) HasSyntax() bool { return s.Syntax != nil }

// HasSyntaxProb reports whether the syntax score is a defined value.
func (s *Sentence) HasSyntaxProb() bool { return !math.IsNaN(s.SyntaxProb) }

func (s *Sentence) String() string {
	return fmt.Sprintf("sent %s %q", s.ID, s.Transcription)
}

// Turn is a maximal run of consecutive sentences from one speaker.
type Turn struct {
	Speaker *Speaker
	Sents   []*Sentence
	DATags  []string
}

// Dialogue is one recorded conversation, an ordered sequence of turns.
type Dialogue struct {
	ID    string
	Genre string
	Turns []*Turn
}

// Sents flattens the dialogue's sentences in turn order.
func (d *Dialogue) Sents() []*Sentence {
	var out []*Sentence
	for _, t := range d.Turns {
		out = append(out, t.Sents...)
	}
	return out
}

func (d *Dialogue) NumTurns() int { return len(d.Turns) }

func (d *Dialogue) NumSents() int {
	n := 0
	for _, t := range d.Turns {
		n += len(t.Sents)
	}
	return n
}

// Corpus owns the dialogue list (insertion order preserved), the speaker
// registry and the corpus-wide sentence index used for alignment.
type Corpus struct {
	ID          string
	Dialogues   []*Dialogue
	speakers    map[string]*Speaker
	genreCounts map[string]int
	sentIndex   map[string]*Sentence
}

func New(id string) *Corpus {
	return &Corpus{
		ID:          id,
		speakers:    make(map[string]*Speaker),
		genreCounts: make(map[string]int),
		sentIndex:   make(map[string]*Sentence),
	}
}

// AddDialogue creates an empty dialogue under the given genre and registers
// it. Dialogue ids must be unique: they prefix sentence ids, so a duplicate
// would break the corpus-wide uniqueness invariant.
func (c *Corpus) AddDialogue(id, genre string) (*Dialogue, error) {
	for _, d := range c.Dialogues {
		if d.ID == id {
			return nil, fmt.Errorf("duplicate dialogue id %q", id)
		}
	}
	d := &Dialogue{ID: id, Genre: genre}
	c.Dialogues = append(c.Dialogues, d)
	return d, nil
}

// Speaker returns the registered speaker for id, or nil.
func (c *Corpus) Speaker(id string) *Speaker { return c.speakers[id] }

// AddSpeaker returns the registered speaker for id, creating and registering
// a bare one on first use.
func (c *Corpus) AddSpeaker(id string) *Speaker {
	if spk, ok := c.speakers[id]; ok {
		return spk
	}
	spk := &Speaker{ID: id}
	c.speakers[id] = spk
	return spk
}

// Speakers returns the speaker registry keyed by id.
func (c *Corpus) Speakers() map[string]*Speaker { return c.speakers }

// SetGenreCount sets the sampling cap for a genre. Plain transcripts use
// UnlimitedGenre.
func (c *Corpus) SetGenreCount(genre string, n int) { c.genreCounts[genre] = n }

func (c *Corpus) GenreCount(genre string) int { return c.genreCounts[genre] }

// UnlimitedGenre is the genre cap meaning no sampling limit.
const UnlimitedGenre = math.MaxInt32

// AddTurn opens a new turn for spk at the end of d.
func (c *Corpus) AddTurn(d *Dialogue, spk *Speaker) *Turn {
	t := &Turn{Speaker: spk}
	d.Turns = append(d.Turns, t)
	return t
}

// AddSent appends a new sentence with the next running number to t. The
// sentence id is derived from the dialogue id and number, which keeps it
// stable across rebuilds from the same source files. Duplicate ids are
// rejected at insertion.
func (c *Corpus) AddSent(d *Dialogue, t *Turn, trans string, tokens []string) (*Sentence, error) {
	num := d.NumSents() + 1
	s := &Sentence{
		ID:            fmt.Sprintf("%s:%d", d.ID, num),
		Num:           num,
		Transcription: trans,
		Tokens:        tokens,
		SyntaxProb:    math.NaN(),
	}
	if _, dup := c.sentIndex[s.ID]; dup {
		return nil, fmt.Errorf("duplicate sentence id %q", s.ID)
	}
	c.sentIndex[s.ID] = s
	t.Sents = append(t.Sents, s)
	return s, nil
}

// SentenceByID looks a sentence up in the corpus-wide index.
func (c *Corpus) SentenceByID(id string) *Sentence { return c.sentIndex[id] }

func (c *Corpus) NumDialogues() int { return len(c.Dialogues) }

func (c *Corpus) NumSents() int {
	n := 0
	for _, d := range c.Dialogues {
		n += d.NumSents()
	}
	return n
}

// CheckDialogue verifies the structural invariants of one dialogue: at least
// one turn, no empty turns, single speaker per turn, strictly increasing
// sentence numbers.
func CheckDialogue(d *Dialogue) error {
	if len(d.Turns) == 0 {
		return fmt.Errorf("dialogue %s: no turns", d.ID)
	}
	last := 0
	for i, t := range d.Turns {
		if len(t.Sents) == 0 {
			return fmt.Errorf("dialogue %s: empty turn %d", d.ID, i+1)
		}
		if t.Speaker == nil {
			return fmt.Errorf("dialogue %s: turn %d has no speaker", d.ID, i+1)
		}
		for _, s := range t.Sents {
			if s.Num <= last {
				return fmt.Errorf("dialogue %s: sentence numbers not increasing at %s", d.ID, s.ID)
			}
			last = s.Num
		}
	}
	return nil
}

// SanityCheck verifies the whole corpus: non-empty, every dialogue
// structurally consistent, every sentence reachable through the index.
func (c *Corpus) SanityCheck() error {
	if len(c.Dialogues) == 0 {
		return fmt.Errorf("corpus %s: no dialogues", c.ID)
	}
	for _, d := range c.Dialogues {
		if err := CheckDialogue(d); err != nil {
			return err
		}
		for _, s := range d.Sents() {
			if c.sentIndex[s.ID] != s {
				return fmt.Errorf("corpus %s: sentence %s missing from index", c.ID, s.ID)
			}
		}
	}
	return nil
}
