package corpus

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Pattern: "00:00 SpeakerID: Transcript"
var linePat = regexp.MustCompile(`^[0-9]{2}:[0-9]{2} (\S[^:]*): ([\S \t]+)$`)

// MatchLine recognizes one transcript line of the form
// "MM:SS speaker: utterance". It returns the dialogue-act tags (always nil
// for plain-text transcripts; other formats populate a comma-separated list),
// the speaker id and the trimmed utterance text. ok is false when the line
// does not match, in which case the caller should warn and skip it.
func MatchLine(line string) (daTags []string, spkID, trans string, ok bool) {
	m := linePat.FindStringSubmatch(line)
	if m == nil {
		return nil, "", "", false
	}
	trans = strings.TrimSpace(m[2])
	if trans == "" {
		return nil, "", "", false
	}
	return nil, m[1], trans, true
}

// LineReader reads a file as an ordered sequence of text lines.
type LineReader interface {
	ReadLines(path string) ([]string, error)
}

// OSLineReader reads from the local filesystem.
type OSLineReader struct{}

func (OSLineReader) ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// TextCorpus builds a Corpus from a directory of plain transcript files.
type TextCorpus struct {
	*Corpus
	dir    string
	genre  string
	reader LineReader
}

// NewTextCorpus prepares a builder over dir. genre labels every dialogue.
func NewTextCorpus(id, dir, genre string) *TextCorpus {
	return &TextCorpus{Corpus: New(id), dir: dir, genre: genre, reader: OSLineReader{}}
}

// SetLineReader replaces the file line reader, mainly for tests.
func (tc *TextCorpus) SetLineReader(r LineReader) { tc.reader = r }

// LoadDialogue ingests one transcript file into a new dialogue. Malformed
// lines are warned about and skipped; an unreadable file is fatal to the
// whole call. The dialogue must pass its sanity check afterwards.
func (tc *TextCorpus) LoadDialogue(name string) error {
	log.WithField("dialogue", name).Info("loading dialogue")
	lines, err := tc.reader.ReadLines(filepath.Join(tc.dir, name))
	if err != nil {
		return fmt.Errorf("load dialogue %s: %w", name, err)
	}
	id := strings.TrimSuffix(name, filepath.Ext(name))
	d, err := tc.AddDialogue(id, tc.genre)
	if err != nil {
		return err
	}
	var t *Turn
	var lastSpk *Speaker
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		daTags, spkID, trans, ok := MatchLine(line)
		if !ok {
			log.WithField("dialogue", id).Warnf("strange line %q", line)
			continue
		}
		spk := tc.AddSpeaker(spkID)
		if t == nil || spk != lastSpk {
			t = tc.AddTurn(d, spk)
		}
		s, err := tc.AddSent(d, t, trans, nil)
		if err != nil {
			return err
		}
		s.DATags = append(s.DATags, daTags...)
		t.DATags = append(t.DATags, daTags...)
		lastSpk = spk
	}
	return CheckDialogue(d)
}

// Setup enumerates the source directory and loads every file as a dialogue,
// then runs the corpus sanity check. Any single failed dialogue aborts the
// whole setup.
func (tc *TextCorpus) Setup() error {
	tc.SetGenreCount(tc.genre, UnlimitedGenre)
	entries, err := os.ReadDir(tc.dir)
	if err != nil {
		return fmt.Errorf("setup corpus %s: %w", tc.ID, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := tc.LoadDialogue(e.Name()); err != nil {
			return err
		}
	}
	if err := tc.SanityCheck(); err != nil {
		return fmt.Errorf("failed sanity check: %w", err)
	}
	log.WithFields(log.Fields{
		"dialogues": tc.NumDialogues(),
		"sentences": tc.NumSents(),
		"speakers":  len(tc.Speakers()),
	}).Info("corpus setup done")
	return nil
}
