package annotate

import (
	log "github.com/sirupsen/logrus"

	"github.com/corpustools/dialogue-pipeline/corpus"
)

// Annotator drives a parser over corpora and transfers annotations between
// them. LeaveExisting is per-annotator rather than ambient state, so two
// runs with different policies never interfere.
type Annotator struct {
	parser        Parser
	tok           Tokenizer
	leaveExisting bool
}

// Options configures an Annotator. A nil Parser is replaced with
// DefaultParser on first use, with a logged warning. A nil Tokenizer gets
// the WordTokenizer default.
type Options struct {
	Parser        Parser
	Tokenizer     Tokenizer
	LeaveExisting bool
}

func New(opts Options) *Annotator {
	tok := opts.Tokenizer
	if tok == nil {
		tok = WordTokenizer{}
	}
	return &Annotator{
		parser:        opts.Parser,
		tok:           tok,
		leaveExisting: opts.LeaveExisting,
	}
}

// LeaveExisting reports whether already-annotated sentences are skipped.
func (a *Annotator) LeaveExisting() bool { return a.leaveExisting }

// Parse runs the parser over every sentence of every dialogue, in corpus
// order, mutating the corpus in place. Sentences that already carry syntax
// are skipped when LeaveExisting is set; otherwise every sentence is
// re-parsed, with a tree assigned on success and the syntax cleared on
// failure. Sentences with no tokens are skipped and left as they are.
// Returns the number of sentences successfully parsed.
func (a *Annotator) Parse(c *corpus.Corpus) int {
	if a.parser == nil {
		log.Warn("no parser configured, installing default")
		a.parser = &DefaultParser{}
	}
	iD, iS, iP := 0, 0, 0
	for _, d := range c.Dialogues {
		iD++
		log.Infof("parsing dialogue %d of %d", iD, c.NumDialogues())
		for _, s := range d.Sents() {
			if a.leaveExisting && s.HasSyntax() {
				continue
			}
			tokens := s.Tokens
			if tokens == nil {
				tokens = a.tok.Tokenize(s.Transcription)
			}
			iS++
			if len(tokens) == 0 {
				log.Warnf("no words in sentence %d %s, skipping", iS, s.ID)
				continue
			}
			if a.parser.Parse(tokens) {
				iP++
				s.Syntax = a.parser.BestParse()
			} else {
				log.Debugf("parse failed for sentence %s", s.ID)
				s.Syntax = nil
			}
		}
		log.Infof("parser done %d dialogues, %d sentences", iD, iS)
	}
	log.Infof("finished (parsed %d sentences)", iP)
	return iP
}
