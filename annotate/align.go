package annotate

import (
	log "github.com/sirupsen/logrus"

	"github.com/corpustools/dialogue-pipeline/corpus"
)

// CopyParses transfers syntax trees from src to dst for every dst sentence
// whose id exists in src. src is not modified. A dst sentence that already
// carries syntax is skipped when LeaveExisting is set. The confidence score
// is copied only when the source score is a defined value; a source without
// a score never clobbers the target's. Unmatched ids and sources without a
// parse are reported and skipped. Returns the number of sentences updated.
func (a *Annotator) CopyParses(src, dst *corpus.Corpus) int {
	// hash src's sentences by id so they're easy to find
	sents := make(map[string]*corpus.Sentence)
	for _, d := range src.Dialogues {
		for _, s := range d.Sents() {
			sents[s.ID] = s
		}
	}

	iD, iS, iP := 0, 0, 0
	for _, d := range dst.Dialogues {
		iD++
		log.Infof("aligning dialogue %d of %d", iD, dst.NumDialogues())
		for _, s := range d.Sents() {
			iS++
			if a.leaveExisting && s.HasSyntax() {
				continue
			}
			from, ok := sents[s.ID]
			if !ok {
				log.Warnf("can't find parsed sentence %s", s)
				continue
			}
			if !from.HasSyntax() {
				log.Warnf("null parse found for sentence %s", s)
				continue
			}
			s.Syntax = from.Syntax
			if from.HasSyntaxProb() {
				s.SyntaxProb = from.SyntaxProb
			}
			iP++
		}
		log.Infof("copied %d dialogues, %d of %d sentences", iD, iP, iS)
	}
	log.Infof("finished (copied %d parses for %d sentences)", iP, iS)
	return iP
}
