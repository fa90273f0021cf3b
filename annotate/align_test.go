package annotate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpustools/dialogue-pipeline/corpus"
)

// twin builds two corpora from the same transcripts so their sentence ids
// line up, the way two independently annotated snapshots of one dataset do.
func twin(t *testing.T, dialogues map[string][]string) (*corpus.Corpus, *corpus.Corpus) {
	t.Helper()
	return buildCorpus(t, dialogues), buildCorpus(t, dialogues)
}

func TestCopyParses_TreeAndScore(t *testing.T) {
	src, dst := twin(t, map[string][]string{"d1": {"shared sentence"}})
	from := src.Dialogues[0].Sents()[0]
	from.Syntax = &corpus.Tree{Label: "T"}
	from.SyntaxProb = 0.9

	to := dst.Dialogues[0].Sents()[0]
	require.False(t, to.HasSyntax())

	a := New(Options{})
	assert.Equal(t, 1, a.CopyParses(src, dst))
	assert.Same(t, from.Syntax, to.Syntax)
	assert.Equal(t, 0.9, to.SyntaxProb)
}

func TestCopyParses_NaNScoreNeverOverwrites(t *testing.T) {
	src, dst := twin(t, map[string][]string{"d1": {"shared sentence"}})
	from := src.Dialogues[0].Sents()[0]
	from.Syntax = &corpus.Tree{Label: "T"}
	require.True(t, math.IsNaN(from.SyntaxProb))

	to := dst.Dialogues[0].Sents()[0]
	to.SyntaxProb = 0.4

	a := New(Options{})
	assert.Equal(t, 1, a.CopyParses(src, dst))
	assert.Same(t, from.Syntax, to.Syntax, "tree still copied")
	assert.Equal(t, 0.4, to.SyntaxProb, "undefined source score leaves target score alone")
}

func TestCopyParses_UnmatchedAndUnparsedSkipped(t *testing.T) {
	src := buildCorpus(t, map[string][]string{"d1": {"only in source"}})
	src.Dialogues[0].Sents()[0].Syntax = &corpus.Tree{Label: "T"}

	dst := buildCorpus(t, map[string][]string{
		"d1": {"matched", "matched but unparsed"},
		"d9": {"no counterpart"},
	})
	// only d1:1 exists on both sides with a source parse
	a := New(Options{})
	n := a.CopyParses(src, dst)
	assert.Equal(t, 1, n, "copied count matches sentences meeting all preconditions")

	sents := dst.Dialogues[0].Sents()
	assert.True(t, sents[0].HasSyntax())
	assert.False(t, sents[1].HasSyntax())
	assert.False(t, dst.Dialogues[1].Sents()[0].HasSyntax())
}

func TestCopyParses_SourceWithoutParseSkipped(t *testing.T) {
	src, dst := twin(t, map[string][]string{"d1": {"never parsed"}})
	a := New(Options{})
	assert.Equal(t, 0, a.CopyParses(src, dst))
	assert.False(t, dst.Dialogues[0].Sents()[0].HasSyntax())
}

func TestCopyParses_LeaveExistingSkips(t *testing.T) {
	src, dst := twin(t, map[string][]string{"d1": {"shared"}})
	src.Dialogues[0].Sents()[0].Syntax = &corpus.Tree{Label: "NEW"}
	kept := &corpus.Tree{Label: "KEPT"}
	dst.Dialogues[0].Sents()[0].Syntax = kept

	a := New(Options{LeaveExisting: true})
	assert.Equal(t, 0, a.CopyParses(src, dst))
	assert.Same(t, kept, dst.Dialogues[0].Sents()[0].Syntax)
}

func TestCopyParses_SourceNotModified(t *testing.T) {
	src, dst := twin(t, map[string][]string{"d1": {"one", "two"}})
	for _, s := range src.Dialogues[0].Sents() {
		s.Syntax = &corpus.Tree{Label: "T"}
	}
	a := New(Options{})
	assert.Equal(t, 2, a.CopyParses(src, dst))
	for _, s := range src.Dialogues[0].Sents() {
		assert.Equal(t, "T", s.Syntax.Label)
		assert.False(t, s.HasSyntaxProb())
	}
}
