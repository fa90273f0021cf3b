package annotate

import "github.com/corpustools/dialogue-pipeline/corpus"

// Parser is the syntactic parsing capability. Parse reports whether the
// token sequence could be parsed; BestParse is only meaningful after a
// successful Parse and returns the best tree from that attempt. Every
// implementation supplies its own BestParse, so there is no capability
// flavor to dispatch on.
type Parser interface {
	Parse(tokens []string) bool
	BestParse() *corpus.Tree
}

// DefaultParser is the fallback installed when no parser is configured. It
// produces a flat bracketing over the tokens and succeeds on any non-empty
// input, which is enough to exercise the pipeline without a real parser
// service.
type DefaultParser struct {
	best *corpus.Tree
}

func (p *DefaultParser) Parse(tokens []string) bool {
	if len(tokens) == 0 {
		p.best = nil
		return false
	}
	root := &corpus.Tree{Label: "S"}
	for _, w := range tokens {
		root.Children = append(root.Children, &corpus.Tree{
			Label:    "X",
			Children: []*corpus.Tree{{Label: w}},
		})
	}
	p.best = root
	return true
}

func (p *DefaultParser) BestParse() *corpus.Tree { return p.best }
