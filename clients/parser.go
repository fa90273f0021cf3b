package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/corpustools/dialogue-pipeline/corpus"
)

// --- Parser service (/parse) ---
type ParseReq struct {
	Tokens []string `json:"tokens"`
}
type ParseResp struct {
	Success bool         `json:"success"`
	Tree    *corpus.Tree `json:"tree,omitempty"`
	Prob    *float64     `json:"prob,omitempty"`
}

// ParserClient adapts a remote parser service to the annotator's parser
// capability. A transport or decode error counts as a failed parse; batch
// runs must not be taken down by one flaky request.
type ParserClient struct {
	http *HTTP
	url  string
	best *corpus.Tree
	prob float64
}

func NewParserClient(url string, timeout time.Duration) *ParserClient {
	return &ParserClient{http: NewHTTP(timeout), url: url, prob: math.NaN()}
}

func (p *ParserClient) Parse(tokens []string) bool {
	p.best, p.prob = nil, math.NaN()
	body, _ := json.Marshal(ParseReq{Tokens: tokens})
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, p.url+"/parse", bytes.NewReader(body))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.c.Do(req)
	if err != nil {
		log.Warnf("parser service: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		log.Warn(fmt.Errorf("parser %s: %s", resp.Status, string(b)))
		return false
	}

	var out ParseResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Warn(fmt.Errorf("parser decode: %w", err))
		return false
	}
	if !out.Success || out.Tree == nil {
		return false
	}
	p.best = out.Tree
	if out.Prob != nil {
		p.prob = *out.Prob
	}
	return true
}

func (p *ParserClient) BestParse() *corpus.Tree { return p.best }

// BestProb returns the score of the last successful parse, NaN when the
// service reported none.
func (p *ParserClient) BestProb() float64 { return p.prob }
