package corpus

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// SpeakerMeta is one entry of the demographic sidecar file.
type SpeakerMeta struct {
	Name       string `yaml:"name"`
	Gender     string `yaml:"gender"`
	Age        string `yaml:"age"`
	Occupation string `yaml:"occupation"`
}

// LoadSpeakerMeta reads a YAML map of speaker id to demographics and fills in
// the matching registered speakers. Ids with no registered speaker are
// reported and skipped; identity fields themselves are never changed.
func (c *Corpus) LoadSpeakerMeta(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("speaker metadata: %w", err)
	}
	var meta map[string]SpeakerMeta
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		return fmt.Errorf("speaker metadata %s: %w", path, err)
	}
	for id, m := range meta {
		spk := c.Speaker(id)
		if spk == nil {
			log.Warnf("speaker metadata for unknown speaker %q", id)
			continue
		}
		spk.Name = m.Name
		spk.Gender = m.Gender
		spk.Age = m.Age
		spk.Occupation = m.Occupation
	}
	return nil
}
