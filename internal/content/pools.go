// Package content ships the embedded name and scenario pools the
// assembler draws puzzle instances from. Pools are static YAML documents
// validated once at load; everything downstream may index them freely.
package content

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"arcanum.games/engine/internal/domain"
)

// CipherPack seeds symbol-substitution ciphers.
type CipherPack struct {
	Title     string   `yaml:"title"`
	Narrative string   `yaml:"narrative"`
	Symbols   []string `yaml:"symbols"`
	Alphabet  string   `yaml:"alphabet"`
}

// GridTheme is one themed logic grid: a primary category plus at least
// three secondary categories of matching width.
type GridTheme struct {
	Name       string            `yaml:"name"`
	Narrative  string            `yaml:"narrative"`
	Primary    domain.Category   `yaml:"primary"`
	Categories []domain.Category `yaml:"categories"`
}

// GridPack holds the logic-grid themes.
type GridPack struct {
	Themes []GridTheme `yaml:"themes"`
}

// PeoplePack is the shared cast used by scheduling, matching and social
// deduction.
type PeoplePack struct {
	Names   []string `yaml:"names"`
	Pairing struct {
		Title     string `yaml:"title"`
		Narrative string `yaml:"narrative"`
	} `yaml:"pairing"`
}

// OrderingScenario is one sequence-reconstruction setting.
type OrderingScenario struct {
	Title     string   `yaml:"title"`
	Narrative string   `yaml:"narrative"`
	Items     []string `yaml:"items"`
}

// OrderingPack holds the ordering scenarios.
type OrderingPack struct {
	Scenarios []OrderingScenario `yaml:"scenarios"`
}

// SchedulingPack seeds the meeting scheduler.
type SchedulingPack struct {
	Title     string   `yaml:"title"`
	Narrative string   `yaml:"narrative"`
	Slots     []string `yaml:"slots"`
}

// SocialSetting frames one whodunit.
type SocialSetting struct {
	Title     string `yaml:"title"`
	Narrative string `yaml:"narrative"`
}

// SocialPack holds whodunit settings and alibi templates; each template
// takes the suspect's name as its single %s verb.
type SocialPack struct {
	Settings []SocialSetting `yaml:"settings"`
	Alibis   []string        `yaml:"alibis"`
}

// Scenario is a fixed-answer setting for the common-sense, dilemma and
// agent-simulation types: a set of options, the intended answer, and a
// prose elimination for every other option.
type Scenario struct {
	Title        string            `yaml:"title"`
	Narrative    string            `yaml:"narrative"`
	Options      []string          `yaml:"options"`
	Answer       string            `yaml:"answer"`
	Eliminations map[string]string `yaml:"eliminations"`
}

// Theme is a UI skin unlocked by progression.
type Theme struct {
	Name     string `yaml:"name"`
	UnlockAt int    `yaml:"unlock_at"`
}

// Pools is every pack, loaded and validated.
type Pools struct {
	Cipher      CipherPack
	Grid        GridPack
	People      PeoplePack
	Ordering    OrderingPack
	Scheduling  SchedulingPack
	Social      SocialPack
	CommonSense []Scenario
	Dilemma     []Scenario
	Agent       []Scenario
	Themes      []Theme
}

// maxElements is the widest domain any difficulty asks for.
const maxElements = 6

// Load parses and validates the embedded packs.
func Load() (*Pools, error) {
	var p Pools
	if err := readPack("packs/cipher.yaml", &p.Cipher); err != nil {
		return nil, err
	}
	if err := readPack("packs/logic_grid.yaml", &p.Grid); err != nil {
		return nil, err
	}
	if err := readPack("packs/people.yaml", &p.People); err != nil {
		return nil, err
	}
	if err := readPack("packs/ordering.yaml", &p.Ordering); err != nil {
		return nil, err
	}
	if err := readPack("packs/scheduling.yaml", &p.Scheduling); err != nil {
		return nil, err
	}
	if err := readPack("packs/social.yaml", &p.Social); err != nil {
		return nil, err
	}
	var sc struct {
		CommonSense []Scenario `yaml:"common_sense"`
		Dilemma     []Scenario `yaml:"dilemma"`
		Agent       []Scenario `yaml:"agent"`
	}
	if err := readPack("packs/scenarios.yaml", &sc); err != nil {
		return nil, err
	}
	p.CommonSense, p.Dilemma, p.Agent = sc.CommonSense, sc.Dilemma, sc.Agent
	var th struct {
		Themes []Theme `yaml:"themes"`
	}
	if err := readPack("packs/themes.yaml", &th); err != nil {
		return nil, err
	}
	p.Themes = th.Themes
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func readPack(name string, v any) error {
	b, err := packFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("content: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("content: parse %s: %w", name, err)
	}
	return nil
}

// validate checks every pack is wide enough for the hardest difficulty
// and internally consistent, so the assembler never has to.
func (p *Pools) validate() error {
	if len(p.Cipher.Symbols) < maxElements {
		return fmt.Errorf("content: cipher needs %d symbols, have %d", maxElements, len(p.Cipher.Symbols))
	}
	if err := distinct("cipher symbols", p.Cipher.Symbols); err != nil {
		return err
	}
	if len(p.Cipher.Alphabet) < 2*maxElements {
		return fmt.Errorf("content: cipher alphabet too small")
	}
	if len(p.Grid.Themes) == 0 {
		return fmt.Errorf("content: no logic-grid themes")
	}
	for _, t := range p.Grid.Themes {
		if len(t.Primary.Elements) < maxElements {
			return fmt.Errorf("content: grid theme %q primary too small", t.Name)
		}
		if err := distinct("grid primary", t.Primary.Elements); err != nil {
			return err
		}
		if len(t.Categories) < 3 {
			return fmt.Errorf("content: grid theme %q needs 3 categories", t.Name)
		}
		for _, c := range t.Categories {
			if len(c.Elements) < maxElements {
				return fmt.Errorf("content: grid theme %q category %q too small", t.Name, c.Name)
			}
			if err := distinct("grid category", c.Elements); err != nil {
				return err
			}
		}
	}
	if len(p.People.Names) < maxElements {
		return fmt.Errorf("content: needs %d people names", maxElements)
	}
	if err := distinct("people", p.People.Names); err != nil {
		return err
	}
	if len(p.Ordering.Scenarios) == 0 {
		return fmt.Errorf("content: no ordering scenarios")
	}
	for _, s := range p.Ordering.Scenarios {
		if len(s.Items) < maxElements {
			return fmt.Errorf("content: ordering scenario %q too small", s.Title)
		}
		if err := distinct("ordering items", s.Items); err != nil {
			return err
		}
	}
	if len(p.Scheduling.Slots) < maxElements-1 {
		return fmt.Errorf("content: needs %d scheduling slots", maxElements-1)
	}
	if err := distinct("slots", p.Scheduling.Slots); err != nil {
		return err
	}
	if len(p.Social.Settings) == 0 || len(p.Social.Alibis) < maxElements-1 {
		return fmt.Errorf("content: social pack too small")
	}
	for name, list := range map[string][]Scenario{
		"common_sense": p.CommonSense,
		"dilemma":      p.Dilemma,
		"agent":        p.Agent,
	} {
		if len(list) == 0 {
			return fmt.Errorf("content: no %s scenarios", name)
		}
		for _, s := range list {
			if err := s.check(name); err != nil {
				return err
			}
		}
	}
	if len(p.Themes) == 0 {
		return fmt.Errorf("content: no themes")
	}
	return nil
}

func (s *Scenario) check(kind string) error {
	if len(s.Options) < maxElements {
		return fmt.Errorf("content: %s scenario %q needs %d options", kind, s.Title, maxElements)
	}
	if err := distinct("options", s.Options); err != nil {
		return err
	}
	answer := false
	for _, o := range s.Options {
		if o == s.Answer {
			answer = true
			continue
		}
		if s.Eliminations[o] == "" {
			return fmt.Errorf("content: %s scenario %q has no elimination for %q", kind, s.Title, o)
		}
	}
	if !answer {
		return fmt.Errorf("content: %s scenario %q answer %q not among options", kind, s.Title, s.Answer)
	}
	return nil
}

func distinct(what string, xs []string) error {
	seen := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		if x == "" {
			return fmt.Errorf("content: empty entry in %s", what)
		}
		if _, dup := seen[x]; dup {
			return fmt.Errorf("content: duplicate %q in %s", x, what)
		}
		seen[x] = struct{}{}
	}
	return nil
}
