// Package catalog holds the read-only character data shown on the feed and
// the conversation the chat screen starts with.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
	"gopkg.in/yaml.v3"

	pkgerrors "github.com/zhubert/charchat/internal/errors"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// LongGreetingLimit is the grapheme count above which a greeting gets a
// Read More toggle.
const LongGreetingLimit = 120

// DefaultUserName replaces {user} when the caller passes an empty name.
const DefaultUserName = "Chad"

// Character is one entry of the feed.
type Character struct {
	ID               string `yaml:"id"`
	Name             string `yaml:"name"`
	GreetingTemplate string `yaml:"greeting"`
	ProfilePicURL    string `yaml:"profile_pic_url"`
	Likes            int    `yaml:"likes"`
	Comments         int    `yaml:"comments"`
	Message          string `yaml:"message"`
}

// Greeting returns the greeting with {char} and {user} substituted.
func (c Character) Greeting(user string) string {
	if strings.TrimSpace(user) == "" {
		user = DefaultUserName
	}
	return strings.NewReplacer("{char}", c.Name, "{user}", user).Replace(c.GreetingTemplate)
}

// IsLongGreeting reports whether the rendered greeting needs a Read More toggle.
func (c Character) IsLongGreeting(user string) bool {
	return uniseg.GraphemeClusterCount(c.Greeting(user)) > LongGreetingLimit
}

// Initial returns the first grapheme of the name, used as an avatar stand-in.
func (c Character) Initial() string {
	return Initial(c.Name)
}

// Initial returns the upper-cased first grapheme of name, or "?" if empty.
func Initial(name string) string {
	g := uniseg.NewGraphemes(strings.TrimSpace(name))
	if g.Next() {
		return strings.ToUpper(g.Str())
	}
	return "?"
}

// SeedMessage is one line of the starting conversation.
type SeedMessage struct {
	ID     string `yaml:"id"`
	Text   string `yaml:"text"`
	Sender string `yaml:"sender"`
	Italic bool   `yaml:"italic,omitempty"`
}

// Catalog is the parsed catalog document.
type Catalog struct {
	Characters []Character   `yaml:"characters"`
	History    []SeedMessage `yaml:"history"`
}

// Default parses the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile parses a catalog document from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.E(pkgerrors.Op("catalog.LoadFile"), pkgerrors.KindIO, path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	const op = pkgerrors.Op("catalog.Parse")

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, pkgerrors.E(op, pkgerrors.KindCatalog, err)
	}
	if err := c.validate(); err != nil {
		return nil, pkgerrors.E(op, pkgerrors.KindCatalog, err)
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Characters) == 0 {
		return fmt.Errorf("catalog has no characters")
	}
	seen := make(map[string]bool, len(c.Characters))
	for i, ch := range c.Characters {
		if ch.ID == "" {
			return fmt.Errorf("character %d has empty id", i)
		}
		if seen[ch.ID] {
			return fmt.Errorf("duplicate character id: %s", ch.ID)
		}
		seen[ch.ID] = true
		if strings.TrimSpace(ch.Name) == "" {
			return fmt.Errorf("character %s has empty name", ch.ID)
		}
	}

	seenMsg := make(map[string]bool, len(c.History))
	for _, m := range c.History {
		if m.ID == "" {
			return fmt.Errorf("history message with empty id")
		}
		if seenMsg[m.ID] {
			return fmt.Errorf("duplicate history id: %s", m.ID)
		}
		seenMsg[m.ID] = true
		if m.Sender != "me" && m.Sender != "other" {
			return fmt.Errorf("history message %s has sender %q, want me or other", m.ID, m.Sender)
		}
	}
	return nil
}

// Get returns the character with the given id.
func (c *Catalog) Get(id string) (Character, error) {
	for _, ch := range c.Characters {
		if ch.ID == id {
			return ch, nil
		}
	}
	return Character{}, pkgerrors.CharacterNotFound("catalog.Get", id)
}

// ChatPartner returns the character for id, or the first character when id
// is empty or unknown.
func (c *Catalog) ChatPartner(id string) Character {
	if id != "" {
		if ch, err := c.Get(id); err == nil {
			return ch
		}
	}
	return c.Characters[0]
}

// FormatCount renders a like/comment count in thousands with one decimal,
// e.g. 12340 -> "12.3k".
func FormatCount(n int) string {
	return fmt.Sprintf("%.1fk", float64(n)/1000)
}

// Segment is a run of message text; Action segments were wrapped in
// asterisks and render emphasized.
type Segment struct {
	Text   string
	Action bool
}

var actionPattern = regexp.MustCompile(`\*[^*]+\*`)

// ActionSegments splits text into plain and *action* runs. The asterisks are
// dropped from action runs. Unpaired asterisks stay in plain text.
func ActionSegments(text string) []Segment {
	var segs []Segment
	last := 0
	for _, loc := range actionPattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segs = append(segs, Segment{Text: text[last:loc[0]]})
		}
		segs = append(segs, Segment{Text: text[loc[0]+1 : loc[1]-1], Action: true})
		last = loc[1]
	}
	if last < len(text) {
		segs = append(segs, Segment{Text: text[last:]})
	}
	return segs
}
