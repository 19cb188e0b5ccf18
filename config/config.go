// Package config loads the season configuration: the schedule of weeks with
// their submission deadlines, and the optional registration allow-list. The
// schedule is data, not code, so a new season only needs a new YAML file.
package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ejfeldman7/fantasy-gbbo/model"
)

// Week is one scheduled episode week. Deadline is the instant submissions
// close and picks become public.
type Week struct {
	Number   int       `koanf:"number"`
	Label    string    `koanf:"label"`
	Deadline time.Time `koanf:"deadline"`
}

// Season is the full league configuration for one season.
type Season struct {
	Name          string   `koanf:"name"`
	Weeks         []Week   `koanf:"weeks"`
	AllowedEmails []string `koanf:"allowed_emails"`
}

// Load reads and validates a season configuration from a YAML file.
func Load(path string) (*Season, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("error loading season config %s: %w", path, err)
	}

	var s Season
	if err := k.UnmarshalWithConf("", &s, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("error parsing season config: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	// Store the allow-list pre-normalized so lookups are a simple compare.
	for i, e := range s.AllowedEmails {
		s.AllowedEmails[i] = model.NormalizeEmail(e)
	}

	return &s, nil
}

func (s *Season) validate() error {
	if len(s.Weeks) == 0 {
		return fmt.Errorf("season config has no weeks")
	}

	sort.Slice(s.Weeks, func(i, j int) bool { return s.Weeks[i].Number < s.Weeks[j].Number })

	for i, w := range s.Weeks {
		if w.Deadline.IsZero() {
			return fmt.Errorf("week %d has no deadline", w.Number)
		}
		if i > 0 {
			prev := s.Weeks[i-1]
			if w.Number != prev.Number+1 {
				return fmt.Errorf("weeks must be contiguous: %d follows %d", w.Number, prev.Number)
			}
			if !w.Deadline.After(prev.Deadline) {
				return fmt.Errorf("week %d deadline is not after week %d deadline", w.Number, prev.Number)
			}
		}
	}

	return nil
}

// WeekByNumber returns the configured week, or nil if the number is not part
// of this season.
func (s *Season) WeekByNumber(num int) *Week {
	for i := range s.Weeks {
		if s.Weeks[i].Number == num {
			return &s.Weeks[i]
		}
	}
	return nil
}

// EmailAllowed reports whether the given email may register. An empty
// allow-list means registration is open to everyone.
func (s *Season) EmailAllowed(email string) bool {
	if len(s.AllowedEmails) == 0 {
		return true
	}
	normalized := model.NormalizeEmail(email)
	for _, allowed := range s.AllowedEmails {
		if allowed == normalized {
			return true
		}
	}
	return false
}

// DisplayLabel returns the label for a week, falling back to "Week N" when
// the config does not name one.
func (w *Week) DisplayLabel() string {
	if w.Label != "" {
		return w.Label
	}
	return fmt.Sprintf("Week %d", w.Number)
}
