// Package careers holds the industry skill profiles and evaluates skill gaps against them.
package careers

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/yigit/mentorbridge/internal/pkg/apperrors"
	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var defaultProfiles []byte

// Profile is the ordered list of skills required for a career goal.
type Profile struct {
	Goal   string   `yaml:"goal" json:"goal"`
	Skills []string `yaml:"skills" json:"skills"`
}

// Gap is the result of comparing a skill set with a profile.
type Gap struct {
	Goal          string   `json:"goal"`
	Required      []string `json:"required"`
	Missing       []string `json:"missing"`
	CompletionPct int      `json:"completionPct"`
}

// Step is one entry of a learning roadmap, numbered from 1.
type Step struct {
	Number int    `json:"number"`
	Skill  string `json:"skill"`
}

// Catalog is an immutable, ordered set of profiles.
type Catalog struct {
	profiles []Profile
	byGoal   map[string]int
}

type catalogFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultProfiles)
	if err != nil {
		panic(fmt.Sprintf("careers: embedded catalog is invalid: %v", err))
	}
	return c
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read career catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML. Every profile needs a unique goal and at least one skill.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse career catalog: %w", err)
	}

	c := &Catalog{byGoal: make(map[string]int, len(file.Profiles))}
	for _, p := range file.Profiles {
		p.Goal = strings.TrimSpace(p.Goal)
		if p.Goal == "" {
			return nil, fmt.Errorf("career profile without goal")
		}
		if len(p.Skills) == 0 {
			return nil, fmt.Errorf("career profile %q has no skills", p.Goal)
		}
		if _, dup := c.byGoal[p.Goal]; dup {
			return nil, fmt.Errorf("duplicate career profile %q", p.Goal)
		}
		c.byGoal[p.Goal] = len(c.profiles)
		c.profiles = append(c.profiles, p)
	}
	return c, nil
}

// Profiles returns a copy of all profiles in catalog order.
func (c *Catalog) Profiles() []Profile {
	out := make([]Profile, len(c.profiles))
	for i, p := range c.profiles {
		out[i] = Profile{Goal: p.Goal, Skills: append([]string(nil), p.Skills...)}
	}
	return out
}

// Required returns the skills of goal, or ErrNotConfigured.
func (c *Catalog) Required(goal string) ([]string, error) {
	i, ok := c.byGoal[goal]
	if !ok {
		return nil, notConfigured(goal)
	}
	return append([]string(nil), c.profiles[i].Skills...), nil
}

// Gap lists the required skills of goal that userSkills lacks, in profile order,
// with completion = floor(100 * matched / required).
func (c *Catalog) Gap(userSkills []string, goal string) (*Gap, error) {
	required, err := c.Required(goal)
	if err != nil {
		return nil, err
	}

	have := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		have[s] = struct{}{}
	}

	missing := make([]string, 0, len(required))
	matched := 0
	for _, s := range required {
		if _, ok := have[s]; ok {
			matched++
			continue
		}
		missing = append(missing, s)
	}

	return &Gap{
		Goal:          goal,
		Required:      required,
		Missing:       missing,
		CompletionPct: matched * 100 / len(required),
	}, nil
}

// Roadmap returns the profile skills of goal as numbered learning steps.
func (c *Catalog) Roadmap(goal string) ([]Step, error) {
	required, err := c.Required(goal)
	if err != nil {
		return nil, err
	}
	steps := make([]Step, len(required))
	for i, s := range required {
		steps[i] = Step{Number: i + 1, Skill: s}
	}
	return steps, nil
}

func notConfigured(goal string) error {
	if goal == "" {
		return apperrors.NewCustomError(apperrors.ErrNotConfigured, "career goal is not set").
			WithStatusMsg("Set a career goal in your profile first")
	}
	return apperrors.NewCustomError(apperrors.ErrNotConfigured, fmt.Sprintf("career goal %q is not configured", goal)).
		WithDetails(map[string]interface{}{"goal": goal})
}
