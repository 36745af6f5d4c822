// Package skills turns user supplied skill text into skill sets.
package skills

import "strings"

// Parse splits comma-separated text into trimmed, non-empty skills.
// Repeated skills are dropped; the first spelling wins.
func Parse(text string) []string {
	return Normalize(strings.Split(text, ","))
}

// Normalize trims every entry, drops empty ones and removes exact duplicates
// while keeping the original order.
func Normalize(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Join renders a skill set back into the comma-separated form.
func Join(skills []string) string {
	return strings.Join(skills, ", ")
}
