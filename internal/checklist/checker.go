package checklist

import "strings"

// MatchResult is the outcome for a single pattern entry within a category.
type MatchResult struct {
	Pattern  string `json:"pattern"`
	Required int    `json:"required"`
	Found    int    `json:"found"`
	Matched  []File `json:"matched,omitempty"`
}

// CategoryResult aggregates the entry results for one category.
type CategoryResult struct {
	Category string        `json:"category"`
	Required int           `json:"required"`
	Found    int           `json:"found"`
	Entries  []MatchResult `json:"entries"`
}

// MissingItem identifies one unit of shortfall for a pattern entry. An entry
// requiring three copies with none found yields three identical items.
type MissingItem struct {
	Category string `json:"category"`
	Pattern  string `json:"pattern"`
}

// GroupResult is the check outcome for one group (tower).
type GroupResult struct {
	Group         string           `json:"group"`
	TotalRequired int              `json:"total_required"`
	TotalFound    int              `json:"total_found"`
	Categories    []CategoryResult `json:"categories"`
	Missing       []MissingItem    `json:"missing,omitempty"`
}

// Complete reports whether the group satisfies every entry of the spec.
func (g GroupResult) Complete() bool {
	return len(g.Missing) == 0
}

// Classify returns the spec categories whose name occurs, case-insensitively,
// as a substring of any path segment of the file. Classification runs before
// pattern filtering so the checker never re-derives category membership from
// raw strings.
func Classify(f File, spec Spec) []string {
	var tags []string
	segments := f.Segments()
	for _, cat := range spec.Categories {
		needle := strings.ToLower(cat.Name)
		for _, seg := range segments {
			if strings.Contains(strings.ToLower(seg), needle) {
				tags = append(tags, cat.Name)
				break
			}
		}
	}
	return tags
}

// Check runs the structure check for a single group. It is a pure function of
// its inputs: the same spec and file list always produce the same result, in
// the spec's declared category and entry order.
func Check(group string, spec Spec, files []File) GroupResult {
	result := GroupResult{Group: group}

	// Tag every file with its category memberships once up front.
	tagged := make(map[string][]File, len(spec.Categories))
	for _, f := range files {
		for _, tag := range Classify(f, spec) {
			tagged[tag] = append(tagged[tag], f)
		}
	}

	for _, cat := range spec.Categories {
		catResult := CategoryResult{Category: cat.Name}
		candidates := tagged[cat.Name]

		for _, entry := range cat.Entries {
			clean, required := ParseEntry(entry)
			re := compilePattern(clean)

			var matched []File
			for _, f := range candidates {
				if re.MatchString(f.Name) {
					matched = append(matched, f)
				}
			}

			found := len(matched)
			if found > required {
				found = required
			}
			for i := 0; i < required-found; i++ {
				result.Missing = append(result.Missing, MissingItem{
					Category: cat.Name,
					Pattern:  entry,
				})
			}

			catResult.Required += required
			catResult.Found += found
			catResult.Entries = append(catResult.Entries, MatchResult{
				Pattern:  entry,
				Required: required,
				Found:    found,
				Matched:  matched,
			})
		}

		result.TotalRequired += catResult.Required
		result.TotalFound += catResult.Found
		result.Categories = append(result.Categories, catResult)
	}

	return result
}
