package checklist

import "strings"

// UnknownGroup buckets files whose path carries no recognizable category
// segment. It is excluded from group totals unless it is the only bucket.
const UnknownGroup = "unknown"

// Summary is the aggregated outcome of checking every inferred group.
type Summary struct {
	SpecName       string        `json:"spec_name"`
	CompleteGroups int           `json:"complete_groups"`
	TotalGroups    int           `json:"total_groups"`
	Groups         []GroupResult `json:"groups"`
}

// InferGroup derives the group (tower) name for a file: the path segment
// immediately preceding the first segment that contains any category name of
// the spec. A category segment at the top of the path, or no category segment
// at all, maps to UnknownGroup.
func InferGroup(f File, spec Spec) string {
	segments := f.Segments()
	for i, seg := range segments {
		lower := strings.ToLower(seg)
		for _, cat := range spec.Categories {
			if strings.Contains(lower, strings.ToLower(cat.Name)) {
				if i == 0 {
					return UnknownGroup
				}
				return segments[i-1]
			}
		}
	}
	return UnknownGroup
}

// CheckAll partitions files into groups and runs the structure check once per
// group. Group output order follows first appearance in the file list so
// results are stable for identical input. When every file lands in the
// unknown bucket the whole set is checked as a single implicit group instead
// of reporting zero groups.
func CheckAll(spec Spec, files []File) Summary {
	buckets := make(map[string][]File)
	var order []string
	for _, f := range files {
		group := InferGroup(f, spec)
		if _, seen := buckets[group]; !seen {
			order = append(order, group)
		}
		buckets[group] = append(buckets[group], f)
	}

	summary := Summary{SpecName: spec.Name}

	named := 0
	for _, group := range order {
		if group != UnknownGroup {
			named++
		}
	}

	// Fallback single-group mode: nothing but unclassifiable files.
	if named == 0 {
		result := Check(UnknownGroup, spec, files)
		summary.Groups = append(summary.Groups, result)
		summary.TotalGroups = 1
		if result.Complete() {
			summary.CompleteGroups = 1
		}
		return summary
	}

	for _, group := range order {
		if group == UnknownGroup {
			continue
		}
		result := Check(group, spec, buckets[group])
		summary.Groups = append(summary.Groups, result)
		summary.TotalGroups++
		if result.Complete() {
			summary.CompleteGroups++
		}
	}

	return summary
}
