package catalog

import "sort"

// Moods derives the mood filter labels for the catalog: every distinct
// non-empty label across all items, case-sensitively deduplicated, in
// ascending lexical order. The result is independent of item order.
func (c Catalog) Moods() []string {
	seen := make(map[string]struct{})
	for _, item := range c.Items() {
		for _, label := range item.Moods {
			if label == "" {
				continue
			}
			seen[label] = struct{}{}
		}
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
