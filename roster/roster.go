// Package roster maps item indices to display labels.
//
// The core works on opaque integer indices; a Roster supplies the optional
// human-readable names for presentation surfaces (tables, exports, APIs).
package roster

import (
	"strconv"
	"strings"

	"github.com/classmix/regroup/types"
)

// Roster resolves item indices to display names.
//
// When labels are present, label order corresponds 1:1 to item index.
// Items without a label fall back to a positional name ("Member N",
// 1-based).
type Roster struct {
	labels []string
}

// New creates a roster from an ordered label sequence.
//
// The labels are copied; the caller's slice is not retained. An empty or
// nil sequence produces a roster that names every item positionally.
//
// Parameters:
//   - labels: Ordered display labels, index-aligned with item indices
//
// Returns:
//   - *Roster: Initialized roster
//
// Example:
//
//	ros := roster.New([]string{"Ada", "Ben", "Cleo", "Dev"})
//	ros.Name(2) // "Cleo"
func New(labels []string) *Roster {
	copied := make([]string, len(labels))
	copy(copied, labels)

	return &Roster{labels: copied}
}

// Len returns the number of labels carried by the roster.
func (r *Roster) Len() int {
	return len(r.labels)
}

// Labels returns a copy of the roster's label sequence.
//
// Returns:
//   - []string: Independent copy of the labels (nil when none)
func (r *Roster) Labels() []string {
	if len(r.labels) == 0 {
		return nil
	}

	out := make([]string, len(r.labels))
	copy(out, r.labels)

	return out
}

// Name returns the display name for an item index.
//
// Parameters:
//   - item: Zero-based item index
//
// Returns:
//   - string: The label for the index, or "Member N" (1-based) when the
//     index has no label
func (r *Roster) Name(item int) string {
	if item >= 0 && item < len(r.labels) {
		return r.labels[item]
	}

	return "Member " + strconv.Itoa(item+1)
}

// Names resolves every member of a group to its display name, preserving
// group order.
//
// Parameters:
//   - group: Group of item indices
//
// Returns:
//   - []string: Display names in group order
func (r *Roster) Names(group types.Group) []string {
	names := make([]string, len(group))
	for i, item := range group {
		names[i] = r.Name(item)
	}

	return names
}

// ParseLabels splits newline-delimited label text into an ordered label
// sequence: one label per line, surrounding whitespace trimmed, empty
// lines dropped.
//
// This is the collaborator-side normalization the core expects: by the
// time labels reach Config.Labels they are already split and trimmed.
//
// Parameters:
//   - text: Raw newline-delimited label text
//
// Returns:
//   - []string: Ordered non-empty labels (nil when none)
func ParseLabels(text string) []string {
	var labels []string

	for _, line := range strings.Split(text, "\n") {
		label := strings.TrimSpace(line)
		if label == "" {
			continue
		}

		labels = append(labels, label)
	}

	return labels
}
