package analysis

import (
	"fmt"

	"github.com/opencoff/go-chd"
)

// rankOrder lists the 13 ranks high to low for canonical category naming.
var rankOrder = [13]byte{'A', 'K', 'Q', 'J', 'T', '9', '8', '7', '6', '5', '4', '3', '2'}

// AllCategories builds the 169 canonical starting-hand category strings
// (13 pocket pairs + 78 suited + 78 offsuit), e.g. "AA", "AKs", "AKo",
// ..., "72o" — spec §4.9's "169 distinct starting-hand classes".
func AllCategories() []string {
	out := make([]string, 0, 169)
	for _, r := range rankOrder {
		out = append(out, string(r)+string(r))
	}
	for i := 0; i < len(rankOrder); i++ {
		for j := i + 1; j < len(rankOrder); j++ {
			out = append(out, string(rankOrder[i])+string(rankOrder[j])+"s")
		}
	}
	for i := 0; i < len(rankOrder); i++ {
		for j := i + 1; j < len(rankOrder); j++ {
			out = append(out, string(rankOrder[i])+string(rankOrder[j])+"o")
		}
	}
	return out
}

// CategoryIndex maps every canonical category string to a dense [0,169)
// index via a compile-time-built minimal perfect hash, so a per-opponent
// range can be tracked as a fixed-size bitset instead of a map.
type CategoryIndex struct {
	byIndex []string
	hash    *chd.CHD
}

// NewCategoryIndex builds the perfect hash over AllCategories(). The hash
// assigns each category a dense index of its own choosing (not insertion
// order), so byIndex is populated by probing Find for every category once,
// at construction time.
func NewCategoryIndex() (*CategoryIndex, error) {
	categories := AllCategories()

	b := chd.NewBuilder()
	for _, c := range categories {
		b.Add([]byte(c))
	}
	h, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("analysis: building category perfect hash: %w", err)
	}

	byIndex := make([]string, len(categories))
	for _, c := range categories {
		byIndex[h.Find([]byte(c))] = c
	}

	return &CategoryIndex{byIndex: byIndex, hash: h}, nil
}

// IndexOf returns category's dense index. Behavior is undefined for a
// string outside AllCategories() (the hash is perfect only over that set).
func (ci *CategoryIndex) IndexOf(category string) int {
	return int(ci.hash.Find([]byte(category)))
}

// Len returns the number of categories (always 169).
func (ci *CategoryIndex) Len() int {
	return len(ci.byIndex)
}

// Category returns the canonical string for a dense index.
func (ci *CategoryIndex) Category(index int) string {
	if index < 0 || index >= len(ci.byIndex) {
		return ""
	}
	return ci.byIndex[index]
}
