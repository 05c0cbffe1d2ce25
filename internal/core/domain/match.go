package domain

import (
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// AllKeyword selects every match when used as an index.
const AllKeyword = "all"

// MatchResult is one recognized project directory together with the paths
// that may be deleted inside it.
type MatchResult struct {
	// Index is dense and zero-based in discovery order within one scan.
	Index      int        `yaml:"index"`
	Recognizer Recognizer `yaml:"recognizer"`
	// Directory is the absolute path of the project root.
	Directory string `yaml:"directory"`
	// Size is the byte total under Deletable at scan time.
	Size      uint64   `yaml:"size"`
	Deletable []string `yaml:"deletable"`
}

// TotalSize returns the sum of the sizes of all results.
func TotalSize(results []MatchResult) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Size
	}
	return total
}

// Index selects either a single match by its numeric index or all matches.
type Index struct {
	value int
	all   bool
}

// AllIndex returns the index that selects every match.
func AllIndex() Index {
	return Index{all: true}
}

// IndexOf returns the index selecting the match numbered n.
func IndexOf(n int) Index {
	return Index{value: n}
}

// ParseIndex parses "all" (case-insensitive) or a non-negative integer.
func ParseIndex(s string) (Index, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, AllKeyword) {
		return AllIndex(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Index{}, zerr.With(zerr.Wrap(ErrInvalidIndex, "cannot parse index"), "value", s)
	}
	return IndexOf(n), nil
}

// ParseIndices parses every raw value with ParseIndex.
func ParseIndices(raw []string) ([]Index, error) {
	ids := make([]Index, 0, len(raw))
	for _, s := range raw {
		id, err := ParseIndex(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// IsAll reports whether the index selects every match.
func (i Index) IsAll() bool {
	return i.all
}

// Value returns the numeric index. It is meaningless when IsAll is true.
func (i Index) Value() int {
	return i.value
}

func (i Index) String() string {
	if i.all {
		return AllKeyword
	}
	return strconv.Itoa(i.value)
}

// FilterByIndices selects the results addressed by ids, preserving result order.
// When ids contains the all index every result is returned unchanged.
// Numeric ids that address no result are returned as unknown, sorted and deduplicated.
func FilterByIndices(results []MatchResult, ids []Index) (selected []MatchResult, unknown []int) {
	if slices.ContainsFunc(ids, Index.IsAll) {
		return slices.Clone(results), nil
	}

	wanted := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		wanted[id.value] = struct{}{}
	}

	known := make(map[int]struct{}, len(results))
	for _, r := range results {
		known[r.Index] = struct{}{}
		if _, ok := wanted[r.Index]; ok {
			selected = append(selected, r)
		}
	}

	for id := range wanted {
		if _, ok := known[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	slices.Sort(unknown)

	return selected, unknown
}
