package roi

import (
	"fmt"
	"slices"
)

// ValidationError rejects malformed ROI data, for example imported entries
// with negative dimensions. The action is refused and state left unchanged.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "roi: " + e.Reason }

// Collection is the ordered ROI list of one video. Order is display order
// (the user sees 1-based indices) and is preserved across mutations except
// that removals close the gap.
type Collection []Rect

// Clone returns an independent copy of the collection.
func (c Collection) Clone() Collection {
	return slices.Clone(c)
}

// Append adds a rectangle at the end. The draft flag is cleared: appending is
// the commit point of a freehand draft.
func (c *Collection) Append(r Rect) {
	r.Draft = false
	*c = append(*c, r)
}

// RemoveAt deletes the entry at index, compacting the survivors.
// Out-of-range indices are ignored.
func (c *Collection) RemoveAt(index int) {
	if index < 0 || index >= len(*c) {
		return
	}
	*c = slices.Delete(*c, index, index+1)
}

// RemoveMany deletes all listed indices at once, preserving the relative
// order of the survivors. Duplicate and out-of-range indices are tolerated.
func (c *Collection) RemoveMany(indices []int) {
	if len(indices) == 0 {
		return
	}
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}
	kept := (*c)[:0]
	for i, r := range *c {
		if !drop[i] {
			kept = append(kept, r)
		}
	}
	*c = kept
}

// ReplaceAll overwrites the collection with the given list.
func (c *Collection) ReplaceAll(list []Rect) {
	*c = slices.Clone(list)
}

// ImportMerge brings an imported list into the collection. With replace=true
// the whole collection is overwritten, otherwise the imported entries are
// appended after the existing ones. Entries with negative width or height are
// rejected as a whole: the collection is untouched on error.
func (c *Collection) ImportMerge(list []Rect, replace bool) error {
	for i, r := range list {
		if r.Width() < 0 || r.Height() < 0 {
			return &ValidationError{Reason: fmt.Sprintf("imported entry %d has negative dimensions (%dx%d)", i+1, r.Width(), r.Height())}
		}
	}
	if replace {
		c.ReplaceAll(list)
		return nil
	}
	for _, r := range list {
		c.Append(r)
	}
	return nil
}
