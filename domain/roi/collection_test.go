package roi

import (
	"errors"
	"image"
	"testing"
)

func rect(x1, y1, x2, y2 int) Rect { return FromPoints(image.Pt(x1, y1), image.Pt(x2, y2)) }

func TestCollection_RemoveManyCompacts(t *testing.T) {
	c := Collection{rect(0, 0, 1, 1), rect(1, 1, 2, 2), rect(2, 2, 3, 3), rect(3, 3, 4, 4)}
	c.RemoveMany([]int{1, 3})

	// Equivalent to deleting index 3 then index 1 one at a time.
	want := Collection{rect(0, 0, 1, 1), rect(1, 1, 2, 2), rect(2, 2, 3, 3), rect(3, 3, 4, 4)}
	want.RemoveAt(3)
	want.RemoveAt(1)

	if len(c) != len(want) {
		t.Fatalf("len = %d, want %d", len(c), len(want))
	}
	for i := range c {
		if c[i] != want[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, c[i], want[i])
		}
	}
}

func TestCollection_RemoveManyToleratesJunkIndices(t *testing.T) {
	c := Collection{rect(0, 0, 1, 1), rect(1, 1, 2, 2)}
	c.RemoveMany([]int{-1, 0, 0, 99})
	if len(c) != 1 || c[0] != rect(1, 1, 2, 2) {
		t.Fatalf("unexpected survivors: %+v", c)
	}
}

func TestCollection_ImportMergeAppend(t *testing.T) {
	c := Collection{rect(0, 0, 1, 1)}
	if err := c.ImportMerge([]Rect{rect(5, 5, 9, 9)}, false); err != nil {
		t.Fatalf("ImportMerge: %v", err)
	}
	if len(c) != 2 || c[0] != rect(0, 0, 1, 1) || c[1] != rect(5, 5, 9, 9) {
		t.Fatalf("append merge result: %+v", c)
	}
}

func TestCollection_ImportMergeReplace(t *testing.T) {
	c := Collection{rect(0, 0, 1, 1)}
	if err := c.ImportMerge([]Rect{rect(5, 5, 9, 9)}, true); err != nil {
		t.Fatalf("ImportMerge: %v", err)
	}
	if len(c) != 1 || c[0] != rect(5, 5, 9, 9) {
		t.Fatalf("replace merge result: %+v", c)
	}
}

func TestCollection_ImportMergeRejectsNegativeDims(t *testing.T) {
	bad := Rect{}
	bad.SetCorner(0, image.Pt(10, 10), false)
	bad.SetCorner(1, image.Pt(0, 0), false) // unnormalized, negative extent

	c := Collection{rect(0, 0, 1, 1)}
	err := c.ImportMerge([]Rect{bad}, false)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if len(c) != 1 {
		t.Fatalf("collection mutated on rejected import: %+v", c)
	}
}

func TestCollection_CloneIsIndependent(t *testing.T) {
	c := Collection{rect(0, 0, 1, 1)}
	d := c.Clone()
	d[0].SetFromPoints(image.Pt(7, 7), image.Pt(8, 8))
	if c[0] != rect(0, 0, 1, 1) {
		t.Fatalf("clone aliased original: %+v", c[0])
	}
}

func TestCollection_AppendClearsDraft(t *testing.T) {
	var c Collection
	r := rect(0, 0, 5, 5)
	r.Draft = true
	c.Append(r)
	if c[0].Draft {
		t.Fatal("append kept the draft flag")
	}
}
