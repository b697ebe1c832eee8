package interchange

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/kbrambach/roicrop/domain/roi"
)

func rect(x1, y1, x2, y2 int) roi.Rect {
	return roi.FromPoints(image.Pt(x1, y1), image.Pt(x2, y2))
}

func TestCollection_RoundTrip(t *testing.T) {
	c := roi.Collection{rect(10, 10, 50, 60), rect(0, 0, 1, 1), rect(200, 100, 300, 150)}
	var buf bytes.Buffer
	if err := EncodeCollection(&buf, c); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeCollection(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(c) {
		t.Fatalf("count = %d, want %d", len(got), len(c))
	}
	for i := range c {
		if got[i].Corner(0) != c[i].Corner(0) || got[i].Corner(1) != c[i].Corner(1) {
			t.Fatalf("entry %d = %v %v, want %v %v", i, got[i].Corner(0), got[i].Corner(1), c[i].Corner(0), c[i].Corner(1))
		}
	}
}

func TestLibrary_RoundTrip(t *testing.T) {
	lib := map[string]roi.Collection{
		"/in/a.mp4": {rect(10, 10, 50, 60)},
		"/in/b.mp4": {rect(0, 0, 5, 5), rect(7, 7, 9, 9)},
	}
	var buf bytes.Buffer
	if err := EncodeLibrary(&buf, lib); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeLibrary(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || len(got["/in/a.mp4"]) != 1 || len(got["/in/b.mp4"]) != 2 {
		t.Fatalf("library shape = %+v", got)
	}
	if got["/in/b.mp4"][1] != rect(7, 7, 9, 9) {
		t.Fatalf("entry mismatch: %+v", got["/in/b.mp4"][1])
	}
}

func TestDecode_Corrupt(t *testing.T) {
	if _, err := DecodeCollection(strings.NewReader("{not json")); err == nil {
		t.Fatal("corrupt input accepted")
	}
}

func TestDecode_KindMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeLibrary(&buf, map[string]roi.Collection{}); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeCollection(&buf); err == nil {
		t.Fatal("library snapshot decoded as a collection")
	}
}

func TestDecode_NegativeDimsRejected(t *testing.T) {
	in := `{"version":1,"kind":"collection","rois":[{"x1":50,"y1":50,"x2":10,"y2":10}]}`
	_, err := DecodeCollection(strings.NewReader(in))
	var verr *roi.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestWriteCSV_Rows(t *testing.T) {
	lib := map[string]roi.Collection{
		"/in/b.mp4": {rect(5, 6, 7, 8)},
		"/in/a.mp4": {rect(10, 10, 50, 60), rect(1, 2, 3, 4)},
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, lib); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	want := "/in/a.mp4,10,10,50,60\n/in/a.mp4,1,2,3,4\n/in/b.mp4,5,6,7,8\n"
	if buf.String() != want {
		t.Fatalf("csv = %q, want %q", buf.String(), want)
	}
}
