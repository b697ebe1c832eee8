package interchange

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/kbrambach/roicrop/domain/roi"
)

// WriteCSV emits one row per ROI: videoIdentity, x1, y1, x2, y2. Videos are
// written in sorted order so exports are reproducible. This shape has no
// importer; it feeds external analysis tools.
func WriteCSV(w io.Writer, videos map[string]roi.Collection) error {
	paths := make([]string, 0, len(videos))
	for path := range videos {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	cw := csv.NewWriter(w)
	for _, path := range paths {
		for _, r := range videos[path] {
			row := []string{
				path,
				strconv.Itoa(r.Corner(0).X), strconv.Itoa(r.Corner(0).Y),
				strconv.Itoa(r.Corner(1).X), strconv.Itoa(r.Corner(1).Y),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write roi csv: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write roi csv: %w", err)
	}
	return nil
}
