package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/chrissnell/vacances/pkg/vacances"
)

var csvHeader = []string{"date", "vacances_zone_a", "vacances_zone_b", "vacances_zone_c", "nom_vacances"}

// WriteCSV writes one row per holiday day, ordered by date
func WriteCSV(w io.Writer, h vacances.Holidays) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, e := range vacances.Sorted(h) {
		row := []string{
			e.Date.String(),
			strconv.FormatBool(e.ZoneA),
			strconv.FormatBool(e.ZoneB),
			strconv.FormatBool(e.ZoneC),
			e.Name,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("error writing CSV row for %s: %w", e.Date, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
