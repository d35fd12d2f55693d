package analysis

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/sells-group/localmind/internal/model"
)

// CompetitorsCSV renders cleaned competitors as CSV with a fixed header.
func CompetitorsCSV(competitors []model.Business) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Name", "Category", "Address", "Distance", "Rating"}); err != nil {
		return "", eris.Wrap(err, "analysis: write csv header")
	}
	for _, c := range competitors {
		record := []string{
			c.Name,
			c.Category,
			c.Address,
			strconv.Itoa(c.Distance),
			strconv.FormatFloat(c.Rating, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return "", eris.Wrap(err, "analysis: write csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", eris.Wrap(err, "analysis: flush csv")
	}
	return buf.String(), nil
}
