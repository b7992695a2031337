package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"warehub/internal/format"
	"warehub/internal/models"
	"warehub/internal/report"
)

// CSV writes the warehouse analysis view as a CSV file.
func CSV(rows []models.UnitOccupancy) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{
		"#", "Warehouse", "Total Units", "Occupied Units", "Occupancy Rate",
		"Total Sqft", "Total Revenue", "Revenue / Sqft", "Floors In Use",
	})

	for i, wh := range report.BuildWarehouseAnalysis(rows) {
		w.Write([]string{
			fmt.Sprintf("%d", i+1),
			wh.WarehouseName,
			fmt.Sprintf("%d", wh.TotalUnits),
			fmt.Sprintf("%d", wh.OccupiedUnits),
			format.Percent(wh.OccupancyRate),
			fmt.Sprintf("%.0f", wh.TotalSqft),
			fmt.Sprintf("%.2f", wh.TotalRevenue),
			fmt.Sprintf("%.2f", wh.RevenuePerSqft),
			fmt.Sprintf("%d", wh.Floors),
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
