package export

import (
	"fmt"

	"restaurant/internal/models"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Bookings"

var columns = []string{"ID", "Date", "Time", "Name", "Guests", "Comment", "User ID"}

// BookingsWorkbook builds an Excel workbook with one row per booking,
// ordered as given. The caller streams or saves the file.
func BookingsWorkbook(bookings []*models.Booking, startDate, endDate string) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	_ = f.SetCellValue(sheetName, "A1", fmt.Sprintf("Bookings: %s - %s", startDate, endDate))
	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	_ = f.MergeCell(sheetName, "A1", lastCol+"1")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, column := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(sheetName, cell, column)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for row, booking := range bookings {
		values := []interface{}{
			booking.ID,
			booking.Date,
			booking.Slot,
			booking.Name,
			booking.Guests,
			booking.Comment,
		}
		if booking.UserID.Valid {
			values = append(values, booking.UserID.Int64)
		} else {
			values = append(values, "")
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+3)
			_ = f.SetCellValue(sheetName, cell, value)
		}
	}

	_ = f.SetColWidth(sheetName, "A", lastCol, 18)
	_ = f.DeleteSheet("Sheet1")

	return f, nil
}
