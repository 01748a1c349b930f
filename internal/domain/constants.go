package domain

// PaletteSize number of booking colors; colorIndex = fetch index mod PaletteSize
const PaletteSize = 8

// Palette booking colors in assignment order
var Palette = [PaletteSize]string{
	"blue",
	"green",
	"purple",
	"pink",
	"yellow",
	"indigo",
	"red",
	"teal",
}

// NoTimeRange shown instead of start/end when a booking has no time slots
const NoTimeRange = "N/A"

// Grid sizes
const (
	DayCells   = 1
	WeekCells  = 7
	MonthCells = 42 // 6 rows x 7 columns
	YearCells  = 12
)

// Label layouts
const (
	DateFormat        = "2006-01-02"
	CellDayLayout     = "2"
	CellMonthLayout   = "Jan"
	TitleDayLayout    = "Jan 2, 2006"
	TitleMonthLayout  = "January 2006"
	TitleYearLayout   = "2006"
	DetailRangeLayout = "02 Mon Jan 2006"
)
