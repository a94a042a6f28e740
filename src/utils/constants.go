package utils

const ShortSlashDateLayout = "2006/01/02"
const ShortDashDateLayout = "2006-01-02"

// Currency symbol used by the summary cards and reports.
const CurrencySymbol = "₹"

// ChartColors defines a palette of distinct colors for chart visualization
var ChartColors = []string{
	"#4B0082", // Indigo
	"#98FB98", // Pale Green
	"#ffa366", // Light Orange
	"#ff8080", // Light Red
	"#80b3ff", // Light Blue
	"#a3d977", // Light Green
	"#c285ff", // Light Purple
	"#80e6d4", // Light Teal
	"#ffb366", // Medium Orange
	"#ff6666", // Medium Red
	"#e680ff", // Light Magenta
	"#808080", // Medium Gray
}

// GetChartColor returns a color from the chart color palette
// If the index exceeds the palette size, it cycles back to the beginning
func GetChartColor(index int) string {
	return ChartColors[index%len(ChartColors)]
}
