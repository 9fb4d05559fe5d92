package formatter

import (
	"fmt"
	"strings"

	"github.com/nholm/sundial/internal/contract"
	"github.com/nholm/sundial/internal/domain"
)

// FormatWasteStats formats the waste analytics summary.
func FormatWasteStats(stats contract.WasteStats) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Food waste, last %d months", stats.WindowMonths)))
	b.WriteString("\n\n")

	if stats.TotalEntries == 0 {
		b.WriteString(Dim("Nothing logged in this window. Good sign, or forgetfulness."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s entries  %s estimated\n\n",
		Bold(fmt.Sprintf("%d", stats.TotalEntries)),
		StyleRed.Render(Money(stats.TotalEstimatedCost)),
	))

	if len(stats.TopWastedIngredients) > 0 {
		rows := make([][]string, 0, len(stats.TopWastedIngredients))
		for _, ing := range stats.TopWastedIngredients {
			rows = append(rows, []string{
				ing.DisplayName,
				fmt.Sprintf("%d×", ing.Count),
				Dim(RelativeDate(ing.LastWasted)),
			})
		}
		b.WriteString(RenderTable([]string{"Top offenders", "Count", "Last"}, rows))
		b.WriteString("\n\n")
	}

	b.WriteString(Bold("By reason"))
	b.WriteString("\n")
	for _, reason := range domain.WasteReasons {
		count := stats.WasteByReason[reason]
		bar := strings.Repeat("█", count)
		b.WriteString(fmt.Sprintf("%-12s %s %d\n",
			string(reason), StyleYellow.Render(bar), count))
	}
	return b.String()
}
