package formatter

import (
	"fmt"
	"strings"

	"github.com/nholm/sundial/internal/contract"
)

// FormatSuggestions formats a ranked recipe shortlist with score
// breakdowns.
func FormatSuggestions(resp *contract.SuggestResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("What to cook (%d considered)", resp.Considered)))
	b.WriteString("\n\n")

	if len(resp.Suggestions) == 0 {
		b.WriteString(Dim("No recipe fits right now. Try loosening the filters."))
		b.WriteString("\n")
		return b.String()
	}

	for i, s := range resp.Suggestions {
		b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(s.Recipe.Name),
			StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(s.Recipe.TotalTimeMin))),
			StylePurple.Render(fmt.Sprintf("%.0f pts", s.Score)),
		))
		for _, reason := range s.Reasons {
			marker := StyleGreen.Render("+")
			if reason.WeightDelta < 0 {
				marker = StyleRed.Render("−")
			}
			b.WriteString(fmt.Sprintf("   %s %s\n", marker, Dim(reason.Message)))
		}
		if i < len(resp.Suggestions)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
