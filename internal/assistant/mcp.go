package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/julianstephens/vitalog/internal/aggregate"
	"github.com/julianstephens/vitalog/internal/constants"
	"github.com/julianstephens/vitalog/internal/models"
)

// BuildContext generates the Model Context Protocol bundle: a structured,
// human-readable summary of the user's profile, targets, and recent history
// that grounds every assistant interaction.
func BuildContext(doc *models.AppDocument) string {
	var b strings.Builder

	b.WriteString("## Model Context Protocol (MCP)\n\n")
	b.WriteString("This protocol provides a summary of the user's data, goals, and recent history ")
	b.WriteString("to give you deep, persistent context for every interaction. Use this information ")
	b.WriteString("to provide highly personalized and aligned responses.\n\n")

	b.WriteString("### User Profile\n")
	if doc.UserProfile != nil {
		writeJSON(&b, doc.UserProfile)
	} else {
		b.WriteString("No profile set.\n")
	}

	b.WriteString("\n### Nutrition Targets\n")
	writeJSON(&b, doc.Targets)

	recent := aggregate.RecentLogs(doc.Logs, constants.RecentLogCount)
	fmt.Fprintf(&b, "\n### Recent History (Last %d Days)\n", len(recent))
	if len(recent) > 0 {
		writeJSON(&b, recent)
	} else {
		b.WriteString("No recent history available.\n")
	}

	return b.String()
}

func writeJSON(b *strings.Builder, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		b.WriteString("(unavailable)\n")
		return
	}
	b.Write(data)
	b.WriteString("\n")
}
