package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	ruleIndent  = 4  // spaces to indent rule entries
	fileWidth   = 35 // Base width for filename
	detailWidth = 30 // Width for detail text
)

// RuleOutcome classifies how a single rule ended
type RuleOutcome int

const (
	RuleApplied RuleOutcome = iota
	RuleSkipped
	RuleMissing
	RuleFailed
)

// 🎯 FormatRule formats a single rule outcome for display
func FormatRule(file, detail string, outcome RuleOutcome) string {
	var prefix string
	switch outcome {
	case RuleApplied:
		prefix = color.GreenString("✓")
	case RuleSkipped:
		prefix = color.HiBlackString("-")
	case RuleMissing:
		prefix = color.YellowString("?")
	case RuleFailed:
		prefix = color.RedString("✗")
	}

	namePart := fmt.Sprintf("%-*s", fileWidth, file)
	detailPart := fmt.Sprintf("%-*s", detailWidth, detail)

	return fmt.Sprintf("%s%s %s %s",
		strings.Repeat(" ", ruleIndent),
		prefix,
		namePart,
		detailPart,
	)
}
