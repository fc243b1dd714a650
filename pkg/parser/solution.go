package parser

import "strings"

// Fallbacks substituted when the model's solution response yields nothing
// for a section.
const (
	FallbackCommand    = "# See solution above"
	FallbackPrevention = "Review code before deployment"
)

// ParseSolution splits a solution-generation response into solution steps,
// an ordered command list, and prevention notes. A section cursor switches
// on SOLUTION:/COMMANDS:/PREVENTION: headers; non-blank lines accumulate
// into whichever section is active. Command bullets lose their leading -,
// * or backtick marker, and EXPLANATION/WHY header lines are not commands.
// Each section degrades to a documented fallback rather than coming back
// empty.
func ParseSolution(raw string) (solution string, commands []string, prevention string) {
	var solutionLines, preventionLines []string
	section := ""

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		upper := strings.ToUpper(trimmed)

		switch {
		case strings.Contains(upper, "SOLUTION:"):
			section = "solution"
		case strings.Contains(upper, "COMMANDS:") || strings.Contains(upper, "COMMAND:"):
			section = "commands"
		case strings.Contains(upper, "PREVENTION:"):
			section = "prevention"
		case trimmed != "":
			switch section {
			case "solution":
				solutionLines = append(solutionLines, line)
			case "commands":
				if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "`") {
					if cmd := strings.TrimSpace(strings.TrimLeft(trimmed, "-*`")); cmd != "" {
						commands = append(commands, cmd)
					}
				} else if !strings.HasPrefix(upper, "EXPLANATION") && !strings.HasPrefix(upper, "WHY") {
					commands = append(commands, trimmed)
				}
			case "prevention":
				preventionLines = append(preventionLines, line)
			}
		}
	}

	solution = strings.TrimSpace(strings.Join(solutionLines, "\n"))
	if solution == "" {
		solution = raw
	}
	if len(commands) == 0 {
		commands = []string{FallbackCommand}
	}
	prevention = strings.TrimSpace(strings.Join(preventionLines, "\n"))
	if prevention == "" {
		prevention = FallbackPrevention
	}
	return solution, commands, prevention
}
