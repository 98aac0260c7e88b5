package application

import (
	"fmt"
	"strings"
	"time"
)

// ComposeReport assembles the outgoing message: greeting, the sunrise/sunset
// sentence, the optional difference sentence and a sign-off. All internal
// whitespace is collapsed to single spaces so the payload stays on one line
// for line-oriented transports.
func ComposeReport(sunrise time.Time, sunset time.Time, difference string) string {
	raw := fmt.Sprintf(
		"Siemanko! Today sun rises at %s and sets at %s. %s Smacznej kawusi!",
		sunrise.Format(time.TimeOnly),
		sunset.Format(time.TimeOnly),
		difference,
	)

	return strings.Join(strings.Fields(raw), " ")
}
