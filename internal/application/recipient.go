package application

import (
	"strconv"
	"strings"
)

type RecipientKind int

const (
	// Numeric recipients address a direct chat by its identifier.
	Numeric RecipientKind = iota
	// Named recipients address a group or channel by name.
	Named
)

// Recipient is an addressable notification target, classified exactly once
// at parse time.
type Recipient struct {
	Kind  RecipientKind
	Value string
}

// ClassifyRecipient routes identifiers that parse as a number to direct
// addressing and everything else to group addressing.
func ClassifyRecipient(raw string) Recipient {
	if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Recipient{Kind: Numeric, Value: raw}
	}

	return Recipient{Kind: Named, Value: raw}
}

// ParseRecipients splits a comma-separated recipient list, dropping blanks.
func ParseRecipients(list string) []Recipient {
	var recipients []Recipient
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		recipients = append(recipients, ClassifyRecipient(part))
	}

	return recipients
}
