// Package pitch composes a seller-facing talk track from call notes and the
// planned exit strategy. Pure text assembly, no external calls.
package pitch

import "strings"

const (
	intro = "I understand the challenge and stress involved in selling a home, " +
		"especially when speed and certainty matter. " +
		"Imagine a hassle-free process that puts you in control, " +
		"closing on your terms with no surprises."

	offerBoth = "We offer flexible paths - whether it's a fast cash offer with no inspections, " +
		"or a retail partner route that gets you more, even if the house needs some love."
	offerCash = "Our cash offer provides immediate relief: no agents, no showings, no repairs. " +
		"Just a quick, clean close when you're ready."
	offerRBP = "Our retail partner program is perfect for sellers looking to maximize value " +
		"without the headache of traditional listings. Even if the property needs updates, we've got you."
	offerDefault = "We tailor our approach to your needs - whether that means speed, simplicity, " +
		"or maximizing your payout."

	toneUrgent = "Given the urgency, we're ready to move quickly - even close in under 7 days if needed."
	toneRepair = "Since the home may need repairs, our offers are designed to absorb that burden, " +
		"so you don't have to lift a finger."
	toneDefault = "We aim to keep things easy, efficient, and profitable - no hidden costs, no stress."

	closing = "Let's explore this path together. I'll walk you through every step and make this a win for you. " +
		"Would you be open to seeing how that might work?"
)

var (
	urgencyWords = []string{"vacant", "urgent", "asap", "foreclosure"}
	repairWords  = []string{"roof", "hvac", "plumbing", "foundation", "repairs", "as-is"}
)

// Generate builds the pitch. The offer paragraph follows the exit strategy
// and the tone paragraph follows distress signals in the notes.
func Generate(notes, exitStrategy string) string {
	exitStrategy = strings.ToLower(exitStrategy)
	notes = strings.ToLower(notes)

	var offer string
	switch {
	case strings.Contains(exitStrategy, "cash") && strings.Contains(exitStrategy, "rbp"):
		offer = offerBoth
	case strings.Contains(exitStrategy, "cash"):
		offer = offerCash
	case strings.Contains(exitStrategy, "rbp"):
		offer = offerRBP
	default:
		offer = offerDefault
	}

	var tone string
	switch {
	case containsAny(notes, urgencyWords):
		tone = toneUrgent
	case containsAny(notes, repairWords):
		tone = toneRepair
	default:
		tone = toneDefault
	}

	return strings.Join([]string{intro, offer, tone, closing}, " ")
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
