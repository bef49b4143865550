package tui

import "fmt"

// Form copy.
const (
	LabelTopic       = "ENTER A TOPIC"
	PlaceholderTopic = "e.g. opportunity, success"
	DescriptionTopic = "Click Submit to get Motivational Quotes"
	LabelSubmit      = "Submit"
	LabelSearching   = "Searching..."
)

func MsgResultsCount(topic string, n int) string {
	if n == 1 {
		return fmt.Sprintf("1 quote for %q", topic)
	}
	return fmt.Sprintf("%d quotes for %q", n, topic)
}
