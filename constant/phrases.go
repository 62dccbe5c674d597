package constant

import (
	"fmt"
	"strings"
)

const (
	PhraseGetIsUnopened       = "Are these items unopened? (yes/no)"
	PhraseGetIsUnopenedRetry  = "Please answer yes or no. Are these items unopened?"
	PhraseCompleteCreate      = "Thank you! Your donation has been recorded."
	PhraseCompleteUpdate      = "Thank you! Your resources have been updated."
	PhraseCompleteDelete      = "Thank you! The resource has been removed."
	PhraseShowNextMatch       = "Would you like to see another match? (yes/no)"
	PhraseShowNextMatchRetry  = "Please answer yes or no. Would you like to see another match?"
	PhraseProvideAnother      = "Would you like to add another resource? (yes/no)"
	PhraseProvideAnotherRetry = "Please answer yes or no. Would you like to add another resource?"
	PhraseGoodbye             = "Thanks for helping your community!"
)

func PhraseGetCategory(categories []string) string {
	return "Which category is your item in?\n" + numbered(categories)
}

func PhraseGetCategoryRetry(categories []string) string {
	return "Please choose one of the categories below.\n" + numbered(categories)
}

func PhraseGetResource(category string, resources []string) string {
	return fmt.Sprintf("Which %s item do you have? Reply \"none\" if it is not listed.\n%s", category, numbered(resources))
}

func PhraseGetResourceRetry(category string, resources []string) string {
	return fmt.Sprintf("Please choose one of the %s items below, or reply \"none\".\n%s", category, numbered(resources))
}

func PhraseGetQuantity(resource string) string {
	return fmt.Sprintf("How many %s do you have? Reply 0 to remove it from your list.", resource)
}

func PhraseGetQuantityRetry(resource string) string {
	return fmt.Sprintf("Please reply with a whole number of %s, 0 or more.", resource)
}

func PhraseMatch(category, name string, quantity int, instructions string, distanceMeters float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "An organization %.1f miles away needs %d %s (%s).", distanceMeters/1609.34, quantity, name, category)
	if instructions != "" {
		fmt.Fprintf(&b, "\nInstructions: %s", instructions)
	}
	return b.String()
}

func numbered(options []string) string {
	lines := make([]string, 0, len(options))
	for i, option := range options {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, option))
	}
	return strings.Join(lines, "\n")
}
