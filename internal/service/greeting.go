package service

import (
	"strings"
)

// DefaultPythonText is bound when /python is requested without a text segment.
const DefaultPythonText = "is cool"

// GreetingService formats the bodies served by the HBNB routes.
// Implementations must be pure: the same input always yields the same output.
type GreetingService interface {
	// Hello returns the root greeting.
	Hello() string
	// HBNB returns the /hbnb body.
	HBNB() string
	// C returns "C " followed by text with underscores turned into spaces.
	C(text string) string
	// Python returns "Python " followed by text with underscores turned into spaces.
	Python(text string) string
	// Number returns "<n> is a number". n is a canonical decimal digit string.
	Number(n string) string
	// Parity returns "even" or "odd" for the decimal digit string n.
	Parity(n string) string
}

type greetingService struct{}

// NewGreetingService constructs the default GreetingService.
func NewGreetingService() GreetingService {
	return greetingService{}
}

func (greetingService) Hello() string { return "Hello HBNB!" }

func (greetingService) HBNB() string { return "HBNB" }

func (greetingService) C(text string) string {
	return "C " + spaced(text)
}

func (greetingService) Python(text string) string {
	return "Python " + spaced(text)
}

func (greetingService) Number(n string) string {
	return n + " is a number"
}

// Parity looks only at the last digit, so n may exceed any machine integer.
func (greetingService) Parity(n string) string {
	if n == "" || (n[len(n)-1]-'0')%2 == 0 {
		return "even"
	}
	return "odd"
}

func spaced(text string) string {
	return strings.ReplaceAll(text, "_", " ")
}
