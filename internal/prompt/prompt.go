// Package prompt holds the personality and mode instruction tables and
// composes the effective system message for a single completion request.
package prompt

import "sort"

const (
	DefaultPersonality = "witty"
	DefaultMode        = "chat"
)

var personalities = map[string]string{
	"witty":        "You are witty, humorous, and use light emojis and jokes appropriately.",
	"professional": "You are professional, clear, and concise, with minimal emojis.",
	"fun":          "You are playful, fun, and love emojis and ASCII art.",
	"friendly":     "You are warm, friendly, and engaging with positive language.",
}

var modes = map[string]string{
	"summarize": "Summarize the user's input concisely.",
	"explain":   "Explain concepts clearly and simply.",
	"code":      "Provide working code examples when appropriate.",
}

// Compose returns the system message to send with the next request. It never
// touches the transcript's stored persona message: a one-off "summarize" or
// "code" request must not permanently change the declared persona.
// Unknown modes behave as chat; unknown personalities fall back to witty.
func Compose(mode, personality string) string {
	if text, ok := modes[mode]; ok {
		return text
	}
	return Tone(personality)
}

// Tone returns the canned tone description for a personality, falling back
// to the default when the name is not recognized.
func Tone(personality string) string {
	if text, ok := personalities[personality]; ok {
		return text
	}
	return personalities[DefaultPersonality]
}

// Seed returns the persona declaration stored at index 0 of a fresh
// transcript. The name is used verbatim, recognized or not.
func Seed(personality string) string {
	return "You are a " + personality + " assistant who loves to help users."
}

// Personalities lists the known personality names, sorted.
func Personalities() []string {
	names := make([]string, 0, len(personalities))
	for name := range personalities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Modes lists the known mode names including chat, sorted.
func Modes() []string {
	names := []string{DefaultMode}
	for name := range modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
