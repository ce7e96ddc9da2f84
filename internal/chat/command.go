// Package chat runs the interactive conversation loop: a small command
// dispatcher over an injected renderer, speaker, and completion client.
package chat

import "strings"

// Kind enumerates the session commands. Anything that is not a recognized
// literal and not blank is a free-form chat turn.
type Kind int

const (
	Noop Kind = iota
	Exit
	History
	SwitchUser
	Fact
	Ascii
	Emoji
	GPT
	Weather
	Mode
	Persona
	Chat
)

// Command is one parsed input line.
type Command struct {
	Kind Kind
	Text string
}

// Parse maps an input line to a command. Matching is case-insensitive on the
// trimmed line; empty input is a no-op.
func Parse(line string) Command {
	text := strings.TrimSpace(line)
	if text == "" {
		return Command{Kind: Noop}
	}
	switch strings.ToLower(text) {
	case "exit", "quit":
		return Command{Kind: Exit}
	case "history":
		return Command{Kind: History}
	case "switch_user":
		return Command{Kind: SwitchUser}
	case "fact":
		return Command{Kind: Fact}
	case "ascii":
		return Command{Kind: Ascii}
	case "emoji":
		return Command{Kind: Emoji}
	case "gpt":
		return Command{Kind: GPT}
	case "weather":
		return Command{Kind: Weather}
	case "mode":
		return Command{Kind: Mode}
	case "persona":
		return Command{Kind: Persona}
	}
	return Command{Kind: Chat, Text: text}
}
