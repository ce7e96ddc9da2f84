// Package fun is the decorative layer: fun facts, ascii reactions, emoji
// substitution, keyword sentiment, and the wttr.in weather lookup.
package fun

import (
	"math/rand"
	"strings"

	"github.com/common-nighthawk/go-figure"
	emoji "github.com/kyokomi/emoji/v2"
)

var facts = []string{
	"Honey never spoils 🍯",
	"Bananas are berries, but strawberries aren't 🍌🍓",
	"Octopuses have three hearts 🐙❤️❤️❤️",
	"A group of flamingos is called a 'flamboyance' 🦩🔥",
}

// RandomFact picks one fun fact.
func RandomFact() string {
	return facts[rand.Intn(len(facts))]
}

var reactions = map[string]string{
	"happy":     "^_^",
	"thinking":  "o_O",
	"surprised": ":O",
	"wink":      ";)",
}

// Reaction returns the ascii face for an emotion, empty when unknown.
func Reaction(emotion string) string {
	return reactions[emotion]
}

// RandomReaction picks any ascii face.
func RandomReaction() string {
	names := make([]string, 0, len(reactions))
	for name := range reactions {
		names = append(names, name)
	}
	return reactions[names[rand.Intn(len(names))]]
}

// Ordered so repeated keywords decorate a reply deterministically.
var emojiKeywords = []struct {
	word  string
	emoji string
}{
	{"happy", "😄"},
	{"sad", "😢"},
	{"love", "❤️"},
	{"wow", "😲"},
	{"fun", "🎉"},
	{"game", "🎮"},
	{"thanks", "🙏"},
	{"yes", "👍"},
	{"no", "❌"},
}

// AutoEmoji suffixes an emoji for every keyword found in text. Applied to
// assistant replies before they are stored or displayed.
func AutoEmoji(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range emojiKeywords {
		if strings.Contains(lower, kw.word) {
			text += " " + kw.emoji
		}
	}
	return text
}

// Emojize substitutes :alias: codes in msg with their emoji.
func Emojize(msg string) string {
	return emoji.Sprint(msg)
}

// Banner renders text as a figlet-style ascii banner.
func Banner(text string) string {
	return figure.NewFigure(text, "", true).String()
}

var positiveWords = []string{"happy", "great", "love", "awesome", "good", "fun", "wonderful", "thanks", "nice", "excellent"}
var negativeWords = []string{"sad", "terrible", "hate", "awful", "bad", "angry", "horrible", "worst", "annoying", "upset"}

// Sentiment buckets text into happy, sad, or thinking by keyword polarity,
// driving the ascii reaction after a chat turn.
func Sentiment(text string) string {
	lower := strings.ToLower(text)
	score := 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			score++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			score--
		}
	}
	switch {
	case score > 0:
		return "happy"
	case score < 0:
		return "sad"
	default:
		return "thinking"
	}
}
