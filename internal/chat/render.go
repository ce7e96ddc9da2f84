package chat

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"palaver/internal/store"
)

// Terminal renders loop output with the usual colors: green prompts, cyan
// replies, dim timestamps, magenta reactions.
type Terminal struct {
	Quiet bool
}

func NewTerminal(quiet bool) *Terminal {
	return &Terminal{Quiet: quiet}
}

func (t *Terminal) Prompt(label string) {
	fmt.Print(color.New(color.FgGreen, color.Bold).Sprintf("\n%s ≫ ", label))
}

func (t *Terminal) Info(msg string) {
	fmt.Println(msg)
}

func (t *Terminal) Error(msg string, err error) {
	color.Red("%s: %v", msg, err)
}

func (t *Terminal) Reply(text string) {
	fmt.Println(color.CyanString("Chatbot 🤖:"), text)
}

func (t *Terminal) Reaction(art string) {
	if t.Quiet || art == "" {
		return
	}
	color.Magenta(art)
}

func (t *Terminal) HistoryEntry(at time.Time, role, content string) {
	who := "Chatbot 🤖"
	if role == store.RoleUser {
		who = "You"
	}
	fmt.Printf("%s %s %s\n",
		color.New(color.Faint).Sprint(at.Format("15:04:05")),
		color.New(color.FgGreen, color.Bold).Sprint(who+":"),
		content)
}

func (t *Terminal) Panel(title, body string) {
	fmt.Println(color.CyanString("--- %s ---", title))
	fmt.Println(body)
}
