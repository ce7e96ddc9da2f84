package chat

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"palaver/internal/fun"
	"palaver/internal/llm"
	"palaver/internal/prompt"
	"palaver/internal/session"
	"palaver/internal/store"
)

// Renderer is the output capability injected into the loop so the core logic
// stays testable without a real terminal.
type Renderer interface {
	Prompt(label string)
	Info(msg string)
	Error(msg string, err error)
	Reply(text string)
	Reaction(art string)
	HistoryEntry(at time.Time, role, content string)
	Panel(title, body string)
}

// Speaker voices assistant replies. Failures are decoration-level and are
// ignored by the loop.
type Speaker interface {
	Say(text string) error
}

// NopSpeaker is the default silent speaker.
type NopSpeaker struct{}

func (NopSpeaker) Say(string) error { return nil }

// Loop drives one chat session: it owns the active session, the shared user
// store, and the save points (exit, switch_user).
type Loop struct {
	Sess      *session.Session
	Users     store.UserStore
	StorePath string
	Client    llm.Client
	In        *bufio.Reader
	Out       Renderer
	Speak     Speaker

	// Now is stubbed in tests; defaults to time.Now.
	Now func() time.Time
}

func (l *Loop) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// Run processes commands until exit or end of input. The store is written on
// exit and on every user switch; a failed exit-time save is reported since it
// is the last chance to persist the session.
func (l *Loop) Run(ctx context.Context) error {
	if l.Speak == nil {
		l.Speak = NopSpeaker{}
	}
	for {
		l.Out.Prompt(l.Sess.User)
		line, err := l.In.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			// End of input behaves like exit so a piped session still saves.
			if saveErr := l.save(); saveErr != nil {
				l.Out.Error("could not save conversations", saveErr)
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		cmd := Parse(line)
		switch cmd.Kind {
		case Noop:
			continue

		case Exit:
			if err := l.save(); err != nil {
				l.Out.Error("could not save conversations", err)
			} else {
				l.Out.Info("👋 Goodbye " + l.Sess.User + "! Conversation saved.")
			}
			return nil

		case History:
			for _, m := range l.Sess.History() {
				l.Out.HistoryEntry(l.now(), m.Role, m.Content)
			}

		case SwitchUser:
			if err := l.save(); err != nil {
				l.Out.Error("could not save conversations", err)
			}
			name := l.ask("Enter new user name")
			if name == "" {
				continue
			}
			l.Sess.Reset(name, l.Users[name])
			l.Out.Info("Switched to user: " + name)

		case Fact:
			l.Out.Panel("🎉 Fun Fact", fun.RandomFact())

		case Ascii:
			text := l.ask("Enter text for ASCII art")
			if text != "" {
				l.Out.Info(fun.Banner(text))
			}

		case Emoji:
			msg := l.ask("Enter text to add emojis")
			if msg != "" {
				l.Out.Info(fun.Emojize(msg))
			}

		case Weather:
			city := l.ask("Enter city for weather")
			if city == "" {
				continue
			}
			report, err := fun.Weather(ctx, city)
			if err != nil {
				l.Out.Error("could not fetch weather", err)
				continue
			}
			l.Out.Panel("🌤 Weather in "+city, report)

		case Mode:
			mode := l.ask("Choose mode: " + strings.Join(prompt.Modes(), ", "))
			if mode == "" {
				continue
			}
			l.Sess.Mode = strings.ToLower(mode)
			l.Out.Info("mode set to " + l.Sess.Mode)

		case Persona:
			p := l.ask("Choose assistant personality: " + strings.Join(prompt.Personalities(), ", "))
			if p == "" {
				continue
			}
			l.Sess.Personality = strings.ToLower(p)
			l.Out.Info("personality set to " + l.Sess.Personality)

		case GPT:
			// A one-off mode for a single request; the session mode is untouched.
			mode := strings.ToLower(l.ask("Choose GPT mode: " + strings.Join(prompt.Modes(), ", ")))
			text := l.ask("Enter your text for GPT")
			if text == "" {
				continue
			}
			reply, err := l.turn(ctx, mode, text)
			if err != nil {
				l.Out.Error("could not complete request", err)
				continue
			}
			l.Out.Reply(reply)
			_ = l.Speak.Say(reply)
			l.Out.Reaction(fun.RandomReaction())

		case Chat:
			sentiment := fun.Sentiment(cmd.Text)
			reply, err := l.turn(ctx, l.Sess.Mode, cmd.Text)
			if err != nil {
				l.Out.Error("could not complete request", err)
				continue
			}
			l.Out.Reply(reply)
			_ = l.Speak.Say(reply)
			l.Out.Reaction(fun.Reaction(sentiment))
		}
	}
}

// turn runs one completion. The outgoing request substitutes the effective
// system message for the stored seed; the transcript gains the user and
// assistant turns only after the call succeeds, so a failed call leaves no
// dangling user turn behind.
func (l *Loop) turn(ctx context.Context, mode, text string) (string, error) {
	effective := store.Message{
		Role:    store.RoleSystem,
		Content: prompt.Compose(mode, l.Sess.Personality),
	}
	outgoing := append([]store.Message{effective}, l.Sess.History()...)
	outgoing = append(outgoing, store.Message{Role: store.RoleUser, Content: text})

	reply, err := l.Client.Complete(ctx, outgoing)
	if err != nil {
		return "", err
	}
	reply = fun.AutoEmoji(reply)
	l.Sess.AppendUser(text)
	l.Sess.AppendAssistant(reply)
	return reply, nil
}

// save folds the active session into the store and rewrites the document.
func (l *Loop) save() error {
	l.Users[l.Sess.User] = l.Sess.Messages()
	return store.Save(l.StorePath, l.Users)
}

// ask prompts for one sub-input, e.g. the city for the weather command.
func (l *Loop) ask(label string) string {
	l.Out.Prompt(label)
	line, err := l.In.ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// Greeting picks the salutation for the welcome panel by hour of day.
func Greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour >= 5 && hour < 12:
		return "Good morning"
	case hour >= 12 && hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
