/*
Copyright © 2023 Zak Reynolds <zak.reynolds@zakjr.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package cmd

import (
	"bufio"
	"context"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"palaver/internal/chat"
	"palaver/internal/llm"
	"palaver/internal/prompt"
	"palaver/internal/session"
	"palaver/internal/store"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "start an interactive chat session",
	Long: `Start an interactive conversation. Your history is kept per user name
in the store document and picked up again next time.

Inside the loop: exit, history, switch_user, fact, ascii, emoji, gpt,
weather, mode, persona. Anything else is a chat turn.`,
	Run: func(cmd *cobra.Command, args []string) {
		storePath := viper.GetString("store")
		users, err := store.Load(storePath)
		checkError(err, "could not load saved conversations from "+storePath, true)

		quiet := viper.GetBool("quiet")
		out := chat.NewTerminal(quiet)
		reader := bufio.NewReader(os.Stdin)

		if !quiet {
			out.Panel(chat.Greeting(time.Now())+"! Welcome to palaver!",
				"Commands: exit, history, fact, ascii, emoji, gpt, weather, switch_user, mode, persona\n"+
					"GPT modes: "+strings.Join(prompt.Modes(), ", "))
		}

		// Deliberately not viper-bound: AutomaticEnv would resolve a "user"
		// key from $USER and skip the name prompt.
		user, _ := cmd.Flags().GetString("user")
		for user == "" {
			user = promptLine(out, reader, "Enter your name")
		}

		personality, _ := cmd.Flags().GetString("personality")
		if personality == "" {
			fallback := viper.GetString("default-personality")
			personality = promptLine(out, reader,
				"Choose assistant personality ("+strings.Join(prompt.Personalities(), ", ")+") ["+fallback+"]")
			if personality == "" {
				personality = fallback
			}
		}

		sess := session.New(user, strings.ToLower(personality), users[user])

		var client llm.Client = newClient()
		if !quiet {
			s := spinner.New(spinner.CharSets[19], 100*time.Millisecond)
			s.Prefix = "╰─ "
			s.Color("cyan")
			client = spinnerClient{inner: client, s: s}
		}

		var speak chat.Speaker = chat.NopSpeaker{}
		if viper.GetBool("speak") {
			speak = chat.NewExecSpeaker()
		}

		loop := &chat.Loop{
			Sess:      sess,
			Users:     users,
			StorePath: storePath,
			Client:    client,
			In:        reader,
			Out:       out,
			Speak:     speak,
		}
		err = loop.Run(context.Background())
		checkError(err, "chat session ended early", false)
	},
}

// spinnerClient wraps the gateway so the spinner runs exactly for the
// duration of each completion call.
type spinnerClient struct {
	inner llm.Client
	s     *spinner.Spinner
}

func (c spinnerClient) Complete(ctx context.Context, msgs []store.Message) (string, error) {
	c.s.Start()
	defer c.s.Stop()
	return c.inner.Complete(ctx, msgs)
}

func promptLine(out *chat.Terminal, reader *bufio.Reader, label string) string {
	out.Prompt(label)
	line, err := reader.ReadString('\n')
	checkError(err, "problem reading stdin", true)
	return strings.TrimSpace(line)
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().String("user", "", "user name to chat as (skips the name prompt)")

	chatCmd.Flags().String("personality", "", "assistant personality: witty, professional, fun, friendly")

	chatCmd.Flags().Bool("speak", false, "speak replies through the system TTS command")
	viper.BindPFlag("speak", chatCmd.Flags().Lookup("speak"))
}
