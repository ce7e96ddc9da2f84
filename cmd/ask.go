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
	"fmt"
	"io"
	"os"
	"time"

	termutil "github.com/andrew-d/go-termutil"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"palaver/internal/prompt"
	"palaver/internal/store"
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask [prompt]",
	Short: "ask a one-shot question without touching the history",
	Long: `Run a single completion and print the reply. Piped stdin is appended
to the prompt, so things like "git diff | palaver ask --mode summarize"
work. Nothing is saved.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// start with a blank user prompt
		userPrompt := ""
		if len(args) > 0 {
			userPrompt += args[0]
		}

		// if stdin was provided, add that to prompt
		if !termutil.Isatty(os.Stdin.Fd()) {
			inreader := bufio.NewReader(os.Stdin)
			pipedinput, err := io.ReadAll(inreader)
			if err == nil {
				userPrompt += "\n\n"
				userPrompt += string(pipedinput)
			}
		}

		mode, _ := cmd.Flags().GetString("mode")
		personality := viper.GetString("default-personality")

		// print something for ux
		s := spinner.New(spinner.CharSets[19], 100*time.Millisecond)
		if !viper.GetBool("quiet") {
			s.Color("cyan")
			s.Prefix = "╰─ "
			s.Start()
		}

		messages := []store.Message{
			{Role: store.RoleSystem, Content: prompt.Compose(mode, personality)},
			{Role: store.RoleUser, Content: userPrompt},
		}
		reply, err := newClient().Complete(context.Background(), messages)
		if s.Active() {
			s.Stop()
		}
		checkError(err, "could not complete request to openai", true)

		fmt.Println("╰─ " + reply)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().String("mode", "chat", "request mode: chat, summarize, explain, code")
}
