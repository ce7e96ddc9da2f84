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
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"palaver/internal/chat"
	"palaver/internal/store"
)

// peepCmd represents the peep command
var peepCmd = &cobra.Command{
	Use:   "peep [user]",
	Short: "look at a saved conversation without opening a session",
	Long: `Without arguments, list the user names in the store document.
With a user name, print that user's saved transcript.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		storePath := viper.GetString("store")
		users, err := store.Load(storePath)
		checkError(err, "could not load saved conversations from "+storePath, true)

		if len(args) == 0 {
			if len(users) == 0 {
				fmt.Println("no saved conversations in " + storePath)
				return
			}
			names := make([]string, 0, len(users))
			for name := range users {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%s (%d turns)\n", name, len(users[name])-1)
			}
			return
		}

		name := args[0]
		transcript, ok := users[name]
		if !ok {
			log.Fatal("no saved conversation for user: " + name)
		}

		out := chat.NewTerminal(viper.GetBool("quiet"))
		color.Cyan("--- 💬 Conversation History: %s ---", name)
		for _, m := range transcript {
			if m.Role == store.RoleSystem {
				// the declared persona, not a turn
				fmt.Println(color.New(color.Faint).Sprint("persona: " + m.Content))
				continue
			}
			out.HistoryEntry(time.Now(), m.Role, m.Content)
		}
	},
}

func init() {
	rootCmd.AddCommand(peepCmd)
}
