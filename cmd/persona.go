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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"palaver/internal/prompt"
)

// personaCmd represents the persona command
var personaCmd = &cobra.Command{
	Args:  cobra.MaximumNArgs(1),
	Use:   "persona [name]",
	Short: "show the built-in personalities and their tone",
	Long: `Without arguments, print the default personality and list the built-in
ones. With a name, print the tone text that personality produces.
Unknown names fall back to witty, same as inside a chat.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("default: " + viper.GetString("default-personality"))
			for _, name := range prompt.Personalities() {
				fmt.Printf("%-12s %s\n", name, prompt.Tone(name))
			}
			return
		}
		fmt.Println(prompt.Tone(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(personaCmd)
}
