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
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"palaver/internal/llm"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "palaver",
	Short: "a GPT-powered terminal chat client with durable per-user history",
	Long: `palaver wraps a hosted completion endpoint in a terminal chat loop.
Conversations are kept per user in a single pretty-printed JSON document,
personalities set the assistant's tone, and modes (chat, summarize,
explain, code) shape individual requests without touching the declared
persona.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/palaver/config.yml)")

	rootCmd.PersistentFlags().Bool("quiet", false, "hide the CLI ux and only show model output")
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.PersistentFlags().String("store", "", "path of the users history document")
	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
}

// initConfig reads in the .env file, the config file, and matching env vars.
func initConfig() {
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in ~/.config/palaver/ with name "config" (without extension).
		viper.AddConfigPath(home + "/.config/palaver/")
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	viper.SetDefault("model", "gpt-4o-mini")
	viper.SetDefault("default-personality", "witty")
	viper.SetDefault("store", "users_chat_history.json")

	viper.BindEnv("openai-api-key", "OPENAI_API_KEY")
	viper.BindEnv("openai-base-url", "OPENAI_BASE_URL")
	viper.BindEnv("default-personality", "DEFAULT_PERSONALITY")
	viper.AutomaticEnv() // read in environment variables that match

	// Env-only setups are fine, so a missing default config file is not worth
	// a warning; an explicitly flagged one is.
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintln(os.Stderr, "could not load config file")
	}
}

func newClient() llm.Client {
	return llm.NewOpenAI(
		viper.GetString("openai-api-key"),
		viper.GetString("openai-base-url"),
		viper.GetString("model"),
	)
}

func checkError(err error, message string, isFatal bool) {
	if err != nil {
		fmt.Println(message)
		if isFatal {
			log.Fatal(err)
		} else {
			fmt.Println(err)
		}
	}
}
