package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lei40251/jsencrypt"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:     "jsencryptctl",
	Short:   "RSA key management, encryption and signing",
	Long:    `A command-line front end for the jsencrypt RSA facade: generate and export keys, encrypt and decrypt data of any length, sign and verify messages, and issue signed tokens.`,
	Version: jsencrypt.Version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the configuration file")
}

func main() {
	Execute()
}
