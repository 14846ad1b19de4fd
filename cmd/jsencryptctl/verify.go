package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [text|-]",
	Short: "Verify a signature against a message",
	Long: `Verify a signature against a message.

Prints "Verified OK" and exits zero when the signature matches. A
well-formed signature that does not match exits with status 1. Malformed
input is reported as an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyPath, err := cmd.Flags().GetString("key")
		if err != nil {
			return err
		}
		signature, err := cmd.Flags().GetString("signature")
		if err != nil {
			return err
		}
		hashName, err := cmd.Flags().GetString("hash")
		if err != nil {
			return err
		}
		hash, err := hashByName(hashName)
		if err != nil {
			return err
		}

		e, err := newFacade(keyPath)
		if err != nil {
			return err
		}
		text, err := readInput(args)
		if err != nil {
			return err
		}

		ok, err := e.Verify([]byte(text), strings.TrimSpace(signature), hash)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "Verification failure")
			os.Exit(1)
		}

		fmt.Println("Verified OK")
		return nil
	},
}

func init() {
	verifyCmd.Flags().String("key", "", "path to the key file")
	verifyCmd.MarkFlagRequired("key")
	verifyCmd.Flags().String("signature", "", "base64 signature to check")
	verifyCmd.MarkFlagRequired("signature")
	verifyCmd.Flags().String("hash", "sha256", "digest the signature was made with")
	rootCmd.AddCommand(verifyCmd)
}
