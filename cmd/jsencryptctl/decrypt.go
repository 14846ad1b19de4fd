package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt [base64|-]",
	Short: "Decrypt a base64 ciphertext",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyPath, err := cmd.Flags().GetString("key")
		if err != nil {
			return err
		}
		usePublic, err := cmd.Flags().GetBool("public")
		if err != nil {
			return err
		}

		e, err := newFacade(keyPath)
		if err != nil {
			return err
		}
		ciphertext, err := readInput(args)
		if err != nil {
			return err
		}
		ciphertext = strings.TrimSpace(ciphertext)

		var out []byte
		if usePublic {
			out, err = e.DecryptWithPublicKey(ciphertext)
		} else {
			out, err = e.Decrypt(ciphertext)
		}
		if err != nil {
			return err
		}

		fmt.Println(string(out))
		return nil
	},
}

func init() {
	decryptCmd.Flags().String("key", "", "path to the key file")
	decryptCmd.MarkFlagRequired("key")
	decryptCmd.Flags().Bool("public", false, "decrypt with the public key")
	rootCmd.AddCommand(decryptCmd)
}
