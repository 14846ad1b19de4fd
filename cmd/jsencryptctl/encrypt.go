package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt [text|-]",
	Short: "Encrypt text of any length",
	Long: `Encrypt text of any length.

Input longer than a single RSA block is split into chunks transparently.
The result is a single base64 string which decrypt accepts back. With
--private the private key is used for encryption so that holders of the
public key can decrypt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyPath, err := cmd.Flags().GetString("key")
		if err != nil {
			return err
		}
		usePrivate, err := cmd.Flags().GetBool("private")
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

		var out string
		if usePrivate {
			out, err = e.EncryptWithPrivateKey([]byte(text))
		} else {
			out, err = e.Encrypt([]byte(text))
		}
		if err != nil {
			return err
		}

		fmt.Println(out)
		return nil
	},
}

func init() {
	encryptCmd.Flags().String("key", "", "path to the key file")
	encryptCmd.MarkFlagRequired("key")
	encryptCmd.Flags().Bool("private", false, "encrypt with the private key")
	rootCmd.AddCommand(encryptCmd)
}
