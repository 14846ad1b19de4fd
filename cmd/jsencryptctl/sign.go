package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var signCmd = &cobra.Command{
	Use:   "sign [text|-]",
	Short: "Sign a message with the private key",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyPath, err := cmd.Flags().GetString("key")
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

		signature, err := e.Sign([]byte(text), hash)
		if err != nil {
			return err
		}

		fmt.Println(signature)
		return nil
	},
}

func init() {
	signCmd.Flags().String("key", "", "path to the private key file")
	signCmd.MarkFlagRequired("key")
	signCmd.Flags().String("hash", "sha256", "digest to sign with (sha1, sha256, sha384, sha512)")
	rootCmd.AddCommand(signCmd)
}
