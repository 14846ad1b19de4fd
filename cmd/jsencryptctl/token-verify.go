package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lei40251/jsencrypt/pkg/token"
)

var tokenVerifyCmd = &cobra.Command{
	Use:   "verify [token|-]",
	Short: "Verify a signed token and print its claims",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyPath, err := cmd.Flags().GetString("key")
		if err != nil {
			return err
		}

		e, err := newFacade(keyPath)
		if err != nil {
			return err
		}
		key, err := e.Key()
		if err != nil {
			return err
		}

		raw, err := readInput(args)
		if err != nil {
			return err
		}

		claims, err := token.NewIssuer(key, 0).Verify(strings.TrimSpace(raw))
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(claims, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	tokenVerifyCmd.Flags().String("key", "", "path to the key file")
	tokenVerifyCmd.MarkFlagRequired("key")
	tokenCmd.AddCommand(tokenVerifyCmd)
}
