package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lei40251/jsencrypt/pkg/token"
)

var tokenIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue a signed token for a subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		keyPath, err := cmd.Flags().GetString("key")
		if err != nil {
			return err
		}
		subject, err := cmd.Flags().GetString("subject")
		if err != nil {
			return err
		}
		ttl, err := cmd.Flags().GetDuration("ttl")
		if err != nil {
			return err
		}
		rawClaims, err := cmd.Flags().GetStringArray("claim")
		if err != nil {
			return err
		}

		extra := make(map[string]any, len(rawClaims))
		for _, raw := range rawClaims {
			name, value, found := strings.Cut(raw, "=")
			if !found {
				return fmt.Errorf("claim %q is not in name=value form", raw)
			}
			extra[name] = value
		}

		conf, err := loadConfig()
		if err != nil {
			return err
		}
		if ttl == 0 {
			ttl = conf.ResolvedTokenTTL()
		}

		e, err := newFacade(keyPath)
		if err != nil {
			return err
		}
		key, err := e.Key()
		if err != nil {
			return err
		}

		signed, err := token.NewIssuer(key, ttl).Issue(subject, extra)
		if err != nil {
			return err
		}

		fmt.Println(signed)
		return nil
	},
}

func init() {
	tokenIssueCmd.Flags().String("key", "", "path to the private key file")
	tokenIssueCmd.MarkFlagRequired("key")
	tokenIssueCmd.Flags().String("subject", "", "subject the token is issued for")
	tokenIssueCmd.MarkFlagRequired("subject")
	tokenIssueCmd.Flags().Duration("ttl", 0, "token lifetime (defaults to the configured lifetime)")
	tokenIssueCmd.Flags().StringArray("claim", nil, "extra claim in name=value form, repeatable")
	tokenCmd.AddCommand(tokenIssueCmd)
}
