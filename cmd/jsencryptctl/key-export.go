package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a key in PEM or bare base64 form",
	RunE: func(cmd *cobra.Command, args []string) error {
		keyPath, err := cmd.Flags().GetString("key")
		if err != nil {
			return err
		}
		public, err := cmd.Flags().GetBool("public")
		if err != nil {
			return err
		}
		b64, err := cmd.Flags().GetBool("b64")
		if err != nil {
			return err
		}

		e, err := newFacade(keyPath)
		if err != nil {
			return err
		}

		var out string
		switch {
		case public && b64:
			out, err = e.PublicKeyB64()
		case public:
			out, err = e.PublicKeyPEM()
		case b64:
			out, err = e.PrivateKeyB64()
		default:
			out, err = e.PrivateKeyPEM()
		}
		if err != nil {
			return err
		}

		if b64 {
			fmt.Println(out)
		} else {
			fmt.Print(out)
		}
		return nil
	},
}

func init() {
	keyExportCmd.Flags().String("key", "", "path to the key file")
	keyExportCmd.MarkFlagRequired("key")
	keyExportCmd.Flags().Bool("public", false, "export the public half")
	keyExportCmd.Flags().Bool("b64", false, "emit bare base64 DER instead of PEM")
	keyCmd.AddCommand(keyExportCmd)
}
