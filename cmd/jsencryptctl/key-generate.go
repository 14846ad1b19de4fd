package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lei40251/jsencrypt"
)

var keyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a fresh RSA key pair",
	Long: `Generate a fresh RSA key pair.

The private key is written in PEM form to --out, or to standard output
when --out is omitted. The matching public key can be written alongside
it with --pub-out. Key size and public exponent default to the values in
the configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}

		size, err := cmd.Flags().GetInt("size")
		if err != nil {
			return err
		}
		if size == 0 {
			size = conf.ResolvedKeySize()
		}

		e := jsencrypt.New(jsencrypt.Options{
			KeySize:     size,
			ExponentHex: conf.Exponent,
		})
		key, err := e.GenerateKey()
		if err != nil {
			return err
		}

		privPEM, err := e.PrivateKeyPEM()
		if err != nil {
			return err
		}

		outPath, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}
		if outPath == "" {
			fmt.Print(privPEM)
		} else if err := os.WriteFile(outPath, []byte(privPEM), 0o600); err != nil {
			return err
		}

		pubPath, err := cmd.Flags().GetString("pub-out")
		if err != nil {
			return err
		}
		if pubPath != "" {
			pubPEM, err := e.PublicKeyPEM()
			if err != nil {
				return err
			}
			if err := os.WriteFile(pubPath, []byte(pubPEM), 0o644); err != nil {
				return err
			}
		}

		fmt.Fprintf(os.Stderr, "Generated %d-bit key %s\n", key.BitLength(), key.Fingerprint())
		return nil
	},
}

func init() {
	keyGenerateCmd.Flags().Int("size", 0, "key size in bits (defaults to the configured size)")
	keyGenerateCmd.Flags().String("out", "", "file to write the private key PEM to")
	keyGenerateCmd.Flags().String("pub-out", "", "file to write the public key PEM to")
	keyCmd.AddCommand(keyGenerateCmd)
}
