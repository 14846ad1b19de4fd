// Package main implements jsencryptctl, the command-line front end for
// the jsencrypt RSA facade.
//
// # Quick Start
//
//	# Generate a key pair
//	jsencryptctl key generate --out key.pem --pub-out key.pub
//
//	# Encrypt and decrypt text of any length
//	jsencryptctl encrypt --key key.pub "a secret message"
//	jsencryptctl decrypt --key key.pem <base64>
//
//	# Sign and verify
//	jsencryptctl sign --key key.pem "a message"
//	jsencryptctl verify --key key.pub --signature <base64> "a message"
//
//	# Issue and verify signed tokens
//	jsencryptctl token issue --key key.pem --subject alice
//	jsencryptctl token verify --key key.pub <token>
//
// # Configuration
//
// Settings are read from /etc/jsencrypt/jsencrypt.yml, or the file named
// by --config or JSENCRYPT_CONFIG_PATH. Individual settings can be
// overridden with JSENCRYPT_KEY_SIZE, JSENCRYPT_PUBLIC_EXPONENT,
// JSENCRYPT_AUTO_GENERATE, JSENCRYPT_LOG and JSENCRYPT_TOKEN_TTL.
package main
