// Package main provides a CLI tool for generating caller tokens for the
// verisbt API. Tokens signed with the dev key will NOT work in production.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	jwttoken "verisbt/internal/jwt_token"
	"verisbt/internal/platform/config"
	id "verisbt/pkg/domain"
)

const defaultTokenTTL = 15 * time.Minute

type tokenOutput struct {
	Token     string            `json:"token"`
	Caller    string            `json:"caller"`
	ExpiresIn string            `json:"expires_in"`
	Key       string            `json:"private_key,omitempty"`
	Usage     map[string]string `json:"usage"`
}

func main() {
	callerCmd := flag.NewFlagSet("caller", flag.ExitOnError)
	callerAddress := callerCmd.String("address", "", "Caller account address (0x...). Required.")
	callerTTL := callerCmd.Duration("ttl", defaultTokenTTL, "Token time-to-live")
	callerJSON := callerCmd.Bool("json", false, "Output as JSON")

	randomCmd := flag.NewFlagSet("random", flag.ExitOnError)
	randomTTL := randomCmd.Duration("ttl", defaultTokenTTL, "Token time-to-live")
	randomJSON := randomCmd.Bool("json", false, "Output as JSON")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "caller":
		_ = callerCmd.Parse(os.Args[2:])
		addr, err := id.ParseAddress(*callerAddress)
		if err != nil {
			fail("invalid -address: %v", err)
		}
		out := generate(addr, *callerTTL)
		printToken(out, *callerJSON)
	case "random":
		_ = randomCmd.Parse(os.Args[2:])
		key, err := crypto.GenerateKey()
		if err != nil {
			fail("generate key: %v", err)
		}
		out := generate(crypto.PubkeyToAddress(key.PublicKey), *randomTTL)
		out.Key = common.Bytes2Hex(crypto.FromECDSA(key))
		printToken(out, *randomJSON)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tokengen - Generate caller tokens for the verisbt API

The signing key is read from JWT_SIGNING_KEY and defaults to the dev key.

Usage:
  tokengen <command> [flags]

Commands:
  caller    Sign a token for a given account address
  random    Create a fresh account and sign a token for it

Examples:
  # Token for the owner configured in VSBT_OWNER_ADDRESS
  tokengen caller -address 0x00000000000000000000000000000000000000a1

  # Throwaway holder account, as JSON
  tokengen random -json

Use "tokengen <command> -h" for more information about a command.`)
}

func generate(caller common.Address, ttl time.Duration) tokenOutput {
	signingKey := os.Getenv("JWT_SIGNING_KEY")
	keyType := "env"
	if signingKey == "" {
		signingKey = config.DevJWTSigningKey
		keyType = "dev"
	}

	svc := jwttoken.NewJWTService(signingKey, jwttoken.DefaultIssuer, jwttoken.DefaultAudience, ttl)
	token, err := svc.GenerateCallerToken(context.Background(), caller)
	if err != nil {
		fail("generate token: %v", err)
	}
	return tokenOutput{
		Token:     token,
		Caller:    caller.Hex(),
		ExpiresIn: ttl.String(),
		Usage: map[string]string{
			"header":      "Authorization: Bearer <token>",
			"signing_key": keyType,
		},
	}
}

func printToken(out tokenOutput, asJSON bool) {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fail("encode output: %v", err)
		}
		return
	}
	fmt.Println("Caller Token (JWT)")
	fmt.Println("==================")
	fmt.Printf("Signing Key: %s\n", out.Usage["signing_key"])
	fmt.Printf("Expires In:  %s\n", out.ExpiresIn)
	fmt.Printf("Caller:      %s\n", out.Caller)
	if out.Key != "" {
		fmt.Printf("Private Key: %s\n", out.Key)
	}
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(out.Token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  curl -H \"Authorization: Bearer <token>\" http://localhost:8080/tokens/mint ...")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
