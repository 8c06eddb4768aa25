// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/passgen"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/validators"
	"github.com/MKhiriev/go-secret-vault/models"
)

// masterPasswordEnv lets scripts supply the master password without a
// terminal prompt.
const masterPasswordEnv = "VAULT_MASTER_PASSWORD"

// app dispatches vaultctl subcommands to the vault engine.
type app struct {
	vault     service.Vault
	generator *passgen.Generator
	validator validators.Validator
	logger    *logger.Logger
}

func newApp(vault service.Vault, generator *passgen.Generator, validator validators.Validator, log *logger.Logger) *app {
	return &app{
		vault:     vault,
		generator: generator,
		validator: validator,
		logger:    log,
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printUsage()
		return fmt.Errorf("no command given")
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("dispatching command")

	switch command {
	case "init":
		return a.initVault(ctx)
	case "add":
		return a.addCredential(ctx, rest)
	case "get":
		return a.getCredential(ctx, rest)
	case "list":
		return a.listCredentials(ctx)
	case "delete":
		return a.deleteCredential(ctx, rest)
	case "generate":
		return a.generatePassword(ctx, rest)
	case "auth-hash":
		return a.printAuthHash(ctx)
	case "help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) initVault(ctx context.Context) error {
	meta, err := a.vault.Init(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Vault initialized (KDF iterations: %d)\n", meta.KDFIterations)
	return nil
}

func (a *app) addCredential(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password (omit to be prompted)")
	email := fs.String("email", "", "email address")
	url := fs.String("url", "", "site URL")
	notes := fs.String("notes", "", "free-form notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: vaultctl add [flags] <name>")
	}
	name := fs.Arg(0)

	if *password == "" {
		entered, err := promptSecret("Password for " + name + ": ")
		if err != nil {
			return err
		}
		*password = entered
	}

	credential := models.Credential{
		Name: name,
		Fields: map[string]string{
			models.FieldUsername: *username,
			models.FieldPassword: *password,
			models.FieldEmail:    *email,
			models.FieldURL:      *url,
			models.FieldNotes:    *notes,
		},
	}
	if err := a.validator.Validate(ctx, credential); err != nil {
		return err
	}

	session, err := a.unlock(ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	item, err := a.vault.AddCredential(ctx, session, credential)
	if err != nil {
		return err
	}

	fmt.Printf("Stored %q (id: %s)\n", item.Name, item.ID)
	return nil
}

func (a *app) getCredential(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: vaultctl get <id>")
	}

	session, err := a.unlock(ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	credential, err := a.vault.GetCredential(ctx, session, args[0])
	if err != nil {
		return err
	}

	fmt.Println(credential.Name)
	for _, field := range []string{models.FieldUsername, models.FieldPassword, models.FieldEmail, models.FieldURL, models.FieldNotes} {
		if value, ok := credential.Fields[field]; ok {
			fmt.Printf("  %-10s %s\n", field+":", value)
		}
	}
	return nil
}

func (a *app) listCredentials(ctx context.Context) error {
	items, err := a.vault.ListCredentials(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("Vault is empty")
		return nil
	}

	for _, item := range items {
		fmt.Printf("%s  %s  (updated %s)\n", item.ID, item.Name, item.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *app) deleteCredential(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: vaultctl delete <id>")
	}

	if err := a.vault.DeleteCredential(ctx, args[0]); err != nil {
		return err
	}

	fmt.Println("Deleted", args[0])
	return nil
}

func (a *app) generatePassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	length := fs.Int("length", 16, "password length")
	upper := fs.Bool("upper", true, "include uppercase letters")
	lower := fs.Bool("lower", true, "include lowercase letters")
	numbers := fs.Bool("numbers", true, "include digits")
	symbols := fs.Bool("symbols", true, "include symbols")
	copyToClipboard := fs.Bool("copy", false, "copy the password to the clipboard instead of printing it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := models.GeneratorOptions{
		Length:           *length,
		IncludeUppercase: *upper,
		IncludeLowercase: *lower,
		IncludeNumbers:   *numbers,
		IncludeSymbols:   *symbols,
	}
	if err := a.validator.Validate(ctx, opts); err != nil {
		return err
	}

	password, err := a.generator.Generate(opts)
	if err != nil {
		return err
	}

	report := passgen.Score(password)
	if *copyToClipboard {
		if err = clipboard.WriteAll(password); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Printf("Password copied to clipboard (strength: %s, %d/100)\n", report.Label, report.Score)
		return nil
	}

	fmt.Println(password)
	fmt.Printf("Strength: %s (%d/100)\n", report.Label, report.Score)
	return nil
}

// printAuthHash prints the server-side login verifier for the master
// password. The verifier is safe to transmit; it cannot decrypt the vault.
func (a *app) printAuthHash(ctx context.Context) error {
	masterPassword, err := readMasterPassword()
	if err != nil {
		return err
	}

	hash, err := a.vault.AuthHash(ctx, masterPassword)
	if err != nil {
		return err
	}

	fmt.Println(hash)
	return nil
}

func (a *app) unlock(ctx context.Context) (*crypto.Session, error) {
	masterPassword, err := readMasterPassword()
	if err != nil {
		return nil, err
	}
	return a.vault.Unlock(ctx, masterPassword)
}

func readMasterPassword() (string, error) {
	if password := os.Getenv(masterPasswordEnv); password != "" {
		return password, nil
	}
	return promptSecret("Master password: ")
}

// promptSecret reads a line without echo when stdin is a terminal, and
// falls back to a plain line read when it is not (pipes, tests).
func promptSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return string(raw), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printUsage() {
	fmt.Fprint(os.Stderr, `Usage: vaultctl [global flags] <command> [command flags]

Commands:
  init                     create the vault (salt + KDF parameters)
  add [flags] <name>       encrypt and store a credential
  get <id>                 decrypt and print a credential
  list                     list stored entries (names only, no decryption)
  delete <id>              remove an entry
  generate [flags]         generate a random password and score it
  auth-hash                print the server login verifier
  help                     show this help

Global flags: -d <db file>, -iterations <n>, -role <label>, -c/-config <json file>
`)
}
