// admintoken prints a bcrypt hash for AUTH_ADMIN_PASSWORD_HASH, or mints an
// admin bearer token signed with AUTH_SECRET.
//
//	go run ./cmd/tools/admintoken hash --password 's3cret'
//	go run ./cmd/tools/admintoken mint --subject ops --ttl 1h
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"

	"fitoapteka.kz/app/internal/modules/admin"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		log.Fatal("usage: admintoken hash|mint [flags]")
	}

	var err error
	switch os.Args[1] {
	case "hash":
		err = hash(os.Args[2:])
	case "mint":
		err = mint(os.Args[2:])
	default:
		err = fmt.Errorf("unknown command %q", os.Args[1])
	}
	if err != nil {
		log.Fatal(err)
	}
}

func hash(args []string) error {
	fs := pflag.NewFlagSet("hash", pflag.ExitOnError)
	password := fs.String("password", "", "password to hash (read from stdin when empty)")
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	_ = fs.Parse(args)

	pw := *password
	if pw == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read password: %w", err)
		}
		pw = strings.TrimRight(line, "\r\n")
	}
	if pw == "" {
		return fmt.Errorf("empty password")
	}

	h, err := bcrypt.GenerateFromPassword([]byte(pw), *cost)
	if err != nil {
		return err
	}
	fmt.Println(string(h))
	return nil
}

func mint(args []string) error {
	fs := pflag.NewFlagSet("mint", pflag.ExitOnError)
	secret := fs.String("secret", os.Getenv("AUTH_SECRET"), "signing secret (defaults to AUTH_SECRET)")
	subject := fs.String("subject", "admin", "token subject")
	ttl := fs.Duration("ttl", admin.TokenTTL, "token lifetime")
	_ = fs.Parse(args)

	signed, exp, err := admin.NewTokens(*secret).Issue(*subject, admin.RoleAdmin, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(signed)
	fmt.Fprintf(os.Stderr, "expires %s\n", exp.UTC().Format(time.RFC3339))
	return nil
}
