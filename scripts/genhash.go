//go:build ignore

// Generates bcrypt hashes for seeding test accounts.
//
//	go run scripts/genhash.go password1 password2
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password> [...]")
		os.Exit(1)
	}
	for _, pw := range os.Args[1:] {
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), 10)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		fmt.Printf("%s  %s\n", pw, hash)
	}
}
