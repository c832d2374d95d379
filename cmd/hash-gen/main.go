package main

import (
	"fmt"
	"log"
	"os"

	"vendor-kyc.backend/pkg/crypto"
)

var (
	printfFn       = fmt.Printf
	generateHashFn = generateHash
	fatalfFn       = log.Fatalf
)

func generateHash(password string) (string, error) {
	return crypto.HashPassword(password)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: hash-gen <password>")
		os.Exit(2)
	}
	password := os.Args[1]

	hash, err := generateHashFn(password)
	if err != nil {
		fatalfFn("Failed to hash password: %v", err)
	}

	printfFn("Bcrypt Hash: %s\n", hash)
}
