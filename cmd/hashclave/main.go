package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Genera el hash bcrypt de la clave compartida del taller para ponerlo en
// TALLER_PASSWORD_HASH.
//
//	go run ./cmd/hashclave 'mi-clave-nueva'
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "uso: hashclave <clave>")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generando el hash: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}
