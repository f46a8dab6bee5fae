// hashpass genera un digest bcrypt con el costo configurado (AUTH_BCRYPT_COST),
// para sembrar usuarios directamente en la base de datos.
//
// Uso: go run ./cmd/hashpass [contraseña]
// Sin argumento lee la contraseña de la primera línea de stdin.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/mascotas-api/pkg/config"
	"github.com/jhoicas/mascotas-api/pkg/password"
)

func main() {
	cost := password.DefaultCost
	if cfg, err := config.Load(); err == nil {
		cost = cfg.Auth.BcryptCost
	} else {
		fmt.Fprintf(os.Stderr, "Configuración no disponible, costo %d: %v\n", cost, err)
	}

	plain, err := readPassword()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer contraseña: %v\n", err)
		os.Exit(1)
	}
	if plain == "" {
		fmt.Fprintln(os.Stderr, "Contraseña vacía")
		os.Exit(1)
	}

	digest, err := password.NewHasher(cost).Hash(plain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(digest)
}

func readPassword() (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
