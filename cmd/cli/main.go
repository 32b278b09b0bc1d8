package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/kevinjame2233/Carryluxe-Full1/internal/config"
	"github.com/kevinjame2233/Carryluxe-Full1/internal/models"
	"github.com/kevinjame2233/Carryluxe-Full1/internal/store"
)

func main() {
	setAdminCmd := flag.NewFlagSet("set-admin", flag.ExitOnError)
	email := setAdminCmd.String("email", "", "Email for the admin account")
	password := setAdminCmd.String("password", "", "Password for the admin account")

	if len(os.Args) < 2 {
		fmt.Println("expected 'set-admin' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "set-admin":
		setAdminCmd.Parse(os.Args[2:])
		if *email == "" || *password == "" {
			fmt.Println("email and password are required")
			setAdminCmd.PrintDefaults()
			os.Exit(1)
		}
		setAdmin(*email, *password)
	default:
		fmt.Println("expected 'set-admin' subcommand")
		os.Exit(1)
	}
}

// setAdmin writes the singleton credential, replacing whatever is
// stored. Uses the same backend selection as the server.
func setAdmin(email, password string) {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	var db store.Store
	if cfg.MongoURI != "" {
		db, err = store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDB)
	} else {
		db, err = store.NewFileStore(cfg.DataDir)
	}
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer db.Close(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := db.PutAdmin(ctx, &models.Admin{Email: email, Hash: string(hash)}); err != nil {
		log.Fatalf("Failed to store admin: %v", err)
	}

	fmt.Printf("Admin '%s' configured successfully.\n", email)
}
