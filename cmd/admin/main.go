package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"alora/config"
	"alora/di"
	"alora/internal/domains/user/model/dto"
	"alora/shared/logger"

	"github.com/rs/zerolog/log"
)

const usage = "usage: admin create -email <email> -password <password> [-level superadmin|admin|staff]"

func main() {
	if len(os.Args) < 2 || os.Args[1] != "create" {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg, os.Stdout)

	fs := flag.NewFlagSet("create", flag.ExitOnError)
	email := fs.String("email", "", "admin email address")
	password := fs.String("password", "", "admin password, 8 to 72 characters")
	level := fs.String("level", "", "admin level, defaults to admin")

	if err := fs.Parse(os.Args[2:]); err != nil {
		log.Fatal().Err(err).Msg("Failed to parse arguments")
	}

	user, err := di.InitializeAdmin().CreateAdmin(context.Background(), dto.CreateAdminRequest{
		Email:    *email,
		Password: *password,
		Level:    *level,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin")
	}

	log.Info().Str("id", user.ID).Str("email", user.Email).Str("level", user.Level).Msg("Admin created")
}
