// Command seed creates the admin account and optional demo data.
//
//	seed --admin           create the admin from ADMIN_EMAIL / ADMIN_PASSWORD
//	seed --sample          create the demo user and upsert the sample sweets
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
	"github.com/sweetshop/sweet-inventory/internal/core/ports"
	"github.com/sweetshop/sweet-inventory/internal/core/service"
	"github.com/sweetshop/sweet-inventory/internal/infrastructure/db/mongo"
	"github.com/sweetshop/sweet-inventory/internal/pkg/config"
	"github.com/sweetshop/sweet-inventory/pkg/logger"
)

func main() {
	admin := flag.Bool("admin", false, "create the admin user")
	sample := flag.Bool("sample", false, "create the demo user and sample sweets")
	flag.Parse()

	if !*admin && !*sample {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), *admin, *sample); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, admin, sample bool) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "seed"})

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	auth := service.NewAuthService(mongo.NewUserRepository(db), service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL), log)

	if admin {
		if err := ensureUser(ctx, auth, log, ports.RegisterInput{
			Name:     "Admin",
			Email:    cfg.Seed.AdminEmail,
			Password: cfg.Seed.AdminPassword,
			Role:     string(domain.RoleAdmin),
		}); err != nil {
			return err
		}
	}

	if sample {
		if err := ensureUser(ctx, auth, log, ports.RegisterInput{
			Name:     "Demo User",
			Email:    cfg.Seed.DemoUserEmail,
			Password: cfg.Seed.DemoUserPassword,
			Role:     string(domain.RoleUser),
		}); err != nil {
			return err
		}

		inserted, err := mongo.NewSweetRepository(db).UpsertByName(ctx, sampleSweets)
		if err != nil {
			return err
		}
		log.Info().Int64("inserted", inserted).Int("total", len(sampleSweets)).Msg("sample sweets upserted, existing were skipped")
	}

	return nil
}

func ensureUser(ctx context.Context, auth ports.AuthService, log zerolog.Logger, in ports.RegisterInput) error {
	_, err := auth.Register(ctx, in)
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		log.Info().Str("email", in.Email).Msg("user already exists")
		return nil
	case err != nil:
		return fmt.Errorf("seed %s: %w", in.Email, err)
	}
	log.Info().Str("email", in.Email).Str("role", in.Role).Msg("user created")
	return nil
}
