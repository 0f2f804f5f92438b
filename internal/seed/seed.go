// Package seed bootstraps a fresh deployment with a default admin account.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcardenas/campuswatch/internal/app/models"
	"github.com/mcardenas/campuswatch/internal/app/repositories"
	"github.com/mcardenas/campuswatch/internal/config"
	"github.com/mcardenas/campuswatch/internal/pkg/apperrors"
	"github.com/mcardenas/campuswatch/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// CreateDefaultAdmin creates the configured admin account if it does not
// exist. Seeding is skipped entirely when no admin credentials are
// configured; an existing account is left untouched.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg config.SeedConfig, lgr zerolog.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		lgr.Debug().Msg("No admin seed configured, skipping")
		return nil
	}

	userRepo := repositories.NewUserRepository(dbPool)

	hashedPassword, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: hashedPassword,
	}

	err = userRepo.Create(ctx, admin)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) || errors.Is(err, apperrors.ErrUsernameTaken) {
			lgr.Debug().Str("email", cfg.AdminEmail).Msg("Admin account already exists, skipping seed")
			return nil
		}
		return err
	}

	lgr.Info().Str("email", cfg.AdminEmail).Msg("Default admin account created")
	return nil
}
