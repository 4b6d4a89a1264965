// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	contactstore "github.com/dalemusser/tourdash/internal/app/store/contact"
	viewsstore "github.com/dalemusser/tourdash/internal/app/store/views"
	"github.com/dalemusser/tourdash/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema makes sure collections, validators, and indexes exist.
// Everything here is idempotent so restarts are safe.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := validators.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		return fmt.Errorf("ensure collections: %w", err)
	}

	if err := contactstore.New(deps.MongoDatabase).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("contact indexes: %w", err)
	}
	if err := viewsstore.New(deps.MongoDatabase).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("page view indexes: %w", err)
	}

	logger.Info("schema ensured")
	return nil
}
