package contracts

import (
	"context"

	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
)

// PreferenceStorage persists UI preferences across restarts. Persistence
// happens at an explicit boundary: restore once at startup, save on
// shutdown and after each preference change.
type PreferenceStorage interface {
	Load(ctx context.Context) (domain.Preferences, error)
	Save(ctx context.Context, prefs domain.Preferences) error
}
