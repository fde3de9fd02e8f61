package store

import (
	"context"
	"time"

	"github.com/MKhiriev/my-movies/models"
)

type idGenerator interface {
	Generate() string
}

type UserRepository interface {
	// CreateUser inserts user. When user.Role is empty the role is decided
	// in the same statement: admin for the first account, user otherwise.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// ListUsersWithActiveResetToken returns users whose reset token expires after now.
	ListUsersWithActiveResetToken(ctx context.Context, now time.Time) ([]models.User, error)
	SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error
	// UpdatePassword stores a new password hash and clears any pending reset token.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateRole(ctx context.Context, id string, role models.Role) (models.User, error)
	UpdatePreferences(ctx context.Context, id string, prefs models.Preferences) (models.User, error)
	// DeleteUser removes the user and the whole catalog in one transaction.
	DeleteUser(ctx context.Context, id string) error
	// ClearExpiredResetTokens nulls reset tokens that expired before now.
	ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

// CatalogRepository is the user-scoped store of one catalog entity family.
// T is the row model, C the create payload, P the patch payload and F the
// list filter.
type CatalogRepository[T, C, P, F any] interface {
	Create(ctx context.Context, userID string, input C) (T, error)
	Get(ctx context.Context, userID, id string) (T, error)
	List(ctx context.Context, userID string, filter F) ([]T, error)
	Count(ctx context.Context, userID string, filter F) (int64, error)
	Update(ctx context.Context, userID, id string, patch P) (T, error)
	Delete(ctx context.Context, userID, id string) error
	FindByBarcode(ctx context.Context, userID, barcode string) ([]T, error)
	FindByTMDBID(ctx context.Context, userID string, tmdbID int64) ([]T, error)
	FindByTitle(ctx context.Context, userID, title string) ([]T, error)
	ListAll(ctx context.Context, userID string) ([]T, error)
}

type (
	MovieRepository      = CatalogRepository[models.Movie, models.CreateMovie, models.UpdateMovie, models.CatalogFilter]
	SeriesRepository     = CatalogRepository[models.Series, models.CreateSeries, models.UpdateSeries, models.CatalogFilter]
	CollectionRepository = CatalogRepository[models.Collection, models.CreateCollection, models.UpdateCollection, models.CollectionFilter]
)

type CollectionItemRepository interface {
	AddItem(ctx context.Context, item models.CollectionItem) (models.CollectionItem, error)
	ListItems(ctx context.Context, collectionID string) ([]models.CollectionItem, error)
	RemoveItem(ctx context.Context, collectionID, itemID string) error
}

type SettingRepository interface {
	GetSetting(ctx context.Context, key string) (models.Setting, error)
	UpsertSetting(ctx context.Context, setting models.Setting) (models.Setting, error)
}
