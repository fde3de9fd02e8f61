package service

import (
	"context"

	"github.com/MKhiriev/my-movies/internal/validators"
	"github.com/MKhiriev/my-movies/models"
)

// AuthValidationService rejects malformed auth payloads before they reach
// the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.AuthResponse{}, err
	}
	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.AuthResponse{}, err
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) VerifyToken(ctx context.Context, token string) (models.Claims, error) {
	return v.inner.VerifyToken(ctx, token)
}

func (v *AuthValidationService) Me(ctx context.Context, userID string) (models.User, error) {
	return v.inner.Me(ctx, userID)
}

func (v *AuthValidationService) UpdatePreferences(ctx context.Context, userID string, req models.UpdatePreferencesRequest) (models.User, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.User{}, err
	}
	return v.inner.UpdatePreferences(ctx, userID, req)
}

func (v *AuthValidationService) RequestPasswordReset(ctx context.Context, req models.ForgotPasswordRequest) (models.MessageResponse, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.MessageResponse{}, err
	}
	return v.inner.RequestPasswordReset(ctx, req)
}

func (v *AuthValidationService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.MessageResponse, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.MessageResponse{}, err
	}
	return v.inner.ResetPassword(ctx, req)
}

func (v *AuthValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *AuthValidationService) UpdateUserRole(ctx context.Context, actorID, userID string, req models.UpdateRoleRequest) (models.User, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.User{}, err
	}
	return v.inner.UpdateUserRole(ctx, actorID, userID, req)
}

func (v *AuthValidationService) DeleteUser(ctx context.Context, actorID, userID string) error {
	return v.inner.DeleteUser(ctx, actorID, userID)
}

func (v *AuthValidationService) AdminSetPassword(ctx context.Context, userID string, req models.SetPasswordRequest) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	return v.inner.AdminSetPassword(ctx, userID, req)
}

func (v *AuthValidationService) AdminCreateUser(ctx context.Context, req models.AdminCreateUserRequest) (models.AdminCreateUserResponse, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.AdminCreateUserResponse{}, err
	}
	return v.inner.AdminCreateUser(ctx, req)
}

func (v *AuthValidationService) validate(ctx context.Context, req any) error {
	return mapError(v.validator.Validate(ctx, req), ErrNotFound)
}

// CatalogValidationService checks create and patch payloads of a catalog
// entity family before they reach the wrapped CatalogService.
type CatalogValidationService[T, C, P, F any] struct {
	inner     CatalogService[T, C, P, F]
	validator validators.Validator
}

func NewCatalogValidationService[T, C, P, F any](validator validators.Validator) *CatalogValidationService[T, C, P, F] {
	return &CatalogValidationService[T, C, P, F]{validator: validator}
}

func (v *CatalogValidationService[T, C, P, F]) Wrap(inner CatalogService[T, C, P, F]) CatalogService[T, C, P, F] {
	v.inner = inner
	return v
}

func (v *CatalogValidationService[T, C, P, F]) Create(ctx context.Context, userID string, input C) (T, error) {
	if err := mapError(v.validator.Validate(ctx, input), ErrNotFound); err != nil {
		var zero T
		return zero, err
	}
	return v.inner.Create(ctx, userID, input)
}

func (v *CatalogValidationService[T, C, P, F]) Get(ctx context.Context, userID, id string) (T, error) {
	return v.inner.Get(ctx, userID, id)
}

func (v *CatalogValidationService[T, C, P, F]) List(ctx context.Context, userID string, filter F) (models.Page[T], error) {
	return v.inner.List(ctx, userID, filter)
}

func (v *CatalogValidationService[T, C, P, F]) Count(ctx context.Context, userID string, filter F) (int64, error) {
	return v.inner.Count(ctx, userID, filter)
}

func (v *CatalogValidationService[T, C, P, F]) Update(ctx context.Context, userID, id string, patch P) (T, error) {
	if err := mapError(v.validator.Validate(ctx, patch), ErrNotFound); err != nil {
		var zero T
		return zero, err
	}
	return v.inner.Update(ctx, userID, id, patch)
}

func (v *CatalogValidationService[T, C, P, F]) Delete(ctx context.Context, userID, id string) error {
	return v.inner.Delete(ctx, userID, id)
}

func (v *CatalogValidationService[T, C, P, F]) FindDuplicates(ctx context.Context, userID string, q models.DuplicateQuery) ([]T, error) {
	return v.inner.FindDuplicates(ctx, userID, q)
}

func (v *CatalogValidationService[T, C, P, F]) FindAllDuplicates(ctx context.Context, userID string) ([][]T, error) {
	return v.inner.FindAllDuplicates(ctx, userID)
}

// CollectionItemValidationService checks AddItem payloads.
type CollectionItemValidationService struct {
	inner     CollectionItemService
	validator validators.Validator
}

func NewCollectionItemValidationService(validator validators.Validator) *CollectionItemValidationService {
	return &CollectionItemValidationService{validator: validator}
}

func (v *CollectionItemValidationService) Wrap(inner CollectionItemService) CollectionItemService {
	v.inner = inner
	return v
}

func (v *CollectionItemValidationService) AddItem(ctx context.Context, userID, collectionID string, req models.AddCollectionItem) (models.CollectionItem, error) {
	if err := mapError(v.validator.Validate(ctx, req), ErrNotFound); err != nil {
		return models.CollectionItem{}, err
	}
	return v.inner.AddItem(ctx, userID, collectionID, req)
}

func (v *CollectionItemValidationService) ListItems(ctx context.Context, userID, collectionID string) ([]models.CollectionItem, error) {
	return v.inner.ListItems(ctx, userID, collectionID)
}

func (v *CollectionItemValidationService) RemoveItem(ctx context.Context, userID, collectionID, itemID string) error {
	return v.inner.RemoveItem(ctx, userID, collectionID, itemID)
}
