// Package services implements the CRUD layer shared by all entity kinds.
// A single generic Service covers posts, categories, tags and comments; the
// user service specializes it with the password-hash lifecycle.
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/scribeapp/scribe/apperror"
)

// DefaultListLimit bounds List when the caller passes a non-positive limit.
const DefaultListLimit = 100

// UpdateInput describes a partial update. Changes returns column values for
// exactly the fields the caller set; omitted fields are left untouched.
type UpdateInput interface {
	Changes() map[string]any
}

// FieldMap is an untyped field mapping usable wherever an UpdateInput is
// expected.
type FieldMap map[string]any

// Changes implements UpdateInput.
func (f FieldMap) Changes() map[string]any { return f }

// Service provides uniform create/read/update/delete operations over one
// entity kind. Every operation runs against the caller-supplied session; the
// service itself holds no connection state, so one instance is safe to share
// across requests.
type Service[T any] struct {
	prepareWrite func(*T) error
}

// Option configures a Service.
type Option[T any] func(*Service[T])

// WithPrepareWrite installs a hook invoked on each entity before Create and
// BulkCreate persist it. The default is the identity transform; the user
// service uses this to derive the password hash.
func WithPrepareWrite[T any](fn func(*T) error) Option[T] {
	return func(s *Service[T]) { s.prepareWrite = fn }
}

// New builds a Service for the entity kind T.
func New[T any](opts ...Option[T]) *Service[T] {
	s := &Service[T]{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get fetches one entity by primary key. A missing row is not an error:
// the result is (nil, nil).
func (s *Service[T]) Get(db *gorm.DB, id uint) (*T, error) {
	entity := new(T)
	err := db.First(entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// List returns a page of entities in store order. Insertion order is not
// guaranteed stable; callers needing determinism must sort.
func (s *Service[T]) List(db *gorm.DB, limit, offset int) ([]T, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	var entities []T
	if err := db.Offset(offset).Limit(limit).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Create runs the prepare-write hook and inserts the entity, returning it
// with the store-assigned primary key populated. Store-level conflicts
// (duplicate email, duplicate title) propagate unchanged.
func (s *Service[T]) Create(db *gorm.DB, entity *T) (*T, error) {
	if err := s.applyPrepareWrite(entity); err != nil {
		return nil, err
	}
	if err := db.Create(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

// BulkCreate applies the prepare-write hook to every entity and persists the
// batch in one insert. Unlike Create, the results are not refreshed from the
// store, so relationship state is not populated.
func (s *Service[T]) BulkCreate(db *gorm.DB, entities []*T) ([]*T, error) {
	for _, entity := range entities {
		if err := s.applyPrepareWrite(entity); err != nil {
			return nil, err
		}
	}
	if len(entities) == 0 {
		return entities, nil
	}
	if err := db.Create(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Update applies the fields present in the input to an existing entity and
// returns the refreshed row. Fields absent from the input keep their values.
func (s *Service[T]) Update(db *gorm.DB, entity *T, in UpdateInput) (*T, error) {
	changes := in.Changes()
	if len(changes) > 0 {
		if err := db.Model(entity).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	// re-read so the caller sees exactly what the store holds
	if err := db.First(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

// Remove deletes an entity. Callers supply the primary key, an already
// resolved entity, or both (the entity wins and skips the lookup). Supplying
// neither is an invalid-argument error. Unlike Get, a key that resolves to
// nothing is a not-found error: removal by key asserts existence.
func (s *Service[T]) Remove(db *gorm.DB, id uint, entity *T) error {
	if id == 0 && entity == nil {
		return apperror.NewInvalidArgument("either an id or an entity is required", nil)
	}
	if entity == nil {
		entity = new(T)
		err := db.First(entity, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NewNotFound("entity does not exist", err)
		}
		if err != nil {
			return err
		}
	}
	return db.Delete(entity).Error
}

func (s *Service[T]) applyPrepareWrite(entity *T) error {
	if s.prepareWrite == nil {
		return nil
	}
	return s.prepareWrite(entity)
}
