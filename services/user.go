package services

import (
	"gorm.io/gorm"

	"github.com/scribeapp/scribe/apperror"
	"github.com/scribeapp/scribe/models"
	"github.com/scribeapp/scribe/utils"
)

// CreateUserInput is the creation shape for users. The plaintext password is
// mandatory and exists only until the prepare-write hook replaces it with a
// bcrypt hash.
type CreateUserInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	IsActive    *bool  `json:"is_active"`
	IsSuperuser *bool  `json:"is_superuser"`
}

// UpdateUserInput is the partial-update shape for users. Nil means "leave
// unchanged"; an empty password also means no change, never "clear".
type UpdateUserInput struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
	Password    *string `json:"password"`
}

// Changes implements UpdateInput for the non-derived fields. The password is
// handled separately by UserService.Update.
func (in UpdateUserInput) Changes() map[string]any {
	changes := map[string]any{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Email != nil {
		changes["email"] = *in.Email
	}
	if in.IsActive != nil {
		changes["is_active"] = *in.IsActive
	}
	if in.IsSuperuser != nil {
		changes["is_superuser"] = *in.IsSuperuser
	}
	return changes
}

// UserService specializes the generic service for users, injecting the
// password-hash lifecycle.
type UserService struct {
	*Service[models.User]
}

// NewUserService builds a UserService with the hashing hook installed.
func NewUserService() *UserService {
	return &UserService{
		Service: New(WithPrepareWrite(hashPasswordHook)),
	}
}

// hashPasswordHook derives HashedPassword from the transient plaintext and
// clears it before the row is written.
func hashPasswordHook(u *models.User) error {
	if u.Password == "" {
		return nil
	}
	hash, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.HashedPassword = hash
	u.Password = ""
	return nil
}

// Create persists a new user. The plaintext password never reaches the store:
// the prepare-write hook replaces it with a salted bcrypt hash.
func (s *UserService) Create(db *gorm.DB, in CreateUserInput) (*models.User, error) {
	if in.Password == "" {
		return nil, apperror.NewInvalidArgument("password is required", nil)
	}
	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.IsSuperuser != nil {
		user.IsSuperuser = *in.IsSuperuser
	}
	return s.Service.Create(db, user)
}

// Update applies a partial update. A present, non-empty password is replaced
// by a fresh hash; otherwise the stored hash is untouched.
func (s *UserService) Update(db *gorm.DB, user *models.User, in UpdateUserInput) (*models.User, error) {
	changes := in.Changes()
	if in.Password != nil && *in.Password != "" {
		hash, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		changes["hashed_password"] = hash
	}
	return s.Service.Update(db, user, FieldMap(changes))
}

// VerifyUserPassword checks a plaintext candidate against the user's stored
// hash. A mismatch returns (false, nil); a malformed hash is an integrity
// fault.
func (s *UserService) VerifyUserPassword(user *models.User, password string) (bool, error) {
	return utils.VerifyPassword(user.HashedPassword, password)
}
