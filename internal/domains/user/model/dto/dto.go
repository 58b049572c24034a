package dto

import (
	"strings"
	"time"

	"alora/internal/domains/user/model"
	"alora/shared/constant"
	gDto "alora/shared/dto"
	gModel "alora/shared/model"
	"alora/shared/timezone"

	"github.com/google/uuid"
)

type CreateAdminRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Level    string `json:"level"    validate:"omitempty,oneof=superadmin admin staff"`
}

// Normalize trims and lowercases the email so validation and lookups see the stored form.
func (r *CreateAdminRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Level = strings.TrimSpace(r.Level)
}

func (r *CreateAdminRequest) ToModel(username string, hashedPassword string) model.User {
	level := r.Level
	if level == "" {
		level = constant.RoleAdmin
	}

	now := timezone.Now().Truncate(time.Microsecond)

	return model.User{
		ID:       uuid.NewString(),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: hashedPassword,
		Level:    level,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Level     string     `json:"level"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	Active    bool       `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Level = model.Level
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

// FilterByEmail matches a user by normalized email.
func FilterByEmail(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(email)),
				Table:    model.TableName,
			},
		},
	}
}
