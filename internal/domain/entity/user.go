package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an operator account. Roles are kept as a JSON array of role keys.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Roles     RoleSet   `gorm:"type:jsonb;serializer:json;not null" json:"roles"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// RoleSet returns the stored roles with unknown or repeated keys removed.
func (u *User) RoleSet() RoleSet {
	return NewRoleSet(u.Roles.Keys())
}

// Principal builds the caller identity used for scoping.
func (u *User) Principal() *Principal {
	return &Principal{UserID: u.ID, Roles: u.RoleSet()}
}
