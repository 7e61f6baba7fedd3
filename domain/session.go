package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CREATE TABLE public.user_sessions (
//     id             UUID PRIMARY KEY,
//     session_token  TEXT NOT NULL UNIQUE,
//     device_info    JSONB DEFAULT '{}',
//     created_at     TIMESTAMPTZ DEFAULT NOW(),
//     last_active    TIMESTAMPTZ DEFAULT NOW()
// );

type Session struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	SessionToken string            `gorm:"column:session_token;type:text;uniqueIndex;not null" json:"-"`
	DeviceInfo   datatypes.JSONMap `gorm:"column:device_info;type:jsonb" json:"device_info"`
	CreatedAt    time.Time         `gorm:"column:created_at" json:"created_at"`
	LastActive   time.Time         `gorm:"column:last_active" json:"last_active"`
}

func (Session) TableName() string {
	return "user_sessions"
}
