package model

import (
	"time"

	"task-management.com/task-management/internal/constants"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"not null" json:"email"`
	Role      constants.Role `gorm:"type:varchar(20);not null;default:'User'" json:"role"`
	CreatedAt time.Time      `gorm:"autoCreateTime:false" json:"createdAt"`

	Tasks []Task `gorm:"foreignKey:AssignedToUserID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}
