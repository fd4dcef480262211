package model

import (
	"time"

	"task-management.com/task-management/internal/constants"
)

type Task struct {
	ID               uint                 `gorm:"primaryKey" json:"id"`
	Title            string               `gorm:"not null" json:"title"`
	Description      string               `gorm:"type:text;not null" json:"description"`
	Status           constants.TaskStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	AssignedToUserID uint                 `gorm:"not null;index" json:"assignedToUserId"`
	AssignedUser     *User                `gorm:"foreignKey:AssignedToUserID" json:"assignedUser,omitempty"`
	CreatedAt        time.Time            `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt        time.Time            `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
