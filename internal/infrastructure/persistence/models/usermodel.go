package models

// UserModel carries the subset of the user record the ticket module needs:
// ownership checks and the admin directory for notification fan-out.
// Account management itself lives outside this service.
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	Name      string `gorm:"size:100;not null"`
	IsAdmin   bool   `gorm:"not null;default:false;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
