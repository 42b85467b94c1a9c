package models

type GigRequest struct {
	BaseModel
	GigID       string           `gorm:"not null;index"`
	PerformerID string           `gorm:"not null;index"` // PerformerProfile id, not user id
	Status      GigRequestStatus `gorm:"type:varchar(20);not null;default:'pending'"`
}
