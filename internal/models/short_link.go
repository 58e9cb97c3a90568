package models

// ShortLink représente un lien raccourci dans la base de données.
type ShortLink struct {
	ShortID string `gorm:"column:short_id;primaryKey"`
	FullURL string `gorm:"column:full_url;not null"`
	Clicks  int64  `gorm:"column:clicks;default:0"`
}

// TableName keeps the table name the service has always used.
func (ShortLink) TableName() string { return "urls" }
