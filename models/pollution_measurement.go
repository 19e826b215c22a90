package models

// PollutionMeasurement is one row of the externally populated
// mesures_pollution table. This service only reads it; the table is not
// part of AutoMigrate.
type PollutionMeasurement struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"column:nom" json:"name"`
	Longitude float64 `gorm:"column:longitude" json:"longitude"`
	Latitude  float64 `gorm:"column:latitude" json:"latitude"`
	Value     float64 `gorm:"column:valeur_pollution" json:"valeur_pollution"`
}

func (PollutionMeasurement) TableName() string {
	return "mesures_pollution"
}
