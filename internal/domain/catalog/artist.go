package catalog

// Artist is a descriptive record with no workflow of its own. Rows are seeded
// at startup or auto-created when a submission names an unknown artist.
type Artist struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:100;not null;index" json:"name"`
	BirthYear *int   `json:"birth_year,omitempty"`
	DeathYear *int   `json:"death_year,omitempty"`
	Country   string `gorm:"size:50" json:"country,omitempty"`
	Era       string `gorm:"size:50" json:"era,omitempty"`
	Biography string `gorm:"type:text" json:"biography,omitempty"`
	Influence string `gorm:"type:text" json:"influence,omitempty"`
}
