package database

import (
	"artworld-app/internal/domain/catalog"
	"artworld-app/internal/domain/users"
	"artworld-app/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

func intPtr(v int) *int { return &v }

// Seed loads demo data on an empty database. Seeded artworks carry no
// submitter and are created already approved, so they are never subject to
// withdrawal or ownership checks.
func Seed() {
	var artistCount int64
	DB.Model(&catalog.Artist{}).Count(&artistCount)

	if artistCount == 0 {
		artists := []catalog.Artist{
			{
				Name:      "Vincent van Gogh",
				BirthYear: intPtr(1853),
				DeathYear: intPtr(1890),
				Country:   "Netherlands",
				Era:       "Post-Impressionism",
				Biography: "Post-Impressionist painter known for his bold colours and expressive brushwork.",
				Influence: "A profound influence on 20th-century art.",
			},
			{
				Name:      "Leonardo da Vinci",
				BirthYear: intPtr(1452),
				DeathYear: intPtr(1519),
				Country:   "Italy",
				Era:       "Renaissance",
				Biography: "Renaissance polymath: painter, sculptor, architect and scientist.",
				Influence: "A defining figure of Renaissance art.",
			},
			{
				Name:      "Pablo Picasso",
				BirthYear: intPtr(1881),
				DeathYear: intPtr(1973),
				Country:   "Spain",
				Era:       "Modern art",
				Biography: "Central figure of modern art and co-founder of Cubism.",
				Influence: "A key figure in the artistic revolutions of the 20th century.",
			},
		}
		if err := DB.Create(&artists).Error; err != nil {
			logger.Error("failed to seed artists", "error", err.Error())
			return
		}

		artworks := []catalog.Artwork{
			{
				Title:       "The Starry Night",
				ArtistID:    &artists[0].ID,
				Year:        intPtr(1889),
				Style:       "Post-Impressionism",
				Medium:      "Oil on canvas",
				Dimensions:  "73.7 × 92.1 cm",
				Location:    "Museum of Modern Art, New York",
				Description: "Painted during van Gogh's stay at the Saint-Rémy asylum.",
				ImageURL:    "/static/images/starry_night.jpg",
				IsApproved:  true,
			},
			{
				Title:       "Mona Lisa",
				ArtistID:    &artists[1].ID,
				Year:        intPtr(1503),
				Style:       "Renaissance",
				Medium:      "Oil on panel",
				Dimensions:  "77 × 53 cm",
				Location:    "Louvre, Paris",
				Description: "One of the most famous portraits in the world.",
				ImageURL:    "/static/images/mona_lisa.jpg",
				IsApproved:  true,
			},
			{
				Title:       "Guernica",
				ArtistID:    &artists[2].ID,
				Year:        intPtr(1937),
				Style:       "Cubism",
				Medium:      "Oil on canvas",
				Dimensions:  "349.3 × 776.6 cm",
				Location:    "Museo Reina Sofía, Madrid",
				Description: "A protest against the bombing of Guernica during the Spanish Civil War.",
				ImageURL:    "/static/images/guernica.jpg",
				IsApproved:  true,
			},
		}
		if err := DB.Create(&artworks).Error; err != nil {
			logger.Error("failed to seed artworks", "error", err.Error())
			return
		}
		logger.Info("seeded demo catalog", "artists", len(artists), "artworks", len(artworks))
	}

	var userCount int64
	DB.Model(&users.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("failed to hash demo password", "error", err.Error())
			return
		}
		hashed := string(hash)
		demo := users.User{
			Username:     "demo",
			Email:        "demo@example.com",
			PasswordHash: &hashed,
			AuthProvider: "local",
		}
		if err := DB.Create(&demo).Error; err != nil {
			logger.Error("failed to seed demo user", "error", err.Error())
			return
		}
		logger.Info("seeded demo user", "username", demo.Username)
	}
}
