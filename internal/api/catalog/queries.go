package catalog

import (
	"artworld-app/internal/domain/catalog"

	"gorm.io/gorm"
)

func approvedArtworksQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&catalog.Artwork{}).Where("artworks.is_approved = ?", true)
}

func artistJoin(q *gorm.DB) *gorm.DB {
	return q.Joins("JOIN artists ON artists.id = artworks.artist_id")
}
