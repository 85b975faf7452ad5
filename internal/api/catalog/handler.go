package catalog

import (
	"net/http"
	"strconv"

	"artworld-app/database"
	"artworld-app/internal/apperrors"
	"artworld-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// ListArtworks returns approved artworks with optional exact-match filters:
// style on the artwork, era and artist name via the artist join. The full
// artist list rides along for filter dropdowns.
func ListArtworks(c *gin.Context) {
	style := c.Query("style")
	era := c.Query("era")
	artistName := c.Query("artist")

	q := approvedArtworksQuery(database.DB)
	if style != "" {
		q = q.Where("artworks.style = ?", style)
	}
	if era != "" {
		q = artistJoin(q).Where("artists.era = ?", era)
	} else if artistName != "" {
		q = artistJoin(q)
	}
	if artistName != "" {
		q = q.Where("artists.name = ?", artistName)
	}

	var artworks []catalog.Artwork
	if err := q.Preload("Artist").Find(&artworks).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	var artists []catalog.Artist
	if err := database.DB.Order("name").Find(&artists).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"artworks": artworks,
		"artists":  artists,
	})
}

func GetArtwork(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrArtworkNotFound)
		return
	}

	var artwork catalog.Artwork
	if err := database.DB.Preload("Artist").First(&artwork, uint(id)).Error; err != nil {
		apperrors.Respond(c, apperrors.ErrArtworkNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"artwork": artwork,
	})
}

func ListArtists(c *gin.Context) {
	var artists []catalog.Artist
	if err := database.DB.Order("name").Find(&artists).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"artists": artists,
	})
}

// GetArtist returns the artist with their approved works only.
func GetArtist(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrArtistNotFound)
		return
	}

	var artist catalog.Artist
	if err := database.DB.First(&artist, uint(id)).Error; err != nil {
		apperrors.Respond(c, apperrors.ErrArtistNotFound)
		return
	}

	var artworks []catalog.Artwork
	if err := database.DB.
		Where("artist_id = ? AND is_approved = ?", artist.ID, true).
		Find(&artworks).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"artist":   artist,
		"artworks": artworks,
	})
}

// LatestArtworks serves the home page strip: the newest eight approved works
// in a compact shape.
func LatestArtworks(c *gin.Context) {
	var artworks []catalog.Artwork
	if err := database.DB.
		Where("is_approved = ?", true).
		Preload("Artist").
		Order("created_at DESC").
		Limit(8).
		Find(&artworks).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	result := make([]gin.H, 0, len(artworks))
	for _, art := range artworks {
		artistName := "Unknown artist"
		if art.Artist != nil {
			artistName = art.Artist.Name
		}
		imageURL := art.ImageURL
		if imageURL == "" {
			imageURL = "/static/images/default.jpg"
		}
		result = append(result, gin.H{
			"id":          art.ID,
			"title":       art.Title,
			"artist_name": artistName,
			"image_url":   imageURL,
			"year":        art.Year,
		})
	}

	c.JSON(http.StatusOK, result)
}
