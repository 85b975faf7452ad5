package review

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"artworld-app/config"
	"artworld-app/database"
	authapi "artworld-app/internal/api/auth"
	"artworld-app/internal/app/http/middleware"
	"artworld-app/internal/domain/catalog"
	"artworld-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	r := gin.New()
	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware())

	reviewer := authed.Group("/")
	reviewer.Use(middleware.RequireReviewer())
	reviewer.GET("/api/stats", GetStats)
	reviewer.GET("/review/pending", ListPending)
	reviewer.POST("/api/artwork/:id/approve", Approve)
	reviewer.POST("/api/artwork/:id/reject", Reject)
	reviewer.POST("/api/batch-approve", BatchApprove)
	return r
}

func createUser(t *testing.T, username string, isReviewer bool) (*users.User, string) {
	t.Helper()
	user := users.User{
		Username:   username,
		Email:      username + "@example.com",
		IsReviewer: isReviewer,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	token, err := authapi.IssueSession(&user)
	require.NoError(t, err)
	return &user, token
}

func createPendingArtwork(t *testing.T, title string, submitterID uint) *catalog.Artwork {
	t.Helper()
	artwork := catalog.Artwork{
		Title:       title,
		SubmittedBy: &submitterID,
		IsApproved:  false,
	}
	require.NoError(t, database.DB.Create(&artwork).Error)
	return &artwork
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestReviewerGateReadsLiveRecord(t *testing.T) {
	r := setupRouter(t)
	user, token := createUser(t, "hopeful", false)

	w := doJSON(r, "GET", "/review/pending", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", decode(t, w)["code"])

	// Granting the capability takes effect on the next request, with the same
	// token; the gate checks the user row, not the session cache.
	require.NoError(t, database.DB.Model(user).Update("is_reviewer", true).Error)

	w = doJSON(r, "GET", "/review/pending", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApproveReturnsRefreshedStats(t *testing.T) {
	r := setupRouter(t)
	submitter, _ := createUser(t, "artist_person", false)
	_, token := createUser(t, "the_reviewer", true)
	artwork := createPendingArtwork(t, "Pending Piece", submitter.ID)

	w := doJSON(r, "POST", "/api/artwork/"+itoa(artwork.ID)+"/approve", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stats, ok := decode(t, w)["stats"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(0), stats["pending_count"])
	assert.Equal(t, float64(1), stats["approved_count"])
}

func TestRejectRemovesArtwork(t *testing.T) {
	r := setupRouter(t)
	submitter, _ := createUser(t, "artist_person", false)
	_, token := createUser(t, "the_reviewer", true)
	artwork := createPendingArtwork(t, "Doomed Piece", submitter.ID)

	w := doJSON(r, "POST", "/api/artwork/"+itoa(artwork.ID)+"/reject", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	database.DB.Model(&catalog.Artwork{}).Where("id = ?", artwork.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestListPendingResolvesSubmitterNames(t *testing.T) {
	r := setupRouter(t)
	submitter, _ := createUser(t, "artist_person", false)
	_, token := createUser(t, "the_reviewer", true)
	createPendingArtwork(t, "Queue Item", submitter.ID)

	w := doJSON(r, "GET", "/review/pending", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	rows, ok := body["artworks"].([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "artist_person", row["submitter_name"])
}

func TestBatchApprove(t *testing.T) {
	r := setupRouter(t)
	submitter, _ := createUser(t, "artist_person", false)
	_, token := createUser(t, "the_reviewer", true)
	a := createPendingArtwork(t, "First", submitter.ID)
	b := createPendingArtwork(t, "Second", submitter.ID)

	w := doJSON(r, "POST", "/api/batch-approve", token, gin.H{
		"artwork_ids": []uint{a.ID, b.ID, 9999},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, "2 artworks approved", body["message"])
}

func TestStatsRequireReviewer(t *testing.T) {
	r := setupRouter(t)
	user, token := createUser(t, "regular_user", false)
	createPendingArtwork(t, "Someone's Piece", user.ID)

	w := doJSON(r, "GET", "/api/stats", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	_, reviewerToken := createUser(t, "the_reviewer", true)
	w = doJSON(r, "GET", "/api/stats", reviewerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	stats, ok := decode(t, w)["stats"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), stats["pending_count"])
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
