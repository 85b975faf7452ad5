package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"artworld-app/config"
	"artworld-app/database"
	"artworld-app/internal/app/http/middleware"

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
	r.POST("/register", Register)
	r.POST("/login", Login)

	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware())
	authed.POST("/logout", Logout)
	authed.POST("/change-password", ChangePassword)
	authed.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("user_id")})
	})
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
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

func registerUser(t *testing.T, r *gin.Engine, username, email, password string) string {
	t.Helper()
	w := doJSON(r, "POST", "/register", "", gin.H{
		"username":         username,
		"email":            email,
		"password":         password,
		"confirm_password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterReportsEveryViolation(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, "POST", "/register", "", gin.H{
		"username":         "ab",
		"email":            "not-an-email",
		"password":         "123",
		"confirm_password": "456",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])

	details, ok := body["details"].([]interface{})
	require.True(t, ok)
	assert.Len(t, details, 4)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := setupRouter(t)
	registerUser(t, r, "claude_monet", "monet@example.com", "waterlilies")

	w := doJSON(r, "POST", "/register", "", gin.H{
		"username":         "claude_monet",
		"email":            "other@example.com",
		"password":         "waterlilies",
		"confirm_password": "waterlilies",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", decode(t, w)["code"])

	w = doJSON(r, "POST", "/register", "", gin.H{
		"username":         "oscar_claude",
		"email":            "monet@example.com",
		"password":         "waterlilies",
		"confirm_password": "waterlilies",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", decode(t, w)["code"])
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r := setupRouter(t)
	registerUser(t, r, "frida", "frida@example.com", "lasdoscasas")

	wrongPassword := doJSON(r, "POST", "/login", "", gin.H{
		"identity": "frida",
		"password": "not-the-password",
	})
	unknownUser := doJSON(r, "POST", "/login", "", gin.H{
		"identity": "nobody-here",
		"password": "whatever123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)

	// Identical bodies, so the endpoint cannot be used to probe for accounts.
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
	assert.Equal(t, "Incorrect username or password", decode(t, wrongPassword)["message"])
}

func TestLoginAcceptsUsernameOrEmail(t *testing.T) {
	r := setupRouter(t)
	registerUser(t, r, "frida", "frida@example.com", "lasdoscasas")

	byName := doJSON(r, "POST", "/login", "", gin.H{
		"identity": "frida",
		"password": "lasdoscasas",
	})
	require.Equal(t, http.StatusOK, byName.Code)
	assert.NotEmpty(t, decode(t, byName)["token"])

	byEmail := doJSON(r, "POST", "/login", "", gin.H{
		"identity": "frida@example.com",
		"password": "lasdoscasas",
	})
	require.Equal(t, http.StatusOK, byEmail.Code)
	assert.NotEmpty(t, decode(t, byEmail)["token"])
}

func TestLogoutRevokesSession(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "frida", "frida@example.com", "lasdoscasas")

	require.Equal(t, http.StatusOK, doJSON(r, "GET", "/whoami", token, nil).Code)

	require.Equal(t, http.StatusOK, doJSON(r, "POST", "/logout", token, nil).Code)

	// The token still verifies cryptographically but its session row is gone.
	w := doJSON(r, "GET", "/whoami", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Session expired, please log in again", decode(t, w)["message"])
}

func TestChangePassword(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "frida", "frida@example.com", "lasdoscasas")

	w := doJSON(r, "POST", "/change-password", token, gin.H{
		"current_password":     "wrong-guess",
		"new_password":         "casaazul123",
		"confirm_new_password": "casaazul123",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, "POST", "/change-password", token, gin.H{
		"current_password":     "lasdoscasas",
		"new_password":         "casaazul123",
		"confirm_new_password": "casaazul123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	login := doJSON(r, "POST", "/login", "", gin.H{
		"identity": "frida",
		"password": "casaazul123",
	})
	assert.Equal(t, http.StatusOK, login.Code)
}
