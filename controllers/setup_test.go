package controllers_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"collab-finder/config"
	"collab-finder/models"
	"collab-finder/repositories"
	"collab-finder/routes"
	"collab-finder/utils"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig = &config.Config{
		AppEnv:        "test",
		DBPath:        ":memory:",
		SessionSecret: testSecret,
		JWTSecret:     testSecret,
		JWTExpiry:     "1h",
		UploadDir:     t.TempDir(),
		MaxUploadSize: 5242880,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Profile{}, &models.Message{}))
	config.DB = db

	router := gin.New()
	router.Use(sessions.Sessions("collab_session", cookie.NewStore([]byte(testSecret))))
	router.LoadHTMLGlob("../templates/*.html")
	routes.SetupRoutes(router)
	return router
}

func createUser(t *testing.T, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, PasswordHash: "x", CreatedAt: time.Now()}
	require.NoError(t, repositories.NewUserRepository().CreateWithProfile(user))
	return user
}

func bearer(t *testing.T, userID int) string {
	t.Helper()

	token, err := utils.GenerateToken(userID, "", testSecret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doForm(router *gin.Engine, method, target, auth string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doGet(router *gin.Engine, target, auth string) *httptest.ResponseRecorder {
	return doForm(router, http.MethodGet, target, auth, nil)
}

func newRecorderFor(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// multipartBody builds a multipart form with the given text fields and an
// optional single file part named "photo".
func multipartBody(t *testing.T, fields map[string]string, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("photo", fileName)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func validProfileForm() map[string]string {
	return map[string]string{
		"title":                 "Dr",
		"full_name":             "Jane Doe",
		"highest_qualification": "PhD",
		"country":               "Australia",
		"university":            "Monash University",
		"school_faculty":        "School of Engineering",
		"position":              "Postdoctoral Researcher",
		"supervisor_name":       "",
		"bio":                   "Plasma medicine.",
		"skills":                "XPS, SEM",
		"device_access":         "",
	}
}

func fetchProfile(t *testing.T, userID int) *models.Profile {
	t.Helper()

	profile := &models.Profile{}
	require.NoError(t, config.DB.Where("user_id = ?", userID).First(profile).Error)
	return profile
}
