package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"restaurant-booking-api/config"
	"restaurant-booking-api/handlers"
	"restaurant-booking-api/models"
	"restaurant-booking-api/routes"
	"restaurant-booking-api/storage"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const adminEmail = "boss@example.com"

func newTestApp(t *testing.T) (*gin.Engine, *handlers.Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.Rating{},
		&models.Booking{},
	))

	cfg := &config.Config{
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
		AdminEmails: []string{adminEmail},
		UploadDir:   t.TempDir(),
	}
	images, err := storage.NewDiskStore(cfg.UploadDir)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	h := handlers.New(db, images, cfg, log)
	r := gin.New()
	routes.SetupRoutes(r, h)
	return r, h
}

func doForm(r http.Handler, method, path, token string, values url.Values) *httptest.ResponseRecorder {
	body := ""
	if values != nil {
		body = values.Encode()
	}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newCookieRequest(method, path, token string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	return req, httptest.NewRecorder()
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doMultipart sends a multipart form; fileName may be empty to send no file.
func doMultipart(t *testing.T, r http.Handler, method, path, token string, fields map[string]string, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func registerUser(t *testing.T, r http.Handler, username, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	return doForm(r, http.MethodPost, "/api/auth/register", "", url.Values{
		"username":         {username},
		"email":            {email},
		"password":         {password},
		"confirm_password": {password},
	})
}

func loginUser(t *testing.T, r http.Handler, email, password string) string {
	t.Helper()
	w := doForm(r, http.MethodPost, "/api/auth/login", "", url.Values{
		"email":    {email},
		"password": {password},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func newGuest(t *testing.T, r http.Handler, username, email string) string {
	t.Helper()
	w := registerUser(t, r, username, email, "password1")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return loginUser(t, r, email, "password1")
}

func newAdmin(t *testing.T, r http.Handler) string {
	t.Helper()
	w := registerUser(t, r, "boss", adminEmail, "password1")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return loginUser(t, r, adminEmail, "password1")
}
