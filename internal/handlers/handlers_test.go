package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/skillforge/marketplace-backend/internal/config"
	"github.com/skillforge/marketplace-backend/internal/database"
	"github.com/skillforge/marketplace-backend/internal/dto"
	"github.com/skillforge/marketplace-backend/internal/handlers"
	"github.com/skillforge/marketplace-backend/internal/models"
	"github.com/skillforge/marketplace-backend/internal/routes"
	"github.com/skillforge/marketplace-backend/internal/services"
	"github.com/skillforge/marketplace-backend/internal/uploads"
)

type notification struct {
	email   string
	outcome models.BidStatus
}

type fakeNotifier struct {
	err  error
	sent []notification
}

func (f *fakeNotifier) Notify(toEmail string, outcome models.BidStatus) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, notification{email: toEmail, outcome: outcome})
	return nil
}

func newTestApp(t *testing.T, notifier handlers.Notifier) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:    "test-secret",
		JWTExpiryMin: 60,
		BcryptCost:   bcrypt.MinCost,
		UploadDir:    t.TempDir(),
		CORSOrigins:  "*",
	}

	store := uploads.NewStore(cfg.UploadDir)

	authHandler := handlers.NewAuthHandler(services.NewAuthService(db, cfg))
	projectHandler := handlers.NewProjectHandler(services.NewProjectService(db))
	bidHandler := handlers.NewBidHandler(services.NewBidService(db), store, notifier)
	freelancerHandler := handlers.NewFreelancerHandler(services.NewFreelancerService(db), store)
	healthHandler := handlers.NewHealthHandler(db)

	app := fiber.New()
	routes.Setup(app, cfg, authHandler, projectHandler, bidHandler, freelancerHandler, healthHandler)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func doMultipart(t *testing.T, app *fiber.App, path string, fields map[string]string, files map[string]string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for field, filename := range files {
		fw, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte("file content for " + filename))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func bodyText(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestBidLifecycleEndToEnd(t *testing.T) {
	notifier := &fakeNotifier{}
	app := newTestApp(t, notifier)

	resp := doJSON(t, app, http.MethodPost, "/api/post-project", map[string]interface{}{
		"title":        "Landing page",
		"description":  "Build a landing page",
		"skills":       "html,css",
		"budget":       500,
		"client_email": "client@example.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var projects []dto.ProjectResponse
	decodeBody(t, resp, &projects)
	require.Len(t, projects, 1)
	assert.Equal(t, "500.00", projects[0].Budget)

	resp = doMultipart(t, app, "/api/apply", map[string]string{
		"email":          "dev@example.com",
		"estimated_days": "7",
		"bid_amount":     "250",
		"project_id":     strconv.Itoa(int(projects[0].ID)),
	}, map[string]string{"resume": "cv.pdf"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/bids/client@example.com", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var bids []dto.BidResponse
	decodeBody(t, resp, &bids)
	require.Len(t, bids, 1)
	assert.Equal(t, "Landing page", bids[0].Title)
	assert.Equal(t, "pending", bids[0].Status)
	assert.Equal(t, "250.00", bids[0].BidAmount)
	assert.True(t, strings.HasSuffix(bids[0].Resume, ".pdf"))

	resp = doJSON(t, app, http.MethodPost, "/acceptBid", map[string]string{"email": "dev@example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bid accepted and email sent!", bodyText(t, resp))
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, notification{email: "dev@example.com", outcome: models.BidAccepted}, notifier.sent[0])

	resp = doJSON(t, app, http.MethodGet, "/getNotifications", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var feed []dto.BidResponse
	decodeBody(t, resp, &feed)
	require.Len(t, feed, 1)
	assert.Equal(t, "accepted", feed[0].Status)
}

func TestApplyWithoutResume(t *testing.T) {
	app := newTestApp(t, &fakeNotifier{})

	resp := doMultipart(t, app, "/api/apply", map[string]string{
		"email":          "dev@example.com",
		"estimated_days": "7",
		"bid_amount":     "250",
		"project_id":     "1",
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.MessageResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Resume file is missing", body.Message)
}

func TestApplyUnknownProjectReturnsDetails(t *testing.T) {
	app := newTestApp(t, &fakeNotifier{})

	resp := doMultipart(t, app, "/api/apply", map[string]string{
		"email":          "dev@example.com",
		"estimated_days": "7",
		"bid_amount":     "250",
		"project_id":     "999",
	}, map[string]string{"resume": "cv.pdf"})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body dto.ApplyErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Database error", body.Error)
	assert.NotEmpty(t, body.Details)
}

func TestAcceptBidMailFailureKeepsStatus(t *testing.T) {
	notifier := &fakeNotifier{}
	app := newTestApp(t, notifier)

	resp := doJSON(t, app, http.MethodPost, "/api/post-project", map[string]interface{}{
		"title":        "Landing page",
		"description":  "Build a landing page",
		"skills":       "html,css",
		"budget":       500,
		"client_email": "client@example.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doMultipart(t, app, "/api/apply", map[string]string{
		"email":          "dev@example.com",
		"estimated_days": "7",
		"bid_amount":     "250",
		"project_id":     "1",
	}, map[string]string{"resume": "cv.pdf"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	notifier.err = assert.AnError
	resp = doJSON(t, app, http.MethodPost, "/acceptBid", map[string]string{"email": "dev@example.com"})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Bid accepted but failed to send email.", bodyText(t, resp))

	// The status update committed before the send was attempted.
	resp = doJSON(t, app, http.MethodGet, "/getNotifications", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var feed []dto.BidResponse
	decodeBody(t, resp, &feed)
	require.Len(t, feed, 1)
	assert.Equal(t, "accepted", feed[0].Status)
}

func TestRejectBid(t *testing.T) {
	notifier := &fakeNotifier{}
	app := newTestApp(t, notifier)

	resp := doJSON(t, app, http.MethodPost, "/api/post-project", map[string]interface{}{
		"title":        "Landing page",
		"description":  "Build a landing page",
		"skills":       "html,css",
		"budget":       500,
		"client_email": "client@example.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doMultipart(t, app, "/api/apply", map[string]string{
		"email":          "dev@example.com",
		"estimated_days": "7",
		"bid_amount":     "250",
		"project_id":     "1",
	}, map[string]string{"resume": "cv.pdf"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/rejectBid", map[string]string{"email": "dev@example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bid rejected and email sent!", bodyText(t, resp))
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, models.BidRejected, notifier.sent[0].outcome)
}

func TestFreelancerProfileLifecycle(t *testing.T) {
	app := newTestApp(t, &fakeNotifier{})

	fields := map[string]string{
		"email":    "dev@example.com",
		"name":     "Dev One",
		"location": "Berlin",
		"rate":     "40",
		"about":    "backend developer",
		"skills":   "go,sql",
		"projects": "12",
		"rating":   "4.5",
		"github":   "https://github.com/devone",
		"linkedin": "https://linkedin.com/in/devone",
	}

	resp := doMultipart(t, app, "/api/freelancer/profile", fields, map[string]string{
		"profileImage": "me.png",
		"resume":       "cv.pdf",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var msg dto.MessageResponse
	decodeBody(t, resp, &msg)
	assert.Equal(t, "Profile created successfully!", msg.Message)

	resp = doJSON(t, app, http.MethodGet, "/api/freelancer/dev@example.com", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var profile dto.FreelancerResponse
	decodeBody(t, resp, &profile)
	assert.Equal(t, "Berlin", profile.Location)
	assert.Equal(t, "40.00", profile.Rate)
	require.NotEmpty(t, profile.ProfileImage)
	storedImage := profile.ProfileImage

	// Update without files keeps the stored references.
	fields["location"] = "Amsterdam"
	resp = doMultipart(t, app, "/api/freelancer/profile", fields, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &msg)
	assert.Equal(t, "Profile updated successfully!", msg.Message)

	resp = doJSON(t, app, http.MethodGet, "/api/freelancer/dev@example.com", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &profile)
	assert.Equal(t, "Amsterdam", profile.Location)
	assert.Equal(t, storedImage, profile.ProfileImage)

	resp = doJSON(t, app, http.MethodGet, "/api/freelancers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all []dto.FreelancerResponse
	decodeBody(t, resp, &all)
	assert.Len(t, all, 1)

	resp = doJSON(t, app, http.MethodGet, "/api/freelancer/nobody@example.com", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSignupAndLoginRoutes(t *testing.T) {
	app := newTestApp(t, &fakeNotifier{})

	resp := doJSON(t, app, http.MethodPost, "/api/signup", dto.SignupRequest{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "secret123",
		Role:     models.RoleClient,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/login", dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login dto.LoginResponse
	decodeBody(t, resp, &login)
	assert.Equal(t, "Login successful", login.Message)
	assert.Equal(t, models.RoleClient, login.Role)
	assert.NotEmpty(t, login.Token)

	resp = doJSON(t, app, http.MethodPost, "/api/login", dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHealthRoute(t *testing.T) {
	app := newTestApp(t, &fakeNotifier{})

	resp := doJSON(t, app, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var health dto.HealthResponse
	decodeBody(t, resp, &health)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "ok", health.DB)
}
