package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Richiestixx/Foodies-app/models"
	"github.com/Richiestixx/Foodies-app/services"

	"github.com/gin-gonic/gin"
)

type stubDetector struct{ labels []string }

func (s *stubDetector) DetectLabels(context.Context, []byte) ([]string, error) {
	return s.labels, nil
}

type stubGenerator struct{ reply string }

func (s *stubGenerator) Generate(context.Context, string) (string, error) {
	return s.reply, nil
}

type stubStore struct{ user *models.User }

func (s *stubStore) FindByID(_ context.Context, id uint) (*models.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, services.ErrUserNotFound
}

func (s *stubStore) SaveSubmission(_ context.Context, _ uint, items []string, _ string) error {
	s.user.FoodItems = models.JoinFoodItems(items)
	s.user.SubmittedMeal = len(items) > 0
	return nil
}

func (s *stubStore) RecordGame(context.Context, *models.Game) error { return nil }

func newTestRouter(t *testing.T, detector services.LabelDetector) (*gin.Engine, *services.SessionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	user := &models.User{}
	user.ID = 1

	sessions := services.NewSessionStore()
	svc := services.NewMealService(
		&stubStore{user: user},
		detector,
		services.NewFoodFilter([]string{"fruit", "salad"}),
		services.NewMealComparator(&stubGenerator{reply: "User 1"}),
		nil,
		sessions,
		[]string{"reference meal"},
	)
	mc := NewMealController(svc, sessions)

	r := gin.New()
	authed := func(c *gin.Context) { c.Set("userID", uint(1)) }
	r.POST("/meal/submit", authed, mc.SubmitPhoto)
	r.GET("/meal/comparison", authed, mc.GetComparison)
	return r, sessions
}

func multipartImage(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, "meal.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestSubmitPhotoEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, &stubDetector{labels: []string{"apple", "fruit salad"}})

	body, contentType := multipartImage(t, "image", []byte("jpegbytes"))
	req := httptest.NewRequest(http.MethodPost, "/meal/submit", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success   bool     `json:"success"`
		FoodItems []string `json:"food_items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success=true")
	}
	if len(resp.FoodItems) != 1 || resp.FoodItems[0] != "fruit salad" {
		t.Fatalf("food_items = %v", resp.FoodItems)
	}
}

func TestSubmitPhotoMissingFile(t *testing.T) {
	r, sessions := newTestRouter(t, &stubDetector{labels: []string{"fruit"}})

	req := httptest.NewRequest(http.MethodPost, "/meal/submit", bytes.NewBufferString(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := sessions.LastResult(1); got.ID != "" {
		t.Fatal("comparison attempted despite missing file")
	}
}

func TestGetComparisonEmptyDefaults(t *testing.T) {
	r, _ := newTestRouter(t, &stubDetector{})

	req := httptest.NewRequest(http.MethodGet, "/meal/comparison", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp services.ComparisonResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "" || resp.Winner != "" {
		t.Fatalf("expected empty defaults, got %+v", resp)
	}
}

func TestComparisonVisibleAfterSubmit(t *testing.T) {
	r, _ := newTestRouter(t, &stubDetector{labels: []string{"fruit salad"}})

	body, contentType := multipartImage(t, "image", []byte("jpegbytes"))
	req := httptest.NewRequest(http.MethodPost, "/meal/submit", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/meal/comparison", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp services.ComparisonResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" || resp.Winner != models.WinnerUser {
		t.Fatalf("expected stored comparison, got %+v", resp)
	}
}
