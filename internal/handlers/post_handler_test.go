package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atharvabaodhankar/socio3-ledger/internal/ledger"
	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"github.com/atharvabaodhankar/socio3-ledger/pkg/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCreatePostHandler(t *testing.T) {
	e := echo.New()
	e.Validator = validators.NewValidator()

	registry := new(MockPostRegistry)
	registry.On("CreatePost", "0xAlice", "QmHash1").
		Return(&models.Post{ID: 1, Author: "0xAlice", IPFSHash: "QmHash1"}, nil)

	h := NewPostHandler(registry, new(MockSocialGraph))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"ipfs_hash":"QmHash1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("walletAddress", "0xAlice")

	err := h.CreatePost(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)
	registry.AssertExpectations(t)
}

func TestCreatePostHandlerMissingHash(t *testing.T) {
	e := echo.New()
	e.Validator = validators.NewValidator()

	registry := new(MockPostRegistry)
	h := NewPostHandler(registry, new(MockSocialGraph))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("walletAddress", "0xAlice")

	err := h.CreatePost(c)
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	registry.AssertNotCalled(t, "CreatePost", "0xAlice", "")
}

func TestGetPostHandlerNotFound(t *testing.T) {
	e := echo.New()

	registry := new(MockPostRegistry)
	registry.On("GetPost", uint(42)).Return(nil, ledger.ErrPostNotFound)

	h := NewPostHandler(registry, new(MockSocialGraph))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/posts/:id")
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.GetPost(c)
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetModerationStatusHandler(t *testing.T) {
	e := echo.New()

	registry := new(MockPostRegistry)
	graph := new(MockSocialGraph)
	registry.On("GetPost", uint(1)).Return(&models.Post{ID: 1}, nil)
	registry.On("GetReportCount", uint(1)).Return(int64(4), nil)
	graph.On("GetLikesCount", uint(1)).Return(int64(2), nil)

	h := NewPostHandler(registry, graph)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/posts/:id/moderation")
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.GetModerationStatus(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	// 4 reports against 2 likes crosses the 2x ratio
	assert.Contains(t, rec.Body.String(), `"removed":true`)
	assert.Contains(t, rec.Body.String(), ledger.RemovalReasonRatio)
}

func TestReportPostHandlerAlreadyReported(t *testing.T) {
	e := echo.New()
	e.Validator = validators.NewValidator()

	registry := new(MockPostRegistry)
	registry.On("ReportPost", uint(1), "0xBob", models.ReportTypeInappropriate, "bad").
		Return(ledger.ErrAlreadyReported)

	h := NewReportHandler(registry)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"report_type":2,"reason":"bad"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/posts/:id/reports")
	c.SetParamNames("id")
	c.SetParamValues("1")
	c.Set("walletAddress", "0xBob")

	err := h.ReportPost(c)
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}
