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

const tipRecipient = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"

func newTipContext(e *echo.Echo, body, wallet string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/posts/:post_id/tips")
	c.SetParamNames("post_id")
	c.SetParamValues("1")
	if wallet != "" {
		c.Set("walletAddress", wallet)
	}
	return c, rec
}

func TestTipPostHandler(t *testing.T) {
	e := echo.New()
	e.Validator = validators.NewValidator()

	graph := new(MockSocialGraph)
	graph.On("TipPost", uint(1), "0xAlice", tipRecipient, int64(500)).
		Return(&models.Tip{TxRef: "ref-1", PostID: 1, From: "0xAlice", Recipient: tipRecipient, Amount: 500}, nil)

	h := NewTipHandler(graph)
	c, rec := newTipContext(e, `{"recipient":"`+tipRecipient+`","amount":500}`, "0xAlice")

	err := h.TipPost(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tx_ref":"ref-1"`)
	graph.AssertExpectations(t)
}

func TestTipPostHandlerZeroValue(t *testing.T) {
	e := echo.New()
	e.Validator = validators.NewValidator()

	graph := new(MockSocialGraph)
	graph.On("TipPost", uint(1), "0xAlice", tipRecipient, int64(0)).Return(nil, ledger.ErrZeroValue)

	h := NewTipHandler(graph)
	c, _ := newTipContext(e, `{"recipient":"`+tipRecipient+`","amount":0}`, "0xAlice")

	err := h.TipPost(c)
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestTipPostHandlerTransferFailure(t *testing.T) {
	e := echo.New()
	e.Validator = validators.NewValidator()

	graph := new(MockSocialGraph)
	graph.On("TipPost", uint(1), "0xAlice", tipRecipient, int64(500)).Return(nil, ledger.ErrTransferFailed)

	h := NewTipHandler(graph)
	c, _ := newTipContext(e, `{"recipient":"`+tipRecipient+`","amount":500}`, "0xAlice")

	err := h.TipPost(c)
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusPaymentRequired, he.Code)
}

func TestGetTipsAmountHandler(t *testing.T) {
	e := echo.New()

	graph := new(MockSocialGraph)
	graph.On("GetTipsAmount", uint(1)).Return(int64(1500), nil)

	h := NewTipHandler(graph)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/posts/:post_id/tips")
	c.SetParamNames("post_id")
	c.SetParamValues("1")

	err := h.GetTipsAmount(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tips_amount":1500`)
}
