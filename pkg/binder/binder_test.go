package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/phonecheck/pkg/binder"
)

type request struct {
	Phone     string   `form:"phone" query:"phone" json:"phone"`
	Strict    bool     `form:"strict" query:"strict" json:"strict"`
	Type      string   `form:"type" query:"type" json:"type"`
	Countries []string `form:"only" query:"only" json:"-"`
	Limit     *int     `form:"limit" query:"limit" json:"-"`
	Ignored   string   `form:"-" query:"-" json:"-"`
	Untagged  string
	secret    string //nolint:unused
}

func TestQuery(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?phone=%2B12015550123&strict=on&type=mobile&only=us,gb&only=ie&limit=5&Ignored=x&untagged=y", nil)

	var got request
	require.NoError(t, binder.Query()(req, &got))

	assert.Equal(t, "+12015550123", got.Phone)
	assert.True(t, got.Strict)
	assert.Equal(t, "mobile", got.Type)
	assert.Equal(t, []string{"us", "gb", "ie"}, got.Countries)
	require.NotNil(t, got.Limit)
	assert.Equal(t, 5, *got.Limit)
	assert.Empty(t, got.Ignored)
	assert.Equal(t, "y", got.Untagged)
}

func TestQuery_Errors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?strict=maybe", nil)
	var got request
	assert.ErrorIs(t, binder.Query()(req, &got), binder.ErrInvalidQuery)

	assert.ErrorIs(t, binder.Query()(req, got), binder.ErrInvalidQuery)
	var s string
	assert.ErrorIs(t, binder.Query()(req, &s), binder.ErrInvalidQuery)
}

func TestForm_URLEncoded(t *testing.T) {
	t.Parallel()

	body := "phone=07400+123456&strict=on&type=fixed_line"
	req := httptest.NewRequest(http.MethodPost, "/validate?phone=ignored", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

	var got request
	require.NoError(t, binder.Form()(req, &got))
	assert.Equal(t, "07400 123456", got.Phone)
	assert.True(t, got.Strict)
	assert.Equal(t, "fixed_line", got.Type)
}

func TestForm_UncheckedCheckbox(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader("phone=123"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	got := request{Strict: true}
	require.NoError(t, binder.Form()(req, &got))
	assert.True(t, got.Strict, "missing fields keep their value")
}

func TestForm_Multipart(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("phone", "+447400123456"))
	require.NoError(t, mw.WriteField("strict", "true"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/validate", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var got request
	require.NoError(t, binder.Form()(req, &got))
	assert.Equal(t, "+447400123456", got.Phone)
	assert.True(t, got.Strict)
}

func TestForm_NotApplicable(t *testing.T) {
	t.Parallel()

	var got request
	assert.ErrorIs(t, binder.Form()(httptest.NewRequest(http.MethodGet, "/", nil), &got), binder.ErrBinderNotApplicable)
	assert.ErrorIs(t, binder.Form()(httptest.NewRequest(http.MethodPost, "/clear", nil), &got), binder.ErrBinderNotApplicable)
}

func TestForm_Errors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"phone":"1"}`))
	req.Header.Set("Content-Type", "application/json")
	var got request
	assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrUnsupportedMediaType)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("phone=1"))
	assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrMissingContentType)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		wantErr     error
	}{
		{"valid", "application/json", `{"phone":"+12015550123","strict":true,"type":"any"}`, nil},
		{"with charset", "application/json; charset=utf-8", `{"phone":"+12015550123"}`, nil},
		{"missing content type", "", `{}`, binder.ErrMissingContentType},
		{"wrong content type", "text/plain", `{}`, binder.ErrUnsupportedMediaType},
		{"empty body", "application/json", ``, binder.ErrInvalidJSON},
		{"malformed", "application/json", `{"phone":`, binder.ErrInvalidJSON},
		{"unknown field", "application/json", `{"phone":"1","extra":true}`, binder.ErrInvalidJSON},
		{"trailing data", "application/json", `{"phone":"1"} {"phone":"2"}`, binder.ErrInvalidJSON},
		{"wrong type", "application/json", `{"strict":"yes"}`, binder.ErrInvalidJSON},
		{"too large", "application/json", `{"phone":"` + strings.Repeat("1", binder.DefaultMaxJSONSize) + `"}`, binder.ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/api/validate", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			var got request
			err := binder.JSON()(req, &got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "+12015550123", got.Phone)
		})
	}
}
