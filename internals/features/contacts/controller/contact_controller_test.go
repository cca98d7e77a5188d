package controller

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emailcontacts_backend/internals/configs"
)

// Precondition import yang kepegang sebelum nyentuh DB sama sekali
func newImportTestApp(t *testing.T) *fiber.App {
	t.Helper()
	configs.ImportMaxUploadBytes = configs.DefaultImportMaxUploadBytes

	app := fiber.New()
	ctl := &ContactController{} // DB tidak dipakai di jalur precondition
	app.Post("/api/a/contacts/import", ctl.ImportCSV)
	return app
}

func multipartBody(t *testing.T, journalID, filename, content string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("journal_id", journalID))
	if filename != "" {
		fw, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestImportCSV_InvalidJournalID(t *testing.T) {
	app := newImportTestApp(t)

	body, ctype := multipartBody(t, "bukan-uuid", "contacts.csv", "name,email\n")
	req := httptest.NewRequest("POST", "/api/a/contacts/import", body)
	req.Header.Set("Content-Type", ctype)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestImportCSV_MissingFile(t *testing.T) {
	app := newImportTestApp(t)

	body, ctype := multipartBody(t, "7b7adc67-2bf0-4a46-9ac8-8a29051f52d7", "", "")
	req := httptest.NewRequest("POST", "/api/a/contacts/import", body)
	req.Header.Set("Content-Type", ctype)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestImportCSV_RejectsNonCSV(t *testing.T) {
	// hanya .csv yang lolos gate ekstensi
	for _, filename := range []string{"contacts.xlsx", "contacts.txt", "contacts"} {
		t.Run(filename, func(t *testing.T) {
			app := newImportTestApp(t)

			body, ctype := multipartBody(t, "7b7adc67-2bf0-4a46-9ac8-8a29051f52d7", filename, "name,email\n")
			req := httptest.NewRequest("POST", "/api/a/contacts/import", body)
			req.Header.Set("Content-Type", ctype)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestImportCSV_RejectsOversizedFile(t *testing.T) {
	app := newImportTestApp(t)
	configs.ImportMaxUploadBytes = 16 // paksa limit kecil

	body, ctype := multipartBody(t, "7b7adc67-2bf0-4a46-9ac8-8a29051f52d7", "contacts.csv",
		"name,email\nAnn,ann@x.com\nBob,bob@x.com\n")
	req := httptest.NewRequest("POST", "/api/a/contacts/import", body)
	req.Header.Set("Content-Type", ctype)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
}
