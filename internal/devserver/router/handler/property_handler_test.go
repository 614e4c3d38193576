package handler

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"propmart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartContext(t *testing.T, fields map[string]string) echo.Context {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for field, value := range fields {
		require.NoError(t, writer.WriteField(field, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/properties", buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec)
}

func TestParseListingForm_AcceptsEnumeratedFields(t *testing.T) {
	c := multipartContext(t, map[string]string{
		"title":            "2BHK near Metro",
		"description":      "Bright flat",
		"price":            "4500000",
		"city":             "Pune",
		"area":             "Baner",
		"property_type":    "Apartment",
		"transaction_type": "sale",
		"bedrooms":         "2",
		"bathrooms":        "2",
		"square_feet":      "980",
	})

	draft, err := parseListingForm(c)

	require.NoError(t, err)
	assert.Equal(t, "2BHK near Metro", draft.Title)
	assert.Equal(t, float64(4500000), draft.Price)
	assert.Equal(t, "Pune", draft.Location.City)
	assert.Equal(t, entity.TransactionSale, draft.TransactionType)
	assert.Equal(t, 2, draft.Bedrooms)
}

func TestParseListingForm_RejectsUnknownField(t *testing.T) {
	c := multipartContext(t, map[string]string{
		"title":            "2BHK",
		"transaction_type": "sale",
		"owner":            "someone-else",
	})

	_, err := parseListingForm(c)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field "owner"`)
}

func TestParseListingForm_RejectsBadNumbers(t *testing.T) {
	c := multipartContext(t, map[string]string{
		"title":            "2BHK",
		"transaction_type": "sale",
		"price":            "not-a-number",
	})

	_, err := parseListingForm(c)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
}

func TestParseListingForm_RejectsInvalidTransactionType(t *testing.T) {
	c := multipartContext(t, map[string]string{
		"title":            "2BHK",
		"transaction_type": "barter",
	})

	_, err := parseListingForm(c)

	require.Error(t, err)
}
