package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	InvalidJSON = `{"invalid": json}`
)

func init() {
	gin.SetMode(gin.TestMode)
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	if s, ok := data.(string); ok {
		return bytes.NewBufferString(s)
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func cardPayload() map[string]any {
	return map[string]any{
		"type":        "credit_card",
		"card_number": "4242 4242 4242 4242",
		"card_name":   "John Smith",
		"expiry_date": "12/27",
		"cvv":         "123",
	}
}
