package request

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToJsonReq(t *testing.T) {
	payload := map[string]string{"grant_type": "client_credentials"}
	buf, err := ToJsonReq(payload)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"grant_type":"client_credentials"}`, buf.String())
}

func TestCall_DecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"abc123"}`))
	}))
	defer srv.Close()

	req, err := http.NewRequest("POST", srv.URL, nil)
	assert.NoError(t, err)

	var response struct {
		Token string `json:"token"`
	}
	resp, err := Call(req, &response)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc123", response.Token)
}

func TestCall_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	req, err := http.NewRequest("GET", srv.URL, nil)
	assert.NoError(t, err)

	_, err = Call(req, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 401")
}
