package resputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusOK, httpStatusFor(OK))
	assert.Equal(t, http.StatusBadRequest, httpStatusFor(InvalidRequest))
	assert.Equal(t, http.StatusUnauthorized, httpStatusFor(TokenExpired))
	assert.Equal(t, http.StatusUnauthorized, httpStatusFor(TokenInvalid))
	assert.Equal(t, http.StatusUnauthorized, httpStatusFor(Unauthenticated))
	assert.Equal(t, http.StatusUnauthorized, httpStatusFor(InvalidCredentials))
	assert.Equal(t, http.StatusForbidden, httpStatusFor(PermissionDenied))
	assert.Equal(t, http.StatusNotFound, httpStatusFor(NotFound))
	assert.Equal(t, http.StatusConflict, httpStatusFor(EmailAlreadyUsed))
	assert.Equal(t, http.StatusInternalServerError, httpStatusFor(NotSpecified))
}

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success wraps the payload with code zero", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Success(c, map[string]string{"hello": "world"})

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Code ErrorCode         `json:"code"`
			Data map[string]string `json:"data"`
			Msg  string            `json:"msg"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, OK, body.Code)
		assert.Equal(t, "world", body.Data["hello"])
		assert.Empty(t, body.Msg)
	})

	t.Run("Error picks the HTTP status from the code", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Error(c, "no access", PermissionDenied)

		require.Equal(t, http.StatusForbidden, w.Code)
		var body struct {
			Code ErrorCode `json:"code"`
			Msg  string    `json:"msg"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, PermissionDenied, body.Code)
		assert.Equal(t, "no access", body.Msg)
	})
}
