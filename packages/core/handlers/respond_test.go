package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type kindError struct{ kind error }

func (e kindError) Error() string        { return "wrapped: " + e.kind.Error() }
func (e kindError) Is(target error) bool { return target == e.kind }

func TestRespondError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{kindError{services.ErrValidation}, http.StatusBadRequest},
		{kindError{services.ErrNotFound}, http.StatusNotFound},
		{kindError{services.ErrConflict}, http.StatusConflict},
		{kindError{services.ErrPersistence}, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.status), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, tc.err)
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestIDParam(t *testing.T) {
	for value, ok := range map[string]bool{"12": true, "0": false, "-3": false, "abc": false} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: value}}
		_, got := idParam(c, "id")
		assert.Equal(t, ok, got, value)
		if !ok {
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}
