package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"personal-task-tracker/pkg/response"
)

func record(t *testing.T, send func(c *gin.Context)) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	send(c)

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return w, resp
}

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("OK wraps data in the success envelope", func(t *testing.T) {
		w, resp := record(t, func(c *gin.Context) {
			response.OK(c, map[string]string{"id": "task-1"})
		})

		if w.Code != http.StatusOK {
			t.Errorf("expected %d, got %d", http.StatusOK, w.Code)
		}
		if resp.ErrorCode != 0 {
			t.Errorf("expected error_code 0, got %d", resp.ErrorCode)
		}
		if resp.Message != response.MessageSuccess {
			t.Errorf("unexpected message: %q", resp.Message)
		}
		data, ok := resp.Data.(map[string]any)
		if !ok || data["id"] != "task-1" {
			t.Errorf("unexpected data payload: %v", resp.Data)
		}
	})

	t.Run("Error carries the message and field details", func(t *testing.T) {
		w, resp := record(t, func(c *gin.Context) {
			response.Error(c, errors.New("title is required"), map[string]any{"title": "required"})
		})

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}
		if resp.ErrorCode != 1 {
			t.Errorf("expected error_code 1, got %d", resp.ErrorCode)
		}
		if resp.Message != "title is required" {
			t.Errorf("unexpected message: %q", resp.Message)
		}
		data, ok := resp.Data.(map[string]any)
		if !ok || data["title"] != "required" {
			t.Errorf("unexpected data payload: %v", resp.Data)
		}
	})

	t.Run("InternalError never echoes the error", func(t *testing.T) {
		w, resp := record(t, func(c *gin.Context) {
			response.InternalError(c, errors.New("dial tcp: connection refused"))
		})

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected %d, got %d", http.StatusInternalServerError, w.Code)
		}
		if resp.Message != response.DefaultErrorMessage {
			t.Errorf("expected opaque message, got %q", resp.Message)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		w, resp := record(t, func(c *gin.Context) {
			response.NotFound(c, "task not found")
		})

		if w.Code != http.StatusNotFound {
			t.Errorf("expected %d, got %d", http.StatusNotFound, w.Code)
		}
		if resp.ErrorCode != 404 || resp.Message != "task not found" {
			t.Errorf("unexpected envelope: %+v", resp)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		w, _ := record(t, func(c *gin.Context) {
			response.Unauthorized(c)
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("Forbidden", func(t *testing.T) {
		w, _ := record(t, func(c *gin.Context) {
			response.Forbidden(c)
		})
		if w.Code != http.StatusForbidden {
			t.Errorf("expected %d, got %d", http.StatusForbidden, w.Code)
		}
	})
}
