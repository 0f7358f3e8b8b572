package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeResourceCounter struct {
	CountListsFn func(userID string) (int64, error)
}

func (f *fakeResourceCounter) CountLists(userID string) (int64, error) {
	return f.CountListsFn(userID)
}

func newLimitRouter(counter ResourceCounter, maxLists int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/listas",
		func(c *gin.Context) { c.Set("user_id", "01H0000000000000000000USER") },
		CheckListLimit(counter, maxLists),
		func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{"ok": true}) },
	)
	return router
}

func TestCheckListLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		count      int64
		countErr   error
		maxLists   int
		wantStatus int
	}{
		{name: "abaixo do limite", count: 2, maxLists: 10, wantStatus: http.StatusCreated},
		{name: "no limite", count: 10, maxLists: 10, wantStatus: http.StatusForbidden},
		{name: "acima do limite", count: 11, maxLists: 10, wantStatus: http.StatusForbidden},
		{name: "limite desativado", count: 99, maxLists: 0, wantStatus: http.StatusCreated},
		{name: "erro de contagem libera", count: 0, countErr: errors.New("db fora"), maxLists: 10, wantStatus: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			counter := &fakeResourceCounter{
				CountListsFn: func(userID string) (int64, error) {
					return tt.count, tt.countErr
				},
			}

			req := httptest.NewRequest(http.MethodPost, "/listas", nil)
			rec := httptest.NewRecorder()
			newLimitRouter(counter, tt.maxLists).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status esperado %d, obteve %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestCheckListLimitWithoutUserPasses(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	counter := &fakeResourceCounter{
		CountListsFn: func(userID string) (int64, error) {
			t.Error("contador não deveria ser consultado sem user_id")
			return 0, nil
		},
	}
	router.POST("/listas",
		CheckListLimit(counter, 5),
		func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{"ok": true}) },
	)

	req := httptest.NewRequest(http.MethodPost, "/listas", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("status esperado 201, obteve %d", rec.Code)
	}
}
