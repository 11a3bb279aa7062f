package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack-backend/internal/catalog"
	"github.com/studytrack/studytrack-backend/internal/response"
)

func catalogTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler(catalog.New(map[string]int{"BCA": 6, "B.Tech": 8}))
	r := gin.New()
	r.GET("/catalog/courses", h.Courses)
	r.GET("/catalog/semesters", h.Semesters)
	return r
}

func TestCatalogCourses(t *testing.T) {
	r := catalogTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalog/courses", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Data struct {
			Courses []catalog.Course `json:"courses"`
		} `json:"data"`
		Metadata response.Metadata `json:"metadata"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(body.Data.Courses) != 2 {
		t.Errorf("courses = %v, want 2 entries", body.Data.Courses)
	}
	if body.Metadata.RequestID == "" {
		t.Error("metadata.request_id is empty")
	}
}

func TestCatalogSemesters(t *testing.T) {
	r := catalogTestRouter()

	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantCount int
	}{
		{"BCA has six semesters", "?course=BCA", http.StatusOK, 6},
		{"B.Tech has eight semesters", "?course=B.Tech", http.StatusOK, 8},
		{"unknown course", "?course=MBA", http.StatusNotFound, 0},
		{"missing course", "", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/catalog/semesters"+tt.query, nil)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantCode != http.StatusOK {
				return
			}

			var body struct {
				Data struct {
					Semesters []int `json:"semesters"`
				} `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if len(body.Data.Semesters) != tt.wantCount {
				t.Errorf("semesters = %v, want %d options", body.Data.Semesters, tt.wantCount)
			}
		})
	}
}
