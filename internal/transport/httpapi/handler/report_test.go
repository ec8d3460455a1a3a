package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kislikjeka/bookstore/internal/module/reporting"
	"github.com/kislikjeka/bookstore/internal/platform/user"
	"github.com/kislikjeka/bookstore/internal/report"
	"github.com/kislikjeka/bookstore/internal/transport/httpapi/handler"
)

func reportRequest(path string, role user.Role) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	return req.WithContext(withUser(req.Context(), uuid.New(), role))
}

func reportRouter(svc *MockReportService) http.Handler {
	h := handler.NewReportHandler(svc, testLogger())
	r := chi.NewRouter()
	r.Get("/reports/{kind}", h.DownloadReport)
	return r
}

func TestReportHandler_Download(t *testing.T) {
	svc := new(MockReportService)
	svc.On("Generate", mock.Anything, mock.MatchedBy(func(req reporting.Request) bool {
		return req.Kind == reporting.KindStock && req.Format == report.Excel && req.RequestedBy == "admin1"
	})).Return(&report.Result{
		Content:  []byte("xlsx-bytes"),
		FileName: "stock_20250301_101500.xlsx",
		MimeType: report.MimeExcel,
	}, nil)

	rec := httptest.NewRecorder()
	reportRouter(svc).ServeHTTP(rec, reportRequest("/reports/stock?format=excel", user.RoleEmployee))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.MimeExcel, rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=stock_20250301_101500.xlsx", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "10", rec.Header().Get("Content-Length"))
	assert.Equal(t, "xlsx-bytes", rec.Body.String())
}

func TestReportHandler_DefaultsToPDF(t *testing.T) {
	svc := new(MockReportService)
	svc.On("Generate", mock.Anything, mock.MatchedBy(func(req reporting.Request) bool {
		return req.Format == report.PDF
	})).Return(&report.Result{Content: []byte("%PDF"), FileName: "clientes.pdf", MimeType: report.MimePDF}, nil)

	rec := httptest.NewRecorder()
	reportRouter(svc).ServeHTTP(rec, reportRequest("/reports/clients", user.RoleEmployee))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.MimePDF, rec.Header().Get("Content-Type"))
}

func TestReportHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		role       user.Role
		genErr     error
		wantStatus int
	}{
		{name: "sales report is admin only", path: "/reports/sales", role: user.RoleEmployee, wantStatus: http.StatusForbidden},
		{name: "unknown kind", path: "/reports/invoices", role: user.RoleAdmin, wantStatus: http.StatusNotFound},
		{name: "unknown format", path: "/reports/stock?format=csv", role: user.RoleAdmin, wantStatus: http.StatusBadRequest},
		{name: "bad date", path: "/reports/sales?from=yesterday", role: user.RoleAdmin, wantStatus: http.StatusBadRequest},
		{name: "inverted period", path: "/reports/sales?from=2025-02-01&to=2025-01-01", role: user.RoleAdmin, wantStatus: http.StatusBadRequest},
		{
			name:       "generation failure",
			path:       "/reports/products",
			role:       user.RoleAdmin,
			genErr:     fmt.Errorf("render: %w", report.ErrGeneration),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockReportService)
			if tt.genErr != nil {
				svc.On("Generate", mock.Anything, mock.Anything).Return(nil, tt.genErr)
			}

			rec := httptest.NewRecorder()
			reportRouter(svc).ServeHTTP(rec, reportRequest(tt.path, tt.role))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.genErr == nil {
				svc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
			}
		})
	}
}
