package handler

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kislikjeka/bookstore/internal/module/reporting"
	"github.com/kislikjeka/bookstore/internal/platform/user"
	"github.com/kislikjeka/bookstore/internal/report"
	apperr "github.com/kislikjeka/bookstore/internal/shared/errors"
	"github.com/kislikjeka/bookstore/internal/transport/httpapi/middleware"
	"github.com/kislikjeka/bookstore/pkg/logger"
)

// ReportServiceInterface defines the report generation the handler needs
type ReportServiceInterface interface {
	Generate(ctx context.Context, req reporting.Request) (*report.Result, error)
}

// ReportHandler streams generated reports as file downloads
type ReportHandler struct {
	responder
	service ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(service ReportServiceInterface, log *logger.Logger) *ReportHandler {
	return &ReportHandler{responder: responder{logger: log}, service: service}
}

// adminKinds lists the reports employees may not download
var adminKinds = map[reporting.Kind]bool{
	reporting.KindSales: true,
}

// DownloadReport handles GET /reports/{kind}?format=pdf|excel[&from=&to=]
func (h *ReportHandler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	kind, err := reporting.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.fail(w, r, apperr.NotFound("report"))
		return
	}
	if adminKinds[kind] {
		if role, _ := middleware.GetRoleFromContext(r.Context()); role != user.RoleAdmin {
			h.fail(w, r, apperr.Forbidden("insufficient permissions"))
			return
		}
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "pdf"
	}
	t, err := report.ParseType(format)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	period, err := parsePeriod(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !period.From.IsZero() && !period.To.IsZero() && period.From.After(period.To) {
		h.fail(w, r, apperr.BadRequest("from must not be after to"))
		return
	}

	requestedBy, _ := middleware.GetUsernameFromContext(r.Context())
	res, err := h.service.Generate(r.Context(), reporting.Request{
		Kind:        kind,
		Format:      t,
		Period:      period,
		RequestedBy: requestedBy,
	})
	if err != nil {
		if errors.Is(err, reporting.ErrUnknownKind) {
			err = apperr.NotFound("report")
		}
		h.fail(w, r, err)
		return
	}

	writeFile(w, res)
}

func writeFile(w http.ResponseWriter, res *report.Result) {
	w.Header().Set("Content-Type", res.MimeType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": res.FileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Content)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Content)
}
