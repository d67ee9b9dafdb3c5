package reporthttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/olyph/go-report/adapters/reportapi"
	"github.com/olyph/go-report/report"
)

type stubGenerator struct {
	result report.Report
	err    error
}

func (g *stubGenerator) Generate(ctx context.Context, req report.Request) (report.Report, error) {
	if g.err != nil {
		return report.Report{}, g.err
	}
	return g.result, nil
}

func allowAll(ctx context.Context, username, password string) (bool, error) {
	return true, nil
}

func TestHandler_ReportEndpoint(t *testing.T) {
	handler := NewHandler(Config{
		Reports: &stubGenerator{result: report.Report{
			Bytes:       []byte("id\n1\n"),
			Filename:    "sheet_abc_20240607T080910Z.csv",
			ContentType: "text/csv",
		}},
		Auth: reportapi.AuthenticatorFunc(allowAll),
	})

	body := strings.NewReader(`{"username":"a","password":"b","sheet_id":"abc"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/report", body)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.HasPrefix(got, "attachment;") {
		t.Fatalf("expected attachment disposition, got %q", got)
	}
	if rec.Body.String() != "id\n1\n" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestHandler_ReportRequiresAuth(t *testing.T) {
	handler := NewHandler(Config{
		Reports: &stubGenerator{},
		Auth:    reportapi.AuthenticatorFunc(allowAll),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "authentication required") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestHandler_PipelineFailureIs500(t *testing.T) {
	handler := NewHandler(Config{
		Reports: &stubGenerator{err: report.NewError(report.KindPermissionDenied, "denied", nil)},
		Auth:    reportapi.AuthenticatorFunc(allowAll),
	})

	body := strings.NewReader(`{"username":"a","password":"b"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/report", body)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "shared with the service account") {
		t.Fatalf("expected permission remedy, got %q", rec.Body.String())
	}
}

func TestHandler_DownloadEndpoint(t *testing.T) {
	handler := NewHandler(Config{
		Reports: &stubGenerator{result: report.Report{
			Bytes:       []byte("id\n1\n"),
			Filename:    "sheet_def_20240607T080910Z.csv",
			ContentType: "text/csv",
		}},
		TokenGate:   true,
		AccessToken: "secret",
	})

	req := httptest.NewRequest(http.MethodGet, "/download-report?token=secret", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/download-report", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestHandler_UnknownRouteIs404(t *testing.T) {
	handler := NewHandler(Config{Reports: &stubGenerator{}})

	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
