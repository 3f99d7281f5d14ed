package wizardapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jobdeck/jobdeck/board/application/applicationinfra"
	"github.com/jobdeck/jobdeck/board/application/applicationsrv"
	"github.com/jobdeck/jobdeck/board/job"
	"github.com/jobdeck/jobdeck/board/job/jobinfra"
	"github.com/jobdeck/jobdeck/board/wizard"
	"github.com/jobdeck/jobdeck/board/wizard/wizardinfra"
	"github.com/jobdeck/jobdeck/board/wizard/wizardsrv"
	"github.com/jobdeck/jobdeck/pkg/errx"
	"github.com/jobdeck/jobdeck/pkg/fsx/fsxmem"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

func newTestApp(t *testing.T, jobs ...*job.Job) *fiber.App {
	t.Helper()

	jobRepo := jobinfra.NewMemoryJobRepository()
	for _, j := range jobs {
		if err := jobRepo.Create(context.Background(), j); err != nil {
			t.Fatalf("seeding job: %v", err)
		}
	}

	fs := fsxmem.New()
	appSvc := applicationsrv.NewApplicationService(
		applicationinfra.NewMemoryApplicationRepository(),
		fs,
		applicationinfra.NewMemoryListingCache(),
	)
	svc := wizardsrv.NewWizardService(wizardinfra.NewMemorySessionStore(), jobRepo, fs, appSvc)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*errx.Error); ok {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})
	RegisterRoutes(app, NewHandlers(svc))
	return app
}

func openJob() *job.Job {
	return &job.Job{
		ID:      kernel.JobID("job-1"),
		Title:   kernel.JobTitle("Backend Engineer"),
		Company: kernel.CompanyName("Acme"),
		Status:  job.JobStatusOpen,
	}
}

func doJSON(t *testing.T, app *fiber.App, method, url string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	data, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, data
}

func TestWizardFlowOverHTTP(t *testing.T) {
	app := newTestApp(t, openJob())

	// Start
	resp, body := doJSON(t, app, "POST", "/api/wizard/", wizard.StartWizardRequest{JobID: "job-1"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("start status = %d: %s", resp.StatusCode, body)
	}
	var session wizard.SessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		t.Fatalf("decoding session: %v", err)
	}
	if session.StepCount != 3 {
		t.Fatalf("step count = %d, want 3", session.StepCount)
	}
	base := "/api/wizard/" + session.ID.String()

	// Identity + contact in one patch; values persist server-side
	resp, body = doJSON(t, app, "PATCH", base+"/fields", map[string]any{
		"full_name":   "Jane Doe",
		"email":       "jane@example.com",
		"country":     "pe",
		"local_phone": "987 654 321",
		"linkedin":    "jdoe",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("patch status = %d: %s", resp.StatusCode, body)
	}

	// Advance through identity and contact
	for i := 0; i < 2; i++ {
		resp, body = doJSON(t, app, "POST", base+"/next", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("next status = %d: %s", resp.StatusCode, body)
		}
	}

	// Attach a small PDF via multipart
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("resume", "jane-cv.pdf")
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	fmt.Fprint(part, "%PDF-1.7 test")
	w.Close()

	req := httptest.NewRequest("POST", base+"/resume", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	attachResp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("attaching resume: %v", err)
	}
	if attachResp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(attachResp.Body)
		t.Fatalf("attach status = %d: %s", attachResp.StatusCode, data)
	}
	attachResp.Body.Close()

	// Submit from the final step
	resp, body = doJSON(t, app, "POST", base+"/submit", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit status = %d: %s", resp.StatusCode, body)
	}
	var result wizard.SubmitResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if !result.Success || result.ApplicationID == "" {
		t.Fatalf("submit result: %+v", result)
	}

	// The session is gone
	resp, _ = doJSON(t, app, "GET", base, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("session status after submit = %d, want 404", resp.StatusCode)
	}
}

func TestForwardFailureReturnsFieldErrors(t *testing.T) {
	app := newTestApp(t, openJob())

	_, body := doJSON(t, app, "POST", "/api/wizard/", wizard.StartWizardRequest{JobID: "job-1"})
	var session wizard.SessionResponse
	json.Unmarshal(body, &session)

	resp, body := doJSON(t, app, "POST", "/api/wizard/"+session.ID.String()+"/next", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var payload struct {
		Code    string `json:"code"`
		Details struct {
			Fields []wizard.FieldError `json:"fields"`
		} `json:"details"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if payload.Code != "WIZARD_VALIDATION_FAILED" {
		t.Fatalf("code = %s: %s", payload.Code, body)
	}
	if len(payload.Details.Fields) == 0 {
		t.Fatalf("no field errors in %s", body)
	}
}

func TestStartAgainstUnknownJob(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/wizard/", wizard.StartWizardRequest{JobID: "missing"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
