package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vocallabs/hr-apply/api/http/presenter"
	"github.com/vocallabs/hr-apply/pkg/application"
	"github.com/vocallabs/hr-apply/pkg/campaign"
	"github.com/vocallabs/hr-apply/pkg/job"
)

type ApplicationHandler struct {
	jobs job.UseCase
	apps application.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewApplicationHandler(jobs job.UseCase, apps application.UseCase) *ApplicationHandler {
	return &ApplicationHandler{jobs: jobs, apps: apps, maxBytes: 8 << 20} // 8MB
}

// Submit accepts a candidate application for a posting: form fields plus a
// resume file, forwarded to the ingestion service after validation.
// @Summary Submit an application for a job posting
// @Description Validates the candidate form and forwards the resume with its metadata to the ingestion service.
// @Tags    Applications
// @Accept  multipart/form-data
// @Produce json
// @Param   id path string true "Posting ID (UUID)"
// @Param   name formData string true "Candidate name"
// @Param   email formData string true "Candidate email"
// @Param   phone formData string false "Candidate phone (required on the modal surface)"
// @Param   surface formData string false "Submission surface: modal (default) or inline"
// @Param   notice_period_days formData integer false "Notice period in days"
// @Param   current_salary formData number false "Current salary"
// @Param   expected_salary formData number false "Expected salary"
// @Param   resume formData file true "Resume file (PDF or Word, up to 5MB)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /jobs/{id}/applications [post]
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	j, err := h.jobs.FetchJob(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Job not found")
		}
		return presenter.Error(c, http.StatusBadGateway, err.Error())
	}

	form := application.Form{
		Name:  c.FormValue("name"),
		Email: c.FormValue("email"),
		Phone: c.FormValue("phone"),
	}
	if form.NoticePeriodDays, err = optionalInt(c, "notice_period_days"); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	if form.CurrentSalary, err = optionalFloat(c, "current_salary"); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	if form.ExpectedSalary, err = optionalFloat(c, "expected_salary"); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	profile := application.ProfileModal
	if c.FormValue("surface") == "inline" {
		profile = application.ProfileInline
	}

	resume, err := h.readResume(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.apps.Submit(c.Context(), profile, j, form, resume)
	if err != nil {
		var vErr application.ValidationError
		if errors.As(err, &vErr) {
			return presenter.Error(c, http.StatusBadRequest, vErr.Error())
		}
		var rejected *campaign.RejectedError
		if errors.As(err, &rejected) {
			return presenter.Error(c, http.StatusBadGateway, rejected.Error())
		}
		return presenter.Error(c, http.StatusBadGateway, err.Error())
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": fmt.Sprintf("Application submitted successfully for %s! We'll be in touch soon.", j.JobRole),
		"result":  result,
	})
}

// readResume pulls the uploaded file into memory. A missing file is not an
// error here: the validator owns that rule and its wording. Oversized files
// are not read at all; the declared size alone is enough for the validator
// to reject them with the right message in the right order.
func (h *ApplicationHandler) readResume(c *fiber.Ctx) (*application.Resume, error) {
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return nil, nil
	}
	resume := &application.Resume{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	}
	if fh.Size > h.maxBytes {
		return resume, nil
	}
	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file")
	}
	defer file.Close()
	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return nil, err
	}
	resume.Data = data
	return resume, nil
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}

func optionalInt(c *fiber.Ctx, key string) (*int, error) {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", key)
	}
	return &n, nil
}

func optionalFloat(c *fiber.Ctx, key string) (*float64, error) {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", key)
	}
	return &n, nil
}
