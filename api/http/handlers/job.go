package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/vocallabs/hr-apply/api/http/presenter"
	"github.com/vocallabs/hr-apply/pkg/job"
)

type JobHandler struct {
	uc job.UseCase
}

func NewJobHandler(uc job.UseCase) *JobHandler { return &JobHandler{uc: uc} }

// @Summary Get a job posting by ID
// @Description Returns the posting merged with its resolved company profile.
// @Tags    Jobs
// @Produce json
// @Param   id path string true "Posting ID (UUID)"
// @Success 200 {object} job.Job
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobHandler) GetByID(c *fiber.Ctx) error {
	j, err := h.uc.FetchJob(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Job not found")
		}
		return presenter.Error(c, http.StatusBadGateway, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, j)
}
