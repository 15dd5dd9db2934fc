package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/hrflo/hrflo-backend/internal/domain/document"
	"github.com/hrflo/hrflo-backend/internal/domain/job"
	"github.com/hrflo/hrflo-backend/internal/domain/recruitment"
	"github.com/hrflo/hrflo-backend/internal/handler/http/response"
)

type JobHandler interface {
	ListOpenJobs(w http.ResponseWriter, r *http.Request)
	ListAllJobs(w http.ResponseWriter, r *http.Request)
	CreateJob(w http.ResponseWriter, r *http.Request)
	GetJob(w http.ResponseWriter, r *http.Request)
	UpdateJobStatus(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	ListApplicants(w http.ResponseWriter, r *http.Request)
	UpdateApplicationStatus(w http.ResponseWriter, r *http.Request)
}

type jobHandlerImpl struct {
	jobService         job.JobService
	recruitmentService recruitment.RecruitmentService
	maxUploadBytes     int64
}

func NewJobHandler(jobService job.JobService, recruitmentService recruitment.RecruitmentService, maxUploadBytes int64) JobHandler {
	return &jobHandlerImpl{
		jobService:         jobService,
		recruitmentService: recruitmentService,
		maxUploadBytes:     maxUploadBytes,
	}
}

// ListOpenJobs implements JobHandler
func (h *jobHandlerImpl) ListOpenJobs(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobService.ListOpenJobs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAllJobs implements JobHandler
func (h *jobHandlerImpl) ListAllJobs(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobService.ListAllJobs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateJob implements JobHandler
func (h *jobHandlerImpl) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req job.CreateJobRequest
	if !decodeJSON(w, r, "CreateJob", &req) {
		return
	}

	result, err := h.jobService.CreateJob(r.Context(), req)
	if err != nil {
		slog.Error("CreateJob service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job posting created successfully", result)
}

// GetJob implements JobHandler
func (h *jobHandlerImpl) GetJob(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobService.GetJob(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateJobStatus implements JobHandler
func (h *jobHandlerImpl) UpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	var req job.UpdateJobStatusRequest
	if !decodeJSON(w, r, "UpdateJobStatus", &req) {
		return
	}

	result, err := h.jobService.UpdateJobStatus(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job posting status updated successfully", result)
}

// Apply implements JobHandler. Accepts JSON, or multipart with name, email and an optional resume file.
func (h *jobHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req recruitment.ApplyRequest
	var resume *document.Upload

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := parseMultipart(w, r, h.maxUploadBytes); err != nil {
			slog.Error("Apply multipart error", "error", err)
			if errors.Is(err, document.ErrFileTooLarge) {
				response.HandleError(w, err)
				return
			}
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}
		req.Name = r.FormValue("name")
		req.Email = r.FormValue("email")

		upload, file, err := formUpload(r, "resume")
		switch {
		case err == nil:
			defer file.Close()
			resume = &upload
		case !errors.Is(err, document.ErrMissingFile):
			response.BadRequest(w, "Invalid file upload", nil)
			return
		}
	} else if !decodeJSON(w, r, "Apply", &req) {
		return
	}

	result, err := h.recruitmentService.Apply(r.Context(), chi.URLParam(r, "id"), req, resume)
	if err != nil {
		slog.Error("Apply service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Application submitted successfully", result)
}

// ListApplicants implements JobHandler
func (h *jobHandlerImpl) ListApplicants(w http.ResponseWriter, r *http.Request) {
	result, err := h.recruitmentService.ListApplicants(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateApplicationStatus implements JobHandler
func (h *jobHandlerImpl) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpdateApplicationStatusRequest
	if !decodeJSON(w, r, "UpdateApplicationStatus", &req) {
		return
	}

	result, err := h.recruitmentService.UpdateApplicationStatus(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Application status updated successfully", result)
}
