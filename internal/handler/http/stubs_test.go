package http

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/hrflo/hrflo-backend/internal/domain/auth"
	"github.com/hrflo/hrflo-backend/internal/domain/dashboard"
	"github.com/hrflo/hrflo-backend/internal/domain/document"
	"github.com/hrflo/hrflo-backend/internal/domain/employee"
	"github.com/hrflo/hrflo-backend/internal/domain/job"
	"github.com/hrflo/hrflo-backend/internal/domain/recruitment"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/pkg/jwt"
)

// memoryAuth registers and logs in users held in a map, issuing real tokens.
type memoryAuth struct {
	auth.AuthService

	jwtService jwt.Service
	mu         sync.Mutex
	users      map[string]memoryUser
}

type memoryUser struct {
	id       string
	password string
	role     user.Role
}

func newMemoryAuth(jwtService jwt.Service) *memoryAuth {
	return &memoryAuth{jwtService: jwtService, users: make(map[string]memoryUser)}
}

func (m *memoryAuth) Register(_ context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	email := strings.ToLower(req.Email)
	if _, ok := m.users[email]; ok {
		return auth.RegisterResponse{}, user.ErrUserEmailExists
	}
	u := memoryUser{id: uuid.NewString(), password: req.Password, role: user.RoleEmployee}
	m.users[email] = u
	return auth.RegisterResponse{ID: u.id}, nil
}

func (m *memoryAuth) Login(_ context.Context, req auth.LoginRequest, _ auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	m.mu.Lock()
	u, ok := m.users[strings.ToLower(req.Email)]
	m.mu.Unlock()
	if !ok || u.password != req.Password {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	access, accessExp, err := m.jwtService.GenerateAccessToken(u.id, req.Email, u.role)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	refresh, refreshExp, err := m.jwtService.GenerateRefreshToken(u.id)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		User: auth.IdentityResponse{ID: u.id, Email: req.Email, Role: string(u.role)},
		Token: auth.TokenResponse{
			AccessToken:           access,
			AccessTokenExpiresAt:  accessExp,
			RefreshToken:          refresh,
			RefreshTokenExpiresAt: refreshExp,
		},
	}, nil
}

type stubEmployees struct {
	employee.EmployeeService
	getEmployee func(actor user.Actor, id string) (employee.EmployeeResponse, error)
}

func (s *stubEmployees) ListEmployees(context.Context) ([]employee.EmployeeResponse, error) {
	return []employee.EmployeeResponse{}, nil
}

func (s *stubEmployees) ListManagers(context.Context) ([]employee.EmployeeResponse, error) {
	return []employee.EmployeeResponse{}, nil
}

func (s *stubEmployees) GetEmployee(_ context.Context, actor user.Actor, id string) (employee.EmployeeResponse, error) {
	return s.getEmployee(actor, id)
}

type stubJobs struct {
	job.JobService
}

func (s *stubJobs) ListOpenJobs(context.Context) ([]job.JobResponse, error) {
	return []job.JobResponse{{ID: "job-1", Title: "Backend Engineer", Status: string(job.StatusOpen)}}, nil
}

func (s *stubJobs) ListAllJobs(context.Context) ([]job.JobResponse, error) {
	return []job.JobResponse{}, nil
}

type appliedCall struct {
	jobID  string
	req    recruitment.ApplyRequest
	resume []byte
	name   string
}

type stubRecruitment struct {
	recruitment.RecruitmentService
	err   error
	calls []appliedCall
}

func (s *stubRecruitment) Apply(_ context.Context, jobID string, req recruitment.ApplyRequest, resume *document.Upload) (recruitment.ApplyResponse, error) {
	call := appliedCall{jobID: jobID, req: req}
	if resume != nil {
		data, err := io.ReadAll(resume.Content)
		if err != nil {
			return recruitment.ApplyResponse{}, err
		}
		call.resume = data
		call.name = resume.Filename
	}
	s.calls = append(s.calls, call)
	if s.err != nil {
		return recruitment.ApplyResponse{}, s.err
	}
	return recruitment.ApplyResponse{ApplicationID: "app-1", JobID: jobID, Status: string(recruitment.StatusReceived)}, nil
}

type stubDocuments struct {
	document.DocumentService
	stored   []byte
	retrieve func(actor user.Actor, id string) (document.Download, error)
}

func (s *stubDocuments) Store(_ context.Context, actor user.Actor, ownerID string, req document.StoreDocumentRequest, upload document.Upload) (document.DocumentResponse, error) {
	if !actor.CanAccessUser(ownerID, user.PermissionDocumentManageAll) {
		return document.DocumentResponse{}, user.ErrInsufficientPermissions
	}
	data, err := io.ReadAll(upload.Content)
	if err != nil {
		return document.DocumentResponse{}, err
	}
	s.stored = data
	return document.DocumentResponse{ID: "doc-1", OwnerID: ownerID, DisplayName: req.DisplayName, SizeBytes: int64(len(data))}, nil
}

func (s *stubDocuments) Retrieve(_ context.Context, actor user.Actor, id string) (document.Download, error) {
	return s.retrieve(actor, id)
}

type stubDashboard struct{}

func (stubDashboard) GetDashboard(context.Context) (*dashboard.DashboardResponse, error) {
	return &dashboard.DashboardResponse{TotalEmployees: 3, OpenJobs: 2}, nil
}
