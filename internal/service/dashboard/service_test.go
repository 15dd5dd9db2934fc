package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCounts struct {
	employees, openJobs, applications, pending int64
	err                                        error
}

func (s stubCounts) CountEmployees(ctx context.Context) (int64, error) {
	return s.employees, nil
}

func (s stubCounts) CountOpenJobs(ctx context.Context) (int64, error) {
	return s.openJobs, nil
}

func (s stubCounts) CountApplications(ctx context.Context) (int64, error) {
	return s.applications, s.err
}

func (s stubCounts) CountPendingOnboardings(ctx context.Context) (int64, error) {
	return s.pending, nil
}

func TestGetDashboard(t *testing.T) {
	svc := NewDashboardService(stubCounts{employees: 12, openJobs: 3, applications: 40, pending: 2})

	resp, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.TotalEmployees)
	assert.Equal(t, int64(3), resp.OpenJobs)
	assert.Equal(t, int64(40), resp.TotalApplications)
	assert.Equal(t, int64(2), resp.PendingOnboardings)
}

func TestGetDashboard_Error(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewDashboardService(stubCounts{err: boom})

	resp, err := svc.GetDashboard(context.Background())
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, boom)
}
