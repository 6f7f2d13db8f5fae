package usecase

import (
	"context"
	"testing"
	"time"

	"popcorn-palace/internal/data/entity"
	"popcorn-palace/internal/data/repository"
	"popcorn-palace/internal/dto/request"
	"popcorn-palace/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// newShowtimeFixture wires a showtime service onto fake repositories with a
// frozen clock and one movie already in the catalog.
func newShowtimeFixture(t *testing.T) (*showtimeService, *repository.Repository) {
	t.Helper()

	repo, movies, _, _ := newTestRepo()
	err := movies.Create(context.Background(), &entity.Movie{
		Title:       "Inception",
		Genre:       "Sci-Fi",
		Duration:    148,
		Rating:      8.8,
		ReleaseYear: 2010,
	})
	require.NoError(t, err)

	svc := &showtimeService{
		repo: repo,
		log:  testLogger(),
		now:  func() time.Time { return testClock },
	}
	return svc, repo
}

func showtimeReq(theater string, start, end time.Time) *request.ShowtimeRequest {
	return &request.ShowtimeRequest{
		MovieID:   1,
		Theater:   theater,
		StartTime: start,
		EndTime:   end,
		Price:     12.5,
	}
}

func TestAddShowtime(t *testing.T) {
	svc, _ := newShowtimeFixture(t)
	ctx := context.Background()

	start := testClock.Add(24 * time.Hour)
	created, err := svc.AddShowtime(ctx, showtimeReq("Theater 1", start, start.Add(2*time.Hour)))
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(1), created.ID)

	found, err := svc.GetShowtime(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Theater 1", found.Theater)
	assert.Equal(t, int64(1), found.MovieID)
}

func TestGetShowtimeNotFound(t *testing.T) {
	svc, _ := newShowtimeFixture(t)

	_, err := svc.GetShowtime(context.Background(), 99)
	require.Error(t, err)

	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Showtime with ID 99 not found", appErr.Message)
}

func TestAddShowtimeValidationOrder(t *testing.T) {
	base := testClock.Add(24 * time.Hour)

	tests := []struct {
		name    string
		req     *request.ShowtimeRequest
		status  int
		code    string
		message string
	}{
		{
			name: "non-positive movie id first",
			req: &request.ShowtimeRequest{
				MovieID: 0, Theater: "", StartTime: base, EndTime: base.Add(2 * time.Hour), Price: 0,
			},
			status:  400,
			code:    apperror.CodeInvalidResource,
			message: "Invalid value for field 'movieId': must be a positive number",
		},
		{
			name: "empty theater before missing times",
			req: &request.ShowtimeRequest{
				MovieID: 1, Theater: "", Price: 0,
			},
			status:  400,
			code:    apperror.CodeInvalidResource,
			message: "Invalid value for field 'theater': must not be empty",
		},
		{
			name: "missing start time",
			req: &request.ShowtimeRequest{
				MovieID: 1, Theater: "Theater 1", EndTime: base.Add(2 * time.Hour), Price: 12.5,
			},
			status:  400,
			code:    apperror.CodeInvalidResource,
			message: "Invalid value for field 'startTime': must not be null",
		},
		{
			name: "missing end time",
			req: &request.ShowtimeRequest{
				MovieID: 1, Theater: "Theater 1", StartTime: base, Price: 12.5,
			},
			status:  400,
			code:    apperror.CodeInvalidResource,
			message: "Invalid value for field 'endTime': must not be null",
		},
		{
			name: "non-positive price",
			req: &request.ShowtimeRequest{
				MovieID: 1, Theater: "Theater 1", StartTime: base, EndTime: base.Add(2 * time.Hour), Price: 0,
			},
			status:  400,
			code:    apperror.CodeInvalidResource,
			message: "Invalid value for field 'price': must be positive",
		},
		{
			name: "unknown movie checked after field checks",
			req: &request.ShowtimeRequest{
				MovieID: 42, Theater: "Theater 1", StartTime: base, EndTime: base.Add(2 * time.Hour), Price: 12.5,
			},
			status:  404,
			code:    apperror.CodeResourceNotFound,
			message: "Movie with ID 42 not found",
		},
		{
			name: "start equal to end",
			req: &request.ShowtimeRequest{
				MovieID: 1, Theater: "Theater 1", StartTime: base, EndTime: base, Price: 12.5,
			},
			status:  400,
			code:    apperror.CodeInvalidResource,
			message: "Invalid value for field 'startTime': must be before end time",
		},
		{
			name: "start after end",
			req: &request.ShowtimeRequest{
				MovieID: 1, Theater: "Theater 1", StartTime: base.Add(2 * time.Hour), EndTime: base, Price: 12.5,
			},
			status:  400,
			code:    apperror.CodeInvalidResource,
			message: "Invalid value for field 'startTime': must be before end time",
		},
		{
			name: "start in the past",
			req: &request.ShowtimeRequest{
				MovieID: 1, Theater: "Theater 1",
				StartTime: testClock.Add(-time.Hour), EndTime: testClock.Add(time.Hour), Price: 12.5,
			},
			status:  400,
			code:    apperror.CodeInvalidResource,
			message: "Invalid value for field 'startTime': must be in the future",
		},
		{
			name: "start exactly now",
			req: &request.ShowtimeRequest{
				MovieID: 1, Theater: "Theater 1",
				StartTime: testClock, EndTime: testClock.Add(2 * time.Hour), Price: 12.5,
			},
			status:  400,
			code:    apperror.CodeInvalidResource,
			message: "Invalid value for field 'startTime': must be in the future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newShowtimeFixture(t)

			_, err := svc.AddShowtime(context.Background(), tt.req)
			require.Error(t, err)

			appErr, ok := apperror.From(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, appErr.Status)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestAddShowtimeDurationBounds(t *testing.T) {
	start := testClock.Add(24 * time.Hour)

	tests := []struct {
		name     string
		duration time.Duration
		wantErr  string
	}{
		{"29 minutes rejected", 29 * time.Minute, "Invalid value for field 'showtime duration': must be at least 30 minutes"},
		{"30 minutes accepted", 30 * time.Minute, ""},
		{"5 hours accepted", 5 * time.Hour, ""},
		{"just over 5 hours rejected", 5*time.Hour + time.Second, "Invalid value for field 'showtime duration': must not exceed 5 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newShowtimeFixture(t)

			_, err := svc.AddShowtime(context.Background(), showtimeReq("Theater 1", start, start.Add(tt.duration)))
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			appErr, ok := apperror.From(err)
			require.True(t, ok)
			assert.Equal(t, 400, appErr.Status)
			assert.Equal(t, tt.wantErr, appErr.Message)
		})
	}
}

func TestAddShowtimeOverlap(t *testing.T) {
	svc, _ := newShowtimeFixture(t)
	ctx := context.Background()

	start := testClock.Add(24 * time.Hour)
	_, err := svc.AddShowtime(ctx, showtimeReq("Theater 1", start, start.Add(2*time.Hour)))
	require.NoError(t, err)

	tests := []struct {
		name     string
		theater  string
		start    time.Time
		end      time.Time
		conflict bool
	}{
		{"same slot", "Theater 1", start, start.Add(2 * time.Hour), true},
		{"contained within", "Theater 1", start.Add(30 * time.Minute), start.Add(90 * time.Minute), true},
		{"straddles start", "Theater 1", start.Add(-time.Hour), start.Add(time.Hour), true},
		{"starts exactly at existing end", "Theater 1", start.Add(2 * time.Hour), start.Add(4 * time.Hour), true},
		{"ends exactly at existing start", "Theater 1", start.Add(-2 * time.Hour), start, true},
		{"clear gap after", "Theater 1", start.Add(3 * time.Hour), start.Add(5 * time.Hour), false},
		{"same slot different theater", "Theater 2", start, start.Add(2 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddShowtime(ctx, showtimeReq(tt.theater, tt.start, tt.end))
			if !tt.conflict {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			appErr, ok := apperror.From(err)
			require.True(t, ok)
			assert.Equal(t, 422, appErr.Status)
			assert.Equal(t, apperror.CodeBusinessViolation, appErr.Code)
			assert.Equal(t, "Showtime overlaps with existing showtime in theater 'Theater 1'. Cannot schedule overlapping showtimes.", appErr.Message)
		})
	}
}

func TestUpdateShowtime(t *testing.T) {
	svc, _ := newShowtimeFixture(t)
	ctx := context.Background()

	start := testClock.Add(24 * time.Hour)
	created, err := svc.AddShowtime(ctx, showtimeReq("Theater 1", start, start.Add(2*time.Hour)))
	require.NoError(t, err)

	// Shifting a showtime within its own slot must not conflict with itself.
	req := showtimeReq("Theater 1", start.Add(30*time.Minute), start.Add(150*time.Minute))
	require.NoError(t, svc.UpdateShowtime(ctx, created.ID, req))

	updated, err := svc.GetShowtime(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, updated.StartTime.Equal(start.Add(30*time.Minute)))
}

func TestUpdateShowtimeNotFoundBeforeValidation(t *testing.T) {
	svc, _ := newShowtimeFixture(t)

	// Existence is checked before the payload, so an invalid body still 404s.
	err := svc.UpdateShowtime(context.Background(), 99, &request.ShowtimeRequest{})
	require.Error(t, err)

	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Showtime with ID 99 not found", appErr.Message)
}

func TestUpdateShowtimeOverlapWithOther(t *testing.T) {
	svc, _ := newShowtimeFixture(t)
	ctx := context.Background()

	start := testClock.Add(24 * time.Hour)
	_, err := svc.AddShowtime(ctx, showtimeReq("Theater 1", start, start.Add(2*time.Hour)))
	require.NoError(t, err)

	other, err := svc.AddShowtime(ctx, showtimeReq("Theater 1", start.Add(3*time.Hour), start.Add(5*time.Hour)))
	require.NoError(t, err)

	err = svc.UpdateShowtime(ctx, other.ID, showtimeReq("Theater 1", start.Add(time.Hour), start.Add(3*time.Hour)))
	require.Error(t, err)

	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.Status)
	assert.Equal(t, apperror.CodeBusinessViolation, appErr.Code)
}

func TestDeleteShowtime(t *testing.T) {
	svc, _ := newShowtimeFixture(t)
	ctx := context.Background()

	start := testClock.Add(24 * time.Hour)
	created, err := svc.AddShowtime(ctx, showtimeReq("Theater 1", start, start.Add(2*time.Hour)))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteShowtime(ctx, created.ID))

	_, err = svc.GetShowtime(ctx, created.ID)
	require.Error(t, err)
}

func TestDeleteShowtimeNotFound(t *testing.T) {
	svc, _ := newShowtimeFixture(t)

	err := svc.DeleteShowtime(context.Background(), 99)
	require.Error(t, err)

	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
}

func TestDeleteShowtimeAlreadyStarted(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
	}{
		{"in the past", testClock.Add(-2 * time.Hour)},
		{"starting exactly now", testClock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newShowtimeFixture(t)
			ctx := context.Background()

			// Seed directly; the service would refuse to create a past showtime.
			showtime := &entity.Showtime{
				Price:     12.5,
				MovieID:   1,
				Theater:   "Theater 1",
				StartTime: tt.start,
				EndTime:   tt.start.Add(2 * time.Hour),
			}
			require.NoError(t, repo.Showtime.Create(ctx, showtime))

			err := svc.DeleteShowtime(ctx, showtime.ID)
			require.Error(t, err)

			appErr, ok := apperror.From(err)
			require.True(t, ok)
			assert.Equal(t, 422, appErr.Status)
			assert.Equal(t, apperror.CodeBusinessViolation, appErr.Code)
			assert.Equal(t, "Cannot delete showtime that has already started or is in the past", appErr.Message)
		})
	}
}
