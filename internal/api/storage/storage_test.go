package storage

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/cuongbtq/wallpaper-gallery/internal/api/domain"
	"github.com/cuongbtq/wallpaper-gallery/internal/api/model"
	"github.com/cuongbtq/wallpaper-gallery/shared/database/databasetest"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	id     int64
	jobID  string
	device string
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func seed(t *testing.T, db *sqlx.DB, rows ...row) {
	t.Helper()

	insert := db.Rebind(`
		INSERT INTO images (id, image_url, prompt, created_at, job_id, device)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, r := range rows {
		_, err := db.ExecContext(context.Background(), insert,
			r.id,
			fmt.Sprintf("https://cdn.example.com/%d.png", r.id),
			fmt.Sprintf("prompt %d", r.id),
			base.Add(time.Duration(r.id)*time.Minute),
			nullable(r.jobID),
			nullable(r.device),
		)
		require.NoError(t, err)
	}
}

func newStorage(t *testing.T, rows ...row) *Storage {
	t.Helper()

	client := databasetest.NewSQLite(t)
	seed(t, client.GetDB(), rows...)
	return NewStorage(client)
}

func TestGetDesktopWallpaper(t *testing.T) {
	s := newStorage(t,
		row{id: 1},
		row{id: 2, device: domain.DeviceDesktop, jobID: "job-2"},
		row{id: 3, device: domain.DeviceMobile, jobID: "job-2"},
	)

	tests := []struct {
		name    string
		id      int64
		wantErr error
		wantJob string
	}{
		{name: "legacy row with NULL device", id: 1},
		{name: "desktop row", id: 2, wantJob: "job-2"},
		{name: "mobile rows are not primaries", id: 3, wantErr: domain.ErrWallpaperNotFound},
		{name: "missing id", id: 99, wantErr: domain.ErrWallpaperNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.GetDesktopWallpaper(context.Background(), tt.id)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.id, got.ID)
			assert.Equal(t, fmt.Sprintf("https://cdn.example.com/%d.png", tt.id), got.ImageURL)
			assert.Equal(t, fmt.Sprintf("prompt %d", tt.id), got.Prompt)
			assert.Equal(t, tt.wantJob, got.JobID)
			assert.False(t, got.CreatedAt.IsZero())
		})
	}
}

func TestListAlternatives(t *testing.T) {
	rows := []row{{id: 42, jobID: "job-7"}, {id: 43, jobID: "job-7", device: domain.DeviceMobile}}
	for id := int64(1); id <= 15; id++ {
		r := row{id: id}
		if id%2 == 0 {
			r.device = domain.DeviceDesktop
		}
		rows = append(rows, r)
	}
	rows = append(rows, row{id: 50, device: domain.DeviceMobile})

	s := newStorage(t, rows...)

	got, err := s.ListAlternatives(context.Background(), 42, domain.AlternativesLimit)
	require.NoError(t, err)

	ids := make([]int64, len(got))
	for i, w := range got {
		ids[i] = w.ID
	}
	assert.Equal(t, []int64{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4}, ids)
}

func TestListAlternatives_Empty(t *testing.T) {
	s := newStorage(t, row{id: 1})

	got, err := s.ListAlternatives(context.Background(), 1, domain.AlternativesLimit)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetMobileVariant(t *testing.T) {
	s := newStorage(t,
		row{id: 42, jobID: "job-7"},
		row{id: 43, jobID: "job-7", device: domain.DeviceMobile},
		row{id: 44, jobID: "job-8", device: domain.DeviceDesktop},
	)

	got, err := s.GetMobileVariant(context.Background(), "job-7")
	require.NoError(t, err)
	assert.Equal(t, int64(43), got.ID)
	assert.Equal(t, domain.DeviceMobile, got.Device)

	_, err = s.GetMobileVariant(context.Background(), "job-8")
	assert.ErrorIs(t, err, domain.ErrWallpaperNotFound)
}

func TestStorage_ClosedDatabase(t *testing.T) {
	client := databasetest.NewSQLite(t)
	s := NewStorage(client)
	require.NoError(t, client.Close())

	_, err := s.GetDesktopWallpaper(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrWallpaperNotFound)

	_, err = s.ListAlternatives(context.Background(), 1, domain.AlternativesLimit)
	assert.Error(t, err)

	_, err = s.GetMobileVariant(context.Background(), "job")
	assert.Error(t, err)
}

func TestSingle(t *testing.T) {
	_, err := single(nil)
	assert.ErrorIs(t, err, domain.ErrWallpaperNotFound)

	got, err := single([]model.Wallpaper{{ID: 5, JobID: nullable("job")}})
	require.NoError(t, err)
	assert.Equal(t, "job", got.JobID)

	_, err = single([]model.Wallpaper{{ID: 5}, {ID: 6}})
	assert.ErrorIs(t, err, domain.ErrAmbiguousResult)
}
