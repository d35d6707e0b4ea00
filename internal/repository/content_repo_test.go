package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"portfolio_api/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewProjectRepository(mock)

	p := &model.Project{Title: "Dashboard UI", Category: "UI Design", Image: "https://img/1"}
	mock.ExpectQuery("INSERT INTO projects").
		WithArgs(p.Title, p.Category, p.Image, "", "").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("p-1"))

	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, "p-1", p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_FindAll(t *testing.T) {
	mock := newMock(t)
	repo := NewProjectRepository(mock)

	mock.ExpectQuery("SELECT id, title, category, image, link, description FROM projects").
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "category", "image", "link", "description"}).
			AddRow("p-1", "Dashboard UI", "UI Design", "https://img/1", "", "").
			AddRow("p-2", "Brand Identity", "Branding", "https://img/2", "https://site", "Kit"))

	projects, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Brand Identity", projects[1].Title)
	assert.Equal(t, "https://site", projects[1].Link)
}

func TestProjectRepository_FindAll_EmptyIsNotNil(t *testing.T) {
	mock := newMock(t)
	repo := NewProjectRepository(mock)

	mock.ExpectQuery("FROM projects").
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "category", "image", "link", "description"}))

	projects, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestProjectRepository_Delete_MissingIsNotAnError(t *testing.T) {
	mock := newMock(t)
	repo := NewProjectRepository(mock)

	mock.ExpectExec("DELETE FROM projects WHERE id").
		WithArgs("p-9").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repo.Delete(context.Background(), "p-9"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Count(t *testing.T) {
	mock := newMock(t)
	repo := NewProjectRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM projects")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestExperienceRepository_CreateAndDelete(t *testing.T) {
	mock := newMock(t)
	repo := NewExperienceRepository(mock)

	e := &model.ExperienceEntry{Type: model.ExperienceTypeWork, Title: "Lead Web Designer", Role: "Designer"}
	mock.ExpectQuery("INSERT INTO experiences").
		WithArgs(e.Type, e.Title, e.Role, "", "").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("e-1"))
	mock.ExpectExec("DELETE FROM experiences WHERE id").
		WithArgs("e-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Create(context.Background(), e))
	assert.Equal(t, "e-1", e.ID)
	require.NoError(t, repo.Delete(context.Background(), e.ID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExperienceRepository_FindAll_Error(t *testing.T) {
	mock := newMock(t)
	repo := NewExperienceRepository(mock)

	mock.ExpectQuery("FROM experiences").WillReturnError(errors.New("boom"))

	_, err := repo.FindAll(context.Background())
	assert.ErrorContains(t, err, "failed to query experience entries")
}

func TestMessageRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewMessageRepository(mock)
	now := time.Now()

	m := &model.Message{FullName: "Jane Doe", Email: "jane@example.com", Message: "Hello there, friend"}
	mock.ExpectQuery("INSERT INTO messages").
		WithArgs(m.FullName, m.Email, "", m.Message).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("m-1", now))

	require.NoError(t, repo.Create(context.Background(), m))
	assert.Equal(t, "m-1", m.ID)
	assert.Equal(t, now, m.CreatedAt)
}

func TestMessageRepository_FindAll_NewestFirst(t *testing.T) {
	mock := newMock(t)
	repo := NewMessageRepository(mock)
	newer := time.Now()
	older := newer.Add(-time.Hour)

	mock.ExpectQuery("FROM messages ORDER BY created_at DESC").
		WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "email", "subject", "message", "created_at"}).
			AddRow("m-2", "B", "b@example.com", "", "second message", newer).
			AddRow("m-1", "A", "a@example.com", "Hi", "first message", older))

	messages, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "m-2", messages[0].ID)
	assert.True(t, messages[0].CreatedAt.After(messages[1].CreatedAt))
}
