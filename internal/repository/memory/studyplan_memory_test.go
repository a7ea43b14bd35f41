package memory

import (
	"context"
	"testing"
	"time"

	"auralearn/internal/model"
	"auralearn/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanRecord(title string) *model.StudyPlan {
	now := time.Now().UTC()
	return &model.StudyPlan{
		ID:          uuid.New().String(),
		Title:       title,
		Description: "Basics",
		Topics:      []string{"linear eq", "quadratics"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestStudyPlanMemory_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewStudyPlanMemory()

	created, err := repo.Create(ctx, newPlanRecord("Algebra"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestStudyPlanMemory_Get_NotFound(t *testing.T) {
	repo := NewStudyPlanMemory()

	_, err := repo.FindByID(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStudyPlanMemory_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewStudyPlanMemory()

	created, err := repo.Create(ctx, newPlanRecord("Algebra"))
	require.NoError(t, err)

	replacement := &model.StudyPlan{
		ID:          "id-from-payload-must-be-ignored",
		Title:       "Algebra II",
		Description: "Basics",
		Topics:      []string{"linear eq"},
		CreatedAt:   time.Now().UTC().Add(time.Hour), // must be ignored too
		UpdatedAt:   time.Now().UTC().Add(time.Minute),
	}

	updated, err := repo.Update(ctx, created.ID, replacement)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Algebra II", updated.Title)
	assert.Equal(t, []string{"linear eq"}, updated.Topics)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, replacement.UpdatedAt, updated.UpdatedAt)

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestStudyPlanMemory_Update_NotFound(t *testing.T) {
	repo := NewStudyPlanMemory()

	_, err := repo.Update(context.Background(), "missing", newPlanRecord("x"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStudyPlanMemory_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewStudyPlanMemory()

	created, err := repo.Create(ctx, newPlanRecord("Algebra"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	plans, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, plans)

	// A deleted id stays terminal.
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), repository.ErrNotFound)
	_, err = repo.Update(ctx, created.ID, newPlanRecord("x"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStudyPlanMemory_ListOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewStudyPlanMemory()

	titles := []string{"Algebra", "Geometry", "Calculus"}
	for _, title := range titles {
		_, err := repo.Create(ctx, newPlanRecord(title))
		require.NoError(t, err)
	}

	plans, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 3)
	for i, p := range plans {
		assert.Equal(t, titles[i], p.Title)
	}
}

func TestStudyPlanMemory_TopicsNotAliased(t *testing.T) {
	ctx := context.Background()
	repo := NewStudyPlanMemory()

	rec := newPlanRecord("Algebra")
	created, err := repo.Create(ctx, rec)
	require.NoError(t, err)

	// Mutating the caller's slice must not leak into the store.
	rec.Topics[0] = "mutated"
	created.Topics[1] = "mutated"

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"linear eq", "quadratics"}, got.Topics)
}
