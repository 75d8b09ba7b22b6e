package tasks

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, r *MemoryRepository, owner string, titles ...string) []models.Task {
	t.Helper()
	out := make([]models.Task, 0, len(titles))
	for _, title := range titles {
		task, err := r.Create(context.Background(), &models.Task{UserID: owner, Title: title})
		require.NoError(t, err)
		out = append(out, *task)
	}
	return out
}

func TestMemoryFind_OwnershipAndOrder(t *testing.T) {
	r := NewMemoryRepository()
	seed(t, r, "alice", "a1", "a2")
	seed(t, r, "bob", "b1")
	seed(t, r, "alice", "a3")

	got, err := r.Find(context.Background(), models.TaskFilter{OwnerID: "alice"}, nil)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a1", "a2", "a3"}, []string{got[0].Title, got[1].Title, got[2].Title})

	none, err := r.Find(context.Background(), models.TaskFilter{OwnerID: "carol"}, nil)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryFind_Page(t *testing.T) {
	r := NewMemoryRepository()
	for i := 0; i < 12; i++ {
		seed(t, r, "alice", fmt.Sprintf("t%02d", i))
	}

	got, err := r.Find(context.Background(), models.TaskFilter{OwnerID: "alice"}, &models.Page{Offset: 10, Limit: 5})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "t10", got[0].Title)
	assert.Equal(t, "t11", got[1].Title)
}

func TestMemoryFind_QueryIsLiteralAndCaseInsensitive(t *testing.T) {
	r := NewMemoryRepository()
	seed(t, r, "alice", "Buy MILK", "a.b", "axb")

	got, err := r.Find(context.Background(), models.TaskFilter{OwnerID: "alice", Query: "milk"}, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = r.Find(context.Background(), models.TaskFilter{OwnerID: "alice", Query: "a.b"}, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a.b", got[0].Title)
}

func TestMemoryCount_Completed(t *testing.T) {
	r := NewMemoryRepository()
	tasks := seed(t, r, "alice", "x", "y", "z")
	tasks[1].Completed = true
	_, err := r.Save(context.Background(), &tasks[1])
	require.NoError(t, err)

	done := true
	n, err := r.Count(context.Background(), models.TaskFilter{OwnerID: "alice", Completed: &done})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemorySaveDelete_Ownership(t *testing.T) {
	r := NewMemoryRepository()
	task := seed(t, r, "alice", "x")[0]

	foreign := task
	foreign.UserID = "bob"
	_, err := r.Save(context.Background(), &foreign)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.FindOne(context.Background(), "bob", task.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.ErrorIs(t, r.Delete(context.Background(), "bob", task.ID), common.ErrorNotFound)
	require.NoError(t, r.Delete(context.Background(), "alice", task.ID))
	assert.ErrorIs(t, r.Delete(context.Background(), "alice", task.ID), common.ErrorNotFound)
}

func TestMemorySave_BumpsUpdatedAt(t *testing.T) {
	r := NewMemoryRepository()
	task := seed(t, r, "alice", "x")[0]

	task.Title = "y"
	saved, err := r.Save(context.Background(), &task)
	require.NoError(t, err)
	assert.Equal(t, "y", saved.Title)
	assert.False(t, saved.UpdatedAt.Before(task.CreatedAt))
	assert.Equal(t, task.CreatedAt, saved.CreatedAt)
}
