package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeapp/scribe/apperror"
	"github.com/scribeapp/scribe/models"
	"github.com/scribeapp/scribe/services"
	"github.com/scribeapp/scribe/testutil"
)

func ptr[T any](v T) *T { return &v }

func TestGetMissingReturnsNil(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := services.New[models.Category]()

	got, err := svc.Get(db, 12345)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateAssignsIDAndRoundTrips(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := services.New[models.Category]()

	created, err := svc.Create(db, &models.Category{Name: "golang"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Get(db, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "golang", got.Name)
}

func TestListPagination(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := services.New[models.Tag]()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(db, &models.Tag{Name: fmt.Sprintf("tag-%d", i)})
		require.NoError(t, err)
	}

	page, err := svc.List(db, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	all, err := svc.List(db, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5, "non-positive limit falls back to the default")

	clamped, err := svc.List(db, 2, -7)
	require.NoError(t, err)
	assert.Len(t, clamped, 2, "negative offset is treated as zero")
}

func TestUpdateAppliesOnlyPresentFields(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := services.New[models.Post]()

	post, err := svc.Create(db, &models.Post{
		Title:            "original title",
		ShortDescription: "short",
		Content:          "body",
	})
	require.NoError(t, err)

	updated, err := svc.Update(db, post, services.UpdatePostInput{Title: ptr("new title")})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "short", updated.ShortDescription)
	assert.Equal(t, "body", updated.Content)

	got, err := svc.Get(db, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, "body", got.Content)
}

func TestUpdateWithFieldMap(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := services.New[models.Category]()

	cat, err := svc.Create(db, &models.Category{Name: "before"})
	require.NoError(t, err)

	updated, err := svc.Update(db, cat, services.FieldMap{"name": "after"})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Name)
}

func TestUpdateWithEmptyInputIsNoOp(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := services.New[models.Tag]()

	tag, err := svc.Create(db, &models.Tag{Name: "stable"})
	require.NoError(t, err)

	updated, err := svc.Update(db, tag, services.UpdateTagInput{})
	require.NoError(t, err)
	assert.Equal(t, "stable", updated.Name)
}

func TestRemoveByID(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := services.New[models.Category]()

	cat, err := svc.Create(db, &models.Category{Name: "doomed"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(db, cat.ID, nil))

	got, err := svc.Get(db, cat.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRemoveByEntitySkipsLookup(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := services.New[models.Tag]()

	tag, err := svc.Create(db, &models.Tag{Name: "resolved"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(db, 0, tag))

	got, err := svc.Get(db, tag.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRemoveRequiresTarget(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := services.New[models.Category]()

	err := svc.Remove(db, 0, nil)
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestRemoveMissingIDIsNotFound(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := services.New[models.Category]()

	err := svc.Remove(db, 9999, nil)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestBulkCreate(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := services.New[models.Tag]()

	tags := []*models.Tag{
		{Name: "bulk-a"},
		{Name: "bulk-b"},
		{Name: "bulk-c"},
	}
	created, err := svc.BulkCreate(db, tags)
	require.NoError(t, err)
	require.Len(t, created, 3)
	for _, tag := range created {
		assert.NotZero(t, tag.ID)
	}

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestBulkCreateEmptyBatch(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := services.New[models.Tag]()

	created, err := svc.BulkCreate(db, nil)
	require.NoError(t, err)
	assert.Empty(t, created)
}
