package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantstore-admin/internal/client"
	"plantstore-admin/internal/model"
	"plantstore-admin/internal/service"
	"plantstore-admin/internal/toast"
)

func newAttributeFixture(t *testing.T, kind client.AttributeKind, items []model.Attribute) (*service.AttributeList, *fakeStore, *toast.Notifier) {
	t.Helper()
	store := &fakeStore{attributes: map[client.AttributeKind][]model.Attribute{kind: items}}
	sess := &fakeSession{token: "t0k3n", userID: "u1"}
	toasts := toast.NewNotifier()
	return service.NewAttributeList(store, sess, toasts, kind), store, toasts
}

func TestAttributeListAdd(t *testing.T) {
	t.Run("creates and reloads", func(t *testing.T) {
		list, store, toasts := newAttributeFixture(t, client.KindCategory, nil)
		require.NoError(t, list.Load(context.Background()))

		errs, err := list.Add(context.Background(), "  Indoor ")
		require.NoError(t, err)
		assert.True(t, errs.Valid())

		items := list.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "Indoor", items[0].Name)
		assert.Len(t, store.attributes[client.KindCategory], 1)

		require.NotEmpty(t, toasts.Active())
		assert.Equal(t, "Category added successfully", toasts.Active()[0].Message)
	})

	t.Run("blank name is rejected locally", func(t *testing.T) {
		list, store, toasts := newAttributeFixture(t, client.KindColor, nil)

		errs, err := list.Add(context.Background(), "   ")
		require.NoError(t, err)
		assert.Contains(t, errs, "name")
		assert.Empty(t, store.attributes[client.KindColor])

		require.NotEmpty(t, toasts.Active())
		assert.Equal(t, toast.Error, toasts.Active()[0].Severity)
	})
}

func TestAttributeListDelete(t *testing.T) {
	list, _, toasts := newAttributeFixture(t, client.KindPlantType, []model.Attribute{
		{ID: "pt1", Name: "Succulent"},
		{ID: "pt2", Name: "Climber"},
	})
	require.NoError(t, list.Load(context.Background()))

	require.NoError(t, list.Delete(context.Background(), "pt1"))

	items := list.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "pt2", items[0].ID)
	require.NotEmpty(t, toasts.Active())
	assert.Equal(t, "Plant type deleted successfully", toasts.Active()[0].Message)
}
