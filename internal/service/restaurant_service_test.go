package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restopanel/internal/apierror"
	"restopanel/internal/dto"
	"restopanel/internal/model"
	"restopanel/internal/repository"
)

func TestPutMenuGroupReplacesByTitle(t *testing.T) {
	svc := NewRestaurantService(newTestRepos(t))

	rest, err := svc.PutMenuGroup(context.Background(), repository.FixtureRestaurantID, dto.MenuGroupRequest{
		Title: "Desserts",
		Items: []model.MenuHighlightItem{{Name: "Tiramisu", Price: "9.00"}},
	})
	require.NoError(t, err)

	rest, err = svc.PutMenuGroup(context.Background(), repository.FixtureRestaurantID, dto.MenuGroupRequest{
		Title: "Desserts",
		Items: []model.MenuHighlightItem{{Name: "Panna cotta", Price: "8.50"}},
	})
	require.NoError(t, err)

	var desserts *model.MenuHighlightGroup
	for i := range rest.MenuHighlight {
		if rest.MenuHighlight[i].Title == "Desserts" {
			desserts = &rest.MenuHighlight[i]
		}
	}
	require.NotNil(t, desserts)
	require.Len(t, desserts.Items, 1)
	assert.Equal(t, "Panna cotta", desserts.Items[0].Name)
}

func TestStaleRestaurantWriteIsAConflict(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRestaurantService(repos)

	rest, err := svc.GetByID(context.Background(), repository.FixtureRestaurantID)
	require.NoError(t, err)
	stale := *rest

	_, err = svc.PutMenuGroup(context.Background(), rest.ID, dto.MenuGroupRequest{
		Title: "Specials",
		Items: []model.MenuHighlightItem{{Name: "Osso buco", Price: "28.00"}},
	})
	require.NoError(t, err)

	// a write based on the pre-edit read must not clobber the menu change
	err = repos.Mem().Restaurants.Update(context.Background(), &stale, stale.UpdatedAt)
	var conflict *apierror.ConflictError
	assert.ErrorAs(t, err, &conflict)
}
