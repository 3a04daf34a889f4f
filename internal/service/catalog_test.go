package service

import (
	"context"
	"testing"

	"github.com/giftly/giftcart/internal/domain"
	svcmocks "github.com/giftly/giftcart/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Create_Success(t *testing.T) {
	repo := svcmocks.NewMockCatalogRepo(t)
	svc := NewCatalogService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	exp, err := svc.Create(context.Background(), domain.CreateExperienceInput{
		Title: "Wine Tasting",
		Price: 10000,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, exp.ID)
	assert.Equal(t, "Wine Tasting", exp.Title)
	assert.Equal(t, int64(10000), exp.Price)
}

func TestCatalogService_Create_Validation(t *testing.T) {
	repo := svcmocks.NewMockCatalogRepo(t)
	svc := NewCatalogService(repo)

	tests := []struct {
		name  string
		input domain.CreateExperienceInput
	}{
		{"missing title", domain.CreateExperienceInput{Price: 100}},
		{"zero price", domain.CreateExperienceInput{Title: "X"}},
		{"negative price", domain.CreateExperienceInput{Title: "X", Price: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCatalogService_GetByID_NotFound(t *testing.T) {
	repo := svcmocks.NewMockCatalogRepo(t)
	svc := NewCatalogService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").
		Return(nil, domain.ErrExperienceNotFound).Once()

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrExperienceNotFound)
}

func TestCatalogService_List(t *testing.T) {
	repo := svcmocks.NewMockCatalogRepo(t)
	svc := NewCatalogService(repo)

	expected := []*domain.Experience{{ID: "e1", Title: "Wine Tasting", Price: 10000}}
	repo.EXPECT().List(mock.Anything).Return(expected, nil).Once()

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}
