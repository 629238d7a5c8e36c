package creditcard

import (
	"context"
	"testing"

	domainErrors "cardvault/internal/errors"
	"cardvault/internal/models"
	"cardvault/internal/repositories"
	"cardvault/internal/utils/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardLifecycleScenario(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryCreditCardRepository()
	s := newTestService(repo, nil)

	input := models.CardInput{Customer: "C1", Number: 5000000000000004, Brand: models.BrandMastercard}

	card, err := s.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, card.Status)

	_, err = s.Create(ctx, input)
	assert.ErrorIs(t, err, domainErrors.ErrAlreadyExists)

	deactivated, err := s.Deactivate(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, deactivated.Status)

	_, err = s.Update(ctx, card.ID, models.CardInput{Customer: "C1", Number: 5000000000000005, Brand: models.BrandVisa})
	assert.ErrorIs(t, err, domainErrors.ErrAlreadyInactive)

	_, err = s.Create(ctx, models.CardInput{Customer: "C2", Number: 5000000000000004, Brand: models.BrandVisa})
	assert.ErrorIs(t, err, domainErrors.ErrAlreadyExists)

	assert.Equal(t, 2, repo.Saves())
}

func TestTerminalStateLeavesRecordUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryCreditCardRepository()
	s := newTestService(repo, nil)

	card, err := s.Create(ctx, models.CardInput{Customer: "C1", Number: 5000000000000011, Brand: models.BrandVisa})
	require.NoError(t, err)
	_, err = s.Deactivate(ctx, card.ID)
	require.NoError(t, err)

	before, err := repo.FindByID(ctx, card.ID)
	require.NoError(t, err)
	saves := repo.Saves()

	_, err = s.Deactivate(ctx, card.ID)
	assert.ErrorIs(t, err, domainErrors.ErrAlreadyInactive)
	_, err = s.Update(ctx, card.ID, models.CardInput{Customer: "C9", Number: 5000000000000011, Brand: models.BrandAmericanExpress})
	assert.ErrorIs(t, err, domainErrors.ErrAlreadyInactive)

	after, err := repo.FindByID(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, saves, repo.Saves())
}

func TestUpdateToNumberOfInactiveCardFails(t *testing.T) {
	ctx := context.Background()
	s := newTestService(repositories.NewMemoryCreditCardRepository(), nil)

	retired, err := s.Create(ctx, models.CardInput{Customer: "C1", Number: 5000000000000021, Brand: models.BrandVisa})
	require.NoError(t, err)
	_, err = s.Deactivate(ctx, retired.ID)
	require.NoError(t, err)

	live, err := s.Create(ctx, models.CardInput{Customer: "C1", Number: 5000000000000022, Brand: models.BrandVisa})
	require.NoError(t, err)

	_, err = s.Update(ctx, live.ID, models.CardInput{Customer: "C1", Number: 5000000000000021, Brand: models.BrandVisa})
	assert.ErrorIs(t, err, domainErrors.ErrAlreadyExists)
}

func TestListByCriteriaFiltersStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestService(repositories.NewMemoryCreditCardRepository(), nil)

	for i, number := range []int64{5000000000000031, 5000000000000032, 5000000000000033} {
		card, err := s.Create(ctx, models.CardInput{Customer: "cust1", Number: number, Brand: models.BrandVisa})
		require.NoError(t, err)
		if i == 0 {
			_, err = s.Deactivate(ctx, card.ID)
			require.NoError(t, err)
		}
	}
	_, err := s.Create(ctx, models.CardInput{Customer: "cust2", Number: 5000000000000034, Brand: models.BrandVisa})
	require.NoError(t, err)

	all, err := s.GetCardsByCriteria(ctx, models.CardCriteria{Customer: "cust1"}, pagination.NewPageRequest(0, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.TotalElements)

	active := models.StatusActive
	onlyActive, err := s.GetCardsByCriteria(ctx, models.CardCriteria{Customer: "cust1", Status: &active}, pagination.NewPageRequest(0, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(2), onlyActive.TotalElements)
	for _, card := range onlyActive.Content {
		assert.Equal(t, models.StatusActive, card.Status)
		assert.Equal(t, "cust1", card.Customer)
	}
}
