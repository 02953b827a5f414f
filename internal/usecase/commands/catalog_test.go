//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"golfclub-backend/internal/domain/pricing"
	"golfclub-backend/internal/infra"
	"golfclub-backend/internal/pkg/errs"
	"golfclub-backend/internal/pkg/ptr"
	"golfclub-backend/internal/usecase/commands"
	"golfclub-backend/tests/common/builder"
	commandsmock "golfclub-backend/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	priceItemRepo *commandsmock.MockPriceItemRepository
	promotionRepo *commandsmock.MockPromotionRepository
	catalog       commands.CatalogCommands
}

func (s *CatalogCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.priceItemRepo = commandsmock.NewMockPriceItemRepository(s.mockCtrl)
	s.promotionRepo = commandsmock.NewMockPromotionRepository(s.mockCtrl)
	s.catalog = commands.NewCatalogCommands(s.priceItemRepo, s.promotionRepo)
}

func (s *CatalogCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogCommandsSuite(t *testing.T) {
	suite.Run(t, new(CatalogCommandsTestSuite))
}

func validCreateItemParams() commands.CreatePriceItemParams {
	return commands.CreatePriceItemParams{
		Code:      "GF-STD",
		Name:      "Green Fee (18 holes)",
		UnitPrice: "1500",
		Category:  "GREEN_FEE",
		IsActive:  true,
	}
}

func (s *CatalogCommandsTestSuite) TestCreatePriceItem() {
	s.Run("success: creates item and defaults currency to THB", func() {
		params := validCreateItemParams()

		s.priceItemRepo.EXPECT().
			ActiveExistsInCategory(gomock.Any(), pricing.CategoryGreenFee, int64(0)).
			Return(false, nil)
		s.priceItemRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(7), nil)

		view, err := s.catalog.CreatePriceItem(context.Background(), params)
		s.Require().NoError(err)
		s.Equal(int64(7), view.ID)
		s.Equal("1500.00", view.UnitPrice)
		s.Equal("THB", view.Currency)
	})

	s.Run("error: rejects a second active item in the category", func() {
		params := validCreateItemParams()

		s.priceItemRepo.EXPECT().
			ActiveExistsInCategory(gomock.Any(), pricing.CategoryGreenFee, int64(0)).
			Return(true, nil)

		_, err := s.catalog.CreatePriceItem(context.Background(), params)
		s.ErrorIs(err, commands.ErrDuplicateActiveItem)
	})

	s.Run("error: invalid unit price is a domain validation failure", func() {
		params := validCreateItemParams()
		params.UnitPrice = "not-a-number"

		_, err := s.catalog.CreatePriceItem(context.Background(), params)
		s.ErrorIs(err, commands.ErrDomainValidation)
	})

	s.Run("error: duplicate code surfaces as conflict", func() {
		params := validCreateItemParams()

		s.priceItemRepo.EXPECT().
			ActiveExistsInCategory(gomock.Any(), pricing.CategoryGreenFee, int64(0)).
			Return(false, nil)
		s.priceItemRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("duplicate", errs.New("unique violation"), infra.KindDuplicateKey))

		_, err := s.catalog.CreatePriceItem(context.Background(), params)
		s.ErrorIs(err, commands.ErrDuplicateCode)
	})

	s.Run("inactive item skips the category check", func() {
		params := validCreateItemParams()
		params.IsActive = false

		s.priceItemRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(8), nil)

		view, err := s.catalog.CreatePriceItem(context.Background(), params)
		s.Require().NoError(err)
		s.False(view.IsActive)
	})
}

func (s *CatalogCommandsTestSuite) TestUpdatePriceItem() {
	existing := builder.NewPriceItemBuilder().WithID(5).WithUnitPrice("1500").Build()

	s.Run("success: patches only the supplied fields", func() {
		item := existing
		s.priceItemRepo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(&item, nil)
		s.priceItemRepo.EXPECT().
			ActiveExistsInCategory(gomock.Any(), pricing.CategoryGreenFee, int64(5)).
			Return(false, nil)
		s.priceItemRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		view, err := s.catalog.UpdatePriceItem(context.Background(), 5, commands.UpdatePriceItemParams{
			UnitPrice: ptr.To("1800"),
		})
		s.Require().NoError(err)
		s.Equal("1800.00", view.UnitPrice)
		s.Equal(existing.Name, view.Name)
	})

	s.Run("error: unknown item", func() {
		s.priceItemRepo.EXPECT().FindByID(gomock.Any(), int64(99)).
			Return(nil, infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound))

		_, err := s.catalog.UpdatePriceItem(context.Background(), 99, commands.UpdatePriceItemParams{})
		s.ErrorIs(err, commands.ErrPriceItemNotFound)
	})
}

func validCreatePromotionParams() commands.CreatePromotionParams {
	return commands.CreatePromotionParams{
		Code:      "WEEKEND20",
		Name:      "Weekend Early Bird",
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
		Priority:  10,
		Stacking:  "EXCLUSIVE",
		Bands: []commands.BandParams{
			{
				DayGroup:         "WEEKEND",
				TimeFrom:         "06:00",
				TimeTo:           "09:59",
				ActionType:       "DISCOUNT_PERCENT",
				ActionValue:      "20",
				IncludesGreenFee: true,
				IncludesCaddy:    true,
				IncludesCart:     true,
			},
		},
	}
}

func (s *CatalogCommandsTestSuite) TestCreatePromotion() {
	s.Run("success: persists promotion with bands", func() {
		s.promotionRepo.EXPECT().
			CreateWithBands(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(42), nil)

		id, err := s.catalog.CreatePromotion(context.Background(), validCreatePromotionParams())
		s.Require().NoError(err)
		s.Equal(int64(42), id)
	})

	s.Run("error: promotion without bands is rejected", func() {
		params := validCreatePromotionParams()
		params.Bands = nil

		_, err := s.catalog.CreatePromotion(context.Background(), params)
		s.ErrorIs(err, commands.ErrPromotionNeedsBands)
	})

	s.Run("error: inverted date range fails validation", func() {
		params := validCreatePromotionParams()
		params.StartDate, params.EndDate = params.EndDate, params.StartDate

		_, err := s.catalog.CreatePromotion(context.Background(), params)
		s.ErrorIs(err, commands.ErrDomainValidation)
	})

	s.Run("error: malformed band fails validation", func() {
		params := validCreatePromotionParams()
		params.Bands[0].TimeFrom = "25:00"

		_, err := s.catalog.CreatePromotion(context.Background(), params)
		s.ErrorIs(err, commands.ErrDomainValidation)
	})
}

func (s *CatalogCommandsTestSuite) TestDeletePromotion() {
	s.Run("success", func() {
		s.promotionRepo.EXPECT().Delete(gomock.Any(), int64(42)).Return(nil)
		s.NoError(s.catalog.DeletePromotion(context.Background(), 42))
	})

	s.Run("error: unknown promotion", func() {
		s.promotionRepo.EXPECT().Delete(gomock.Any(), int64(99)).
			Return(infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound))

		err := s.catalog.DeletePromotion(context.Background(), 99)
		s.ErrorIs(err, commands.ErrPromotionNotFound)
	})
}
