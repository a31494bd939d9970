package property

import (
	"testing"

	"github.com/aau-serg/monopoly-core/internal/models"
	"github.com/aau-serg/monopoly-core/internal/property/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testPropertyID    = 1
	testPurchasePrice = 100
	testMortgageValue = 50
	testPlayerID      = "player123"
)

type ServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockCatalog *mocks.MockCatalog
	service     *Service

	testPlayer   *models.Player
	testProperty *models.Property
}

func (s *ServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = mocks.NewMockCatalog(s.mockCtrl)

	service, err := NewService(&Config{Catalog: s.mockCatalog})
	s.Require().NoError(err)
	s.service = service

	s.testPlayer = models.NewPlayer(testPlayerID, "Test Player")

	s.testProperty = &models.Property{
		ID:            testPropertyID,
		Kind:          models.KindHouseable,
		Name:          "Test Street",
		Position:      1,
		PurchasePrice: testPurchasePrice,
		MortgageValue: testMortgageValue,
		HouseRents:    []int{10, 20, 30, 40, 50, 60},
	}
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) newTrainStation(ownerID string) *models.Property {
	return &models.Property{
		ID:            testPropertyID,
		Kind:          models.KindTrainStation,
		OwnerID:       ownerID,
		Name:          "Test Station",
		Position:      5,
		PurchasePrice: 200,
		MortgageValue: testMortgageValue,
		StationRents:  []int{25, 50, 75, 100},
	}
}

func (s *ServiceTestSuite) newUtility(ownerID string) *models.Property {
	return &models.Property{
		ID:                 testPropertyID,
		Kind:               models.KindUtility,
		OwnerID:            ownerID,
		Name:               "Test Utility",
		Position:           12,
		PurchasePrice:      150,
		MortgageValue:      testMortgageValue,
		UtilityMultipliers: []int{4, 10},
	}
}

// --- CanBuyProperty ---

func (s *ServiceTestSuite) TestCanBuyPropertySufficientFundsUnowned() {
	s.testPlayer.Money = testPurchasePrice + 50
	s.testPlayer.Position = 1
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(s.testProperty).AnyTimes()

	s.True(s.service.CanBuyProperty(s.testPlayer, testPropertyID))
}

func (s *ServiceTestSuite) TestCanBuyPropertyExactFunds() {
	s.testPlayer.Money = testPurchasePrice
	s.testPlayer.Position = 1
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(s.testProperty).AnyTimes()

	s.True(s.service.CanBuyProperty(s.testPlayer, testPropertyID))
}

func (s *ServiceTestSuite) TestCanBuyPropertyInsufficientFunds() {
	s.testPlayer.Money = testPurchasePrice - 1
	s.testPlayer.Position = 1
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(s.testProperty).AnyTimes()

	s.False(s.service.CanBuyProperty(s.testPlayer, testPropertyID))
}

func (s *ServiceTestSuite) TestCanBuyPropertyAlreadyOwned() {
	s.testPlayer.Money = testPurchasePrice + 50
	s.testPlayer.Position = 1
	s.testProperty.OwnerID = "anotherPlayer"
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(s.testProperty).AnyTimes()

	s.False(s.service.CanBuyProperty(s.testPlayer, testPropertyID))
}

func (s *ServiceTestSuite) TestCanBuyPropertyNotFound() {
	s.testPlayer.Money = testPurchasePrice + 50
	s.testPlayer.Position = 1

	// All three category lookups run before the search gives up.
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(nil)
	s.mockCatalog.EXPECT().TrainStations().Return(nil)
	s.mockCatalog.EXPECT().Utilities().Return(nil)

	s.False(s.service.CanBuyProperty(s.testPlayer, testPropertyID))
}

func (s *ServiceTestSuite) TestCanBuyPropertyWrongPosition() {
	s.testPlayer.Money = testPurchasePrice + 50
	s.testPlayer.Position = 2
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(s.testProperty).AnyTimes()

	s.False(s.service.CanBuyProperty(s.testPlayer, testPropertyID))
}

// --- BuyProperty ---

func (s *ServiceTestSuite) TestBuyPropertySuccess() {
	s.testPlayer.Money = testPurchasePrice + 50
	s.testPlayer.Position = 1
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(s.testProperty).AnyTimes()

	s.True(s.service.BuyProperty(s.testPlayer, testPropertyID))
	s.Equal(50, s.testPlayer.Money)
	s.Equal(testPlayerID, s.testProperty.OwnerID)
}

func (s *ServiceTestSuite) TestBuyPropertyInsufficientFunds() {
	s.testPlayer.Money = testPurchasePrice - 1
	s.testPlayer.Position = 1
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(s.testProperty).AnyTimes()

	s.False(s.service.BuyProperty(s.testPlayer, testPropertyID))
	s.Equal(testPurchasePrice-1, s.testPlayer.Money)
	s.False(s.testProperty.Owned())
}

func (s *ServiceTestSuite) TestBuyPropertyAlreadyOwned() {
	s.testPlayer.Money = testPurchasePrice + 50
	s.testPlayer.Position = 1
	s.testProperty.OwnerID = "anotherPlayer"
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(s.testProperty).AnyTimes()

	s.False(s.service.BuyProperty(s.testPlayer, testPropertyID))
	s.Equal(testPurchasePrice+50, s.testPlayer.Money)
	s.Equal("anotherPlayer", s.testProperty.OwnerID)
}

func (s *ServiceTestSuite) TestBuyPropertyNotFound() {
	s.testPlayer.Money = testPurchasePrice + 50
	s.testPlayer.Position = 1
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(nil).AnyTimes()
	s.mockCatalog.EXPECT().TrainStations().Return(nil).AnyTimes()
	s.mockCatalog.EXPECT().Utilities().Return(nil).AnyTimes()

	s.False(s.service.BuyProperty(s.testPlayer, testPropertyID))
	s.Equal(testPurchasePrice+50, s.testPlayer.Money)
}

func (s *ServiceTestSuite) TestBuyPropertyWrongPosition() {
	s.testPlayer.Money = testPurchasePrice + 50
	s.testPlayer.Position = 2
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(s.testProperty).AnyTimes()

	s.False(s.service.BuyProperty(s.testPlayer, testPropertyID))
	s.Equal(testPurchasePrice+50, s.testPlayer.Money)
	s.False(s.testProperty.Owned())
}

// --- FindPropertyByID ---

func (s *ServiceTestSuite) TestFindPropertyByIDFindsHouseable() {
	// Stations and utilities must not be consulted once the houseable
	// lookup hits; the strict mock enforces that.
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(s.testProperty)

	found := s.service.FindPropertyByID(testPropertyID)

	s.Require().NotNil(found)
	s.Equal(testPropertyID, found.ID)
}

func (s *ServiceTestSuite) TestFindPropertyByIDFindsTrainStation() {
	station := s.newTrainStation("")
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(nil)
	s.mockCatalog.EXPECT().TrainStations().Return([]*models.Property{station})

	found := s.service.FindPropertyByID(testPropertyID)

	s.Require().NotNil(found)
	s.Equal("Test Station", found.Name)
}

func (s *ServiceTestSuite) TestFindPropertyByIDFindsUtility() {
	utility := s.newUtility("")
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(nil)
	s.mockCatalog.EXPECT().TrainStations().Return(nil)
	s.mockCatalog.EXPECT().Utilities().Return([]*models.Property{utility})

	found := s.service.FindPropertyByID(testPropertyID)

	s.Require().NotNil(found)
	s.Equal("Test Utility", found.Name)
}

func (s *ServiceTestSuite) TestFindPropertyByIDNotFound() {
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(nil)
	s.mockCatalog.EXPECT().TrainStations().Return(nil)
	s.mockCatalog.EXPECT().Utilities().Return(nil)

	s.Nil(s.service.FindPropertyByID(testPropertyID))
}

// --- FindPropertyByPosition ---

func (s *ServiceTestSuite) TestFindPropertyByPositionFindsHouseable() {
	s.mockCatalog.EXPECT().HouseableProperties().Return([]*models.Property{s.testProperty})

	found := s.service.FindPropertyByPosition(1)

	s.Require().NotNil(found)
	s.Equal(testPropertyID, found.ID)
}

func (s *ServiceTestSuite) TestFindPropertyByPositionNotFound() {
	s.mockCatalog.EXPECT().HouseableProperties().Return([]*models.Property{s.testProperty})
	s.mockCatalog.EXPECT().TrainStations().Return(nil)
	s.mockCatalog.EXPECT().Utilities().Return(nil)

	s.Nil(s.service.FindPropertyByPosition(30))
}

// --- SellProperty ---

func (s *ServiceTestSuite) TestSellPropertySuccess() {
	s.testProperty.OwnerID = testPlayerID
	s.testPlayer.Money = 100
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(s.testProperty)

	s.True(s.service.SellProperty(s.testPlayer, testPropertyID))
	s.Equal(100+testPurchasePrice/2, s.testPlayer.Money)
	s.False(s.testProperty.Owned())
}

func (s *ServiceTestSuite) TestSellPropertyNotFound() {
	s.testPlayer.Money = 100
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(nil)
	s.mockCatalog.EXPECT().TrainStations().Return(nil)
	s.mockCatalog.EXPECT().Utilities().Return(nil)

	s.False(s.service.SellProperty(s.testPlayer, testPropertyID))
	s.Equal(100, s.testPlayer.Money)
}

func (s *ServiceTestSuite) TestSellPropertyNotOwnedByPlayer() {
	s.testProperty.OwnerID = "differentPlayer"
	s.testPlayer.Money = 100
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(s.testProperty)

	s.False(s.service.SellProperty(s.testPlayer, testPropertyID))
	s.Equal(100, s.testPlayer.Money)
	s.Equal("differentPlayer", s.testProperty.OwnerID)
}

func (s *ServiceTestSuite) TestSellPropertyTrainStation() {
	station := s.newTrainStation(testPlayerID)
	s.testPlayer.Money = 100
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(nil)
	s.mockCatalog.EXPECT().TrainStations().Return([]*models.Property{station})

	s.True(s.service.SellProperty(s.testPlayer, testPropertyID))
	s.Equal(100+200/2, s.testPlayer.Money)
	s.False(station.Owned())
}

func (s *ServiceTestSuite) TestSellPropertyUtility() {
	utility := s.newUtility(testPlayerID)
	s.testPlayer.Money = 100
	s.mockCatalog.EXPECT().HouseablePropertyByID(testPropertyID).Return(nil)
	s.mockCatalog.EXPECT().TrainStations().Return(nil)
	s.mockCatalog.EXPECT().Utilities().Return([]*models.Property{utility})

	s.True(s.service.SellProperty(s.testPlayer, testPropertyID))
	s.Equal(100+150/2, s.testPlayer.Money)
	s.False(utility.Owned())
}

// --- RentFor ---

func (s *ServiceTestSuite) TestRentForHouseableUsesBaseTier() {
	s.testProperty.OwnerID = "owner1"
	s.mockCatalog.EXPECT().HouseableProperties().Return([]*models.Property{s.testProperty})

	s.Equal(10, s.service.RentFor(s.testProperty, 7))
}

func (s *ServiceTestSuite) TestRentForStationScalesWithHoldings() {
	first := s.newTrainStation("owner1")
	second := s.newTrainStation("owner1")
	second.ID = 2
	third := s.newTrainStation("someoneElse")
	third.ID = 3
	s.mockCatalog.EXPECT().TrainStations().
		Return([]*models.Property{first, second, third})

	// owner1 holds two stations, so the second tier applies.
	s.Equal(50, s.service.RentFor(first, 7))
}

func (s *ServiceTestSuite) TestRentForUtilityMultipliesRoll() {
	utility := s.newUtility("owner1")
	s.mockCatalog.EXPECT().Utilities().Return([]*models.Property{utility})

	s.Equal(4*9, s.service.RentFor(utility, 9))
}

func (s *ServiceTestSuite) TestRentForUnownedIsZero() {
	s.Equal(0, s.service.RentFor(s.testProperty, 7))
}

func (s *ServiceTestSuite) TestRentForMortgagedIsZero() {
	s.testProperty.OwnerID = "owner1"
	s.testProperty.Mortgaged = true
	s.mockCatalog.EXPECT().HouseableProperties().Return([]*models.Property{s.testProperty})

	s.Equal(0, s.service.RentFor(s.testProperty, 7))
}
