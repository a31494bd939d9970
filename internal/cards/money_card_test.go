package cards

import (
	"testing"

	"github.com/aau-serg/monopoly-core/internal/cards/mocks"
	"github.com/aau-serg/monopoly-core/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MoneyCardTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockGame *mocks.MockGame
}

func (s *MoneyCardTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGame = mocks.NewMockGame(s.mockCtrl)

	s.mockGame.EXPECT().Players().Return([]*models.Player{
		{ID: "p1"},
		{ID: "p2"},
		{ID: "p3"},
	}).AnyTimes()
}

func TestMoneyCardTestSuite(t *testing.T) {
	suite.Run(t, new(MoneyCardTestSuite))
}

func (s *MoneyCardTestSuite) TestOthersPayActorTransfersFromAllOthers() {
	card := &MoneyCard{Amount: 10, Effect: EffectOthersPayActor}

	// Each other player pays once and the actor is credited once per
	// other player.
	s.mockGame.EXPECT().UpdatePlayerMoney("p2", -10)
	s.mockGame.EXPECT().UpdatePlayerMoney("p3", -10)
	s.mockGame.EXPECT().UpdatePlayerMoney("p1", 10).Times(2)

	card.Apply(s.mockGame, "p1")
}

func (s *MoneyCardTestSuite) TestActorPaysOthersTransfersToAllOthers() {
	card := &MoneyCard{Amount: 5, Effect: EffectActorPaysOthers}

	s.mockGame.EXPECT().UpdatePlayerMoney("p2", 5)
	s.mockGame.EXPECT().UpdatePlayerMoney("p3", 5)
	s.mockGame.EXPECT().UpdatePlayerMoney("p1", -5).Times(2)

	card.Apply(s.mockGame, "p1")
}

func (s *MoneyCardTestSuite) TestGetMoneyCreditsActorOnce() {
	card := &MoneyCard{Amount: 100, Effect: EffectGetMoney}

	s.mockGame.EXPECT().UpdatePlayerMoney("p1", 100)

	card.Apply(s.mockGame, "p1")
}

func (s *MoneyCardTestSuite) TestPayDebitsActorOnce() {
	card := &MoneyCard{Amount: 7, Effect: EffectPay}

	s.mockGame.EXPECT().UpdatePlayerMoney("p1", -7)

	card.Apply(s.mockGame, "p1")
}

func (s *MoneyCardTestSuite) TestUnknownEffectDoesNothing() {
	card := &MoneyCard{Amount: 50, Effect: Effect("TELEPORT")}

	card.Apply(s.mockGame, "p1")
}
