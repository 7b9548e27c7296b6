//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	reqdto "tienda-api/internal/handler/dto/request"
	"tienda-api/internal/pkg/config"
	"tienda-api/internal/pkg/errs"
	"tienda-api/internal/usecase/commands"
	commandsmock "tienda-api/tests/mock/commands"
)

type PaymentUseCaseTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *commandsmock.MockPaymentGateway
	mockRepo    *commandsmock.MockOrderWriteRepository
	uc          commands.PaymentCommands
}

func (s *PaymentUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.mockRepo = commandsmock.NewMockOrderWriteRepository(s.mockCtrl)
	site := config.SiteConfig{BaseURL: "https://tienda.example.pe/"}
	s.uc = commands.NewPaymentUseCase(s.mockGateway, s.mockRepo, site)
}

func (s *PaymentUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentUseCaseSuite(t *testing.T) {
	suite.Run(t, new(PaymentUseCaseTestSuite))
}

func (s *PaymentUseCaseTestSuite) request(orderID uuid.UUID) reqdto.CreatePreferenceRequest {
	return reqdto.CreatePreferenceRequest{
		Items: []reqdto.PreferenceItem{
			{Title: "Polo clásico (M)", Quantity: 2, UnitPrice: 79.90},
		},
		ExternalReference: orderID.String(),
		Email:             "maria@example.pe",
		Buyer: reqdto.PreferenceBuyer{
			FirstName: "Maria",
			DocType:   "DNI",
			DocNumber: "45678912",
			Phone:     "987654321",
		},
		Shipping: reqdto.PreferenceShipping{Cost: 15},
	}
}

func (s *PaymentUseCaseTestSuite) TestCreatePreferenceStoresReturnedID() {
	orderID := uuid.New()

	s.mockGateway.EXPECT().
		CreatePreference(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pref commands.Preference) (string, error) {
			s.Equal(orderID.String(), pref.ExternalReference)
			s.Equal("https://tienda.example.pe/checkout/success", pref.SuccessURL)
			s.Equal("https://tienda.example.pe/api/payments/webhook", pref.NotificationURL)
			s.Equal(15.0, pref.ShippingCost)
			s.Require().Len(pref.Items, 1)
			s.Equal("Polo clásico (M)", pref.Items[0].Title)
			return "pref-123", nil
		})
	s.mockRepo.EXPECT().SetPreferenceID(gomock.Any(), orderID, "pref-123").Return(nil)

	result, err := s.uc.CreatePreference(context.Background(), s.request(orderID))

	s.NoError(err)
	s.Equal("pref-123", result.PreferenceID)
}

func (s *PaymentUseCaseTestSuite) TestMalformedExternalReference() {
	req := s.request(uuid.New())
	req.ExternalReference = "not-a-uuid"

	result, err := s.uc.CreatePreference(context.Background(), req)

	s.Nil(result)
	s.True(errs.Is(err, commands.ErrInvalidOrderRef))
}

func (s *PaymentUseCaseTestSuite) TestProviderFailureIsMarked() {
	orderID := uuid.New()

	s.mockGateway.EXPECT().
		CreatePreference(gomock.Any(), gomock.Any()).
		Return("", errs.New("status 500"))

	result, err := s.uc.CreatePreference(context.Background(), s.request(orderID))

	s.Nil(result)
	s.True(errs.Is(err, commands.ErrPaymentProvider))
}

func (s *PaymentUseCaseTestSuite) TestPersistFailureIsMarked() {
	orderID := uuid.New()

	s.mockGateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return("pref-123", nil)
	s.mockRepo.EXPECT().
		SetPreferenceID(gomock.Any(), orderID, "pref-123").
		Return(errs.New("no such order"))

	result, err := s.uc.CreatePreference(context.Background(), s.request(orderID))

	s.Nil(result)
	s.True(errs.Is(err, commands.ErrPreferenceNotSaved))
}
