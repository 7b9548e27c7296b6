//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"tienda-api/internal/infra"
	"tienda-api/internal/pkg/clock"
	"tienda-api/internal/pkg/errs"
	"tienda-api/internal/usecase/commands"
	commandsmock "tienda-api/tests/mock/commands"
)

type WebhookUseCaseTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *commandsmock.MockPaymentGateway
	mockRepo    *commandsmock.MockOrderWriteRepository
	mockOrders  *commandsmock.MockOrderReadStore
	mockMailer  *commandsmock.MockMailer
	clock       *clock.MockClock
	uc          commands.WebhookCommands
}

func (s *WebhookUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.mockRepo = commandsmock.NewMockOrderWriteRepository(s.mockCtrl)
	s.mockOrders = commandsmock.NewMockOrderReadStore(s.mockCtrl)
	s.mockMailer = commandsmock.NewMockMailer(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.uc = commands.NewWebhookUseCase(s.mockGateway, s.mockRepo, s.mockOrders, s.mockMailer, s.clock)
}

func (s *WebhookUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookUseCaseSuite(t *testing.T) {
	suite.Run(t, new(WebhookUseCaseTestSuite))
}

func (s *WebhookUseCaseTestSuite) payment(orderID uuid.UUID, status string) *commands.PaymentResource {
	return &commands.PaymentResource{
		ID:                "12345",
		Status:            status,
		StatusDetail:      "accredited",
		ExternalReference: orderID.String(),
		Raw:               json.RawMessage(`{"id":12345,"status":"` + status + `"}`),
	}
}

func (s *WebhookUseCaseTestSuite) order(id uuid.UUID, emailSent bool) *commands.OrderSnapshot {
	return &commands.OrderSnapshot{
		ID:        id,
		Nombres:   "Maria Quispe",
		Email:     "maria@example.pe",
		Total:     159.80,
		Status:    "pending_payment",
		EmailSent: emailSent,
	}
}

func (s *WebhookUseCaseTestSuite) TestNonPaymentEventIsIgnored() {
	outcome, err := s.uc.Process(context.Background(), commands.Notification{
		Type:   "merchant_order",
		Action: "order.updated",
	})
	s.NoError(err)
	s.Equal(commands.OutcomeIgnored, outcome)
}

func (s *WebhookUseCaseTestSuite) TestPaymentActionWithoutTypeIsProcessed() {
	orderID := uuid.New()
	s.mockGateway.EXPECT().GetPayment(gomock.Any(), "12345").
		Return(s.payment(orderID, "rejected"), nil)
	s.mockOrders.EXPECT().FindByID(gomock.Any(), orderID).
		Return(s.order(orderID, false), nil)
	s.mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), orderID, gomock.Any()).
		Return(nil)

	outcome, err := s.uc.Process(context.Background(), commands.Notification{
		Action:    "payment.updated",
		PaymentID: "12345",
	})
	s.NoError(err)
	s.Equal(commands.OutcomeUpdated, outcome)
}

func (s *WebhookUseCaseTestSuite) TestMissingPaymentID() {
	outcome, err := s.uc.Process(context.Background(), commands.Notification{
		Type: "payment",
	})
	s.NoError(err)
	s.Equal(commands.OutcomeNoPaymentID, outcome)
}

func (s *WebhookUseCaseTestSuite) TestProviderFetchFailureAbortsWithoutMutation() {
	s.mockGateway.EXPECT().GetPayment(gomock.Any(), "12345").
		Return(nil, errs.New("status 404"))

	_, err := s.uc.Process(context.Background(), commands.Notification{
		Type:      "payment",
		PaymentID: "12345",
	})
	s.True(errs.Is(err, commands.ErrPaymentFetch))
}

func (s *WebhookUseCaseTestSuite) TestMissingExternalReference() {
	p := &commands.PaymentResource{ID: "12345", Status: "approved"}
	s.mockGateway.EXPECT().GetPayment(gomock.Any(), "12345").Return(p, nil)

	outcome, err := s.uc.Process(context.Background(), commands.Notification{
		Type:      "payment",
		PaymentID: "12345",
	})
	s.NoError(err)
	s.Equal(commands.OutcomeNoExternalRef, outcome)
}

func (s *WebhookUseCaseTestSuite) TestApprovedPaymentSendsOneEmail() {
	orderID := uuid.New()
	s.mockGateway.EXPECT().GetPayment(gomock.Any(), "12345").
		Return(s.payment(orderID, "approved"), nil)
	s.mockOrders.EXPECT().FindByID(gomock.Any(), orderID).
		Return(s.order(orderID, false), nil)
	s.mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), orderID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, upd commands.PaymentStatusUpdate) error {
			s.Equal("12345", upd.PaymentID)
			s.Equal("approved", upd.Status)
			s.Equal("accredited", upd.StatusDetail)
			s.False(upd.UpdatedAt.IsZero())
			return nil
		})
	s.mockRepo.EXPECT().ClaimEmailSent(gomock.Any(), orderID).Return(true, nil)
	s.mockOrders.EXPECT().ListItems(gomock.Any(), orderID).
		Return([]commands.OrderItemSnapshot{{Name: "Polo", Qty: 2, Price: 79.90}}, nil)
	s.mockMailer.EXPECT().SendOrderStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mail commands.OrderStatusEmail) error {
			s.Equal("approved", mail.Status)
			s.Equal("maria@example.pe", mail.To)
			s.Len(mail.Items, 1)
			return nil
		})

	outcome, err := s.uc.Process(context.Background(), commands.Notification{
		Type:      "payment",
		PaymentID: "12345",
	})
	s.NoError(err)
	s.Equal(commands.OutcomeUpdated, outcome)
}

func (s *WebhookUseCaseTestSuite) TestDuplicateDeliverySkipsEmail() {
	orderID := uuid.New()
	s.mockGateway.EXPECT().GetPayment(gomock.Any(), "12345").
		Return(s.payment(orderID, "approved"), nil)
	// email already sent after the first delivery
	s.mockOrders.EXPECT().FindByID(gomock.Any(), orderID).
		Return(s.order(orderID, true), nil)
	s.mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), orderID, gomock.Any()).
		Return(nil)
	// no ClaimEmailSent, no mail

	outcome, err := s.uc.Process(context.Background(), commands.Notification{
		Type:      "payment",
		PaymentID: "12345",
	})
	s.NoError(err)
	s.Equal(commands.OutcomeUpdated, outcome)
}

func (s *WebhookUseCaseTestSuite) TestLostClaimRaceSkipsEmail() {
	orderID := uuid.New()
	s.mockGateway.EXPECT().GetPayment(gomock.Any(), "12345").
		Return(s.payment(orderID, "approved"), nil)
	s.mockOrders.EXPECT().FindByID(gomock.Any(), orderID).
		Return(s.order(orderID, false), nil)
	s.mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), orderID, gomock.Any()).
		Return(nil)
	// a concurrent delivery claimed the flag between lookup and claim
	s.mockRepo.EXPECT().ClaimEmailSent(gomock.Any(), orderID).Return(false, nil)

	outcome, err := s.uc.Process(context.Background(), commands.Notification{
		Type:      "payment",
		PaymentID: "12345",
	})
	s.NoError(err)
	s.Equal(commands.OutcomeUpdated, outcome)
}

func (s *WebhookUseCaseTestSuite) TestPendingPaymentShownAsPending() {
	orderID := uuid.New()
	s.mockGateway.EXPECT().GetPayment(gomock.Any(), "12345").
		Return(s.payment(orderID, "pending"), nil)
	s.mockOrders.EXPECT().FindByID(gomock.Any(), orderID).
		Return(s.order(orderID, false), nil)
	s.mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), orderID, gomock.Any()).
		Return(nil)
	s.mockRepo.EXPECT().ClaimEmailSent(gomock.Any(), orderID).Return(true, nil)
	s.mockOrders.EXPECT().ListItems(gomock.Any(), orderID).Return(nil, nil)
	s.mockMailer.EXPECT().SendOrderStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mail commands.OrderStatusEmail) error {
			s.Equal("pending", mail.Status)
			return nil
		})

	outcome, err := s.uc.Process(context.Background(), commands.Notification{
		Type:      "payment",
		PaymentID: "12345",
	})
	s.NoError(err)
	s.Equal(commands.OutcomeUpdated, outcome)
}

func (s *WebhookUseCaseTestSuite) TestRejectedPaymentSendsNoEmail() {
	orderID := uuid.New()
	s.mockGateway.EXPECT().GetPayment(gomock.Any(), "12345").
		Return(s.payment(orderID, "rejected"), nil)
	s.mockOrders.EXPECT().FindByID(gomock.Any(), orderID).
		Return(s.order(orderID, false), nil)
	s.mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), orderID, gomock.Any()).
		Return(nil)

	outcome, err := s.uc.Process(context.Background(), commands.Notification{
		Type:      "payment",
		PaymentID: "12345",
	})
	s.NoError(err)
	s.Equal(commands.OutcomeUpdated, outcome)
}

func (s *WebhookUseCaseTestSuite) TestUpdateProceedsWhenOrderLookupFails() {
	orderID := uuid.New()
	s.mockGateway.EXPECT().GetPayment(gomock.Any(), "12345").
		Return(s.payment(orderID, "approved"), nil)
	s.mockOrders.EXPECT().FindByID(gomock.Any(), orderID).
		Return(nil, errs.New("connection refused"))
	s.mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), orderID, gomock.Any()).
		Return(nil)
	// lookup failed, so no email step at all

	outcome, err := s.uc.Process(context.Background(), commands.Notification{
		Type:      "payment",
		PaymentID: "12345",
	})
	s.NoError(err)
	s.Equal(commands.OutcomeUpdated, outcome)
}

func (s *WebhookUseCaseTestSuite) TestUnknownOrderReferenceIsAcknowledged() {
	orderID := uuid.New()
	s.mockGateway.EXPECT().GetPayment(gomock.Any(), "12345").
		Return(s.payment(orderID, "approved"), nil)
	s.mockOrders.EXPECT().FindByID(gomock.Any(), orderID).
		Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))
	s.mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), orderID, gomock.Any()).
		Return(infra.WrapRepoErr("order not found", nil, infra.KindNotFound))
	// a retry can never produce the row, so the delivery is acknowledged

	outcome, err := s.uc.Process(context.Background(), commands.Notification{
		Type:      "payment",
		PaymentID: "12345",
	})
	s.NoError(err)
	s.Equal(commands.OutcomeUpdated, outcome)
}

func (s *WebhookUseCaseTestSuite) TestUpdateFailureInvitesRetry() {
	orderID := uuid.New()
	s.mockGateway.EXPECT().GetPayment(gomock.Any(), "12345").
		Return(s.payment(orderID, "approved"), nil)
	s.mockOrders.EXPECT().FindByID(gomock.Any(), orderID).
		Return(s.order(orderID, false), nil)
	s.mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), orderID, gomock.Any()).
		Return(errs.New("connection reset"))

	_, err := s.uc.Process(context.Background(), commands.Notification{
		Type:      "payment",
		PaymentID: "12345",
	})
	s.True(errs.Is(err, commands.ErrOrderUpdate))
}

func (s *WebhookUseCaseTestSuite) TestMailFailureReleasesFlagAndStillUpdates() {
	orderID := uuid.New()
	s.mockGateway.EXPECT().GetPayment(gomock.Any(), "12345").
		Return(s.payment(orderID, "approved"), nil)
	s.mockOrders.EXPECT().FindByID(gomock.Any(), orderID).
		Return(s.order(orderID, false), nil)
	s.mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), orderID, gomock.Any()).
		Return(nil)
	s.mockRepo.EXPECT().ClaimEmailSent(gomock.Any(), orderID).Return(true, nil)
	s.mockOrders.EXPECT().ListItems(gomock.Any(), orderID).Return(nil, nil)
	s.mockMailer.EXPECT().SendOrderStatus(gomock.Any(), gomock.Any()).
		Return(errs.New("sendgrid 503"))
	s.mockRepo.EXPECT().ReleaseEmailSent(gomock.Any(), orderID).Return(nil)

	outcome, err := s.uc.Process(context.Background(), commands.Notification{
		Type:      "payment",
		PaymentID: "12345",
	})
	s.NoError(err)
	s.Equal(commands.OutcomeUpdated, outcome)
}
