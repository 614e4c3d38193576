package impl

import (
	"context"
	"testing"
	"time"

	"propmart/internal/domain/entity"
	domainerrors "propmart/internal/domain/errors"
	"propmart/internal/domain/repository"
	"propmart/internal/infra/memory"
	"propmart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inquiryServiceFixtures holds all test dependencies for inquiry
// service tests.
type inquiryServiceFixtures struct {
	service  usecase.InquiryUsecase
	owner    usecase.Actor
	sender   usecase.Actor
	admin    usecase.Actor
	property entity.Property
}

func createTestInquiryService(t *testing.T) inquiryServiceFixtures {
	t.Helper()

	inquiryRepo := memory.NewInquiryRepository()
	propertyRepo := memory.NewPropertyRepository()
	userRepo := memory.NewUserRepository()
	service := NewInquiryService(inquiryRepo, propertyRepo, userRepo)

	ctx := context.Background()
	accounts := []entity.User{
		{ID: "owner-1", Name: "Asha Verma", Email: "asha@example.com", Role: entity.RoleBroker, Status: entity.UserActive},
		{ID: "sender-1", Name: "Rohan Iyer", Email: "rohan@example.com", Role: entity.RoleUser, Status: entity.UserActive},
		{ID: "admin-1", Name: "Site Admin", Email: "admin@example.com", Role: entity.RoleAdmin, Status: entity.UserActive},
	}
	for _, account := range accounts {
		require.NoError(t, userRepo.Create(ctx, repository.UserRecord{User: account, PasswordHash: "x"}))
	}

	property := entity.Property{
		ID:     "prop-1",
		Title:  "2BHK near Metro",
		Status: entity.PropertyApproved,
		Owner:  &entity.OwnerRef{ID: "owner-1", Name: "Asha Verma", Role: entity.RoleBroker.String()},
	}
	require.NoError(t, propertyRepo.Create(ctx, property))

	return inquiryServiceFixtures{
		service:  service,
		owner:    usecase.Actor{ID: "owner-1", Role: entity.RoleBroker},
		sender:   usecase.Actor{ID: "sender-1", Role: entity.RoleUser},
		admin:    usecase.Actor{ID: "admin-1", Role: entity.RoleAdmin},
		property: property,
	}
}

func sampleInquiryDraft() usecase.InquiryDraft {
	return usecase.InquiryDraft{
		PropertyID: "prop-1",
		Name:       "Rohan Iyer",
		Email:      "rohan@example.com",
		Phone:      "9876543210",
		Message:    "Is this still available?",
	}
}

func TestInquiryService_Submit_Success(t *testing.T) {
	fx := createTestInquiryService(t)

	inquiry, err := fx.service.Submit(context.Background(), fx.sender, sampleInquiryDraft())

	require.NoError(t, err)
	assert.NotEmpty(t, inquiry.ID)
	assert.Equal(t, entity.InquiryPending, inquiry.Status)
	assert.Equal(t, "sender-1", inquiry.Sender.ID)
	assert.Equal(t, "owner-1", inquiry.Owner.ID)
	assert.Equal(t, "prop-1", inquiry.Property.ID)
	assert.Equal(t, "2BHK near Metro", inquiry.Property.Title)
	assert.WithinDuration(t, time.Now(), inquiry.CreatedAt, time.Minute)
}

func TestInquiryService_Submit_PropertyNotFound(t *testing.T) {
	fx := createTestInquiryService(t)

	draft := sampleInquiryDraft()
	draft.PropertyID = "missing"
	_, err := fx.service.Submit(context.Background(), fx.sender, draft)

	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

func TestInquiryService_SentAndReceived(t *testing.T) {
	fx := createTestInquiryService(t)
	ctx := context.Background()

	_, err := fx.service.Submit(ctx, fx.sender, sampleInquiryDraft())
	require.NoError(t, err)

	sent, err := fx.service.Sent(ctx, fx.sender)
	require.NoError(t, err)
	assert.Len(t, sent, 1)

	received, err := fx.service.Received(ctx, fx.owner)
	require.NoError(t, err)
	assert.Len(t, received, 1)

	none, err := fx.service.Received(ctx, fx.sender)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInquiryService_SetStatus_OwnerOnly(t *testing.T) {
	fx := createTestInquiryService(t)
	ctx := context.Background()

	inquiry, err := fx.service.Submit(ctx, fx.sender, sampleInquiryDraft())
	require.NoError(t, err)

	_, err = fx.service.SetStatus(ctx, fx.sender, inquiry.ID, entity.InquiryContacted)
	assert.ErrorIs(t, err, domainerrors.ErrNotInquiryParty)

	updated, err := fx.service.SetStatus(ctx, fx.owner, inquiry.ID, entity.InquiryContacted)
	require.NoError(t, err)
	assert.Equal(t, entity.InquiryContacted, updated.Status)
}

func TestInquiryService_SetStatus_InvalidValue(t *testing.T) {
	fx := createTestInquiryService(t)
	ctx := context.Background()

	inquiry, err := fx.service.Submit(ctx, fx.sender, sampleInquiryDraft())
	require.NoError(t, err)

	_, err = fx.service.SetStatus(ctx, fx.owner, inquiry.ID, entity.InquiryStatus("Archived"))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidInquiryStatus)
}

func TestInquiryService_Delete_PartyOrAdmin(t *testing.T) {
	fx := createTestInquiryService(t)
	ctx := context.Background()

	first, err := fx.service.Submit(ctx, fx.sender, sampleInquiryDraft())
	require.NoError(t, err)
	second, err := fx.service.Submit(ctx, fx.sender, sampleInquiryDraft())
	require.NoError(t, err)

	stranger := usecase.Actor{ID: "someone-else", Role: entity.RoleUser}
	err = fx.service.Delete(ctx, stranger, first.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotInquiryParty)

	require.NoError(t, fx.service.Delete(ctx, fx.sender, first.ID))
	require.NoError(t, fx.service.Delete(ctx, fx.admin, second.ID))

	err = fx.service.Delete(ctx, fx.admin, first.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInquiryNotFound)
}
