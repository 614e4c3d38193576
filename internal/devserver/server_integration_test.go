package devserver

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"propmart/config"
	"propmart/internal/client"
	"propmart/internal/devserver/middleware"
	"propmart/internal/devserver/router"
	"propmart/internal/devserver/router/handler"
	"propmart/internal/domain/entity"
	"propmart/internal/infra/auth"
	"propmart/internal/infra/memory"
	"propmart/internal/store"
	"propmart/internal/transport"
	"propmart/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// integrationFixtures runs the full loop: SDK slices talking to the
// assembled echo server over a real HTTP round trip.
type integrationFixtures struct {
	sdk *client.Client
}

func createTestStack(t *testing.T) integrationFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "integration-test-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := memory.NewUserRepository()
	propertyRepo := memory.NewPropertyRepository()
	inquiryRepo := memory.NewInquiryRepository()
	wishlistRepo := memory.NewWishlistRepository()

	hasher := auth.NewBcryptHasher(cfg)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	params := router.RouterParams{
		AuthHandler:      handler.NewAuthHandler(impl.NewAuthService(userRepo, hasher, tokens), logger),
		PropertyHandler:  handler.NewPropertyHandler(impl.NewPropertyService(propertyRepo, userRepo), logger),
		UserHandler:      handler.NewUserHandler(impl.NewUserService(userRepo), logger),
		InquiryHandler:   handler.NewInquiryHandler(impl.NewInquiryService(inquiryRepo, propertyRepo, userRepo), logger),
		WishlistHandler:  handler.NewWishlistHandler(impl.NewWishlistService(wishlistRepo, propertyRepo), logger),
		DashboardHandler: handler.NewDashboardHandler(impl.NewDashboardService(userRepo, propertyRepo, inquiryRepo), logger),
		AuthMiddleware:   middleware.NewAuthMiddleware(tokens),
	}

	echoServer := NewEcho(logger, params, middleware.NewErrorMiddleware(logger))
	server := httptest.NewServer(echoServer)
	t.Cleanup(server.Close)

	cfg.API.BaseURL = server.URL
	cfg.API.Timeout = 5 * time.Second

	httpClient, err := transport.NewHTTPClient(cfg, logger)
	require.NoError(t, err)

	return integrationFixtures{sdk: client.New(httpClient, logger)}
}

func registerAccount(t *testing.T, sdk *client.Client, name, email string, role entity.Role) client.Session {
	t.Helper()

	session, err := sdk.Auth.Register(context.Background(), client.RegisterInput{
		Name:     name,
		Email:    email,
		Password: "password123",
		Role:     role,
	})
	require.NoError(t, err)

	return session
}

func TestIntegration_ListingLifecycle(t *testing.T) {
	fx := createTestStack(t)
	ctx := context.Background()

	registerAccount(t, fx.sdk, "Asha Verma", "asha@example.com", entity.RoleBroker)

	created, err := fx.sdk.Properties.Create(ctx, client.PropertyInput{
		Title:           "2BHK near Metro",
		Description:     "Bright east-facing flat",
		Price:           4500000,
		City:            "Pune",
		Area:            "Baner",
		PropertyType:    "Apartment",
		TransactionType: entity.TransactionSale,
		Bedrooms:        2,
		Bathrooms:       2,
		SquareFeet:      980,
	}, transport.File{Field: "images", Name: "front.jpg", ContentType: "image/jpeg", Content: []byte("jpeg")})
	require.NoError(t, err)
	assert.Equal(t, entity.PropertyPending, created.Status)
	// Create never touches the cached collection.
	assert.Empty(t, fx.sdk.Properties.Items())

	listings, err := fx.sdk.Properties.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, created.ID, listings[0].ID)

	mine, err := fx.sdk.Properties.ListMine(ctx)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	// An admin approves; the cached element is replaced in place.
	registerAccount(t, fx.sdk, "Site Admin", "admin@example.com", entity.RoleAdmin)
	approved, err := fx.sdk.Properties.Approve(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PropertyApproved, approved.Status)
	assert.Equal(t, entity.PropertyApproved, fx.sdk.Properties.Items()[0].Status)
}

func TestIntegration_DeleteNotFoundLeavesCollection(t *testing.T) {
	fx := createTestStack(t)
	ctx := context.Background()

	registerAccount(t, fx.sdk, "Asha Verma", "asha@example.com", entity.RoleBroker)

	_, err := fx.sdk.Properties.Create(ctx, client.PropertyInput{
		Title:           "2BHK",
		TransactionType: entity.TransactionSale,
	}, transport.File{Field: "images", Name: "x.jpg", Content: []byte("x")})
	require.NoError(t, err)

	listings, err := fx.sdk.Properties.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listings, 1)

	err = fx.sdk.Properties.Delete(ctx, "ghost")
	require.Error(t, err)
	assert.Equal(t, "Property not found.", err.Error())
	assert.Len(t, fx.sdk.Properties.Items(), 1)
}

func TestIntegration_InquiryFlow(t *testing.T) {
	fx := createTestStack(t)
	ctx := context.Background()

	registerAccount(t, fx.sdk, "Asha Verma", "broker@example.com", entity.RoleBroker)
	listing, err := fx.sdk.Properties.Create(ctx, client.PropertyInput{
		Title:           "3BHK in Saket",
		TransactionType: entity.TransactionRent,
	})
	require.NoError(t, err)

	// A buyer logs in and submits a lead.
	registerAccount(t, fx.sdk, "Rohan Iyer", "rohan@example.com", entity.RoleUser)
	inquiry, err := fx.sdk.Inquiries.Create(ctx, client.InquiryInput{
		PropertyID: listing.ID,
		Name:       "Rohan Iyer",
		Email:      "rohan@example.com",
		Message:    "Is this still available?",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.InquiryPending, inquiry.Status)
	assert.Len(t, fx.sdk.Inquiries.Sent(), 1)

	sent, err := fx.sdk.Inquiries.ListSent(ctx)
	require.NoError(t, err)
	require.Len(t, sent, 1)

	// The broker sees it in the received list and marks it contacted.
	_, err = fx.sdk.Auth.Login(ctx, client.Credentials{Email: "broker@example.com", Password: "password123"})
	require.NoError(t, err)

	received, err := fx.sdk.Inquiries.ListReceived(ctx)
	require.NoError(t, err)
	require.Len(t, received, 1)

	updated, err := fx.sdk.Inquiries.SetStatus(ctx, inquiry.ID, entity.InquiryContacted)
	require.NoError(t, err)
	assert.Equal(t, entity.InquiryContacted, updated.Status)
	assert.Equal(t, entity.InquiryContacted, fx.sdk.Inquiries.Received()[0].Status)
}

func TestIntegration_InquirySubmissionFailureMessage(t *testing.T) {
	fx := createTestStack(t)
	ctx := context.Background()

	registerAccount(t, fx.sdk, "Rohan Iyer", "rohan@example.com", entity.RoleUser)

	_, err := fx.sdk.Inquiries.Create(ctx, client.InquiryInput{
		PropertyID: "missing",
		Name:       "Rohan Iyer",
		Email:      "rohan@example.com",
		Message:    "Hello",
	})

	require.Error(t, err)
	// The server message flows through; the fixed fallback is not used.
	assert.Equal(t, "Property not found.", err.Error())
	assert.Equal(t, store.Failed, fx.sdk.Inquiries.SentStatus().Phase)
}

func TestIntegration_WishlistToggle(t *testing.T) {
	fx := createTestStack(t)
	ctx := context.Background()

	registerAccount(t, fx.sdk, "Asha Verma", "broker@example.com", entity.RoleBroker)
	listing, err := fx.sdk.Properties.Create(ctx, client.PropertyInput{
		Title:           "Studio in Hauz Khas",
		TransactionType: entity.TransactionRent,
	})
	require.NoError(t, err)

	registerAccount(t, fx.sdk, "Rohan Iyer", "rohan@example.com", entity.RoleUser)
	_, err = fx.sdk.Wishlist.List(ctx)
	require.NoError(t, err)

	require.NoError(t, fx.sdk.Wishlist.Toggle(ctx, listing.ID))
	assert.True(t, fx.sdk.Wishlist.Contains(listing.ID))

	require.NoError(t, fx.sdk.Wishlist.Toggle(ctx, listing.ID))
	assert.False(t, fx.sdk.Wishlist.Contains(listing.ID))
}

func TestIntegration_DashboardRequiresAdmin(t *testing.T) {
	fx := createTestStack(t)
	ctx := context.Background()

	registerAccount(t, fx.sdk, "Rohan Iyer", "rohan@example.com", entity.RoleUser)

	_, err := fx.sdk.Dashboard.Fetch(ctx)
	require.Error(t, err)
	assert.Equal(t, "You do not have permission to perform this action.", err.Error())

	registerAccount(t, fx.sdk, "Site Admin", "admin@example.com", entity.RoleAdmin)

	stats, err := fx.sdk.Dashboard.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)
}
