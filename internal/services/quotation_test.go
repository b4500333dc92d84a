package service_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/frozz/storefront/internal/config"
	appErrors "github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/models"
	repository "github.com/frozz/storefront/internal/repositories"
	"github.com/frozz/storefront/internal/repositories/mocks"
	service "github.com/frozz/storefront/internal/services"
	"github.com/frozz/storefront/internal/storage"
	"github.com/frozz/storefront/pkg/pdf"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sentNotification struct {
	quotation  *models.Quotation
	registered bool
	doc        *service.QuotationDocument
}

// recordingNotifier captures what would have been pushed to staff.
type recordingNotifier struct {
	sent []sentNotification
}

func (r *recordingNotifier) NotifyNewQuotation(_ context.Context, q *models.Quotation, registered bool, doc *service.QuotationDocument) {
	r.sent = append(r.sent, sentNotification{quotation: q, registered: registered, doc: doc})
}

func (r *recordingNotifier) GetNotification(context.Context, uuid.UUID) (*models.Notification, error) {
	return nil, nil
}

func (r *recordingNotifier) ListNotifications(context.Context, int64) ([]*models.Notification, error) {
	return nil, nil
}

type quotationFixture struct {
	quotations *mocks.QuotationRepository
	carts      *mocks.CartRepository
	products   *mocks.ProductRepository
	users      *mocks.UserRepository
	addresses  *mocks.AddressRepository
	sessions   *mocks.SessionRepository
	notifier   *recordingNotifier
	media      storage.Storage
	deps       service.QuotationDeps
	service    service.QuotationService
}

func newQuotationFixture(t *testing.T) *quotationFixture {
	f := &quotationFixture{
		quotations: new(mocks.QuotationRepository),
		carts:      new(mocks.CartRepository),
		products:   new(mocks.ProductRepository),
		users:      new(mocks.UserRepository),
		addresses:  new(mocks.AddressRepository),
		sessions:   new(mocks.SessionRepository),
		notifier:   &recordingNotifier{},
		media:      storage.NewLocal(t.TempDir()),
	}

	f.deps = service.QuotationDeps{
		Quotations:   f.quotations,
		Carts:        f.carts,
		Products:     f.products,
		Users:        f.users,
		Addresses:    f.addresses,
		Sessions:     f.sessions,
		Notifier:     f.notifier,
		Renderer:     pdf.NewRenderer(&config.Store{Name: "Frozz", Currency: "COP", QuotationValidity: 24 * time.Hour}),
		Media:        f.media,
		MaxProofSize: 1024,
	}
	f.service = service.NewQuotationService(f.deps)

	return f
}

// rebuild swaps dependencies after the fixture was created.
func (f *quotationFixture) rebuild(change func(*service.QuotationDeps)) {
	change(&f.deps)
	f.service = service.NewQuotationService(f.deps)
}

type failingRenderer struct{}

func (failingRenderer) Render(*models.Quotation, map[int64]decimal.Decimal) ([]byte, error) {
	return nil, errors.New("font not found")
}

func (f *quotationFixture) assertExpectations(t *testing.T) {
	f.quotations.AssertExpectations(t)
	f.carts.AssertExpectations(t)
	f.products.AssertExpectations(t)
	f.users.AssertExpectations(t)
	f.addresses.AssertExpectations(t)
	f.sessions.AssertExpectations(t)
}

func catalog() map[int64]*models.Product {
	return map[int64]*models.Product{
		1: {ID: 1, Name: "Vaso térmico", Price: decimal.NewFromInt(11900), PromotionalPrice: decimal.NewNullDecimal(decimal.NewFromInt(9900)), Stock: 20, Available: true},
		2: {ID: 2, Name: "Cuchara", Price: decimal.NewFromInt(500), Stock: 100, Available: true},
		3: {ID: 3, Name: "Nevera retirada", Price: decimal.NewFromInt(250000), Stock: 1, Available: false},
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func TestQuotationService_CheckoutRegistered(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := &models.User{ID: userID, Name: "Laura Gómez", Email: "laura@example.com", Phone: "3000000000"}

	t.Run("Success - Typed address", func(t *testing.T) {
		f := newQuotationFixture(t)

		cart := &models.Cart{ID: uuid.New(), UserID: userID, Items: models.CartItems{"1": 2, "2": 10, "3": 1}}
		f.carts.On("GetCartByUserID", ctx, userID).Return(cart, nil).Once()
		f.users.On("GetUserById", ctx, userID).Return(user, nil).Once()
		f.products.On("GetProductsByIDs", ctx, mock.Anything).Return(catalog(), nil).Twice()
		f.quotations.On("CreateQuotation", ctx, mock.MatchedBy(func(q *models.Quotation) bool {
			return len(q.Items) == 2 && q.ClientUserID != nil && *q.ClientUserID == userID
		}), &userID).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Quotation).ID = 42
		}).Return(nil).Once()

		q, err := f.service.CheckoutRegistered(ctx, userID, &models.RegisteredCheckoutRequest{
			Departamento:   "Antioquia",
			City:           "Medellín",
			Address:        "Calle 10 # 20-30",
			Phone:          "3111111111",
			Reference:      "Frente al parque",
			AdditionalNote: "Entregar en la mañana",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(42), q.ID)
		assert.Equal(t, models.ClientKindExisting, q.ClientKind)
		assert.Equal(t, "3111111111", q.ClientPhone)
		assert.Equal(t, "Calle 10 # 20-30 | Punto de referencia: Frente al parque | Notas adicionales: Entregar en la mañana", q.Notes)

		// 2 x 9.900 promo + 10 x 500; the unavailable product is dropped
		assert.True(t, decimal.NewFromInt(24800).Equal(q.Total))
		assert.Equal(t, int64(1), q.Items[0].ProductID)
		assert.Equal(t, models.QuotationStatusGenerated, q.QuotationStatus)
		assert.Equal(t, models.OrderStatusNoResponse, q.OrderStatus)

		require.Len(t, f.notifier.sent, 1)
		assert.True(t, f.notifier.sent[0].registered)
		require.NotNil(t, f.notifier.sent[0].doc)
		assert.True(t, bytes.HasPrefix(f.notifier.sent[0].doc.Data, []byte("%PDF-")))
		assert.True(t, strings.HasPrefix(f.notifier.sent[0].doc.Filename, "COT42-"))

		f.assertExpectations(t)
	})

	t.Run("Success - Saved address", func(t *testing.T) {
		f := newQuotationFixture(t)
		addressID := int64(7)

		f.carts.On("GetCartByUserID", ctx, userID).Return(&models.Cart{UserID: userID, Items: models.CartItems{"2": 1}}, nil).Once()
		f.users.On("GetUserById", ctx, userID).Return(user, nil).Once()
		f.addresses.On("GetAddress", ctx, userID, addressID).Return(&models.ShippingAddress{
			ID: addressID, Departamento: "Cundinamarca", City: "Bogotá", Address: "Cra 7 # 1-1",
		}, nil).Once()
		f.products.On("GetProductsByIDs", ctx, mock.Anything).Return(catalog(), nil)
		f.quotations.On("CreateQuotation", ctx, mock.AnythingOfType("*models.Quotation"), &userID).Return(nil).Once()

		q, err := f.service.CheckoutRegistered(ctx, userID, &models.RegisteredCheckoutRequest{AddressID: &addressID})

		require.NoError(t, err)
		assert.Equal(t, "Bogotá", q.ClientCity)
		assert.Equal(t, user.Phone, q.ClientPhone)
		assert.Equal(t, "Cra 7 # 1-1", q.Notes)

		f.assertExpectations(t)
	})

	t.Run("Failure - Empty cart", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.carts.On("GetCartByUserID", ctx, userID).Return(nil, sql.ErrNoRows).Once()

		q, err := f.service.CheckoutRegistered(ctx, userID, &models.RegisteredCheckoutRequest{})

		assert.Nil(t, q)
		assertAppErrorCode(t, err, appErrors.ErrCodeEmptyCart)
		assert.Empty(t, f.notifier.sent)

		f.assertExpectations(t)
	})

	t.Run("Failure - Missing delivery fields", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.carts.On("GetCartByUserID", ctx, userID).Return(&models.Cart{UserID: userID, Items: models.CartItems{"1": 1}}, nil).Once()
		f.users.On("GetUserById", ctx, userID).Return(user, nil).Once()

		q, err := f.service.CheckoutRegistered(ctx, userID, &models.RegisteredCheckoutRequest{City: "Medellín"})

		assert.Nil(t, q)
		assertAppErrorCode(t, err, appErrors.ErrCodeValidation)
		f.quotations.AssertNotCalled(t, "CreateQuotation")

		f.assertExpectations(t)
	})

	t.Run("Failure - Only unavailable products", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.carts.On("GetCartByUserID", ctx, userID).Return(&models.Cart{UserID: userID, Items: models.CartItems{"3": 1}}, nil).Once()
		f.users.On("GetUserById", ctx, userID).Return(user, nil).Once()
		f.products.On("GetProductsByIDs", ctx, []int64{3}).Return(catalog(), nil).Once()

		q, err := f.service.CheckoutRegistered(ctx, userID, &models.RegisteredCheckoutRequest{
			Departamento: "Antioquia", City: "Medellín", Address: "Calle 1", Phone: "300",
		})

		assert.Nil(t, q)
		assertAppErrorCode(t, err, appErrors.ErrCodeEmptyCart)

		f.assertExpectations(t)
	})

	t.Run("Failure - User lookup", func(t *testing.T) {
		tests := []struct {
			name     string
			err      error
			wantCode string
		}{
			{"Missing user", sql.ErrNoRows, appErrors.ErrCodeNotFound},
			{"Database error", errors.New("conn reset"), appErrors.ErrCodeDatabaseError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newQuotationFixture(t)

				f.carts.On("GetCartByUserID", ctx, userID).Return(&models.Cart{UserID: userID, Items: models.CartItems{"1": 1}}, nil).Once()
				f.users.On("GetUserById", ctx, userID).Return(nil, tt.err).Once()

				q, err := f.service.CheckoutRegistered(ctx, userID, &models.RegisteredCheckoutRequest{})

				assert.Nil(t, q)
				assertAppErrorCode(t, err, tt.wantCode)
				f.quotations.AssertNotCalled(t, "CreateQuotation")

				f.assertExpectations(t)
			})
		}
	})
}

func TestQuotationService_CheckoutGuest(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.NewString()

	validRequest := func() *models.GuestCheckoutRequest {
		return &models.GuestCheckoutRequest{
			Name:         "Carlos Ruiz",
			Email:        "carlos@example.com",
			Phone:        "3200000000",
			Departamento: "Valle del Cauca",
			City:         "Cali",
			Address:      "Av 6N # 25-10",
			MapLink:      "https://maps.example.com/?q=cali",
		}
	}

	t.Run("Success - Session cart is cleared", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.sessions.On("GetItems", ctx, sessionID, "cart").Return(models.CartItems{"2": 4}, nil).Once()
		f.products.On("GetProductsByIDs", ctx, mock.Anything).Return(catalog(), nil)
		f.quotations.On("CreateQuotation", ctx, mock.AnythingOfType("*models.Quotation"), (*uuid.UUID)(nil)).Return(nil).Once()
		f.sessions.On("Clear", ctx, sessionID, []string{"cart"}).Return(nil).Once()

		q, err := f.service.CheckoutGuest(ctx, sessionID, validRequest())

		require.NoError(t, err)
		assert.Nil(t, q.ClientUserID)
		assert.Equal(t, models.ClientKindNatural, q.ClientKind)
		assert.Equal(t, "Av 6N # 25-10 | Ubicación (mapa): https://maps.example.com/?q=cali", q.Notes)
		assert.True(t, decimal.NewFromInt(2000).Equal(q.Total))

		require.Len(t, f.notifier.sent, 1)
		assert.False(t, f.notifier.sent[0].registered)

		f.assertExpectations(t)
	})

	t.Run("Failure - Missing fields are all reported", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.sessions.On("GetItems", ctx, sessionID, "cart").Return(models.CartItems{"2": 1}, nil).Once()

		req := validRequest()
		req.Email = ""
		req.Address = " "

		q, err := f.service.CheckoutGuest(ctx, sessionID, req)

		assert.Nil(t, q)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Contains(t, appErr.Details, "email")
		assert.Contains(t, appErr.Details, "address")

		f.sessions.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("Failure - Empty session cart", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.sessions.On("GetItems", ctx, sessionID, "cart").Return(models.CartItems{}, nil).Once()

		q, err := f.service.CheckoutGuest(ctx, sessionID, validRequest())

		assert.Nil(t, q)
		assertAppErrorCode(t, err, appErrors.ErrCodeEmptyCart)

		f.assertExpectations(t)
	})
}

func TestQuotationService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	quotation := func(order models.OrderStatus, proof string) *models.Quotation {
		return &models.Quotation{
			ID:              9,
			QuotationStatus: models.QuotationStatusGenerated,
			OrderStatus:     order,
			PaymentProof:    proof,
			Items:           []models.QuotationItem{{ProductID: 1, Quantity: 2}},
		}
	}

	t.Run("Success - First entry into payment received commits stock", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.quotations.On("GetQuotationByID", ctx, int64(9)).Return(quotation(models.OrderStatusAwaitingPayment, "payment_proofs/COT9.png"), nil).Once()
		f.quotations.On("TransitionOrderStatus", ctx, int64(9), models.OrderTransition{
			From:        models.OrderStatusAwaitingPayment,
			To:          models.OrderStatusPaymentReceived,
			CommitStock: true,
		}).Return(nil).Once()
		f.quotations.On("GetQuotationByID", ctx, int64(9)).Return(quotation(models.OrderStatusPaymentReceived, "payment_proofs/COT9.png"), nil).Once()

		q, err := f.service.UpdateStatus(ctx, 9, &models.UpdateStatusRequest{OrderStatus: models.OrderStatusPaymentReceived})

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPaymentReceived, q.OrderStatus)

		f.assertExpectations(t)
	})

	t.Run("Success - Moving between post-payment statuses does not commit again", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.quotations.On("GetQuotationByID", ctx, int64(9)).Return(quotation(models.OrderStatusPaymentReceived, "p.png"), nil).Once()
		f.quotations.On("TransitionOrderStatus", ctx, int64(9), models.OrderTransition{
			From: models.OrderStatusPaymentReceived,
			To:   models.OrderStatusShipped,
		}).Return(nil).Once()
		f.quotations.On("UpdateQuotationStatus", ctx, int64(9), models.QuotationStatusSent).Return(nil).Once()
		f.quotations.On("GetQuotationByID", ctx, int64(9)).Return(quotation(models.OrderStatusShipped, "p.png"), nil).Once()

		_, err := f.service.UpdateStatus(ctx, 9, &models.UpdateStatusRequest{
			OrderStatus:     models.OrderStatusShipped,
			QuotationStatus: models.QuotationStatusSent,
		})

		require.NoError(t, err)
		f.assertExpectations(t)
	})

	t.Run("Success - Same status is a no-op", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.quotations.On("GetQuotationByID", ctx, int64(9)).Return(quotation(models.OrderStatusAccepted, ""), nil).Twice()

		_, err := f.service.UpdateStatus(ctx, 9, &models.UpdateStatusRequest{OrderStatus: models.OrderStatusAccepted})

		require.NoError(t, err)
		f.quotations.AssertNotCalled(t, "TransitionOrderStatus", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("Failure - Payment proof required", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.quotations.On("GetQuotationByID", ctx, int64(9)).Return(quotation(models.OrderStatusAwaitingPayment, ""), nil).Once()

		q, err := f.service.UpdateStatus(ctx, 9, &models.UpdateStatusRequest{OrderStatus: models.OrderStatusPaymentReceived})

		assert.Nil(t, q)
		assertAppErrorCode(t, err, appErrors.ErrCodePaymentProofRequired)
		f.assertExpectations(t)
	})

	t.Run("Failure - Cannot leave post-payment", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.quotations.On("GetQuotationByID", ctx, int64(9)).Return(quotation(models.OrderStatusShipped, "p.png"), nil).Once()

		q, err := f.service.UpdateStatus(ctx, 9, &models.UpdateStatusRequest{OrderStatus: models.OrderStatusRejected})

		assert.Nil(t, q)
		assertAppErrorCode(t, err, appErrors.ErrCodeIrreversibleState)
		f.assertExpectations(t)
	})

	t.Run("Failure - Concurrent change", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.quotations.On("GetQuotationByID", ctx, int64(9)).Return(quotation(models.OrderStatusAwaitingPayment, "p.png"), nil).Once()
		f.quotations.On("TransitionOrderStatus", ctx, int64(9), mock.AnythingOfType("models.OrderTransition")).Return(repository.ErrStatusChanged).Once()

		q, err := f.service.UpdateStatus(ctx, 9, &models.UpdateStatusRequest{OrderStatus: models.OrderStatusPaymentReceived})

		assert.Nil(t, q)
		assertAppErrorCode(t, err, appErrors.ErrCodeConflict)
		f.assertExpectations(t)
	})

	t.Run("Failure - Nothing to update", func(t *testing.T) {
		f := newQuotationFixture(t)

		q, err := f.service.UpdateStatus(ctx, 9, &models.UpdateStatusRequest{})

		assert.Nil(t, q)
		assertAppErrorCode(t, err, appErrors.ErrCodeValidation)
	})
}

func TestQuotationService_AttachPaymentProof(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Stored and recorded", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.quotations.On("GetQuotationByID", ctx, int64(5)).Return(&models.Quotation{ID: 5}, nil).Once()
		f.quotations.On("AttachPaymentProof", ctx, int64(5), mock.MatchedBy(func(path string) bool {
			return strings.HasPrefix(path, "payment_proofs/COT5-") && strings.HasSuffix(path, ".png")
		})).Return(nil).Once()

		q, err := f.service.AttachPaymentProof(ctx, 5, "image/png", strings.NewReader("png-bytes"))

		require.NoError(t, err)
		assert.True(t, q.HasPaymentProof())

		file, err := f.media.Open(q.PaymentProof)
		require.NoError(t, err)
		_ = file.Close()

		f.assertExpectations(t)
	})

	t.Run("Failure - Unsupported type", func(t *testing.T) {
		f := newQuotationFixture(t)

		q, err := f.service.AttachPaymentProof(ctx, 5, "text/plain", strings.NewReader("x"))

		assert.Nil(t, q)
		assertAppErrorCode(t, err, appErrors.ErrCodeValidation)
	})

	t.Run("Failure - Too large", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.quotations.On("GetQuotationByID", ctx, int64(5)).Return(&models.Quotation{ID: 5}, nil).Once()

		q, err := f.service.AttachPaymentProof(ctx, 5, "application/pdf", strings.NewReader(strings.Repeat("a", 2048)))

		assert.Nil(t, q)
		assertAppErrorCode(t, err, appErrors.ErrCodeBadRequest)
		f.quotations.AssertNotCalled(t, "AttachPaymentProof", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestQuotationService_DeleteQuotation(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Unpaid quotation", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.quotations.On("GetQuotationByID", ctx, int64(3)).Return(&models.Quotation{ID: 3, OrderStatus: models.OrderStatusAccepted}, nil).Once()
		f.quotations.On("DeleteQuotation", ctx, int64(3), false).Return(nil).Once()

		require.NoError(t, f.service.DeleteQuotation(ctx, 3, false))
		f.assertExpectations(t)
	})

	t.Run("Failure - Paid quotation needs superuser", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.quotations.On("GetQuotationByID", ctx, int64(3)).Return(&models.Quotation{ID: 3, OrderStatus: models.OrderStatusReceived}, nil).Once()

		err := f.service.DeleteQuotation(ctx, 3, false)

		assertAppErrorCode(t, err, appErrors.ErrCodeProtectedRecord)
		f.quotations.AssertNotCalled(t, "DeleteQuotation", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - Superuser deletes paid quotation", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.quotations.On("GetQuotationByID", ctx, int64(3)).Return(&models.Quotation{ID: 3, OrderStatus: models.OrderStatusReceived}, nil).Once()
		f.quotations.On("DeleteQuotation", ctx, int64(3), true).Return(nil).Once()

		require.NoError(t, f.service.DeleteQuotation(ctx, 3, true))
		f.assertExpectations(t)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.quotations.On("GetQuotationByID", ctx, int64(3)).Return(nil, sql.ErrNoRows).Once()

		assertAppErrorCode(t, f.service.DeleteQuotation(ctx, 3, true), appErrors.ErrCodeNotFound)
	})

	t.Run("Failure - Payment lands between read and delete", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.quotations.On("GetQuotationByID", ctx, int64(3)).Return(&models.Quotation{ID: 3, OrderStatus: models.OrderStatusAwaitingPayment}, nil).Once()
		f.quotations.On("DeleteQuotation", ctx, int64(3), false).Return(repository.ErrPaidQuotation).Once()

		assertAppErrorCode(t, f.service.DeleteQuotation(ctx, 3, false), appErrors.ErrCodeProtectedRecord)
		f.assertExpectations(t)
	})

	t.Run("Failure - Deleted between read and delete", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.quotations.On("GetQuotationByID", ctx, int64(3)).Return(&models.Quotation{ID: 3, OrderStatus: models.OrderStatusAccepted}, nil).Once()
		f.quotations.On("DeleteQuotation", ctx, int64(3), false).Return(sql.ErrNoRows).Once()

		assertAppErrorCode(t, f.service.DeleteQuotation(ctx, 3, false), appErrors.ErrCodeNotFound)
	})
}

func TestQuotationService_ListSales(t *testing.T) {
	f := newQuotationFixture(t)
	ctx := context.Background()

	f.quotations.On("ListQuotations", ctx, models.QuotationFilter{
		OrderStatus: models.OrderStatusPaymentReceived,
		Page:        1,
		PageSize:    10,
	}).Return([]*models.Quotation{{ID: 1}}, 1, nil).Once()

	sales, total, err := f.service.ListSales(ctx, 1, 10)

	require.NoError(t, err)
	assert.Len(t, sales, 1)
	assert.Equal(t, 1, total)
	f.assertExpectations(t)
}

func TestQuotationService_CreateQuotation_DeliveryIsBestEffort(t *testing.T) {
	ctx := context.Background()
	guest := models.GuestClient{
		ClientKind:    models.ClientKindNatural,
		Address:       "Calle 5 #10-20",
		ClientContact: models.ClientContact{Name: "Pedro", Email: "pedro@example.com", Phone: "3110000000", Departamento: "Antioquia", City: "Envigado"},
	}
	input := service.NewQuotationInput{Client: guest, Items: models.CartItems{"2": 3}, Origin: service.OriginGuestCheckout, Notify: true}

	expectCreate := func(f *quotationFixture) {
		f.quotations.On("CreateQuotation", ctx, mock.AnythingOfType("*models.Quotation"), mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Quotation).ID = 90
		}).Return(nil).Once()
	}

	t.Run("Success - Renderer failure still notifies without a document", func(t *testing.T) {
		f := newQuotationFixture(t)
		f.rebuild(func(d *service.QuotationDeps) { d.Renderer = failingRenderer{} })

		f.products.On("GetProductsByIDs", ctx, mock.Anything).Return(catalog(), nil).Twice()
		expectCreate(f)

		q, err := f.service.CreateQuotation(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, int64(90), q.ID)
		require.Len(t, f.notifier.sent, 1)
		assert.Nil(t, f.notifier.sent[0].doc)
		f.assertExpectations(t)
	})

	t.Run("Success - Product lookup failure while rendering", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.products.On("GetProductsByIDs", ctx, mock.Anything).Return(catalog(), nil).Once()
		f.products.On("GetProductsByIDs", ctx, mock.Anything).Return(nil, errors.New("connection reset")).Once()
		expectCreate(f)

		q, err := f.service.CreateQuotation(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, int64(90), q.ID)
		require.Len(t, f.notifier.sent, 1)
		require.NotNil(t, f.notifier.sent[0].doc)
		assert.NotEmpty(t, f.notifier.sent[0].doc.Data)
	})

	t.Run("Success - Telegram and delivery log both failing", func(t *testing.T) {
		f := newQuotationFixture(t)

		notifications := new(mocks.NotificationRepository)
		notifications.On("CreateNotification", mock.Anything, mock.Anything).Return(errors.New("db down"))
		tg := &fakeTelegram{enabled: true, messageErr: errors.New("telegram: 502"), documentErr: errors.New("telegram: 502")}
		f.rebuild(func(d *service.QuotationDeps) {
			d.Notifier = service.NewNotificationService(notifications, tg, &fakeEmail{err: errors.New("sendgrid: 401")}, "-100", testStore)
		})

		f.products.On("GetProductsByIDs", ctx, mock.Anything).Return(catalog(), nil).Twice()
		expectCreate(f)

		q, err := f.service.CreateQuotation(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, int64(90), q.ID)
		assert.NotEmpty(t, tg.messages)
		f.quotations.AssertExpectations(t)
	})
}
