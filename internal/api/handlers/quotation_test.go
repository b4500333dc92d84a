package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/frozz/storefront/internal/api/handlers"
	appErrors "github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/models"
	service "github.com/frozz/storefront/internal/services"
	"github.com/frozz/storefront/internal/services/mocks"
	"github.com/frozz/storefront/internal/testutils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testMaxProofSize = 1 << 20

func setupQuotationTest(t *testing.T) (*mocks.QuotationService, *handlers.QuotationHandler) {
	mockQuotationService := mocks.NewQuotationService(t)
	return mockQuotationService, handlers.NewQuotationHandler(mockQuotationService, testMaxProofSize)
}

func sampleQuotationModel(id int64) *models.Quotation {
	return &models.Quotation{
		ID:              id,
		ClientKind:      models.ClientKindExisting,
		ClientName:      "Ana Pérez",
		ClientEmail:     "ana@example.com",
		ClientCity:      "Medellín",
		Total:           decimal.NewFromInt(10900),
		QuotationStatus: models.QuotationStatusGenerated,
		OrderStatus:     models.OrderStatusNoResponse,
	}
}

func TestCheckout(t *testing.T) {
	t.Run("Success - Registered Checkout", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)
		userID := uuid.New()
		addressID := int64(4)

		mockQuotationService.On("CheckoutRegistered", mock.Anything, userID, mock.MatchedBy(func(req *models.RegisteredCheckoutRequest) bool {
			return req.AddressID != nil && *req.AddressID == addressID
		})).Return(sampleQuotationModel(31), nil).Once()

		body, _ := json.Marshal(models.RegisteredCheckoutRequest{AddressID: &addressID})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/checkout", bytes.NewReader(body), userID, nil)
		rr := httptest.NewRecorder()

		quotationHandler.Checkout().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var result models.CheckoutResult
		decodeData(t, rr, &result)
		assert.Equal(t, int64(31), result.Quotation.ID)
		assert.Equal(t, "/api/v1/quotations/31/pdf", result.PDFURL)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)
		userID := uuid.New()

		mockQuotationService.On("CheckoutRegistered", mock.Anything, userID, mock.Anything).Return(nil, appErrors.EmptyCartError()).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/checkout", bytes.NewReader([]byte(`{}`)), userID, nil)
		rr := httptest.NewRecorder()

		quotationHandler.Checkout().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeEmptyCart, decodeError(t, rr).Code)
	})

	t.Run("Failure - Anonymous", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/checkout", bytes.NewReader([]byte(`{}`)), nil)
		rr := httptest.NewRecorder()

		quotationHandler.Checkout().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockQuotationService.AssertNotCalled(t, "CheckoutRegistered", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGuestCheckout(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)
		q := sampleQuotationModel(32)
		q.ClientKind = models.ClientKindNatural

		mockQuotationService.On("CheckoutGuest", mock.Anything, "sess-9", mock.AnythingOfType("*models.GuestCheckoutRequest")).Return(q, nil).Once()

		body, _ := json.Marshal(models.GuestCheckoutRequest{
			ClientKind: models.ClientKindNatural, Name: "Ana", Email: "ana@example.com", Phone: "3001234567",
			Departamento: "Antioquia", City: "Medellín", Address: "Calle 10 # 20-30",
		})
		req := testutils.CreateSessionRequest(http.MethodPost, "/checkout/guest", bytes.NewReader(body), "sess-9", nil)
		rr := httptest.NewRecorder()

		quotationHandler.GuestCheckout().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Failure - Missing Fields Listed", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)

		mockQuotationService.On("CheckoutGuest", mock.Anything, "sess-9", mock.Anything).
			Return(nil, appErrors.MissingFieldsError([]string{"name", "phone", "city"})).Once()

		req := testutils.CreateSessionRequest(http.MethodPost, "/checkout/guest", bytes.NewReader([]byte(`{"client_kind":"natural"}`)), "sess-9", nil)
		rr := httptest.NewRecorder()

		quotationHandler.GuestCheckout().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.ElementsMatch(t, []string{"name", "phone", "city"}, decodeError(t, rr).Details)
	})

	t.Run("Failure - No Session", func(t *testing.T) {
		_, quotationHandler := setupQuotationTest(t)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/checkout/guest", bytes.NewReader([]byte(`{}`)), nil)
		rr := httptest.NewRecorder()

		quotationHandler.GuestCheckout().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListQuotations(t *testing.T) {
	t.Run("Filters And Mine", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)
		staffID := uuid.New()

		mockQuotationService.On("ListQuotations", mock.Anything, mock.MatchedBy(func(f models.QuotationFilter) bool {
			return f.ClientSearch == "ana" &&
				f.OrderStatus == models.OrderStatusAccepted &&
				f.CreatedBy != nil && *f.CreatedBy == staffID &&
				f.Page == 1 && f.PageSize == 10
		})).Return([]*models.Quotation{sampleQuotationModel(31)}, 1, nil).Once()

		req := testutils.CreateStaffRequest(http.MethodGet, "/quotations?q=ana&order_status=aceptado&mine=true", nil, staffID, false, nil)
		rr := httptest.NewRecorder()

		quotationHandler.ListQuotations().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Unknown Status", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)

		mockQuotationService.On("ListQuotations", mock.Anything, mock.Anything).
			Return(nil, 0, appErrors.AddValidationError("status", "unknown quotation status")).Once()

		req := testutils.CreateStaffRequest(http.MethodGet, "/quotations?status=lost", nil, uuid.New(), false, nil)
		rr := httptest.NewRecorder()

		quotationHandler.ListQuotations().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestMyQuotationsAndSales(t *testing.T) {
	t.Run("My Quotations", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)
		userID := uuid.New()

		mockQuotationService.On("ListClientQuotations", mock.Anything, userID, 1, 10).Return([]*models.Quotation{}, 0, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/quotations/mine", nil, userID, nil)
		rr := httptest.NewRecorder()

		quotationHandler.MyQuotations().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Sales", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)
		sale := sampleQuotationModel(40)
		sale.OrderStatus = models.OrderStatusPaymentReceived

		mockQuotationService.On("ListSales", mock.Anything, 2, 25).Return([]*models.Quotation{sale}, 26, nil).Once()

		req := testutils.CreateStaffRequest(http.MethodGet, "/sales?page=2&pageSize=25", nil, uuid.New(), false, nil)
		rr := httptest.NewRecorder()

		quotationHandler.ListSales().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var page models.PaginatedResponse
		decodeData(t, rr, &page)
		assert.Equal(t, 26, page.Total)
		assert.Equal(t, 25, page.PageSize)
	})
}

func TestGetQuotationAndPDF(t *testing.T) {
	t.Run("Get Quotation - Staff", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)

		mockQuotationService.On("GetQuotation", mock.Anything, int64(31)).Return(sampleQuotationModel(31), nil).Once()

		req := testutils.CreateStaffRequest(http.MethodGet, "/quotations/31", nil, uuid.New(), false, map[string]string{"id": "31"})
		rr := httptest.NewRecorder()

		quotationHandler.GetQuotation().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var q models.Quotation
		decodeData(t, rr, &q)
		assert.True(t, q.Total.Equal(decimal.NewFromInt(10900)))
	})

	t.Run("Get Quotation - Owning client", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)
		clientID := uuid.New()
		q := sampleQuotationModel(31)
		q.ClientUserID = &clientID

		mockQuotationService.On("GetQuotation", mock.Anything, int64(31)).Return(q, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/quotations/31", nil, clientID, map[string]string{"id": "31"})
		rr := httptest.NewRecorder()

		quotationHandler.GetQuotation().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Get Quotation - Other client sees not found", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)
		owner := uuid.New()
		q := sampleQuotationModel(31)
		q.ClientUserID = &owner

		mockQuotationService.On("GetQuotation", mock.Anything, int64(31)).Return(q, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/quotations/31", nil, uuid.New(), map[string]string{"id": "31"})
		rr := httptest.NewRecorder()

		quotationHandler.GetQuotation().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.NotContains(t, rr.Body.String(), "ana@example.com")
	})

	t.Run("Get Quotation - Anonymous", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/quotations/31", nil, map[string]string{"id": "31"})
		rr := httptest.NewRecorder()

		quotationHandler.GetQuotation().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockQuotationService.AssertNotCalled(t, "GetQuotation", mock.Anything, mock.Anything)
	})

	t.Run("Download PDF", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)
		q := sampleQuotationModel(31)
		doc := &service.QuotationDocument{Filename: "cotizacion_31.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4 fake")}

		mockQuotationService.On("GetQuotation", mock.Anything, int64(31)).Return(q, nil).Once()
		mockQuotationService.On("RenderDocument", mock.Anything, q).Return(doc, nil).Once()

		req := testutils.CreateStaffRequest(http.MethodGet, "/quotations/31/pdf", nil, uuid.New(), false, map[string]string{"id": "31"})
		rr := httptest.NewRecorder()

		quotationHandler.DownloadPDF().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "cotizacion_31.pdf")
		assert.Equal(t, fmt.Sprint(len(doc.Data)), rr.Header().Get("Content-Length"))
		assert.Equal(t, doc.Data, rr.Body.Bytes())
	})

	t.Run("Download PDF - Guest quotation hidden from clients", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)

		mockQuotationService.On("GetQuotation", mock.Anything, int64(31)).Return(sampleQuotationModel(31), nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/quotations/31/pdf", nil, uuid.New(), map[string]string{"id": "31"})
		rr := httptest.NewRecorder()

		quotationHandler.DownloadPDF().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockQuotationService.AssertNotCalled(t, "RenderDocument", mock.Anything, mock.Anything)
	})

	t.Run("PDF Of Missing Quotation", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)

		mockQuotationService.On("GetQuotation", mock.Anything, int64(99)).Return(nil, appErrors.NotFoundError("Quotation not found")).Once()

		req := testutils.CreateStaffRequest(http.MethodGet, "/quotations/99/pdf", nil, uuid.New(), false, map[string]string{"id": "99"})
		rr := httptest.NewRecorder()

		quotationHandler.DownloadPDF().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockQuotationService.AssertNotCalled(t, "RenderDocument", mock.Anything, mock.Anything)
	})
}

func TestUpdateQuotationStatus(t *testing.T) {
	t.Run("Success - Payment Received", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)
		updated := sampleQuotationModel(31)
		updated.OrderStatus = models.OrderStatusPaymentReceived

		mockQuotationService.On("UpdateStatus", mock.Anything, int64(31), &models.UpdateStatusRequest{OrderStatus: models.OrderStatusPaymentReceived}).
			Return(updated, nil).Once()

		body := []byte(`{"order_status":"pago_recibido"}`)
		req := testutils.CreateStaffRequest(http.MethodPatch, "/quotations/31/status", bytes.NewReader(body), uuid.New(), false, map[string]string{"id": "31"})
		rr := httptest.NewRecorder()

		quotationHandler.UpdateStatus().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Proof Required", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)

		mockQuotationService.On("UpdateStatus", mock.Anything, int64(31), mock.Anything).Return(nil, appErrors.PaymentProofRequiredError()).Once()

		body := []byte(`{"order_status":"pago_recibido"}`)
		req := testutils.CreateStaffRequest(http.MethodPatch, "/quotations/31/status", bytes.NewReader(body), uuid.New(), false, map[string]string{"id": "31"})
		rr := httptest.NewRecorder()

		quotationHandler.UpdateStatus().ServeHTTP(rr, req)

		assert.Equal(t, appErrors.ErrCodePaymentProofRequired, decodeError(t, rr).Code)
	})

	t.Run("Failure - Backwards From Paid", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)

		mockQuotationService.On("UpdateStatus", mock.Anything, int64(31), mock.Anything).
			Return(nil, appErrors.IrreversibleStateError("pago_recibido", "aceptado")).Once()

		body := []byte(`{"order_status":"aceptado"}`)
		req := testutils.CreateStaffRequest(http.MethodPatch, "/quotations/31/status", bytes.NewReader(body), uuid.New(), false, map[string]string{"id": "31"})
		rr := httptest.NewRecorder()

		quotationHandler.UpdateStatus().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, appErrors.ErrCodeIrreversibleState, decodeError(t, rr).Code)
	})

	t.Run("Failure - Unknown Status Value", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)

		body := []byte(`{"order_status":"lost"}`)
		req := testutils.CreateStaffRequest(http.MethodPatch, "/quotations/31/status", bytes.NewReader(body), uuid.New(), false, map[string]string{"id": "31"})
		rr := httptest.NewRecorder()

		quotationHandler.UpdateStatus().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockQuotationService.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Nothing To Update", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)

		req := testutils.CreateStaffRequest(http.MethodPatch, "/quotations/31/status", bytes.NewReader([]byte(`{}`)), uuid.New(), false, map[string]string{"id": "31"})
		rr := httptest.NewRecorder()

		quotationHandler.UpdateStatus().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockQuotationService.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

// proofBody builds a multipart payload with one file part.
func proofBody(t *testing.T, field, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="comprobante.png"`, field))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadPaymentProof(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)
		updated := sampleQuotationModel(31)
		updated.PaymentProof = "payment_proofs/2026/10/31.png"

		mockQuotationService.On("AttachPaymentProof", mock.Anything, int64(31), "image/png", mock.Anything).Return(updated, nil).Once()

		body, contentType := proofBody(t, "payment_proof", "image/png", []byte("\x89PNG\r\n\x1a\nfake"))
		req := testutils.CreateStaffRequest(http.MethodPost, "/quotations/31/payment-proof", body, uuid.New(), false, map[string]string{"id": "31"})
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		quotationHandler.UploadPaymentProof().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var q models.Quotation
		decodeData(t, rr, &q)
		assert.Equal(t, updated.PaymentProof, q.PaymentProof)
	})

	t.Run("Failure - Missing File", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)

		body, contentType := proofBody(t, "receipt", "image/png", []byte("data"))
		req := testutils.CreateStaffRequest(http.MethodPost, "/quotations/31/payment-proof", body, uuid.New(), false, map[string]string{"id": "31"})
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		quotationHandler.UploadPaymentProof().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr).Details, "payment_proof")
		mockQuotationService.AssertNotCalled(t, "AttachPaymentProof", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Not Multipart", func(t *testing.T) {
		_, quotationHandler := setupQuotationTest(t)

		req := testutils.CreateStaffRequest(http.MethodPost, "/quotations/31/payment-proof", bytes.NewReader([]byte(`{}`)), uuid.New(), false, map[string]string{"id": "31"})
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		quotationHandler.UploadPaymentProof().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Unsupported Type", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)

		mockQuotationService.On("AttachPaymentProof", mock.Anything, int64(31), "text/plain", mock.Anything).
			Return(nil, appErrors.AddValidationError("payment_proof", "unsupported file type")).Once()

		body, contentType := proofBody(t, "payment_proof", "text/plain", []byte("hello"))
		req := testutils.CreateStaffRequest(http.MethodPost, "/quotations/31/payment-proof", body, uuid.New(), false, map[string]string{"id": "31"})
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		quotationHandler.UploadPaymentProof().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteQuotation(t *testing.T) {
	t.Run("Staff Cannot Delete Paid", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)

		mockQuotationService.On("DeleteQuotation", mock.Anything, int64(40), false).
			Return(appErrors.ProtectedRecordError("Paid quotations can only be deleted by a superuser")).Once()

		req := testutils.CreateStaffRequest(http.MethodDelete, "/quotations/40", nil, uuid.New(), false, map[string]string{"id": "40"})
		rr := httptest.NewRecorder()

		quotationHandler.DeleteQuotation().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, appErrors.ErrCodeProtectedRecord, decodeError(t, rr).Code)
	})

	t.Run("Superuser Deletes", func(t *testing.T) {
		mockQuotationService, quotationHandler := setupQuotationTest(t)

		mockQuotationService.On("DeleteQuotation", mock.Anything, int64(40), true).Return(nil).Once()

		req := testutils.CreateStaffRequest(http.MethodDelete, "/quotations/40", nil, uuid.New(), true, map[string]string{"id": "40"})
		rr := httptest.NewRecorder()

		quotationHandler.DeleteQuotation().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
