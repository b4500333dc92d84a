package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/models"
	service "github.com/frozz/storefront/internal/services"
	"github.com/frozz/storefront/internal/utils"
	"github.com/frozz/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const (
	paymentProofField = "payment_proof"
	multipartMemory   = 1 << 20
)

type QuotationHandler struct {
	quotationService service.QuotationService
	validator        *validator.Validate
	maxProofSize     int64
}

func NewQuotationHandler(quotationService service.QuotationService, maxProofSize int64) *QuotationHandler {
	return &QuotationHandler{
		quotationService: quotationService,
		validator:        validator.New(),
		maxProofSize:     maxProofSize,
	}
}

func pdfURL(id int64) string {
	return fmt.Sprintf("/api/v1/quotations/%d/pdf", id)
}

// Checkout godoc
//
//	@Summary		Check out the user's cart
//	@Description	Snapshots the cart into a quotation, clears the cart and notifies staff. Delivery fields may come from a saved address.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.RegisteredCheckoutRequest	true	"Delivery details"
//	@Success		201			{object}	models.CheckoutResult				"Created quotation and its PDF link"
//	@Failure		400			{object}	response.ErrorResponse				"Empty cart or missing delivery fields"
//	@Failure		401			{object}	response.ErrorResponse				"Authentication required"
//	@Failure		500			{object}	response.ErrorResponse				"Internal server error"
//	@Security		BearerAuth
//	@Router			/checkout [post]
func (h *QuotationHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "checkout")
		if !ok {
			return
		}

		var req models.RegisteredCheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		q, err := h.quotationService.CheckoutRegistered(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Checkout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout completed", slog.Int64("quotationId", q.ID))
		response.Success(w, http.StatusCreated, models.CheckoutResult{Quotation: q, PDFURL: pdfURL(q.ID)})
	}
}

// GuestCheckout godoc
//
//	@Summary		Check out the session cart
//	@Description	Anonymous checkout. Contact and delivery fields are all reported at once when missing.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.GuestCheckoutRequest	true	"Contact and delivery details"
//	@Success		201			{object}	models.CheckoutResult		"Created quotation and its PDF link"
//	@Failure		400			{object}	response.ErrorResponse		"Empty cart or missing fields"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Router			/checkout/guest [post]
func (h *QuotationHandler) GuestCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.GuestCheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid guest checkout input")
			return
		}

		q, err := h.quotationService.CheckoutGuest(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Guest checkout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Guest checkout completed", slog.Int64("quotationId", q.ID))
		response.Success(w, http.StatusCreated, models.CheckoutResult{Quotation: q, PDFURL: pdfURL(q.ID)})
	}
}

// ListQuotations godoc
//
//	@Summary		List quotations (staff)
//	@Tags			Quotations
//	@Produce		json
//	@Param			q				query		string													false	"Client name, email or phone"
//	@Param			status			query		string													false	"Quotation status"
//	@Param			order_status	query		string													false	"Order status"
//	@Param			mine			query		bool													false	"Only quotations created by the caller"
//	@Param			page			query		int														false	"Page number (default: 1)"
//	@Param			pageSize		query		int														false	"Items per page (default: 10, max: 100)"
//	@Success		200				{object}	models.PaginatedResponse{Data=[]models.Quotation}	"Quotations, newest first"
//	@Failure		400				{object}	response.ErrorResponse									"Unknown status"
//	@Security		BearerAuth
//	@Router			/quotations [get]
func (h *QuotationHandler) ListQuotations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "list quotations")
		if !ok {
			return
		}

		query := r.URL.Query()
		page, pageSize := utils.Pagination(r)

		filter := models.QuotationFilter{
			ClientSearch:    strings.TrimSpace(query.Get("q")),
			QuotationStatus: models.QuotationStatus(query.Get("status")),
			OrderStatus:     models.OrderStatus(query.Get("order_status")),
			Page:            page,
			PageSize:        pageSize,
		}

		if mine, _ := strconv.ParseBool(query.Get("mine")); mine {
			filter.CreatedBy = &claims.UserID
		}

		quotations, total, err := h.quotationService.ListQuotations(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list quotations", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Quotations listed", slog.Int("count", len(quotations)), slog.Int("total", total))
		response.Success(w, http.StatusOK, paginated(quotations, total, page, pageSize))
	}
}

// MyQuotations godoc
//
//	@Summary		List the caller's quotations
//	@Tags			Quotations
//	@Produce		json
//	@Param			page		query		int														false	"Page number (default: 1)"
//	@Param			pageSize	query		int														false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Quotation}	"Quotations"
//	@Failure		401			{object}	response.ErrorResponse									"Authentication required"
//	@Security		BearerAuth
//	@Router			/quotations/mine [get]
func (h *QuotationHandler) MyQuotations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "list own quotations")
		if !ok {
			return
		}

		page, pageSize := utils.Pagination(r)

		quotations, total, err := h.quotationService.ListClientQuotations(r.Context(), claims.UserID, page, pageSize)
		if err != nil {
			logger.Error("Failed to list client quotations", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, paginated(quotations, total, page, pageSize))
	}
}

// ListSales godoc
//
//	@Summary		List sales (staff)
//	@Description	Quotations whose payment was received.
//	@Tags			Quotations
//	@Produce		json
//	@Param			page		query		int														false	"Page number (default: 1)"
//	@Param			pageSize	query		int														false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Quotation}	"Sales"
//	@Security		BearerAuth
//	@Router			/sales [get]
func (h *QuotationHandler) ListSales() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		page, pageSize := utils.Pagination(r)

		sales, total, err := h.quotationService.ListSales(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list sales", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, paginated(sales, total, page, pageSize))
	}
}

// GetQuotation godoc
//
//	@Summary		Get a quotation
//	@Tags			Quotations
//	@Produce		json
//	@Param			id	path		int						true	"Quotation ID"
//	@Success		200	{object}	models.Quotation		"Quotation with its lines"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid quotation id"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Quotation not found"
//	@Security		BearerAuth
//	@Router			/quotations/{id} [get]
func (h *QuotationHandler) GetQuotation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			logger.Warn("Invalid quotation id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		q, ok := h.visibleQuotation(w, r, id)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, q)
	}
}

// visibleQuotation loads the quotation and hides it, as not found, from
// callers that are neither staff nor its owner.
func (h *QuotationHandler) visibleQuotation(w http.ResponseWriter, r *http.Request, id int64) (*models.Quotation, bool) {
	claims, logger, ok := requireClaims(w, r, "view quotation")
	if !ok {
		return nil, false
	}

	q, err := h.quotationService.GetQuotation(r.Context(), id)
	if err != nil {
		logger.Warn("Failed to get quotation", slog.Int64("quotationId", id), slog.Any("error", err))
		response.Error(w, err)
		return nil, false
	}

	if !q.VisibleTo(claims) {
		logger.Warn("Quotation hidden from non-owner", slog.Int64("quotationId", id))
		response.Error(w, errors.NotFoundError("Quotation not found"))
		return nil, false
	}

	return q, true
}

// DownloadPDF godoc
//
//	@Summary		Download the quotation PDF
//	@Tags			Quotations
//	@Produce		application/pdf
//	@Param			id	path		int						true	"Quotation ID"
//	@Success		200	{file}		file					"PDF document"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Quotation not found"
//	@Security		BearerAuth
//	@Router			/quotations/{id}/pdf [get]
func (h *QuotationHandler) DownloadPDF() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		q, ok := h.visibleQuotation(w, r, id)
		if !ok {
			return
		}

		doc, err := h.quotationService.RenderDocument(r.Context(), q)
		if err != nil {
			logger.Error("Failed to render quotation", slog.Int64("quotationId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		w.Header().Set("Content-Type", doc.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, doc.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(doc.Data); err != nil {
			logger.Warn("Failed to write quotation PDF", slog.Any("error", err))
		}
	}
}

// UpdateStatus godoc
//
//	@Summary		Update quotation and order status (staff)
//	@Description	Moving the order into a paid state requires a payment proof and deducts stock exactly once. Paid orders cannot go back.
//	@Tags			Quotations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Quotation ID"
//	@Param			status	body		models.UpdateStatusRequest	true	"New statuses"
//	@Success		200		{object}	models.Quotation			"Updated quotation"
//	@Failure		400		{object}	response.ErrorResponse		"Unknown status or payment proof required"
//	@Failure		404		{object}	response.ErrorResponse		"Quotation not found"
//	@Failure		409		{object}	response.ErrorResponse		"Irreversible state or concurrent change"
//	@Security		BearerAuth
//	@Router			/quotations/{id}/status [patch]
func (h *QuotationHandler) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "update quotation status")
		if !ok {
			return
		}

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update status input")
			return
		}

		if req.QuotationStatus == "" && req.OrderStatus == "" {
			response.Error(w, errors.ValidationError("Nothing to update"))
			return
		}

		logger = logger.With(
			slog.Int64("quotationId", id),
			slog.String("quotationStatus", string(req.QuotationStatus)),
			slog.String("orderStatus", string(req.OrderStatus)),
		)

		q, err := h.quotationService.UpdateStatus(r.Context(), id, &req)
		if err != nil {
			logger.Warn("Failed to update quotation status", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Quotation status updated", slog.String("updatedBy", claims.Email))
		response.Success(w, http.StatusOK, q)
	}
}

// UploadPaymentProof godoc
//
//	@Summary		Attach a payment proof (staff)
//	@Description	Multipart upload of a JPEG, PNG, WEBP image or a PDF. Replaces any previous proof.
//	@Tags			Quotations
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id				path		int						true	"Quotation ID"
//	@Param			payment_proof	formData	file					true	"Proof file"
//	@Success		200				{object}	models.Quotation		"Updated quotation"
//	@Failure		400				{object}	response.ErrorResponse	"Missing, oversized or unsupported file"
//	@Failure		404				{object}	response.ErrorResponse	"Quotation not found"
//	@Security		BearerAuth
//	@Router			/quotations/{id}/payment-proof [post]
func (h *QuotationHandler) UploadPaymentProof() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.Int64("quotationId", id))

		if h.maxProofSize > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxProofSize+multipartMemory)
		}

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			logger.Warn("Invalid multipart payload", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Invalid multipart payload").WithDetail(err.Error()))
			return
		}

		file, header, err := r.FormFile(paymentProofField)
		if err != nil {
			response.Error(w, errors.MissingFieldsError([]string{paymentProofField}))
			return
		}
		defer file.Close()

		q, err := h.quotationService.AttachPaymentProof(r.Context(), id, header.Header.Get("Content-Type"), file)
		if err != nil {
			logger.Warn("Failed to attach payment proof", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Payment proof attached", slog.String("filename", header.Filename), slog.Int64("size", header.Size))
		response.Success(w, http.StatusOK, q)
	}
}

// DeleteQuotation godoc
//
//	@Summary		Delete a quotation (staff)
//	@Description	Quotations whose payment was received can only be deleted by a superuser.
//	@Tags			Quotations
//	@Param			id	path	int	true	"Quotation ID"
//	@Success		204
//	@Failure		403	{object}	response.ErrorResponse	"Protected record"
//	@Failure		404	{object}	response.ErrorResponse	"Quotation not found"
//	@Security		BearerAuth
//	@Router			/quotations/{id} [delete]
func (h *QuotationHandler) DeleteQuotation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "delete quotation")
		if !ok {
			return
		}

		id, err := utils.ParseInt64(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.quotationService.DeleteQuotation(r.Context(), id, claims.IsSuperuser); err != nil {
			logger.Warn("Failed to delete quotation", slog.Int64("quotationId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
