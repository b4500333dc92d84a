package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/models"
	service "github.com/frozz/storefront/internal/services"
	"github.com/frozz/storefront/internal/utils"
	"github.com/frozz/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ClientHandler struct {
	clientService service.ClientService
	validator     *validator.Validate
}

func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService, validator: validator.New()}
}

// ListClients godoc
//
//	@Summary		List client accounts (staff)
//	@Tags			Clients
//	@Produce		json
//	@Param			q			query		string												false	"Name, email or phone"
//	@Param			page		query		int													false	"Page number (default: 1)"
//	@Param			pageSize	query		int													false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.User}	"Clients"
//	@Security		BearerAuth
//	@Router			/clients [get]
func (h *ClientHandler) ListClients() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		page, pageSize := utils.Pagination(r)

		clients, total, err := h.clientService.ListClients(r.Context(), strings.TrimSpace(r.URL.Query().Get("q")), page, pageSize)
		if err != nil {
			logger.Error("Failed to list clients", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, paginated(clients, total, page, pageSize))
	}
}

// CreateClient godoc
//
//	@Summary		Create a client account (staff)
//	@Description	A password is generated when none is given. The plain password is only returned here.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			client	body		models.CreateClientRequest	true	"Client"
//	@Success		201		{object}	models.CreatedClient		"Client and its password"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		409		{object}	response.ErrorResponse		"Email already registered"
//	@Security		BearerAuth
//	@Router			/clients [post]
func (h *ClientHandler) CreateClient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateClientRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid client input")
			return
		}

		created, err := h.clientService.CreateClient(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to create client", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, created)
	}
}

// RegeneratePassword godoc
//
//	@Summary		Regenerate a client password (staff)
//	@Tags			Clients
//	@Produce		json
//	@Param			id	path		string					true	"Client ID"	Format(uuid)
//	@Success		200	{object}	models.CreatedClient	"Client and its new password"
//	@Failure		403	{object}	response.ErrorResponse	"Staff accounts are excluded"
//	@Failure		404	{object}	response.ErrorResponse	"Client not found"
//	@Security		BearerAuth
//	@Router			/clients/{id}/password [post]
func (h *ClientHandler) RegeneratePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseUUID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		created, err := h.clientService.RegeneratePassword(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to regenerate password", slog.String("clientId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, created)
	}
}
