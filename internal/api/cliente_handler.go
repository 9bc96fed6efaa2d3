package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/autoescuela/clientes-api/internal/api/middleware"
	"github.com/autoescuela/clientes-api/internal/api/shared"
	"github.com/autoescuela/clientes-api/internal/service"
)

// ClienteHandler handles the cliente-facing API requests: registration,
// login, listing, and the authenticated profile.
type ClienteHandler struct {
	clienteService service.ClienteService
	validator      *validator.Validate
	logger         *slog.Logger
}

// NewClienteHandler creates a new ClienteHandler with the given dependencies.
func NewClienteHandler(clienteService service.ClienteService, logger *slog.Logger) *ClienteHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClienteHandler{
		clienteService: clienteService,
		validator:      validator.New(),
		logger:         logger.With("component", "cliente_handler"),
	}
}

// Register handles POST /api/clientes.
func (h *ClienteHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterClienteRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgCuerpoInvalido)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgCamposObligatorios)
		return
	}

	cliente, err := h.clienteService.Register(r.Context(), service.RegisterInput{
		Nombre:   req.Nombre,
		Correo:   req.Correo,
		NumLic:   req.NumLic,
		Password: req.Password,
	})
	if err != nil {
		status := MapErrorToStatusCode(err)
		message := GetSafeErrorMessage(err, "Error al registrar el cliente")
		if status >= http.StatusInternalServerError {
			shared.RespondWithErrorAndLog(w, r, status, message, err)
		} else {
			shared.RespondWithError(w, r, status, message)
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		Mensaje: "Cliente registrado exitosamente",
		Cliente: toClienteResponse(cliente),
	})
}

// Login handles POST /api/clientes/login.
func (h *ClienteHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgCuerpoInvalido)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgCorreoPasswordFaltan)
		return
	}

	token, cliente, err := h.clienteService.Login(r.Context(), req.Correo, req.Password)
	if err != nil {
		status := MapErrorToStatusCode(err)
		message := GetSafeErrorMessage(err, "Error al iniciar sesión")
		if status >= http.StatusInternalServerError {
			shared.RespondWithErrorAndLog(w, r, status, message, err)
		} else {
			shared.RespondWithError(w, r, status, message)
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Mensaje: "Login exitoso",
		Token:   token,
		Cliente: toClienteResponse(cliente),
	})
}

// List handles GET /api/clientes.
func (h *ClienteHandler) List(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.clienteService.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Error al obtener la lista de clientes", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListResponse{
		Mensaje:  "Clientes encontrados",
		Clientes: toClienteListItems(clientes),
	})
}

// Profile handles GET /api/clientes/me. The auth middleware has already
// validated the token and stored the cliente ID in the request context.
func (h *ClienteHandler) Profile(w http.ResponseWriter, r *http.Request) {
	clienteID, ok := middleware.GetClienteID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, MsgCredencialesInvalidas)
		return
	}

	cliente, err := h.clienteService.Get(r.Context(), clienteID)
	if err != nil {
		status := MapErrorToStatusCode(err)
		message := GetSafeErrorMessage(err, "Error al obtener el cliente")
		if status >= http.StatusInternalServerError {
			shared.RespondWithErrorAndLog(w, r, status, message, err)
		} else {
			shared.RespondWithError(w, r, status, message)
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{
		Mensaje: "Cliente encontrado",
		Cliente: toClienteResponse(cliente),
	})
}
