package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Christiandike/celo-mondo/internal/core"
	"github.com/Christiandike/celo-mondo/internal/http/handler/middleware"
	"github.com/Christiandike/celo-mondo/internal/http/payload"
	tokenIssuer "github.com/Christiandike/celo-mondo/pkg/jwt"

	"go.uber.org/zap"
)

var (
	Activate       = "POST /mondo/activate"
	Authenticate   = "POST /mondo/authenticate"
	GetActivations = "GET /mondo/activations"
	Health         = "GET /mondo/health"
)

type MondoHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	relayer          RelayService
}

func NewMondoHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, relayService RelayService) *MondoHandler {
	return &MondoHandler{
		logs:             logger,
		requestValidator: requestValidator,
		relayer:          relayService,
	}
}

func (h *MondoHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	var payload payload.ActivationRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not activate stake",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Activate,
			"request_id", requestId)
		return
	}

	h.logs.Infow("activation request received",
		"staker", payload.Address,
		"vote_tx_hash", payload.TransactionHash,
		"handler", Activate,
		"request_id", requestId)

	record, err := h.relayer.ActivateStake(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Could not activate stake",
			Error:   err.Error(),
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrAlreadyActivated) || errors.Is(err, core.ErrRelayInProgress) {
			httpCode = http.StatusConflict
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("stake activation failed",
			"error", err,
			"handler", Activate,
			"request_id", requestId)
		return
	}

	h.logs.Infow("stake activation relayed",
		"staker", record.Staker,
		"activation_tx_hash", record.ActivationTxHash,
		"handler", Activate,
		"request_id", requestId)

	h.respond(w, Response{
		Message: fmt.Sprintf("Stake activation relayed in transaction %s", record.ActivationTxHash),
		Data:    record,
	}, http.StatusOK, requestId)
}

func (h *MondoHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	var payload payload.AuthRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.relayer.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *MondoHandler) HandleGetActivations(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	authToken := r.Header.Get("AUTH_TOKEN")
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", GetActivations, "request_id", requestId)
		return
	}

	query := payload.ActivationsQuery{
		Staker: r.URL.Query().Get("staker"),
	}
	if err := query.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate query parameters",
			"error", err,
			"handler", GetActivations,
			"request_id", requestId)
		return
	}

	activations, err := h.relayer.GetActivations(r.Context(), authToken, query.Staker)
	if err != nil {
		resp := Response{
			Message: "Failed to get activations",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, tokenIssuer.ErrTokenNotValid) || errors.Is(err, tokenIssuer.ErrTokenExpired) {
			httpCode = http.StatusUnauthorized
			resp.Message = "Authentication failed"
		}
		resp.Error = fmt.Errorf("get activations: %w", err).Error()

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get activations",
			"error", err,
			"handler", GetActivations,
			"request_id", requestId)
		return
	}

	h.logs.Infow("activations retrieved",
		"count", len(activations),
		"handler", GetActivations,
		"request_id", requestId)

	resp := map[string][]core.ActivationRecord{
		"activations": activations,
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *MondoHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string]string{"status": "ok"}, http.StatusOK, "")
}

func (h *MondoHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
