package handle

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"cargo-dispatch/internal/dispatch-service/adapters/driver/myhttp/middleware"
	"cargo-dispatch/internal/dispatch-service/core/domain/dto"
	"cargo-dispatch/internal/dispatch-service/core/myerrors"
	"cargo-dispatch/internal/dispatch-service/core/ports"
	"cargo-dispatch/internal/mylogger"
)

type OrderHandler struct {
	orderService ports.IOrderService
	mylog        mylogger.Logger
}

func NewOrderHandler(orderService ports.IOrderService, mylog mylogger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		mylog:        mylog,
	}
}

func (oh *OrderHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFrom(r.Context())
		if !ok {
			jsonError(w, http.StatusForbidden, myerrors.ErrNoToken)
			return
		}

		var req dto.OrderCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		id, err := oh.orderService.Create(r.Context(), req, claims)
		if err != nil {
			if errors.Is(err, myerrors.ErrOrderExists) {
				jsonError(w, http.StatusConflict, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		jsonResponse(w, http.StatusCreated, map[string]interface{}{
			"msg": "Order created successfully",
			"id":  id,
		})
	}
}

func (oh *OrderHandler) Take() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFrom(r.Context())
		if !ok {
			jsonError(w, http.StatusForbidden, myerrors.ErrNoToken)
			return
		}

		var req dto.TakeOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		if err := oh.orderService.Take(r.Context(), req.OrderID, claims); err != nil {
			switch {
			case errors.Is(err, myerrors.ErrOrderNotFound):
				jsonError(w, http.StatusNotFound, err)
			case errors.Is(err, myerrors.ErrOrderTaken):
				jsonError(w, http.StatusConflict, err)
			default:
				jsonError(w, http.StatusInternalServerError, err)
			}
			return
		}

		jsonResponse(w, http.StatusAccepted, map[string]string{
			"msg": "Order has been taken",
		})
	}
}

func (oh *OrderHandler) Available() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := oh.orderService.Available(r.Context())
		if err != nil {
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		jsonResponse(w, http.StatusOK, res)
	}
}

func (oh *OrderHandler) Mine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFrom(r.Context())
		if !ok {
			jsonError(w, http.StatusForbidden, myerrors.ErrNoToken)
			return
		}

		res, err := oh.orderService.Mine(r.Context(), claims)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		jsonResponse(w, http.StatusOK, res)
	}
}

func (oh *OrderHandler) Remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFrom(r.Context())
		if !ok {
			jsonError(w, http.StatusForbidden, myerrors.ErrNoToken)
			return
		}

		orderID, err := strconv.ParseInt(r.URL.Query().Get("order_id"), 10, 64)
		if err != nil {
			jsonError(w, http.StatusNotFound, myerrors.ErrOrderNotFound)
			return
		}

		if err := oh.orderService.Remove(r.Context(), orderID, claims); err != nil {
			if errors.Is(err, myerrors.ErrOrderNotFound) {
				jsonError(w, http.StatusNotFound, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		jsonResponse(w, http.StatusAccepted, map[string]string{
			"msg": "Order with id " + strconv.FormatInt(orderID, 10) + " has been deleted",
		})
	}
}
