// Package handlers provides http.HandlerFunc handler functions to be used for endpoints.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/api/rest/modeldto"
	serviceErrors "github.com/danilovkiri/dk_go_sharegourmet/internal/service/errors"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelshop"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/reconciler"
	storageErrors "github.com/danilovkiri/dk_go_sharegourmet/internal/storage/errors"
)

// StoreTimeout bounds handlers that only touch the store.
const StoreTimeout = 500 * time.Millisecond

// ShopHandler defines data structure handling and provides support for adding new implementations.
type ShopHandler struct {
	reconciler reconciler.Reconciler
	log        *zap.Logger
}

// InitShopHandler initializes a ShopHandler object and sets its attributes.
func InitShopHandler(rec reconciler.Reconciler, log *zap.Logger) (*ShopHandler, error) {
	if rec == nil {
		return nil, errors.New("nil Reconciler Service was passed to Shop Handler initializer")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ShopHandler{reconciler: rec, log: log}, nil
}

// HandleSearch proxies a search to the gourmet API and returns normalized shops, or a mapping
// of id to shop when the body carries ids.
func (h *ShopHandler) HandleSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req modeldto.RequestSearch
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeJSON(w, http.StatusBadRequest, modeldto.ResponseError{Error: "invalid request body", Details: err.Error()})
			return
		}
		if req.ID == "" && len(req.IDs) > 0 {
			h.writeJSON(w, http.StatusOK, h.reconciler.ResolveBulk(r.Context(), req.IDs))
			return
		}
		shops, err := h.reconciler.Search(r.Context(), modelshop.Query{
			Keyword:   req.Keyword,
			Genre:     req.Genre,
			SmallArea: req.SmallArea,
			ID:        req.ID,
		})
		var malformed *serviceErrors.UpstreamMalformedError
		if err != nil && !errors.As(err, &malformed) {
			h.writeError(w, "HandleSearch", err)
			return
		}
		if shops == nil {
			shops = []modelshop.Shop{}
		}
		h.writeJSON(w, http.StatusOK, shops)
	}
}

// HandleGetShop resolves one shop store-first and reports the resulting view state.
func (h *ShopHandler) HandleGetShop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		persist, _ := strconv.ParseBool(r.URL.Query().Get("persist"))
		opts := reconciler.ResolveOptions{
			GroupID: r.URL.Query().Get("group"),
			Private: r.URL.Query().Get("type") == "private",
			Persist: persist,
		}
		detail, err := h.reconciler.Resolve(r.Context(), middleware.AuthFromContext(r.Context()), chi.URLParam(r, "id"), opts)
		switch detail.State {
		case modelshop.StateLoaded:
			h.writeJSON(w, http.StatusOK, detail)
		case modelshop.StateNotFound:
			h.writeJSON(w, http.StatusNotFound, detail)
		default:
			var (
				authErr  *serviceErrors.AuthenticationRequiredError
				inputErr *serviceErrors.ServiceIncorrectInput
			)
			if errors.As(err, &authErr) || errors.As(err, &inputErr) {
				h.writeError(w, "HandleGetShop", err)
				return
			}
			h.log.Warn("HandleGetShop", zap.Error(err))
			h.writeJSON(w, http.StatusBadGateway, detail)
		}
	}
}

// HandleShare upserts the posted shop into a group.
func (h *ShopHandler) HandleShare() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), StoreTimeout)
		defer cancel()
		var shop modelshop.Shop
		if err := json.NewDecoder(r.Body).Decode(&shop); err != nil {
			h.writeJSON(w, http.StatusBadRequest, modeldto.ResponseError{Error: "invalid request body", Details: err.Error()})
			return
		}
		shared, err := h.reconciler.Share(ctx, middleware.AuthFromContext(r.Context()), shop, chi.URLParam(r, "groupID"))
		if err != nil {
			h.writeError(w, "HandleShare", err)
			return
		}
		h.writeJSON(w, http.StatusCreated, shared)
	}
}

// HandleListShared returns the shops of a group.
func (h *ShopHandler) HandleListShared() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), StoreTimeout)
		defer cancel()
		shops, err := h.reconciler.ListShared(ctx, chi.URLParam(r, "groupID"))
		if err != nil {
			h.writeError(w, "HandleListShared", err)
			return
		}
		h.writeJSON(w, http.StatusOK, shops)
	}
}

// HandleSave upserts the posted shop into the caller's bookmarks.
func (h *ShopHandler) HandleSave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), StoreTimeout)
		defer cancel()
		var shop modelshop.Shop
		if err := json.NewDecoder(r.Body).Decode(&shop); err != nil {
			h.writeJSON(w, http.StatusBadRequest, modeldto.ResponseError{Error: "invalid request body", Details: err.Error()})
			return
		}
		saved, err := h.reconciler.Save(ctx, middleware.AuthFromContext(r.Context()), shop)
		if err != nil {
			h.writeError(w, "HandleSave", err)
			return
		}
		h.writeJSON(w, http.StatusCreated, saved)
	}
}

// HandleListPrivate returns the caller's bookmarks.
func (h *ShopHandler) HandleListPrivate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), StoreTimeout)
		defer cancel()
		shops, err := h.reconciler.ListPrivate(ctx, middleware.AuthFromContext(r.Context()))
		if err != nil {
			h.writeError(w, "HandleListPrivate", err)
			return
		}
		h.writeJSON(w, http.StatusOK, shops)
	}
}

// HandleCreateGroup creates a group owned by the caller.
func (h *ShopHandler) HandleCreateGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), StoreTimeout)
		defer cancel()
		var req modeldto.RequestGroup
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeJSON(w, http.StatusBadRequest, modeldto.ResponseError{Error: "invalid request body", Details: err.Error()})
			return
		}
		group, err := h.reconciler.CreateGroup(ctx, middleware.AuthFromContext(r.Context()), req.Name)
		if err != nil {
			h.writeError(w, "HandleCreateGroup", err)
			return
		}
		h.writeJSON(w, http.StatusCreated, group)
	}
}

// HandleListGroups returns the caller's groups.
func (h *ShopHandler) HandleListGroups() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), StoreTimeout)
		defer cancel()
		groups, err := h.reconciler.ListGroups(ctx, middleware.AuthFromContext(r.Context()))
		if err != nil {
			h.writeError(w, "HandleListGroups", err)
			return
		}
		h.writeJSON(w, http.StatusOK, groups)
	}
}

// HandleAddMemo attaches a memo to a persisted shop row.
func (h *ShopHandler) HandleAddMemo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), StoreTimeout)
		defer cancel()
		var req modeldto.RequestMemo
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeJSON(w, http.StatusBadRequest, modeldto.ResponseError{Error: "invalid request body", Details: err.Error()})
			return
		}
		memo, err := h.reconciler.AddMemo(ctx, middleware.AuthFromContext(r.Context()), chi.URLParam(r, "id"), req.Content)
		if err != nil {
			h.writeError(w, "HandleAddMemo", err)
			return
		}
		h.writeJSON(w, http.StatusCreated, memo)
	}
}

// HandleListMemos returns the memos of a persisted shop row, newest first.
func (h *ShopHandler) HandleListMemos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), StoreTimeout)
		defer cancel()
		memos, err := h.reconciler.ListMemos(ctx, chi.URLParam(r, "id"))
		if err != nil {
			h.writeError(w, "HandleListMemos", err)
			return
		}
		h.writeJSON(w, http.StatusOK, memos)
	}
}

// HandleDeleteMemo removes a memo written by the caller.
func (h *ShopHandler) HandleDeleteMemo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), StoreTimeout)
		defer cancel()
		if err := h.reconciler.DeleteMemo(ctx, middleware.AuthFromContext(r.Context()), chi.URLParam(r, "memoID")); err != nil {
			h.writeError(w, "HandleDeleteMemo", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleBackfill refreshes coordinates of every shared shop.
func (h *ShopHandler) HandleBackfill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updated, err := h.reconciler.Backfill(r.Context())
		if err != nil {
			h.writeError(w, "HandleBackfill", err)
			return
		}
		h.writeJSON(w, http.StatusOK, modeldto.ResponseBackfill{Updated: updated})
	}
}

// HandlePingDB checks the store connection.
func (h *ShopHandler) HandlePingDB() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), StoreTimeout)
		defer cancel()
		if err := h.reconciler.PingDB(ctx); err != nil {
			h.log.Error("HandlePingDB", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// writeError maps service errors to status codes and an {error, details} body.
func (h *ShopHandler) writeError(w http.ResponseWriter, op string, err error) {
	var (
		authErr     *serviceErrors.AuthenticationRequiredError
		inputErr    *serviceErrors.ServiceIncorrectInput
		notFound    *serviceErrors.NotFoundError
		unavailable *serviceErrors.UpstreamUnavailableError
		malformed   *serviceErrors.UpstreamMalformedError
		persistence *serviceErrors.PersistenceError
		timeout     *storageErrors.ContextTimeoutExceededError
	)
	status := http.StatusInternalServerError
	body := modeldto.ResponseError{Error: "internal error"}
	switch {
	case errors.As(err, &authErr):
		status, body.Error = http.StatusUnauthorized, "authentication required"
	case errors.As(err, &inputErr):
		status, body.Error, body.Details = http.StatusBadRequest, "invalid input", inputErr.Msg
	case errors.As(err, &notFound):
		status, body.Error = http.StatusNotFound, "not found"
	case errors.As(err, &unavailable):
		status, body.Error, body.Details = http.StatusBadGateway, "search API request failed", unavailable.Details
	case errors.As(err, &malformed):
		status, body.Error = http.StatusBadGateway, "search API returned a malformed response"
	case errors.As(err, &timeout):
		status, body.Error = http.StatusGatewayTimeout, "store timeout"
	case errors.As(err, &persistence):
		body.Error, body.Details = persistence.Op+" failed", persistence.Err.Error()
	}
	if status >= http.StatusInternalServerError {
		h.log.Error(op, zap.Error(err))
	} else {
		h.log.Info(op, zap.Error(err))
	}
	h.writeJSON(w, status, body)
}

func (h *ShopHandler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	resBody, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(resBody)
}
