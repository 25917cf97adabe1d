package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"loomline-be/internal/alert"
	"loomline-be/internal/cart"
	"loomline-be/internal/catalog"
	"loomline-be/internal/checkout"
	"loomline-be/internal/hero"
	"loomline-be/internal/logger"
	"loomline-be/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	catalogSvc catalog.Service
	heroSvc    hero.Service
	carts      *cart.Store
	checkouts  *checkout.Store
	alerts     *alert.Registry
	mx         *metrics.Store
	validate   *validator.Validate
}

func NewHandler(
	catalogSvc catalog.Service,
	heroSvc hero.Service,
	carts *cart.Store,
	checkouts *checkout.Store,
	alerts *alert.Registry,
	mx *metrics.Store,
) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		heroSvc:    heroSvc,
		carts:      carts,
		checkouts:  checkouts,
		alerts:     alerts,
		mx:         mx,
		validate:   validator.New(),
	}
}

// --- Helpers ---

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.L().Error("failed to encode JSON response", zap.Error(err))
		}
	}
}

func sessionID(r *http.Request) string {
	return logger.SessionIDFrom(r.Context())
}

// --- Catalog ---

// ListProducts runs the catalog query pipeline from URL parameters.
// Malformed numeric inputs fall back to pass-through defaults; the query
// itself never fails.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := catalog.FilterCriteria{
		Search:    q.Get("search"),
		PriceFrom: q.Get("priceFrom"),
		PriceTo:   q.Get("priceTo"),
		Colors:    q["colors"],
	}
	for _, a := range q["availability"] {
		criteria.Availability = append(criteria.Availability, catalog.Availability(a))
	}
	if minRating, err := strconv.ParseFloat(q.Get("minRating"), 64); err == nil {
		criteria.MinRating = minRating
	}

	sortKey := catalog.ParseSortKey(q.Get("sort"))

	products := h.catalogSvc.Products(r.Context(), criteria, sortKey)
	respondWithJSON(w, http.StatusOK, products)
}

func (h *Handler) Carousel(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalogSvc.Carousel(r.Context()))
}

// --- Hero ---

func (h *Handler) Hero(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.heroSvc.Current(r.Context()))
}

// --- Cart ---

func (h *Handler) cartResponse(c *cart.Cart) CartResponse {
	items := c.Items()
	return CartResponse{
		Items: items,
		Total: c.Total(),
		Count: len(items),
	}
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	c := h.carts.Get(sessionID(r))
	respondWithJSON(w, http.StatusOK, h.cartResponse(c))
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var input AddCartItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	item := cart.LineItem{
		ProductID: input.ProductID,
		Variant:   cart.VariantSignature(input.Colors),
		Name:      input.Name,
		Price:     input.Price,
		Image:     input.Image,
	}

	c := h.carts.Get(sessionID(r))
	c.Add(item, input.Quantity)
	h.carts.Mutated()

	h.alerts.Get(sessionID(r)).Show(
		alert.TypeSuccess,
		"Item Added to Cart",
		input.Name+" has been added to your cart.",
	)

	respondWithJSON(w, http.StatusCreated, h.cartResponse(c))
}

func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var input UpdateCartItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	// The cart rejects a quantity below 1; the storefront treats that as a
	// no-op, so the response just reflects current state.
	c := h.carts.Get(sessionID(r))
	_ = c.UpdateQuantity(productID, input.Quantity)
	h.carts.Mutated()

	respondWithJSON(w, http.StatusOK, h.cartResponse(c))
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	c := h.carts.Get(sessionID(r))
	c.Remove(productID)
	h.carts.Mutated()

	respondWithJSON(w, http.StatusOK, h.cartResponse(c))
}

// --- Checkout ---

func (h *Handler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.checkouts.Get(sessionID(r)).State())
}

func (h *Handler) CheckoutNext(w http.ResponseWriter, r *http.Request) {
	state := h.checkouts.Get(sessionID(r)).Next()
	respondWithJSON(w, http.StatusOK, state)
}

func (h *Handler) CheckoutBack(w http.ResponseWriter, r *http.Request) {
	state := h.checkouts.Get(sessionID(r)).Back()
	respondWithJSON(w, http.StatusOK, state)
}

func (h *Handler) CheckoutDetails(w http.ResponseWriter, r *http.Request) {
	var input checkout.Details
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	h.checkouts.Get(sessionID(r)).SetDetails(input)
	respondWithJSON(w, http.StatusOK, input)
}

func (h *Handler) CheckoutShipping(w http.ResponseWriter, r *http.Request) {
	var input checkout.Shipping
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	h.checkouts.Get(sessionID(r)).SetShipping(input)
	respondWithJSON(w, http.StatusOK, input)
}

// --- Alert ---

func (h *Handler) GetAlert(w http.ResponseWriter, r *http.Request) {
	current := h.alerts.Get(sessionID(r)).Current()
	if current == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondWithJSON(w, http.StatusOK, current)
}

// --- Ops ---

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.mx.Snapshot())
}
