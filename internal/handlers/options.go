package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	letsberational "github.com/JunbeomL22/letsberational/letsberational_lib"
	"github.com/JunbeomL22/letsberational/internal/config"
	"github.com/JunbeomL22/letsberational/internal/logger"
	"github.com/JunbeomL22/letsberational/internal/models"
	"github.com/JunbeomL22/letsberational/internal/utils"
)

// VolHandler handles implied volatility requests - DUMB HTTP layer only.
// All numerics live in the letsberational package; this layer parses,
// validates, dispatches and formats.
type VolHandler struct {
	config *config.Config
}

// NewVolHandler creates a new implied volatility handler
func NewVolHandler(cfg *config.Config) *VolHandler {
	return &VolHandler{config: cfg}
}

// optionSign maps the request option type onto the solver's q
func (h *VolHandler) optionSign(optionType string) (int, error) {
	t := strings.ToLower(strings.TrimSpace(optionType))
	if t == "" {
		t = h.config.Engine.DefaultOptionType
	}
	switch t {
	case "call", "c":
		return 1, nil
	case "put", "p":
		return -1, nil
	}
	return 0, fmt.Errorf("unknown option type %q", optionType)
}

// parseAmount parses a decimal-string monetary field into float64
func parseAmount(name, value string) (float64, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	f := d.InexactFloat64()
	if !(f > 0) {
		return 0, fmt.Errorf("%s must be positive, got %s", name, value)
	}
	return f, nil
}

func percentField(v float64) models.FieldValue {
	return models.FieldValue{
		Raw:     v,
		Display: fmt.Sprintf("%.4f%%", v*100.0),
		Type:    "percent",
	}
}

func currencyField(v float64) models.FieldValue {
	return models.FieldValue{
		Raw:     v,
		Display: decimal.NewFromFloat(v).Round(6).String(),
		Type:    "currency",
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// parsedQuote is one validated quote in solver units
type parsedQuote struct {
	price   float64
	forward float64
	strike  float64
	expiry  float64
	q       int
}

// parseQuote validates one quote and converts it to solver units
func (h *VolHandler) parseQuote(req models.ImpliedVolRequest) (parsedQuote, error) {
	var pq parsedQuote
	var err error

	if pq.q, err = h.optionSign(req.OptionType); err != nil {
		return pq, err
	}
	if pq.price, err = parseAmount("price", req.Price); err != nil {
		return pq, err
	}
	if pq.forward, err = parseAmount("forward", req.Forward); err != nil {
		return pq, err
	}
	if pq.strike, err = parseAmount("strike", req.Strike); err != nil {
		return pq, err
	}
	if pq.expiry, err = resolveExpiry(req.ExpiryYears, req.ExpirationDate); err != nil {
		return pq, err
	}
	return pq, nil
}

// solveQuote runs the rational solver and emits the verbose trace
func (h *VolHandler) solveQuote(pq parsedQuote) (float64, error) {
	start := time.Now()
	iv, err := letsberational.ImpliedVolatility(pq.price, pq.forward, pq.strike, pq.expiry, pq.q)
	if err != nil {
		logger.TraceReject(err)
		return iv, err
	}
	logger.TraceSolve(logger.SolveTrace{
		Price:      pq.price,
		Forward:    pq.forward,
		Strike:     pq.strike,
		Expiry:     pq.expiry,
		OptionSign: pq.q,
		ImpliedVol: iv,
		Elapsed:    time.Since(start),
	})
	return iv, nil
}

// resolveExpiry accepts a year fraction or an expiration date; a quote
// carrying neither defaults to the next monthly options expiration
func resolveExpiry(years float64, expirationDate string) (float64, error) {
	if years > 0 {
		return years, nil
	}
	if years < 0 {
		return 0, fmt.Errorf("expiry_years must be positive, got %v", years)
	}
	if expirationDate == "" {
		expirationDate = utils.CalculateNextOptionsExpiration()
	}
	return utils.YearsToExpiry(expirationDate, time.Now())
}

// ImpliedVolHandler computes implied volatility for a single quote
func (h *VolHandler) ImpliedVolHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ImpliedVolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn.Printf("⚠️ Bad implied-vol request body: %v", err)
		writeJSON(w, http.StatusBadRequest, models.ImpliedVolResponse{Success: false, Error: "invalid JSON body"})
		return
	}

	pq, err := h.parseQuote(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ImpliedVolResponse{Success: false, Error: err.Error()})
		return
	}

	iv, err := h.solveQuote(pq)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, letsberational.ErrBelowIntrinsic) || errors.Is(err, letsberational.ErrAboveMaximum) {
			// Domain errors: well-formed request, unattainable price
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, models.ImpliedVolResponse{Success: false, Error: err.Error()})
		return
	}

	resp := models.ImpliedVolResponse{Success: true, ImpliedVol: percentField(iv)}

	// Benchmark mode: also report the Newton-Raphson baseline
	if h.config.Engine.EnableBenchmarks {
		if nv, nerr := letsberational.NewtonImpliedVolatility(pq.price, pq.forward, pq.strike, pq.expiry, pq.q); nerr == nil {
			f := percentField(nv)
			resp.NewtonVol = &f
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// PriceHandler computes the forward Black premium
func (h *VolHandler) PriceHandler(w http.ResponseWriter, r *http.Request) {
	var req models.PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.PriceResponse{Success: false, Error: "invalid JSON body"})
		return
	}

	q, err := h.optionSign(req.OptionType)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.PriceResponse{Success: false, Error: err.Error()})
		return
	}
	forward, err := parseAmount("forward", req.Forward)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.PriceResponse{Success: false, Error: err.Error()})
		return
	}
	strike, err := parseAmount("strike", req.Strike)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.PriceResponse{Success: false, Error: err.Error()})
		return
	}
	if !(req.Volatility >= 0) || !(req.ExpiryYears > 0) {
		writeJSON(w, http.StatusBadRequest, models.PriceResponse{Success: false, Error: "volatility must be non-negative and expiry_years positive"})
		return
	}

	price := letsberational.Black(forward, strike, req.Volatility, req.ExpiryYears, q)
	writeJSON(w, http.StatusOK, models.PriceResponse{Success: true, Price: currencyField(price)})
}

// BatchImpliedVolHandler computes implied volatility for many quotes.
// Per-quote failures are reported per row; the batch itself succeeds.
func (h *VolHandler) BatchImpliedVolHandler(w http.ResponseWriter, r *http.Request) {
	var req models.BatchImpliedVolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.BatchImpliedVolResponse{Success: false})
		return
	}

	if len(req.Quotes) == 0 {
		writeJSON(w, http.StatusBadRequest, models.BatchImpliedVolResponse{Success: false})
		return
	}
	if len(req.Quotes) > h.config.Engine.MaxBatchSize {
		logger.Warn.Printf("⚠️ Batch of %d quotes exceeds limit %d", len(req.Quotes), h.config.Engine.MaxBatchSize)
		http.Error(w, fmt.Sprintf("batch size %d exceeds limit %d", len(req.Quotes), h.config.Engine.MaxBatchSize), http.StatusRequestEntityTooLarge)
		return
	}

	start := time.Now()
	results := make([]models.BatchQuoteResult, 0, len(req.Quotes))
	failed := 0

	for i, quote := range req.Quotes {
		pq, err := h.parseQuote(quote)
		if err == nil {
			var iv float64
			if iv, err = h.solveQuote(pq); err == nil {
				f := percentField(iv)
				results = append(results, models.BatchQuoteResult{Index: i, ImpliedVol: &f})
				continue
			}
		}
		failed++
		results = append(results, models.BatchQuoteResult{Index: i, Error: err.Error()})
	}

	elapsed := time.Since(start)
	logger.Info.Printf("ℹ️ Batch solved %d quotes (%d failed) in %v", len(req.Quotes), failed, elapsed)

	writeJSON(w, http.StatusOK, models.BatchImpliedVolResponse{
		Success:        true,
		Results:        results,
		QuoteCount:     len(req.Quotes),
		FailedCount:    failed,
		ProcessingTime: float64(elapsed.Nanoseconds()) / 1e6,
	})
}

// HealthHandler reports liveness
func (h *VolHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Service: "letsberational",
		Version: "1.0.0",
	})
}
