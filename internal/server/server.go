package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/mortgage-compare/internal/config"
	"github.com/iwvelando/mortgage-compare/internal/recommend"
	"github.com/iwvelando/mortgage-compare/internal/sweep"
	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/output"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

type compareOptions struct {
	// Budget, when set, overrides the configured monthly budget so the UI
	// can try different budgets without editing the config.
	Budget *float64
}

// NewHandler constructs the HTTP handler that serves the web UI and comparison API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Comparison API endpoint (file upload)
	mux.HandleFunc("/api/compare", h.handleCompare)

	// Comparison API endpoint for editor-driven updates
	mux.HandleFunc("/api/editor/compare", h.handleCompareEditor)

	// Config serialization endpoint for editor downloads
	mux.HandleFunc("/api/editor/export", h.handleConfigExport)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

type compareResponse struct {
	BaselineTermYears int                    `json:"baselineTermYears"`
	Terms             []termRow              `json:"terms"`
	Adjusted          []termRow              `json:"adjusted"`
	Recommendation    *recommend.Summary     `json:"recommendation,omitempty"`
	CSV               string                 `json:"csv"`
	Warnings          []string               `json:"warnings,omitempty"`
	Duration          string                 `json:"duration"`
	Config            map[string]interface{} `json:"config,omitempty"`
	ConfigYAML        string                 `json:"configYaml,omitempty"`
}

type termRow struct {
	TermYears                 int     `json:"termYears"`
	MonthlyPayment            float64 `json:"monthlyPayment"`
	TotalInterest             float64 `json:"totalInterest"`
	TotalCost                 float64 `json:"totalCost"`
	SavingsVsBaseline         float64 `json:"savingsVsBaseline"`
	InvestmentValueDuringTerm float64 `json:"investmentValueDuringTerm"`
	InvestmentValueTotal      float64 `json:"investmentValueTotal"`
}

func (h *handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing configuration file")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && h.logger != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.handleCompare"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err))
		return
	}

	configBytes := buf.Bytes()
	configMap, err := decodeYAMLToMap(configBytes)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("error reading config data, %v", err))
		return
	}

	h.runCompare(w, configBytes, configMap, start, "server.handleCompare", compareOptions{})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleCompareEditor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err), "server.handleCompareEditor")
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	configPayload := payload
	if rawConfig, ok := payload["config"]; ok {
		cfgMap, ok := rawConfig.(map[string]interface{})
		if !ok {
			h.respondErrorWithOp(w, http.StatusBadRequest, "invalid config payload: expected object", "server.handleCompareEditor")
			return
		}
		configPayload = cfgMap
	}

	options := compareOptions{}
	if rawOptions, ok := payload["options"]; ok {
		optsMap, ok := rawOptions.(map[string]interface{})
		if !ok {
			h.respondErrorWithOp(w, http.StatusBadRequest, "invalid options payload: expected object", "server.handleCompareEditor")
			return
		}
		if budgetVal, ok := optsMap["budget"]; ok {
			if budget, ok := coerceFloat(budgetVal); ok && budget > 0 {
				options.Budget = &budget
			}
		}
	}

	configBytes, err := yaml.Marshal(configPayload)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), "server.handleCompareEditor")
		return
	}

	configMap, err := decodeYAMLToMap(configBytes)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to parse configuration: %v", err), "server.handleCompareEditor")
		return
	}

	h.runCompare(w, configBytes, configMap, start, "server.handleCompareEditor", options)
}

func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err), "server.handleConfigExport")
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	yamlBytes, err := marshalOrderedConfigYAML(payload)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), "server.handleConfigExport")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

func marshalOrderedConfigYAML(payload map[string]interface{}) ([]byte, error) {
	items := make([]orderedItem, 0, len(payload))
	seen := make(map[string]struct{})

	for _, key := range []string{"logging", "output"} {
		if value, ok := payload[key]; ok {
			items = append(items, orderedItem{key: key, value: value})
			seen[key] = struct{}{}
		}
	}

	remainingKeys := make([]string, 0, len(payload))
	for key := range payload {
		if _, already := seen[key]; already {
			continue
		}
		remainingKeys = append(remainingKeys, key)
	}
	sort.Strings(remainingKeys)
	for _, key := range remainingKeys {
		items = append(items, orderedItem{key: key, value: payload[key]})
	}

	ordered := orderedConfig{items: items}
	return yaml.Marshal(ordered)
}

type orderedConfig struct {
	items []orderedItem
}

type orderedItem struct {
	key   string
	value interface{}
}

func (o orderedConfig) MarshalYAML() (interface{}, error) {
	mapNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for _, item := range o.items {
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: item.key,
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(item.value); err != nil {
			return nil, err
		}
		mapNode.Content = append(mapNode.Content, keyNode, valueNode)
	}

	return mapNode, nil
}

func (h *handler) runCompare(w http.ResponseWriter, configBytes []byte, configMap map[string]interface{}, start time.Time, op string, opts compareOptions) {
	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	if opts.Budget != nil {
		cfg.Budget = &config.BudgetConfig{MaxMonthlyPayment: *opts.Budget}
		if updatedBytes, marshalErr := yaml.Marshal(cfg); marshalErr == nil {
			configBytes = updatedBytes
			if updatedMap, mapErr := decodeYAMLToMap(updatedBytes); mapErr == nil {
				configMap = updatedMap
			}
		} else if h.logger != nil {
			h.logger.Warn("failed to marshal configuration with budget override",
				zap.String("op", op),
				zap.Error(marshalErr),
			)
		}
	}

	warnings := cfg.ValidateConfiguration()

	comparison, err := sweep.RunSweep(h.logger, *cfg)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, config.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		h.respondErrorWithOp(w, status, fmt.Sprintf("failed to compute comparison: %v", err), op)
		return
	}

	var recommendation *recommend.Summary
	if cfg.Budget != nil {
		recommendation, err = recommend.Pick(comparison.Terms, cfg.Budget.MaxMonthlyPayment)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("no term recommendation: %v", err))
			recommendation = nil
		}
	}

	elapsed := time.Since(start)

	if configMap == nil {
		configMap = make(map[string]interface{})
	}

	response := compareResponse{
		BaselineTermYears: comparison.BaselineTermYears,
		Terms:             buildTermRows(comparison.Terms),
		Adjusted:          buildAdjustedRows(comparison.Adjusted),
		Recommendation:    recommendation,
		CSV:               output.CsvString(comparison),
		Warnings:          warnings,
		Duration:          elapsed.String(),
		Config:            configMap,
		ConfigYAML:        string(configBytes),
	}

	if h.logger != nil {
		h.logger.Info("comparison computed",
			zap.String("op", op),
			zap.Int("terms", len(response.Terms)),
			zap.Int("baselineTermYears", response.BaselineTermYears),
			zap.Duration("duration", elapsed),
		)
	}

	h.writeJSON(w, http.StatusOK, response)
}

func decodeYAMLToMap(data []byte) (map[string]interface{}, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return make(map[string]interface{}), nil
	}

	var result map[string]interface{}
	if err := yaml.Unmarshal(trimmed, &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = make(map[string]interface{})
	}
	return result, nil
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondErrorWithOp(w, status, msg, "server.handleCompare")
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("comparison request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func buildTermRows(results []sweep.TermResult) []termRow {
	rows := make([]termRow, 0, len(results))
	for _, result := range results {
		rows = append(rows, termRow{
			TermYears:                 result.TermYears,
			MonthlyPayment:            result.MonthlyPayment,
			TotalInterest:             result.TotalInterest,
			TotalCost:                 result.TotalCost,
			SavingsVsBaseline:         result.SavingsVsBaseline,
			InvestmentValueDuringTerm: result.InvestmentValueDuringTerm,
			InvestmentValueTotal:      result.InvestmentValueTotal,
		})
	}
	return rows
}

func buildAdjustedRows(results []sweep.AdjustedTermResult) []termRow {
	rows := make([]termRow, 0, len(results))
	for _, result := range results {
		rows = append(rows, termRow{
			TermYears:                 result.TermYears,
			MonthlyPayment:            result.MonthlyPayment,
			TotalInterest:             result.TotalInterest,
			TotalCost:                 result.TotalCost,
			SavingsVsBaseline:         result.SavingsVsBaseline,
			InvestmentValueDuringTerm: result.InvestmentValueDuringTerm,
			InvestmentValueTotal:      result.InvestmentValueTotal,
		})
	}
	return rows
}

func coerceFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return parsed, true
		}
	case json.Number:
		if parsed, err := strconv.ParseFloat(v.String(), 64); err == nil {
			return parsed, true
		}
	}
	return 0, false
}
