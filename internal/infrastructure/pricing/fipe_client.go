package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"financiamento_xpto/internal/domain/entities"
	"financiamento_xpto/internal/usecase/interfaces"
)

var (
	ErrUnsupportedVehicleKind = errors.New("unsupported vehicle kind")
	ErrUnexpectedStatus       = errors.New("pricing source returned unexpected status")
)

const (
	defaultBaseURL = "https://parallelum.com.br/fipe/api/v1"
	requestTimeout = 10 * time.Second
)

// FipeClient consumes the FIPE-style valuation REST API: three dependent
// list endpoints plus a price lookup. The source conflates model year and
// fuel type in the year label ("2014 Gasolina"); ResolvePrice untangles them.
//
// Env vars:
//   - FIPE_BASE_URL (default: public parallelum mirror)
//   - PRICING_SOURCE_MOCK (truthy value serves a small fixed catalog)
type FipeClient struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IPricingSource = (*FipeClient)(nil)

func NewFipeClient() *FipeClient {
	if isPricingSourceMockEnabled() {
		log.Printf("[pricing][gateway] mock mode enabled")
		return &FipeClient{mockMode: true}
	}

	base := strings.TrimRight(getenvDefault("FIPE_BASE_URL", defaultBaseURL), "/")
	log.Printf("[pricing][gateway] fipe client initialized base_url=%s", base)
	return &FipeClient{
		baseURL: base,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// catalogItem is the wire shape of every list level. Model codes arrive as
// JSON numbers while brand and year codes are strings; json.Number absorbs
// both.
type catalogItem struct {
	Code json.Number `json:"codigo"`
	Name string      `json:"nome"`
}

type modelsEnvelope struct {
	Models []catalogItem `json:"modelos"`
}

// priceEnvelope is the wire shape of the price lookup.
type priceEnvelope struct {
	Value     string `json:"Valor"`
	Brand     string `json:"Marca"`
	Model     string `json:"Modelo"`
	ModelYear int    `json:"AnoModelo"`
	Fuel      string `json:"Combustivel"`
	FipeCode  string `json:"CodigoFipe"`
}

func (c *FipeClient) ListBrands(ctx context.Context, kind entities.VehicleKind) ([]entities.CatalogRef, error) {
	if c.mockMode {
		return mockBrands(kind)
	}
	path, err := c.kindPath(kind)
	if err != nil {
		return nil, err
	}

	var items []catalogItem
	if err := c.getJSON(ctx, fmt.Sprintf("%s/marcas", path), &items); err != nil {
		return nil, err
	}
	return toRefs(items), nil
}

func (c *FipeClient) ListModels(ctx context.Context, kind entities.VehicleKind, brandCode string) ([]entities.CatalogRef, error) {
	if c.mockMode {
		return mockModels(kind, brandCode)
	}
	path, err := c.kindPath(kind)
	if err != nil {
		return nil, err
	}

	var envelope modelsEnvelope
	if err := c.getJSON(ctx, fmt.Sprintf("%s/marcas/%s/modelos", path, brandCode), &envelope); err != nil {
		return nil, err
	}
	return toRefs(envelope.Models), nil
}

func (c *FipeClient) ListModelYears(ctx context.Context, kind entities.VehicleKind, brandCode, modelCode string) ([]entities.CatalogRef, error) {
	if c.mockMode {
		return mockYears(kind, brandCode, modelCode)
	}
	path, err := c.kindPath(kind)
	if err != nil {
		return nil, err
	}

	var items []catalogItem
	if err := c.getJSON(ctx, fmt.Sprintf("%s/marcas/%s/modelos/%s/anos", path, brandCode, modelCode), &items); err != nil {
		return nil, err
	}
	return toRefs(items), nil
}

func (c *FipeClient) ResolvePrice(ctx context.Context, kind entities.VehicleKind, brandCode, modelCode, yearCode string) (entities.VehicleCatalogEntry, error) {
	if c.mockMode {
		return mockPrice(kind, brandCode, modelCode, yearCode)
	}
	path, err := c.kindPath(kind)
	if err != nil {
		return entities.VehicleCatalogEntry{}, err
	}

	var envelope priceEnvelope
	if err := c.getJSON(ctx, fmt.Sprintf("%s/marcas/%s/modelos/%s/anos/%s", path, brandCode, modelCode, yearCode), &envelope); err != nil {
		return entities.VehicleCatalogEntry{}, err
	}

	price, err := parseCurrencyBRL(envelope.Value)
	if err != nil {
		log.Printf("[pricing][gateway] unparseable price value=%q err=%v", envelope.Value, err)
		return entities.VehicleCatalogEntry{}, err
	}

	return entities.VehicleCatalogEntry{
		BrandCode:      brandCode,
		BrandName:      envelope.Brand,
		ModelCode:      modelCode,
		ModelName:      envelope.Model,
		YearCode:       yearCode,
		ModelYear:      envelope.ModelYear,
		FuelType:       envelope.Fuel,
		FipeCode:       envelope.FipeCode,
		ReferencePrice: price,
	}, nil
}

func (c *FipeClient) getJSON(ctx context.Context, path string, out any) error {
	url := fmt.Sprintf("%s/%s", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[pricing][gateway] request failed url=%s err=%v", url, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[pricing][gateway] unexpected status url=%s status=%d", url, resp.StatusCode)
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (c *FipeClient) kindPath(kind entities.VehicleKind) (string, error) {
	switch kind {
	case entities.VehicleKindCar:
		return "carros", nil
	case entities.VehicleKindMotorcycle:
		return "motos", nil
	case entities.VehicleKindTruck:
		return "caminhoes", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedVehicleKind, kind)
	}
}

func toRefs(items []catalogItem) []entities.CatalogRef {
	refs := make([]entities.CatalogRef, 0, len(items))
	for _, it := range items {
		refs = append(refs, entities.CatalogRef{Code: it.Code.String(), Name: it.Name})
	}
	return refs
}

// parseCurrencyBRL converts "R$ 23.450,00" to 23450.00.
func parseCurrencyBRL(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, errors.New("empty price")
	}
	return strconv.ParseFloat(s, 64)
}

func isPricingSourceMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PRICING_SOURCE_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
