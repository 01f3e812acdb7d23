package pricing

import (
	"fmt"

	"financiamento_xpto/internal/domain/entities"
)

// Fixed catalog served when PRICING_SOURCE_MOCK is enabled, so the wizard
// can be exercised locally without reaching the public valuation API.

var mockCatalog = map[entities.VehicleKind][]entities.CatalogRef{
	entities.VehicleKindCar: {
		{Code: "59", Name: "VW - VolksWagen"},
		{Code: "21", Name: "Fiat"},
	},
	entities.VehicleKindMotorcycle: {
		{Code: "80", Name: "Honda"},
	},
	entities.VehicleKindTruck: {
		{Code: "102", Name: "Mercedes-Benz"},
	},
}

func mockBrands(kind entities.VehicleKind) ([]entities.CatalogRef, error) {
	brands, ok := mockCatalog[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVehicleKind, kind)
	}
	return brands, nil
}

func mockModels(kind entities.VehicleKind, brandCode string) ([]entities.CatalogRef, error) {
	if _, err := mockBrands(kind); err != nil {
		return nil, err
	}
	return []entities.CatalogRef{
		{Code: "5940", Name: fmt.Sprintf("Modelo %s-A", brandCode)},
		{Code: "5941", Name: fmt.Sprintf("Modelo %s-B", brandCode)},
	}, nil
}

func mockYears(kind entities.VehicleKind, brandCode, modelCode string) ([]entities.CatalogRef, error) {
	if _, err := mockBrands(kind); err != nil {
		return nil, err
	}
	return []entities.CatalogRef{
		{Code: "2020-1", Name: "2020 Gasolina"},
		{Code: "2014-1", Name: "2014 Gasolina"},
	}, nil
}

func mockPrice(kind entities.VehicleKind, brandCode, modelCode, yearCode string) (entities.VehicleCatalogEntry, error) {
	if _, err := mockBrands(kind); err != nil {
		return entities.VehicleCatalogEntry{}, err
	}
	return entities.VehicleCatalogEntry{
		BrandCode:      brandCode,
		BrandName:      "VW - VolksWagen",
		ModelCode:      modelCode,
		ModelName:      "Gol 1.0",
		YearCode:       yearCode,
		ModelYear:      2020,
		FuelType:       "Gasolina",
		FipeCode:       "005340-6",
		ReferencePrice: 45900,
	}, nil
}
