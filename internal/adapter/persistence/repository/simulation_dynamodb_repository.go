package repository

import (
	"context"
	"strconv"
	"time"

	"financiamento_xpto/internal/domain/document"
	"financiamento_xpto/internal/domain/entities"
	"financiamento_xpto/internal/domain/vehicle"
	"financiamento_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSimulationsTableName = "simulations"
	listingIDIndexName          = "listing_id-index"
)

type simulationItem struct {
	ID        string `dynamodbav:"id"`
	ListingID string `dynamodbav:"listing_id,omitempty"`

	TaxIdentifier string `dynamodbav:"tax_identifier"`
	DocumentKind  string `dynamodbav:"document_kind"`
	FullName      string `dynamodbav:"full_name"`
	Email         string `dynamodbav:"email"`
	Phone         string `dynamodbav:"phone"`

	VehicleKind   string `dynamodbav:"vehicle_kind"`
	SelectionKind string `dynamodbav:"selection_kind"`
	Brand         string `dynamodbav:"brand"`
	Model         string `dynamodbav:"model"`
	ModelYear     int    `dynamodbav:"model_year"`
	FipeCode      string `dynamodbav:"fipe_code,omitempty"`
	FuelType      string `dynamodbav:"fuel_type,omitempty"`
	Condition     string `dynamodbav:"condition"`
	Transmission  string `dynamodbav:"transmission"`
	VehiclePrice  string `dynamodbav:"vehicle_price"`
	DownPayment   string `dynamodbav:"down_payment"`
	TermMonths    int    `dynamodbav:"term_months"`

	TimeToClose    string `dynamodbav:"time_to_close"`
	HasSeenVehicle bool   `dynamodbav:"has_seen_vehicle"`
	SellerType     string `dynamodbav:"seller_type"`

	FinancedAmount   string `dynamodbav:"financed_amount"`
	InstallmentValue string `dynamodbav:"installment_value"`
	MonthlyRate      string `dynamodbav:"monthly_rate"`
	Approved         bool   `dynamodbav:"approved"`

	CreatedAt string `dynamodbav:"created_at"`
}

// SimulationDynamoRepository persists StoredSimulation snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI listing_id-index: PK listing_id (string)
//
// Records are append-only: every save writes a fresh item under a fresh id.
// Repeat saves for the same listing produce multiple records; the listing
// index exists so callers can read that history.

type SimulationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISimulationRepository = (*SimulationDynamoRepository)(nil)

func NewSimulationDynamoRepository(ddb *dynamodb.Client) *SimulationDynamoRepository {
	return &SimulationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SIMULATIONS_TABLE", defaultSimulationsTableName),
	}
}

func (r *SimulationDynamoRepository) Create(ctx context.Context, s entities.StoredSimulation) (entities.StoredSimulation, error) {
	it := toSimulationItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.StoredSimulation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.StoredSimulation{}, err
	}
	return s, nil
}

func (r *SimulationDynamoRepository) GetByID(ctx context.Context, id string) (entities.StoredSimulation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.StoredSimulation{}, err
	}
	if len(out.Item) == 0 {
		return entities.StoredSimulation{}, nil
	}

	var it simulationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StoredSimulation{}, err
	}
	return fromSimulationItem(it), nil
}

func (r *SimulationDynamoRepository) ListByListingID(ctx context.Context, listingID string) ([]entities.StoredSimulation, error) {
	var (
		sims    []entities.StoredSimulation
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(listingIDIndexName),
			KeyConditionExpression: aws.String("#listing_id = :listing_id"),
			ExpressionAttributeNames: map[string]string{
				"#listing_id": "listing_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":listing_id": &types.AttributeValueMemberS{Value: listingID},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		var items []simulationItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			sims = append(sims, fromSimulationItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return sims, nil
}

func toSimulationItem(s entities.StoredSimulation) simulationItem {
	return simulationItem{
		ID:        s.ID,
		ListingID: s.ListingID,

		TaxIdentifier: s.TaxIdentifier,
		DocumentKind:  string(s.DocumentKind),
		FullName:      s.FullName,
		Email:         s.Email,
		Phone:         s.Phone,

		VehicleKind:   string(s.VehicleKind),
		SelectionKind: string(s.SelectionKind),
		Brand:         s.Brand,
		Model:         s.Model,
		ModelYear:     s.ModelYear,
		FipeCode:      s.FipeCode,
		FuelType:      s.FuelType,
		Condition:     string(s.Condition),
		Transmission:  string(s.Transmission),
		VehiclePrice:  floatToString(s.VehiclePrice),
		DownPayment:   floatToString(s.DownPayment),
		TermMonths:    s.TermMonths,

		TimeToClose:    s.TimeToClose,
		HasSeenVehicle: s.HasSeenVehicle,
		SellerType:     s.SellerType,

		FinancedAmount:   floatToString(s.FinancedAmount),
		InstallmentValue: floatToString(s.InstallmentValue),
		MonthlyRate:      floatToString(s.MonthlyRate),
		Approved:         s.Approved,

		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSimulationItem(it simulationItem) entities.StoredSimulation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	vehiclePrice, _ := strconv.ParseFloat(it.VehiclePrice, 64)
	downPayment, _ := strconv.ParseFloat(it.DownPayment, 64)
	financed, _ := strconv.ParseFloat(it.FinancedAmount, 64)
	installment, _ := strconv.ParseFloat(it.InstallmentValue, 64)
	rate, _ := strconv.ParseFloat(it.MonthlyRate, 64)
	return entities.StoredSimulation{
		ID:        it.ID,
		ListingID: it.ListingID,

		TaxIdentifier: it.TaxIdentifier,
		DocumentKind:  document.Kind(it.DocumentKind),
		FullName:      it.FullName,
		Email:         it.Email,
		Phone:         it.Phone,

		VehicleKind:   entities.VehicleKind(it.VehicleKind),
		SelectionKind: entities.VehicleSelectionKind(it.SelectionKind),
		Brand:         it.Brand,
		Model:         it.Model,
		ModelYear:     it.ModelYear,
		FipeCode:      it.FipeCode,
		FuelType:      it.FuelType,
		Condition:     entities.VehicleCondition(it.Condition),
		Transmission:  vehicle.Transmission(it.Transmission),
		VehiclePrice:  vehiclePrice,
		DownPayment:   downPayment,
		TermMonths:    it.TermMonths,

		TimeToClose:    it.TimeToClose,
		HasSeenVehicle: it.HasSeenVehicle,
		SellerType:     it.SellerType,

		FinancedAmount:   financed,
		InstallmentValue: installment,
		MonthlyRate:      rate,
		Approved:         it.Approved,

		CreatedAt: createdAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
