package orders

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aryan-dudharejiya/savoria-backend/pkg/config"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/db/models"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/enums"
	pkgerrors "github.com/aryan-dudharejiya/savoria-backend/pkg/errors"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/types"
)

func testDSN() string {
	return "file:orders_" + uuid.NewString() + "?mode=memory&cache=shared"
}

var trackingIDPattern = regexp.MustCompile(`^SAV-\d+-[0-9a-f]{4}$`)

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func setupOrderService(t *testing.T) Service {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(testDSN()), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Order{}))

	svc, err := NewService(NewRepository(conn), gormTxRunner{db: conn}, config.PricingConfig{
		FreeDeliveryThreshold: "25.00",
		DeliveryFee:           "2.99",
		TaxRate:               "0.05",
		PromoRules:            "savoria20:0.20",
		MinDeliveryMinutes:    30,
		MaxDeliveryMinutes:    45,
	})
	require.NoError(t, err)
	return svc
}

func checkoutInput() CreateOrderInput {
	return CreateOrderInput{
		FullName:        "Aryan Dudharejiya",
		PhoneNumber:     "+919876543210",
		DeliveryAddress: "14 Marine Drive, Mumbai",
		Items: types.OrderLineItems{
			{
				ID:         "1714000000000",
				MenuItemID: "menu-risotto",
				Name:       "Truffle Mushroom Risotto",
				Price:      decimal.RequireFromString("10.00"),
				Quantity:   2,
			},
		},
		TotalAmount:   decimal.RequireFromString("22.99"),
		PaymentMethod: enums.PaymentMethodCOD,
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := setupOrderService(t)
	before := time.Now()

	order, err := svc.Create(context.Background(), checkoutInput())
	require.NoError(t, err)

	assert.Equal(t, enums.OrderStatusPending, order.Status)
	assert.Equal(t, enums.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "", order.Notes)
	assert.Equal(t, int64(1), order.OrderNumber)
	assert.Regexp(t, trackingIDPattern, order.TrackingID)

	estimate, err := time.Parse(time.RFC3339, order.EstimatedDeliveryTime)
	require.NoError(t, err)
	assert.True(t, estimate.After(before.Add(29*time.Minute)), "estimate %s too early", estimate)
	assert.True(t, estimate.Before(before.Add(46*time.Minute)), "estimate %s too late", estimate)
}

func TestCreateSequentialOrdersNeverCollide(t *testing.T) {
	svc := setupOrderService(t)

	first, err := svc.Create(context.Background(), checkoutInput())
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), checkoutInput())
	require.NoError(t, err)

	assert.NotEqual(t, first.TrackingID, second.TrackingID)
	assert.Equal(t, first.OrderNumber+1, second.OrderNumber)
}

func TestCreateKeepsClientSuppliedFields(t *testing.T) {
	svc := setupOrderService(t)

	input := checkoutInput()
	input.TrackingID = "SAV-99-beef"
	input.EstimatedDeliveryTime = "2026-09-01T19:30:00Z"
	completed := enums.PaymentStatusCompleted
	input.PaymentMethod = enums.PaymentMethodUPI
	input.PaymentStatus = &completed

	order, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "SAV-99-beef", order.TrackingID)
	assert.Equal(t, "2026-09-01T19:30:00Z", order.EstimatedDeliveryTime)
	assert.Equal(t, enums.PaymentStatusCompleted, order.PaymentStatus)
}

func TestCreateMissingFieldsAggregated(t *testing.T) {
	svc := setupOrderService(t)

	input := checkoutInput()
	input.FullName = ""
	input.DeliveryAddress = "  "

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Contains(t, typed.Message(), "fullName")
	assert.Contains(t, typed.Message(), "deliveryAddress")
}

func TestCreateEmptyItemsRejected(t *testing.T) {
	svc := setupOrderService(t)

	input := checkoutInput()
	input.Items = nil

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestCreateInvalidPaymentMethodRejected(t *testing.T) {
	svc := setupOrderService(t)

	input := checkoutInput()
	input.PaymentMethod = enums.PaymentMethod("card")

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestGetByTrackingIDUnknownIsNotFound(t *testing.T) {
	svc := setupOrderService(t)

	_, err := svc.GetByTrackingID(context.Background(), "SAV-404-dead")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestListByPhoneNumberEmptyResult(t *testing.T) {
	svc := setupOrderService(t)

	list, err := svc.ListByPhoneNumber(context.Background(), "+10000000000")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestListByPhoneNumberExactMatch(t *testing.T) {
	svc := setupOrderService(t)

	_, err := svc.Create(context.Background(), checkoutInput())
	require.NoError(t, err)

	other := checkoutInput()
	other.PhoneNumber = "+918888888888"
	_, err = svc.Create(context.Background(), other)
	require.NoError(t, err)

	list, err := svc.ListByPhoneNumber(context.Background(), "+919876543210")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "+919876543210", list[0].PhoneNumber)
}

func TestUpdateAdvancesStatusOneStep(t *testing.T) {
	svc := setupOrderService(t)

	order, err := svc.Create(context.Background(), checkoutInput())
	require.NoError(t, err)

	confirmed := enums.OrderStatusConfirmed
	updated, err := svc.Update(context.Background(), order.TrackingID, UpdateOrderInput{Status: &confirmed})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusConfirmed, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(order.UpdatedAt))
}

func TestUpdateRejectsSkipAhead(t *testing.T) {
	svc := setupOrderService(t)

	order, err := svc.Create(context.Background(), checkoutInput())
	require.NoError(t, err)

	preparing := enums.OrderStatusPreparing
	_, err = svc.Update(context.Background(), order.TrackingID, UpdateOrderInput{Status: &preparing})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())
}

func TestUpdateRejectsBackwardMove(t *testing.T) {
	svc := setupOrderService(t)

	order, err := svc.Create(context.Background(), checkoutInput())
	require.NoError(t, err)

	confirmed := enums.OrderStatusConfirmed
	_, err = svc.Update(context.Background(), order.TrackingID, UpdateOrderInput{Status: &confirmed})
	require.NoError(t, err)

	pending := enums.OrderStatusPending
	_, err = svc.Update(context.Background(), order.TrackingID, UpdateOrderInput{Status: &pending})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())
}

func TestUpdateFullLifecycle(t *testing.T) {
	svc := setupOrderService(t)

	order, err := svc.Create(context.Background(), checkoutInput())
	require.NoError(t, err)

	for _, status := range []enums.OrderStatus{
		enums.OrderStatusConfirmed,
		enums.OrderStatusPreparing,
		enums.OrderStatusOutForDelivery,
		enums.OrderStatusDelivered,
	} {
		status := status
		updated, err := svc.Update(context.Background(), order.TrackingID, UpdateOrderInput{Status: &status})
		require.NoError(t, err, "advancing to %s", status)
		assert.Equal(t, status, updated.Status)
	}

	confirmed := enums.OrderStatusConfirmed
	_, err = svc.Update(context.Background(), order.TrackingID, UpdateOrderInput{Status: &confirmed})
	require.Error(t, err)
}

func TestUpdatePaymentStatusPendingToCompleted(t *testing.T) {
	svc := setupOrderService(t)

	order, err := svc.Create(context.Background(), checkoutInput())
	require.NoError(t, err)

	completed := enums.PaymentStatusCompleted
	updated, err := svc.Update(context.Background(), order.TrackingID, UpdateOrderInput{PaymentStatus: &completed})
	require.NoError(t, err)
	assert.Equal(t, enums.PaymentStatusCompleted, updated.PaymentStatus)

	failed := enums.PaymentStatusFailed
	_, err = svc.Update(context.Background(), order.TrackingID, UpdateOrderInput{PaymentStatus: &failed})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())
}

func TestUpdateUnknownOrderIsNotFound(t *testing.T) {
	svc := setupOrderService(t)

	notes := "leave at the door"
	_, err := svc.Update(context.Background(), "SAV-404-dead", UpdateOrderInput{Notes: &notes})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestUpdateEmptyPatchRejected(t *testing.T) {
	svc := setupOrderService(t)

	order, err := svc.Create(context.Background(), checkoutInput())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), order.TrackingID, UpdateOrderInput{})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestItemsFrozenAfterCreation(t *testing.T) {
	svc := setupOrderService(t)

	order, err := svc.Create(context.Background(), checkoutInput())
	require.NoError(t, err)

	notes := "ring the bell twice"
	updated, err := svc.Update(context.Background(), order.TrackingID, UpdateOrderInput{Notes: &notes})
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.Equal(t, order.Items[0].Name, updated.Items[0].Name)
	assert.Equal(t, order.Items[0].Quantity, updated.Items[0].Quantity)
	assert.True(t, updated.TotalAmount.Equal(order.TotalAmount))
}

func TestGenerateTrackingIDFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := GenerateTrackingID(int64(i + 1))
		assert.Regexp(t, trackingIDPattern, id)
		assert.False(t, seen[id], "duplicate tracking id %s", id)
		seen[id] = true
	}
}
