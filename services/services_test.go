package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go-restaurant-pos/helpers"
	"go-restaurant-pos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuCreateDefaults(t *testing.T) {
	svc := NewMenuService(&fakeMenu{})
	ctx := context.Background()

	item, err := svc.Create(ctx, models.MenuItem{Name: "  Dal Makhani ", Price: 180})
	require.NoError(t, err)
	assert.Equal(t, "Dal Makhani", item.Name)
	assert.Equal(t, models.DefaultCategory, item.Category)
	assert.NotEmpty(t, item.Menu_item_id)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.Create(ctx, models.MenuItem{Name: "Free", Price: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTableCreate(t *testing.T) {
	svc := NewTableService(newFakeTables())
	ctx := context.Background()

	table, err := svc.Create(ctx, 7, 0)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTableCapacity, table.Capacity)
	assert.Equal(t, models.TableAvailable, table.Status)

	_, err = svc.Create(ctx, 7, 2)
	assert.ErrorIs(t, err, ErrDuplicateTable)
	_, err = svc.Create(ctx, 0, 2)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPrintUsesDefaultPrinterAndIssuer(t *testing.T) {
	sender := &fakeSender{}
	def := models.PrinterTarget{Type: models.PrinterNetwork, Ip: "10.0.0.5", Port: 9100}
	svc := NewPrintService(sender, testIssuer, def)

	err := svc.Print(context.Background(), models.PrintRequest{Receipt: models.Receipt{
		Invoice_number: "INV-1",
		Items:          []models.ReceiptItem{{Name: "Lassi", Qty: 1, Price: 85}},
		Tax_rate:       0.05,
	}})
	require.NoError(t, err)
	assert.Equal(t, def, sender.target)
	assert.True(t, strings.Contains(string(sender.data), "Test Kitchen"))
}

func TestPrintOverrideAndFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("connection refused")}
	svc := NewPrintService(sender, testIssuer, models.PrinterTarget{Type: models.PrinterNetwork})
	target := &models.PrinterTarget{Type: models.PrinterSystem, Name: "kitchen"}

	err := svc.Print(context.Background(), models.PrintRequest{
		Receipt: models.Receipt{Items: []models.ReceiptItem{{Name: "Tea", Qty: 1, Price: 10}}},
		Printer: target,
	})
	assert.EqualError(t, err, "connection refused")
	assert.Equal(t, *target, sender.target)

	err = svc.Print(context.Background(), models.PrintRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func strPtr(s string) *string { return &s }

func TestUserSignUpAndLogin(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users, helpers.NewTokenIssuer("secret"))
	ctx := context.Background()

	user, err := svc.SignUp(ctx, models.User{
		Name:      strPtr("Asha"),
		Password:  strPtr("hunter22"),
		Email:     strPtr("asha@example.com"),
		Phone:     strPtr("9000000000"),
		User_role: strPtr("WAITER"),
	})
	require.NoError(t, err)
	assert.Nil(t, user.Password)
	require.NotNil(t, user.Token)
	assert.NotEqual(t, "hunter22", *users.users[user.User_id].Password)

	_, err = svc.SignUp(ctx, models.User{
		Name: strPtr("Other"), Password: strPtr("x12345"), Email: strPtr("asha@example.com"),
		Phone: strPtr("1"), User_role: strPtr("ADMIN"),
	})
	assert.ErrorIs(t, err, ErrDuplicateUser)

	logged, err := svc.Login(ctx, models.Login{Email: "asha@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, user.User_id, logged.User_id)

	_, err = svc.Login(ctx, models.Login{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrBadCredentials)
	_, err = svc.Login(ctx, models.Login{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrBadCredentials)
}
