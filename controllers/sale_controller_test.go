package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap/zaptest"

	"github.com/HSouheill/salesapp_backend/config"
	"github.com/HSouheill/salesapp_backend/models"
)

func TestSaveSaleComputesTotal(t *testing.T) {
	f := newFixture(t, config.LoginMatchExact)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	f.sale.now = func() time.Time { return now }

	_, env := post(t, f.sale.SaveSale, map[string]interface{}{
		"product_name": "Pen", "quantity": 10, "price": 2.5, "userId": "u1", "total": 999,
	})
	require.True(t, env.Success, env.Message)
	assert.Equal(t, "Sale saved", env.Message)

	var sale models.Sale
	decodeData(t, env, &sale)
	assert.False(t, sale.ID.IsZero())
	assert.Equal(t, "Pen", sale.ProductName)
	assert.Equal(t, 10.0, sale.Qty)
	assert.Equal(t, 2.5, sale.Rate)
	assert.Equal(t, 25.0, sale.Total)
	assert.Equal(t, "u1", sale.UserID)
	assert.True(t, now.Equal(sale.CreatedAt))
}

func TestSaveSaleAcceptsFormAndStrings(t *testing.T) {
	f := newFixture(t, config.LoginMatchExact)

	_, env := postForm(t, f.sale.SaveSale, "product_name=Ink&quantity=4&price=0.5&userId=u2")
	require.True(t, env.Success, env.Message)
	var sale models.Sale
	decodeData(t, env, &sale)
	assert.Equal(t, 2.0, sale.Total)

	_, env = post(t, f.sale.SaveSale, `{"product_name":"Ink","quantity":"3","price":"2"}`)
	require.True(t, env.Success, env.Message)
	decodeData(t, env, &sale)
	assert.Equal(t, 6.0, sale.Total)

	code, env := post(t, f.sale.SaveSale, `{"product_name":"Ink","quantity":"three","price":"2"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid request body", env.Message)
	assert.NotEmpty(t, env.Error)

	sales, err := f.store.Sales.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, sales, 2)
}

func TestSaleWrongValueTypes(t *testing.T) {
	f := newFixture(t, config.LoginMatchExact)

	cases := []struct {
		name string
		h    func(*fixture) echoHandler
		body string
	}{
		{"save-sale text quantity", func(f *fixture) echoHandler { return f.sale.SaveSale }, `{"product_name":"Pen","quantity":"ten","price":1}`},
		{"update-sale text qty", func(f *fixture) echoHandler { return f.sale.UpdateSale }, `{"id":"` + primitive.NewObjectID().Hex() + `","qty":"x","rate":1}`},
		{"update-sale boolean rate", func(f *fixture) echoHandler { return f.sale.UpdateSale }, `{"id":"` + primitive.NewObjectID().Hex() + `","qty":1,"rate":true}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, env := post(t, tc.h(f), tc.body)
			assert.Equal(t, http.StatusOK, code)
			assert.False(t, env.Success)
			assert.Equal(t, "Invalid request body", env.Message)
			assert.NotEmpty(t, env.Error)
		})
	}

	code, env := postForm(t, f.sale.SaveSale, "product_name=Ink&quantity=lots&price=1")
	assert.Equal(t, http.StatusOK, code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestListSalesNewestFirst(t *testing.T) {
	f := newFixture(t, config.LoginMatchExact)

	for _, name := range []string{"first", "second", "third"} {
		_, env := post(t, f.sale.SaveSale, map[string]interface{}{"product_name": name, "quantity": 1, "price": 1})
		require.True(t, env.Success)
	}

	_, env := get(t, f.sale.ListSales)
	require.True(t, env.Success)
	assert.Equal(t, "Sales retrieved successfully", env.Message)

	var sales []models.Sale
	decodeData(t, env, &sales)
	require.Len(t, sales, 3)
	assert.Equal(t, "third", sales[0].ProductName)
	assert.Equal(t, "second", sales[1].ProductName)
	assert.Equal(t, "first", sales[2].ProductName)
}

func TestUpdateSaleRecomputesTotal(t *testing.T) {
	f := newFixture(t, config.LoginMatchExact)

	_, env := post(t, f.sale.SaveSale, map[string]interface{}{"product_name": "Pen", "quantity": 10, "price": 2.5, "userId": "u1"})
	require.True(t, env.Success)
	var saved models.Sale
	decodeData(t, env, &saved)

	_, env = post(t, f.sale.UpdateSale, map[string]interface{}{"id": saved.ID.Hex(), "product_name": "Pen", "qty": 5, "rate": 3})
	require.True(t, env.Success, env.Message)
	assert.Equal(t, "Sale updated", env.Message)

	sales, err := f.store.Sales.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, 5.0, sales[0].Qty)
	assert.Equal(t, 3.0, sales[0].Rate)
	assert.Equal(t, 15.0, sales[0].Total)
	assert.Equal(t, "u1", sales[0].UserID)
}

func TestUpdateAndDeleteSaleUnknownID(t *testing.T) {
	f := newFixture(t, config.LoginMatchExact)
	missing := primitive.NewObjectID().Hex()

	_, env := post(t, f.sale.UpdateSale, map[string]interface{}{"id": missing, "product_name": "x", "qty": 1, "rate": 1})
	assert.True(t, env.Success)

	_, env = post(t, f.sale.DeleteSale, map[string]string{"id": missing})
	assert.True(t, env.Success)

	_, env = post(t, f.sale.DeleteSale, map[string]string{"id": "bad"})
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid identifier", env.Message)

	_, env = post(t, f.sale.DeleteSale, map[string]string{})
	assert.False(t, env.Success)
	assert.Equal(t, "id is required", env.Message)

	sales, err := f.store.Sales.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestDeleteSale(t *testing.T) {
	f := newFixture(t, config.LoginMatchExact)
	sale := models.NewSale("Pen", 1, 1, "", time.Now())
	require.NoError(t, f.store.Sales.Create(context.Background(), sale))

	_, env := post(t, f.sale.DeleteSale, map[string]string{"id": sale.ID.Hex()})
	require.True(t, env.Success)
	assert.Equal(t, "Sale deleted", env.Message)

	sales, err := f.store.Sales.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestSaleStoreFailure(t *testing.T) {
	sc := NewSaleController(failingSales{err: errors.New("connection refused")}, zaptest.NewLogger(t))

	code, env := post(t, sc.SaveSale, map[string]interface{}{"product_name": "Pen", "quantity": 1, "price": 1})
	assert.Equal(t, http.StatusOK, code)
	assert.False(t, env.Success)
	assert.Equal(t, "Request failed", env.Message)
	assert.Equal(t, "connection refused", env.Error)

	_, env = get(t, sc.ListSales)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}
