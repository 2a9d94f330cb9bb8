package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/shoping-demo/pkg/apperr"
	"github.com/dwikikusuma/shoping-demo/pkg/config"
	"github.com/dwikikusuma/shoping-demo/pkg/logger"
)

func TestRun(t *testing.T) {
	var logs, out bytes.Buffer
	log := logger.New(logger.Options{Service: "demo", Level: "info", Writer: &logs})

	err := run(context.Background(), log, config.Config{DiscountPercent: 10}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "subtotal: $350.00")
	assert.Contains(t, out.String(), "total: $315.00")
	assert.Contains(t, logs.String(), `"msg":"customer registered"`)
	assert.Contains(t, logs.String(), `"msg":"cart cleared"`)
}

func TestRun_BadDiscount(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), nil, config.Config{DiscountPercent: 150}, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	assert.Contains(t, err.Error(), "quote")

	gotStatus, gotCode, _ := apperr.HTTPStatus(err)
	assert.Equal(t, 400, gotStatus)
	assert.Equal(t, "INVALID_ARGUMENT", gotCode)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := run(ctx, nil, config.Config{}, &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
