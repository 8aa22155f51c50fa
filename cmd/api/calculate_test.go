package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"calculate", "--bill", "$150"})
	require.NoError(t, cmd.Execute())

	var got estimateOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "150", got.MonthlyBill)
	assert.Equal(t, "128", got.MonthlySavings)
	assert.Equal(t, "1536", got.YearOneSavings)
	assert.Equal(t, "27648", got.TwentyYearSavings)
	assert.Equal(t, "15000", got.AnnualKwh)
	assert.Equal(t, "10.7kW", got.SystemSize)
}

func TestCalculateCommandRejectsBadBill(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"calculate", "--bill", "lots"})
	assert.Error(t, cmd.Execute())
}
