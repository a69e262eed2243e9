package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOnly(t *testing.T) {
	d, err := ParseDateOnly("2025-12-09")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-09", d.String())

	_, err = ParseDateOnly("09/12/2025")
	assert.Error(t, err)

	_, err = ParseDateOnly("2025-13-40")
	assert.Error(t, err)
}

func TestDateOnlyJSON(t *testing.T) {
	d, err := ParseDateOnly("2024-02-29")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-29"`, string(b))

	var parsed DateOnly
	require.NoError(t, json.Unmarshal([]byte(`"2024-02-29"`), &parsed))
	assert.Equal(t, d, parsed)

	require.NoError(t, json.Unmarshal([]byte(`null`), &parsed))
	assert.True(t, parsed.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"29-02-2024"`), &parsed))
	assert.Error(t, json.Unmarshal([]byte(`20240229`), &parsed))
}

func TestDateOnlyValue(t *testing.T) {
	d, err := ParseDateOnly("2025-01-15")
	require.NoError(t, err)

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", v)

	// Zero date maps to NULL so the store constraint rejects it.
	v, err = DateOnly{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDateOnlyScan(t *testing.T) {
	var d DateOnly
	require.NoError(t, d.Scan("2025-01-15"))
	assert.Equal(t, "2025-01-15", d.String())

	require.NoError(t, d.Scan([]byte("2025-01-16")))
	assert.Equal(t, "2025-01-16", d.String())

	require.NoError(t, d.Scan(time.Date(2025, 1, 17, 22, 45, 0, 0, time.UTC)))
	assert.Equal(t, "2025-01-17", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
