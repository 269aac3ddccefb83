package utils_test

import (
	"testing"

	"param-host/core/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int
		wantErr bool
	}{
		{"Int", 3, 3, false},
		{"Int64", int64(7), 7, false},
		{"Uint8", uint8(2), 2, false},
		{"IntegralFloat", 4.0, 4, false},
		{"FractionalFloat", 4.5, 0, true},
		{"String", " 12 ", 12, false},
		{"Bytes", []byte("5"), 5, false},
		{"BadString", "twelve", 0, true},
		{"Nil", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ToInt(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, utils.ErrNotConvertible)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToFloat(t *testing.T) {
	f, err := utils.ToFloat(int64(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	f, err = utils.ToFloat("1.25")
	require.NoError(t, err)
	assert.Equal(t, 1.25, f)

	_, err = utils.ToFloat(true)
	assert.ErrorIs(t, err, utils.ErrNotConvertible)
}

func TestToBool(t *testing.T) {
	tests := []struct {
		in      any
		want    bool
		wantErr bool
	}{
		{true, true, false},
		{1, true, false},
		{0.0, false, false},
		{"TRUE", true, false},
		{"off", false, false},
		{2, false, true},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		got, err := utils.ToBool(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "%v", tt.in)
			continue
		}
		assert.NoError(t, err, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "abc", utils.ToString([]byte("abc")))
	assert.Equal(t, "", utils.ToString(nil))
	assert.Equal(t, "1.5", utils.ToString(1.5))
}
