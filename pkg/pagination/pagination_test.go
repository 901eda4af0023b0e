package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		want     Params
		wantErr  bool
	}{
		{
			name:     "defaults when absent",
			rawQuery: "",
			want:     Params{Page: 1, PageSize: 10},
		},
		{
			name:     "explicit values",
			rawQuery: "page=3&pageSize=25",
			want:     Params{Page: 3, PageSize: 25},
		},
		{
			name:     "non-numeric page",
			rawQuery: "page=abc",
			wantErr:  true,
		},
		{
			name:     "non-numeric pageSize",
			rawQuery: "pageSize=ten",
			wantErr:  true,
		},
		{
			name:     "zero page",
			rawQuery: "page=0",
			wantErr:  true,
		},
		{
			name:     "negative pageSize",
			rawQuery: "pageSize=-5",
			wantErr:  true,
		},
		{
			name:     "pageSize capped",
			rawQuery: "pageSize=1000",
			want:     Params{Page: 1, PageSize: MaxPageSize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.rawQuery)
			assert.NoError(t, err)

			got, err := Parse(query)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPage)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSkipAndLimit(t *testing.T) {
	p := Params{Page: 2, PageSize: 5}
	assert.Equal(t, 5, p.Skip())
	assert.Equal(t, 5, p.Limit())

	p = Params{Page: 1, PageSize: 10}
	assert.Equal(t, 0, p.Skip())
}

func TestTotalPages(t *testing.T) {
	p := Params{Page: 1, PageSize: 5}
	assert.Equal(t, 3, p.TotalPages(12))
	assert.Equal(t, 2, p.TotalPages(10))
	assert.Equal(t, 1, p.TotalPages(1))
	assert.Equal(t, 0, p.TotalPages(0))
}
