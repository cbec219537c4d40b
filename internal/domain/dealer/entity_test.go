//go:build unit

package dealer_test

import (
	"testing"

	"appointment-gateway/internal/domain/dealer"
	"appointment-gateway/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestRecord(t *testing.T) {
	cases := []struct {
		name         string
		mutate       func(*builder.DealerBuilder)
		wantEngine   bool
		wantBookable bool
	}{
		{name: "installer with engine", mutate: func(*builder.DealerBuilder) {}, wantEngine: true, wantBookable: true},
		{name: "no engine", mutate: func(b *builder.DealerBuilder) { b.WithoutEngine() }},
		{name: "empty engine", mutate: func(b *builder.DealerBuilder) { b.WithEngine("") }},
		{
			name:       "engine but not an installer",
			mutate:     func(b *builder.DealerBuilder) { b.Installer = false },
			wantEngine: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := builder.NewDealerBuilder().With(tc.mutate).BuildRecord()
			assert.Equal(t, tc.wantEngine, rec.HasEngine())
			assert.Equal(t, tc.wantBookable, rec.Bookable())
		})
	}
}

func TestNewInstallerSearch(t *testing.T) {
	q := dealer.NewInstallerSearch(dealer.GeoQuery{Latitude: 52.52, Longitude: 13.405})

	assert.True(t, q.InstallerOnly)
	assert.Equal(t, dealer.SearchPageSize, q.PageSize)
	assert.InDelta(t, 52.52, q.Latitude, 1e-9)
}
