package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uptr(v uint) *uint { return &v }

func TestResolveLineItem(t *testing.T) {
	t.Run("serviço", func(t *testing.T) {
		item := ResolveLineItem(uptr(3), nil)
		assert.Equal(t, LineItem{Kind: LineService, ID: 3}, item)
	})

	t.Run("combo", func(t *testing.T) {
		item := ResolveLineItem(nil, uptr(7))
		assert.Equal(t, LineItem{Kind: LineCombo, ID: 7}, item)
	})

	t.Run("serviço tem precedência sobre combo", func(t *testing.T) {
		item := ResolveLineItem(uptr(3), uptr(7))
		assert.Equal(t, LineItem{Kind: LineService, ID: 3}, item)
	})

	t.Run("nenhum vínculo", func(t *testing.T) {
		item := ResolveLineItem(nil, nil)
		assert.Equal(t, LineNone, item.Kind)
	})
}

func TestLineItemDetail(t *testing.T) {
	t.Run("serviço preenche service_id", func(t *testing.T) {
		d := LineItem{Kind: LineService, ID: 3}.Detail(10)
		assert.Equal(t, uint(10), d.AppointmentID)
		require.NotNil(t, d.ServiceID)
		assert.Equal(t, uint(3), *d.ServiceID)
		assert.Nil(t, d.ComboID)
	})

	t.Run("combo preenche combo_id", func(t *testing.T) {
		d := LineItem{Kind: LineCombo, ID: 7}.Detail(10)
		require.NotNil(t, d.ComboID)
		assert.Equal(t, uint(7), *d.ComboID)
		assert.Nil(t, d.ServiceID)
	})

	t.Run("sem vínculo nenhuma FK", func(t *testing.T) {
		d := LineItem{Kind: LineNone}.Detail(10)
		assert.Nil(t, d.ServiceID)
		assert.Nil(t, d.ComboID)
	})
}
