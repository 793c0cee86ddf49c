package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const catalogTTL = 5 * time.Minute

// Catalog é um read-through cache dos preços de catálogo em cima do
// repositório. Redis fora do ar nunca derruba a leitura: qualquer erro de
// cache cai direto na fonte.
type Catalog struct {
	rdb    *redis.Client
	source domain.CatalogReader
}

func NewCatalog(rdb *redis.Client, source domain.CatalogReader) *Catalog {
	return &Catalog{
		rdb:    rdb,
		source: source,
	}
}

func serviceKey(id uint) string {
	return fmt.Sprintf("catalog:service:%d", id)
}

func comboKey(id uint) string {
	return fmt.Sprintf("catalog:combo:%d", id)
}

func (c *Catalog) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	if c.rdb != nil {
		if b, err := c.rdb.Get(ctx, serviceKey(id)).Bytes(); err == nil {
			var service models.Service
			if json.Unmarshal(b, &service) == nil {
				return &service, nil
			}
		}
	}

	service, err := c.source.GetServiceByID(ctx, id)
	if err != nil || service == nil {
		return service, err
	}

	c.store(ctx, serviceKey(id), service)
	return service, nil
}

func (c *Catalog) GetComboByID(
	ctx context.Context,
	id uint,
) (*models.Combo, error) {

	if c.rdb != nil {
		if b, err := c.rdb.Get(ctx, comboKey(id)).Bytes(); err == nil {
			var combo models.Combo
			if json.Unmarshal(b, &combo) == nil {
				return &combo, nil
			}
		}
	}

	combo, err := c.source.GetComboByID(ctx, id)
	if err != nil || combo == nil {
		return combo, err
	}

	c.store(ctx, comboKey(id), combo)
	return combo, nil
}

func (c *Catalog) store(ctx context.Context, key string, v any) {
	if c.rdb == nil {
		return
	}
	if b, err := json.Marshal(v); err == nil {
		c.rdb.Set(ctx, key, b, catalogTTL)
	}
}

// Invalidação chamada pelos writes de catálogo

func (c *Catalog) InvalidateService(ctx context.Context, id uint) {
	if c.rdb != nil {
		c.rdb.Del(ctx, serviceKey(id))
	}
}

func (c *Catalog) InvalidateCombo(ctx context.Context, id uint) {
	if c.rdb != nil {
		c.rdb.Del(ctx, comboKey(id))
	}
}

var _ domain.CatalogReader = (*Catalog)(nil)
