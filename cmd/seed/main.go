// seed puebla la base de datos con artículos y movimientos de demostración.
//
// Uso: go run ./cmd/seed
// Idempotente por referencia: si un artículo ya existe se salta junto con
// sus movimientos.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/mouyassirm/elles224/internal/application/dto"
	"github.com/mouyassirm/elles224/internal/application/ledger"
	"github.com/mouyassirm/elles224/internal/application/stock"
	"github.com/mouyassirm/elles224/internal/domain"
	"github.com/mouyassirm/elles224/internal/infrastructure/postgres"
	"github.com/mouyassirm/elles224/pkg/config"
	"github.com/mouyassirm/elles224/pkg/logger"
	"github.com/shopspring/decimal"
)

type seedItem struct {
	reference string
	name      string
	quantity  int64
	unitPrice string
	// compras de reposición y ventas de demostración
	purchases []int64
	sales     []seedSale
}

type seedSale struct {
	quantity int64
	discount string
}

var seedItems = []seedItem{
	{"EL-001", "Lámpara de mesa Aria", 40, "35.50", []int64{10}, []seedSale{{3, "0"}, {2, "10"}}},
	{"EL-002", "Lámpara de pie Bruma", 15, "89.90", nil, []seedSale{{1, "0"}}},
	{"TX-010", "Cojín lino natural", 120, "18.00", []int64{30, 20}, []seedSale{{12, "5"}, {6, "0"}, {4, "15"}}},
	{"TX-011", "Manta algodón gris", 60, "42.00", nil, []seedSale{{5, "0"}}},
	{"DC-020", "Jarrón cerámica blanco", 8, "27.50", []int64{4}, []seedSale{{2, "20"}}},
	{"DC-021", "Espejo redondo latón", 5, "110.00", nil, nil},
	{"MB-030", "Mesa auxiliar roble", 12, "145.00", nil, []seedSale{{1, "0"}, {1, "10"}}},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := stock.New(itemRepo)
	ledgerUC := ledger.New(txRunner, itemRepo, movementRepo)

	var created, skipped int
	for _, s := range seedItems {
		item, err := stockUC.Create(ctx, dto.CreateItemRequest{
			Reference: s.reference,
			Name:      s.name,
			Quantity:  s.quantity,
			UnitPrice: decimal.RequireFromString(s.unitPrice),
		})
		if errors.Is(err, domain.ErrDuplicateReference) {
			skipped++
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("reference", s.reference).Msg("crear artículo")
		}
		created++

		for _, qty := range s.purchases {
			_, err := ledgerUC.RecordPurchase(ctx, dto.RecordPurchaseRequest{
				ItemID:   item.ID,
				Quantity: qty,
			})
			if err != nil {
				log.Fatal().Err(err).Str("reference", s.reference).Msg("registrar compra")
			}
		}

		for _, sale := range s.sales {
			_, err := ledgerUC.RecordSale(ctx, dto.RecordSaleRequest{
				ItemID:          item.ID,
				Quantity:        sale.quantity,
				DiscountPercent: decimal.RequireFromString(sale.discount),
			})
			if err != nil {
				log.Fatal().Err(err).Str("reference", s.reference).Msg("registrar venta")
			}
		}
	}

	log.Info().Int("created", created).Int("skipped", skipped).Msg("datos de demostración cargados")
}
