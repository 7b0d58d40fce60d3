package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pedrolima/coffee-delivery-backend/pkg/enums"
)

// ArchivedOrder is the append-only history row kept for every placed order.
// The storefront itself only ever reads the current order; the archive is
// for the delivery side.
type ArchivedOrder struct {
	ID          uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	CEP         string      `gorm:"column:cep;not null"`
	Rua         string      `gorm:"column:rua;not null"`
	Numero      string      `gorm:"column:numero;not null"`
	Complemento string      `gorm:"column:complemento"`
	Bairro      string      `gorm:"column:bairro;not null"`
	Cidade      string      `gorm:"column:cidade;not null"`
	UF          string      `gorm:"column:uf;not null"`
	Pagamento   string      `gorm:"column:pagamento;not null"`
	Items       []OrderItem `gorm:"column:items;serializer:json;not null"`
	PlacedAt    time.Time   `gorm:"column:placed_at;not null"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime"`
}

func (ArchivedOrder) TableName() string {
	return "orders"
}

// Archive records placed orders for later inspection. Failures here never
// fail a checkout.
type Archive interface {
	Save(ctx context.Context, order *Order) error
	Recent(ctx context.Context, limit int) ([]Order, error)
}

type archive struct {
	db *gorm.DB
}

// NewArchive builds an order archive bound to the provided DB.
func NewArchive(db *gorm.DB) Archive {
	return &archive{db: db}
}

// Migrate creates the archive schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ArchivedOrder{})
}

func (a *archive) Save(ctx context.Context, order *Order) error {
	row := toArchivedOrder(order)
	return a.db.WithContext(ctx).Create(&row).Error
}

func (a *archive) Recent(ctx context.Context, limit int) ([]Order, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []ArchivedOrder
	err := a.db.WithContext(ctx).
		Order("placed_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromArchivedOrder(row))
	}
	return out, nil
}

func toArchivedOrder(order *Order) ArchivedOrder {
	placedAt, err := order.PlacedAt()
	if err != nil {
		placedAt = time.Now().UTC()
	}
	return ArchivedOrder{
		ID:          order.ID,
		CEP:         order.CEP,
		Rua:         order.Rua,
		Numero:      order.Numero,
		Complemento: order.Complemento,
		Bairro:      order.Bairro,
		Cidade:      order.Cidade,
		UF:          order.UF,
		Pagamento:   order.Pagamento.String(),
		Items:       order.Items,
		PlacedAt:    placedAt,
	}
}

func fromArchivedOrder(row ArchivedOrder) Order {
	return Order{
		ID:          row.ID,
		CEP:         row.CEP,
		Rua:         row.Rua,
		Numero:      row.Numero,
		Complemento: row.Complemento,
		Bairro:      row.Bairro,
		Cidade:      row.Cidade,
		UF:          row.UF,
		Pagamento:   enums.PaymentMethod(row.Pagamento),
		Items:       row.Items,
		Timestamp:   row.PlacedAt.UTC().Format(time.RFC3339),
	}
}
