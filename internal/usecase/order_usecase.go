package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tienda/internal/domain/model"
	repo "tienda/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// 注文確認メールの約束。送信失敗は注文を巻き戻さない。
type Notifier interface {
	Send(ctx context.Context, recipient string, message string) error
}

type OrderUsecase struct {
	tx       repo.TransactionManager
	notifier Notifier
	log      *logrus.Logger
}

func NewOrderUsecase(tx repo.TransactionManager, notifier Notifier, log *logrus.Logger) *OrderUsecase {
	return &OrderUsecase{tx: tx, notifier: notifier, log: log}
}

type OrderItemInput struct {
	ProductID int64
	Quantity  int64
}

type PlaceOrderInput struct {
	CustomerID int64
	Items      []OrderItemInput
}

type OrderItemOutput struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"producto_id"`
	Quantity  int64           `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type OrderOutput struct {
	ID         int64             `json:"id"`
	CustomerID int64             `json:"cliente_id"`
	Status     string            `json:"estado"`
	CreatedAt  time.Time         `json:"creado_en"`
	Items      []OrderItemOutput `json:"items"`
	Total      decimal.Decimal   `json:"total"`
}

func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (OrderOutput, error) {
	if in.CustomerID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "cliente_id inválido")
	}
	if len(in.Items) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "la orden necesita items")
	}

	// 同じproducto_idが2回来たら拒否する（明細の一意制約と同じ判断）
	seen := make(map[int64]bool, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID <= 0 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "producto_id inválido")
		}
		if it.Quantity <= 0 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "cantidad debe ser mayor que 0")
		}
		if seen[it.ProductID] {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("producto %d duplicado en la orden", it.ProductID))
		}
		seen[it.ProductID] = true
	}

	var out OrderOutput
	var customerEmail string

	//検証＋減算＋作成は1トランザクション。途中のerrorで全部ロールバック。
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cli, err := r.Customers().FindByID(ctx, in.CustomerID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusBadRequest, "Cliente no existe")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		customerEmail = cli.Email

		orderItems := make([]model.OrderItem, 0, len(in.Items))
		total := decimal.Zero

		for _, it := range in.Items {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusBadRequest,
					fmt.Sprintf("Producto %d no existe", it.ProductID))
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//在庫減算（足りないなら false → ロールバックで先行分も戻る）
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusBadRequest,
					fmt.Sprintf("Stock insuficiente para SKU %s (solicitado %d, disponible %d)",
						p.SKU, it.Quantity, p.Stock))
			}

			//価格は検証時の読みをスナップショット（減算後に再読しない）
			subtotal := p.Price.Mul(decimal.NewFromInt(it.Quantity))
			orderItems = append(orderItems, model.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: p.Price,
				Subtotal:  subtotal,
			})
			total = total.Add(subtotal)
		}

		now := time.Now()
		orderID, err := r.Orders().Create(ctx, model.Order{
			CustomerID: in.CustomerID,
			Status:     model.OrderStatusPending,
			CreatedAt:  now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		for i := range orderItems {
			orderItems[i].OrderID = orderID
		}
		out = toOrderOutput(model.Order{
			ID:         orderID,
			CustomerID: in.CustomerID,
			Status:     model.OrderStatusPending,
			CreatedAt:  now,
		}, orderItems)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}

	//確認メールはトランザクションの外。失敗してもログだけ。
	if u.notifier != nil {
		msg := fmt.Sprintf("Tu pedido #%d fue recibido. Total: %s", out.ID, out.Total.StringFixed(2))
		if err := u.notifier.Send(ctx, customerEmail, msg); err != nil {
			u.log.WithError(err).WithField("order_id", out.ID).
				Warn("no se pudo enviar la notificación")
		}
	}

	return out, nil
}

type ListOrdersInput struct {
	Status     string
	CustomerID *int64
	Skip       int
	Limit      int
}

func (u *OrderUsecase) List(ctx context.Context, in ListOrdersInput) ([]OrderOutput, error) {
	if in.Status != "" && !model.OrderStatus(in.Status).Valid() {
		return nil, NewHTTPError(http.StatusBadRequest, "estado inválido")
	}
	skip, limit, err := normalizePage(in.Skip, in.Limit)
	if err != nil {
		return nil, err
	}

	var outs []OrderOutput

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().List(ctx, repo.OrderListFilter{
			Status:     in.Status,
			CustomerID: in.CustomerID,
			Skip:       skip,
			Limit:      limit,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outs, nil
}

func (u *OrderUsecase) Get(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "id inválido")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Orden no encontrada")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 遷移グラフは検証しない（元仕様どおり上書き）。値の妥当性だけ見る。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status string) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "id inválido")
	}
	st := model.OrderStatus(status)
	if !st.Valid() {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "estado inválido")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().UpdateStatus(ctx, orderID, st); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "Orden no encontrada")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 注文削除。明細も消えるが在庫は戻さない（元仕様のまま）。
func (u *OrderUsecase) Delete(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "id inválido")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().FindByID(ctx, orderID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "Orden no encontrada")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().DeleteByOrderID(ctx, orderID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.Orders().Delete(ctx, orderID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
		//totalは常に明細の合計から導出する（列には持たない）
		total = total.Add(it.Subtotal)
	}

	return OrderOutput{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
		Items:      outItems,
		Total:      total,
	}
}
