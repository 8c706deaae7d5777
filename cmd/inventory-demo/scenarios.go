package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/inventory-rules/internal/model"
	"github.com/tuanvumaihuynh/inventory-rules/internal/service"
	"github.com/tuanvumaihuynh/inventory-rules/pkg/zerror"
)

const dateLayout = "2006-01-02"

// demo walks through the inventory use cases and prints each outcome.
type demo struct {
	svc service.InventoryService
	out io.Writer
	loc *time.Location
}

func newDemo(svc service.InventoryService, out io.Writer, loc *time.Location) *demo {
	return &demo{svc: svc, out: out, loc: loc}
}

func (d *demo) run(ctx context.Context) error {
	yves, err := d.addProduct(ctx, "add product without expiration", model.ProductCandidate{
		Name:           "Yves",
		Price:          decimal.NewFromInt(1),
		Description:    "Eau de parfum",
		ExpirationDate: mo.None[time.Time](),
	})
	if err != nil {
		return err
	}

	if _, err := d.addProduct(ctx, "add product without name", model.ProductCandidate{
		Name:           "",
		Price:          decimal.NewFromInt(15),
		Description:    "Some Description",
		ExpirationDate: mo.Some(time.Date(2027, time.January, 1, 0, 0, 0, 0, d.loc)),
	}); err != nil {
		return err
	}

	yvesID := yves.OrEmpty().ID

	order, err := d.placeOrder(ctx, "place order", yvesID, "John Doe", 2)
	if err != nil {
		return err
	}

	if _, err := d.placeOrder(ctx, "place order without product", uuid.Nil, "John Doe", 2); err != nil {
		return err
	}

	orderID := order.OrEmpty().ID

	if err := d.applyDiscount(ctx, "apply discount", orderID, decimal.NewFromInt(10)); err != nil {
		return err
	}

	if err := d.applyDiscount(ctx, "apply discount too large", orderID, decimal.NewFromInt(50)); err != nil {
		return err
	}

	if err := d.deleteProduct(ctx, "delete product", yvesID); err != nil {
		return err
	}

	return d.deleteProduct(ctx, "delete product again", yvesID)
}

func (d *demo) addProduct(ctx context.Context, name string, candidate model.ProductCandidate) (mo.Option[model.Product], error) {
	product, err := d.svc.AddProduct(ctx, candidate)
	if err != nil {
		return mo.None[model.Product](), d.reject(name, err)
	}

	expirationDate := "Never expires"
	if date, ok := product.ExpirationDate.Get(); ok {
		expirationDate = date.In(d.loc).Format(dateLayout)
	}
	d.printf(name, "product: id=%s price=%s expirationDate=%s", product.ID, product.Price, expirationDate)

	return mo.Some(product), nil
}

func (d *demo) placeOrder(ctx context.Context, name string, productID uuid.UUID, customerName string, qty int) (mo.Option[model.Order], error) {
	order, err := d.svc.PlaceOrder(ctx, productID, customerName, qty)
	if err != nil {
		return mo.None[model.Order](), d.reject(name, err)
	}

	d.printf(name, "order: id=%s productId=%s customerName=%s qty=%d discount=%s",
		order.ID, order.ProductID, order.CustomerName, order.Qty, renderDiscount(order.Discount))

	return mo.Some(order), nil
}

func (d *demo) applyDiscount(ctx context.Context, name string, orderID uuid.UUID, percent decimal.Decimal) error {
	order, err := d.svc.ApplyDiscount(ctx, orderID, percent)
	if err != nil {
		return d.reject(name, err)
	}

	d.printf(name, "order: id=%s discount=%s", order.ID, renderDiscount(order.Discount))
	return nil
}

func (d *demo) deleteProduct(ctx context.Context, name string, productID uuid.UUID) error {
	if err := d.svc.DeleteProduct(ctx, productID); err != nil {
		return d.reject(name, err)
	}

	d.printf(name, "product deleted: id=%s", productID)
	return nil
}

// reject prints a rule failure and returns any other error.
func (d *demo) reject(name string, err error) error {
	var zErr zerror.ZError
	if !errors.As(err, &zErr) {
		return fmt.Errorf("%s: %w", name, err)
	}

	d.printf(name, "error: %s (%s)", zErr.Msg(), zErr.Code())
	return nil
}

func (d *demo) printf(name, format string, args ...any) {
	//nolint:errcheck
	fmt.Fprintf(d.out, "%-32s "+format+"\n", append([]any{name + ":"}, args...)...)
}

func renderDiscount(discount mo.Option[decimal.Decimal]) string {
	percent, ok := discount.Get()
	if !ok {
		return "none"
	}
	return percent.String() + "%"
}
