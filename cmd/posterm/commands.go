package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"go-restaurant-pos/billing"
	"go-restaurant-pos/client"
	"go-restaurant-pos/config"
	"go-restaurant-pos/models"
	"go-restaurant-pos/pos"
)

var errUsage = errors.New("invalid arguments")

type terminal struct {
	api     *client.Client
	profile config.Profile
	out     io.Writer
}

func (t *terminal) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "tables":
		return t.tables(ctx)
	case "menu":
		return t.menu(ctx, args)
	case "order":
		return t.order(ctx, args)
	case "pay":
		return t.pay(ctx, args)
	case "bills":
		return t.bills(ctx)
	case "report":
		return t.report(ctx, args)
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

// itemList collects repeated -add/-set flags.
type itemList []string

func (l *itemList) String() string { return strings.Join(*l, ",") }

func (l *itemList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// parseItemSpec reads MENU_ID[:QTY]. QTY defaults to defaultQty.
func parseItemSpec(spec string, defaultQty int) (string, int, error) {
	id, qtyText, hasQty := strings.Cut(spec, ":")
	if id == "" {
		return "", 0, fmt.Errorf("%w: empty menu item in %q", errUsage, spec)
	}
	if !hasQty {
		return id, defaultQty, nil
	}
	qty, err := strconv.Atoi(qtyText)
	if err != nil {
		return "", 0, fmt.Errorf("%w: bad quantity in %q", errUsage, spec)
	}
	return id, qty, nil
}

func (t *terminal) tables(ctx context.Context) error {
	tables, err := t.api.Tables(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tID\tCAPACITY\tSTATUS\tORDER")
	for _, tb := range tables {
		order := "-"
		if tb.Current_order_id != nil {
			order = *tb.Current_order_id
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", tb.Number, tb.Table_id, tb.Capacity, tb.Status, order)
	}
	return w.Flush()
}

func (t *terminal) menu(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("menu", flag.ContinueOnError)
	fs.SetOutput(t.out)
	term := fs.String("q", "", "Search name and description")
	category := fs.String("category", "", "Only this category, or all")
	listCategories := fs.Bool("categories", false, "List categories instead of items")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, err := t.api.Menu(ctx)
	if err != nil {
		return err
	}
	if *listCategories {
		for _, c := range pos.MenuCategories(items) {
			fmt.Fprintln(t.out, c)
		}
		return nil
	}
	w := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE")
	for _, m := range pos.FilterMenu(items, *term, *category) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\n", m.Menu_item_id, m.Name, m.Category, m.Price)
	}
	return w.Flush()
}

func (t *terminal) order(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	fs.SetOutput(t.out)
	tableID := fs.String("table", "", "Table id")
	var adds, sets itemList
	fs.Var(&adds, "add", "Add MENU_ID[:QTY] (repeatable)")
	fs.Var(&sets, "set", "Set MENU_ID:QTY, 0 removes (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tableID == "" {
		return fmt.Errorf("%w: -table is required", errUsage)
	}

	r := pos.NewReconciler(t.api)
	defer r.Close()
	if err := r.LoadForTable(ctx, *tableID); err != nil {
		return err
	}

	menu := map[string]models.MenuItem{}
	for _, m := range r.Menu() {
		menu[m.Menu_item_id] = m
	}
	for _, spec := range adds {
		id, qty, err := parseItemSpec(spec, 1)
		if err != nil {
			return err
		}
		item, ok := menu[id]
		if !ok {
			return fmt.Errorf("menu item %s not found", id)
		}
		for i := 0; i < qty; i++ {
			if !r.AddItem(item) {
				return fmt.Errorf("menu item %s cannot be ordered", id)
			}
		}
	}
	for _, spec := range sets {
		id, qty, err := parseItemSpec(spec, 0)
		if err != nil {
			return err
		}
		r.SetQuantity(id, qty)
	}

	if len(adds) > 0 || len(sets) > 0 {
		if err := r.Submit(ctx); err != nil {
			return err
		}
	}
	t.printCart(r)
	return nil
}

func (t *terminal) printCart(r *pos.Reconciler) {
	table := r.Table()
	fmt.Fprintf(t.out, "Table %d (%s) mode=%s", table.Number, table.Table_id, r.Mode())
	if id := r.OrderID(); id != "" {
		fmt.Fprintf(t.out, " order=%s", id)
	}
	fmt.Fprintln(t.out)

	w := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	for _, e := range r.Cart() {
		fmt.Fprintf(w, "%s\t%s\tx%d\t%s\n", e.MenuItemID, e.Name, e.Quantity, e.Amount().StringFixed(2))
	}
	fmt.Fprintf(w, "\tSubtotal\t\t%s\n", r.Subtotal().StringFixed(2))
	w.Flush()
}

func (t *terminal) pay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pay", flag.ContinueOnError)
	fs.SetOutput(t.out)
	orderID := fs.String("order", "", "Order id")
	tax := fs.Float64("tax", 5, "Tax rate in percent")
	method := fs.String("method", models.PaymentCash, "cash, card or digital")
	backendNumbers := fs.Bool("sequence", false, "Let the backend assign INV-YYYYMMDD-NNNN invoice numbers")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *orderID == "" {
		return fmt.Errorf("%w: -order is required", errUsage)
	}
	if !t.profile.AllowsTaxRate(*tax) {
		return fmt.Errorf("%w: tax rate %g%% is not offered", errUsage, *tax)
	}

	order, err := t.api.Order(ctx, *orderID)
	if err != nil {
		return err
	}
	if order.IsPaid() {
		return fmt.Errorf("order %s is already paid", order.Order_id)
	}

	calc := billing.NewCalculator(t.api, t.profile.Issuer)
	calc.ReceiptURLBase = t.profile.ReceiptURLBase
	if *backendNumbers {
		calc.Numberer = billing.BackendNumbers
	}
	res, err := calc.FinalizePayment(ctx, order, *tax, *method)
	if err != nil {
		return err
	}

	fmt.Fprintf(t.out, "Subtotal: %s\n", res.Totals.Subtotal.StringFixed(2))
	fmt.Fprintf(t.out, "Tax (%s%%): %s\n", res.Totals.TaxRate.String(), res.Totals.Tax.StringFixed(2))
	fmt.Fprintf(t.out, "Total: %s\n", res.Totals.Total.StringFixed(2))
	if res.InvoiceSaved {
		fmt.Fprintf(t.out, "Invoice: %s\n", res.InvoiceNumber)
	} else {
		fmt.Fprintln(t.out, "Invoice: not saved")
	}
	if res.PrintSuccess {
		fmt.Fprintln(t.out, "Receipt printed")
	} else {
		fmt.Fprintln(t.out, "Receipt not printed")
	}
	return nil
}

func (t *terminal) bills(ctx context.Context) error {
	bills, err := t.api.Bills(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INVOICE\tORDER\tDATE\tMETHOD\tTOTAL")
	for _, b := range bills {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\n", b.Invoice_number, b.Order_id, b.Bill_date.Format("2006-01-02"), b.Payment_method, b.Total)
	}
	return w.Flush()
}

func (t *terminal) report(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(t.out)
	from := fs.String("from", "", "First day, YYYY-MM-DD")
	to := fs.String("to", "", "Last day, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *from == "" || *to == "" {
		return fmt.Errorf("%w: -from and -to are required", errUsage)
	}

	s, err := t.api.SalesSummary(ctx, *from, *to)
	if err != nil {
		return err
	}
	fmt.Fprintf(t.out, "Sales %s to %s\n", s.From, s.To)
	fmt.Fprintf(t.out, "Bills: %d\nSubtotal: %.2f\nTax: %.2f\nTotal: %.2f\n", s.Bills, s.Subtotal, s.Tax_amount, s.Total)
	methods := make([]string, 0, len(s.By_payment_method))
	for method := range s.By_payment_method {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	for _, method := range methods {
		fmt.Fprintf(t.out, "  %s: %.2f\n", method, s.By_payment_method[method])
	}
	return nil
}
