// Package reporting assembles the bookstore reports from domain data and
// hands them to the report builders.
package reporting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kislikjeka/bookstore/internal/platform/client"
	"github.com/kislikjeka/bookstore/internal/platform/product"
	"github.com/kislikjeka/bookstore/internal/platform/sale"
	"github.com/kislikjeka/bookstore/internal/report"
	"github.com/kislikjeka/bookstore/pkg/logger"
)

// Kind names a report
type Kind string

const (
	KindSales    Kind = "sales"
	KindStock    Kind = "stock"
	KindClients  Kind = "clients"
	KindProducts Kind = "products"
)

// ErrUnknownKind is returned for report names the service does not produce
var ErrUnknownKind = errors.New("unknown report kind")

// ParseKind reads a report name from a URL
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case KindSales, KindStock, KindClients, KindProducts:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// SaleSource provides sold items
type SaleSource interface {
	Lines(ctx context.Context, p sale.Period) ([]sale.Line, error)
}

// ProductSource provides the catalog with category names
type ProductSource interface {
	List(ctx context.Context) ([]*product.Product, error)
}

// ClientSource provides the client directory
type ClientSource interface {
	List(ctx context.Context) ([]*client.Client, error)
}

// Request describes one report download
type Request struct {
	Kind        Kind
	Format      report.Type
	Period      sale.Period
	RequestedBy string
}

// Service builds reports from the domain sources
type Service struct {
	sales    SaleSource
	products ProductSource
	clients  ClientSource
	logo     []byte
	logger   *logger.Logger
	now      func() time.Time
}

// NewService creates a reporting service. logo may be nil.
func NewService(sales SaleSource, products ProductSource, clients ClientSource, logo []byte, log *logger.Logger) *Service {
	return &Service{
		sales:    sales,
		products: products,
		clients:  clients,
		logo:     logo,
		logger:   log,
		now:      time.Now,
	}
}

// Generate fetches the rows for req.Kind and renders them in req.Format.
// Source data is read before rendering starts; rendering itself is not
// cancelable.
func (s *Service) Generate(ctx context.Context, req Request) (*report.Result, error) {
	if req.Format != report.PDF && req.Format != report.Excel {
		return nil, fmt.Errorf("%w: %v", report.ErrUnknownType, req.Format)
	}
	start := time.Now()

	var (
		res *report.Result
		err error
	)
	switch req.Kind {
	case KindSales:
		res, err = s.salesReport(ctx, req)
	case KindStock:
		res, err = s.stockReport(ctx, req)
	case KindClients:
		res, err = s.clientsReport(ctx, req)
	case KindProducts:
		res, err = s.productsReport(ctx, req)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}

	log := s.logger.WithContext(ctx).
		WithField("report", string(req.Kind)).
		WithField("format", req.Format.String()).
		WithDuration(time.Since(start))
	if err != nil {
		log.WithError(err).Error("report generation failed")
		return nil, err
	}
	log.Info("report generated", "file", res.FileName, "bytes", len(res.Content))
	return res, nil
}

func (s *Service) content(title, subject string, headers []string, rows [][]any, req Request) report.Content {
	return report.Content{
		Title:     title,
		Headers:   headers,
		Rows:      rows,
		Author:    "Librería",
		Subject:   subject,
		CreatedBy: req.RequestedBy,
		Generated: s.now(),
		Logo:      s.logo,
	}
}

func (s *Service) fileName(base string, req Request) string {
	return report.FileName(base, req.Format, s.now())
}

var salesHeaders = []string{"Fecha", "Cliente", "Producto", "Categoría", "Cantidad", "Precio", "Subtotal"}

func (s *Service) salesReport(ctx context.Context, req Request) (*report.Result, error) {
	lines, err := s.sales.Lines(ctx, req.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	rows := make([][]any, 0, len(lines))
	byCategory := make(map[string]float64)
	unitsByProduct := make(map[string]float64)
	revenueByProduct := make(map[string]float64)
	for _, l := range lines {
		subtotal := l.Subtotal()
		rows = append(rows, []any{l.SoldAt, l.ClientName, l.ProductName, l.CategoryName, l.Quantity, l.UnitPrice, subtotal})

		amount := subtotal.InexactFloat64()
		byCategory[l.CategoryName] += amount
		unitsByProduct[l.ProductName] += float64(l.Quantity)
		revenueByProduct[l.ProductName] += amount
	}

	c := s.content("Reporte de ventas", periodSubject(req.Period), salesHeaders, rows, req)
	var d report.Director
	g := d.ConstructWithCharts(report.NewBuilder(req.Format), c, report.Charts{
		Categories:     byCategory,
		ProductUnits:   unitsByProduct,
		ProductRevenue: revenueByProduct,
	})
	return g.Generate(s.fileName("ventas", req))
}

var stockHeaders = []string{"Producto", "Categoría", "Precio", "Stock", "Valor"}

func (s *Service) stockReport(ctx context.Context, req Request) (*report.Result, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	rows := make([][]any, 0, len(products))
	valueByCategory := make(map[string]float64)
	for _, p := range products {
		value := p.StockValue()
		rows = append(rows, []any{p.Name, p.CategoryName, p.Price, p.Stock, value})
		valueByCategory[p.CategoryName] += value.InexactFloat64()
	}

	c := s.content("Reporte de inventario", "Inventario", stockHeaders, rows, req)
	var d report.Director
	g := d.ConstructWithCharts(report.NewBuilder(req.Format), c, report.Charts{Categories: valueByCategory})
	return g.Generate(s.fileName("inventario", req))
}

var clientHeaders = []string{"Nombre", "Apellido", "Correo", "Teléfono", "Dirección"}

func (s *Service) clientsReport(ctx context.Context, req Request) (*report.Result, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}

	c := s.content("Directorio de clientes", "Clientes", clientHeaders, nil, req)
	var d report.Director
	if len(clients) == 0 {
		return d.ConstructEmpty(report.NewBuilder(req.Format), c).Generate(s.fileName("clientes", req))
	}

	c.Rows = make([][]any, 0, len(clients))
	for _, cl := range clients {
		c.Rows = append(c.Rows, []any{cl.FirstName, cl.LastName, cl.Email, cl.Phone, cl.Address})
	}
	return d.Construct(report.NewBuilder(req.Format), c).Generate(s.fileName("clientes", req))
}

func (s *Service) productsReport(ctx context.Context, req Request) (*report.Result, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	rows := make([]report.ProductRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, report.ProductRow{
			Name:        p.Name,
			Category:    p.CategoryName,
			Price:       p.Price,
			Stock:       p.Stock,
			Description: p.Description,
		})
	}

	d := report.NewProductDirector(report.NewProductBuilder(req.Format))
	return d.Catalog(report.CatalogRequest{
		Title:       "Catálogo de productos",
		GeneratedBy: req.RequestedBy,
		GeneratedAt: s.now(),
		Logo:        s.logo,
		Rows:        rows,
		FileName:    s.fileName("productos", req),
	})
}

func periodSubject(p sale.Period) string {
	switch {
	case p.From.IsZero() && p.To.IsZero():
		return "Ventas"
	case p.To.IsZero():
		return "Ventas desde " + p.From.Format(report.DateLayout)
	case p.From.IsZero():
		return "Ventas hasta " + p.To.Format(report.DateLayout)
	default:
		return "Ventas del " + p.From.Format(report.DateLayout) + " al " + p.To.Format(report.DateLayout)
	}
}
