package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/you-humble/field-orders/internal/model"
	"github.com/you-humble/field-orders/platform/logger"
)

const dayExportConcurrency = 4

type OrderReader interface {
	OrderByNumber(ctx context.Context, number string) (model.Order, error)
	ListOrdersGroupedByDate(ctx context.Context) ([]model.DayGroup, error)
}

type service struct {
	orders OrderReader
	dir    string
	loc    *time.Location
}

func NewExportService(orders OrderReader, dir string, loc *time.Location) *service {
	if loc == nil {
		loc = time.Local
	}
	return &service{orders: orders, dir: dir, loc: loc}
}

// RenderOrder returns the file name ExportOrder would use and the CSV text of
// one order without touching the disk.
func (s *service) RenderOrder(ctx context.Context, number string) (name, text string, err error) {
	const op = "export.service.RenderOrder"

	order, err := s.orders.OrderByNumber(ctx, number)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	return FileName(order), OrderCSV(order, s.loc), nil
}

// ExportOrder writes the order file into the export directory and returns
// its path.
func (s *service) ExportOrder(ctx context.Context, number string) (string, error) {
	const op = "export.service.ExportOrder"
	log := logger.With(logger.String("order_number", number))

	order, err := s.orders.OrderByNumber(ctx, number)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	path, err := s.write(order)
	if err != nil {
		log.Error(ctx, "write export file", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "order exported", logger.String("path", path))
	return path, nil
}

// ExportDay writes one file per order created on date (YYYY-MM-DD). Orders
// are exported concurrently and the first failure is returned.
func (s *service) ExportDay(ctx context.Context, date string) ([]string, error) {
	const op = "export.service.ExportDay"
	log := logger.With(logger.String("date", date))

	if _, err := time.ParseInLocation(model.DayLayout, date, s.loc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrValidation, err))
	}

	groups, err := s.orders.ListOrdersGroupedByDate(ctx)
	if err != nil {
		log.Error(ctx, "list orders grouped by date", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var day []model.Order
	for _, g := range groups {
		if g.Date == date {
			day = g.Orders
			break
		}
	}

	paths := make([]string, len(day))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(dayExportConcurrency)
	for i, o := range day {
		g.Go(func() error {
			// Listed orders may come without items.
			full, err := s.orders.OrderByNumber(gctx, o.Number)
			if err != nil {
				return err
			}
			paths[i], err = s.write(full)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Error(ctx, "export day", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "day exported", logger.Int("orders", len(paths)))
	return paths, nil
}

func (s *service) write(order model.Order) (string, error) {
	path := filepath.Join(s.dir, FileName(order))
	if err := writeFileAtomic(path, []byte(OrderCSV(order, s.loc))); err != nil {
		return "", err
	}
	return path, nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return mapWriteErr(err)
	}

	tmp, err := os.CreateTemp(dir, ".export-*.tmp")
	if err != nil {
		return mapWriteErr(err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return mapWriteErr(err)
	}
	if err = tmp.Close(); err != nil {
		return mapWriteErr(err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return mapWriteErr(err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return mapWriteErr(err)
	}
	return nil
}

func mapWriteErr(err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %w", model.ErrPermissionDenied, err)
	}
	return fmt.Errorf("%w: %w", model.ErrStorageWrite, err)
}
