package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"samsip_orders/internal/cache"
	"samsip_orders/internal/httperr"
	"samsip_orders/internal/models"
	"samsip_orders/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Spreadsheet column layout, matching the upload template:
// [0]=date [1]=supplier [2]=item [3]=unit price [4]=unit [5]=quantity
// [6]=total [7]=payment schedule [8]=purchase cycle [9]=client [10]=notes.
const (
	colDate = iota
	colSupplier
	colItem
	colPrice
	colUnit
	colQuantity
	colTotal
	colPaymentSchedule
	colPurchaseCycle
	colClient
	colNotes
)

type ImportService interface {
	ImportOrders(filename string, file io.Reader) (int, error)
}

type importService struct {
	db           *gorm.DB
	orderRepo    repository.OrderRepository
	supplierRepo repository.SupplierRepository
	itemRepo     repository.ItemRepository
	unitRepo     repository.UnitRepository
	cache        *cache.Client
	logg         *logrus.Logger
}

func NewImportService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	supplierRepo repository.SupplierRepository,
	itemRepo repository.ItemRepository,
	unitRepo repository.UnitRepository,
	cacheClient *cache.Client,
	logg *logrus.Logger,
) ImportService {
	return &importService{
		db:           db,
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		itemRepo:     itemRepo,
		unitRepo:     unitRepo,
		cache:        cacheClient,
		logg:         logg,
	}
}

// ImportOrders parses an .xlsx workbook and creates one order per non-empty
// data row, creating missing suppliers, items and units as it goes. The whole
// import is one transaction: reference rows created for early rows are
// visible to later rows, and everything rolls back together on failure.
func (s *importService) ImportOrders(filename string, file io.Reader) (int, error) {
	if !strings.HasSuffix(filename, ".xlsx") {
		return 0, httperr.ErrUnsupportedFormat
	}

	f, err := excelize.OpenReader(file)
	if err != nil {
		return 0, fmt.Errorf("unable to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	// Raw values keep date cells as serial numbers so they can be told apart
	// from text dates.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return 0, fmt.Errorf("unable to read sheet: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	count := 0
	err = s.db.Transaction(func(tx *gorm.DB) error {
		supplierRepo := s.supplierRepo.WithTx(tx)
		itemRepo := s.itemRepo.WithTx(tx)
		unitRepo := s.unitRepo.WithTx(tx)

		orders := make([]*models.Order, 0, len(rows)-1)
		for idx, row := range rows[1:] {
			if rowEmpty(row) {
				continue
			}

			orderDate := parseOrderDate(cellValue(row, colDate))
			notes := cellValue(row, colNotes)

			supplier, err := findOrCreateSupplier(supplierRepo, cellValue(row, colSupplier), cellValue(row, colClient))
			if err != nil {
				return fmt.Errorf("row %d: %w", idx+2, err)
			}

			vatExcluded := strings.Contains(notes, models.VatExcludedMarker)
			item, err := findOrCreateItem(itemRepo, cellValue(row, colItem), parseFloatValue(cellValue(row, colPrice)), vatExcluded)
			if err != nil {
				return fmt.Errorf("row %d: %w", idx+2, err)
			}

			unit, err := findOrCreateUnit(unitRepo, cellValue(row, colUnit))
			if err != nil {
				return fmt.Errorf("row %d: %w", idx+2, err)
			}

			orders = append(orders, &models.Order{
				Date:            orderDate,
				SupplierID:      supplier.ID,
				ItemID:          item.ID,
				UnitID:          unit.ID,
				Price:           parseFloatValue(cellValue(row, colPrice)),
				Quantity:        parseFloatValue(cellValue(row, colQuantity)),
				Total:           parseFloatValue(cellValue(row, colTotal)),
				PaymentSchedule: defaultString(cellValue(row, colPaymentSchedule), "미정"),
				PurchaseCycle:   defaultString(cellValue(row, colPurchaseCycle), "daily"),
				Client:          cellValue(row, colClient),
				Notes:           notes,
			})
		}

		if err := s.orderRepo.WithTx(tx).CreateBatch(orders); err != nil {
			return err
		}
		count = len(orders)
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logg.WithFields(logrus.Fields{"file": filename, "orders": count}).Info("spreadsheet import complete")
	s.cache.Invalidate(cache.KeySuppliers, cache.KeyItems, cache.KeyUnits)
	return count, nil
}

// cellValue tolerates short rows: excelize omits trailing empty cells.
func cellValue(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// parseFloatValue never fails: empty cells and formula artifacts ("=...")
// become 0, thousands separators are stripped.
func parseFloatValue(value string) float64 {
	if value == "" {
		return 0
	}
	if strings.HasPrefix(value, "=") {
		return 0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		return 0
	}
	return f
}

var orderDateLayouts = []string{"2006.01.02", "2006-01-02", "2006/01/02"}

// parseOrderDate normalizes a date cell to YYYY-MM-DD. The fallback chain,
// first success wins: Excel serial number, dot-separated year/month/day, the
// known text layouts, and finally today. A bad date never fails the import.
func parseOrderDate(value string) string {
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Format("2006-01-02")
		}
	}

	if strings.Contains(value, ".") {
		parts := strings.Split(value, ".")
		if len(parts) == 3 {
			year, errY := strconv.Atoi(strings.TrimSpace(parts[0]))
			month, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
			day, errD := strconv.Atoi(strings.TrimSpace(parts[2]))
			if errY == nil && errM == nil && errD == nil &&
				month >= 1 && month <= 12 && day >= 1 && day <= 31 {
				return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
			}
		}
	}

	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02")
		}
	}

	return time.Now().Format("2006-01-02")
}
