package configs

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"tableorder/entity"
	"tableorder/pkg/money"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Menu []struct {
		Name            string `yaml:"name"`
		Description     string `yaml:"description"`
		Price           string `yaml:"price"`
		Category        string `yaml:"category"`
		ImageURL        string `yaml:"image_url"`
		Available       bool   `yaml:"available"`
		Vegetarian      bool   `yaml:"vegetarian"`
		PrepTimeMinutes int    `yaml:"prep_time_minutes"`
	} `yaml:"menu"`
	Tables []struct {
		Number   string `yaml:"number"`
		Capacity int    `yaml:"capacity"`
		Status   string `yaml:"status"`
	} `yaml:"tables"`
	Orders []struct {
		Number     string `yaml:"number"`
		Table      string `yaml:"table"`
		Status     string `yaml:"status"`
		MinutesAgo int    `yaml:"minutes_ago"`
		Items      []struct {
			Menu     string `yaml:"menu"`
			Quantity int    `yaml:"quantity"`
			Note     string `yaml:"note"`
		} `yaml:"items"`
	} `yaml:"orders"`
	Calls []struct {
		Table      string `yaml:"table"`
		Reason     string `yaml:"reason"`
		Status     string `yaml:"status"`
		MinutesAgo int    `yaml:"minutes_ago"`
	} `yaml:"calls"`
}

// SeedData returns the fixture at path, or the embedded one when path is empty.
func SeedData(path string) ([]byte, error) {
	if path == "" {
		return defaultSeed, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return data, nil
}

// Seed loads the fixture. Order amounts are computed from the lines with the
// given settings so seeded orders match orders placed at runtime.
func Seed(db *gorm.DB, data []byte, settings entity.Settings, now time.Time) error {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse seed: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		menuByName := map[string]entity.MenuItem{}
		for _, m := range f.Menu {
			price, err := money.Parse(m.Price)
			if err != nil {
				return fmt.Errorf("menu %q: %w", m.Name, err)
			}
			item := entity.MenuItem{
				Name: m.Name, Description: m.Description, Price: price, Category: m.Category,
				ImageURL: m.ImageURL, IsAvailable: m.Available, IsVegetarian: m.Vegetarian,
				PrepTimeMinutes: m.PrepTimeMinutes,
			}
			if err := tx.Where(entity.MenuItem{Name: m.Name}).FirstOrCreate(&item).Error; err != nil {
				return err
			}
			menuByName[m.Name] = item
		}

		for _, t := range f.Tables {
			status := entity.TableStatus(t.Status)
			if !status.Valid() {
				return fmt.Errorf("table %s: unknown status %q", t.Number, t.Status)
			}
			row := entity.Table{TableNumber: t.Number, Capacity: t.Capacity, Status: status}
			if err := tx.Where(entity.Table{TableNumber: t.Number}).FirstOrCreate(&row).Error; err != nil {
				return err
			}
		}

		for _, o := range f.Orders {
			status := entity.OrderStatus(o.Status)
			if !status.Valid() {
				return fmt.Errorf("order %s: unknown status %q", o.Number, o.Status)
			}
			var count int64
			if err := tx.Model(&entity.Order{}).Where("order_number = ?", o.Number).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			order := entity.Order{
				OrderNumber: o.Number,
				TableNumber: o.Table,
				Status:      status,
			}
			order.CreatedAt = now.Add(-time.Duration(o.MinutesAgo) * time.Minute)

			var subtotal int64
			for _, it := range o.Items {
				m, ok := menuByName[it.Menu]
				if !ok {
					return fmt.Errorf("order %s: unknown menu item %q", o.Number, it.Menu)
				}
				line := entity.OrderLine{
					MenuItemID: m.ID, Name: m.Name, Quantity: it.Quantity, UnitPrice: m.Price, Note: it.Note,
				}
				subtotal += line.Total()
				if m.PrepTimeMinutes > order.PrepTimeMinutes {
					order.PrepTimeMinutes = m.PrepTimeMinutes
				}
				order.Lines = append(order.Lines, line)
			}
			b := money.Settle(subtotal, settings.TaxRate, settings.ServiceChargeRate)
			order.Subtotal, order.TaxAmount, order.ServiceCharge, order.Total = b.Subtotal, b.TaxAmount, b.ServiceCharge, b.Total
			order.TaxRate, order.ServiceChargeRate = settings.TaxRate, settings.ServiceChargeRate

			if err := tx.Create(&order).Error; err != nil {
				return err
			}
		}

		for _, c := range f.Calls {
			status := entity.CallStatus(c.Status)
			if !status.Valid() {
				return fmt.Errorf("call for %s: unknown status %q", c.Table, c.Status)
			}
			var count int64
			if err := tx.Model(&entity.WaiterCall{}).
				Where("table_number = ? AND reason = ?", c.Table, c.Reason).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			call := entity.WaiterCall{TableNumber: c.Table, Reason: c.Reason, Status: status}
			call.CreatedAt = now.Add(-time.Duration(c.MinutesAgo) * time.Minute)
			if err := tx.Create(&call).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
