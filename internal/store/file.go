package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kevinjame2233/Carryluxe-Full1/internal/models"
)

// FileStore keeps each record kind in one JSON array (or object, for
// the admin singleton) under dir. Every write decodes the whole
// collection, mutates it in memory and rewrites the file atomically
// via a temp file + rename, so readers always see the last complete
// snapshot. There is no locking: two concurrent writers race and the
// last rename wins, an accepted limitation at this write volume.
type FileStore struct {
	dir string
}

const (
	productsFile = "products.json"
	ordersFile   = "orders.json"
	adminFile    = "admin.json"
)

// NewFileStore creates dir if needed and seeds the sample catalog on
// first run.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &FileStore{dir: dir}
	if err := s.ensureData(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) ensureData() error {
	if _, err := os.Stat(s.path(productsFile)); os.IsNotExist(err) {
		if err := s.writeFile(productsFile, seedProducts()); err != nil {
			return err
		}
	}
	if _, err := os.Stat(s.path(ordersFile)); os.IsNotExist(err) {
		if err := s.writeFile(ordersFile, []models.Order{}); err != nil {
			return err
		}
	}
	if _, err := os.Stat(s.path(adminFile)); os.IsNotExist(err) {
		if err := s.writeFile(adminFile, models.Admin{}); err != nil {
			return err
		}
	}
	return nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *FileStore) readFile(name string, v any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// writeFile rewrites the collection atomically. The temp file lives in
// the same directory so the rename never crosses filesystems.
func (s *FileStore) writeFile(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) readProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.readFile(productsFile, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *FileStore) ListProducts(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	products, err := s.readProducts()
	if err != nil {
		return nil, err
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if q.ActiveOnly && !p.Active() {
			continue
		}
		if q.Brand != "" && !strings.EqualFold(p.Brand, q.Brand) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *FileStore) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	products, err := s.readProducts()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) PutProduct(ctx context.Context, p *models.Product) error {
	products, err := s.readProducts()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = *p
			return s.writeFile(productsFile, products)
		}
	}
	// New products go first so the file stays newest-first.
	products = append([]models.Product{*p}, products...)
	return s.writeFile(productsFile, products)
}

func (s *FileStore) DeleteProduct(ctx context.Context, id int64) error {
	products, err := s.readProducts()
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.writeFile(productsFile, kept)
}

func (s *FileStore) CountProducts(ctx context.Context) (int, error) {
	products, err := s.readProducts()
	if err != nil {
		return 0, err
	}
	return len(products), nil
}

func (s *FileStore) CreateOrder(ctx context.Context, o *models.Order) error {
	var orders []models.Order
	if err := s.readFile(ordersFile, &orders); err != nil {
		return err
	}
	orders = append([]models.Order{*o}, orders...)
	return s.writeFile(ordersFile, orders)
}

func (s *FileStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.readFile(ordersFile, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *FileStore) GetAdmin(ctx context.Context) (*models.Admin, error) {
	var a models.Admin
	if err := s.readFile(adminFile, &a); err != nil {
		return nil, err
	}
	if a.Email == "" {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (s *FileStore) PutAdmin(ctx context.Context, a *models.Admin) error {
	return s.writeFile(adminFile, a)
}

func (s *FileStore) Close(ctx context.Context) error {
	return nil
}
