package repositories

import (
	"golang.org/x/exp/slices"
	"gorm.io/gorm"

	"pn-nangabulik-backend/models"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(DB *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: DB}
}

func (r *MenuRepository) menuScope(parentID *uint) OrderScope {
	sc := OrderScope{Table: "menus", OrderCol: "menu_order", Where: "parent_id IS NULL"}
	if parentID != nil {
		sc.Where = "parent_id = ?"
		sc.Args = []interface{}{*parentID}
	}
	return sc
}

// GetAll mengambil daftar flat, untuk publik hanya yang aktif
func (r *MenuRepository) GetAll(onlyActive bool) ([]models.Menu, error) {
	var menus []models.Menu
	q := r.DB.Order("menu_order asc, id asc")
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) GetByID(id uint) (*models.Menu, error) {
	var menu models.Menu
	err := r.DB.First(&menu, id).Error
	return &menu, err
}

// Create menyimpan menu baru; order default = jumlah sibling saat ini
func (r *MenuRepository) Create(menu *models.Menu, orderProvided bool) error {
	if !orderProvided {
		next, err := NextOrder(r.DB, r.menuScope(menu.ParentID))
		if err != nil {
			return err
		}
		menu.MenuOrder = next
	}
	return r.DB.Create(menu).Error
}

func (r *MenuRepository) Update(menu *models.Menu) error {
	return r.DB.Save(menu).Error
}

// Delete menghapus menu beserta anak langsungnya dalam satu transaksi.
// Hanya satu tingkat: cucu tidak ikut terhapus.
func (r *MenuRepository) Delete(id uint) error {
	var menu models.Menu
	if err := r.DB.First(&menu, id).Error; err != nil {
		return err
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", id).Delete(&models.Menu{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Menu{}, id).Error
	})
}

// Reorder memindahkan menu naik/turun di antara sibling dengan parent yang sama
func (r *MenuRepository) Reorder(id uint, direction string) error {
	menu, err := r.GetByID(id)
	if err != nil {
		return err
	}
	return SwapOrder(r.DB, r.menuScope(menu.ParentID), id, direction)
}

// BuildMenuTree menyusun daftar flat menjadi pohon. Fungsi murni: tidak
// menyentuh database dan tidak mengubah slice input.
// Item yang parent-nya tidak ada di daftar dipromosikan jadi root supaya
// tidak ada node yang hilang diam-diam (misal anak aktif dari parent nonaktif).
// Rantai parent yang membentuk siklus dilewati lewat set visited, tidak rekursi tanpa batas.
func BuildMenuTree(items []models.Menu) []models.MenuNode {
	present := make(map[uint]bool, len(items))
	for _, it := range items {
		present[it.ID] = true
	}

	children := make(map[uint][]models.Menu)
	var roots []models.Menu
	for _, it := range items {
		if it.ParentID == nil || !present[*it.ParentID] {
			roots = append(roots, it)
		} else {
			children[*it.ParentID] = append(children[*it.ParentID], it)
		}
	}

	visited := make(map[uint]bool, len(items))

	var build func(group []models.Menu) []models.MenuNode
	build = func(group []models.Menu) []models.MenuNode {
		sorted := make([]models.Menu, len(group))
		copy(sorted, group)
		slices.SortFunc(sorted, func(a, b models.Menu) int {
			if a.MenuOrder != b.MenuOrder {
				return a.MenuOrder - b.MenuOrder
			}
			return int(a.ID) - int(b.ID)
		})

		nodes := make([]models.MenuNode, 0, len(sorted))
		for _, m := range sorted {
			if visited[m.ID] {
				continue
			}
			visited[m.ID] = true
			nodes = append(nodes, models.MenuNode{
				Menu:     m,
				Children: build(children[m.ID]),
			})
		}
		return nodes
	}

	return build(roots)
}
