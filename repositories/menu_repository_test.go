package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pn-nangabulik-backend/models"
)

func uintPtr(v uint) *uint { return &v }

func TestBuildMenuTree(t *testing.T) {
	items := []models.Menu{
		{ID: 1, Label: "Beranda", MenuOrder: 0},
		{ID: 2, Label: "Profil", MenuOrder: 1},
		{ID: 3, Label: "Sejarah", ParentID: uintPtr(2), MenuOrder: 1},
		{ID: 4, Label: "Visi Misi", ParentID: uintPtr(2), MenuOrder: 0},
		{ID: 5, Label: "Struktur", ParentID: uintPtr(3), MenuOrder: 0},
	}

	tree := BuildMenuTree(items)

	require.Len(t, tree, 2)
	assert.Equal(t, "Beranda", tree[0].Label)
	assert.Equal(t, "Profil", tree[1].Label)

	// anak Profil terurut menurut menu_order, bukan urutan input
	require.Len(t, tree[1].Children, 2)
	assert.Equal(t, "Visi Misi", tree[1].Children[0].Label)
	assert.Equal(t, "Sejarah", tree[1].Children[1].Label)

	require.Len(t, tree[1].Children[1].Children, 1)
	assert.Equal(t, "Struktur", tree[1].Children[1].Children[0].Label)
}

func TestBuildMenuTreePromotesOrphans(t *testing.T) {
	// parent 9 tidak ada di daftar (misal parent nonaktif pada listing publik)
	items := []models.Menu{
		{ID: 1, Label: "Beranda", MenuOrder: 0},
		{ID: 2, Label: "Yatim", ParentID: uintPtr(9), MenuOrder: 5},
	}

	tree := BuildMenuTree(items)

	require.Len(t, tree, 2)
	assert.Equal(t, "Beranda", tree[0].Label)
	assert.Equal(t, "Yatim", tree[1].Label)
}

func TestBuildMenuTreeRoundTrip(t *testing.T) {
	items := []models.Menu{
		{ID: 1, MenuOrder: 2},
		{ID: 2, ParentID: uintPtr(1), MenuOrder: 0},
		{ID: 3, MenuOrder: 0},
		{ID: 4, ParentID: uintPtr(3), MenuOrder: 1},
		{ID: 5, ParentID: uintPtr(7), MenuOrder: 0}, // orphan
	}

	tree := BuildMenuTree(items)

	seen := map[uint]bool{}
	var walk func(nodes []models.MenuNode)
	walk = func(nodes []models.MenuNode) {
		for _, n := range nodes {
			assert.False(t, seen[n.ID], "id %d muncul dua kali", n.ID)
			seen[n.ID] = true
			walk(n.Children)
		}
	}
	walk(tree)

	assert.Len(t, seen, len(items), "semua item harus muncul tepat sekali")
}

func TestMenuCreateDefaultOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	a := models.Menu{Label: "A", IsActive: true}
	b := models.Menu{Label: "B", IsActive: true}
	require.NoError(t, repo.Create(&a, false))
	require.NoError(t, repo.Create(&b, false))

	// sibling di bawah parent punya hitungan sendiri
	child := models.Menu{Label: "A1", ParentID: &a.ID, IsActive: true}
	require.NoError(t, repo.Create(&child, false))

	assert.Equal(t, 0, a.MenuOrder)
	assert.Equal(t, 1, b.MenuOrder)
	assert.Equal(t, 0, child.MenuOrder)
}

func TestMenuReorder(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	a := models.Menu{Label: "A", IsActive: true}
	b := models.Menu{Label: "B", IsActive: true}
	c := models.Menu{Label: "C", IsActive: true}
	require.NoError(t, repo.Create(&a, false))
	require.NoError(t, repo.Create(&b, false))
	require.NoError(t, repo.Create(&c, false))

	require.NoError(t, repo.Reorder(c.ID, "up"))

	menus, err := repo.GetAll(false)
	require.NoError(t, err)
	labels := []string{menus[0].Label, menus[1].Label, menus[2].Label}
	assert.Equal(t, []string{"A", "C", "B"}, labels)

	// pohon mengikuti urutan baru
	tree := BuildMenuTree(menus)
	require.Len(t, tree, 3)
	assert.Equal(t, "A", tree[0].Label)
	assert.Equal(t, "C", tree[1].Label)
	assert.Equal(t, "B", tree[2].Label)
}

func TestMenuReorderEdgesNoOp(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	a := models.Menu{Label: "A", IsActive: true}
	b := models.Menu{Label: "B", IsActive: true}
	require.NoError(t, repo.Create(&a, false))
	require.NoError(t, repo.Create(&b, false))

	// paling atas naik dan paling bawah turun: bukan error, urutan tetap
	require.NoError(t, repo.Reorder(a.ID, "up"))
	require.NoError(t, repo.Reorder(b.ID, "down"))

	menus, err := repo.GetAll(false)
	require.NoError(t, err)
	assert.Equal(t, "A", menus[0].Label)
	assert.Equal(t, "B", menus[1].Label)
}

func TestMenuReorderErrors(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	a := models.Menu{Label: "A", IsActive: true}
	require.NoError(t, repo.Create(&a, false))

	err := repo.Reorder(999, "up")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = SwapOrder(db, OrderScope{Table: "menus", OrderCol: "menu_order", Where: "parent_id IS NULL"}, a.ID, "sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestMenuReorderScopedToSiblings(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	root := models.Menu{Label: "Root", IsActive: true}
	require.NoError(t, repo.Create(&root, false))

	c1 := models.Menu{Label: "C1", ParentID: &root.ID, IsActive: true}
	c2 := models.Menu{Label: "C2", ParentID: &root.ID, IsActive: true}
	require.NoError(t, repo.Create(&c1, false))
	require.NoError(t, repo.Create(&c2, false))

	require.NoError(t, repo.Reorder(c2.ID, "up"))

	menus, err := repo.GetAll(false)
	require.NoError(t, err)
	tree := BuildMenuTree(menus)

	require.Len(t, tree, 1)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "C2", tree[0].Children[0].Label)
	assert.Equal(t, "C1", tree[0].Children[1].Label)
	// root tidak terpengaruh reorder anak
	assert.Equal(t, 0, tree[0].MenuOrder)
}

func TestMenuDeleteCascadeOneLevel(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	parent := models.Menu{Label: "Parent", IsActive: true}
	require.NoError(t, repo.Create(&parent, false))
	child := models.Menu{Label: "Child", ParentID: &parent.ID, IsActive: true}
	require.NoError(t, repo.Create(&child, false))
	grandchild := models.Menu{Label: "Grandchild", ParentID: &child.ID, IsActive: true}
	require.NoError(t, repo.Create(&grandchild, false))

	require.NoError(t, repo.Delete(parent.ID))

	menus, err := repo.GetAll(false)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	// cucu tidak ikut terhapus, jadi orphan yang dipromosikan jadi root
	assert.Equal(t, "Grandchild", menus[0].Label)

	tree := BuildMenuTree(menus)
	require.Len(t, tree, 1)
	assert.Equal(t, "Grandchild", tree[0].Label)
}

func TestMenuDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	err := repo.Delete(42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMenuGetAllOnlyActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	active := models.Menu{Label: "Aktif", IsActive: true}
	inactive := models.Menu{Label: "Nonaktif", IsActive: false}
	require.NoError(t, repo.Create(&active, false))
	require.NoError(t, repo.Create(&inactive, false))

	public, err := repo.GetAll(true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Aktif", public[0].Label)

	all, err := repo.GetAll(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
