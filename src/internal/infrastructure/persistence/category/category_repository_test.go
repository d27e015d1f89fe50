package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/category"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/persistence"
)

// ===========================
// CategoryRepository Integration Tests
// ===========================

func setupTestDB(t *testing.T) *gorm.DB {
	return persistence.SetupTestDB(t, &CategoryGORM{})
}

func createTestCategory(t *testing.T, name string) *category.Category {
	t.Helper()
	c := category.NewCategory(category.CreateCategoryProps{Name: name, Description: "some description"})
	require.False(t, c.Notification().HasErrors())
	return c
}

func TestCategoryRepository_Insert_Success(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	c := createTestCategory(t, "Movie")

	// Act
	err := repo.Insert(nil, c)

	// Assert
	require.NoError(t, err)

	var m CategoryGORM
	require.NoError(t, db.First(&m, "category_id = ?", c.CategoryID().String()).Error)
	assert.Equal(t, "Movie", m.Name)
	assert.Equal(t, "some description", m.Description)
	assert.True(t, m.IsActive)
}

func TestCategoryRepository_Insert_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	c := createTestCategory(t, "Movie")
	require.NoError(t, repo.Insert(nil, c))

	err := repo.Insert(nil, c)

	assert.ErrorIs(t, err, category.ErrCategoryAlreadyExists)
}

func TestCategoryRepository_FindByID_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	c := createTestCategory(t, "Documentary")
	require.NoError(t, repo.Insert(nil, c))

	found, err := repo.FindByID(nil, c.CategoryID())

	require.NoError(t, err)
	assert.True(t, found.CategoryID().Equals(c.CategoryID()))
	assert.Equal(t, "Documentary", found.Name())
	assert.Equal(t, "some description", found.Description())
	assert.True(t, found.IsActive())
	assert.Empty(t, found.PendingEvents(), "reconstruction should not record events")
}

func TestCategoryRepository_FindByID_NotFound(t *testing.T) {
	repo := NewCategoryRepository(setupTestDB(t))

	found, err := repo.FindByID(nil, category.NewCategoryID())

	assert.Nil(t, found)
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestCategoryRepository_FindByID_CorruptedRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	id := category.NewCategoryID()
	require.NoError(t, db.Exec(
		"INSERT INTO categories (category_id, name, description, is_active, created_at, updated_at) VALUES (?, '', '', 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
		id.String(),
	).Error)

	_, err := repo.FindByID(nil, id)

	assert.ErrorIs(t, err, category.ErrCorruptedCategory)
}

func TestCategoryRepository_Update_Success(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	c := createTestCategory(t, "Movie")
	require.NoError(t, repo.Insert(nil, c))

	c.ChangeName("Series")
	c.Deactivate()
	require.NoError(t, repo.Update(nil, c))

	found, err := repo.FindByID(nil, c.CategoryID())
	require.NoError(t, err)
	assert.Equal(t, "Series", found.Name())
	assert.False(t, found.IsActive())
}

func TestCategoryRepository_Update_NotFound(t *testing.T) {
	repo := NewCategoryRepository(setupTestDB(t))

	err := repo.Update(nil, createTestCategory(t, "Ghost"))

	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestCategoryRepository_ExistsByIDs_ReturnsMissingInOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	a := createTestCategory(t, "A")
	b := createTestCategory(t, "B")
	require.NoError(t, repo.Insert(nil, a))
	require.NoError(t, repo.Insert(nil, b))
	x, y := category.NewCategoryID(), category.NewCategoryID()

	missing, err := repo.ExistsByIDs(nil, []category.CategoryID{x, a.CategoryID(), y, b.CategoryID()})

	require.NoError(t, err)
	assert.Equal(t, []category.CategoryID{x, y}, missing)
}

func TestCategoryRepository_ExistsByIDs_Empty(t *testing.T) {
	repo := NewCategoryRepository(setupTestDB(t))

	missing, err := repo.ExistsByIDs(nil, nil)

	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestCategoryRepository_DatabaseError_IsRepositoryError(t *testing.T) {
	repo := NewCategoryRepository(persistence.SetupTestDB(t))
	c := createTestCategory(t, "Movie")

	_, err := repo.FindByID(nil, c.CategoryID())
	assert.ErrorIs(t, err, shared.ErrRepository)
	assert.NotErrorIs(t, err, category.ErrCategoryNotFound)

	assert.ErrorIs(t, repo.Insert(nil, c), shared.ErrRepository)

	_, err = repo.ExistsByIDs(nil, []category.CategoryID{c.CategoryID()})
	assert.ErrorIs(t, err, shared.ErrRepository)
}
