package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// fakeCategoryRepository is an in-memory adapter.CategoryRepository for tests.
type fakeCategoryRepository struct {
	created      *entity.Category
	createdBatch []*entity.Category
	updated      *entity.Category
	found        *entity.Category
	visible      []*entity.Category
	nameTaken    bool
	defaultCount int64
	deletedID    uuid.UUID

	createErr error
	findErr   error
	existsErr error
	countErr  error
	updateErr error
	deleteErr error
}

func (f *fakeCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = category
	return nil
}

func (f *fakeCategoryRepository) CreateBatch(ctx context.Context, categories []*entity.Category) error {
	f.createdBatch = categories
	return f.createErr
}

func (f *fakeCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.found, nil
}

func (f *fakeCategoryRepository) FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	return f.visible, f.findErr
}

func (f *fakeCategoryRepository) ExistsByNameForOwner(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.nameTaken, nil
}

func (f *fakeCategoryRepository) CountDefaults(ctx context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.defaultCount, nil
}

func (f *fakeCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = category
	return nil
}

func (f *fakeCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

func categoryErrorCode(t *testing.T, err error) domainerror.CategoryErrorCode {
	t.Helper()
	var catErr *domainerror.CategoryError
	if !errors.As(err, &catErr) {
		t.Fatalf("expected CategoryError, got %v", err)
	}
	return catErr.Code
}

func TestCreateCategoryUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("creates a category with explicit fields", func(t *testing.T) {
		repo := &fakeCategoryRepository{}
		uc := NewCreateCategoryUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID: userID,
			Name:   "  Pets  ",
			Kind:   entity.CategoryKindExpense,
			Color:  "#facc15",
			Icon:   "paw",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cat := output.Category
		if cat.Name != "Pets" {
			t.Errorf("expected trimmed name Pets, got %q", cat.Name)
		}
		if cat.Color != "#facc15" || cat.Icon != "paw" {
			t.Errorf("unexpected appearance fields: %s %s", cat.Color, cat.Icon)
		}
		if cat.IsDefault {
			t.Error("user-created category must not be a default")
		}
		if cat.OwnerID == nil || *cat.OwnerID != userID {
			t.Errorf("expected owner %s, got %v", userID, cat.OwnerID)
		}
		if repo.created != cat {
			t.Error("expected category to be persisted")
		}
	})

	t.Run("falls back to default kind color and icon", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&fakeCategoryRepository{})

		output, err := uc.Execute(context.Background(), CreateCategoryInput{UserID: userID, Name: "Misc"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cat := output.Category
		if cat.Kind != entity.CategoryKindBoth {
			t.Errorf("expected kind both, got %s", cat.Kind)
		}
		if cat.Color != entity.DefaultCategoryColor || cat.Icon != entity.DefaultCategoryIcon {
			t.Errorf("expected default appearance, got %s %s", cat.Color, cat.Icon)
		}
	})

	t.Run("requires a name", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&fakeCategoryRepository{})

		_, err := uc.Execute(context.Background(), CreateCategoryInput{UserID: userID, Name: "   "})
		if code := categoryErrorCode(t, err); code != domainerror.ErrCodeCategoryNameRequired {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeCategoryNameRequired, code)
		}
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&fakeCategoryRepository{})

		_, err := uc.Execute(context.Background(), CreateCategoryInput{UserID: userID, Name: "Pets", Kind: "transfer"})
		if code := categoryErrorCode(t, err); code != domainerror.ErrCodeInvalidCategoryKind {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCategoryKind, code)
		}
	})

	t.Run("rejects a taken name", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&fakeCategoryRepository{nameTaken: true})

		_, err := uc.Execute(context.Background(), CreateCategoryInput{UserID: userID, Name: "Food"})
		if code := categoryErrorCode(t, err); code != domainerror.ErrCodeCategoryNameExists {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeCategoryNameExists, code)
		}
	})
}

func TestUpdateCategoryUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("updates an owned category", func(t *testing.T) {
		existing := entity.NewCategory(userID, "Pets", entity.CategoryKindExpense, "#facc15", "paw")
		repo := &fakeCategoryRepository{found: existing}
		uc := NewUpdateCategoryUseCase(repo)

		output, err := uc.Execute(context.Background(), UpdateCategoryInput{
			CategoryID: existing.ID,
			UserID:     userID,
			Name:       "Pet Care",
			Kind:       entity.CategoryKindExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Name != "Pet Care" {
			t.Errorf("expected name Pet Care, got %q", output.Category.Name)
		}
		// Empty appearance fields keep the existing values.
		if output.Category.Color != "#facc15" || output.Category.Icon != "paw" {
			t.Errorf("expected appearance to be kept, got %s %s", output.Category.Color, output.Category.Icon)
		}
		if repo.updated != output.Category {
			t.Error("expected category to be persisted")
		}
	})

	t.Run("same name with different case skips the uniqueness check", func(t *testing.T) {
		existing := entity.NewCategory(userID, "Pets", entity.CategoryKindExpense, "#facc15", "paw")
		repo := &fakeCategoryRepository{found: existing, nameTaken: true}
		uc := NewUpdateCategoryUseCase(repo)

		if _, err := uc.Execute(context.Background(), UpdateCategoryInput{
			CategoryID: existing.ID,
			UserID:     userID,
			Name:       "PETS",
			Kind:       entity.CategoryKindExpense,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("default categories are immutable", func(t *testing.T) {
		existing := entity.NewDefaultCategory("Food", entity.CategoryKindExpense, "#ef4444", "utensils")
		uc := NewUpdateCategoryUseCase(&fakeCategoryRepository{found: existing})

		_, err := uc.Execute(context.Background(), UpdateCategoryInput{
			CategoryID: existing.ID,
			UserID:     userID,
			Name:       "Dining",
		})
		if code := categoryErrorCode(t, err); code != domainerror.ErrCodeDefaultCategoryImmutable {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeDefaultCategoryImmutable, code)
		}
	})

	t.Run("foreign category is reported as absent", func(t *testing.T) {
		existing := entity.NewCategory(uuid.New(), "Pets", entity.CategoryKindExpense, "#facc15", "paw")
		uc := NewUpdateCategoryUseCase(&fakeCategoryRepository{found: existing})

		_, err := uc.Execute(context.Background(), UpdateCategoryInput{
			CategoryID: existing.ID,
			UserID:     userID,
			Name:       "Pets",
		})
		if code := categoryErrorCode(t, err); code != domainerror.ErrCodeCategoryNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeCategoryNotFound, code)
		}
	})

	t.Run("missing category surfaces as not found", func(t *testing.T) {
		uc := NewUpdateCategoryUseCase(&fakeCategoryRepository{findErr: domainerror.ErrCategoryNotFound})

		_, err := uc.Execute(context.Background(), UpdateCategoryInput{
			CategoryID: uuid.New(),
			UserID:     userID,
			Name:       "Pets",
		})
		if code := categoryErrorCode(t, err); code != domainerror.ErrCodeCategoryNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeCategoryNotFound, code)
		}
	})
}

func TestDeleteCategoryUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("deletes an owned category", func(t *testing.T) {
		existing := entity.NewCategory(userID, "Pets", entity.CategoryKindExpense, "#facc15", "paw")
		repo := &fakeCategoryRepository{found: existing}
		uc := NewDeleteCategoryUseCase(repo)

		if err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: existing.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.deletedID != existing.ID {
			t.Errorf("expected delete of %s, got %s", existing.ID, repo.deletedID)
		}
	})

	t.Run("default categories are not deletable", func(t *testing.T) {
		existing := entity.NewDefaultCategory("Food", entity.CategoryKindExpense, "#ef4444", "utensils")
		uc := NewDeleteCategoryUseCase(&fakeCategoryRepository{found: existing})

		err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: existing.ID, UserID: userID})
		if code := categoryErrorCode(t, err); code != domainerror.ErrCodeDefaultCategoryImmutable {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeDefaultCategoryImmutable, code)
		}
	})

	t.Run("foreign category is reported as absent", func(t *testing.T) {
		existing := entity.NewCategory(uuid.New(), "Pets", entity.CategoryKindExpense, "#facc15", "paw")
		uc := NewDeleteCategoryUseCase(&fakeCategoryRepository{found: existing})

		err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: existing.ID, UserID: userID})
		if code := categoryErrorCode(t, err); code != domainerror.ErrCodeCategoryNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeCategoryNotFound, code)
		}
	})
}

func TestInitializeCategoriesUseCase_Execute(t *testing.T) {
	t.Run("seeds defaults when none exist", func(t *testing.T) {
		repo := &fakeCategoryRepository{}
		uc := NewInitializeCategoriesUseCase(repo)

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Seeded {
			t.Error("expected defaults to be seeded")
		}
		if len(repo.createdBatch) != len(entity.DefaultCategories()) {
			t.Errorf("expected %d seeded categories, got %d", len(entity.DefaultCategories()), len(repo.createdBatch))
		}
		for _, cat := range repo.createdBatch {
			if !cat.IsDefault || cat.OwnerID != nil {
				t.Errorf("seeded category %s must be an ownerless default", cat.Name)
			}
		}
	})

	t.Run("is a no-op when defaults exist", func(t *testing.T) {
		repo := &fakeCategoryRepository{defaultCount: 8}
		uc := NewInitializeCategoriesUseCase(repo)

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Seeded {
			t.Error("expected seeding to be skipped")
		}
		if repo.createdBatch != nil {
			t.Error("expected no batch insert")
		}
	})
}

func TestListCategoriesUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("returns visible categories", func(t *testing.T) {
		visible := []*entity.Category{
			entity.NewDefaultCategory("Food", entity.CategoryKindExpense, "#ef4444", "utensils"),
			entity.NewCategory(userID, "Pets", entity.CategoryKindExpense, "#facc15", "paw"),
		}
		uc := NewListCategoriesUseCase(&fakeCategoryRepository{visible: visible})

		output, err := uc.Execute(context.Background(), ListCategoriesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 2 {
			t.Errorf("expected 2 categories, got %d", len(output.Categories))
		}
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		uc := NewListCategoriesUseCase(&fakeCategoryRepository{findErr: errors.New("down")})

		if _, err := uc.Execute(context.Background(), ListCategoriesInput{UserID: userID}); err == nil {
			t.Fatal("expected an error")
		}
	})
}
